package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type PagedTestSuite struct {
	suite.Suite
}

func TestPagedSuite(t *testing.T) {
	suite.Run(t, new(PagedTestSuite))
}

// pager serves pages of ints and records the cursors it was asked for.
type pager struct {
	pages   [][]int
	failAt  int
	cursors []optional.Option[string]
}

func (p *pager) fetch(_ context.Context, cursor optional.Option[string]) (Page[int], error) {
	p.cursors = append(p.cursors, cursor)

	index := 0
	if cursor.IsSome() {
		_, _ = fmt.Sscanf(cursor.Unwrap(), "page-%d", &index)
	}

	if p.failAt > 0 && index == p.failAt {
		return Page[int]{}, errors.New(errors.ErrCodeRemoteRequestFailed, "connection reset")
	}

	next := optional.None[string]()
	if index+1 < len(p.pages) {
		next = optional.Some(fmt.Sprintf("page-%d", index+1))
	}

	return Page[int]{Items: p.pages[index], Next: next}, nil
}

func (suite *PagedTestSuite) TestModeAllFollowsCursors() {
	p := &pager{pages: [][]int{{1, 2}, {3, 4}, {5}}}

	items, err := FetchPaged(context.Background(), ModeAll, p.fetch, 0)
	suite.NoError(err)
	suite.Equal([]int{1, 2, 3, 4, 5}, items)
	suite.Len(p.cursors, 3)
	suite.True(p.cursors[0].IsNone())
	suite.Equal("page-1", p.cursors[1].Unwrap())
}

func (suite *PagedTestSuite) TestModeFirstIssuesSingleRequest() {
	p := &pager{pages: [][]int{{7, 8}, {9}}}

	items, err := FetchPaged(context.Background(), ModeFirst, p.fetch, 0)
	suite.NoError(err)
	suite.Equal([]int{7}, items)
	suite.Len(p.cursors, 1)
}

func (suite *PagedTestSuite) TestModeLastKeepsFinalItem() {
	p := &pager{pages: [][]int{{1, 2}, {3, 4}}}

	items, err := FetchPaged(context.Background(), ModeLast, p.fetch, 0)
	suite.NoError(err)
	suite.Equal([]int{4}, items)
	suite.Len(p.cursors, 2)
}

func (suite *PagedTestSuite) TestEmptyResult() {
	for _, mode := range []Mode{ModeFirst, ModeAll, ModeLast} {
		suite.Run(string(mode), func() {
			p := &pager{pages: [][]int{{}}}

			items, err := FetchPaged(context.Background(), mode, p.fetch, 0)
			suite.NoError(err)
			suite.NotNil(items)
			suite.Empty(items)
		})
	}
}

func (suite *PagedTestSuite) TestEmptyCursorEndsSequence() {
	calls := 0
	fetch := func(_ context.Context, _ optional.Option[string]) (Page[int], error) {
		calls++

		return Page[int]{Items: []int{calls}, Next: optional.Some("")}, nil
	}

	items, err := FetchPaged(context.Background(), ModeAll, fetch, 0)
	suite.NoError(err)
	suite.Equal([]int{1}, items)
	suite.Equal(1, calls)
}

func (suite *PagedTestSuite) TestMidStreamFailureReturnsAccumulated() {
	p := &pager{pages: [][]int{{1, 2}, {3}, {4}}, failAt: 2}

	items, err := FetchPaged(context.Background(), ModeAll, p.fetch, 0)
	suite.Error(err)
	suite.Equal(errors.ErrCodeRemoteRequestFailed, errors.GetCode(err))
	suite.Equal([]int{1, 2, 3}, items)
}

func (suite *PagedTestSuite) TestRepeatedCursorIsProtocolError() {
	fetch := func(_ context.Context, _ optional.Option[string]) (Page[int], error) {
		return Page[int]{Items: []int{1}, Next: optional.Some("same")}, nil
	}

	items, err := FetchPaged(context.Background(), ModeAll, fetch, 0)
	suite.Error(err)
	suite.Equal(errors.ErrCodeCursorRepeated, errors.GetCode(err))
	suite.True(errors.IsProtocolError(err))
	suite.Equal([]int{1, 1}, items)
}

func (suite *PagedTestSuite) TestMaxPagesGuard() {
	calls := 0
	fetch := func(_ context.Context, _ optional.Option[string]) (Page[int], error) {
		calls++

		return Page[int]{Items: []int{calls}, Next: optional.Some(fmt.Sprintf("cursor-%d", calls))}, nil
	}

	items, err := FetchPaged(context.Background(), ModeAll, fetch, 3)
	suite.Error(err)
	suite.Equal(errors.ErrCodePaginationExhausted, errors.GetCode(err))
	suite.Equal(3, calls)
	suite.Equal([]int{1, 2, 3}, items)
}

func (suite *PagedTestSuite) TestParseMode() {
	testCases := []struct {
		input    string
		expected Mode
		valid    bool
	}{
		{input: "first", expected: ModeFirst, valid: true},
		{input: "ALL", expected: ModeAll, valid: true},
		{input: " last ", expected: ModeLast, valid: true},
		{input: "some", valid: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.input, func() {
			mode, err := ParseMode(tc.input)
			if !tc.valid {
				suite.Error(err)

				return
			}

			suite.NoError(err)
			suite.Equal(tc.expected, mode)
		})
	}
}
