package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ChunkTestSuite struct {
	suite.Suite
}

func TestChunkSuite(t *testing.T) {
	suite.Run(t, new(ChunkTestSuite))
}

func symbolsN(n int) []string {
	symbols := make([]string, n)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("S%03d", i)
	}

	return symbols
}

func (suite *ChunkTestSuite) TestChunkSizes() {
	testCases := []struct {
		name     string
		n        int
		size     int
		expected []int
	}{
		{name: "empty input", n: 0, size: 200, expected: []int{}},
		{name: "fits in one chunk", n: 150, size: 200, expected: []int{150}},
		{name: "exact multiple", n: 400, size: 200, expected: []int{200, 200}},
		{name: "remainder chunk", n: 450, size: 200, expected: []int{200, 200, 50}},
		{name: "non-positive size uses default", n: 201, size: 0, expected: []int{200, 1}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			chunks := Chunk(symbolsN(tc.n), tc.size)

			sizes := make([]int, len(chunks))
			for i, chunk := range chunks {
				sizes[i] = len(chunk)
			}

			suite.Equal(tc.expected, sizes)
		})
	}
}

func (suite *ChunkTestSuite) TestChunkPreservesOrder() {
	symbols := symbolsN(5)
	chunks := Chunk(symbols, 2)

	suite.Equal([][]string{{"S000", "S001"}, {"S002", "S003"}, {"S004"}}, chunks)
}

func (suite *ChunkTestSuite) TestFetchChunkedIssuesOneCallPerChunk() {
	var (
		mu    sync.Mutex
		calls [][]string
	)

	symbols := symbolsN(450)

	result := FetchChunked(context.Background(), symbols, 200,
		func(_ context.Context, chunk []string) (map[string]int, error) {
			mu.Lock()
			calls = append(calls, chunk)
			mu.Unlock()

			values := make(map[string]int, len(chunk))
			for _, symbol := range chunk {
				values[symbol] = len(chunk)
			}

			return values, nil
		},
	)

	suite.Len(calls, 3)
	suite.True(result.Complete())
	suite.Len(result.Values, 450)
	suite.Equal(50, result.Values["S449"])
	suite.Empty(result.Collisions)
}

func (suite *ChunkTestSuite) TestFetchChunkedExcludesFailedChunk() {
	symbols := symbolsN(450)

	result := FetchChunked(context.Background(), symbols, 200,
		func(_ context.Context, chunk []string) (map[string]bool, error) {
			// the second chunk starts at S200
			if chunk[0] == "S200" {
				return nil, errors.New(errors.ErrCodeRemoteRequestFailed, "503 service unavailable")
			}

			values := make(map[string]bool, len(chunk))
			for _, symbol := range chunk {
				values[symbol] = true
			}

			return values, nil
		},
	)

	suite.False(result.Complete())
	suite.Len(result.Values, 250)
	suite.Contains(result.Values, "S000")
	suite.Contains(result.Values, "S199")
	suite.Contains(result.Values, "S400")
	suite.NotContains(result.Values, "S200")
	suite.NotContains(result.Values, "S399")

	suite.Require().Len(result.Failures, 1)
	suite.Equal(symbols[200:400], result.Failures[0].Symbols)
	suite.Equal(errors.ErrCodeRemoteRequestFailed, result.Failures[0].Error.Code)
	suite.Equal(symbols[200:400], result.FailedSymbols())
}

func (suite *ChunkTestSuite) TestFetchChunkedRecordsCollisions() {
	result := FetchChunked(context.Background(), []string{"AAPL", "MSFT", "AAPL"}, 2,
		func(_ context.Context, chunk []string) (map[string]int, error) {
			values := make(map[string]int, len(chunk))
			for _, symbol := range chunk {
				values[symbol] = len(chunk)
			}

			return values, nil
		},
	)

	suite.Equal([]string{"AAPL"}, result.Collisions)
	// later chunk wins
	suite.Equal(1, result.Values["AAPL"])
	suite.Equal(2, result.Values["MSFT"])
}

func (suite *ChunkTestSuite) TestFetchChunkedEmptyInput() {
	result := FetchChunked(context.Background(), nil, 200,
		func(_ context.Context, _ []string) (map[string]int, error) {
			suite.Fail("fetch should not be called")

			return nil, nil
		},
	)

	suite.True(result.Complete())
	suite.Empty(result.Values)
}
