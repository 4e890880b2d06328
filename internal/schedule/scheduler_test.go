package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type namedHandler struct {
	name string
}

func (h namedHandler) Run(context.Context, trading.Gateway) error {
	return nil
}

type SchedulerTestSuite struct {
	suite.Suite
	location *time.Location
	now      time.Time
	clock    *clock.MarketClock
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (suite *SchedulerTestSuite) SetupTest() {
	location, err := time.LoadLocation(clock.TradingTimezone)
	suite.Require().NoError(err)

	suite.location = location
	suite.now = suite.at(9, 30, 30)

	suite.clock, err = clock.NewMarketClockWithNow(func() time.Time { return suite.now })
	suite.Require().NoError(err)
}

func (suite *SchedulerTestSuite) at(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, second, 0, suite.location)
}

func (suite *SchedulerTestSuite) selectAt(entries []Entry, now time.Time) string {
	suite.now = now

	match := NewScheduler(entries, suite.clock, logger.NewNopLogger()).Select(now)
	if match.IsNone() {
		return ""
	}

	return match.Unwrap().Name
}

func entry(spec, name string) Entry {
	return Entry{Time: spec, Name: name, Handler: namedHandler{name: name}}
}

func (suite *SchedulerTestSuite) TestParseTimeSpec() {
	testCases := []struct {
		spec    string
		tokens  []string
		wantErr bool
	}{
		{spec: "9:30am", tokens: []string{"9:30am"}},
		{spec: "9:30am-4:00pm", tokens: []string{"9:30am", "4:00pm"}},
		{spec: " 9:30am - 4:00pm ", tokens: []string{"9:30am", "4:00pm"}},
		{spec: "", wantErr: true},
		{spec: "9:30am-", wantErr: true},
		{spec: "-4:00pm", wantErr: true},
		{spec: "9:30am-12:00pm-4:00pm", wantErr: true},
	}

	for _, tc := range testCases {
		suite.Run(tc.spec, func() {
			tokens, err := ParseTimeSpec(tc.spec)
			if tc.wantErr {
				suite.Equal(errors.ErrCodeInvalidTimeSpec, errors.GetCode(err))

				return
			}

			suite.Require().NoError(err)
			suite.Equal(tc.tokens, tokens)
		})
	}
}

func (suite *SchedulerTestSuite) TestResolve() {
	scheduler := NewScheduler(nil, suite.clock, logger.NewNopLogger())

	single, err := scheduler.Resolve(entry("9:30am", "a"))
	suite.Require().NoError(err)
	suite.False(single.IsRange())
	suite.True(single.Start.Equal(suite.at(9, 30, 0)))

	window, err := scheduler.Resolve(entry("9:30am-4:00pm", "b"))
	suite.Require().NoError(err)
	suite.True(window.IsRange())
	suite.True(window.Start.Equal(suite.at(9, 30, 0)))
	suite.True(window.End.Unwrap().Equal(suite.at(16, 0, 0)))

	_, err = scheduler.Resolve(entry("09:30", "c"))
	suite.True(errors.IsParseError(err))
}

func (suite *SchedulerTestSuite) TestSingleTimeMatchesWholeMinute() {
	entries := []Entry{entry("9:30am", "A")}

	suite.Equal("", suite.selectAt(entries, suite.at(9, 29, 59)))
	suite.Equal("A", suite.selectAt(entries, suite.at(9, 30, 0)))
	suite.Equal("A", suite.selectAt(entries, suite.at(9, 30, 30)))
	suite.Equal("A", suite.selectAt(entries, suite.at(9, 30, 59)))
	suite.Equal("", suite.selectAt(entries, suite.at(9, 31, 0)))
}

func (suite *SchedulerTestSuite) TestSingleTimeMatchesOnlyItsMinuteAcrossTheDay() {
	entries := []Entry{entry("2:15pm", "A")}
	target := suite.at(14, 15, 0)

	for minute := 0; minute < 24*60; minute++ {
		now := suite.at(0, 0, 0).Add(time.Duration(minute)*time.Minute + 20*time.Second)
		expected := ""

		if !now.Before(target) && now.Before(target.Add(time.Minute)) {
			expected = "A"
		}

		suite.Equal(expected, suite.selectAt(entries, now), "at %s", now.Format(time.Kitchen))
	}
}

func (suite *SchedulerTestSuite) TestRangeIsInclusiveStartExclusiveEnd() {
	entries := []Entry{entry("10:00am-11:00am", "R")}

	suite.Equal("", suite.selectAt(entries, suite.at(9, 59, 59)))
	suite.Equal("R", suite.selectAt(entries, suite.at(10, 0, 0)))
	suite.Equal("R", suite.selectAt(entries, suite.at(10, 30, 0)))
	suite.Equal("R", suite.selectAt(entries, suite.at(10, 59, 59)))
	suite.Equal("", suite.selectAt(entries, suite.at(11, 0, 0)))
}

func (suite *SchedulerTestSuite) TestOverlappingEntriesPreferFirstListed() {
	entries := []Entry{entry("9:30am", "A"), entry("9:30am-4:00pm", "B")}

	suite.Equal("A", suite.selectAt(entries, suite.at(9, 30, 30)))
	suite.Equal("B", suite.selectAt(entries, suite.at(11, 0, 0)))
	suite.Equal("", suite.selectAt(entries, suite.at(16, 0, 0)))

	reversed := []Entry{entry("9:30am-4:00pm", "B"), entry("9:30am", "A")}
	suite.Equal("B", suite.selectAt(reversed, suite.at(9, 30, 30)))
}

func (suite *SchedulerTestSuite) TestMalformedEntryIsSkipped() {
	core, logs := observer.New(zapcore.WarnLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	entries := []Entry{entry("25:00pm", "broken"), entry("9:30am-4:00pm", "B")}
	suite.now = suite.at(12, 0, 0)

	match := NewScheduler(entries, suite.clock, log).Select(suite.now)

	suite.Require().True(match.IsSome())
	suite.Equal("B", match.Unwrap().Name)
	suite.Require().Equal(1, logs.Len())

	logged := logs.All()[0]
	suite.Equal(tagScheduler, logged.ContextMap()[logger.TagKey])
	suite.Equal("broken", logged.ContextMap()["handler"])
}

func (suite *SchedulerTestSuite) TestSelectIsIdempotentWithinMinute() {
	entries := []Entry{entry("9:30am", "A")}
	scheduler := NewScheduler(entries, suite.clock, logger.NewNopLogger())

	first := scheduler.Select(suite.now)
	second := scheduler.Select(suite.now)

	suite.Equal(first.IsSome(), second.IsSome())
	suite.Equal(first.Unwrap().Name, second.Unwrap().Name)
}

func (suite *SchedulerTestSuite) TestSelectHandler() {
	entries := []Entry{entry("9:30am", "A"), entry("9:30am-4:00pm", "B")}

	suite.now = suite.at(11, 0, 0)
	handler := SelectHandler(entries, suite.clock, suite.now, logger.NewNopLogger())
	suite.Require().True(handler.IsSome())
	suite.Equal(namedHandler{name: "B"}, handler.Unwrap())

	suite.now = suite.at(17, 0, 0)
	suite.True(SelectHandler(entries, suite.clock, suite.now, logger.NewNopLogger()).IsNone())
}

func (suite *SchedulerTestSuite) TestSelectHandlerBindsToDateOfNow() {
	entries := []Entry{entry("9:30am-4:00pm", "B")}

	// the clock is still on the 15th while the instant asked about is a day later
	suite.now = suite.at(9, 30, 30)
	nextDay := time.Date(2024, 3, 16, 11, 0, 0, 0, suite.location)

	handler := SelectHandler(entries, suite.clock, nextDay, logger.NewNopLogger())
	suite.Require().True(handler.IsSome())
	suite.Equal(namedHandler{name: "B"}, handler.Unwrap())

	window, err := NewScheduler(entries, suite.clock, logger.NewNopLogger()).ResolveOn(entries[0], nextDay)
	suite.Require().NoError(err)
	suite.Equal(16, window.Start.Day())
}

func (suite *SchedulerTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		entries []Entry
		code    errors.ErrorCode
	}{
		{name: "valid", entries: []Entry{entry("9:30am", "A"), entry("10:00am-3:00pm", "B")}},
		{name: "bad token", entries: []Entry{entry("9:30", "A")}, code: errors.ErrCodeInvalidTimeSpec},
		{name: "reversed range", entries: []Entry{entry("4:00pm-9:30am", "A")}, code: errors.ErrCodeInvalidTimeSpec},
		{name: "empty range", entries: []Entry{entry("9:30am-9:30am", "A")}, code: errors.ErrCodeInvalidTimeSpec},
		{name: "missing handler", entries: []Entry{{Time: "9:30am", Name: "A"}}, code: errors.ErrCodeMissingParameter},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := NewScheduler(tc.entries, suite.clock, logger.NewNopLogger()).Validate()
			if tc.code == 0 {
				suite.NoError(err)

				return
			}

			suite.Equal(tc.code, errors.GetCode(err))
		})
	}
}

func (suite *SchedulerTestSuite) TestEntriesAreCopied() {
	entries := []Entry{entry("9:30am", "A")}
	scheduler := NewScheduler(entries, suite.clock, logger.NewNopLogger())

	entries[0].Name = "mutated"
	suite.Equal("A", scheduler.Entries()[0].Name)
}
