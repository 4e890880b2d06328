package clock

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ClockTestSuite struct {
	suite.Suite
	location *time.Location
}

func TestClockSuite(t *testing.T) {
	suite.Run(t, new(ClockTestSuite))
}

func (suite *ClockTestSuite) SetupSuite() {
	location, err := tradingLocation()
	suite.Require().NoError(err)
	suite.location = location
}

func (suite *ClockTestSuite) clockAt(t time.Time) *MarketClock {
	c, err := NewMarketClockWithNow(func() time.Time { return t })
	suite.Require().NoError(err)

	return c
}

func (suite *ClockTestSuite) TestParseTimeToken() {
	testCases := []struct {
		name   string
		token  string
		hour   int
		minute int
		valid  bool
	}{
		{name: "morning", token: "9:30am", hour: 9, minute: 30, valid: true},
		{name: "afternoon", token: "3:55pm", hour: 15, minute: 55, valid: true},
		{name: "noon", token: "12:00pm", hour: 12, minute: 0, valid: true},
		{name: "midnight", token: "12:00am", hour: 0, minute: 0, valid: true},
		{name: "upper case meridiem", token: "4:00PM", hour: 16, minute: 0, valid: true},
		{name: "two digit hour", token: "10:15am", hour: 10, minute: 15, valid: true},
		{name: "leading zero hour", token: "09:30am", valid: false},
		{name: "24 hour clock", token: "13:00pm", valid: false},
		{name: "missing meridiem", token: "9:30", valid: false},
		{name: "space before meridiem", token: "9:30 am", valid: false},
		{name: "single digit minute", token: "9:5am", valid: false},
		{name: "minute out of range", token: "9:60am", valid: false},
		{name: "empty", token: "", valid: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			hour, minute, err := ParseTimeToken(tc.token)
			if !tc.valid {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimeToken))
				suite.True(errors.IsParseError(err))

				return
			}

			suite.NoError(err)
			suite.Equal(tc.hour, hour)
			suite.Equal(tc.minute, minute)
		})
	}
}

func (suite *ClockTestSuite) TestResolveTimeTodayUsesTradingTimezone() {
	// 14:00 UTC on a March weekday is 9:00am EST
	now := time.Date(2024, time.March, 8, 14, 0, 0, 0, time.UTC)
	c := suite.clockAt(now)

	resolved, err := c.ResolveTimeToday("9:30am")
	suite.NoError(err)
	suite.Equal(time.Date(2024, time.March, 8, 9, 30, 0, 0, suite.location), resolved)
	suite.Equal(time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC), resolved.UTC())
}

func (suite *ClockTestSuite) TestResolveTimeTodayAcrossDaylightSaving() {
	// After the March 10 2024 switch New York is UTC-4
	now := time.Date(2024, time.March, 11, 15, 0, 0, 0, time.UTC)
	c := suite.clockAt(now)

	resolved, err := c.ResolveTimeToday("9:30am")
	suite.NoError(err)
	suite.Equal(time.Date(2024, time.March, 11, 13, 30, 0, 0, time.UTC), resolved.UTC())
}

func (suite *ClockTestSuite) TestResolveTimeTodayUsesTradingDate() {
	// 02:00 UTC on the 9th is still the evening of the 8th in New York
	now := time.Date(2024, time.March, 9, 2, 0, 0, 0, time.UTC)
	c := suite.clockAt(now)

	resolved, err := c.ResolveTimeToday("4:00pm")
	suite.NoError(err)
	suite.Equal(8, resolved.Day())
}

func (suite *ClockTestSuite) TestResolveTimeOnUsesDateOfDay() {
	c := suite.clockAt(time.Date(2024, time.March, 8, 15, 0, 0, 0, time.UTC))

	// 01:00 UTC on the 12th is the evening of the 11th in New York
	day := time.Date(2024, time.March, 12, 1, 0, 0, 0, time.UTC)

	resolved, err := c.ResolveTimeOn("9:30am", day)
	suite.NoError(err)
	suite.Equal(time.Date(2024, time.March, 11, 9, 30, 0, 0, suite.location), resolved)

	_, err = c.ResolveTimeOn("9:30", day)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimeToken))
}

func (suite *ClockTestSuite) TestResolveTimeTodayInvalidToken() {
	c := suite.clockAt(time.Now())

	_, err := c.ResolveTimeToday("09:30")
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidTimeToken, errors.GetCode(err))
}

func (suite *ClockTestSuite) TestSessionHelpers() {
	now := time.Date(2024, time.March, 8, 11, 15, 42, 0, suite.location)
	c := suite.clockAt(now)

	suite.Equal(time.Date(2024, time.March, 8, 9, 30, 0, 0, suite.location), c.MarketOpenToday())
	suite.Equal(time.Date(2024, time.March, 8, 16, 0, 0, 0, suite.location), c.MarketCloseToday())
	suite.Equal(time.Date(2024, time.March, 8, 0, 0, 0, 0, suite.location), c.StartOfToday())
	suite.Equal(float64(MinutesInTradingDay), c.MarketCloseToday().Sub(c.MarketOpenToday()).Minutes())
}

func (suite *ClockTestSuite) TestMarketCloseOrNow() {
	suite.Run("before close returns now", func() {
		now := time.Date(2024, time.March, 8, 11, 0, 0, 0, suite.location)
		suite.Equal(now, suite.clockAt(now).MarketCloseOrNow())
	})

	suite.Run("after close returns close", func() {
		now := time.Date(2024, time.March, 8, 18, 30, 0, 0, suite.location)
		suite.Equal(time.Date(2024, time.March, 8, 16, 0, 0, 0, suite.location), suite.clockAt(now).MarketCloseOrNow())
	})
}

func (suite *ClockTestSuite) TestSameMinute() {
	base := time.Date(2024, time.March, 8, 9, 30, 0, 0, suite.location)

	suite.True(SameMinute(base, base.Add(59*time.Second)))
	suite.False(SameMinute(base, base.Add(60*time.Second)))
	suite.False(SameMinute(base, base.Add(-time.Second)))
	suite.True(SameMinute(base.Add(30*time.Second), base.UTC()))
}

func (suite *ClockTestSuite) TestFormat() {
	c := suite.clockAt(time.Now())
	at := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)

	suite.Equal("09:30", c.Format(at, "15:04"))
}
