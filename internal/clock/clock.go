package clock

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	// Embedded zone database so the trading timezone resolves on minimal images.
	_ "time/tzdata"

	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// TradingTimezone is the exchange timezone every time token is interpreted in.
const TradingTimezone = "America/New_York"

const (
	// MarketOpenToken is the regular-session opening auction (market-on-open).
	MarketOpenToken = "9:30am"
	// MarketCloseToken is the regular-session closing auction (market-on-close).
	MarketCloseToken = "4:00pm"
	// MinutesInTradingDay is the length of the regular session.
	MinutesInTradingDay = 390
)

var timeTokenPattern = regexp.MustCompile(`^(1[0-2]|[1-9]):([0-5][0-9])(am|pm)$`)

var (
	locationOnce sync.Once
	location     *time.Location
	locationErr  error
)

func tradingLocation() (*time.Location, error) {
	locationOnce.Do(func() {
		location, locationErr = time.LoadLocation(TradingTimezone)
	})

	return location, locationErr
}

// Clock supplies the current instant and resolves wall-clock tokens to today's
// instants in the trading timezone.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
	// ResolveTimeToday turns a token such as "9:30am" into today's instant in the trading timezone.
	ResolveTimeToday(token string) (time.Time, error)
	// ResolveTimeOn resolves token on the trading date of day.
	ResolveTimeOn(token string, day time.Time) (time.Time, error)
}

// MarketClock is the Clock bound to the exchange timezone.
type MarketClock struct {
	location *time.Location
	now      func() time.Time
}

// NewMarketClock creates a clock reading the system time.
func NewMarketClock() (*MarketClock, error) {
	return NewMarketClockWithNow(time.Now)
}

// NewMarketClockWithNow creates a clock whose current instant comes from now.
func NewMarketClockWithNow(now func() time.Time) (*MarketClock, error) {
	loc, err := tradingLocation()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to load timezone %s", TradingTimezone)
	}

	return &MarketClock{
		location: loc,
		now:      now,
	}, nil
}

// Location returns the trading timezone.
func (c *MarketClock) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the trading timezone.
func (c *MarketClock) Now() time.Time {
	return c.now().In(c.location)
}

// ResolveTimeToday implements Clock.
func (c *MarketClock) ResolveTimeToday(token string) (time.Time, error) {
	return c.ResolveTimeOn(token, c.Now())
}

// ResolveTimeOn implements Clock. The date is taken in the trading timezone,
// so an instant late in the UTC day still maps to its New York session.
func (c *MarketClock) ResolveTimeOn(token string, day time.Time) (time.Time, error) {
	hour, minute, err := ParseTimeToken(token)
	if err != nil {
		return time.Time{}, err
	}

	year, month, date := day.In(c.location).Date()

	return time.Date(year, month, date, hour, minute, 0, 0, c.location), nil
}

// MarketOpenToday returns today's 9:30am in the trading timezone.
func (c *MarketClock) MarketOpenToday() time.Time {
	return c.mustResolve(MarketOpenToken)
}

// MarketCloseToday returns today's 4:00pm in the trading timezone.
func (c *MarketClock) MarketCloseToday() time.Time {
	return c.mustResolve(MarketCloseToken)
}

// MarketCloseOrNow returns the close if it has already passed, the current instant otherwise.
func (c *MarketClock) MarketCloseOrNow() time.Time {
	now := c.Now()
	closeAt := c.MarketCloseToday()

	if now.After(closeAt) {
		return closeAt
	}

	return now
}

// StartOfToday returns midnight of the current day in the trading timezone.
func (c *MarketClock) StartOfToday() time.Time {
	year, month, day := c.Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, c.location)
}

// Format renders t in the trading timezone.
func (c *MarketClock) Format(t time.Time, layout string) string {
	return t.In(c.location).Format(layout)
}

func (c *MarketClock) mustResolve(token string) time.Time {
	resolved, err := c.ResolveTimeToday(token)
	if err != nil {
		panic(err)
	}

	return resolved
}

// ParseTimeToken parses an "h:mma" token into a 24-hour hour and minute.
// Hours run 1-12 without a leading zero, minutes are two digits and the
// meridiem is am or pm in any case. No whitespace is accepted.
func ParseTimeToken(token string) (int, int, error) {
	match := timeTokenPattern.FindStringSubmatch(strings.ToLower(token))
	if match == nil {
		return 0, 0, errors.Newf(errors.ErrCodeInvalidTimeToken, "invalid time token %q, expected h:mma such as 9:30am", token)
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])

	hour %= 12
	if match[3] == "pm" {
		hour += 12
	}

	return hour, minute, nil
}

// SameMinute reports whether a and b fall in the same calendar minute.
func SameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
