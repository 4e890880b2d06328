package schedule

import (
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
)

// rangeSeparator splits the two ends of a range time spec such as "9:30am-4:00pm".
const rangeSeparator = "-"

// Entry binds a time spec to the handler it triggers.
type Entry struct {
	// Time is a single "h:mma" token or an "h:mma-h:mma" range.
	Time string
	// Name is the registry name of the handler, used in logs and reports.
	Name    string
	Handler strategy.Handler
}

// Window is an entry's time spec bound to today.
// End is None for single-minute entries.
type Window struct {
	Start time.Time
	End   optional.Option[time.Time]
}

// IsRange is true for windows built from an "h:mma-h:mma" spec.
func (w Window) IsRange() bool {
	return w.End.IsSome()
}

// Contains reports whether now falls inside the window. A single instant
// matches its whole calendar minute; a range is [Start, End).
func (w Window) Contains(now time.Time) bool {
	if w.End.IsNone() {
		return clock.SameMinute(w.Start, now)
	}

	return !now.Before(w.Start) && now.Before(w.End.Unwrap())
}

// ParseTimeSpec splits a time spec into its one or two trimmed tokens.
// It checks the shape of the spec, not the tokens themselves.
func ParseTimeSpec(spec string) ([]string, error) {
	parts := strings.Split(spec, rangeSeparator)
	if len(parts) > 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidTimeSpec, "time spec %q has more than two times", spec)
	}

	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return nil, errors.Newf(errors.ErrCodeInvalidTimeSpec, "time spec %q has an empty time", spec)
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// checkTimeSpec validates a spec without binding it to a date: every token
// must parse and a range must end after it starts.
func checkTimeSpec(spec string) error {
	tokens, err := ParseTimeSpec(spec)
	if err != nil {
		return err
	}

	minutes := make([]int, len(tokens))

	for i, token := range tokens {
		hour, minute, err := clock.ParseTimeToken(token)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidTimeSpec, err, "time spec %q", spec)
		}

		minutes[i] = hour*60 + minute
	}

	if len(minutes) == 2 && minutes[1] <= minutes[0] {
		return errors.Newf(errors.ErrCodeInvalidTimeSpec, "time spec %q must end after it starts", spec)
	}

	return nil
}
