package schedule

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
	"go.uber.org/zap"
)

const tagScheduler = "SCHEDULER"

// Scheduler picks the entry to run for an instant. Entries are evaluated in
// configured order and the first match wins, so overlapping entries resolve
// to the one listed first.
type Scheduler struct {
	entries []Entry
	clock   clock.Clock
	log     *logger.Logger
}

// NewScheduler creates a scheduler over a copy of entries.
func NewScheduler(entries []Entry, c clock.Clock, log *logger.Logger) *Scheduler {
	owned := make([]Entry, len(entries))
	copy(owned, entries)

	return &Scheduler{
		entries: owned,
		clock:   c,
		log:     log.Tagged(tagScheduler),
	}
}

// Entries returns the configured entries in order.
func (s *Scheduler) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

// Resolve binds an entry's time spec to today in the trading timezone.
func (s *Scheduler) Resolve(entry Entry) (Window, error) {
	return s.resolve(entry, s.clock.ResolveTimeToday)
}

// ResolveOn binds an entry's time spec to the trading date of day.
func (s *Scheduler) ResolveOn(entry Entry, day time.Time) (Window, error) {
	return s.resolve(entry, func(token string) (time.Time, error) {
		return s.clock.ResolveTimeOn(token, day)
	})
}

func (s *Scheduler) resolve(entry Entry, resolveToken func(token string) (time.Time, error)) (Window, error) {
	tokens, err := ParseTimeSpec(entry.Time)
	if err != nil {
		return Window{}, err
	}

	instants := make([]time.Time, len(tokens))

	for i, token := range tokens {
		instant, err := resolveToken(token)
		if err != nil {
			return Window{}, errors.Wrapf(errors.ErrCodeInvalidTimeSpec, err, "time spec %q", entry.Time)
		}

		instants[i] = instant
	}

	window := Window{Start: instants[0], End: optional.None[time.Time]()}
	if len(instants) == 2 {
		window.End = optional.Some(instants[1])
	}

	return window, nil
}

// Select returns the first entry whose window, bound to the trading date of
// now, contains now. An entry whose spec fails to resolve is logged and
// skipped; it never stops the scan.
func (s *Scheduler) Select(now time.Time) optional.Option[Entry] {
	for i, entry := range s.entries {
		window, err := s.ResolveOn(entry, now)
		if err != nil {
			s.log.Warn("Skipping schedule entry with invalid time",
				zap.Int("index", i),
				zap.String("time", entry.Time),
				zap.String("handler", entry.Name),
				zap.Error(err))

			continue
		}

		if window.Contains(now) {
			s.log.Debug("Schedule entry matched",
				zap.Int("index", i),
				zap.String("time", entry.Time),
				zap.String("handler", entry.Name))

			return optional.Some(entry)
		}
	}

	return optional.None[Entry]()
}

// Validate fails on the first entry whose spec is malformed, whose range does
// not end after it starts, or which has no handler.
func (s *Scheduler) Validate() error {
	for i, entry := range s.entries {
		if entry.Handler == nil {
			return errors.Newf(errors.ErrCodeMissingParameter, "schedule entry %d (%s) has no handler", i, entry.Time)
		}

		window, err := s.Resolve(entry)
		if err != nil {
			return errors.Wrapf(errors.GetCode(err), err, "schedule entry %d", i)
		}

		if window.IsRange() && !window.End.Unwrap().After(window.Start) {
			return errors.Newf(errors.ErrCodeInvalidTimeSpec, "schedule entry %d: range %q must end after it starts", i, entry.Time)
		}
	}

	return nil
}

// SelectHandler returns the handler of the first entry matching now.
func SelectHandler(entries []Entry, c clock.Clock, now time.Time, log *logger.Logger) optional.Option[strategy.Handler] {
	entry := NewScheduler(entries, c, log).Select(now)
	if entry.IsNone() {
		return optional.None[strategy.Handler]()
	}

	return optional.Some(entry.Unwrap().Handler)
}
