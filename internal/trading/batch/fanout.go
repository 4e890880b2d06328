package batch

import (
	"context"

	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the fan-out ceiling when none is configured.
const DefaultConcurrency = 8

type options struct {
	concurrency int
}

// Option configures a fan-out.
type Option func(*options)

// WithConcurrency bounds the number of operations in flight. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// FanOut runs op once per item with bounded concurrency and returns exactly
// one outcome per item, in input order. Every worker writes only its own slot.
// A failing or panicking item never affects its siblings, and FanOut only
// returns once every started operation has finished.
func FanOut[IN, OUT any](
	ctx context.Context,
	items []IN,
	key func(IN) string,
	op func(ctx context.Context, item IN) (OUT, error),
	opts ...Option,
) []types.BatchOutcome[OUT] {
	o := newOptions(opts)
	outcomes := make([]types.BatchOutcome[OUT], len(items))

	var group errgroup.Group
	group.SetLimit(o.concurrency)

	for i, item := range items {
		group.Go(func() error {
			outcomes[i] = runOne(ctx, key(item), item, op)

			return nil
		})
	}

	// workers never return errors, failures live in the outcomes
	_ = group.Wait()

	return outcomes
}

func runOne[IN, OUT any](
	ctx context.Context,
	key string,
	item IN,
	op func(ctx context.Context, item IN) (OUT, error),
) types.BatchOutcome[OUT] {
	if err := ctx.Err(); err != nil {
		return types.Failed[OUT](key, errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "request for %s not sent", key))
	}

	var (
		catcher panics.Catcher
		value   OUT
		err     error
	)

	catcher.Try(func() {
		value, err = op(ctx, item)
	})

	if recovered := catcher.Recovered(); recovered != nil {
		return types.Failed[OUT](key, errors.Wrapf(errors.ErrCodeOperationPanicked, recovered.AsError(), "operation for %s panicked", key))
	}

	var partial *partialError[OUT]
	if errors.As(err, &partial) {
		return types.Partial(key, partial.value, partial.cause)
	}

	if err != nil {
		return types.Failed[OUT](key, err)
	}

	return types.Succeeded(key, value)
}

// partialError carries the value an operation gathered before it failed.
type partialError[T any] struct {
	value T
	cause error
}

func (e *partialError[T]) Error() string {
	return e.cause.Error()
}

func (e *partialError[T]) Unwrap() error {
	return e.cause
}

// WithPartial marks err as a failure that still produced value. FanOut turns it
// into a partial outcome instead of dropping value.
func WithPartial[T any](value T, err error) error {
	if err == nil {
		return nil
	}

	return &partialError[T]{value: value, cause: err}
}

// Summary splits fan-out outcomes into succeeding and failing keys.
type Summary struct {
	Succeeded []string
	Failed    []string
}

// Summarize reduces outcomes to a Summary, preserving input order.
func Summarize[T any](outcomes []types.BatchOutcome[T]) Summary {
	summary := Summary{
		Succeeded: []string{},
		Failed:    []string{},
	}

	for _, outcome := range outcomes {
		if outcome.Success {
			summary.Succeeded = append(summary.Succeeded, outcome.Key)
		} else {
			summary.Failed = append(summary.Failed, outcome.Key)
		}
	}

	return summary
}

// AllSucceeded is true when no outcome failed.
func (s Summary) AllSucceeded() bool {
	return len(s.Failed) == 0
}
