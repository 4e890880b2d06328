package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/moznion/go-optional"
	"github.com/robfig/cron/v3"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"go.uber.org/zap"
)

// EveryMinute is the cron spec of the dispatch loop.
const EveryMinute = "* * * * *"

// OnRunnerStartCallback is called once the cron loop is scheduled. Returning an error aborts the start.
type OnRunnerStartCallback func(spec string) error

// OnRunnerStopCallback is called when the runner stops (always called via defer in Run).
type OnRunnerStopCallback func(err error)

// OnTickCallback is called with the report of every tick.
type OnTickCallback func(report types.DispatchReport)

// RunnerCallbacks holds the runner lifecycle callbacks.
// All fields are pointers - nil means no callback will be invoked.
type RunnerCallbacks struct {
	OnRunnerStart *OnRunnerStartCallback
	OnRunnerStop  *OnRunnerStopCallback
	OnTick        *OnTickCallback
}

// Runner drives a Dispatcher once a minute in the trading timezone.
type Runner struct {
	dispatcher  *Dispatcher
	cron        *cron.Cron
	tickTimeout time.Duration
	callbacks   RunnerCallbacks
	log         *logger.Logger

	mu   sync.RWMutex
	last optional.Option[types.DispatchReport]
}

// NewRunner creates a runner. Ticks never overlap: a tick still running when
// the next minute starts causes that minute to be skipped.
func NewRunner(
	dispatcher *Dispatcher,
	location *time.Location,
	tickTimeout time.Duration,
	callbacks RunnerCallbacks,
	log *logger.Logger,
) (*Runner, error) {
	if dispatcher == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "dispatcher is required")
	}

	if location == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "location is required")
	}

	if tickTimeout <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "tick timeout must be positive, got %s", tickTimeout)
	}

	runnerLog := log.Named("runner")
	cronLog := cronLogger{log: runnerLog}

	return &Runner{
		dispatcher: dispatcher,
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		tickTimeout: tickTimeout,
		callbacks:   callbacks,
		log:         runnerLog,
		mu:          sync.RWMutex{},
		last:        optional.None[types.DispatchReport](),
	}, nil
}

// Run schedules the loop and blocks until ctx is done. In-flight ticks are
// allowed to finish before it returns.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		if r.callbacks.OnRunnerStop != nil {
			(*r.callbacks.OnRunnerStop)(err)
		}
	}()

	if err := r.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	r.Stop()

	return nil
}

// Start schedules the loop without blocking. Ticks derive their context from ctx.
func (r *Runner) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(EveryMinute, func() {
		r.Tick(ctx)
	})
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to schedule %q", EveryMinute)
	}

	if r.callbacks.OnRunnerStart != nil {
		if err := (*r.callbacks.OnRunnerStart)(EveryMinute); err != nil {
			return err
		}
	}

	r.cron.Start()
	r.log.Info("Dispatch loop started",
		zap.String("spec", EveryMinute),
		zap.Duration("tick_timeout", r.tickTimeout),
		zap.String("gate", string(r.dispatcher.Gate())))

	return nil
}

// Stop stops scheduling and waits for a running tick.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("Dispatch loop stopped")
}

// Tick runs one dispatch under the tick timeout and records its report.
func (r *Runner) Tick(ctx context.Context) types.DispatchReport {
	tickCtx, cancel := context.WithTimeout(ctx, r.tickTimeout)
	defer cancel()

	report := r.dispatcher.Execute(tickCtx)

	r.mu.Lock()
	r.last = optional.Some(report)
	r.mu.Unlock()

	if r.callbacks.OnTick != nil {
		(*r.callbacks.OnTick)(report)
	}

	return report
}

// LastReport returns the report of the most recent tick, if any ran.
func (r *Runner) LastReport() optional.Option[types.DispatchReport] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.last
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
