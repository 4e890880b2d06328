package dispatch

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/metrics"
	"github.com/rxtech-lab/argo-market-strategy/internal/schedule"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

const (
	tagMarketStrategy = "MARKET STRATEGY"

	// stampLayout is the wall-clock form used in dispatch log lines.
	stampLayout = "03:04PM"
)

// Gate decides whether market-open status can suppress a matched handler.
type Gate string

const (
	// GateAdvisory runs a matched handler whether or not the market is open.
	GateAdvisory Gate = schedule.GateAdvisory
	// GateEnforce runs a matched handler only while the market is open.
	GateEnforce Gate = schedule.GateEnforce
)

// ParseGate converts a schedule file gate value. Empty means advisory.
func ParseGate(value string) (Gate, error) {
	switch value {
	case "", schedule.GateAdvisory:
		return GateAdvisory, nil
	case schedule.GateEnforce:
		return GateEnforce, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidConfiguration, "unknown gate %q, expected advisory or enforce", value)
	}
}

// Dispatcher evaluates the schedule once per call and runs at most one handler.
type Dispatcher struct {
	scheduler *schedule.Scheduler
	gateway   trading.Gateway
	clock     clock.Clock
	gate      Gate
	log       *logger.Logger
}

// NewDispatcher creates a dispatcher. The gateway is handed to every handler it runs.
func NewDispatcher(
	scheduler *schedule.Scheduler,
	gateway trading.Gateway,
	c clock.Clock,
	gate Gate,
	log *logger.Logger,
) (*Dispatcher, error) {
	if scheduler == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "scheduler is required")
	}

	if gateway == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "gateway is required")
	}

	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "clock is required")
	}

	if _, err := ParseGate(string(gate)); err != nil {
		return nil, err
	}

	if gate == "" {
		gate = GateAdvisory
	}

	return &Dispatcher{
		scheduler: scheduler,
		gateway:   gateway,
		clock:     c,
		gate:      gate,
		log:       log.Tagged(tagMarketStrategy),
	}, nil
}

// Gate returns the configured gate policy.
func (d *Dispatcher) Gate() Gate {
	return d.gate
}

// Execute runs one tick. Handler errors and panics end up in the report;
// Execute itself never fails.
func (d *Dispatcher) Execute(ctx context.Context) types.DispatchReport {
	started := time.Now()
	now := d.clock.Now()
	stamp := now.Format(stampLayout)

	match := d.scheduler.Select(now)
	marketOpen := d.gateway.IsMarketOpenNow(ctx)

	//nolint:exhaustruct
	report := types.DispatchReport{
		At:         now,
		MarketOpen: marketOpen,
	}

	outcome := metrics.TickOutcomeIdle

	defer func() {
		metrics.ObserveDispatchTick(outcome, time.Since(started))
	}()

	if match.IsNone() {
		d.log.Info("No scheduled strategy to run, exiting gracefully",
			zap.String("at", stamp),
			zap.Bool("market_open", marketOpen))

		return report
	}

	entry := match.Unwrap()
	report.Handler = entry.Name
	report.TimeSpec = entry.Time

	if d.gate == GateEnforce && !marketOpen {
		report.Suppressed = true
		outcome = metrics.TickOutcomeSuppressed

		d.log.Info("The market is closed, bypassing execution",
			zap.String("at", stamp),
			zap.String("handler", entry.Name))

		return report
	}

	if !marketOpen {
		d.log.Warn("Running scheduled strategy while the market is closed",
			zap.String("at", stamp),
			zap.String("handler", entry.Name))
	}

	d.log.Info("Scheduled strategy found, running now",
		zap.String("at", stamp),
		zap.String("time", entry.Time),
		zap.String("handler", entry.Name))

	report.RanHandler = true
	outcome = metrics.TickOutcomeRan

	if err := d.run(ctx, entry); err != nil {
		report.HandlerError = errors.ToInfo(err)
		outcome = metrics.TickOutcomeFailed

		d.log.Error("Problem executing scheduled handler",
			zap.String("handler", entry.Name),
			zap.Error(err))
	}

	return report
}

func (d *Dispatcher) run(ctx context.Context, entry schedule.Entry) error {
	var (
		catcher panics.Catcher
		err     error
	)

	catcher.Try(func() {
		err = entry.Handler.Run(ctx, d.gateway)
	})

	if recovered := catcher.Recovered(); recovered != nil {
		return errors.Wrapf(errors.ErrCodeHandlerPanicked, recovered.AsError(), "handler %s panicked", entry.Name)
	}

	if err != nil {
		return errors.Wrapf(errors.ErrCodeHandlerFailed, err, "handler %s failed", entry.Name)
	}

	return nil
}
