package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/dispatch"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/metrics"
	"github.com/rxtech-lab/argo-market-strategy/internal/schedule"
	"github.com/rxtech-lab/argo-market-strategy/internal/status"
	tradingprovider "github.com/rxtech-lab/argo-market-strategy/internal/trading/provider"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/internal/version"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	schemaSchedule = "schedule"
	schemaProvider = "provider"

	windowLayout = "3:04PM MST"
)

func runAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(optionsFrom(cmd))
	if err != nil {
		return err
	}
	defer a.close()

	metrics.Init()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	onStart := dispatch.OnRunnerStartCallback(func(string) error {
		return a.listenForTradeUpdates(ctx)
	})
	onStop := dispatch.OnRunnerStopCallback(func(err error) {
		if err != nil {
			a.log.Error("Dispatch loop stopped with error", zap.Error(err))
		}
	})

	//nolint:exhaustruct
	runner, err := a.newRunner(dispatch.RunnerCallbacks{OnRunnerStart: &onStart, OnRunnerStop: &onStop})
	if err != nil {
		return err
	}

	if address := cmd.String("listen"); address != "" {
		server := status.NewServer(runner, a.log)
		if err := server.Start(address); err != nil {
			return err
		}

		defer func() {
			if err := server.Stop(); err != nil {
				a.log.Warn("Failed to stop status server", zap.Error(err))
			}
		}()
	}

	return runner.Run(ctx)
}

func tickAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(optionsFrom(cmd))
	if err != nil {
		return err
	}
	defer a.close()

	//nolint:exhaustruct
	runner, err := a.newRunner(dispatch.RunnerCallbacks{})
	if err != nil {
		return err
	}

	return printReport(cmd, runner.Tick(ctx))
}

func printReport(cmd *cli.Command, report types.DispatchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnknown, "failed to encode dispatch report", err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, string(data))

	return err
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	file, err := loadSchedule(cmd.String("config"), logger.NewNopLogger())
	if err != nil {
		return err
	}

	marketClock, err := clock.NewMarketClock()
	if err != nil {
		return err
	}

	scheduler := schedule.NewScheduler(file.Entries(), marketClock, logger.NewNopLogger())
	if err := scheduler.Validate(); err != nil {
		return err
	}

	out := cmd.Root().Writer
	style := newStyles(out)

	fmt.Fprintln(out, style.title.Render(cmd.String("config")+" is valid"),
		style.faint.Render(fmt.Sprintf("(gate: %s, tick timeout: %s)", file.Gate, file.TickTimeout)))

	for i, entry := range scheduler.Entries() {
		window, err := scheduler.Resolve(entry)
		if err != nil {
			return err
		}

		span := window.Start.Format(windowLayout)
		if window.IsRange() {
			span += " - " + window.End.Unwrap().Format(windowLayout)
		}

		fmt.Fprintf(out, "%2d. %s%s\n", i+1, style.span.Render(span), style.handler.Render(entry.Name))
	}

	return nil
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	var (
		schema string
		err    error
	)

	switch kind := cmd.String("kind"); kind {
	case schemaSchedule:
		//nolint:exhaustruct
		schema, err = strategy.ToIndentedJSONSchema(schedule.File{})
	case schemaProvider:
		schema, err = tradingprovider.GetProviderConfigSchema(string(tradingprovider.ProviderAlpacaPaper))
	default:
		return errors.Newf(errors.ErrCodeInvalidParameter, "unknown schema kind %q, expected %s or %s", kind, schemaSchedule, schemaProvider)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

func versionAction(_ context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())

	return err
}
