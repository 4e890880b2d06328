package main

import (
	"context"
	"os"

	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/dispatch"
	"github.com/rxtech-lab/argo-market-strategy/internal/handlers"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/schedule"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	tradingprovider "github.com/rxtech-lab/argo-market-strategy/internal/trading/provider"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
	"go.uber.org/zap"
)

type appOptions struct {
	configPath     string
	envFile        string
	providerConfig string
	development    bool
}

// app is a fully wired dispatch loop.
type app struct {
	log        *logger.Logger
	file       *schedule.File
	clock      *clock.MarketClock
	gateway    *trading.TradingSystem
	dispatcher *dispatch.Dispatcher
	streaming  bool
}

func newLogger(development bool) (*logger.Logger, error) {
	if development {
		return logger.NewDevelopmentLogger()
	}

	return logger.NewLogger()
}

// loadSchedule reads the schedule file with the built-in handlers registered.
func loadSchedule(path string, log *logger.Logger) (*schedule.File, error) {
	registry := strategy.NewRegistry()
	if err := handlers.Register(registry, log); err != nil {
		return nil, err
	}

	return schedule.LoadFile(path, registry)
}

// loadConnection reads credentials from a provider config file when given,
// from the environment otherwise.
func loadConnection(opts appOptions, log *logger.Logger) (*tradingprovider.Connection, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	if opts.providerConfig != "" {
		data, err := os.ReadFile(opts.providerConfig)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read %s", opts.providerConfig)
		}

		paper, err := getEnvAsBool(envPaper, true)
		if err != nil {
			return nil, err
		}

		providerType := tradingprovider.ProviderAlpacaLive
		if paper {
			providerType = tradingprovider.ProviderAlpacaPaper
		}

		config, err := tradingprovider.ParseProviderConfig(string(providerType), string(data))
		if err != nil {
			return nil, err
		}

		return tradingprovider.NewTradingSystemProvider(providerType, config, log)
	}

	providerType, config, err := credentialsFromEnv()
	if err != nil {
		return nil, err
	}

	return tradingprovider.NewTradingSystemProvider(providerType, config, log)
}

func newApp(opts appOptions) (*app, error) {
	log, err := newLogger(opts.development)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create logger", err)
	}

	file, err := loadSchedule(opts.configPath, log)
	if err != nil {
		return nil, err
	}

	marketClock, err := clock.NewMarketClock()
	if err != nil {
		return nil, err
	}

	connection, err := loadConnection(opts, log)
	if err != nil {
		return nil, err
	}

	gateway, err := trading.NewTradingSystem(
		connection.Client,
		connection.Stream,
		marketClock,
		file.Gateway,
		file.Verbose || connection.Verbose,
		log,
	)
	if err != nil {
		return nil, err
	}

	gate, err := dispatch.ParseGate(file.Gate)
	if err != nil {
		return nil, err
	}

	scheduler := schedule.NewScheduler(file.Entries(), marketClock, log)
	if err := scheduler.Validate(); err != nil {
		return nil, err
	}

	dispatcher, err := dispatch.NewDispatcher(scheduler, gateway, marketClock, gate, log)
	if err != nil {
		return nil, err
	}

	return &app{
		log:        log,
		file:       file,
		clock:      marketClock,
		gateway:    gateway,
		dispatcher: dispatcher,
		streaming:  connection.Stream.IsSome(),
	}, nil
}

func (a *app) newRunner(callbacks dispatch.RunnerCallbacks) (*dispatch.Runner, error) {
	return dispatch.NewRunner(a.dispatcher, a.clock.Location(), a.file.TickTimeout, callbacks, a.log)
}

// listenForTradeUpdates authenticates the trading stream and logs order events.
func (a *app) listenForTradeUpdates(ctx context.Context) error {
	if !a.streaming {
		return nil
	}

	if err := a.gateway.ListenForAuthentication(ctx); err != nil {
		return err
	}

	return a.gateway.ListenForTradeUpdates(ctx, func(update types.TradeUpdate) {
		a.log.Info("Trade update",
			zap.String("event", string(update.Event)),
			zap.String("symbol", update.Order.Symbol),
			zap.String("order_id", update.Order.ID),
			zap.Stringer("qty", update.Qty),
			zap.Stringer("price", update.Price))
	})
}

func (a *app) close() {
	if a.streaming {
		ctx, cancel := context.WithTimeout(context.Background(), a.gateway.Config().RequestTimeout)
		defer cancel()

		if err := a.gateway.StopListeningForTradeUpdates(ctx); err != nil {
			a.log.Debug("Failed to stop trade updates", zap.Error(err))
		}
	}

	if err := a.gateway.Close(); err != nil {
		a.log.Warn("Failed to close gateway", zap.Error(err))
	}

	_ = a.log.Sync()
}
