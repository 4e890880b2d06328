package handlers

import (
	"context"

	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"go.uber.org/zap"
)

const tagLogAccount = "LOG ACCOUNT"

// LogAccount logs the account balances, the open positions and the price each
// position would exit at.
type LogAccount struct {
	log *logger.Logger
}

func NewLogAccount(log *logger.Logger) *LogAccount {
	return &LogAccount{log: log.Tagged(tagLogAccount)}
}

// Run implements strategy.Handler.
func (h *LogAccount) Run(ctx context.Context, gateway trading.Gateway) error {
	account, err := gateway.GetAccount(ctx)
	if err != nil {
		return err
	}

	h.log.Info("Account",
		zap.String("account_number", account.AccountNumber),
		zap.String("status", account.Status),
		zap.Stringer("equity", account.Equity),
		zap.Stringer("cash", account.Cash),
		zap.Stringer("buying_power", account.BuyingPower),
		zap.Int("daytrade_count", account.DaytradeCount))

	positions, err := gateway.GetPositions(ctx)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		h.log.Info("No open positions")

		return nil
	}

	selectors := make([]types.QuoteSelector, len(positions))
	for i, position := range positions {
		selectors[i] = types.SelectorFor(position)
	}

	prices := make(map[string]types.QuotePrice, len(positions))

	for _, outcome := range gateway.GetQuotePrices(ctx, selectors) {
		if outcome.Success {
			prices[outcome.Key] = outcome.Value.Unwrap()
		}
	}

	for _, position := range positions {
		fields := []zap.Field{
			zap.String("symbol", position.Symbol),
			zap.String("side", string(position.Side)),
			zap.Stringer("qty", position.Qty),
			zap.Stringer("avg_entry_price", position.AvgEntryPrice),
			zap.Stringer("unrealized_pl", position.UnrealizedPL),
		}

		if price, ok := prices[position.Symbol]; ok {
			fields = append(fields, zap.Stringer("exit_price", price.Price))
		}

		h.log.Info("Position", fields...)
	}

	return nil
}
