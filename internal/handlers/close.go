package handlers

import (
	"context"

	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading/batch"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"go.uber.org/zap"
)

const (
	tagCloseAllPositions = "CLOSE ALL POSITIONS"
	tagCancelAllOrders   = "CANCEL ALL ORDERS"
	tagClosePositions    = "CLOSE POSITIONS"
)

// CloseAllPositions flattens the account with one bulk call.
type CloseAllPositions struct {
	cancelOrders bool
	log          *logger.Logger
}

// NewCloseAllPositions creates the handler. With cancelOrders, open orders
// are cancelled before positions are closed.
func NewCloseAllPositions(cancelOrders bool, log *logger.Logger) *CloseAllPositions {
	return &CloseAllPositions{cancelOrders: cancelOrders, log: log.Tagged(tagCloseAllPositions)}
}

// Run implements strategy.Handler.
func (h *CloseAllPositions) Run(ctx context.Context, gateway trading.Gateway) error {
	outcome := gateway.CloseAllPositions(ctx, h.cancelOrders)
	if !outcome.Success {
		return bulkError(errors.ErrCodePositionCloseFailed, "failed to close all positions", outcome)
	}

	h.log.Info("Closed all positions", zap.Int("count", outcome.Count), zap.Bool("cancel_orders", h.cancelOrders))

	return nil
}

// CancelAllOrders cancels every open order with one bulk call.
type CancelAllOrders struct {
	log *logger.Logger
}

// NewCancelAllOrders creates the handler that cancels every open order.
func NewCancelAllOrders(log *logger.Logger) *CancelAllOrders {
	return &CancelAllOrders{log: log.Tagged(tagCancelAllOrders)}
}

// Run implements strategy.Handler.
func (h *CancelAllOrders) Run(ctx context.Context, gateway trading.Gateway) error {
	outcome := gateway.CancelAllOrders(ctx)
	if !outcome.Success {
		return bulkError(errors.ErrCodeOrderFailed, "failed to cancel all orders", outcome)
	}

	h.log.Info("Cancelled all orders", zap.Int("count", outcome.Count))

	return nil
}

// ClosePositions closes positions one request per symbol, so a symbol that
// fails to close does not hold back the others.
type ClosePositions struct {
	symbols []string
	log     *logger.Logger
}

// NewClosePositions creates the handler for symbols. Without symbols it closes
// every position open when it runs.
func NewClosePositions(log *logger.Logger, symbols ...string) *ClosePositions {
	return &ClosePositions{symbols: symbols, log: log.Tagged(tagClosePositions)}
}

// Run implements strategy.Handler. It fails when any symbol failed to close.
func (h *ClosePositions) Run(ctx context.Context, gateway trading.Gateway) error {
	symbols := h.symbols

	if len(symbols) == 0 {
		positions, err := gateway.GetPositions(ctx)
		if err != nil {
			return err
		}

		for _, position := range positions {
			symbols = append(symbols, position.Symbol)
		}
	}

	if len(symbols) == 0 {
		h.log.Info("No positions to close")

		return nil
	}

	summary := batch.Summarize(gateway.ClosePositions(ctx, symbols))
	if !summary.AllSucceeded() {
		return errors.Newf(errors.ErrCodePositionCloseFailed, "failed to close %d of %d positions: %v",
			len(summary.Failed), len(symbols), summary.Failed)
	}

	h.log.Info("Closed positions", zap.Strings("symbols", summary.Succeeded))

	return nil
}

func bulkError(code errors.ErrorCode, message string, outcome types.BulkOutcome) error {
	if outcome.Error == nil {
		return errors.New(code, message)
	}

	return errors.Newf(code, "%s: %s", message, outcome.Error.Message)
}
