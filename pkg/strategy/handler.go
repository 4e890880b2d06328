package strategy

import (
	"context"

	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
)

// Handler is user-supplied logic invoked when its schedule entry matches.
// Its internal state and side effects are opaque to the dispatcher.
type Handler interface {
	Run(ctx context.Context, gateway trading.Gateway) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, gateway trading.Gateway) error

// Run implements Handler.
func (f HandlerFunc) Run(ctx context.Context, gateway trading.Gateway) error {
	return f(ctx, gateway)
}
