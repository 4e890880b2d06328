// Package handlers holds the built-in strategy handlers that schedule files
// can reference by name.
package handlers

import (
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
)

const (
	NameLogAccount        = "log-account"
	NameCloseAllPositions = "close-all-positions"
	NameCancelAllOrders   = "cancel-all-orders"
	NameClosePositions    = "close-positions"
)

// Register adds every built-in handler to reg.
func Register(reg *strategy.Registry, log *logger.Logger) error {
	builtins := map[string]strategy.Handler{
		NameLogAccount:        NewLogAccount(log),
		NameCloseAllPositions: NewCloseAllPositions(true, log),
		NameCancelAllOrders:   NewCancelAllOrders(log),
		NameClosePositions:    NewClosePositions(log),
	}

	for _, name := range []string{NameLogAccount, NameCloseAllPositions, NameCancelAllOrders, NameClosePositions} {
		if err := reg.Register(name, builtins[name]); err != nil {
			return errors.Wrapf(errors.GetCode(err), err, "failed to register built-in handler %s", name)
		}
	}

	return nil
}
