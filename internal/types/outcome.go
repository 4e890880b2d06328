package types

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// BatchOutcome is the per-item result of a fan-out call.
// Value is set when Success is true, Error otherwise. A partial outcome is
// the exception: Success is false, Error is set and Value holds what was
// gathered before the failure.
type BatchOutcome[T any] struct {
	Key     string             `json:"key" yaml:"key"`
	Success bool               `json:"success" yaml:"success"`
	Value   optional.Option[T] `json:"value,omitempty" yaml:"value,omitempty"`
	Error   *errors.ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded builds a successful outcome.
func Succeeded[T any](key string, value T) BatchOutcome[T] {
	return BatchOutcome[T]{
		Key:     key,
		Success: true,
		Value:   optional.Some(value),
		Error:   nil,
	}
}

// Failed builds a failed outcome from err.
func Failed[T any](key string, err error) BatchOutcome[T] {
	return BatchOutcome[T]{
		Key:     key,
		Success: false,
		Value:   optional.None[T](),
		Error:   errors.ToInfo(err),
	}
}

// Partial builds a failed outcome that keeps the value gathered before err.
func Partial[T any](key string, value T, err error) BatchOutcome[T] {
	return BatchOutcome[T]{
		Key:     key,
		Success: false,
		Value:   optional.Some(value),
		Error:   errors.ToInfo(err),
	}
}

// PlaceOrderOutcome reports one order placement. Order is set on success.
type PlaceOrderOutcome = BatchOutcome[Order]

// BulkOutcome reports an account-wide operation such as closing all positions.
type BulkOutcome struct {
	Success bool              `json:"success" yaml:"success"`
	Count   int               `json:"count" yaml:"count"`
	Error   *errors.ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`
}

// DispatchReport is the result of one dispatch tick.
type DispatchReport struct {
	At           time.Time         `json:"at" yaml:"at"`
	MarketOpen   bool              `json:"market_open" yaml:"market_open"`
	RanHandler   bool              `json:"ran_handler" yaml:"ran_handler"`
	Handler      string            `json:"handler,omitempty" yaml:"handler,omitempty"`
	TimeSpec     string            `json:"time_spec,omitempty" yaml:"time_spec,omitempty"`
	Suppressed   bool              `json:"suppressed" yaml:"suppressed"`
	HandlerError *errors.ErrorInfo `json:"handler_error,omitempty" yaml:"handler_error,omitempty"`
}
