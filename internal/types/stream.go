package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeEvent string

const (
	TradeEventNew      TradeEvent = "new"
	TradeEventFill     TradeEvent = "fill"
	TradeEventPartial  TradeEvent = "partial_fill"
	TradeEventCanceled TradeEvent = "canceled"
	TradeEventExpired  TradeEvent = "expired"
	TradeEventReplaced TradeEvent = "replaced"
	TradeEventRejected TradeEvent = "rejected"
)

// TradeUpdatesStream is the stream name carrying order lifecycle events.
const TradeUpdatesStream = "trade_updates"

// TradeUpdate is an order lifecycle event pushed over the trading stream.
type TradeUpdate struct {
	Event       TradeEvent      `json:"event" yaml:"event"`
	ExecutionID string          `json:"execution_id" yaml:"execution_id"`
	Order       Order           `json:"order" yaml:"order"`
	Timestamp   *time.Time      `json:"timestamp" yaml:"timestamp"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Qty         decimal.Decimal `json:"qty" yaml:"qty"`
	PositionQty decimal.Decimal `json:"position_qty" yaml:"position_qty"`
}

// TradeUpdateCallback receives trade updates as they arrive.
type TradeUpdateCallback func(update TradeUpdate)
