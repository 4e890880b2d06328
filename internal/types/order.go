package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/shopspring/decimal"
)

type OrderSide string

type OrderType string

type OrderStatus string

type TimeInForce string

type OrderStatusFilter string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

const (
	OrderTypeMarket       OrderType = "market"
	OrderTypeLimit        OrderType = "limit"
	OrderTypeStop         OrderType = "stop"
	OrderTypeStopLimit    OrderType = "stop_limit"
	OrderTypeTrailingStop OrderType = "trailing_stop"
)

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusDoneForDay      OrderStatus = "done_for_day"
	OrderStatusCanceled        OrderStatus = "canceled"
	OrderStatusExpired         OrderStatus = "expired"
	OrderStatusReplaced        OrderStatus = "replaced"
	OrderStatusPendingCancel   OrderStatus = "pending_cancel"
	OrderStatusPendingReplace  OrderStatus = "pending_replace"
	OrderStatusAccepted        OrderStatus = "accepted"
	OrderStatusPendingNew      OrderStatus = "pending_new"
	OrderStatusRejected        OrderStatus = "rejected"
)

const (
	TimeInForceDay TimeInForce = "day"
	TimeInForceGTC TimeInForce = "gtc"
	// TimeInForceOPG executes at the opening auction (market-on-open).
	TimeInForceOPG TimeInForce = "opg"
	// TimeInForceCLS executes at the closing auction (market-on-close).
	TimeInForceCLS TimeInForce = "cls"
	TimeInForceIOC TimeInForce = "ioc"
	TimeInForceFOK TimeInForce = "fok"
)

const (
	OrderStatusFilterOpen   OrderStatusFilter = "open"
	OrderStatusFilterClosed OrderStatusFilter = "closed"
	OrderStatusFilterAll    OrderStatusFilter = "all"
)

// Order is an order as reported by the brokerage.
type Order struct {
	ID             string          `json:"id" yaml:"id"`
	ClientOrderID  string          `json:"client_order_id" yaml:"client_order_id"`
	CreatedAt      time.Time       `json:"created_at" yaml:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at" yaml:"updated_at"`
	SubmittedAt    *time.Time      `json:"submitted_at" yaml:"submitted_at"`
	FilledAt       *time.Time      `json:"filled_at" yaml:"filled_at"`
	CanceledAt     *time.Time      `json:"canceled_at" yaml:"canceled_at"`
	ReplacedBy     string          `json:"replaced_by" yaml:"replaced_by"`
	Replaces       string          `json:"replaces" yaml:"replaces"`
	Symbol         string          `json:"symbol" yaml:"symbol"`
	AssetClass     string          `json:"asset_class" yaml:"asset_class"`
	Qty            decimal.Decimal `json:"qty" yaml:"qty"`
	Notional       decimal.Decimal `json:"notional" yaml:"notional"`
	FilledQty      decimal.Decimal `json:"filled_qty" yaml:"filled_qty"`
	FilledAvgPrice decimal.Decimal `json:"filled_avg_price" yaml:"filled_avg_price"`
	Type           OrderType       `json:"type" yaml:"type"`
	Side           OrderSide       `json:"side" yaml:"side"`
	TimeInForce    TimeInForce     `json:"time_in_force" yaml:"time_in_force"`
	LimitPrice     decimal.Decimal `json:"limit_price" yaml:"limit_price"`
	StopPrice      decimal.Decimal `json:"stop_price" yaml:"stop_price"`
	Status         OrderStatus     `json:"status" yaml:"status"`
	ExtendedHours  bool            `json:"extended_hours" yaml:"extended_hours"`
}

// PlaceOrderRequest describes a new order.
// Exactly one of Qty and Notional must be set.
type PlaceOrderRequest struct {
	Symbol        string                           `json:"symbol" yaml:"symbol" validate:"required"`
	Qty           optional.Option[decimal.Decimal] `json:"qty,omitempty" yaml:"qty,omitempty"`
	Notional      optional.Option[decimal.Decimal] `json:"notional,omitempty" yaml:"notional,omitempty"`
	Side          OrderSide                        `json:"side" yaml:"side" validate:"required,oneof=buy sell"`
	Type          OrderType                        `json:"type" yaml:"type" validate:"required,oneof=market limit stop stop_limit trailing_stop"`
	TimeInForce   TimeInForce                      `json:"time_in_force" yaml:"time_in_force" validate:"required,oneof=day gtc opg cls ioc fok"`
	LimitPrice    optional.Option[decimal.Decimal] `json:"limit_price,omitempty" yaml:"limit_price,omitempty"`
	StopPrice     optional.Option[decimal.Decimal] `json:"stop_price,omitempty" yaml:"stop_price,omitempty"`
	TrailPercent  optional.Option[decimal.Decimal] `json:"trail_percent,omitempty" yaml:"trail_percent,omitempty"`
	ExtendedHours bool                             `json:"extended_hours,omitempty" yaml:"extended_hours,omitempty"`
	// ClientOrderID is generated by the gateway when left empty.
	ClientOrderID string `json:"client_order_id,omitempty" yaml:"client_order_id,omitempty"`
}

// ReplaceOrderRequest amends an open order. Unset fields keep their current value.
type ReplaceOrderRequest struct {
	OrderID       string                           `json:"-" yaml:"order_id" validate:"required"`
	Qty           optional.Option[decimal.Decimal] `json:"qty,omitempty" yaml:"qty,omitempty"`
	TimeInForce   TimeInForce                      `json:"time_in_force,omitempty" yaml:"time_in_force,omitempty" validate:"omitempty,oneof=day gtc opg cls ioc fok"`
	LimitPrice    optional.Option[decimal.Decimal] `json:"limit_price,omitempty" yaml:"limit_price,omitempty"`
	StopPrice     optional.Option[decimal.Decimal] `json:"stop_price,omitempty" yaml:"stop_price,omitempty"`
	ClientOrderID string                           `json:"client_order_id,omitempty" yaml:"client_order_id,omitempty"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status  OrderStatusFilter
	Limit   int
	After   optional.Option[time.Time]
	Until   optional.Option[time.Time]
	Symbols []string
}

// ClosePositionsRequest controls the bulk liquidation of all positions.
type ClosePositionsRequest struct {
	CancelOrders bool
}

// PositionClosure is the per-symbol result of a bulk liquidation.
type PositionClosure struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Status int    `json:"status" yaml:"status"`
	Order  *Order `json:"body" yaml:"order"`
}

// OrderCancellation is the per-order result of a bulk cancellation.
type OrderCancellation struct {
	ID     string `json:"id" yaml:"id"`
	Status int    `json:"status" yaml:"status"`
}

// Validate validates the PlaceOrderRequest struct.
func (r *PlaceOrderRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid order request", err)
	}

	if r.Qty.IsSome() == r.Notional.IsSome() {
		return errors.Newf(errors.ErrCodeInvalidParameter, "order for %s must set exactly one of qty and notional", r.Symbol)
	}

	if r.Qty.IsSome() && !r.Qty.Unwrap().IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidParameter, "order for %s has non-positive qty", r.Symbol)
	}

	if r.Notional.IsSome() && !r.Notional.Unwrap().IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidParameter, "order for %s has non-positive notional", r.Symbol)
	}

	needsLimit := r.Type == OrderTypeLimit || r.Type == OrderTypeStopLimit
	if needsLimit && r.LimitPrice.IsNone() {
		return errors.Newf(errors.ErrCodeMissingParameter, "%s order for %s requires limit_price", r.Type, r.Symbol)
	}

	needsStop := r.Type == OrderTypeStop || r.Type == OrderTypeStopLimit
	if needsStop && r.StopPrice.IsNone() {
		return errors.Newf(errors.ErrCodeMissingParameter, "%s order for %s requires stop_price", r.Type, r.Symbol)
	}

	if r.Type == OrderTypeTrailingStop && r.TrailPercent.IsNone() {
		return errors.Newf(errors.ErrCodeMissingParameter, "trailing_stop order for %s requires trail_percent", r.Symbol)
	}

	return nil
}

// Validate validates the ReplaceOrderRequest struct.
func (r *ReplaceOrderRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid replace request", err)
	}

	return nil
}

// IsTerminal is true once the order can no longer fill.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusFilled, OrderStatusCanceled, OrderStatusExpired, OrderStatusReplaced, OrderStatusRejected, OrderStatusDoneForDay:
		return true
	default:
		return false
	}
}
