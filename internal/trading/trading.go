package trading

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/trading/batch"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
)

// Client is the request/response surface of a brokerage.
// Every call is a single remote request; batching and pagination live in the Gateway.
type Client interface {
	// GetAccount returns the account bound to the credentials
	GetAccount(ctx context.Context) (types.Account, error)
	// GetAssets returns every asset the brokerage tracks
	GetAssets(ctx context.Context) ([]types.Asset, error)
	// GetPositions returns all open positions
	GetPositions(ctx context.Context) ([]types.Position, error)
	// GetClock returns the brokerage's session clock
	GetClock(ctx context.Context) (types.MarketClock, error)
	// GetBars returns one page of bars for up to the provider's symbol limit
	GetBars(ctx context.Context, req types.BarsRequest) (types.BarsPage, error)
	// GetQuotes returns one page of quotes for a single symbol
	GetQuotes(ctx context.Context, req types.QuotesRequest) (types.QuotesPage, error)
	// GetSnapshots returns the latest market state keyed by symbol. Unknown symbols are absent.
	GetSnapshots(ctx context.Context, symbols []string) (map[string]types.Snapshot, error)
	// PlaceOrder submits a new order
	PlaceOrder(ctx context.Context, req types.PlaceOrderRequest) (types.Order, error)
	// ReplaceOrder amends an open order
	ReplaceOrder(ctx context.Context, req types.ReplaceOrderRequest) (types.Order, error)
	// ClosePosition liquidates the position in symbol
	ClosePosition(ctx context.Context, symbol string) (types.Order, error)
	// ClosePositions liquidates every open position
	ClosePositions(ctx context.Context, req types.ClosePositionsRequest) ([]types.PositionClosure, error)
	// CancelOrders cancels every open order
	CancelOrders(ctx context.Context) ([]types.OrderCancellation, error)
	// GetOrders lists orders matching the filter
	GetOrders(ctx context.Context, filter types.OrderFilter) ([]types.Order, error)
}

// StreamCallback receives the raw data payload of a stream message.
type StreamCallback func(data []byte)

// Stream is the push channel of a brokerage's trading events.
type Stream interface {
	// Authenticate connects if needed and blocks until the credentials are accepted or rejected
	Authenticate(ctx context.Context) error
	// Subscribe starts delivery of the named streams
	Subscribe(ctx context.Context, streams ...string) error
	// Unsubscribe stops delivery of every stream
	Unsubscribe(ctx context.Context) error
	// On registers the callback for a stream, replacing any previous one
	On(stream string, callback StreamCallback)
	// Off removes the callback for a stream
	Off(stream string)
	// Close terminates the connection
	Close() error
}

// Gateway is the brokerage surface handed to strategy handlers.
//
// Multi-item operations fan out concurrently and report one outcome per item;
// a failing item never aborts its siblings. Account-wide operations report a
// single BulkOutcome instead.
type Gateway interface {
	// GetAccount returns the trading account
	GetAccount(ctx context.Context) (types.Account, error)
	// GetPositions returns all open positions
	GetPositions(ctx context.Context) ([]types.Position, error)
	// GetSomeAssets returns the assets for the given symbols. Untracked symbols are logged and skipped.
	GetSomeAssets(ctx context.Context, symbols []string) ([]types.Asset, error)
	// IsMarketOpenNow reports whether the market is open. Any failure reads as closed.
	IsMarketOpenNow(ctx context.Context) bool
	// GetOrdersPlacedToday returns today's open orders, or all of today's orders when includeAll is set
	GetOrdersPlacedToday(ctx context.Context, includeAll bool) ([]types.Order, error)
	// GetOrdersPlacedTodayOfType filters GetOrdersPlacedToday by order type
	GetOrdersPlacedTodayOfType(ctx context.Context, orderType types.OrderType, includeAll bool) ([]types.Order, error)

	// GetBars returns every bar in [start, end) for the symbols, chunked and fully paged
	GetBars(ctx context.Context, symbols []string, timeFrame string, start, end time.Time) batch.ChunkedResult[[]types.Bar]
	// GetSnapshots returns the latest market state for the symbols
	GetSnapshots(ctx context.Context, symbols []string) batch.ChunkedResult[types.Snapshot]
	// GetQuotesToday returns each symbol's quotes since today's open, one outcome per symbol
	GetQuotesToday(ctx context.Context, symbols []string, mode batch.Mode) []types.BatchOutcome[[]types.Quote]
	// GetQuotePrices picks the bid for long selectors and the ask for short ones
	GetQuotePrices(ctx context.Context, selectors []types.QuoteSelector) []types.BatchOutcome[types.QuotePrice]

	// PlaceOrder submits one order
	PlaceOrder(ctx context.Context, req types.PlaceOrderRequest) types.PlaceOrderOutcome
	// PlaceMultipleOrders submits the orders concurrently
	PlaceMultipleOrders(ctx context.Context, reqs []types.PlaceOrderRequest) []types.PlaceOrderOutcome
	// ReplaceOrder amends one open order
	ReplaceOrder(ctx context.Context, req types.ReplaceOrderRequest) types.BatchOutcome[types.Order]
	// ReplaceMultipleOrders amends the orders concurrently
	ReplaceMultipleOrders(ctx context.Context, reqs []types.ReplaceOrderRequest) []types.BatchOutcome[types.Order]
	// ClosePosition liquidates one position
	ClosePosition(ctx context.Context, symbol string) types.BatchOutcome[types.Order]
	// ClosePositions liquidates the positions concurrently
	ClosePositions(ctx context.Context, symbols []string) []types.BatchOutcome[types.Order]

	// CloseAllPositions liquidates every position in a single call
	CloseAllPositions(ctx context.Context, cancelOrders bool) types.BulkOutcome
	// CancelAllOrders cancels every open order in a single call
	CancelAllOrders(ctx context.Context) types.BulkOutcome

	// ListenForAuthentication authenticates the trading stream
	ListenForAuthentication(ctx context.Context) error
	// ListenForTradeUpdates subscribes to order lifecycle events
	ListenForTradeUpdates(ctx context.Context, callback types.TradeUpdateCallback) error
	// StopListeningForTradeUpdates unsubscribes from order lifecycle events
	StopListeningForTradeUpdates(ctx context.Context) error
}
