package trading

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/clock"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/metrics"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading/batch"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"go.uber.org/zap"
)

// Log tags and metric operation names.
const (
	tagAccount       = "GET ACCOUNT"
	tagPositions     = "GET POSITIONS"
	tagAssets        = "GET ASSETS"
	tagMarketClock   = "MARKET CLOCK"
	tagOrders        = "GET ORDERS"
	tagBars          = "GET BARS"
	tagSnapshots     = "GET SNAPSHOTS"
	tagQuotes        = "GET QUOTES"
	tagQuotePrices   = "QUOTE PRICES"
	tagPlaceOrder    = "PLACE ORDER"
	tagReplaceOrder  = "REPLACE ORDER"
	tagClosePosition = "CLOSE POSITION"
	tagCloseAll      = "CLOSE ALL POSITIONS"
	tagCancelAll     = "CANCEL ALL ORDERS"
	tagTradeUpdates  = "TRADE UPDATES"

	opGetAccount     = "get_account"
	opGetPositions   = "get_positions"
	opGetAssets      = "get_assets"
	opGetClock       = "get_clock"
	opGetOrders      = "get_orders"
	opGetBars        = "get_bars"
	opGetSnapshots   = "get_snapshots"
	opGetQuotes      = "get_quotes"
	opPlaceOrder     = "place_order"
	opReplaceOrder   = "replace_order"
	opClosePosition  = "close_position"
	opClosePositions = "close_positions"
	opCancelOrders   = "cancel_orders"
)

var _ Gateway = (*TradingSystem)(nil)

// TradingSystem implements Gateway on top of a brokerage Client and, in stream mode, its Stream.
type TradingSystem struct {
	client  Client
	stream  optional.Option[Stream]
	clock   *clock.MarketClock
	config  GatewayConfig
	verbose bool
	log     *logger.Logger
}

// NewTradingSystem creates a new TradingSystem. Zero config fields take their defaults.
func NewTradingSystem(
	client Client,
	stream optional.Option[Stream],
	marketClock *clock.MarketClock,
	config GatewayConfig,
	verbose bool,
	log *logger.Logger,
) (*TradingSystem, error) {
	if client == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "trading client is required")
	}

	if marketClock == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "market clock is required")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &TradingSystem{
		client:  client,
		stream:  stream,
		clock:   marketClock,
		config:  config.WithDefaults(),
		verbose: verbose,
		log:     log.Named("gateway"),
	}, nil
}

// Config returns the effective gateway configuration.
func (t *TradingSystem) Config() GatewayConfig {
	return t.config
}

// Close closes the trading stream, if any.
func (t *TradingSystem) Close() error {
	if t.stream.IsNone() {
		return nil
	}

	return t.stream.Unwrap().Close()
}

// GetAccount implements Gateway.
func (t *TradingSystem) GetAccount(ctx context.Context) (types.Account, error) {
	log := t.log.Tagged(tagAccount)

	account, err := invoke(ctx, t, opGetAccount, t.client.GetAccount)
	if err != nil {
		log.Error("Failed to get account", zap.Error(err))

		return types.Account{}, err
	}

	t.info(log, "Fetched account", zap.String("status", account.Status), zap.Stringer("equity", account.Equity))

	return account, nil
}

// GetPositions implements Gateway.
func (t *TradingSystem) GetPositions(ctx context.Context) ([]types.Position, error) {
	log := t.log.Tagged(tagPositions)

	positions, err := invoke(ctx, t, opGetPositions, t.client.GetPositions)
	if err != nil {
		log.Error("Failed to get positions", zap.Error(err))

		return nil, err
	}

	t.info(log, "Fetched positions", zap.Int("count", len(positions)))

	return positions, nil
}

// GetSomeAssets implements Gateway. Assets are returned in the order of symbols.
func (t *TradingSystem) GetSomeAssets(ctx context.Context, symbols []string) ([]types.Asset, error) {
	log := t.log.Tagged(tagAssets)

	assets, err := invoke(ctx, t, opGetAssets, t.client.GetAssets)
	if err != nil {
		log.Error("Failed to get assets", zap.Error(err))

		return nil, err
	}

	bySymbol := make(map[string]types.Asset, len(assets))
	for _, asset := range assets {
		bySymbol[asset.Symbol] = asset
	}

	selected := make([]types.Asset, 0, len(symbols))
	untracked := []string{}

	for _, symbol := range symbols {
		asset, ok := bySymbol[symbol]
		if !ok {
			untracked = append(untracked, symbol)

			continue
		}

		selected = append(selected, asset)
	}

	if len(untracked) > 0 {
		log.Warn("Symbols not tracked by the brokerage", zap.Strings("symbols", untracked))
	}

	return selected, nil
}

// IsMarketOpenNow implements Gateway.
func (t *TradingSystem) IsMarketOpenNow(ctx context.Context) bool {
	log := t.log.Tagged(tagMarketClock)

	marketClock, err := invoke(ctx, t, opGetClock, t.client.GetClock)
	if err != nil {
		log.Error("Failed to get market clock, assuming market is closed", zap.Error(err))

		return false
	}

	t.info(log, "Fetched market clock", zap.Bool("is_open", marketClock.IsOpen))

	return marketClock.IsOpen
}

// GetOrdersPlacedToday implements Gateway.
func (t *TradingSystem) GetOrdersPlacedToday(ctx context.Context, includeAll bool) ([]types.Order, error) {
	log := t.log.Tagged(tagOrders)

	status := types.OrderStatusFilterOpen
	if includeAll {
		status = types.OrderStatusFilterAll
	}

	filter := types.OrderFilter{
		Status:  status,
		Limit:   t.config.OrderLimit,
		After:   optional.Some(t.clock.StartOfToday()),
		Until:   optional.None[time.Time](),
		Symbols: nil,
	}

	orders, err := invoke(ctx, t, opGetOrders, func(ctx context.Context) ([]types.Order, error) {
		return t.client.GetOrders(ctx, filter)
	})
	if err != nil {
		log.Error("Failed to get today's orders", zap.Error(err))

		return nil, err
	}

	t.info(log, "Fetched today's orders", zap.String("status", string(status)), zap.Int("count", len(orders)))

	return orders, nil
}

// GetOrdersPlacedTodayOfType implements Gateway.
func (t *TradingSystem) GetOrdersPlacedTodayOfType(ctx context.Context, orderType types.OrderType, includeAll bool) ([]types.Order, error) {
	orders, err := t.GetOrdersPlacedToday(ctx, includeAll)
	if err != nil {
		return nil, err
	}

	filtered := []types.Order{}

	for _, order := range orders {
		if order.Type == orderType {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}

// GetBars implements Gateway. Each chunk follows its page tokens to the end;
// a chunk that fails at any page is reported as failed.
func (t *TradingSystem) GetBars(ctx context.Context, symbols []string, timeFrame string, start, end time.Time) batch.ChunkedResult[[]types.Bar] {
	log := t.log.Tagged(tagBars)

	fetchChunk := func(ctx context.Context, chunk []string) (map[string][]types.Bar, error) {
		fetchPage := func(ctx context.Context, cursor optional.Option[string]) (batch.Page[map[string][]types.Bar], error) {
			page, err := invoke(ctx, t, opGetBars, func(ctx context.Context) (types.BarsPage, error) {
				return t.client.GetBars(ctx, types.BarsRequest{
					Symbols:   chunk,
					TimeFrame: timeFrame,
					Start:     start,
					End:       end,
					Limit:     barsPageLimit,
					Feed:      "",
					PageToken: cursor,
				})
			})
			if err != nil {
				return batch.Page[map[string][]types.Bar]{}, err
			}

			return batch.Page[map[string][]types.Bar]{
				Items: []map[string][]types.Bar{page.Bars},
				Next:  page.NextPageToken,
			}, nil
		}

		pages, err := batch.FetchPaged[map[string][]types.Bar](ctx, batch.ModeAll, fetchPage, t.config.MaxPages)
		if err != nil {
			return nil, err
		}

		return mergeBarPages(pages), nil
	}

	result := batch.FetchChunked(ctx, symbols, t.config.MaxChunk, fetchChunk, batch.WithConcurrency(t.config.Concurrency))
	warnFailedChunks(log, result.FailedSymbols(), len(symbols))

	return result
}

func mergeBarPages(pages []map[string][]types.Bar) map[string][]types.Bar {
	merged := make(map[string][]types.Bar)

	for _, page := range pages {
		for symbol, bars := range page {
			merged[symbol] = append(merged[symbol], bars...)
		}
	}

	return merged
}

// GetSnapshots implements Gateway. Symbols without a snapshot are logged.
func (t *TradingSystem) GetSnapshots(ctx context.Context, symbols []string) batch.ChunkedResult[types.Snapshot] {
	log := t.log.Tagged(tagSnapshots)

	fetchChunk := func(ctx context.Context, chunk []string) (map[string]types.Snapshot, error) {
		return invoke(ctx, t, opGetSnapshots, func(ctx context.Context) (map[string]types.Snapshot, error) {
			return t.client.GetSnapshots(ctx, chunk)
		})
	}

	result := batch.FetchChunked(ctx, symbols, t.config.MaxChunk, fetchChunk, batch.WithConcurrency(t.config.Concurrency))
	warnFailedChunks(log, result.FailedSymbols(), len(symbols))

	failed := make(map[string]bool)
	for _, symbol := range result.FailedSymbols() {
		failed[symbol] = true
	}

	missing := []string{}

	for _, symbol := range symbols {
		if _, ok := result.Values[symbol]; !ok && !failed[symbol] {
			missing = append(missing, symbol)
		}
	}

	if len(missing) > 0 {
		log.Warn("No snapshot returned for symbols", zap.Strings("symbols", missing))
	}

	return result
}

// GetQuotesToday implements Gateway.
//
// Each symbol is paged over [market open, min(market close, now - data delay)).
// Before that window opens every symbol succeeds with no quotes. A symbol whose
// pagination fails after some pages keeps those quotes in a partial outcome.
func (t *TradingSystem) GetQuotesToday(ctx context.Context, symbols []string, mode batch.Mode) []types.BatchOutcome[[]types.Quote] {
	log := t.log.Tagged(tagQuotes)

	start, end := t.quotesWindow()

	limit := quotesLimitAll
	if mode == batch.ModeFirst {
		limit = quotesLimitFirst
	}

	fetchSymbol := func(ctx context.Context, symbol string) ([]types.Quote, error) {
		if !end.After(start) {
			return []types.Quote{}, nil
		}

		fetchPage := func(ctx context.Context, cursor optional.Option[string]) (batch.Page[types.Quote], error) {
			page, err := invoke(ctx, t, opGetQuotes, func(ctx context.Context) (types.QuotesPage, error) {
				return t.client.GetQuotes(ctx, types.QuotesRequest{
					Symbol:    symbol,
					Start:     start,
					End:       end,
					Limit:     limit,
					Feed:      "",
					PageToken: cursor,
				})
			})
			if err != nil {
				return batch.Page[types.Quote]{}, err
			}

			return batch.Page[types.Quote]{Items: page.Quotes, Next: page.NextPageToken}, nil
		}

		quotes, err := batch.FetchPaged[types.Quote](ctx, mode, fetchPage, t.config.MaxPages)
		if err != nil {
			log.Warn("Quote pagination aborted",
				zap.String("symbol", symbol),
				zap.Int("received", len(quotes)),
				zap.Error(err))

			if len(quotes) > 0 {
				return nil, batch.WithPartial(quotes, err)
			}

			return nil, err
		}

		return quotes, nil
	}

	outcomes := batch.FanOut(ctx, symbols, symbolKey, fetchSymbol, batch.WithConcurrency(t.config.Concurrency))
	recap(log, opGetQuotes, outcomes, t.verbose)

	return outcomes
}

func (t *TradingSystem) quotesWindow() (time.Time, time.Time) {
	start := t.clock.MarketOpenToday()
	end := t.clock.MarketCloseToday()

	if horizon := t.clock.Now().Add(-t.config.DataDelay); horizon.Before(end) {
		end = horizon
	}

	return start, end
}

// GetQuotePrices implements Gateway. Prices come from the latest quote of each
// symbol's snapshot; a selector without one fails.
func (t *TradingSystem) GetQuotePrices(ctx context.Context, selectors []types.QuoteSelector) []types.BatchOutcome[types.QuotePrice] {
	log := t.log.Tagged(tagQuotePrices)

	symbols := make([]string, 0, len(selectors))
	seen := make(map[string]bool, len(selectors))

	for _, selector := range selectors {
		if !seen[selector.Symbol] {
			seen[selector.Symbol] = true
			symbols = append(symbols, selector.Symbol)
		}
	}

	snapshots := t.GetSnapshots(ctx, symbols)

	failures := make(map[string]*errors.ErrorInfo)
	for _, failure := range snapshots.Failures {
		for _, symbol := range failure.Symbols {
			failures[symbol] = failure.Error
		}
	}

	outcomes := make([]types.BatchOutcome[types.QuotePrice], 0, len(selectors))

	for _, selector := range selectors {
		if info, failed := failures[selector.Symbol]; failed {
			outcomes = append(outcomes, types.BatchOutcome[types.QuotePrice]{
				Key:     selector.Symbol,
				Success: false,
				Value:   optional.None[types.QuotePrice](),
				Error:   info,
			})

			continue
		}

		snapshot, ok := snapshots.Values[selector.Symbol]
		if !ok || snapshot.LatestQuote == nil {
			outcomes = append(outcomes, types.Failed[types.QuotePrice](selector.Symbol,
				errors.Newf(errors.ErrCodeRemoteNotFound, "no quote available for %s", selector.Symbol)))

			continue
		}

		outcomes = append(outcomes, types.Succeeded(selector.Symbol, types.QuotePrice{
			Symbol: selector.Symbol,
			Side:   selector.Side,
			Price:  snapshot.LatestQuote.RelevantPrice(selector.Side),
		}))
	}

	summary := batch.Summarize(outcomes)
	if !summary.AllSucceeded() {
		log.Warn("Missing quote prices", zap.Strings("symbols", summary.Failed))
	}

	return outcomes
}

// PlaceOrder implements Gateway.
func (t *TradingSystem) PlaceOrder(ctx context.Context, req types.PlaceOrderRequest) types.PlaceOrderOutcome {
	return t.PlaceMultipleOrders(ctx, []types.PlaceOrderRequest{req})[0]
}

// PlaceMultipleOrders implements Gateway. Orders without a client order id get a generated one.
func (t *TradingSystem) PlaceMultipleOrders(ctx context.Context, reqs []types.PlaceOrderRequest) []types.PlaceOrderOutcome {
	log := t.log.Tagged(tagPlaceOrder)

	place := func(ctx context.Context, req types.PlaceOrderRequest) (types.Order, error) {
		if req.ClientOrderID == "" {
			req.ClientOrderID = uuid.NewString()
		}

		if err := req.Validate(); err != nil {
			log.Error("Rejected invalid order", zap.String("symbol", req.Symbol), zap.Error(err))

			return types.Order{}, err
		}

		order, err := invoke(ctx, t, opPlaceOrder, func(ctx context.Context) (types.Order, error) {
			return t.client.PlaceOrder(ctx, req)
		})
		if err != nil {
			log.Error("Failed to place order",
				zap.String("symbol", req.Symbol),
				zap.String("client_order_id", req.ClientOrderID),
				zap.Error(err))

			return types.Order{}, err
		}

		t.info(log, "Placed order",
			zap.String("symbol", order.Symbol),
			zap.String("order_id", order.ID),
			zap.String("side", string(order.Side)),
			zap.String("status", string(order.Status)))

		return order, nil
	}

	outcomes := batch.FanOut(ctx, reqs, placeOrderKey, place, batch.WithConcurrency(t.config.Concurrency))
	recap(log, opPlaceOrder, outcomes, t.verbose)

	return outcomes
}

// ReplaceOrder implements Gateway.
func (t *TradingSystem) ReplaceOrder(ctx context.Context, req types.ReplaceOrderRequest) types.BatchOutcome[types.Order] {
	return t.ReplaceMultipleOrders(ctx, []types.ReplaceOrderRequest{req})[0]
}

// ReplaceMultipleOrders implements Gateway. Outcomes are keyed by order id.
func (t *TradingSystem) ReplaceMultipleOrders(ctx context.Context, reqs []types.ReplaceOrderRequest) []types.BatchOutcome[types.Order] {
	log := t.log.Tagged(tagReplaceOrder)

	replace := func(ctx context.Context, req types.ReplaceOrderRequest) (types.Order, error) {
		if err := req.Validate(); err != nil {
			log.Error("Rejected invalid replacement", zap.String("order_id", req.OrderID), zap.Error(err))

			return types.Order{}, err
		}

		order, err := invoke(ctx, t, opReplaceOrder, func(ctx context.Context) (types.Order, error) {
			return t.client.ReplaceOrder(ctx, req)
		})
		if err != nil {
			log.Error("Failed to replace order", zap.String("order_id", req.OrderID), zap.Error(err))

			return types.Order{}, err
		}

		t.info(log, "Replaced order",
			zap.String("order_id", req.OrderID),
			zap.String("replaced_by", order.ID),
			zap.String("symbol", order.Symbol))

		return order, nil
	}

	outcomes := batch.FanOut(ctx, reqs, replaceOrderKey, replace, batch.WithConcurrency(t.config.Concurrency))
	recap(log, opReplaceOrder, outcomes, t.verbose)

	return outcomes
}

// ClosePosition implements Gateway.
func (t *TradingSystem) ClosePosition(ctx context.Context, symbol string) types.BatchOutcome[types.Order] {
	return t.ClosePositions(ctx, []string{symbol})[0]
}

// ClosePositions implements Gateway.
func (t *TradingSystem) ClosePositions(ctx context.Context, symbols []string) []types.BatchOutcome[types.Order] {
	log := t.log.Tagged(tagClosePosition)

	closePosition := func(ctx context.Context, symbol string) (types.Order, error) {
		order, err := invoke(ctx, t, opClosePosition, func(ctx context.Context) (types.Order, error) {
			return t.client.ClosePosition(ctx, symbol)
		})
		if err != nil {
			log.Error("Failed to close position", zap.String("symbol", symbol), zap.Error(err))

			return types.Order{}, err
		}

		t.info(log, "Closed position", zap.String("symbol", symbol), zap.String("order_id", order.ID))

		return order, nil
	}

	outcomes := batch.FanOut(ctx, symbols, symbolKey, closePosition, batch.WithConcurrency(t.config.Concurrency))
	recap(log, opClosePosition, outcomes, t.verbose)

	return outcomes
}

// CloseAllPositions implements Gateway. It succeeds when the brokerage accepts the
// request; per-symbol rejections inside the response are logged.
func (t *TradingSystem) CloseAllPositions(ctx context.Context, cancelOrders bool) types.BulkOutcome {
	log := t.log.Tagged(tagCloseAll)

	closures, err := invoke(ctx, t, opClosePositions, func(ctx context.Context) ([]types.PositionClosure, error) {
		return t.client.ClosePositions(ctx, types.ClosePositionsRequest{CancelOrders: cancelOrders})
	})
	if err != nil {
		log.Error("Failed to close all positions", zap.Error(err))

		return types.BulkOutcome{Success: false, Count: 0, Error: errors.ToInfo(err)}
	}

	for _, closure := range closures {
		if closure.Status >= 300 {
			log.Warn("Position was not closed", zap.String("symbol", closure.Symbol), zap.Int("status", closure.Status))
		}
	}

	log.Info("Closed all positions", zap.Int("count", len(closures)), zap.Bool("cancel_orders", cancelOrders))

	return types.BulkOutcome{Success: true, Count: len(closures), Error: nil}
}

// CancelAllOrders implements Gateway.
func (t *TradingSystem) CancelAllOrders(ctx context.Context) types.BulkOutcome {
	log := t.log.Tagged(tagCancelAll)

	cancellations, err := invoke(ctx, t, opCancelOrders, t.client.CancelOrders)
	if err != nil {
		log.Error("Failed to cancel all orders", zap.Error(err))

		return types.BulkOutcome{Success: false, Count: 0, Error: errors.ToInfo(err)}
	}

	for _, cancellation := range cancellations {
		if cancellation.Status >= 300 {
			log.Warn("Order was not canceled", zap.String("order_id", cancellation.ID), zap.Int("status", cancellation.Status))
		}
	}

	log.Info("Canceled all orders", zap.Int("count", len(cancellations)))

	return types.BulkOutcome{Success: true, Count: len(cancellations), Error: nil}
}

// ListenForAuthentication implements Gateway.
func (t *TradingSystem) ListenForAuthentication(ctx context.Context) error {
	log := t.log.Tagged(tagTradeUpdates)

	stream, err := t.requireStream()
	if err != nil {
		return err
	}

	if err := stream.Authenticate(ctx); err != nil {
		log.Error("Trading stream authentication failed", zap.Error(err))

		return err
	}

	t.info(log, "Trading stream authenticated")

	return nil
}

// ListenForTradeUpdates implements Gateway. Undecodable updates are logged and dropped.
func (t *TradingSystem) ListenForTradeUpdates(ctx context.Context, callback types.TradeUpdateCallback) error {
	log := t.log.Tagged(tagTradeUpdates)

	stream, err := t.requireStream()
	if err != nil {
		return err
	}

	stream.On(types.TradeUpdatesStream, func(data []byte) {
		var update types.TradeUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			log.Warn("Dropping malformed trade update", zap.Error(err))

			return
		}

		callback(update)
	})

	if err := stream.Subscribe(ctx, types.TradeUpdatesStream); err != nil {
		stream.Off(types.TradeUpdatesStream)
		log.Error("Failed to subscribe to trade updates", zap.Error(err))

		return err
	}

	t.info(log, "Listening for trade updates")

	return nil
}

// StopListeningForTradeUpdates implements Gateway.
func (t *TradingSystem) StopListeningForTradeUpdates(ctx context.Context) error {
	log := t.log.Tagged(tagTradeUpdates)

	stream, err := t.requireStream()
	if err != nil {
		return err
	}

	stream.Off(types.TradeUpdatesStream)

	if err := stream.Unsubscribe(ctx); err != nil {
		log.Error("Failed to unsubscribe from trade updates", zap.Error(err))

		return err
	}

	t.info(log, "Stopped listening for trade updates")

	return nil
}

func (t *TradingSystem) requireStream() (Stream, error) {
	if t.stream.IsNone() {
		return nil, errors.New(errors.ErrCodeStreamNotConfigured, "trading stream requires the provider to be configured in stream mode")
	}

	return t.stream.Unwrap(), nil
}

func (t *TradingSystem) info(log *logger.Logger, msg string, fields ...zap.Field) {
	if t.verbose {
		log.Info(msg, fields...)
	}
}

func warnFailedChunks(log *logger.Logger, failed []string, requested int) {
	if len(failed) > 0 {
		log.Warn("Some chunks failed", zap.Int("requested", requested), zap.Strings("failed", failed))
	}
}

// invoke issues one remote request under the configured timeout and records it.
// Uncoded failures are classified as remote request failures.
func invoke[T any](ctx context.Context, t *TradingSystem, op string, call func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, t.config.RequestTimeout)
	defer cancel()

	value, err := call(callCtx)
	if err != nil && errors.GetCode(err) == errors.ErrCodeUnknown {
		err = errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "%s failed", op)
	}

	metrics.ObserveGatewayCall(op, err, time.Since(start))

	return value, err
}

// recap logs which keys of a fan-out succeeded and which failed.
func recap[T any](log *logger.Logger, op string, outcomes []types.BatchOutcome[T], verbose bool) batch.Summary {
	summary := batch.Summarize(outcomes)
	metrics.AddBatchItems(op, len(summary.Succeeded), len(summary.Failed))

	switch {
	case !summary.AllSucceeded():
		log.Warn("Batch finished with failures",
			zap.Strings("succeeded", summary.Succeeded),
			zap.Strings("failed", summary.Failed))
	case verbose:
		log.Info("Batch finished", zap.Strings("succeeded", summary.Succeeded))
	}

	return summary
}

func symbolKey(symbol string) string { return symbol }

func placeOrderKey(req types.PlaceOrderRequest) string { return req.Symbol }

func replaceOrderKey(req types.ReplaceOrderRequest) string { return req.OrderID }
