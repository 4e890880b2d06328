package mockserver

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/shopspring/decimal"
)

// handleAccount handles GET /v2/account
func (s *MockAlpacaServer) handleAccount(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSON(w, http.StatusOK, s.account)
}

// handleAssets handles GET /v2/assets
func (s *MockAlpacaServer) handleAssets(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets := make([]types.Asset, 0, len(s.config.Symbols))
	for _, symbol := range s.config.Symbols {
		assets = append(assets, types.Asset{
			ID:           "asset-" + strings.ToLower(symbol),
			Class:        "us_equity",
			Exchange:     "NASDAQ",
			Symbol:       symbol,
			Name:         symbol + " Inc.",
			Status:       "active",
			Tradable:     true,
			Marginable:   true,
			Shortable:    true,
			Fractionable: true,
		})
	}

	writeJSON(w, http.StatusOK, assets)
}

// handlePositions handles GET /v2/positions
func (s *MockAlpacaServer) handlePositions(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSON(w, http.StatusOK, s.sortedPositions())
}

// handleCloseAllPositions handles DELETE /v2/positions
func (s *MockAlpacaServer) handleCloseAllPositions(w http.ResponseWriter, r *http.Request) {
	cancelOrders := r.URL.Query().Get("cancel_orders") == "true"

	s.mu.Lock()

	if cancelOrders {
		s.cancelOpenOrders()
	}

	closures := make([]types.PositionClosure, 0, len(s.positions))
	updates := make([]types.TradeUpdate, 0, len(s.positions))

	for _, position := range s.sortedPositions() {
		order := s.liquidate(position)
		closures = append(closures, types.PositionClosure{Symbol: position.Symbol, Status: http.StatusOK, Order: order})
		updates = append(updates, fillUpdate(*order))
	}
	s.mu.Unlock()

	s.broadcastTradeUpdates(updates...)
	writeJSON(w, http.StatusMultiStatus, closures)
}

// handleClosePosition handles DELETE /v2/positions/{symbol}
func (s *MockAlpacaServer) handleClosePosition(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	s.mu.Lock()

	position, ok := s.positions[symbol]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "position does not exist")

		return
	}

	order := s.liquidate(position)
	s.mu.Unlock()

	s.broadcastTradeUpdates(fillUpdate(*order))
	writeJSON(w, http.StatusOK, order)
}

// handleClock handles GET /v2/clock
func (s *MockAlpacaServer) handleClock(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now().UTC()

	writeJSON(w, http.StatusOK, types.MarketClock{
		Timestamp: now,
		IsOpen:    s.marketOpen,
		NextOpen:  now.Add(time.Hour),
		NextClose: now.Add(2 * time.Hour),
	})
}

// handleOrders handles GET /v2/orders
func (s *MockAlpacaServer) handleOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := types.OrderStatusFilter(query.Get("status"))
	if status == "" {
		status = types.OrderStatusFilterOpen
	}

	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit <= 0 {
		limit = 50
	}

	after, err := parseTimeParam(query.Get("after"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid after")

		return
	}

	until, err := parseTimeParam(query.Get("until"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid until")

		return
	}

	symbols := splitSymbols(query.Get("symbols"))

	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]types.Order, 0)

	for _, order := range s.orders {
		terminal := order.Status.IsTerminal()
		if (status == types.OrderStatusFilterOpen && terminal) || (status == types.OrderStatusFilterClosed && !terminal) {
			continue
		}

		if !after.IsZero() && !order.CreatedAt.After(after) {
			continue
		}

		if !until.IsZero() && order.CreatedAt.After(until) {
			continue
		}

		if len(symbols) > 0 && !slices.Contains(symbols, order.Symbol) {
			continue
		}

		orders = append(orders, *order)
		if len(orders) == limit {
			break
		}
	}

	writeJSON(w, http.StatusOK, orders)
}

// handlePlaceOrder handles POST /v2/orders
func (s *MockAlpacaServer) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req types.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid order body")

		return
	}

	s.mu.Lock()

	if status, failing := s.symbolFailure[req.Symbol]; failing {
		s.mu.Unlock()
		writeError(w, status, "injected failure for symbol")

		return
	}

	if _, known := s.quotes[req.Symbol]; !known {
		s.mu.Unlock()
		writeError(w, http.StatusUnprocessableEntity, "asset "+req.Symbol+" not found")

		return
	}

	order := s.newOrder(req.Symbol, req.Side, req.Type, req.TimeInForce, req.Qty.TakeOr(decimal.Zero))
	order.ClientOrderID = req.ClientOrderID
	order.Notional = req.Notional.TakeOr(decimal.Zero)
	order.LimitPrice = req.LimitPrice.TakeOr(decimal.Zero)
	order.StopPrice = req.StopPrice.TakeOr(decimal.Zero)
	order.ExtendedHours = req.ExtendedHours

	//nolint:exhaustruct
	updates := []types.TradeUpdate{{Event: types.TradeEventNew, Order: *order}}

	if req.Type == types.OrderTypeMarket {
		s.fill(order)
		updates = append(updates, fillUpdate(*order))
	}
	s.mu.Unlock()

	s.broadcastTradeUpdates(updates...)
	writeJSON(w, http.StatusOK, order)
}

// handleReplaceOrder handles PATCH /v2/orders/{order_id}
func (s *MockAlpacaServer) handleReplaceOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	var req types.ReplaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid replace body")

		return
	}

	s.mu.Lock()

	original := s.findOrder(orderID)
	if original == nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "order not found")

		return
	}

	if original.Status.IsTerminal() {
		s.mu.Unlock()
		writeError(w, http.StatusUnprocessableEntity, "order is not open")

		return
	}

	timeInForce := original.TimeInForce
	if req.TimeInForce != "" {
		timeInForce = req.TimeInForce
	}

	replacement := s.newOrder(original.Symbol, original.Side, original.Type, timeInForce, req.Qty.TakeOr(original.Qty))
	replacement.LimitPrice = req.LimitPrice.TakeOr(original.LimitPrice)
	replacement.StopPrice = req.StopPrice.TakeOr(original.StopPrice)
	replacement.ClientOrderID = req.ClientOrderID
	replacement.Replaces = original.ID

	now := time.Now().UTC()
	original.Status = types.OrderStatusReplaced
	original.ReplacedBy = replacement.ID
	original.UpdatedAt = &now

	//nolint:exhaustruct
	update := types.TradeUpdate{Event: types.TradeEventReplaced, Order: *original}
	s.mu.Unlock()

	s.broadcastTradeUpdates(update)
	writeJSON(w, http.StatusOK, replacement)
}

// handleCancelOrders handles DELETE /v2/orders
func (s *MockAlpacaServer) handleCancelOrders(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	cancelled := s.cancelOpenOrders()
	s.mu.Unlock()

	cancellations := make([]types.OrderCancellation, len(cancelled))
	updates := make([]types.TradeUpdate, len(cancelled))

	for i, order := range cancelled {
		cancellations[i] = types.OrderCancellation{ID: order.ID, Status: http.StatusOK}
		//nolint:exhaustruct
		updates[i] = types.TradeUpdate{Event: types.TradeEventCanceled, Order: order}
	}

	s.broadcastTradeUpdates(updates...)
	writeJSON(w, http.StatusMultiStatus, cancellations)
}

// Order book keeping. Callers hold s.mu.

func (s *MockAlpacaServer) newOrder(symbol string, side types.OrderSide, orderType types.OrderType, tif types.TimeInForce, qty decimal.Decimal) *types.Order {
	s.orderSeq++
	now := time.Now().UTC()

	//nolint:exhaustruct
	order := &types.Order{
		ID:          "order-" + strconv.Itoa(s.orderSeq),
		CreatedAt:   now,
		SubmittedAt: &now,
		Symbol:      symbol,
		AssetClass:  "us_equity",
		Qty:         qty,
		Type:        orderType,
		Side:        side,
		TimeInForce: tif,
		Status:      types.OrderStatusNew,
	}

	s.orders = append(s.orders, order)

	return order
}

func (s *MockAlpacaServer) findOrder(id string) *types.Order {
	for _, order := range s.orders {
		if order.ID == id {
			return order
		}
	}

	return nil
}

// fill executes order at the last price and updates the position.
func (s *MockAlpacaServer) fill(order *types.Order) {
	price := s.lastPrice(order.Symbol)
	now := time.Now().UTC()

	order.Status = types.OrderStatusFilled
	order.FilledQty = order.Qty
	order.FilledAvgPrice = price
	order.FilledAt = &now
	order.UpdatedAt = &now

	signed := order.Qty
	if order.Side == types.OrderSideSell {
		signed = signed.Neg()
	}

	position, ok := s.positions[order.Symbol]
	if !ok {
		//nolint:exhaustruct
		position = types.Position{
			AssetID:       "asset-" + strings.ToLower(order.Symbol),
			Symbol:        order.Symbol,
			Exchange:      "NASDAQ",
			AssetClass:    "us_equity",
			AvgEntryPrice: price,
			Side:          types.PositionSideLong,
		}
	}

	current := position.Qty
	if position.Side == types.PositionSideShort {
		current = current.Neg()
	}

	next := current.Add(signed)
	if next.IsZero() {
		delete(s.positions, order.Symbol)

		return
	}

	position.Side = types.PositionSideLong
	if next.IsNegative() {
		position.Side = types.PositionSideShort
	}

	position.Qty = next.Abs()
	position.CurrentPrice = price
	position.MarketValue = next.Mul(price)
	s.positions[order.Symbol] = position
}

// liquidate fills an opposite market order for the whole position.
func (s *MockAlpacaServer) liquidate(position types.Position) *types.Order {
	side := types.OrderSideSell
	if position.Side == types.PositionSideShort {
		side = types.OrderSideBuy
	}

	order := s.newOrder(position.Symbol, side, types.OrderTypeMarket, types.TimeInForceDay, position.Qty)
	s.fill(order)

	return order
}

func (s *MockAlpacaServer) cancelOpenOrders() []types.Order {
	now := time.Now().UTC()
	cancelled := make([]types.Order, 0)

	for _, order := range s.orders {
		if order.Status.IsTerminal() {
			continue
		}

		order.Status = types.OrderStatusCanceled
		order.CanceledAt = &now
		order.UpdatedAt = &now
		cancelled = append(cancelled, *order)
	}

	return cancelled
}

func fillUpdate(order types.Order) types.TradeUpdate {
	return types.TradeUpdate{
		Event:       types.TradeEventFill,
		ExecutionID: "exec-" + order.ID,
		Order:       order,
		Timestamp:   order.FilledAt,
		Price:       order.FilledAvgPrice,
		Qty:         order.FilledQty,
		PositionQty: decimal.Zero,
	}
}
