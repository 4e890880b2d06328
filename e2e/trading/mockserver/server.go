// Package mockserver provides a mock Alpaca server for testing.
// It implements the trading and market data REST endpoints the gateway uses
// and the trading stream over WebSocket.
package mockserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/mocks"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/shopspring/decimal"
)

// Route names, usable with RequestCount and FailRoute.
const (
	RouteAccount       = "account"
	RouteAssets        = "assets"
	RoutePositions     = "positions"
	RouteCloseAll      = "close_all_positions"
	RouteClosePosition = "close_position"
	RouteClock         = "clock"
	RouteOrders        = "orders"
	RoutePlaceOrder    = "place_order"
	RouteReplaceOrder  = "replace_order"
	RouteCancelOrders  = "cancel_orders"
	RouteBars          = "bars"
	RouteQuotes        = "quotes"
	RouteSnapshots     = "snapshots"
	RouteTradingStream = "stream"
)

const (
	defaultPageSize = 1000
	defaultPoints   = 390
)

// ServerConfig holds configuration for the mock server.
type ServerConfig struct {
	// APIKeyID and SecretKey are required on every request when set
	APIKeyID  string
	SecretKey string
	// Account is returned from the account endpoint
	Account types.Account
	// Positions are the positions open at start
	Positions []types.Position
	// MarketOpen is reported by the clock endpoint
	MarketOpen bool
	// Symbols have market data; any other symbol is unknown to the data endpoints
	Symbols []string
	// SessionOpen is the timestamp of the first generated bar and quote
	SessionOpen time.Time
	// Points is the number of minute bars and quotes generated per symbol
	Points int
	// PageSize caps the items per market data page
	PageSize int
	// Seed makes the generated data reproducible
	Seed int64
}

// MockAlpacaServer provides a mock Alpaca server for testing.
type MockAlpacaServer struct {
	mu sync.RWMutex

	config     ServerConfig
	httpServer *http.Server
	listener   net.Listener
	upgrader   websocket.Upgrader

	account   types.Account
	positions map[string]types.Position
	orders    []*types.Order
	orderSeq  int

	marketOpen bool
	bars       map[string][]types.Bar
	quotes     map[string][]types.Quote

	requests      map[string]int
	snapshotSizes []int
	failures      map[string]int
	symbolFailure map[string]int

	wsMu          sync.RWMutex
	wsConnections map[*websocket.Conn]*streamSession
}

// NewMockAlpacaServer creates a new mock Alpaca server.
func NewMockAlpacaServer(config ServerConfig) *MockAlpacaServer {
	if config.Points == 0 {
		config.Points = defaultPoints
	}

	if config.PageSize == 0 {
		config.PageSize = defaultPageSize
	}

	if config.SessionOpen.IsZero() {
		config.SessionOpen = mocks.DefaultConfig().StartTime
	}

	server := &MockAlpacaServer{
		mu:     sync.RWMutex{},
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		account:       config.Account,
		positions:     make(map[string]types.Position),
		orders:        make([]*types.Order, 0),
		orderSeq:      1000,
		marketOpen:    config.MarketOpen,
		bars:          make(map[string][]types.Bar),
		quotes:        make(map[string][]types.Quote),
		requests:      make(map[string]int),
		snapshotSizes: make([]int, 0),
		failures:      make(map[string]int),
		symbolFailure: make(map[string]int),
		wsMu:          sync.RWMutex{},
		wsConnections: make(map[*websocket.Conn]*streamSession),
		httpServer:    nil,
		listener:      nil,
	}

	for _, position := range config.Positions {
		server.positions[position.Symbol] = position
	}

	server.generateMarketData()

	return server
}

// generateMarketData builds a minute series per symbol, each starting at a different price.
func (s *MockAlpacaServer) generateMarketData() {
	generator := mocks.NewDataGenerator(s.config.Seed)

	for i, symbol := range s.config.Symbols {
		config := mocks.DefaultConfig()
		config.StartTime = s.config.SessionOpen
		config.Count = s.config.Points
		config.InitialPrice = 50 + float64(i)*25

		s.bars[symbol] = generator.GenerateBars(config)
		s.quotes[symbol] = generator.GenerateQuotes(config)
	}
}

// Start starts the mock server on the given address.
// If address is empty or ":0", a random available port is used.
func (s *MockAlpacaServer) Start(address string) error {
	if address == "" {
		address = ":0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create listener", err)
	}

	s.listener = listener

	router := mux.NewRouter()
	router.Use(s.countRequests, s.injectFailures)

	// Trading API
	router.HandleFunc("/v2/account", s.handleAccount).Methods(http.MethodGet).Name(RouteAccount)
	router.HandleFunc("/v2/assets", s.handleAssets).Methods(http.MethodGet).Name(RouteAssets)
	router.HandleFunc("/v2/positions", s.handlePositions).Methods(http.MethodGet).Name(RoutePositions)
	router.HandleFunc("/v2/positions", s.handleCloseAllPositions).Methods(http.MethodDelete).Name(RouteCloseAll)
	router.HandleFunc("/v2/positions/{symbol}", s.handleClosePosition).Methods(http.MethodDelete).Name(RouteClosePosition)
	router.HandleFunc("/v2/clock", s.handleClock).Methods(http.MethodGet).Name(RouteClock)
	router.HandleFunc("/v2/orders", s.handleOrders).Methods(http.MethodGet).Name(RouteOrders)
	router.HandleFunc("/v2/orders", s.handlePlaceOrder).Methods(http.MethodPost).Name(RoutePlaceOrder)
	router.HandleFunc("/v2/orders", s.handleCancelOrders).Methods(http.MethodDelete).Name(RouteCancelOrders)
	router.HandleFunc("/v2/orders/{order_id}", s.handleReplaceOrder).Methods(http.MethodPatch).Name(RouteReplaceOrder)

	// Market data API
	router.HandleFunc("/v2/stocks/bars", s.handleBars).Methods(http.MethodGet).Name(RouteBars)
	router.HandleFunc("/v2/stocks/snapshots", s.handleSnapshots).Methods(http.MethodGet).Name(RouteSnapshots)
	router.HandleFunc("/v2/stocks/{symbol}/quotes", s.handleQuotes).Methods(http.MethodGet).Name(RouteQuotes)

	// Trading stream
	router.HandleFunc("/stream", s.handleStream).Name(RouteTradingStream)

	s.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop stops the mock server and closes every stream connection.
func (s *MockAlpacaServer) Stop() error {
	s.wsMu.Lock()
	for conn := range s.wsConnections {
		conn.Close()
	}

	s.wsConnections = make(map[*websocket.Conn]*streamSession)
	s.wsMu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Address returns the address the server is listening on.
func (s *MockAlpacaServer) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// BaseURL returns the base URL for both the trading and the data API.
func (s *MockAlpacaServer) BaseURL() string {
	return "http://" + s.Address()
}

// StreamURL returns the trading stream URL.
func (s *MockAlpacaServer) StreamURL() string {
	return "ws://" + s.Address() + "/stream"
}

// SetMarketOpen changes what the clock endpoint reports.
func (s *MockAlpacaServer) SetMarketOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marketOpen = open
}

// FailRoute makes every request to route answer with status.
func (s *MockAlpacaServer) FailRoute(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[route] = status
}

// FailSymbol makes per-symbol requests (quotes, close position, orders) for symbol answer with status.
func (s *MockAlpacaServer) FailSymbol(symbol string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.symbolFailure[symbol] = status
}

// RequestCount returns how many requests route received.
func (s *MockAlpacaServer) RequestCount(route string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.requests[route]
}

// SnapshotBatchSizes returns the number of symbols in each snapshot request, in arrival order.
func (s *MockAlpacaServer) SnapshotBatchSizes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sizes := make([]int, len(s.snapshotSizes))
	copy(sizes, s.snapshotSizes)

	return sizes
}

// Positions returns the open positions sorted by symbol.
func (s *MockAlpacaServer) Positions() []types.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedPositions()
}

// Orders returns copies of every order in placement order.
func (s *MockAlpacaServer) Orders() []types.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]types.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = *order
	}

	return orders
}

// Quotes returns the generated quotes of symbol.
func (s *MockAlpacaServer) Quotes(symbol string) []types.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.quotes[symbol]
}

// Middleware

func (s *MockAlpacaServer) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			s.mu.Lock()
			s.requests[route.GetName()]++
			s.mu.Unlock()
		}

		next.ServeHTTP(w, r)
	})
}

func (s *MockAlpacaServer) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.APIKeyID != "" && r.URL.Path != "/stream" &&
			(r.Header.Get("APCA-API-KEY-ID") != s.config.APIKeyID || r.Header.Get("APCA-API-SECRET-KEY") != s.config.SecretKey) {
			writeError(w, http.StatusUnauthorized, "request is not authorized")

			return
		}

		route := mux.CurrentRoute(r)
		if route != nil {
			s.mu.RLock()
			status, failing := s.failures[route.GetName()]
			symbolStatus, symbolFailing := s.symbolFailure[mux.Vars(r)["symbol"]]
			s.mu.RUnlock()

			if failing {
				writeError(w, status, "injected failure")

				return
			}

			if symbolFailing {
				writeError(w, symbolStatus, "injected failure for symbol")

				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"code": status * 100000, "message": message})
}

func (s *MockAlpacaServer) sortedPositions() []types.Position {
	positions := make([]types.Position, 0, len(s.positions))
	for _, position := range s.positions {
		positions = append(positions, position)
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })

	return positions
}

// lastPrice is the latest mid price of symbol, or the position's current price when there is no data.
func (s *MockAlpacaServer) lastPrice(symbol string) decimal.Decimal {
	if quotes := s.quotes[symbol]; len(quotes) > 0 {
		last := quotes[len(quotes)-1]

		return last.AskPrice.Add(last.BidPrice).Div(decimal.NewFromInt(2)).Round(4)
	}

	if position, ok := s.positions[symbol]; ok {
		return position.CurrentPrice
	}

	return decimal.NewFromInt(100)
}
