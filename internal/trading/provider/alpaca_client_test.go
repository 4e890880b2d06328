package tradingprovider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/mux"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AlpacaClientTestSuite struct {
	suite.Suite
	router *mux.Router
	server *httptest.Server
	client *AlpacaClient
}

func TestAlpacaClientSuite(t *testing.T) {
	suite.Run(t, new(AlpacaClientTestSuite))
}

func (suite *AlpacaClientTestSuite) SetupTest() {
	suite.router = mux.NewRouter()
	suite.server = httptest.NewServer(suite.router)

	client, err := NewAlpacaClient(AlpacaProviderConfig{
		ApiKeyID:           "test-key",
		SecretKey:          "test-secret",
		BaseURL:            suite.server.URL,
		DataURL:            suite.server.URL,
		RateLimitPerMinute: 60000,
	}, true)
	suite.Require().NoError(err)

	client.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	suite.client = client
}

func (suite *AlpacaClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (suite *AlpacaClientTestSuite) TestGetAccountSendsCredentials() {
	suite.router.HandleFunc("/v2/account", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("test-key", r.Header.Get(headerKeyID))
		suite.Equal("test-secret", r.Header.Get(headerSecretKey))
		writeJSON(w, http.StatusOK, `{"id":"acc-1","status":"ACTIVE","cash":"1000.50","equity":"2500","daytrade_count":1}`)
	}).Methods("GET")

	account, err := suite.client.GetAccount(context.Background())
	suite.Require().NoError(err)
	suite.Equal("acc-1", account.ID)
	suite.True(decimal.RequireFromString("1000.50").Equal(account.Cash))
	suite.Equal(1, account.DaytradeCount)
}

func (suite *AlpacaClientTestSuite) TestStatusCodesMapToRemoteErrors() {
	testCases := []struct {
		name   string
		status int
		code   errors.ErrorCode
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, code: errors.ErrCodeRemoteUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, code: errors.ErrCodeRemoteUnauthorized},
		{name: "not found", status: http.StatusNotFound, code: errors.ErrCodeRemoteNotFound},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, code: errors.ErrCodeRemoteRejected},
	}

	var status atomic.Int32

	suite.router.HandleFunc("/v2/account", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, int(status.Load()), `{"code":40010001,"message":"request is not authorized"}`)
	}).Methods("GET")

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			status.Store(int32(tc.status))

			_, err := suite.client.GetAccount(context.Background())
			suite.Require().Error(err)
			suite.Equal(tc.code, errors.GetCode(err))
			suite.True(errors.IsRemoteError(err))
			suite.Contains(err.Error(), "request is not authorized")
		})
	}
}

func (suite *AlpacaClientTestSuite) TestReadsRetryOnServerErrors() {
	var calls atomic.Int32

	suite.router.HandleFunc("/v2/positions", func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusServiceUnavailable, `{"message":"try again"}`)

			return
		}

		writeJSON(w, http.StatusOK, `[{"symbol":"AAPL","qty":"10","side":"long"}]`)
	}).Methods("GET")

	positions, err := suite.client.GetPositions(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int32(3), calls.Load())
	suite.Require().Len(positions, 1)
	suite.Equal(types.PositionSideLong, positions[0].Side)
}

func (suite *AlpacaClientTestSuite) TestReadsGiveUpAfterMaxRetries() {
	var calls atomic.Int32

	suite.router.HandleFunc("/v2/clock", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusTooManyRequests, `{"message":"rate limit exceeded"}`)
	}).Methods("GET")

	_, err := suite.client.GetClock(context.Background())
	suite.Require().Error(err)
	suite.Equal(errors.ErrCodeRemoteRateLimited, errors.GetCode(err))
	suite.Equal(int32(DefaultMaxRetries+1), calls.Load())
}

func (suite *AlpacaClientTestSuite) TestWritesAreNotRetried() {
	var calls atomic.Int32

	suite.router.HandleFunc("/v2/orders", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, `{"message":"internal error"}`)
	}).Methods("POST")

	_, err := suite.client.PlaceOrder(context.Background(), types.PlaceOrderRequest{
		Symbol:      "AAPL",
		Qty:         optional.Some(decimal.NewFromInt(1)),
		Side:        types.OrderSideBuy,
		Type:        types.OrderTypeMarket,
		TimeInForce: types.TimeInForceDay,
	})
	suite.Require().Error(err)
	suite.Equal(errors.ErrCodeRemoteRequestFailed, errors.GetCode(err))
	suite.Equal(int32(1), calls.Load())
}

func (suite *AlpacaClientTestSuite) TestPlaceOrderSendsBody() {
	suite.router.HandleFunc("/v2/orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		suite.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Equal("MSFT", body["symbol"])
		suite.Equal("5", body["qty"])
		suite.Equal("cls", body["time_in_force"])
		suite.Equal("client-1", body["client_order_id"])
		writeJSON(w, http.StatusOK, `{"id":"order-1","client_order_id":"client-1","symbol":"MSFT","qty":"5","status":"accepted"}`)
	}).Methods("POST")

	order, err := suite.client.PlaceOrder(context.Background(), types.PlaceOrderRequest{
		Symbol:        "MSFT",
		Qty:           optional.Some(decimal.NewFromInt(5)),
		Side:          types.OrderSideSell,
		Type:          types.OrderTypeMarket,
		TimeInForce:   types.TimeInForceCLS,
		ClientOrderID: "client-1",
	})
	suite.Require().NoError(err)
	suite.Equal("order-1", order.ID)
	suite.Equal(types.OrderStatusAccepted, order.Status)
}

func (suite *AlpacaClientTestSuite) TestReplaceOrderUsesPath() {
	suite.router.HandleFunc("/v2/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("order-9", mux.Vars(r)["id"])

		var body map[string]any
		suite.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Equal("191.5", body["limit_price"])
		suite.NotContains(body, "order_id")
		writeJSON(w, http.StatusOK, `{"id":"order-10","replaces":"order-9","symbol":"AAPL"}`)
	}).Methods("PATCH")

	order, err := suite.client.ReplaceOrder(context.Background(), types.ReplaceOrderRequest{
		OrderID:    "order-9",
		LimitPrice: optional.Some(decimal.RequireFromString("191.5")),
	})
	suite.Require().NoError(err)
	suite.Equal("order-10", order.ID)
	suite.Equal("order-9", order.Replaces)
}

func (suite *AlpacaClientTestSuite) TestGetBarsPassesQueryAndCursor() {
	start := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)

	suite.router.HandleFunc("/v2/stocks/bars", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		suite.Equal("AAPL,MSFT", query.Get("symbols"))
		suite.Equal("1Min", query.Get("timeframe"))
		suite.Equal("2024-03-08T14:30:00Z", query.Get("start"))
		suite.Equal("", query.Get("end"))
		suite.Equal("token-1", query.Get("page_token"))
		suite.Equal("sip", query.Get("feed"))
		writeJSON(w, http.StatusOK, `{"bars":{"AAPL":[{"t":"2024-03-08T14:30:00Z","o":170,"h":171,"l":169.5,"c":170.4,"v":1200}]},"next_page_token":"token-2"}`)
	}).Methods("GET")

	page, err := suite.client.GetBars(context.Background(), types.BarsRequest{
		Symbols:   []string{"AAPL", "MSFT"},
		TimeFrame: "1Min",
		Start:     start,
		PageToken: optional.Some("token-1"),
	})
	suite.Require().NoError(err)
	suite.Len(page.Bars["AAPL"], 1)
	suite.Equal("token-2", page.NextPageToken.Unwrap())
}

func (suite *AlpacaClientTestSuite) TestGetQuotesNullCursorEndsPaging() {
	suite.router.HandleFunc("/v2/stocks/{symbol}/quotes", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("AAPL", mux.Vars(r)["symbol"])
		suite.Equal("1", r.URL.Query().Get("limit"))
		suite.Empty(r.URL.Query().Get("page_token"))
		writeJSON(w, http.StatusOK, `{"symbol":"AAPL","quotes":[{"t":"2024-03-08T14:30:00Z","ap":170.1,"bp":170}],"next_page_token":null}`)
	}).Methods("GET")

	page, err := suite.client.GetQuotes(context.Background(), types.QuotesRequest{Symbol: "AAPL", Limit: 1})
	suite.Require().NoError(err)
	suite.Equal("AAPL", page.Symbol)
	suite.Len(page.Quotes, 1)
	suite.True(page.NextPageToken.IsNone())
}

func (suite *AlpacaClientTestSuite) TestGetSnapshotsDropsNullEntries() {
	suite.router.HandleFunc("/v2/stocks/snapshots", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("AAPL,NOPE", r.URL.Query().Get("symbols"))
		writeJSON(w, http.StatusOK, `{"AAPL":{"latestQuote":{"ap":170.1,"bp":170}},"NOPE":null}`)
	}).Methods("GET")

	snapshots, err := suite.client.GetSnapshots(context.Background(), []string{"AAPL", "NOPE"})
	suite.Require().NoError(err)
	suite.Len(snapshots, 1)
	suite.Contains(snapshots, "AAPL")
}

func (suite *AlpacaClientTestSuite) TestBulkEndpoints() {
	suite.router.HandleFunc("/v2/positions", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("true", r.URL.Query().Get("cancel_orders"))
		writeJSON(w, http.StatusMultiStatus, `[{"symbol":"AAPL","status":200,"body":{"id":"o-1","symbol":"AAPL"}}]`)
	}).Methods("DELETE")

	suite.router.HandleFunc("/v2/orders", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMultiStatus, `[{"id":"o-2","status":200},{"id":"o-3","status":500}]`)
	}).Methods("DELETE")

	closures, err := suite.client.ClosePositions(context.Background(), types.ClosePositionsRequest{CancelOrders: true})
	suite.Require().NoError(err)
	suite.Require().Len(closures, 1)
	suite.Equal("o-1", closures[0].Order.ID)

	cancellations, err := suite.client.CancelOrders(context.Background())
	suite.Require().NoError(err)
	suite.Len(cancellations, 2)
}

func (suite *AlpacaClientTestSuite) TestGetOrdersFilter() {
	after := time.Date(2024, time.March, 8, 5, 0, 0, 0, time.UTC)

	suite.router.HandleFunc("/v2/orders", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		suite.Equal("all", query.Get("status"))
		suite.Equal("500", query.Get("limit"))
		suite.Equal("2024-03-08T05:00:00Z", query.Get("after"))
		writeJSON(w, http.StatusOK, `[{"id":"o-1","type":"market"},{"id":"o-2","type":"limit"}]`)
	}).Methods("GET")

	orders, err := suite.client.GetOrders(context.Background(), types.OrderFilter{
		Status: types.OrderStatusFilterAll,
		Limit:  500,
		After:  optional.Some(after),
	})
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

func (suite *AlpacaClientTestSuite) TestMalformedResponseIsProtocolError() {
	suite.router.HandleFunc("/v2/account", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `not json`)
	}).Methods("GET")

	_, err := suite.client.GetAccount(context.Background())
	suite.Require().Error(err)
	suite.Equal(errors.ErrCodeUnexpectedResponse, errors.GetCode(err))
	suite.True(errors.IsProtocolError(err))
}

func (suite *AlpacaClientTestSuite) TestNewAlpacaClientRejectsMissingCredentials() {
	_, err := NewAlpacaClient(AlpacaProviderConfig{ApiKeyID: "key"}, true)
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidCredentials, errors.GetCode(err))
}
