package tradingprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	headerKeyID     = "APCA-API-KEY-ID"
	headerSecretKey = "APCA-API-SECRET-KEY"

	defaultHTTPTimeout = 30 * time.Second
	rateLimitBurst     = 8
)

var _ trading.Client = (*AlpacaClient)(nil)

// AlpacaClient implements trading.Client against the Alpaca trading and market data REST APIs.
// Reads are retried with exponential backoff on 429 and 5xx; writes are never retried.
type AlpacaClient struct {
	trading    *resty.Client
	data       *resty.Client
	limiter    *rate.Limiter
	feed       string
	maxRetries int
	newBackOff func() backoff.BackOff
}

// apiError is the error body returned by Alpaca.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type barsResponse struct {
	Bars          map[string][]types.Bar `json:"bars"`
	NextPageToken *string                `json:"next_page_token"`
}

type quotesResponse struct {
	Symbol        string        `json:"symbol"`
	Quotes        []types.Quote `json:"quotes"`
	NextPageToken *string       `json:"next_page_token"`
}

// NewAlpacaClient creates a REST client for the paper or live environment.
// Endpoints set in config take precedence over the environment defaults.
func NewAlpacaClient(config AlpacaProviderConfig, paper bool) (*AlpacaClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newAlpacaClient(config.withDefaults(paper)), nil
}

func newAlpacaClient(config AlpacaProviderConfig) *AlpacaClient {
	return &AlpacaClient{
		trading:    newRestClient(config.BaseURL, config),
		data:       newRestClient(config.DataURL, config),
		limiter:    rate.NewLimiter(rate.Limit(float64(config.RateLimitPerMinute)/60), rateLimitBurst),
		feed:       config.Feed,
		maxRetries: config.MaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

func newRestClient(baseURL string, config AlpacaProviderConfig) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader(headerKeyID, config.ApiKeyID).
		SetHeader(headerSecretKey, config.SecretKey).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultHTTPTimeout)
}

// GetAccount implements trading.Client.
func (c *AlpacaClient) GetAccount(ctx context.Context) (types.Account, error) {
	var account types.Account
	if err := c.do(ctx, c.trading, resty.MethodGet, "/v2/account", nil, &account); err != nil {
		return types.Account{}, err
	}

	return account, nil
}

// GetAssets implements trading.Client.
func (c *AlpacaClient) GetAssets(ctx context.Context) ([]types.Asset, error) {
	var assets []types.Asset

	err := c.do(ctx, c.trading, resty.MethodGet, "/v2/assets", func(r *resty.Request) {
		r.SetQueryParam("status", "active")
	}, &assets)
	if err != nil {
		return nil, err
	}

	return assets, nil
}

// GetPositions implements trading.Client.
func (c *AlpacaClient) GetPositions(ctx context.Context) ([]types.Position, error) {
	positions := []types.Position{}
	if err := c.do(ctx, c.trading, resty.MethodGet, "/v2/positions", nil, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

// GetClock implements trading.Client.
func (c *AlpacaClient) GetClock(ctx context.Context) (types.MarketClock, error) {
	var clock types.MarketClock
	if err := c.do(ctx, c.trading, resty.MethodGet, "/v2/clock", nil, &clock); err != nil {
		return types.MarketClock{}, err
	}

	return clock, nil
}

// GetBars implements trading.Client.
func (c *AlpacaClient) GetBars(ctx context.Context, req types.BarsRequest) (types.BarsPage, error) {
	var resp barsResponse

	err := c.do(ctx, c.data, resty.MethodGet, "/v2/stocks/bars", func(r *resty.Request) {
		r.SetQueryParam("symbols", strings.Join(req.Symbols, ","))
		r.SetQueryParam("timeframe", req.TimeFrame)
		r.SetQueryParam("feed", c.feedOr(req.Feed))
		setTimeParam(r, "start", req.Start)
		setTimeParam(r, "end", req.End)
		setLimitParam(r, req.Limit)
		setPageToken(r, req.PageToken)
	}, &resp)
	if err != nil {
		return types.BarsPage{}, err
	}

	bars := resp.Bars
	if bars == nil {
		bars = map[string][]types.Bar{}
	}

	return types.BarsPage{
		Bars:          bars,
		NextPageToken: pageToken(resp.NextPageToken),
	}, nil
}

// GetQuotes implements trading.Client.
func (c *AlpacaClient) GetQuotes(ctx context.Context, req types.QuotesRequest) (types.QuotesPage, error) {
	var resp quotesResponse

	err := c.do(ctx, c.data, resty.MethodGet, "/v2/stocks/{symbol}/quotes", func(r *resty.Request) {
		r.SetPathParam("symbol", req.Symbol)
		r.SetQueryParam("feed", c.feedOr(req.Feed))
		setTimeParam(r, "start", req.Start)
		setTimeParam(r, "end", req.End)
		setLimitParam(r, req.Limit)
		setPageToken(r, req.PageToken)
	}, &resp)
	if err != nil {
		return types.QuotesPage{}, err
	}

	quotes := resp.Quotes
	if quotes == nil {
		quotes = []types.Quote{}
	}

	return types.QuotesPage{
		Symbol:        req.Symbol,
		Quotes:        quotes,
		NextPageToken: pageToken(resp.NextPageToken),
	}, nil
}

// GetSnapshots implements trading.Client.
func (c *AlpacaClient) GetSnapshots(ctx context.Context, symbols []string) (map[string]types.Snapshot, error) {
	var resp map[string]*types.Snapshot

	err := c.do(ctx, c.data, resty.MethodGet, "/v2/stocks/snapshots", func(r *resty.Request) {
		r.SetQueryParam("symbols", strings.Join(symbols, ","))
		r.SetQueryParam("feed", c.feed)
	}, &resp)
	if err != nil {
		return nil, err
	}

	snapshots := make(map[string]types.Snapshot, len(resp))
	for symbol, snapshot := range resp {
		if snapshot != nil {
			snapshots[symbol] = *snapshot
		}
	}

	return snapshots, nil
}

// PlaceOrder implements trading.Client.
func (c *AlpacaClient) PlaceOrder(ctx context.Context, req types.PlaceOrderRequest) (types.Order, error) {
	var order types.Order

	err := c.do(ctx, c.trading, resty.MethodPost, "/v2/orders", func(r *resty.Request) {
		r.SetBody(req)
	}, &order)
	if err != nil {
		return types.Order{}, err
	}

	return order, nil
}

// ReplaceOrder implements trading.Client.
func (c *AlpacaClient) ReplaceOrder(ctx context.Context, req types.ReplaceOrderRequest) (types.Order, error) {
	var order types.Order

	err := c.do(ctx, c.trading, resty.MethodPatch, "/v2/orders/{order_id}", func(r *resty.Request) {
		r.SetPathParam("order_id", req.OrderID)
		r.SetBody(req)
	}, &order)
	if err != nil {
		return types.Order{}, err
	}

	return order, nil
}

// ClosePosition implements trading.Client.
func (c *AlpacaClient) ClosePosition(ctx context.Context, symbol string) (types.Order, error) {
	var order types.Order

	err := c.do(ctx, c.trading, resty.MethodDelete, "/v2/positions/{symbol}", func(r *resty.Request) {
		r.SetPathParam("symbol", symbol)
	}, &order)
	if err != nil {
		return types.Order{}, err
	}

	return order, nil
}

// ClosePositions implements trading.Client.
func (c *AlpacaClient) ClosePositions(ctx context.Context, req types.ClosePositionsRequest) ([]types.PositionClosure, error) {
	closures := []types.PositionClosure{}

	err := c.do(ctx, c.trading, resty.MethodDelete, "/v2/positions", func(r *resty.Request) {
		r.SetQueryParam("cancel_orders", strconv.FormatBool(req.CancelOrders))
	}, &closures)
	if err != nil {
		return nil, err
	}

	return closures, nil
}

// CancelOrders implements trading.Client.
func (c *AlpacaClient) CancelOrders(ctx context.Context) ([]types.OrderCancellation, error) {
	cancellations := []types.OrderCancellation{}
	if err := c.do(ctx, c.trading, resty.MethodDelete, "/v2/orders", nil, &cancellations); err != nil {
		return nil, err
	}

	return cancellations, nil
}

// GetOrders implements trading.Client.
func (c *AlpacaClient) GetOrders(ctx context.Context, filter types.OrderFilter) ([]types.Order, error) {
	orders := []types.Order{}

	err := c.do(ctx, c.trading, resty.MethodGet, "/v2/orders", func(r *resty.Request) {
		if filter.Status != "" {
			r.SetQueryParam("status", string(filter.Status))
		}

		setLimitParam(r, filter.Limit)

		if filter.After.IsSome() {
			setTimeParam(r, "after", filter.After.Unwrap())
		}

		if filter.Until.IsSome() {
			setTimeParam(r, "until", filter.Until.Unwrap())
		}

		if len(filter.Symbols) > 0 {
			r.SetQueryParam("symbols", strings.Join(filter.Symbols, ","))
		}
	}, &orders)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// do executes one logical request: rate limited, retried for reads, with
// HTTP failures mapped to remote error codes.
func (c *AlpacaClient) do(
	ctx context.Context,
	rest *resty.Client,
	method string,
	path string,
	build func(r *resty.Request),
	result any,
) error {
	attempt := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "%s %s not sent", method, path))
		}

		req := rest.R().SetContext(ctx)
		if build != nil {
			build(req)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "%s %s failed", method, path)
		}

		if resp.IsError() {
			statusErr := statusError(method, path, resp)
			if isRetryable(resp.StatusCode()) {
				return statusErr
			}

			return backoff.Permanent(statusErr)
		}

		if result == nil {
			return nil
		}

		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return backoff.Permanent(errors.Wrapf(errors.ErrCodeUnexpectedResponse, err, "unexpected response from %s %s", method, path))
		}

		return nil
	}

	if method != resty.MethodGet {
		return unwrapPermanent(attempt())
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)

	err := unwrapPermanent(backoff.Retry(attempt, policy))
	if err != nil && errors.GetCode(err) == errors.ErrCodeUnknown {
		return errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "%s %s failed", method, path)
	}

	return err
}

func (c *AlpacaClient) feedOr(feed string) string {
	if feed != "" {
		return feed
	}

	return c.feed
}

func statusError(method, path string, resp *resty.Response) *errors.Error {
	message := strings.TrimSpace(resp.String())

	var body apiError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		message = body.Message
	}

	return errors.Newf(codeForStatus(resp.StatusCode()), "%s %s returned %d: %s", method, path, resp.StatusCode(), message)
}

func codeForStatus(status int) errors.ErrorCode {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.ErrCodeRemoteUnauthorized
	case status == http.StatusNotFound:
		return errors.ErrCodeRemoteNotFound
	case status == http.StatusTooManyRequests:
		return errors.ErrCodeRemoteRateLimited
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return errors.ErrCodeRemoteRejected
	default:
		return errors.ErrCodeRemoteRequestFailed
	}
}

func isRetryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func unwrapPermanent(err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}

	return err
}

func setTimeParam(r *resty.Request, name string, t time.Time) {
	if !t.IsZero() {
		r.SetQueryParam(name, t.UTC().Format(time.RFC3339))
	}
}

func setLimitParam(r *resty.Request, limit int) {
	if limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(limit))
	}
}

func setPageToken(r *resty.Request, token optional.Option[string]) {
	if token.IsSome() && token.Unwrap() != "" {
		r.SetQueryParam("page_token", token.Unwrap())
	}
}

func pageToken(token *string) optional.Option[string] {
	if token == nil || *token == "" {
		return optional.None[string]()
	}

	return optional.Some(*token)
}
