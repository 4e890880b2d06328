package trading

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading/batch"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

const (
	// DefaultOrderLimit is the largest order listing the brokerage returns in one call.
	DefaultOrderLimit = 500
	// DefaultDataDelay keeps quote windows behind the delayed-data horizon of free feeds.
	DefaultDataDelay = 15 * time.Minute
	// DefaultRequestTimeout bounds a single remote request.
	DefaultRequestTimeout = 30 * time.Second

	quotesLimitAll   = 10000
	quotesLimitFirst = 1
	barsPageLimit    = 10000
)

// GatewayConfig tunes the batching behaviour of the gateway.
type GatewayConfig struct {
	Concurrency    int           `json:"concurrency" yaml:"concurrency" jsonschema:"title=Concurrency,description=Maximum number of requests in flight per fan-out" validate:"gte=0"`
	MaxChunk       int           `json:"max_chunk" yaml:"max_chunk" jsonschema:"title=Max Chunk,description=Maximum symbols per market data request" validate:"gte=0,lte=1000"`
	MaxPages       int           `json:"max_pages" yaml:"max_pages" jsonschema:"title=Max Pages,description=Maximum pages followed for a single sequence" validate:"gte=0"`
	OrderLimit     int           `json:"order_limit" yaml:"order_limit" jsonschema:"title=Order Limit,description=Maximum orders listed per call" validate:"gte=0,lte=500"`
	DataDelay      time.Duration `json:"data_delay" yaml:"data_delay" jsonschema:"title=Data Delay,description=How far behind now quote windows end" validate:"gte=0"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout" jsonschema:"title=Request Timeout,description=Deadline of a single remote request" validate:"gte=0"`
}

// DefaultGatewayConfig returns the configuration used when none is given.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		Concurrency:    batch.DefaultConcurrency,
		MaxChunk:       batch.DefaultMaxChunk,
		MaxPages:       batch.DefaultMaxPages,
		OrderLimit:     DefaultOrderLimit,
		DataDelay:      DefaultDataDelay,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Validate validates the GatewayConfig struct.
func (c GatewayConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid gateway config", err)
	}

	return nil
}

// WithDefaults fills zero fields from DefaultGatewayConfig. DataDelay keeps an explicit zero.
func (c GatewayConfig) WithDefaults() GatewayConfig {
	defaults := DefaultGatewayConfig()

	if c.Concurrency == 0 {
		c.Concurrency = defaults.Concurrency
	}

	if c.MaxChunk == 0 {
		c.MaxChunk = defaults.MaxChunk
	}

	if c.MaxPages == 0 {
		c.MaxPages = defaults.MaxPages
	}

	if c.OrderLimit == 0 {
		c.OrderLimit = defaults.OrderLimit
	}

	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaults.RequestTimeout
	}

	return c
}
