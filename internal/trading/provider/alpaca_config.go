package tradingprovider

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// ClientMode selects whether the trading stream is opened alongside the REST client.
type ClientMode string

const (
	ClientModeClient ClientMode = "client"
	ClientModeStream ClientMode = "stream"
)

const (
	AlpacaPaperBaseURL   = "https://paper-api.alpaca.markets"
	AlpacaLiveBaseURL    = "https://api.alpaca.markets"
	AlpacaDataURL        = "https://data.alpaca.markets"
	AlpacaPaperStreamURL = "wss://paper-api.alpaca.markets/stream"
	AlpacaLiveStreamURL  = "wss://api.alpaca.markets/stream"

	// DefaultRateLimitPerMinute matches the brokerage's per-account request budget.
	DefaultRateLimitPerMinute = 200
	DefaultMaxRetries         = 3
	DefaultFeed               = "sip"
)

// AlpacaProviderConfig contains configuration for Alpaca trading.
type AlpacaProviderConfig struct {
	ApiKeyID           string     `json:"apiKeyId" yaml:"apiKeyId" jsonschema:"title=API Key ID,description=Alpaca API key id" validate:"required"`
	SecretKey          string     `json:"secretKey" yaml:"secretKey" jsonschema:"title=Secret Key,description=Alpaca API secret key" validate:"required"`
	Mode               ClientMode `json:"mode,omitempty" yaml:"mode,omitempty" jsonschema:"title=Mode,description=client for REST only or stream to also open the trading stream,enum=client,enum=stream,default=client" validate:"omitempty,oneof=client stream"`
	BaseURL            string     `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty" jsonschema:"title=Trading API URL,description=Overrides the paper or live trading endpoint" validate:"omitempty,url"`
	DataURL            string     `json:"dataUrl,omitempty" yaml:"dataUrl,omitempty" jsonschema:"title=Market Data API URL" validate:"omitempty,url"`
	StreamURL          string     `json:"streamUrl,omitempty" yaml:"streamUrl,omitempty" jsonschema:"title=Trading Stream URL" validate:"omitempty,url"`
	Feed               string     `json:"feed,omitempty" yaml:"feed,omitempty" jsonschema:"title=Data Feed,enum=sip,enum=iex,default=sip" validate:"omitempty,oneof=sip iex"`
	RateLimitPerMinute int        `json:"rateLimitPerMinute,omitempty" yaml:"rateLimitPerMinute,omitempty" jsonschema:"title=Rate Limit,description=Maximum requests per minute,minimum=1,default=200" validate:"gte=0"`
	MaxRetries         int        `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty" jsonschema:"title=Max Retries,description=Retries of idempotent reads on 429 and 5xx,minimum=0,default=3" validate:"gte=0"`
	Verbose            bool       `json:"verbose,omitempty" yaml:"verbose,omitempty" jsonschema:"title=Verbose,description=Log successful calls as well as failures"`
}

// Validate validates the AlpacaProviderConfig struct.
func (c *AlpacaProviderConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidCredentials, "invalid alpaca provider config", err)
	}

	return nil
}

// IsStreamMode is true when the trading stream should be opened.
func (c *AlpacaProviderConfig) IsStreamMode() bool {
	return c.Mode == ClientModeStream
}

// withDefaults fills unset endpoints and limits for the paper or live environment.
func (c AlpacaProviderConfig) withDefaults(paper bool) AlpacaProviderConfig {
	if c.Mode == "" {
		c.Mode = ClientModeClient
	}

	if c.BaseURL == "" {
		c.BaseURL = AlpacaLiveBaseURL
		if paper {
			c.BaseURL = AlpacaPaperBaseURL
		}
	}

	if c.StreamURL == "" {
		c.StreamURL = AlpacaLiveStreamURL
		if paper {
			c.StreamURL = AlpacaPaperStreamURL
		}
	}

	if c.DataURL == "" {
		c.DataURL = AlpacaDataURL
	}

	if c.Feed == "" {
		c.Feed = DefaultFeed
	}

	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = DefaultRateLimitPerMinute
	}

	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}

	return c
}

// parseAlpacaConfig parses a JSON configuration string into an AlpacaProviderConfig.
func parseAlpacaConfig(jsonConfig string) (*AlpacaProviderConfig, error) {
	var config AlpacaProviderConfig
	if err := json.Unmarshal([]byte(jsonConfig), &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCredentials, "failed to parse alpaca config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
