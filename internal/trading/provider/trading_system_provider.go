package tradingprovider

import (
	"sort"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
)

type ProviderType string

const (
	ProviderAlpacaPaper ProviderType = "alpaca-paper"
	ProviderAlpacaLive  ProviderType = "alpaca-live"
)

type ProviderInfo struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	Description    string `json:"description"`
	IsPaperTrading bool   `json:"isPaperTrading"`
}

// Connection bundles the capabilities built for a provider.
type Connection struct {
	Client trading.Client
	// Stream is set only when the provider was configured in stream mode.
	Stream  optional.Option[trading.Stream]
	Verbose bool
}

var providerRegistry = map[ProviderType]ProviderInfo{
	ProviderAlpacaPaper: {
		Name:           string(ProviderAlpacaPaper),
		DisplayName:    "Alpaca Paper",
		Description:    "Alpaca paper trading environment for US equities without real funds",
		IsPaperTrading: true,
	},
	ProviderAlpacaLive: {
		Name:           string(ProviderAlpacaLive),
		DisplayName:    "Alpaca Live",
		Description:    "Alpaca live environment for real-funds US equities trading",
		IsPaperTrading: false,
	},
}

// GetSupportedProviders returns the registered provider names in sorted order.
func GetSupportedProviders() []string {
	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, string(providerType))
	}

	sort.Strings(providers)

	return providers
}

// GetProviderInfo returns metadata for a specific trading provider.
func GetProviderInfo(providerName string) (ProviderInfo, error) {
	info, exists := providerRegistry[ProviderType(providerName)]
	if !exists {
		return ProviderInfo{}, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported trading provider: %s", providerName)
	}

	return info, nil
}

// GetProviderConfigSchema returns the JSON schema for a provider's configuration.
func GetProviderConfigSchema(providerName string) (string, error) {
	switch ProviderType(providerName) {
	case ProviderAlpacaPaper, ProviderAlpacaLive:
		//nolint:exhaustruct
		return strategy.ToJSONSchema(AlpacaProviderConfig{})
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unsupported trading provider: %s", providerName)
	}
}

// ParseProviderConfig parses a JSON configuration string for the given provider.
func ParseProviderConfig(providerName string, jsonConfig string) (any, error) {
	switch ProviderType(providerName) {
	case ProviderAlpacaPaper, ProviderAlpacaLive:
		return parseAlpacaConfig(jsonConfig)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported trading provider: %s", providerName)
	}
}

// NewTradingSystemProvider creates the brokerage capabilities for the provider type.
// The stream is only created in stream mode and connects lazily.
func NewTradingSystemProvider(providerType ProviderType, config any, log *logger.Logger) (*Connection, error) {
	switch providerType {
	case ProviderAlpacaPaper, ProviderAlpacaLive:
		cfg, ok := config.(*AlpacaProviderConfig)
		if !ok {
			return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "invalid config type for %s provider", providerType)
		}

		paper := providerType == ProviderAlpacaPaper

		client, err := NewAlpacaClient(*cfg, paper)
		if err != nil {
			return nil, err
		}

		stream := optional.None[trading.Stream]()

		if cfg.IsStreamMode() {
			alpacaStream, err := NewAlpacaStream(*cfg, paper, log)
			if err != nil {
				return nil, err
			}

			stream = optional.Some[trading.Stream](alpacaStream)
		}

		return &Connection{
			Client:  client,
			Stream:  stream,
			Verbose: cfg.Verbose,
		}, nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported trading provider: %s", providerType)
	}
}
