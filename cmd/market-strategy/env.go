package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	tradingprovider "github.com/rxtech-lab/argo-market-strategy/internal/trading/provider"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// Environment variables holding the brokerage credentials.
const (
	envAPIKeyID  = "ALPACA_API_KEY_ID"
	envSecretKey = "ALPACA_SECRET_KEY"
	envMode      = "ALPACA_MODE"
	envPaper     = "ALPACA_PAPER"
	envVerbose   = "ALPACA_VERBOSE"
	envBaseURL   = "ALPACA_BASE_URL"
	envDataURL   = "ALPACA_DATA_URL"
	envStreamURL = "ALPACA_STREAM_URL"
)

// loadEnvFile loads envFile into the process environment when it exists.
// Variables already set win over the file.
func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to load %s", envFile)
	}

	return nil
}

// credentialsFromEnv builds the provider and its config from the environment.
// Paper trading is the default; ALPACA_PAPER=false selects the live account.
func credentialsFromEnv() (tradingprovider.ProviderType, *tradingprovider.AlpacaProviderConfig, error) {
	paper, err := getEnvAsBool(envPaper, true)
	if err != nil {
		return "", nil, err
	}

	verbose, err := getEnvAsBool(envVerbose, false)
	if err != nil {
		return "", nil, err
	}

	//nolint:exhaustruct
	config := &tradingprovider.AlpacaProviderConfig{
		ApiKeyID:  os.Getenv(envAPIKeyID),
		SecretKey: os.Getenv(envSecretKey),
		Mode:      tradingprovider.ClientMode(os.Getenv(envMode)),
		BaseURL:   os.Getenv(envBaseURL),
		DataURL:   os.Getenv(envDataURL),
		StreamURL: os.Getenv(envStreamURL),
		Verbose:   verbose,
	}

	if err := config.Validate(); err != nil {
		return "", nil, errors.Wrapf(errors.ErrCodeInvalidCredentials, err, "set %s and %s", envAPIKeyID, envSecretKey)
	}

	if paper {
		return tradingprovider.ProviderAlpacaPaper, config, nil
	}

	return tradingprovider.ProviderAlpacaLive, config, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "%s must be a boolean, got %q", key, value)
	}

	return parsed, nil
}
