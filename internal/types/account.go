package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents the brokerage account associated with the configured API key.
type Account struct {
	ID               string          `json:"id" yaml:"id"`
	AccountNumber    string          `json:"account_number" yaml:"account_number"`
	Status           string          `json:"status" yaml:"status"`
	Currency         string          `json:"currency" yaml:"currency"`
	Cash             decimal.Decimal `json:"cash" yaml:"cash"`
	PortfolioValue   decimal.Decimal `json:"portfolio_value" yaml:"portfolio_value"`
	Equity           decimal.Decimal `json:"equity" yaml:"equity"`
	LastEquity       decimal.Decimal `json:"last_equity" yaml:"last_equity"`
	BuyingPower      decimal.Decimal `json:"buying_power" yaml:"buying_power"`
	LongMarketValue  decimal.Decimal `json:"long_market_value" yaml:"long_market_value"`
	ShortMarketValue decimal.Decimal `json:"short_market_value" yaml:"short_market_value"`
	PatternDayTrader bool            `json:"pattern_day_trader" yaml:"pattern_day_trader"`
	TradingBlocked   bool            `json:"trading_blocked" yaml:"trading_blocked"`
	DaytradeCount    int             `json:"daytrade_count" yaml:"daytrade_count"`
	CreatedAt        time.Time       `json:"created_at" yaml:"created_at"`
}

// Asset is a tradable instrument tracked by the brokerage.
type Asset struct {
	ID           string `json:"id" yaml:"id"`
	Class        string `json:"class" yaml:"class"`
	Exchange     string `json:"exchange" yaml:"exchange"`
	Symbol       string `json:"symbol" yaml:"symbol"`
	Name         string `json:"name" yaml:"name"`
	Status       string `json:"status" yaml:"status"`
	Tradable     bool   `json:"tradable" yaml:"tradable"`
	Marginable   bool   `json:"marginable" yaml:"marginable"`
	Shortable    bool   `json:"shortable" yaml:"shortable"`
	Fractionable bool   `json:"fractionable" yaml:"fractionable"`
}

// MarketClock is the brokerage's view of the trading session.
type MarketClock struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	IsOpen    bool      `json:"is_open" yaml:"is_open"`
	NextOpen  time.Time `json:"next_open" yaml:"next_open"`
	NextClose time.Time `json:"next_close" yaml:"next_close"`
}
