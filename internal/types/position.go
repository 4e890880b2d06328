package types

import "github.com/shopspring/decimal"

// PositionSide is the direction of an open position.
type PositionSide string

const (
	PositionSideLong  PositionSide = "long"
	PositionSideShort PositionSide = "short"
)

// Position is an open position held in the account.
type Position struct {
	AssetID                string          `json:"asset_id" yaml:"asset_id"`
	Symbol                 string          `json:"symbol" yaml:"symbol"`
	Exchange               string          `json:"exchange" yaml:"exchange"`
	AssetClass             string          `json:"asset_class" yaml:"asset_class"`
	AvgEntryPrice          decimal.Decimal `json:"avg_entry_price" yaml:"avg_entry_price"`
	Qty                    decimal.Decimal `json:"qty" yaml:"qty"`
	Side                   PositionSide    `json:"side" yaml:"side"`
	MarketValue            decimal.Decimal `json:"market_value" yaml:"market_value"`
	CostBasis              decimal.Decimal `json:"cost_basis" yaml:"cost_basis"`
	UnrealizedPL           decimal.Decimal `json:"unrealized_pl" yaml:"unrealized_pl"`
	UnrealizedPLPC         decimal.Decimal `json:"unrealized_plpc" yaml:"unrealized_plpc"`
	UnrealizedIntradayPL   decimal.Decimal `json:"unrealized_intraday_pl" yaml:"unrealized_intraday_pl"`
	UnrealizedIntradayPLPC decimal.Decimal `json:"unrealized_intraday_plpc" yaml:"unrealized_intraday_plpc"`
	CurrentPrice           decimal.Decimal `json:"current_price" yaml:"current_price"`
	LastdayPrice           decimal.Decimal `json:"lastday_price" yaml:"lastday_price"`
	ChangeToday            decimal.Decimal `json:"change_today" yaml:"change_today"`
}

// QuoteSelector names the side of a symbol's open position so the relevant
// side of the book can be picked: a long exits at the bid, a short covers at the ask.
type QuoteSelector struct {
	Symbol string       `json:"symbol" yaml:"symbol" validate:"required"`
	Side   PositionSide `json:"side" yaml:"side" validate:"required,oneof=long short"`
}

// QuotePrice is the price selected for a QuoteSelector.
type QuotePrice struct {
	Symbol string          `json:"symbol" yaml:"symbol"`
	Side   PositionSide    `json:"side" yaml:"side"`
	Price  decimal.Decimal `json:"price" yaml:"price"`
}

// SelectorFor builds the QuoteSelector matching an open position.
func SelectorFor(p Position) QuoteSelector {
	return QuoteSelector{Symbol: p.Symbol, Side: p.Side}
}

// RelevantPrice returns the bid for long positions and the ask for short ones.
func (q Quote) RelevantPrice(side PositionSide) decimal.Decimal {
	if side == PositionSideShort {
		return q.AskPrice
	}

	return q.BidPrice
}
