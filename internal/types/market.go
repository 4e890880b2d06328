package types

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Bar is an OHLCV aggregate for one symbol over one timeframe bucket.
type Bar struct {
	Timestamp  time.Time       `json:"t" yaml:"t"`
	Open       decimal.Decimal `json:"o" yaml:"o"`
	High       decimal.Decimal `json:"h" yaml:"h"`
	Low        decimal.Decimal `json:"l" yaml:"l"`
	Close      decimal.Decimal `json:"c" yaml:"c"`
	Volume     uint64          `json:"v" yaml:"v"`
	TradeCount uint64          `json:"n" yaml:"n"`
	VWAP       decimal.Decimal `json:"vw" yaml:"vw"`
}

// Quote is a top-of-book (NBBO) quote.
type Quote struct {
	Timestamp   time.Time       `json:"t" yaml:"t"`
	AskExchange string          `json:"ax" yaml:"ax"`
	AskPrice    decimal.Decimal `json:"ap" yaml:"ap"`
	AskSize     uint32          `json:"as" yaml:"as"`
	BidExchange string          `json:"bx" yaml:"bx"`
	BidPrice    decimal.Decimal `json:"bp" yaml:"bp"`
	BidSize     uint32          `json:"bs" yaml:"bs"`
	Conditions  []string        `json:"c" yaml:"c"`
	Tape        string          `json:"z" yaml:"z"`
}

// Trade is a single print on the consolidated tape.
type Trade struct {
	Timestamp  time.Time       `json:"t" yaml:"t"`
	Exchange   string          `json:"x" yaml:"x"`
	Price      decimal.Decimal `json:"p" yaml:"p"`
	Size       uint32          `json:"s" yaml:"s"`
	Conditions []string        `json:"c" yaml:"c"`
	ID         int64           `json:"i" yaml:"i"`
	Tape       string          `json:"z" yaml:"z"`
}

// Snapshot is the latest market state for one symbol.
// Any field may be nil when the provider has no data for it.
type Snapshot struct {
	LatestTrade  *Trade `json:"latestTrade" yaml:"latest_trade"`
	LatestQuote  *Quote `json:"latestQuote" yaml:"latest_quote"`
	MinuteBar    *Bar   `json:"minuteBar" yaml:"minute_bar"`
	DailyBar     *Bar   `json:"dailyBar" yaml:"daily_bar"`
	PrevDailyBar *Bar   `json:"prevDailyBar" yaml:"prev_daily_bar"`
}

// BarsRequest asks for one page of bars across several symbols.
type BarsRequest struct {
	Symbols   []string
	TimeFrame string
	Start     time.Time
	End       time.Time
	Limit     int
	Feed      string
	PageToken optional.Option[string]
}

// BarsPage is one page of a multi-symbol bars response.
type BarsPage struct {
	Bars          map[string][]Bar
	NextPageToken optional.Option[string]
}

// QuotesRequest asks for one page of quotes for a single symbol.
type QuotesRequest struct {
	Symbol    string
	Start     time.Time
	End       time.Time
	Limit     int
	Feed      string
	PageToken optional.Option[string]
}

// QuotesPage is one page of a single-symbol quotes response.
type QuotesPage struct {
	Symbol        string
	Quotes        []Quote
	NextPageToken optional.Option[string]
}
