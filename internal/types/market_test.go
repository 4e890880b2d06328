package types

import (
	"encoding/json"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) TestRelevantPrice() {
	quote := Quote{
		AskPrice: decimal.RequireFromString("101.25"),
		BidPrice: decimal.RequireFromString("101.10"),
	}

	suite.True(decimal.RequireFromString("101.10").Equal(quote.RelevantPrice(PositionSideLong)))
	suite.True(decimal.RequireFromString("101.25").Equal(quote.RelevantPrice(PositionSideShort)))
}

func (suite *MarketTestSuite) TestSelectorFor() {
	selector := SelectorFor(Position{Symbol: "TSLA", Side: PositionSideShort})
	suite.Equal(QuoteSelector{Symbol: "TSLA", Side: PositionSideShort}, selector)
}

func (suite *MarketTestSuite) TestSnapshotDecodesPartialPayload() {
	payload := `{
		"latestQuote": {"t": "2024-03-08T15:59:59Z", "ax": "V", "ap": 172.3, "as": 2, "bx": "Q", "bp": 172.28, "bs": 4, "c": ["R"], "z": "C"},
		"dailyBar": {"t": "2024-03-08T05:00:00Z", "o": 170, "h": 173.1, "l": 169.8, "c": 172.29, "v": 51234000, "n": 612000, "vw": 171.9},
		"minuteBar": null
	}`

	var snapshot Snapshot
	suite.Require().NoError(json.Unmarshal([]byte(payload), &snapshot))

	suite.Require().NotNil(snapshot.LatestQuote)
	suite.True(decimal.RequireFromString("172.28").Equal(snapshot.LatestQuote.BidPrice))
	suite.Equal(uint32(4), snapshot.LatestQuote.BidSize)
	suite.Require().NotNil(snapshot.DailyBar)
	suite.Equal(uint64(51234000), snapshot.DailyBar.Volume)
	suite.Nil(snapshot.MinuteBar)
	suite.Nil(snapshot.LatestTrade)
}

func (suite *MarketTestSuite) TestBatchOutcomeConstructors() {
	ok := Succeeded("AAPL", Order{ID: "order-1", Symbol: "AAPL"})
	suite.True(ok.Success)
	suite.Equal("AAPL", ok.Key)
	suite.Equal("order-1", ok.Value.Unwrap().ID)
	suite.Nil(ok.Error)

	failed := Failed[Order]("MSFT", errors.New(errors.ErrCodeOrderFailed, "insufficient buying power"))
	suite.False(failed.Success)
	suite.Equal("MSFT", failed.Key)
	suite.True(failed.Value.IsNone())
	suite.Require().NotNil(failed.Error)
	suite.Equal(errors.ErrCodeOrderFailed, failed.Error.Code)
	suite.Equal(errors.CategoryRemote, failed.Error.Category)
}

func (suite *MarketTestSuite) TestBatchOutcomeJSON() {
	outcome := BatchOutcome[string]{Key: "AAPL", Success: true, Value: optional.Some("filled")}

	data, err := json.Marshal(outcome)
	suite.Require().NoError(err)
	suite.JSONEq(`{"key":"AAPL","success":true,"value":"filled"}`, string(data))
}
