package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/types"
	"github.com/shopspring/decimal"
)

// DataGenerator generates realistic market data for tests and the mock brokerage.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how market data is generated.
type GeneratorConfig struct {
	// StartTime is the timestamp of the first bar or quote
	StartTime time.Time
	// Interval is the duration between consecutive points
	Interval time.Duration
	// Count is the number of points to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% per step)
	Volatility float64
	// Trend is the drift across the whole series (-0.01 to 0.01 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
	// SpreadBps is the quoted bid/ask spread in basis points
	SpreadBps float64
}

// DefaultConfig returns a regular-session minute series starting at the 9:30am open.
func DefaultConfig() GeneratorConfig {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		newYork = time.UTC
	}

	return GeneratorConfig{
		StartTime:      time.Date(2024, 1, 2, 9, 30, 0, 0, newYork),
		Interval:       time.Minute,
		Count:          390,
		InitialPrice:   100.0,
		Volatility:     0.002, // 0.2% per bar
		Trend:          0.0,   // neutral
		VolumeBase:     10000,
		VolumeVariance: 0.3,
		SpreadBps:      5,
	}
}

// prices walks a geometric Brownian motion and returns one close per step.
func (g *DataGenerator) prices(config GeneratorConfig) []float64 {
	closes := make([]float64, config.Count)
	current := config.InitialPrice

	for i := range closes {
		// Box-Muller transform for a standard normal draw
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		drift := config.Trend / float64(config.Count)

		next := current * (1 + config.Volatility*z + drift)
		if next <= 0 {
			next = current * 0.99
		}

		closes[i] = next
		current = next
	}

	return closes
}

// GenerateBars creates OHLCV bars for a single symbol.
func (g *DataGenerator) GenerateBars(config GeneratorConfig) []types.Bar {
	closes := g.prices(config)
	bars := make([]types.Bar, config.Count)
	open := config.InitialPrice
	current := config.StartTime

	for i, closePrice := range closes {
		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, closePrice) + highExtension

		low := math.Min(open, closePrice) - lowExtension
		if low <= 0 {
			low = math.Min(open, closePrice) * 0.99
		}

		volume := config.VolumeBase * (1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance)
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		bars[i] = types.Bar{
			Timestamp:  current.UTC(),
			Open:       price(open),
			High:       price(high),
			Low:        price(low),
			Close:      price(closePrice),
			Volume:     uint64(volume),
			TradeCount: uint64(volume / 100),
			VWAP:       price((open + high + low + closePrice) / 4),
		}

		open = closePrice
		current = current.Add(config.Interval)
	}

	return bars
}

// GenerateQuotes creates top-of-book quotes for a single symbol around a random walk.
func (g *DataGenerator) GenerateQuotes(config GeneratorConfig) []types.Quote {
	mids := g.prices(config)
	quotes := make([]types.Quote, config.Count)
	current := config.StartTime

	for i, mid := range mids {
		halfSpread := mid * config.SpreadBps / 20000

		quotes[i] = types.Quote{
			Timestamp:   current.UTC(),
			AskExchange: "V",
			AskPrice:    price(mid + halfSpread),
			AskSize:     uint32(1 + g.rng.Intn(10)),
			BidExchange: "V",
			BidPrice:    price(mid - halfSpread),
			BidSize:     uint32(1 + g.rng.Intn(10)),
			Conditions:  []string{"R"},
			Tape:        "C",
		}

		current = current.Add(config.Interval)
	}

	return quotes
}

// GenerateBarsMultiSymbol generates bars for several symbols, varying price and volatility per symbol.
func (g *DataGenerator) GenerateBarsMultiSymbol(symbols []string, baseConfig GeneratorConfig) map[string][]types.Bar {
	bars := make(map[string][]types.Bar, len(symbols))

	for _, symbol := range symbols {
		config := baseConfig
		config.InitialPrice = baseConfig.InitialPrice * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = baseConfig.Volatility * (0.8 + g.rng.Float64()*0.4)

		bars[symbol] = g.GenerateBars(config)
	}

	return bars
}

func price(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val).Round(4)
}
