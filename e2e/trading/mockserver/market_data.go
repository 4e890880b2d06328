package mockserver

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
)

type barsResponse struct {
	Bars          map[string][]types.Bar `json:"bars"`
	NextPageToken *string                `json:"next_page_token"`
}

type quotesResponse struct {
	Symbol        string        `json:"symbol"`
	Quotes        []types.Quote `json:"quotes"`
	NextPageToken *string       `json:"next_page_token"`
}

// window is the requested [start, end) range of a data request. Zero bounds are open.
type window struct {
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	if !w.start.IsZero() && t.Before(w.start) {
		return false
	}

	return w.end.IsZero() || t.Before(w.end)
}

type symbolBar struct {
	symbol string
	bar    types.Bar
}

// handleBars handles GET /v2/stocks/bars
// Bars of all requested symbols are paged together in symbol order.
func (s *MockAlpacaServer) handleBars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	symbols := splitSymbols(query.Get("symbols"))
	if len(symbols) == 0 {
		writeError(w, http.StatusBadRequest, "missing symbols")

		return
	}

	if query.Get("timeframe") == "" {
		writeError(w, http.StatusBadRequest, "missing timeframe")

		return
	}

	requested, offset, limit, ok := s.parsePaging(w, query.Get("start"), query.Get("end"), query.Get("page_token"), query.Get("limit"))
	if !ok {
		return
	}

	slices.Sort(symbols)

	s.mu.RLock()

	matched := make([]symbolBar, 0)

	for _, symbol := range symbols {
		for _, bar := range s.bars[symbol] {
			if requested.contains(bar.Timestamp) {
				matched = append(matched, symbolBar{symbol: symbol, bar: bar})
			}
		}
	}
	s.mu.RUnlock()

	page, next := pageOf(matched, offset, limit)

	resp := barsResponse{Bars: make(map[string][]types.Bar), NextPageToken: next}
	for _, item := range page {
		resp.Bars[item.symbol] = append(resp.Bars[item.symbol], item.bar)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleQuotes handles GET /v2/stocks/{symbol}/quotes
func (s *MockAlpacaServer) handleQuotes(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	query := r.URL.Query()

	requested, offset, limit, ok := s.parsePaging(w, query.Get("start"), query.Get("end"), query.Get("page_token"), query.Get("limit"))
	if !ok {
		return
	}

	s.mu.RLock()

	matched := make([]types.Quote, 0)

	for _, quote := range s.quotes[symbol] {
		if requested.contains(quote.Timestamp) {
			matched = append(matched, quote)
		}
	}
	s.mu.RUnlock()

	page, next := pageOf(matched, offset, limit)

	writeJSON(w, http.StatusOK, quotesResponse{Symbol: symbol, Quotes: page, NextPageToken: next})
}

// handleSnapshots handles GET /v2/stocks/snapshots
// Symbols without data are left out of the response.
func (s *MockAlpacaServer) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	symbols := splitSymbols(r.URL.Query().Get("symbols"))
	if len(symbols) == 0 {
		writeError(w, http.StatusBadRequest, "missing symbols")

		return
	}

	s.mu.Lock()
	s.snapshotSizes = append(s.snapshotSizes, len(symbols))

	snapshots := make(map[string]*types.Snapshot, len(symbols))

	for _, symbol := range symbols {
		quotes := s.quotes[symbol]
		bars := s.bars[symbol]

		if len(quotes) == 0 || len(bars) == 0 {
			continue
		}

		quote := quotes[len(quotes)-1]
		minute := bars[len(bars)-1]
		daily := dailyBar(bars)

		snapshots[symbol] = &types.Snapshot{
			LatestTrade: &types.Trade{
				Timestamp:  quote.Timestamp,
				Exchange:   quote.AskExchange,
				Price:      s.lastPrice(symbol),
				Size:       100,
				Conditions: []string{"@"},
				ID:         int64(len(quotes)),
				Tape:       quote.Tape,
			},
			LatestQuote:  &quote,
			MinuteBar:    &minute,
			DailyBar:     &daily,
			PrevDailyBar: nil,
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snapshots)
}

// parsePaging reads the time window, page token and limit. It writes the error response itself.
func (s *MockAlpacaServer) parsePaging(w http.ResponseWriter, start, end, token, limitValue string) (window, int, int, bool) {
	var requested window

	var err error

	if requested.start, err = parseTimeParam(start); err != nil {
		writeError(w, http.StatusBadRequest, "invalid start")

		return window{}, 0, 0, false
	}

	if requested.end, err = parseTimeParam(end); err != nil {
		writeError(w, http.StatusBadRequest, "invalid end")

		return window{}, 0, 0, false
	}

	offset := 0
	if token != "" {
		if offset, err = strconv.Atoi(token); err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "invalid page_token")

			return window{}, 0, 0, false
		}
	}

	limit := s.config.PageSize
	if limitValue != "" {
		parsed, err := strconv.Atoi(limitValue)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")

			return window{}, 0, 0, false
		}

		limit = min(parsed, s.config.PageSize)
	}

	return requested, offset, limit, true
}

// pageOf cuts items[offset:offset+limit] and returns the token of the next page, if any.
func pageOf[T any](items []T, offset, limit int) ([]T, *string) {
	if offset >= len(items) {
		return []T{}, nil
	}

	end := min(offset+limit, len(items))
	if end == len(items) {
		return items[offset:end], nil
	}

	next := strconv.Itoa(end)

	return items[offset:end], &next
}

func dailyBar(bars []types.Bar) types.Bar {
	daily := bars[0]

	for _, bar := range bars[1:] {
		if bar.High.GreaterThan(daily.High) {
			daily.High = bar.High
		}

		if bar.Low.LessThan(daily.Low) {
			daily.Low = bar.Low
		}

		daily.Close = bar.Close
		daily.Volume += bar.Volume
		daily.TradeCount += bar.TradeCount
	}

	return daily
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, value)
}

func splitSymbols(value string) []string {
	symbols := make([]string, 0)

	for _, symbol := range strings.Split(value, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}

	return symbols
}
