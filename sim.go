package alphatrade

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// This file holds the simulated data every provider falls back to. The
// series are deterministic for a given symbol and day, so that a live call
// without a credential returns exactly the same bars as a simulated call.

// quoteTemplate is the fixed snapshot every simulated quote is copied from.
var quoteTemplate = Quote{
	Symbol:        "AAPL",
	Price:         154.32,
	Change:        1.25,
	ChangePercent: 0.82,
	High:          155.00,
	Low:           153.10,
	Open:          153.50,
	PrevClose:     153.07,
}

// SimulatedQuote returns the template quote for the given symbol.
func SimulatedQuote(symbol string) Quote {
	q := quoteTemplate
	q.Symbol = symbol
	return q
}

const (
	simBars       = 30
	simBasePrice  = 150.0
	simVolatility = 5.0
)

// daySeed derives the random seed for the current day, so a series is stable
// within a day and refreshes overnight.
func daySeed(now time.Time) int64 {
	y, m, d := now.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// symbolMultiplier returns the per-symbol price scale applied to the
// simulated series: 1 for the template symbol, otherwise a stable value in
// [0.8, 1.3) derived from the symbol itself.
func symbolMultiplier(symbol string) float64 {
	if symbol == quoteTemplate.Symbol {
		return 1
	}
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return 0.8 + float64(h.Sum32()%5000)/10000.0
}

// baseCandles generates the unscaled simulated series: simBars bars ending
// today, each a small random walk around the base price.
func baseCandles(now time.Time) []CandleBar {
	rng := rand.New(rand.NewSource(daySeed(now)))
	bars := make([]CandleBar, 0, simBars)
	for i := 0; i < simBars; i++ {
		open := simBasePrice + rng.Float64()*simVolatility - simVolatility/2
		close := open + rng.Float64()*simVolatility - simVolatility/2
		high := math.Max(open, close) + rng.Float64()*2
		low := math.Min(open, close) - rng.Float64()*2
		volume := rng.Int63n(1000000) + 500000

		day := now.AddDate(0, 0, i-simBars)
		bars = append(bars, CandleBar{
			Time:    day.Unix(),
			Open:    round2(open),
			High:    round2(high),
			Low:     round2(low),
			Close:   round2(close),
			Volume:  volume,
			DateStr: day.Format(candleDateLayout),
		})
	}
	return bars
}

// SimulatedCandles returns the simulated series for a symbol, with the OHLC
// values scaled by the symbol's multiplier. Volumes are not scaled.
func SimulatedCandles(symbol string) []CandleBar {
	mult := symbolMultiplier(symbol)
	bars := baseCandles(time.Now())
	for i := range bars {
		bars[i].Open = round2(bars[i].Open * mult)
		bars[i].High = round2(bars[i].High * mult)
		bars[i].Low = round2(bars[i].Low * mult)
		bars[i].Close = round2(bars[i].Close * mult)
	}
	return bars
}

// FallbackCandles returns the unscaled simulated series. This is the series
// substituted when a live request fails mid-flight; unlike the
// no-credential path it is not symbol-scaled. The asymmetry is observed
// behavior and preserved on purpose.
func FallbackCandles() []CandleBar {
	return baseCandles(time.Now())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SeedAssets is the documented seed set returned when no asset collection
// has been persisted yet.
func SeedAssets() []Asset {
	return []Asset{
		{ID: "1", Name: "Cash (USD)", Type: Cash, Value: M(50000, "USD"), Cost: M(50000, "USD"), Currency: "USD"},
		{ID: "2", Name: "AAPL shares", Type: Stock, Value: M(15432, "USD"), Cost: M(14000, "USD"), Currency: "USD", Quantity: Q(100)},
		{ID: "3", Name: "Bitcoin", Type: Crypto, Value: M(8500, "USD"), Cost: M(5000, "USD"), Currency: "USD", Quantity: Q(0.2)},
	}
}

// SeedTransactions is the documented seed trade history: a single buy ten
// days back.
func SeedTransactions() []Transaction {
	when := time.Now().AddDate(0, 0, -10).Truncate(time.Millisecond)
	return []Transaction{{
		ID:        "t1",
		Symbol:    "AAPL",
		Side:      Buy,
		Price:     M(140.00, ""),
		Quantity:  Q(100),
		Total:     M(14000, ""),
		Timestamp: when,
		DateStr:   when.Format(dateStrLayout),
	}}
}
