package alphatrade

import (
	"fmt"
	"time"
)

// CandleBar is one OHLCV record for a trading period.
type CandleBar struct {
	Time    int64   `json:"time"` // unix seconds
	Open    float64 `json:"open"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Close   float64 `json:"close"`
	Volume  int64   `json:"volume"`
	DateStr string  `json:"dateStr"`
}

// candleDateLayout formats the bar's human-readable date.
const candleDateLayout = "2006-01-02"

// Resolution is the trading period of a candle series.
type Resolution int

const (
	Daily Resolution = iota
	Weekly
)

// String returns the provider's resolution code.
func (r Resolution) String() string {
	switch r {
	case Daily:
		return "D"
	case Weekly:
		return "W"
	default:
		return "D"
	}
}

// ParseResolution parses a provider resolution code.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "D":
		return Daily, nil
	case "W":
		return Weekly, nil
	default:
		return 0, fmt.Errorf("unknown resolution: %q", s)
	}
}

// Lookback returns the historical window a live request covers: about 90
// days of daily bars, about a year of weekly bars.
func (r Resolution) Lookback() time.Duration {
	if r == Weekly {
		return 365 * 24 * time.Hour
	}
	return 90 * 24 * time.Hour
}
