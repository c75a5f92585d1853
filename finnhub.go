package alphatrade

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// This file contains the low-level access to the Finnhub API.

const finnhubBaseURL = "https://finnhub.io/api/v1"

// errNoData is returned when the provider answers with an explicit
// "no data" status instead of a candle series.
var errNoData = errors.New("provider returned no data")

// errMalformed is returned when the provider's response does not match the
// expected schema. It triggers fallback, never a crash.
var errMalformed = errors.New("malformed provider response")

// jget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (s *MarketService) jget(ctx context.Context, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// finnhubQuote fetches and maps the live quote for a symbol.
//
//	{ "c": 154.32, "d": 1.25, "dp": 0.82, "h": 155, "l": 153.1, "o": 153.5, "pc": 153.07 }
func (s *MarketService) finnhubQuote(ctx context.Context, symbol, token string) (Quote, error) {
	v := url.Values{}
	v.Set("symbol", symbol)
	v.Set("token", token)
	addr := s.baseURL + "/quote?" + v.Encode()

	var payload struct {
		Current       float64 `json:"c"`
		Change        float64 `json:"d"`
		ChangePercent float64 `json:"dp"`
		High          float64 `json:"h"`
		Low           float64 `json:"l"`
		Open          float64 `json:"o"`
		PrevClose     float64 `json:"pc"`
	}
	if err := s.jget(ctx, addr, &payload); err != nil {
		return Quote{}, err
	}
	// Finnhub answers an all-zero body for symbols it does not know; absent
	// fields decode to zero too. Either way the shape is unusable.
	if payload.Current == 0 && payload.PrevClose == 0 {
		return Quote{}, fmt.Errorf("%w: no quote fields for %q", errMalformed, symbol)
	}
	return Quote{
		Symbol:        symbol,
		Price:         payload.Current,
		Change:        payload.Change,
		ChangePercent: payload.ChangePercent,
		High:          payload.High,
		Low:           payload.Low,
		Open:          payload.Open,
		PrevClose:     payload.PrevClose,
	}, nil
}

// finnhubCandles fetches and zips the live candle series for a symbol.
//
//	{ "s": "ok", "t": [...], "o": [...], "h": [...], "l": [...], "c": [...], "v": [...] }
//
// Any status other than "ok" means the provider has no data for the window.
func (s *MarketService) finnhubCandles(ctx context.Context, symbol string, res Resolution, token string) ([]CandleBar, error) {
	to := time.Now().Unix()
	from := to - int64(res.Lookback().Seconds())

	v := url.Values{}
	v.Set("symbol", symbol)
	v.Set("resolution", res.String())
	v.Set("from", fmt.Sprintf("%d", from))
	v.Set("to", fmt.Sprintf("%d", to))
	v.Set("token", token)
	addr := s.baseURL + "/stock/candle?" + v.Encode()

	var payload struct {
		Status  string    `json:"s"`
		Times   []int64   `json:"t"`
		Opens   []float64 `json:"o"`
		Highs   []float64 `json:"h"`
		Lows    []float64 `json:"l"`
		Closes  []float64 `json:"c"`
		Volumes []float64 `json:"v"`
	}
	if err := s.jget(ctx, addr, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q for %q", errNoData, payload.Status, symbol)
	}
	n := len(payload.Times)
	if len(payload.Opens) != n || len(payload.Highs) != n || len(payload.Lows) != n ||
		len(payload.Closes) != n || len(payload.Volumes) != n {
		return nil, fmt.Errorf("%w: parallel arrays of unequal length for %q", errMalformed, symbol)
	}

	bars := make([]CandleBar, 0, n)
	for i, ts := range payload.Times {
		bars = append(bars, CandleBar{
			Time:    ts,
			Open:    payload.Opens[i],
			High:    payload.Highs[i],
			Low:     payload.Lows[i],
			Close:   payload.Closes[i],
			Volume:  int64(payload.Volumes[i]),
			DateStr: time.Unix(ts, 0).UTC().Format(candleDateLayout),
		})
	}
	return bars, nil
}
