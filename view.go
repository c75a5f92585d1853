package alphatrade

import (
	"context"
	"sync"
)

// View bundles the quote and candle series a market screen needs for one
// symbol. Both sides are fetched concurrently and resolve independently,
// each with its own fallback; neither can fail or block the other.
type View struct {
	Symbol  string
	Quote   Quote
	Candles []CandleBar
}

// FetchView retrieves the quote and candles for a symbol concurrently and
// joins both before returning. There is no ordering guarantee between the
// two retrievals beyond both being complete on return.
func (s *MarketService) FetchView(ctx context.Context, symbol string, res Resolution, mode Mode, apiKey string) View {
	view := View{Symbol: symbol}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		view.Quote = s.FetchQuote(ctx, symbol, mode, apiKey)
	}()
	go func() {
		defer wg.Done()
		view.Candles = s.FetchCandles(ctx, symbol, res, mode, apiKey)
	}()
	wg.Wait()

	return view
}

// ViewTracker guards a view against stale responses. In-flight requests are
// never cancelled, so when the user switches symbols the superseded request
// still completes; its result must be discarded rather than allowed to
// overwrite newer state.
//
// Each new request takes a token from Begin; when its response arrives, the
// result is applied only if Current still accepts the token.
type ViewTracker struct {
	mu      sync.Mutex
	current uint64
}

// Begin registers a new request and returns its token, invalidating every
// token handed out before.
func (t *ViewTracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	return t.current
}

// Current reports whether the token still identifies the latest request.
func (t *ViewTracker) Current(token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return token == t.current
}
