package alphatrade

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// MarketService resolves quotes and candle series for a symbol, from either
// the simulated generator or the live provider. Live failures never reach
// the caller: every path resolves to usable data.
type MarketService struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewMarketService creates a market service. No timeout is enforced beyond
// the transport default; a hung request is equivalent to one that fails and
// falls back.
func NewMarketService(log zerolog.Logger) *MarketService {
	return &MarketService{
		baseURL: finnhubBaseURL,
		client:  http.DefaultClient,
		log:     log.With().Str("component", "market").Logger(),
	}
}

// FetchQuote resolves the current quote for a symbol. In simulated mode, or
// when the credential is absent, it returns the simulated quote. In live
// mode it issues a single provider round-trip; on any failure it logs and
// returns the simulated quote. No retries.
func (s *MarketService) FetchQuote(ctx context.Context, symbol string, mode Mode, apiKey string) Quote {
	if mode == Simulated || apiKey == "" {
		s.log.Debug().Str("symbol", symbol).Msg("using simulated quote")
		return SimulatedQuote(symbol)
	}

	quote, err := s.finnhubQuote(ctx, symbol, apiKey)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("live quote failed, falling back to simulated")
		return SimulatedQuote(symbol)
	}
	return quote
}

// FetchCandles resolves the candle series for a symbol and resolution.
// Simulated mode or an absent credential yields the symbol-scaled simulated
// series. A live request that fails, or that the provider answers with "no
// data", yields the unscaled fallback series instead; see FallbackCandles.
func (s *MarketService) FetchCandles(ctx context.Context, symbol string, res Resolution, mode Mode, apiKey string) []CandleBar {
	if mode == Simulated || apiKey == "" {
		s.log.Debug().Str("symbol", symbol).Stringer("resolution", res).Msg("using simulated candles")
		return SimulatedCandles(symbol)
	}

	bars, err := s.finnhubCandles(ctx, symbol, res, apiKey)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("live candles failed, falling back to simulated")
		return FallbackCandles()
	}
	return bars
}
