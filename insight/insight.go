// Package insight resolves a natural-language analysis for a symbol and
// price, either from a local template (simulated mode) or from a Gemini
// text-generation call (live mode).
//
// The gateway never returns an error: every failure surfaces as a
// human-readable string, so presentation code can always display something.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/etnz/alphatrade"
)

const model = "gemini-2.5-flash"

// systemInstruction pins the output format: plain text, no markup, so the
// result can be rendered verbatim in any terminal or widget.
const systemInstruction = `You are a professional financial analyst. Give a short analysis of the
stock symbol and current price the user provides. Output plain text only, no
markdown syntax (no **bold**, no # headings); use indentation or simple
bullet characters for layout.`

// promptTemplate is parameterized by symbol and price.
const promptTemplate = `Analyze the stock with symbol %s, currently trading at %.2f. Provide:
1. A short company profile and recent performance.
2. A brief technical read.
3. A concrete, actionable suggestion for investors.
Keep it under 300 words, plain text.`

// simulatedTemplate is the canned analysis served in simulated mode, with
// the placeholder ticker substituted by the requested symbol.
const simulatedTemplate = `[Simulated analysis]

Analysis for AAPL:

1. Fundamentals: strong cash flow, growing services revenue, stable hardware sales.
2. Technicals: trading above the quarterly moving average; short-term momentum leans bullish.
3. Risks: watch for slowing consumer-electronics demand and supply-chain pressure.

Suggestion:
Consider a staged entry. If the price holds the monthly support line on a
pullback, treat it as a buying point. Long-term holders can stay invested.`

// simulatedDelay emulates provider latency in simulated mode. It is a
// suspension point, not a retry loop.
const simulatedDelay = 1500 * time.Millisecond

// Gateway resolves analyses. The zero value is not usable; see New.
type Gateway struct {
	log   zerolog.Logger
	delay time.Duration

	// generate performs the live text-generation call. Swappable in tests.
	generate func(ctx context.Context, apiKey, prompt string) (string, error)
}

// New creates a Gateway.
func New(log zerolog.Logger) *Gateway {
	return &Gateway{
		log:      log.With().Str("component", "insight").Logger(),
		delay:    simulatedDelay,
		generate: generate,
	}
}

// Analyze resolves the analysis for a symbol at a price. In simulated mode
// it returns the template after an artificial delay. In live mode it issues
// one text-generation call; a missing credential, an empty result, and any
// provider error each map to a human-readable string. Nothing escapes this
// boundary as an error.
func (g *Gateway) Analyze(ctx context.Context, symbol string, price float64, mode alphatrade.Mode, apiKey string) string {
	if mode == alphatrade.Simulated {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
		}
		return strings.Replace(simulatedTemplate, "AAPL", symbol, 1)
	}

	if apiKey == "" {
		return fmt.Sprintf("Error: live mode is enabled but no Gemini API key is configured (%s). Check your environment.", alphatrade.GeminiAPIKeyEnv)
	}

	text, err := g.generate(ctx, apiKey, fmt.Sprintf(promptTemplate, symbol, price))
	if err != nil {
		g.log.Warn().Err(err).Str("symbol", symbol).Msg("analysis request failed")
		return fmt.Sprintf("AI analysis failed: %v", err)
	}
	if text == "" {
		return "No analysis result available."
	}
	return text
}

// generate performs a single Gemini GenerateContent round-trip.
func generate(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
