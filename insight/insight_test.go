package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/etnz/alphatrade"
)

func newTestGateway() *Gateway {
	g := New(zerolog.Nop())
	g.delay = 0
	return g
}

func TestAnalyzeSimulated(t *testing.T) {
	g := newTestGateway()

	got := g.Analyze(context.Background(), "GOOG", 154.32, alphatrade.Simulated, "")

	if !strings.Contains(got, "[Simulated analysis]") {
		t.Errorf("analysis does not carry the simulated marker:\n%s", got)
	}
	if !strings.Contains(got, "Analysis for GOOG:") {
		t.Errorf("analysis is not addressed to the requested symbol:\n%s", got)
	}
	if strings.Contains(got, "Analysis for AAPL") {
		t.Errorf("placeholder symbol leaked into the analysis:\n%s", got)
	}
}

func TestAnalyzeLiveMissingCredential(t *testing.T) {
	g := newTestGateway()
	g.generate = func(ctx context.Context, apiKey, prompt string) (string, error) {
		t.Error("generate was called without a credential")
		return "", nil
	}

	got := g.Analyze(context.Background(), "GOOG", 154.32, alphatrade.Live, "")

	if !strings.Contains(got, alphatrade.GeminiAPIKeyEnv) {
		t.Errorf("missing-credential message does not name the variable:\n%s", got)
	}
}

func TestAnalyzeLive(t *testing.T) {
	testCases := []struct {
		name     string
		generate func(ctx context.Context, apiKey, prompt string) (string, error)
		want     string
	}{
		{
			"Success",
			func(ctx context.Context, apiKey, prompt string) (string, error) {
				if !strings.Contains(prompt, "GOOG") || !strings.Contains(prompt, "154.32") {
					t.Errorf("prompt is missing symbol or price:\n%s", prompt)
				}
				return "a solid company", nil
			},
			"a solid company",
		},
		{
			"Provider Error",
			func(ctx context.Context, apiKey, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
			"AI analysis failed: quota exceeded",
		},
		{
			"Empty Result",
			func(ctx context.Context, apiKey, prompt string) (string, error) {
				return "", nil
			},
			"No analysis result available.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGateway()
			g.generate = tc.generate

			got := g.Analyze(context.Background(), "GOOG", 154.32, alphatrade.Live, "key")
			if got != tc.want {
				t.Errorf("Analyze() = %q, want %q", got, tc.want)
			}
		})
	}
}

// A cancelled context must not hold the simulated delay.
func TestAnalyzeSimulatedCancelled(t *testing.T) {
	g := New(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := g.Analyze(ctx, "GOOG", 154.32, alphatrade.Simulated, "")
	if !strings.Contains(got, "Analysis for GOOG:") {
		t.Errorf("cancelled analysis lost its content:\n%s", got)
	}
}
