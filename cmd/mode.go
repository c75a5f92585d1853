package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/alphatrade"
)

type modeCmd struct{}

func (*modeCmd) Name() string     { return "mode" }
func (*modeCmd) Synopsis() string { return "show the current data mode" }
func (*modeCmd) Usage() string {
	return `at mode

  Shows whether the tracker runs on live or simulated data. Live mode
  requires both FINNHUB_API_KEY and GEMINI_API_KEY in the environment; the
  -mock flag forces simulated mode regardless.
`
}

func (c *modeCmd) SetFlags(f *flag.FlagSet) {}

func (c *modeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctrl := NewController()
	cfg := ctrl.Config()

	fmt.Printf("mode: %s\n", ctrl.Mode())
	fmt.Printf("%s: %s\n", alphatrade.FinnhubAPIKeyEnv, credentialStatus(cfg.FinnhubAPIKey))
	fmt.Printf("%s: %s\n", alphatrade.GeminiAPIKeyEnv, credentialStatus(cfg.GeminiAPIKey))

	return subcommands.ExitSuccess
}

func credentialStatus(key string) string {
	if key == "" {
		return "not set"
	}
	return "set"
}
