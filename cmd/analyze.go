package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/alphatrade"
	"github.com/etnz/alphatrade/insight"
)

type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "display an AI analysis of a symbol" }
func (*analyzeCmd) Usage() string {
	return `at analyze <symbol>

  Displays a short analysis of the symbol at its current price. In simulated
  mode a canned analysis is shown; in live mode the analysis is generated by
  Gemini.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := f.Arg(0)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}

	ctrl := NewController()
	log := Logger()
	market := alphatrade.NewMarketService(log)
	quote := market.FetchQuote(ctx, symbol, ctrl.Mode(), ctrl.Config().FinnhubAPIKey)

	gateway := insight.New(log)
	fmt.Println(gateway.Analyze(ctx, symbol, quote.Price, ctrl.Mode(), ctrl.Config().GeminiAPIKey))

	return subcommands.ExitSuccess
}
