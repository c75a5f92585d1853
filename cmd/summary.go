package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/alphatrade"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio valuation summary" }
func (*summaryCmd) Usage() string {
	return `at summary

  Displays a valuation of the whole portfolio: total value, total cost,
  unrealized P/L, cash balance, and a per-asset breakdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	assets, err := store.ListAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing assets: %v\n", err)
		return subcommands.ExitFailure
	}

	s := alphatrade.Summarize(assets)

	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Summary\n\n")
	fmt.Fprintf(&b, "|                |                |\n")
	fmt.Fprintf(&b, "|----------------|---------------:|\n")
	fmt.Fprintf(&b, "| Total Value    | %s |\n", s.TotalValue)
	fmt.Fprintf(&b, "| Total Cost     | %s |\n", s.TotalCost)
	if s.PLApplicable {
		fmt.Fprintf(&b, "| Unrealized P/L | %s (%s) |\n", s.UnrealizedPL.SignedString(), s.UnrealizedPLPercent.SignedString())
	} else {
		fmt.Fprintf(&b, "| Unrealized P/L | n/a |\n")
	}
	fmt.Fprintf(&b, "| Cash Balance   | %s |\n", s.CashBalance)
	fmt.Fprintf(&b, "| Assets         | %d |\n", s.Count)

	fmt.Fprintf(&b, "\n## Assets\n\n")
	fmt.Fprintf(&b, "| Name | Type | Value | Cost | Gain |\n")
	fmt.Fprintf(&b, "|------|------|------:|-----:|-----:|\n")
	for _, g := range s.Assets {
		gain := "n/a"
		if g.Applicable {
			gain = g.Gain.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", g.Asset.Name, g.Asset.Type, g.Asset.Value, g.Asset.Cost, gain)
	}

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
