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

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the current quote for a symbol" }
func (*quoteCmd) Usage() string {
	return `at quote <symbol>

  Displays the latest price snapshot for the symbol. In simulated mode, or
  when the live provider fails, a simulated quote is shown instead.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := f.Arg(0)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}

	ctrl := NewController()
	market := alphatrade.NewMarketService(Logger())
	q := market.FetchQuote(ctx, symbol, ctrl.Mode(), ctrl.Config().FinnhubAPIKey)

	printMarkdown(renderQuote(q, ctrl.Mode()))
	return subcommands.ExitSuccess
}

func renderQuote(q alphatrade.Quote, mode alphatrade.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", q.Symbol, mode)
	fmt.Fprintf(&b, "|            |         |\n")
	fmt.Fprintf(&b, "|------------|--------:|\n")
	fmt.Fprintf(&b, "| Price      | %.2f |\n", q.Price)
	fmt.Fprintf(&b, "| Change     | %+.2f (%+.2f%%) |\n", q.Change, q.ChangePercent)
	fmt.Fprintf(&b, "| Open       | %.2f |\n", q.Open)
	fmt.Fprintf(&b, "| High       | %.2f |\n", q.High)
	fmt.Fprintf(&b, "| Low        | %.2f |\n", q.Low)
	fmt.Fprintf(&b, "| Prev Close | %.2f |\n", q.PrevClose)
	return b.String()
}
