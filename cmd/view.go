package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/alphatrade"
)

type viewCmd struct {
	resolution string
	tail       int
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the quote and candle series for a symbol" }
func (*viewCmd) Usage() string {
	return `at view <symbol> [-r D|W] [-tail <n>]

  Displays the full market view for a symbol: the current quote followed by
  its candle series. Both are fetched concurrently.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.resolution, "r", "D", "Bar resolution: D (daily) or W (weekly).")
	f.IntVar(&c.tail, "tail", 10, "Show only the last N bars.")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := f.Arg(0)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol is required.")
		return subcommands.ExitUsageError
	}

	res, err := alphatrade.ParseResolution(c.resolution)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctrl := NewController()
	market := alphatrade.NewMarketService(Logger())
	view := market.FetchView(ctx, symbol, res, ctrl.Mode(), ctrl.Config().FinnhubAPIKey)

	bars := view.Candles
	if c.tail > 0 && len(bars) > c.tail {
		bars = bars[len(bars)-c.tail:]
	}

	printMarkdown(renderQuote(view.Quote, ctrl.Mode()) + "\n" + renderCandles(symbol, bars))
	return subcommands.ExitSuccess
}
