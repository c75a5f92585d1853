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

type candlesCmd struct {
	resolution string
	tail       int
}

func (*candlesCmd) Name() string     { return "candles" }
func (*candlesCmd) Synopsis() string { return "display the candle series for a symbol" }
func (*candlesCmd) Usage() string {
	return `at candles <symbol> [-r D|W] [-tail <n>]

  Displays the OHLCV candle series for the symbol: about 90 days of daily
  bars, or about a year of weekly bars.
`
}

func (c *candlesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.resolution, "r", "D", "Bar resolution: D (daily) or W (weekly).")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N bars.")
}

func (c *candlesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	bars := market.FetchCandles(ctx, symbol, res, ctrl.Mode(), ctrl.Config().FinnhubAPIKey)

	if c.tail > 0 && len(bars) > c.tail {
		bars = bars[len(bars)-c.tail:]
	}

	printMarkdown(renderCandles(symbol, bars))
	return subcommands.ExitSuccess
}

func renderCandles(symbol string, bars []alphatrade.CandleBar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s candles\n\n", symbol)
	fmt.Fprintf(&b, "| Date | Open | High | Low | Close | Volume |\n")
	fmt.Fprintf(&b, "|------|-----:|-----:|----:|------:|-------:|\n")
	for _, bar := range bars {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %d |\n",
			bar.DateStr, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
	}
	return b.String()
}
