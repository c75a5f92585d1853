package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/alphatrade"
)

// tradeCmd carries the flags shared by 'buy' and 'sell'.
type tradeCmd struct {
	symbol   string
	quantity int
	price    float64
}

func (p *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Ticker symbol to trade.")
	f.IntVar(&p.quantity, "q", 0, "Number of units, a positive whole number.")
	f.Float64Var(&p.price, "p", 0, "Unit price. When omitted, the current quote price is used.")
}

// record fetches the price if needed, builds the trade, and appends it.
func (p *tradeCmd) record(ctx context.Context, side alphatrade.Side) subcommands.ExitStatus {
	if p.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -s <symbol> is required.")
		return subcommands.ExitUsageError
	}
	if p.quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -q must be a positive whole number.")
		return subcommands.ExitUsageError
	}

	price := p.price
	if price == 0 {
		ctrl := NewController()
		market := alphatrade.NewMarketService(Logger())
		quote := market.FetchQuote(ctx, p.symbol, ctrl.Mode(), ctrl.Config().FinnhubAPIKey)
		price = quote.Price
	}

	tx := alphatrade.NewTransaction(p.symbol, side, alphatrade.M(price, ""), alphatrade.Q(p.quantity))

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.AppendTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording trade: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %d %s @ %.2f (total %.2f)\n", tx.Side, p.quantity, tx.Symbol, tx.Price.Float64(), tx.Total.Float64())
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade" }
func (*buyCmd) Usage() string {
	return `at buy -s <symbol> -q <quantity> [-p <price>]

  Records a buy. When -p is omitted, the current quote price is fetched
  (live or simulated, per the current mode).
`
}

func (p *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.record(ctx, alphatrade.Buy)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade" }
func (*sellCmd) Usage() string {
	return `at sell -s <symbol> -q <quantity> [-p <price>]

  Records a sell. When -p is omitted, the current quote price is fetched
  (live or simulated, per the current mode).
`
}

func (p *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.record(ctx, alphatrade.Sell)
}
