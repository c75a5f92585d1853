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

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list all assets in the portfolio" }
func (*assetsCmd) Usage() string {
	return `at assets

  Lists the asset collection, with value, cost, and unrealized gain per asset.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var b strings.Builder
	fmt.Fprintf(&b, "| Name | Type | Quantity | Value | Cost | Gain |\n")
	fmt.Fprintf(&b, "|------|------|---------:|------:|-----:|-----:|\n")
	for _, a := range assets {
		qty := ""
		if !a.Quantity.IsZero() {
			qty = a.Quantity.String()
		}
		gain := "n/a"
		if g, ok := a.GainPercent(); ok {
			gain = g.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n", a.Name, a.Type, qty, a.Value, a.Cost, gain)
	}

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	name     string
	typ      string
	value    float64
	cost     float64
	currency string
	quantity float64
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add a new asset to the portfolio" }
func (*addAssetCmd) Usage() string {
	return `at add-asset -name <name> -type <type> -value <amount> [-cost <amount>] [-currency <code>] [-quantity <n>]

  Adds an asset to the collection. Accepted types: STOCK, CASH, CRYPTO,
  REAL_ESTATE, OTHER. When -cost is omitted it defaults to the value.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the asset.")
	f.StringVar(&c.typ, "type", "", "Asset type (STOCK, CASH, CRYPTO, REAL_ESTATE, OTHER).")
	f.Float64Var(&c.value, "value", 0, "Current total value of the asset.")
	f.Float64Var(&c.cost, "cost", 0, "Original cost. Defaults to the value.")
	f.StringVar(&c.currency, "currency", "USD", "Currency code the amounts are denominated in.")
	f.Float64Var(&c.quantity, "quantity", 0, "Number of units held. 0 means not tracked.")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := alphatrade.ParseAssetType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	asset, err := alphatrade.NewAsset(c.name, typ,
		alphatrade.M(c.value, c.currency),
		alphatrade.M(c.cost, c.currency),
		alphatrade.Q(c.quantity))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.UpsertAsset(asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added asset %q (%s) valued at %s\n", asset.Name, asset.Type, asset.Value)
	return subcommands.ExitSuccess
}
