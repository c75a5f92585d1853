package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type txCmd struct {
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded trades, newest first" }
func (*txCmd) Usage() string {
	return `at tx [-head <n>]

  Lists the trade history, newest first.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N trades.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	txs, err := store.ListTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing trades: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Date | Symbol | Side | Quantity | Price | Total |\n")
	fmt.Fprintf(&b, "|------|--------|------|---------:|------:|------:|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f | %.2f |\n",
			tx.DateStr, tx.Symbol, tx.Side, tx.Quantity, tx.Price.Float64(), tx.Total.Float64())
	}

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
