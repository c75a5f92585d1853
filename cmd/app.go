// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/alphatrade"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&assetsCmd{}, "portfolio")
	c.Register(&addAssetCmd{}, "portfolio")

	c.Register(&txCmd{}, "transactions")
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&quoteCmd{}, "market")
	c.Register(&candlesCmd{}, "market")
	c.Register(&viewCmd{}, "market")

	c.Register(&analyzeCmd{}, "analysis")

	c.Register(&modeCmd{}, "settings")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "alphatrade.db", "Path to the ledger database file")
var mock = flag.Bool("mock", false, "Force simulated mode even when live credentials are present")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Logger returns the process logger, a console writer on stderr.
func Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// NewController builds the mode controller from the environment. The -mock
// flag forces simulated mode regardless of credentials.
func NewController() *alphatrade.Controller {
	c := alphatrade.NewController(alphatrade.ConfigFromEnv())
	if *mock && c.Mode() == alphatrade.Live {
		c.Toggle()
	}
	return c
}

// OpenStore is the central function to open the ledger database.
func OpenStore() (*alphatrade.Store, error) {
	return alphatrade.OpenStore(*storeFile, Logger())
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
