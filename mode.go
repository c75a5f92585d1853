package alphatrade

import (
	"fmt"
	"os"
	"sync"
)

// Mode selects where market data and analysis come from.
type Mode int

const (
	// Simulated operates entirely on deterministic local data, no network dependency.
	Simulated Mode = iota
	// Live sources quotes, candles and analysis from external services.
	Live
)

func (m Mode) String() string {
	switch m {
	case Simulated:
		return "simulated"
	case Live:
		return "live"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "simulated":
		return Simulated, nil
	case "live":
		return Live, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", s)
	}
}

// Environment variables holding the live-mode credentials.
const (
	FinnhubAPIKeyEnv = "FINNHUB_API_KEY"
	GeminiAPIKeyEnv  = "GEMINI_API_KEY"
)

// Config holds the credentials required for live mode. Components receive it
// by explicit parameter; nothing in this package reads the environment behind
// the caller's back.
type Config struct {
	FinnhubAPIKey string
	GeminiAPIKey  string
}

// ConfigFromEnv reads the live-mode credentials from the environment.
func ConfigFromEnv() Config {
	return Config{
		FinnhubAPIKey: os.Getenv(FinnhubAPIKeyEnv),
		GeminiAPIKey:  os.Getenv(GeminiAPIKeyEnv),
	}
}

// LiveCapable reports whether both credentials required for live mode are set.
func (c Config) LiveCapable() bool {
	return c.FinnhubAPIKey != "" && c.GeminiAPIKey != ""
}

// Controller owns the process-wide mode value and the live-mode credentials.
// It starts in Simulated and switches to Live only when both credentials are
// detected at construction time.
type Controller struct {
	mu     sync.Mutex
	mode   Mode
	config Config
}

// NewController creates a Controller for the given configuration.
func NewController(cfg Config) *Controller {
	mode := Simulated
	if cfg.LiveCapable() {
		mode = Live
	}
	return &Controller{mode: mode, config: cfg}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Config returns the credentials held by the controller.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Toggle flips the mode unconditionally. It does not re-validate credentials:
// flipping to Live without keys simply makes every provider fall back.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == Simulated {
		c.mode = Live
	} else {
		c.mode = Simulated
	}
}
