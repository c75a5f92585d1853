package alphatrade

import "testing"

func TestParseMode(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Mode
		expectErr bool
	}{
		{"Simulated", "simulated", Simulated, false},
		{"Live", "live", Live, false},
		{"Unknown", "mock", 0, true},
		{"Empty", "", 0, true},
		{"Wrong Case", "Live", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("ParseMode(%q) returned error: %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if !tc.expectErr && got != tc.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(FinnhubAPIKeyEnv, "fk")
	t.Setenv(GeminiAPIKeyEnv, "gk")

	cfg := ConfigFromEnv()
	if cfg.FinnhubAPIKey != "fk" || cfg.GeminiAPIKey != "gk" {
		t.Errorf("ConfigFromEnv() = %+v, want both keys set", cfg)
	}
	if !cfg.LiveCapable() {
		t.Error("LiveCapable() = false, want true with both keys set")
	}
}

func TestNewControllerMode(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{"No Credentials", Config{}, Simulated},
		{"Both Credentials", Config{FinnhubAPIKey: "fk", GeminiAPIKey: "gk"}, Live},
		{"Finnhub Only", Config{FinnhubAPIKey: "fk"}, Simulated},
		{"Gemini Only", Config{GeminiAPIKey: "gk"}, Simulated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(tc.cfg)
			if got := c.Mode(); got != tc.want {
				t.Errorf("NewController(%+v).Mode() = %v, want %v", tc.cfg, got, tc.want)
			}
		})
	}
}

func TestControllerToggle(t *testing.T) {
	c := NewController(Config{})
	if c.Mode() != Simulated {
		t.Fatalf("initial mode = %v, want %v", c.Mode(), Simulated)
	}

	// Toggle does not re-validate credentials.
	c.Toggle()
	if c.Mode() != Live {
		t.Errorf("after first toggle, mode = %v, want %v", c.Mode(), Live)
	}
	c.Toggle()
	if c.Mode() != Simulated {
		t.Errorf("after second toggle, mode = %v, want %v", c.Mode(), Simulated)
	}
}
