package config

import "time"

// Config holds runtime settings for the DreamHost CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - StateFile: path of the local sqlite database holding session state.
//   - RequestTimeout: per-request HTTP timeout; zero disables the timeout,
//     matching the web client's behavior.
type Config struct {
	BaseURL        string
	StateFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3001"
	c.StateFile = "dreamhost.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
