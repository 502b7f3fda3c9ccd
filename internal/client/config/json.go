package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ctabo91/dreamhost-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given in whole seconds; after parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL           string `json:"base_url"`
	StateFile         string `json:"state_file"`
	RequestTimeoutSec *int   `json:"request_timeout_sec"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. If no file is named the function returns without
// touching cfg; read or unmarshal errors panic (LoadConfig runs before any
// UI exists to report them).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
	if jc.RequestTimeoutSec != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSec) * time.Second
	}
}
