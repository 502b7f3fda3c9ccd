package config

import (
	"flag"
	"os"
	"time"

	"github.com/ctabo91/dreamhost-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-f string   path of the local state database (default from Config)
//	-t int      request timeout in seconds, 0 for none (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.StateFile, "f", cfg.StateFile, "path of the local state database")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 for none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
