package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/thronos/careerforge/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c/-config and unknown flags are ignored here.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-i", "-l", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the CareerForge API")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path of the local state database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "kit export directory")
	poll := fs.Int("i", int(cfg.PollInterval.Seconds()), "KYC poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *poll <= 0 {
		return fmt.Errorf("poll interval must be positive, got %d", *poll)
	}

	cfg.PollInterval = time.Duration(*poll) * time.Second
	return nil
}
