package config

import (
	"flag"
	"os"
	"time"

	"github.com/wholesalelens/lenscli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend gateway
//	-t int      profile resolution timeout in seconds
//	-w int      startup watchdog interval in seconds
//	-l string   log level (debug, info, warn, error)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayAddr, "a", cfg.GatewayAddr, "address and port of the backend gateway")
	profileTimeout := fs.Int("t", int(cfg.ProfileTimeout.Seconds()), "profile resolution timeout (in seconds)")
	watchdogInterval := fs.Int("w", int(cfg.WatchdogInterval.Seconds()), "startup watchdog interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ProfileTimeout = time.Duration(*profileTimeout) * time.Second
	cfg.WatchdogInterval = time.Duration(*watchdogInterval) * time.Second
}
