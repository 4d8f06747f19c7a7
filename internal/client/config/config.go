package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the WholesaleLens CLI.
//
// Fields:
//   - GatewayAddr: host:port of the backend gRPC gateway.
//   - ProfileTimeout: hard deadline for one profile resolution, retries
//     included.
//   - WatchdogInterval: how long a startup stage may sit unfinished before
//     the watchdog synthesizes a timeout error.
//   - AdminToken: access-control elevation secret, read from the
//     LENS_ADMIN_TOKEN environment variable only. Empty means no elevation.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	GatewayAddr      string
	ProfileTimeout   time.Duration
	WatchdogInterval time.Duration
	AdminToken       string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayAddr = "127.0.0.1:50051"
	c.ProfileTimeout = 15 * time.Second
	c.WatchdogInterval = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The admin token comes from the environment
// only; secrets do not belong in flags or config files.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.AdminToken = os.Getenv("LENS_ADMIN_TOKEN")
	return cfg
}
