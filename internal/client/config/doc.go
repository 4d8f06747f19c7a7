// Package config loads runtime configuration for the WholesaleLens CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. The LENS_ADMIN_TOKEN environment variable for the elevation secret.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC gateway
//	-t int      profile resolution timeout (seconds)
//	-w int      startup watchdog interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "gateway_addr": "127.0.0.1:50051",
//	  "profile_timeout": "15s",
//	  "watchdog_interval": "30s",
//	  "log_level": "info"
//	}
package config
