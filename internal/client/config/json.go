package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wholesalelens/lenscli/internal/flagx"
	"github.com/wholesalelens/lenscli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	GatewayAddr      string         `json:"gateway_addr"`
	ProfileTimeout   timex.Duration `json:"profile_timeout"`
	WatchdogInterval timex.Duration `json:"watchdog_interval"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag, no JSON. Only fields present in the file override;
// absent fields keep their earlier values. Panics on read or unmarshal
// errors.
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

	if jc.GatewayAddr != "" {
		cfg.GatewayAddr = jc.GatewayAddr
	}
	if jc.ProfileTimeout.Duration != 0 {
		cfg.ProfileTimeout = time.Duration(jc.ProfileTimeout.Duration)
	}
	if jc.WatchdogInterval.Duration != 0 {
		cfg.WatchdogInterval = time.Duration(jc.WatchdogInterval.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
