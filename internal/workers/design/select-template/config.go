// internal/workers/design/select-template/config.go
package selecttemplate

import (
	"time"

	"design-missions/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// FromWorkerConfig applies the worker section of the service configuration.
func FromWorkerConfig(wc config.WorkerConfig) *Config {
	c := LoadConfig()
	if wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	return c
}
