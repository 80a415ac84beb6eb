// internal/workers/design/design-mission/config.go
package designmission

import (
	"time"

	"design-missions/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 60 * time.Second,
	}
}

func FromWorkerConfig(wc config.WorkerConfig) *Config {
	c := LoadConfig()
	if wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	return c
}
