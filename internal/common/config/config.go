// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig               `mapstructure:"app"`
	Camunda      CamundaConfig           `mapstructure:"camunda"`
	Database     DatabaseConfig          `mapstructure:"database"`
	Catalog      CatalogConfig           `mapstructure:"catalog"`
	Orchestrator OrchestratorConfig      `mapstructure:"orchestrator"`
	Events       EventsConfig            `mapstructure:"events"`
	Workers      map[string]WorkerConfig `mapstructure:"workers"`
	Logging      LoggingConfig           `mapstructure:"logging"`
	Server       ServerConfig            `mapstructure:"server"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CatalogConfig selects where templates are loaded from at startup.
type CatalogConfig struct {
	Source string `mapstructure:"source"` // file | postgres | elasticsearch
	Path   string `mapstructure:"path"`   // empty means the built-in catalog
	Table  string `mapstructure:"table"`
	Index  string `mapstructure:"index"`
}

type OrchestratorConfig struct {
	BatchDelay        int `mapstructure:"batch_delay"`     // milliseconds
	MissionTimeout    int `mapstructure:"mission_timeout"` // milliseconds
	SubscriberBuffer  int `mapstructure:"subscriber_buffer"`
	SelectionCacheTTL int `mapstructure:"selection_cache_ttl"` // seconds
}

// EventsConfig holds the process-wide broadcast sinks.
type EventsConfig struct {
	Log struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"log"`
	Redis struct {
		Enabled        bool   `mapstructure:"enabled"`
		Channel        string `mapstructure:"channel"`
		ControlChannel string `mapstructure:"control_channel"`
	} `mapstructure:"redis"`
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		Region   string `mapstructure:"region"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
}

// WorkerConfig holds the core settings applicable to every job worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// BatchDelayDuration and friends convert the millisecond settings.
func (o OrchestratorConfig) BatchDelayDuration() time.Duration {
	return GetDuration(o.BatchDelay)
}

func (o OrchestratorConfig) MissionTimeoutDuration() time.Duration {
	return GetDuration(o.MissionTimeout)
}

func (o OrchestratorConfig) SelectionCacheTTLDuration() time.Duration {
	return time.Duration(o.SelectionCacheTTL) * time.Second
}
