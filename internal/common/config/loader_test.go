package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: missions-test
workers:
  design-mission:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "missions-test", cfg.App.Name)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, 2*time.Second, cfg.Orchestrator.BatchDelayDuration())
	assert.Equal(t, 30*time.Second, cfg.Orchestrator.MissionTimeoutDuration())
	assert.Equal(t, 10*time.Minute, cfg.Orchestrator.SelectionCacheTTLDuration())
	assert.Equal(t, 64, cfg.Orchestrator.SubscriberBuffer)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "design-missions:events", cfg.Events.Redis.Channel)
	assert.Equal(t, "design-missions:control", cfg.Events.Redis.ControlChannel)

	worker := cfg.Workers["design-mission"]
	assert.True(t, worker.Enabled)
	assert.Equal(t, 5, worker.MaxJobsActive)
	assert.Equal(t, 30000, worker.Timeout)
	assert.Equal(t, 3, worker.MaxRetries)
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_CATALOG_PATH", "/srv/catalog.yaml")
	path := writeConfig(t, `
catalog:
  source: file
  path: ${TEST_CATALOG_PATH}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.yaml", cfg.Catalog.Path)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "postgres source needs host",
			body:    "catalog:\n  source: postgres\n",
			wantErr: "database.postgres.host",
		},
		{
			name:    "elasticsearch source needs addresses",
			body:    "catalog:\n  source: elasticsearch\n",
			wantErr: "database.elasticsearch.addresses",
		},
		{
			name:    "unknown source",
			body:    "catalog:\n  source: ftp\n",
			wantErr: "not supported",
		},
		{
			name:    "camunda enabled without broker",
			body:    "camunda:\n  enabled: true\n",
			wantErr: "camunda.broker_address",
		},
		{
			name:    "redis events need address",
			body:    "events:\n  redis:\n    enabled: true\n",
			wantErr: "database.redis.address",
		},
		{
			name:    "sns needs topic",
			body:    "events:\n  sns:\n    enabled: true\n    region: eu-west-3\n",
			wantErr: "events.sns.topic_arn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetWorkerConfig_FallsBackToDefaults(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"select-template": {Enabled: false, MaxJobsActive: 2},
	}}

	assert.False(t, IsWorkerEnabled(cfg, "select-template"))
	assert.True(t, IsWorkerEnabled(cfg, "design-mission"))

	fallback := GetWorkerConfig(cfg, "design-mission")
	assert.True(t, fallback.Enabled)
	assert.Equal(t, 5, fallback.MaxJobsActive)
	assert.Equal(t, 2, GetWorkerConfig(cfg, "select-template").MaxJobsActive)
}
