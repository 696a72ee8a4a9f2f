package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.local
  port: 5432
  user: app
  password: secret
  database: orders

rabbitmq:
  host: mq.local
  port: 5672
  user: app
  password: secret

redis:
  host: cache.local
  port: 6379

fulfillment:
  ack_delay_seconds: 30
  job_timeout_seconds: 600
  prefetch: 4
  heartbeat_interval_seconds: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "orders", cfg.Database.Database)
	assert.Equal(t, "mq.local", cfg.RabbitMQ.Host)
	assert.True(t, cfg.Redis.Enabled())

	assert.Equal(t, 30*time.Second, cfg.Fulfillment.AckDelay())
	assert.Equal(t, 10*time.Minute, cfg.Fulfillment.JobTimeout())
	assert.Equal(t, 4, cfg.Fulfillment.Prefetch)
	assert.Equal(t, 10*time.Second, cfg.Fulfillment.HeartbeatInterval())
}

func TestLoadAppliesFulfillmentDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
rabbitmq:
  host: localhost
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Fulfillment.AckDelay())
	assert.Equal(t, 20*time.Minute, cfg.Fulfillment.JobTimeout())
	assert.Equal(t, 1, cfg.Fulfillment.Prefetch)
	assert.Equal(t, 30*time.Second, cfg.Fulfillment.HeartbeatInterval())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "database: [not: a, map")
	_, err := Load(path)
	assert.Error(t, err)
}
