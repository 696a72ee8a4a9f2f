package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Redis       RedisConfig       `yaml:"redis"`
	Fulfillment FulfillmentConfig `yaml:"fulfillment"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// RedisConfig is optional; the menu cache is disabled when host is empty.
type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type FulfillmentConfig struct {
	AckDelaySeconds          int `yaml:"ack_delay_seconds"`
	JobTimeoutSeconds        int `yaml:"job_timeout_seconds"`
	Prefetch                 int `yaml:"prefetch"`
	HeartbeatIntervalSeconds int `yaml:"heartbeat_interval_seconds"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Fulfillment.AckDelaySeconds == 0 {
		c.Fulfillment.AckDelaySeconds = 60
	}
	if c.Fulfillment.JobTimeoutSeconds == 0 {
		c.Fulfillment.JobTimeoutSeconds = 1200
	}
	if c.Fulfillment.Prefetch == 0 {
		c.Fulfillment.Prefetch = 1
	}
	if c.Fulfillment.HeartbeatIntervalSeconds == 0 {
		c.Fulfillment.HeartbeatIntervalSeconds = 30
	}
}

func (f FulfillmentConfig) AckDelay() time.Duration {
	return time.Duration(f.AckDelaySeconds) * time.Second
}

func (f FulfillmentConfig) JobTimeout() time.Duration {
	return time.Duration(f.JobTimeoutSeconds) * time.Second
}

func (f FulfillmentConfig) HeartbeatInterval() time.Duration {
	return time.Duration(f.HeartbeatIntervalSeconds) * time.Second
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}
