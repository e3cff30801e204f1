// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type NodeConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	Id                        string
	HealthPort                uint16
	BlockstorePath            string
	MailboxSize               int
	MonitorConfig             MonitorConfig
}

type MonitorConfig struct {
	Interval   time.Duration
	StaleAfter time.Duration
}

type RawNodeConfig struct {
	OpenTelemetryCollectorURL string           `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string           `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string           `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string           `mapstructure:"Env" json:"env"`
	Id                        string           `mapstructure:"Id" json:"id"`
	HealthPort                string           `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	BlockstorePath            string           `mapstructure:"BlockstorePath" json:"blockstorePath" default:"./lvldbdata"`
	MailboxSize               int              `mapstructure:"MailboxSize" json:"mailboxSize" default:"128"`
	MonitorConfig             RawMonitorConfig `mapstructure:"MonitorConfig" json:"monitorConfig"`
}

type RawMonitorConfig struct {
	Interval   string `mapstructure:"Interval" json:"interval" default:"1m"`
	StaleAfter string `mapstructure:"StaleAfter" json:"staleAfter" default:"30m"`
}

func (c *RawNodeConfig) Validate() error {
	if c.BlockstorePath == "" {
		return fmt.Errorf("blockstore path is required")
	}
	if c.MailboxSize <= 0 {
		return fmt.Errorf("mailbox size must be positive, got %d", c.MailboxSize)
	}
	return nil
}

// NewNodeConfig parses RawNodeConfig into NodeConfig
func NewNodeConfig(rawConfig RawNodeConfig) (NodeConfig, error) {
	config := NodeConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.Env = rawConfig.Env
	config.Id = rawConfig.Id
	config.BlockstorePath = rawConfig.BlockstorePath
	config.MailboxSize = rawConfig.MailboxSize

	interval, err := time.ParseDuration(rawConfig.MonitorConfig.Interval)
	if err != nil {
		return NodeConfig{}, fmt.Errorf("unable to parse monitor interval: %w", err)
	}
	staleAfter, err := time.ParseDuration(rawConfig.MonitorConfig.StaleAfter)
	if err != nil {
		return NodeConfig{}, fmt.Errorf("unable to parse monitor stale after: %w", err)
	}
	if interval <= 0 {
		return NodeConfig{}, fmt.Errorf("monitor interval must be positive, got %s", interval)
	}
	if staleAfter < 0 {
		return NodeConfig{}, fmt.Errorf("monitor stale after must not be negative, got %s", staleAfter)
	}
	config.MonitorConfig = MonitorConfig{
		Interval:   interval,
		StaleAfter: staleAfter,
	}

	return config, nil
}
