// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/creasty/defaults"
	"github.com/imdario/mergo"

	"github.com/ChainSafe/vara-bridge/config/node"
	"github.com/spf13/viper"
)

type Config struct {
	NodeConfig   node.NodeConfig
	BridgeConfig BridgeConfig
}

type RawConfig struct {
	NodeConfig   node.RawNodeConfig `mapstructure:"node" json:"node"`
	BridgeConfig RawBridgeConfig    `mapstructure:"bridge" json:"bridge"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of RawConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with VBR.
//
// For example, if you want to set Config.NodeConfig.MonitorConfig.Interval this would
// translate to Env variable named VBR_NODE_MONITORCONFIG_INTERVAL.
func GetConfigFromENV() (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string) (*Config, error) {
	rawConfig, err := loadFromFile(path)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetConfig reads config from file and overrides it with values set in Env
// variables.
func GetConfig(path string) (*Config, error) {
	fileConfig, err := loadFromFile(path)
	if err != nil {
		return nil, err
	}
	rawConfig, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	err = mergo.Merge(&rawConfig, fileConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

func loadFromFile(path string) (RawConfig, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return rawConfig, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return rawConfig, err
	}
	return rawConfig, nil
}

func processRawConfig(rawConfig RawConfig) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}

	nodeConfig, err := node.NewNodeConfig(rawConfig.NodeConfig)
	if err != nil {
		return nil, err
	}
	bridgeConfig, err := NewBridgeConfig(rawConfig.BridgeConfig)
	if err != nil {
		return nil, err
	}

	return &Config{
		NodeConfig:   nodeConfig,
		BridgeConfig: bridgeConfig,
	}, nil
}
