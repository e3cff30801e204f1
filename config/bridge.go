// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
)

type BridgeConfig struct {
	Ledger        ledger.Config
	GenesisSupply ledger.Amount
}

type RawBridgeConfig struct {
	Name          string `mapstructure:"Name" json:"name"`
	Symbol        string `mapstructure:"Symbol" json:"symbol"`
	Decimals      uint8  `mapstructure:"Decimals" json:"decimals" default:"12"`
	Admin         string `mapstructure:"Admin" json:"admin"`
	MinAmount     string `mapstructure:"MinAmount" json:"minAmount" default:"0"`
	GenesisSupply string `mapstructure:"GenesisSupply" json:"genesisSupply" default:"0"`
}

func (c *RawBridgeConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field bridge.Name empty")
	}
	if c.Symbol == "" {
		return fmt.Errorf("required field bridge.Symbol empty")
	}
	if c.Admin == "" {
		return fmt.Errorf("required field bridge.Admin empty")
	}
	return nil
}

// NewBridgeConfig parses RawBridgeConfig into BridgeConfig
func NewBridgeConfig(rawConfig RawBridgeConfig) (BridgeConfig, error) {
	err := rawConfig.Validate()
	if err != nil {
		return BridgeConfig{}, err
	}

	admin, err := ledger.AccountIDFromHex(rawConfig.Admin)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("invalid admin account: %w", err)
	}
	minAmount, err := ledger.ParseAmount(rawConfig.MinAmount)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("invalid min amount: %w", err)
	}
	genesisSupply, err := ledger.ParseAmount(rawConfig.GenesisSupply)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("invalid genesis supply: %w", err)
	}

	return BridgeConfig{
		Ledger: ledger.Config{
			Name:      rawConfig.Name,
			Symbol:    rawConfig.Symbol,
			Decimals:  rawConfig.Decimals,
			Admin:     admin,
			MinAmount: minAmount,
		},
		GenesisSupply: genesisSupply,
	}, nil
}
