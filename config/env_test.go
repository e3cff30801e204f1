// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"testing"

	"github.com/ChainSafe/vara-bridge/config/node"
	"github.com/stretchr/testify/suite"
)

type LoadFromEnvTestSuite struct {
	suite.Suite
}

func TestRunLoadFromEnvTestSuite(t *testing.T) {
	suite.Run(t, new(LoadFromEnvTestSuite))
}

func (s *LoadFromEnvTestSuite) SetupTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) Test_ValidNodeConfig() {
	_ = os.Setenv("VBR_NODE_OPENTELEMETRYCOLLECTORURL", "test.opentelemetry.url")
	_ = os.Setenv("VBR_NODE_LOGLEVEL", "info")
	_ = os.Setenv("VBR_NODE_LOGFILE", "test.log")
	_ = os.Setenv("VBR_NODE_HEALTHPORT", "4000")
	_ = os.Setenv("VBR_NODE_BLOCKSTOREPATH", "/cfg/db")
	_ = os.Setenv("VBR_NODE_MAILBOXSIZE", "64")
	_ = os.Setenv("VBR_NODE_MONITORCONFIG_INTERVAL", "2s")
	_ = os.Setenv("VBR_NODE_MONITORCONFIG_STALEAFTER", "5m")
	_ = os.Setenv("OTHER_NODE_LOGLEVEL", "debug")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(node.RawNodeConfig{
		OpenTelemetryCollectorURL: "test.opentelemetry.url",
		LogLevel:                  "info",
		LogFile:                   "test.log",
		HealthPort:                "4000",
		BlockstorePath:            "/cfg/db",
		MailboxSize:               64,
		MonitorConfig: node.RawMonitorConfig{
			Interval:   "2s",
			StaleAfter: "5m",
		},
	}, env.NodeConfig)
}

func (s *LoadFromEnvTestSuite) Test_ValidBridgeConfig() {
	_ = os.Setenv("VBR_BRIDGE_NAME", "Vara")
	_ = os.Setenv("VBR_BRIDGE_SYMBOL", "VARA")
	_ = os.Setenv("VBR_BRIDGE_DECIMALS", "12")
	_ = os.Setenv("VBR_BRIDGE_ADMIN", "0x01")
	_ = os.Setenv("VBR_BRIDGE_MINAMOUNT", "10")
	_ = os.Setenv("VBR_BRIDGE_GENESISSUPPLY", "500")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(RawBridgeConfig{
		Name:          "Vara",
		Symbol:        "VARA",
		Decimals:      12,
		Admin:         "0x01",
		MinAmount:     "10",
		GenesisSupply: "500",
	}, env.BridgeConfig)
}

func (s *LoadFromEnvTestSuite) Test_InvalidDecimals() {
	_ = os.Setenv("VBR_BRIDGE_DECIMALS", "many")

	_, err := loadFromEnv()

	s.NotNil(err)
}

func (s *LoadFromEnvTestSuite) Test_NoEnv() {
	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(RawConfig{}, env)
}
