// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package node_test

import (
	"testing"
	"time"

	"github.com/ChainSafe/vara-bridge/config/node"
	"github.com/stretchr/testify/suite"
)

type NewNodeConfigTestSuite struct {
	suite.Suite
}

func TestRunNewNodeConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewNodeConfigTestSuite))
}

func rawNodeConfig(interval, staleAfter string) node.RawNodeConfig {
	return node.RawNodeConfig{
		LogLevel:       "info",
		HealthPort:     "9001",
		BlockstorePath: "./lvldbdata",
		MailboxSize:    8,
		MonitorConfig: node.RawMonitorConfig{
			Interval:   interval,
			StaleAfter: staleAfter,
		},
	}
}

func (s *NewNodeConfigTestSuite) Test_ValidMonitorConfig() {
	cnf, err := node.NewNodeConfig(rawNodeConfig("10s", "0s"))

	s.Nil(err)
	s.Equal(node.MonitorConfig{Interval: 10 * time.Second, StaleAfter: 0}, cnf.MonitorConfig)
}

func (s *NewNodeConfigTestSuite) Test_ZeroInterval() {
	_, err := node.NewNodeConfig(rawNodeConfig("0s", "30m"))

	s.NotNil(err)
}

func (s *NewNodeConfigTestSuite) Test_NegativeInterval() {
	_, err := node.NewNodeConfig(rawNodeConfig("-1m", "30m"))

	s.NotNil(err)
}

func (s *NewNodeConfigTestSuite) Test_NegativeStaleAfter() {
	_, err := node.NewNodeConfig(rawNodeConfig("1m", "-5m"))

	s.NotNil(err)
}

func (s *NewNodeConfigTestSuite) Test_InvalidHealthPort() {
	raw := rawNodeConfig("1m", "30m")
	raw.HealthPort = "70000"

	_, err := node.NewNodeConfig(raw)

	s.NotNil(err)
}

func (s *NewNodeConfigTestSuite) Test_ZeroMailbox() {
	raw := rawNodeConfig("1m", "30m")
	raw.MailboxSize = 0

	_, err := node.NewNodeConfig(raw)

	s.NotNil(err)
}
