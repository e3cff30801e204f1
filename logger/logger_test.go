// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/vara-bridge/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestRunLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func (s *LoggerTestSuite) Test_ConsoleOnly_FiltersLevel() {
	out := &bytes.Buffer{}
	closer, err := logger.ConfigureLogger(zerolog.WarnLevel, out, "")
	s.Nil(err)
	defer closer.Close()

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	s.NotContains(out.String(), "hidden")
	s.Contains(out.String(), "shown")
}

func (s *LoggerTestSuite) Test_WritesLogFile() {
	path := filepath.Join(s.T().TempDir(), "out.log")
	out := &bytes.Buffer{}
	closer, err := logger.ConfigureLogger(zerolog.InfoLevel, out, path)
	s.Nil(err)

	log.Info().Str("component", "test").Msg("to file")
	s.Nil(closer.Close())

	content, err := os.ReadFile(path)
	s.Nil(err)
	s.Contains(string(content), `"component":"test"`)
	s.Contains(out.String(), "to file")
}
