// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global log level and writes human readable logs
// to out and, if logFile is set, JSON logs to logFile.
func ConfigureLogger(level zerolog.Level, out io.Writer, logFile string) (io.Closer, error) {
	zerolog.SetGlobalLevel(level)
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	if logFile == "" {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return f, nil
}
