// Package logger adapts zerolog to the ports.Logger contract.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger routes structured log events to zerolog's console writer.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger at the given level ("debug", "info", "warn",
// "error"); unknown levels fall back to info.
func New(level string) *ZeroLogger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	log := zerolog.New(writer).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZeroLogger{log: log}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
