package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// callerSkip points the caller field at the code that called Logger, not at this file.
const callerSkip = 1

type zeroLogger struct {
	zl zerolog.Logger
}

var (
	loggerInstance *zeroLogger
	once           sync.Once
)

// New creates the process-wide console logger. The level is only applied on the first call.
func New(level string) Logger {
	once.Do(func() {
		loggerInstance = newZeroLogger(os.Stdout, level)
	})
	return loggerInstance
}

// NewWriter creates a standalone logger writing JSON lines to w. Useful in tests.
func NewWriter(w io.Writer, level string) Logger {
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &zeroLogger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

func newZeroLogger(w io.Writer, level string) *zeroLogger {
	zerolog.TimeFieldFormat = consoleTimeFormat
	zerolog.ErrorFieldName = "err"
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	zl := zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
	return &zeroLogger{zl: zl}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Error logs an error message. err may be nil.
func (l *zeroLogger) Error(msg string, err error) {
	e := l.zl.Error().Caller(callerSkip)
	if err != nil {
		e = e.Err(err)
	}
	e.Msg(msg)
}

func (l *zeroLogger) Warn(msg string) {
	l.zl.Warn().Caller(callerSkip).Msg(msg)
}

func (l *zeroLogger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *zeroLogger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}
