// Package diag builds the logger used for bootstrap diagnostics: the
// handful of lines emitted while the log directory and handlers are being
// set up, before any file handler exists.
//
// Informational lines go to standard output, warnings and errors to
// standard error.
package diag

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the logger name stamped on every diagnostic line.
const Name = "LogBase"

var defaultLogger = sync.OnceValue(func() *zap.Logger {
	return New(os.Stdout, os.Stderr)
})

// Default returns the process diagnostic logger writing to os.Stdout and
// os.Stderr.
func Default() *zap.Logger {
	return defaultLogger()
}

// New builds a diagnostic logger splitting by level between out and errOut.
func New(out, errOut io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	})

	infoOnly := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.InfoLevel && l < zapcore.WarnLevel
	})
	warnAndAbove := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), infoOnly),
		zapcore.NewCore(enc.Clone(), zapcore.Lock(zapcore.AddSync(errOut)), warnAndAbove),
	)
	return zap.New(core).Named(Name)
}
