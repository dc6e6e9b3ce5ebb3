// Package observability provides the shared CLI logger.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the logger used by CLI commands.
//
// Diagnostics go to stderr so that command results printed on stdout
// remain machine-parseable.
var CLILogger = newCLILogger()

func newCLILogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

// Sync flushes any buffered log entries. Best-effort; call on exit.
func Sync() {
	_ = CLILogger.Sync()
}
