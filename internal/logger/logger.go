package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the package-global logger. It defaults to a no-op logger so
// packages can log before Init is called (and in tests).
var Log = zap.NewNop()

// Init replaces the no-op logger with a console logger.
// Call once at startup, before creating the window or renderer.
func Init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		// Building the default development config cannot realistically fail;
		// keep the no-op logger if it somehow does.
		return
	}
	Log = l
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
