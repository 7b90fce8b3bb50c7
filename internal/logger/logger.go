package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger for every package in the studio.
var Log *zap.Logger

// Init sets up the global logger. Safe to call more than once.
func Init() {
	if Log != nil {
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	var err error
	Log, err = cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than refusing to start
		Log = zap.NewNop()
	}
}
