package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogKeyEncoding   = "encoding"
	LogKeyInputSize  = "input-size"
	LogKeyOutputSize = "output-size"
	LogKeyByte       = "byte"
	LogKeyPosition   = "position"
)

// NewLogger creates a zap logger with RFC3339 timestamps, either with the
// development or the production preset.
func NewLogger(development bool) (*zap.Logger, error) {
	var logcfg zap.Config
	if development {
		logcfg = zap.NewDevelopmentConfig()
	} else {
		logcfg = zap.NewProductionConfig()
	}
	logcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return logcfg.Build()
}

// OrNop returns logger, or a no-op logger if it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
