// Package logging builds the process-wide zap logger. A terminal app cannot
// log to stdout without corrupting the display, so everything goes to a
// rotated file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON file logger with rotation. An empty path returns a
// no-op logger, which keeps call sites unconditional.
func New(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writer, zap.InfoLevel)
	return zap.New(core, zap.AddCaller())
}
