package common

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Log(message string, fields ...zap.Field)
	Error(message string, err error, fields ...zap.Field)
}

type zapLogger struct {
	logger *zap.Logger
}

// NewFileLogger logs JSON lines to the file specified by `path`. If the file is unavailable, writes to the console.
// `level` is either "debug" or "info" (anything else is treated as "info").
func NewFileLogger(path string, level string) Logger {
	zapLevel := zapcore.InfoLevel
	if level == "debug" {
		zapLevel = zapcore.DebugLevel
	}
	var sink zapcore.WriteSyncer
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error: %s. Logging switched to console.\n", err.Error())
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(file)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, zapLevel)
	return NewZapLogger(zap.New(core))
}

// NewZapLogger adapts an already configured zap logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return NewZapLogger(zap.NewNop())
}

func (z *zapLogger) Log(message string, fields ...zap.Field) {
	z.logger.Info(message, fields...)
}

func (z *zapLogger) Error(message string, err error, fields ...zap.Field) {
	z.logger.Error(message, append(fields, zap.Error(err))...)
}
