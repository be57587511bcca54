package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var DefaultLevel = zapcore.DebugLevel

// CreateLogger 按 DefaultZapLoggerConfig 创建 zap logger
func CreateLogger(level zapcore.Level) (*zap.Logger, error) {
	lgcfg := DefaultZapLoggerConfig
	lgcfg.Level = zap.NewAtomicLevelAt(level)
	lg, err := lgcfg.Build()
	if err != nil {
		return nil, err
	}
	return lg, err
}

// NewZap 创建 zap 实现的 Logger
func NewZap(level zapcore.Level) (Logger, error) {
	lg, err := CreateLogger(level)
	if err != nil {
		return nil, err
	}
	return lg.Sugar(), nil
}

var DefaultZapLoggerConfig = zap.Config{
	Level:       zap.NewAtomicLevelAt(DefaultLevel),
	Development: false,
	Sampling: &zap.SamplingConfig{
		Initial:    100,
		Thereafter: 100,
	},

	Encoding: "console",

	// copied from "zap.NewProductionEncoderConfig" with some updates
	EncoderConfig: zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,

		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		},

		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	},

	OutputPaths:      []string{"stderr"},
	ErrorOutputPaths: []string{"stderr"},
}
