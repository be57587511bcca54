package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Backend zap 或 logrus, 默认 zap
	Backend       string
	Level         string
	LogPath       string
	TimeFormat    string
	EnableFileLog bool
	// Output 只对 logrus 生效
	Output io.Writer
}

// Setup 按 opts 创建 Logger, 不会修改全局 logger
func Setup(opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", "zap":
		level := DefaultLevel
		if opts.Level != "" {
			var err error
			if level, err = zapcore.ParseLevel(opts.Level); err != nil {
				return nil, err
			}
		}
		return NewZap(level)
	case "logrus":
		level := logrus.InfoLevel
		if opts.Level != "" {
			var err error
			if level, err = logrus.ParseLevel(opts.Level); err != nil {
				return nil, err
			}
		}
		return NewLogrus(&Configuration{
			Level:         level,
			TimeFormat:    opts.TimeFormat,
			LogPath:       opts.LogPath,
			EnableFileLog: opts.EnableFileLog,
			Output:        opts.Output,
		})
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
