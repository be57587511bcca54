package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
	// Output 控制台输出, 为空时用 stderr
	Output io.Writer
}

type logrusLogger struct {
	*logrus.Logger
}

// NewLogrus 创建 logrus 实现的 Logger, 开启文件日志时按级别写入按天滚动的文件
func NewLogrus(config *Configuration) (Logger, error) {
	lg := logrus.New()
	lg.Level = config.Level

	// 用于控制台输出的格式
	lg.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true, // 必须设置为 true 以打印时间戳
	})

	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel} {
			writer, err := setupWriter(config.LogPath, level.String())
			if err != nil {
				return nil, err
			}
			writerMap[level] = writer
		}
		// 用于文件输出的格式
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: config.TimeFormat,
			FullTimestamp:   true,
			DisableColors:   true, // 文件中需要禁用颜色代码
		}
		lg.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	if config.Output != nil {
		lg.SetOutput(config.Output)
	} else {
		lg.SetOutput(os.Stderr)
	}
	return &logrusLogger{Logger: lg}, nil
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	return rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

func appendGoroutineID(msg string) string {
	return fmt.Sprintf("[g: %v] %s", runtime.NumGoroutine(), msg)
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(appendGoroutineID(format), args...)
}

func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(appendGoroutineID(format), args...)
}

func (l *logrusLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(appendGoroutineID(format), args...)
}

func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(appendGoroutineID(format), args...)
}

func (l *logrusLogger) Sync() error {
	return nil
}
