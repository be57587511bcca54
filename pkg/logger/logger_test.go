package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func Test_Setup(t *testing.T) {
	testCases := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "默认 zap", opts: Options{}},
		{name: "zap 指定级别", opts: Options{Backend: "zap", Level: "warn"}},
		{name: "logrus", opts: Options{Backend: "logrus", Level: "debug", Output: &bytes.Buffer{}}},
		{name: "logrus 文件日志", opts: Options{Backend: "logrus", EnableFileLog: true, Output: &bytes.Buffer{}}},
		{name: "未知的后端", opts: Options{Backend: "log4j"}, wantErr: true},
		{name: "非法的级别", opts: Options{Backend: "zap", Level: "loud"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.opts.EnableFileLog {
				tc.opts.LogPath = t.TempDir()
			}
			lg, err := Setup(tc.opts)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lg.Infof("setup %s", tc.name)
		})
	}
}

func Test_LogrusOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	lg, err := Setup(Options{Backend: "logrus", Level: "info", Output: buf})
	require.NoError(t, err)
	lg.Debugf("hidden %d", 1)
	lg.Warnf("visible %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible 2")
	assert.NoError(t, lg.Sync())
}

func Test_Default(t *testing.T) {
	assert.Equal(t, Nop(), Default())
	lg, err := NewZap(zapcore.ErrorLevel)
	require.NoError(t, err)
	SetDefault(lg)
	assert.Equal(t, lg, Default())
	Debugf("not printed")
	SetDefault(nil)
	assert.Equal(t, Nop(), Default())
	assert.NoError(t, Sync())
}
