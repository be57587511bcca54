package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	src := strings.NewReader(`# seqlist config
loglevel debug
logbackend logrus
  # indented comment
debugchecks yes
enablefilelog no
script demo.txt
`)
	p, err := parse(src)
	require.NoError(t, err)
	assert.Equal(t, "debug", p.LogLevel)
	assert.Equal(t, BackendLogrus, p.LogBackend)
	assert.True(t, p.DebugChecks)
	assert.False(t, p.EnableFileLog)
	assert.Equal(t, "demo.txt", p.Script)
}

func Test_SetUpConfig(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, p *Properties)
	}{
		{
			name:    "行格式",
			file:    "seqlist.conf",
			content: "loglevel warn\ndebugchecks yes\n",
			check: func(t *testing.T, p *Properties) {
				assert.Equal(t, "warn", p.LogLevel)
				assert.True(t, p.DebugChecks)
				assert.Equal(t, BackendZap, p.LogBackend)
			},
		},
		{
			name:    "yaml",
			file:    "seqlist.yaml",
			content: "loglevel: error\nlogbackend: logrus\ndebugchecks: true\nrunid: fixed\n",
			check: func(t *testing.T, p *Properties) {
				assert.Equal(t, "error", p.LogLevel)
				assert.Equal(t, BackendLogrus, p.LogBackend)
				assert.True(t, p.DebugChecks)
				assert.Equal(t, "fixed", p.RunID)
			},
		},
		{
			name:    "空 yaml 使用默认值",
			file:    "empty.yml",
			content: "",
			check: func(t *testing.T, p *Properties) {
				assert.Equal(t, "info", p.LogLevel)
				assert.Equal(t, ".", p.LogPath)
				_, err := uuid.Parse(p.RunID)
				assert.NoError(t, err)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			require.NoError(t, SetUpConfig(path))
			p := Get()
			assert.Equal(t, path, p.CfPath)
			assert.NotEmpty(t, p.RunID)
			tc.check(t, p)
		})
	}
}

func Test_SetUpConfigMissing(t *testing.T) {
	before := Get()
	err := SetUpConfig(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
	assert.Same(t, before, Get())
}

func Test_SetUpConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loglevel: [unterminated\n"), 0o644))
	assert.Error(t, SetUpConfig(path))
}
