package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clif.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", false, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true, nil)
	assert.Error(t, err)
}

func TestLoad_FileAndOverrides(t *testing.T) {
	path := writeFile(t, `
prompt: "clif> "
banner: false
log_level: debug
max_input_size: 128
metrics_addr: "127.0.0.1:9100"
`)

	cfg, err := Load(path, true, map[string]any{"log_level": "error"})
	require.NoError(t, err)

	assert.Equal(t, "clif> ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.Equal(t, "error", cfg.LogLevel, "overrides win over the file")
	assert.Equal(t, 128, cfg.MaxInputSize)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
	assert.True(t, cfg.Markdown, "unset keys keep their defaults")
}

func TestLoad_WeakTyping(t *testing.T) {
	cfg, err := Load("", false, map[string]any{"max_input_size": "256", "banner": "false"})
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.MaxInputSize)
	assert.False(t, cfg.Banner)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""), true, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Unknown Key", "colour: blue\n"},
		{"Bad YAML", "prompt: [unterminated\n"},
		{"Bad Level", "log_level: loud\n"},
		{"Negative Size", "max_input_size: -1\n"},
		{"Bad Address", "metrics_addr: nowhere\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content), true, nil)
			assert.Error(t, err)
		})
	}
}
