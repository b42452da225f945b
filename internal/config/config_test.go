package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "askgemini.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvURL, "")

	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
gemini:
  api_key: file-key-0001
  api_keys: [extra-key-0002]
  url: https://example.com/v1beta/models/m:generateContent
  timeout: 30s
  ping_interval: 15s
messages:
  locale: en
  generic: custom
store:
  path: /tmp/exchanges.db
  retention: 720h
log:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"file-key-0001", "extra-key-0002"}, cfg.Gemini.Keys())
	assert.Equal(t, "https://example.com/v1beta/models/m:generateContent", cfg.Gemini.URL)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Gemini.PingInterval)
	assert.Equal(t, "en", cfg.Messages.Locale)
	assert.Equal(t, "custom", cfg.Messages.Generic)
	assert.Equal(t, "/tmp/exchanges.db", cfg.Store.Path)
	assert.Equal(t, 720*time.Hour, cfg.Store.Retention)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key-12345678")
	t.Setenv(EnvURL, "https://env.example.com/gen")

	path := writeConfig(t, `
gemini:
  api_key: file-key
  url: https://file.example.com/gen
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key-12345678", cfg.Gemini.APIKey)
	assert.Equal(t, "https://env.example.com/gen", cfg.Gemini.URL)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "ko", cfg.Messages.Locale)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Zero(t, cfg.Gemini.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvURL, "")

	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "missing key and url",
			content:  "server:\n  port: 8080\n",
			contains: "gemini.api_key is required",
		},
		{
			name:     "missing url",
			content:  "gemini:\n  api_key: abc\n",
			contains: "gemini.url is required",
		},
		{
			name:     "bad port",
			content:  "server:\n  port: 70000\ngemini:\n  api_key: abc\n  url: https://x\n",
			contains: "server.port 70000 is out of range",
		},
		{
			name:     "bad log format",
			content:  "gemini:\n  api_key: abc\n  url: https://x\nlog:\n  format: xml\n",
			contains: "log.format must be json or text",
		},
		{
			name:     "invalid yaml",
			content:  "gemini: [unclosed",
			contains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
