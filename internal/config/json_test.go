package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"session": {"base_url": "https://bridge.local", "password": "secret", "token": "tok"},
		"storage": {"db": {"dsn": "/var/cache/chat.sqlite"}},
		"adapter": {"request_timeout": "1m"},
		"workers": {"pool_size": 2}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://bridge.local", cfg.Session.BaseURL)
	assert.Equal(t, "secret", cfg.Session.Password)
	assert.Equal(t, "/var/cache/chat.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Workers.PoolSize)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"session": {`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{`"30s"`, 30 * time.Second},
		{`"1h"`, time.Hour},
		{`1000000000`, time.Second},
	}

	for _, tt := range tests {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(tt.in), &d), tt.in)
		assert.Equal(t, tt.want, time.Duration(d), tt.in)
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
