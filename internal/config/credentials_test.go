package config

import (
	"runtime"
	"testing"

	"github.com/mkotov/go-chat-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_RoundTrip(t *testing.T) {
	if runtime.GOOS == "darwin" {
		// os.UserConfigDir ignores XDG_CONFIG_HOME on darwin
		t.Skip("cannot redirect user config dir")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := models.SessionCredentials{
		BaseURL:  "https://bridge.local",
		Password: "secret",
		Token:    "tok-1",
	}
	require.NoError(t, SaveCredentials(want))

	got, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCredentials_MissingFileIsZeroValue(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("cannot redirect user config dir")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, models.SessionCredentials{}, got)
}
