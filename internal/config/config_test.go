package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "LOG_LEVEL", "APP_ENV", "JWT_EXPIRES_DAYS", "SESSION_COOKIE", "REQUEST_TIMEOUT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "hangman_session", cfg.SessionCookie)
	assert.False(t, cfg.Production())
	assert.Equal(t, 14*24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRES_DAYS", "2")
	t.Setenv("WORDS_FILE", "/tmp/words.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "/tmp/words.yaml", cfg.WordsFile)
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv("JWT_EXPIRES_DAYS", "soon")

	_, err := Load()
	require.Error(t, err)
}
