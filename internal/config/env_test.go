package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvAPIBaseURL, EnvAction, EnvUserID, EnvFetchTimeout} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9191")
	t.Setenv(EnvAction, "documents")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "documents", cfg.Action)
	assert.Empty(t, cfg.APIBaseURL)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "eighty")

	cfg, err := FromEnv()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), EnvPort)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"port": 9000, "action": "documents", "user_id": "file-user"}`)
	t.Setenv(EnvUserID, "env-user")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "documents", cfg.Action)
	assert.Equal(t, "env-user", cfg.UserID)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
}

func TestLoad_InvalidMerged(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAction, "upvote")

	_, err := Load("")
	assert.Error(t, err)
}
