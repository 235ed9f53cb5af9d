package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvPort         = "GATOR_PORT"
	EnvAPIBaseURL   = "GATOR_API_BASE_URL"
	EnvAction       = "GATOR_ACTION"
	EnvUserID       = "GATOR_USER_ID"
	EnvFetchTimeout = "GATOR_FETCH_TIMEOUT"
)

// FromEnv returns the configuration set through GATOR_* environment variables.
// Unset variables leave the field empty so the result can be merged over other sources.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIBaseURL:   os.Getenv(EnvAPIBaseURL),
		Action:       os.Getenv(EnvAction),
		UserID:       os.Getenv(EnvUserID),
		FetchTimeout: os.Getenv(EnvFetchTimeout),
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Load resolves configuration in order of precedence: environment, then the optional file,
// then built-in defaults. The result is validated.
func Load(path string) (*Config, error) {
	envCfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	base := Defaults()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		base = fileCfg.MergeWithDefaults(base)
	}

	merged := envCfg.MergeWithDefaults(base)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
