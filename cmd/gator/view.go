package main

import (
	"fmt"

	"github.com/jonathan/gator-life/internal/config"
	"github.com/jonathan/gator-life/internal/fetch"
	"github.com/jonathan/gator-life/internal/rootview"
)

// viewOverrides are flag values that take precedence over the loaded config.
type viewOverrides struct {
	Action  string
	BaseURL string
	UserID  string
}

// loadConfig resolves the config file, environment and flag overrides.
func loadConfig(o viewOverrides) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.Action != "" {
		cfg.Action = o.Action
	}
	if o.BaseURL != "" {
		cfg.APIBaseURL = o.BaseURL
	}
	if o.UserID != "" {
		cfg.UserID = o.UserID
	}
	return cfg, nil
}

// newView builds a RootView whose fetcher talks to the configured API.
func newView(cfg *config.Config) (*rootview.RootView, error) {
	action, err := rootview.ParseAction(cfg.Action)
	if err != nil {
		return nil, err
	}

	client := fetch.NewClient(cfg.BaseURL(), &fetch.Options{Timeout: cfg.Timeout()})
	return rootview.New(client, rootview.Options{
		Action: action,
		UserID: cfg.UserID,
	}), nil
}
