package main

import (
	"fmt"
	"os"

	"github.com/aktus/pipeline-cli/internal/api"
	"github.com/aktus/pipeline-cli/internal/config"
	"github.com/aktus/pipeline-cli/internal/render"
	"github.com/aktus/pipeline-cli/internal/session"
)

// commandEnv bundles the shared dependencies every command needs: the API
// client built from the stored session, the session store itself, the
// output printer, and the loaded config file.
type commandEnv struct {
	client  *api.Client
	store   *session.Store
	printer *render.Printer
	cfg     *config.Config
}

// newCommandEnv is the standard way to get an API client in CLI commands.
// It resolves the session, the config file, and the flag/env/config
// precedence for the base URL and output modes.
func newCommandEnv() (*commandEnv, error) {
	store, err := session.DefaultStore()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var token, sessionURL string
	if sess := store.Load(); sess != nil {
		token = sess.Token
		sessionURL = sess.BaseURL
	}

	baseURL := config.ResolveBaseURL(flagBaseURL, sessionURL, cfg)

	// flags win for bools; the config file can only switch a mode on
	compact := flagCompact || cfg.Compact
	quiet := flagQuiet || cfg.Quiet

	return &commandEnv{
		client:  api.New(baseURL, token),
		store:   store,
		printer: render.NewPrinter(os.Stdout, compact, quiet),
		cfg:     cfg,
	}, nil
}
