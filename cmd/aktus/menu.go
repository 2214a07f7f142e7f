package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aktus/pipeline-cli/internal/config"
	"github.com/aktus/pipeline-cli/internal/menu"
	"github.com/aktus/pipeline-cli/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long:  "Browse the same operations through a looping terminal menu, with the equivalent curl request shown for each screen.",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := session.DefaultStore()
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var sessionURL string
	if sess := store.Load(); sess != nil {
		sessionURL = sess.BaseURL
	}
	baseURL := config.ResolveBaseURL(flagBaseURL, sessionURL, cfg)

	return menu.New(os.Stdin, os.Stdout, store, baseURL).Run(context.Background())
}
