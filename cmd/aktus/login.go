package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aktus/pipeline-cli/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login <api_key>",
	Short: "Authenticate with an API key",
	Long:  "Exchange an API key for a session token. The token is stored locally and attached to all subsequent commands until logout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	resp, err := env.client.Login(context.Background(), args[0])
	if err != nil {
		return err
	}

	sess := &session.Session{Token: resp.Token, BaseURL: env.client.BaseURL()}
	if err := env.store.Save(sess); err != nil {
		return fmt.Errorf("authenticated, but failed to persist session: %w", err)
	}

	env.printer.Statusf("Authentication successful")
	return env.printer.Payload(resp)
}
