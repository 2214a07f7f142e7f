package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Terminate the current session",
	Long:  "Terminate the session server-side and delete the locally stored token. The local session is removed even when the server cannot be reached.",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	// Best effort server-side; a stale token on an unreachable server is
	// still a logout from the user's point of view.
	if err := env.client.Logout(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := env.store.Clear(); err != nil {
		return err
	}

	env.printer.Statusf("Session terminated")
	return nil
}
