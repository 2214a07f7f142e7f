// Command batch_upload uploads every PDF in a folder to the Aktus document
// pipeline, one file at a time, and reports a per-file and summary outcome.
// The exit code is zero only when every file uploaded successfully.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aktus/pipeline-cli/internal/api"
	"github.com/aktus/pipeline-cli/internal/batch"
	"github.com/aktus/pipeline-cli/internal/config"
	"github.com/aktus/pipeline-cli/internal/session"
)

var rootCmd = &cobra.Command{
	Use:           "batch_upload <folder>",
	Short:         "Upload every PDF in a folder",
	Long:          "Upload each file in a folder to the Aktus document pipeline sequentially. Individual failures are reported and counted but never abort the run.",
	Args:          cobra.ExactArgs(1),
	RunE:          runBatchUpload,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagProvider string
	flagAPIKey   string
	flagBaseURL  string
)

func init() {
	rootCmd.Flags().StringVar(&flagProvider, "provider", "", "Provider name")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key to log in with (defaults to the stored session)")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "API server URL (default https://pat.aktus.ai)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBatchUpload(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := session.DefaultStore()
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var token, sessionURL string
	if sess := store.Load(); sess != nil {
		token = sess.Token
		sessionURL = sess.BaseURL
	}

	client := api.New(config.ResolveBaseURL(flagBaseURL, sessionURL, cfg), token)

	// An explicit API key opens a one-off session for this run; it is not
	// persisted and is closed again afterwards.
	ownSession := false
	if flagAPIKey != "" {
		if _, err := client.Login(ctx, flagAPIKey); err != nil {
			return err
		}
		ownSession = true
		fmt.Println("✓ Authenticated")
		fmt.Println()
	}

	provider := flagProvider
	if provider == "" {
		provider = cfg.Provider
	}

	summary, err := batch.Run(ctx, client, batch.Options{
		Dir:      args[0],
		Provider: provider,
		Out:      os.Stdout,
	})
	if err != nil {
		return err
	}

	if ownSession {
		if err := client.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if len(summary.Results) == 0 {
		fmt.Printf("No files found in: %s\n", args[0])
		return nil
	}

	fmt.Printf("\nComplete: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d upload(s) failed", summary.Failed, len(summary.Results))
	}
	return nil
}
