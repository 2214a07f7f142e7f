// Package main provides the entry point for the Aktus Data Pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "aktus",
	Short:         "Aktus Data Pipeline CLI",
	Long:          "Client for the Aktus document processing API: authenticate with an API key, upload PDF documents, list previous uploads, and look up portfolio metadata by filename.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagBaseURL string
	flagCompact bool
	flagQuiet   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API server URL (default https://pat.aktus.ai)")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "Compact JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Minimal output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
