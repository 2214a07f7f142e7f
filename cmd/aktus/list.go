package main

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	Long:  "List previously uploaded documents, paginated with --skip and --limit, in the order the server reports them.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listSkip  int
	listLimit int
)

func init() {
	listCmd.Flags().IntVar(&listSkip, "skip", 0, "Skip documents")
	listCmd.Flags().IntVar(&listLimit, "limit", 100, "Limit results")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	resp, err := env.client.List(context.Background(), listSkip, listLimit)
	if err != nil {
		return err
	}

	if env.printer.Quiet() {
		names := make([]string, 0, len(resp.Documents))
		for _, doc := range resp.Documents {
			names = append(names, doc.Filename)
		}
		env.printer.Names(names)
		return nil
	}

	env.printer.Statusf("Retrieved %d document(s)", resp.Count)
	return env.printer.Payload(resp)
}
