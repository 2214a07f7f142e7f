package main

import (
	"context"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF document",
	Long:  "Upload a single PDF to the document pipeline, optionally tagged with a provider processing profile.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

var uploadProvider string

func init() {
	uploadCmd.Flags().StringVar(&uploadProvider, "provider", "", "Provider name")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	provider := uploadProvider
	if !cmd.Flags().Changed("provider") && env.cfg.Provider != "" {
		provider = env.cfg.Provider
	}

	resp, err := env.client.Upload(context.Background(), args[0], provider)
	if err != nil {
		return err
	}

	if env.printer.Quiet() {
		env.printer.Names([]string{resp.ID.String()})
		return nil
	}

	env.printer.Statusf("Document uploaded: %s", args[0])
	return env.printer.Payload(resp)
}
