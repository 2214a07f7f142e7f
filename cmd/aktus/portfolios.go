package main

import (
	"context"

	"github.com/spf13/cobra"
)

var portfoliosCmd = &cobra.Command{
	Use:   "portfolios <filename>",
	Short: "Find portfolios for an uploaded document",
	Long:  "Look up the portfolio metadata records associated with a previously uploaded filename.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortfolios,
}

func init() {
	rootCmd.AddCommand(portfoliosCmd)
}

func runPortfolios(_ *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	resp, err := env.client.Portfolios(context.Background(), args[0])
	if err != nil {
		return err
	}

	if env.printer.Quiet() {
		names := make([]string, 0, len(resp.Portfolios))
		for _, p := range resp.Portfolios {
			names = append(names, p.Name)
		}
		env.printer.Names(names)
		return nil
	}

	env.printer.Statusf("Found %d portfolio(s): %s", resp.Count, args[0])
	return env.printer.Payload(resp)
}
