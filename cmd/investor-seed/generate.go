// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/investor-seed/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the SQL seed script",
	Long: `Generate parses the link CSV, the portfolio CSV and both Markdown profiles,
then writes every profile insert, investor-profile upsert, the portfolio
update and one funding opportunity per investor to the configured output
file. Unreadable Markdown profiles are logged and replaced; CSV errors abort
the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := pipeline.Run(cmd.Context(), seedCfg, cmd.OutOrStdout(), pipeline.Options{Logger: logger})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "SQL generation complete! Check %s for the generated SQL statements.\n", sum.OutputPath)
		fmt.Fprintf(out, "Generated SQL for %d VC firms and %d portfolio companies.\n", sum.Investors, sum.PortfolioCompanies)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
