// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pdiddy/investor-seed/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parse the inputs and export the dataset for review",
	Long: `Extract runs the parsing stages without generating SQL and writes the
investors, portfolio and portfolio owner to a YAML or JSON file next to the
configured output file (fund_data_import.sql becomes fund_data_import.yaml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "yaml" && format != "json" {
			return eris.Errorf("extract: unknown format %q (want yaml or json)", format)
		}

		ds, err := pipeline.Extract(cmd.Context(), seedCfg, cmd.OutOrStdout(), pipeline.Options{Logger: logger})
		if err != nil {
			return err
		}

		path := exportPath(seedCfg.OutputSQL, format)
		if format == "json" {
			err = ds.ExportJSON(path)
		} else {
			err = ds.ExportYAML(path)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d investors and %d portfolio companies to %s\n",
			len(ds.Investors), len(ds.Portfolio), path)
		return nil
	},
}

// exportPath swaps the extension of the SQL output path for format.
func exportPath(sqlPath, format string) string {
	return strings.TrimSuffix(sqlPath, filepath.Ext(sqlPath)) + "." + format
}

func init() {
	extractCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(extractCmd)
}
