// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the investor-seed CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/investor-seed/internal/config"
	"github.com/pdiddy/investor-seed/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// seedCfg is loaded once before any subcommand runs.
	seedCfg types.SeedConfig
	logger  = zap.NewNop()
)

// rootCmd is the base command for the investor-seed CLI.
var rootCmd = &cobra.Command{
	Use:   "investor-seed",
	Short: "Turn investor CSVs and Markdown profiles into a SQL seed file",
	Long: `investor-seed reads a CSV of fund website URLs, a CSV portfolio export and
two Markdown fund profiles, and writes one SQL script that seeds the profiles,
investor_profiles, funding_opportunities and investor_opportunity_links tables.

Input and output paths come from configuration: ./investor-seed.yaml,
~/.config/investor-seed/investor-seed.yaml, or INVESTOR_SEED_* variables
(a .env file in the working directory is loaded first).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadEnv(".env")
		if err != nil {
			return err
		}
		for _, p := range loaded {
			fmt.Fprintln(os.Stderr, "Loaded environment:", p)
		}

		v := viper.New()
		cfgFile, _ := cmd.Flags().GetString("config")
		seedCfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", used)
		}

		logger, err = config.InitLogger(seedCfg.Log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./investor-seed.yaml or ~/.config/investor-seed/investor-seed.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
