//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Generate builds the CLI and writes the SQL seed script from Fund-data/.
func Generate() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath(), "generate")
}

// Extract builds the CLI and exports the parsed dataset as YAML for review.
func Extract() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath(), "extract", "--format", "yaml")
}

// Clean removes the binary and generated outputs.
func Clean() error {
	for _, p := range []string{binDir, "fund_data_import.sql", "fund_data_import.yaml", "fund_data_import.json"} {
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
		fmt.Fprintln(os.Stderr, "removed", p)
	}
	return nil
}
