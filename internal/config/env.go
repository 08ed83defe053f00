// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

// LoadEnv loads KEY=value files into the process environment so they can
// override configuration through INVESTOR_SEED_* variables. Variables
// already set are kept. Missing files are skipped; LoadEnv returns the
// paths it loaded.
func LoadEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return loaded, eris.Wrapf(err, "config: stat %s", p)
		}
		if info.IsDir() {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, eris.Wrapf(err, "config: load %s", p)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
