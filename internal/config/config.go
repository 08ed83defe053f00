// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the run configuration. DefaultSeedConfig supplies
// every value; an optional YAML file and INVESTOR_SEED_* environment
// variables override it.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/investor-seed/pkg/types"
)

const (
	// Name is the config file base name searched for when no file is given.
	Name = "investor-seed"

	// EnvPrefix prefixes environment overrides, so log.level is read from
	// INVESTOR_SEED_LOG_LEVEL.
	EnvPrefix = "INVESTOR_SEED"
)

// Load layers the defaults, the config file and the environment into v and
// decodes the result. When file is empty, investor-seed.yaml is searched in
// the working directory and ~/.config/investor-seed; a missing file is not
// an error.
func Load(v *viper.Viper, file string) (types.SeedConfig, error) {
	defaults, err := yaml.Marshal(types.DefaultSeedConfig())
	if err != nil {
		return types.SeedConfig{}, eris.Wrap(err, "config: marshal defaults")
	}
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return types.SeedConfig{}, eris.Wrap(err, "config: read defaults")
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); file != "" || !ok {
			return types.SeedConfig{}, eris.Wrap(err, "config: read config file")
		}
	}

	var cfg types.SeedConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.SeedConfig{}, eris.Wrap(err, "config: decode")
	}
	return cfg, nil
}
