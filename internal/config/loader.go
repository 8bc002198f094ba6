// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".realroots"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. REALROOTS_OUTPUT_FORMAT.
const envPrefix = "REALROOTS"

// Load reads configuration from file, env vars, and defaults.
// A non-empty path names the config file explicitly; otherwise .realroots.yaml
// is searched in CWD and $HOME. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("step_budget", d.StepBudget)
	v.SetDefault("grid_cells", d.GridCells)
	v.SetDefault("trivial_solver", d.TrivialSolver)
	v.SetDefault("deflation", d.Deflation)
	v.SetDefault("workers", d.Workers)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.digits", d.Output.Digits)
}
