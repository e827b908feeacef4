// Package config merges command line flags, environment variables and the
// optional .tspaths.yaml file into the program options.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/tspaths/internal/model"
)

const (
	// FileName is the configuration file looked up in the working directory.
	FileName = ".tspaths"
	// EnvPrefix prefixes environment overrides, e.g. TSPATHS_OUT.
	EnvPrefix = "TSPATHS"
)

// Default returns the options used when nothing else is set.
func Default() m.Options {
	return m.Options{
		Project:  "tsconfig.json",
		Ext:      "js,d.ts",
		Parallel: 1,
	}
}

// Load reads dir/.env into the environment, then resolves options with the
// precedence flags > environment > dir/.tspaths.{yaml,yml,json,toml} >
// defaults. configFile, when set, replaces the lookup in dir.
func Load(dir, configFile string, flags *pflag.FlagSet) (m.Options, error) {
	// A missing .env file is fine.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()

	defaults := Default()
	v.SetDefault("project", defaults.Project)
	v.SetDefault("ext", defaults.Ext)
	v.SetDefault("parallel", defaults.Parallel)
	v.SetDefault("verbose", false)
	v.SetDefault("noEmit", false)
	v.SetDefault("src", "")
	v.SetDefault("out", "")
	v.SetDefault("report", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return m.Options{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return m.Options{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var options m.Options
	if err := v.Unmarshal(&options); err != nil {
		return m.Options{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return options, nil
}
