// Package config resolves generator settings from defaults, an optional
// config file, and TOKENFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither config file nor environment provide a value.
const (
	DefaultProductType = "saas"
	DefaultOutputDir   = "./design-system"
	DefaultAssetsDir   = "./assets"
)

const (
	configName = ".tokenforge"
	envPrefix  = "TOKENFORGE"
)

// Config holds the resolved generator settings.
type Config struct {
	ProductType string `mapstructure:"product_type"`
	OutputDir   string `mapstructure:"output_dir"`
	AssetsDir   string `mapstructure:"assets_dir"`
}

// Load resolves configuration with precedence env > config file > defaults.
// The config file is optional: `.tokenforge.yaml` is searched in the given
// extra paths first, then the working directory, then
// ~/.config/tokenforge/. A missing file is not an error.
func Load(extraPaths ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("product_type", DefaultProductType)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("assets_dir", DefaultAssetsDir)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, path := range extraPaths {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "tokenforge"))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
