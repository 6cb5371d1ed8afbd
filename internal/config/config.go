package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the effective set of parameters for one run.
type Config struct {
	AssetDir      string  `mapstructure:"asset_dir"`
	SourceDir     string  `mapstructure:"source_dir"`
	TotalImages   int     `mapstructure:"total_images"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	MaxWidth      int     `mapstructure:"max_width"`
	FontSize      float64 `mapstructure:"font_size"`
	GenQuality    int     `mapstructure:"gen_quality"`
	ResizeQuality int     `mapstructure:"resize_quality"`
}

// Load resolves the configuration. Precedence, lowest first: built-in
// profile, config file, ASSETPREP_* environment, explicitly set flags.
// An empty path searches for assetprep.toml in the working directory and
// the user config dir; a missing file is not an error. flags maps config
// keys to the command-line flags that may override them.
func Load(path string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()

	p := profile.Default()
	v.SetDefault("asset_dir", p.AssetDir)
	v.SetDefault("source_dir", p.SourceDir)
	v.SetDefault("total_images", p.TotalImages)
	v.SetDefault("width", p.Width)
	v.SetDefault("height", p.Height)
	v.SetDefault("max_width", p.MaxWidth)
	v.SetDefault("font_size", p.FontSize)
	v.SetDefault("gen_quality", p.GenQuality)
	v.SetDefault("resize_quality", p.ResizeQuality)

	v.SetEnvPrefix("ASSETPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("assetprep")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "assetprep"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no tool can work with.
func (c *Config) Validate() error {
	switch {
	case c.TotalImages <= 0:
		return fmt.Errorf("total_images must be positive, got %d", c.TotalImages)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	case c.MaxWidth <= 0:
		return fmt.Errorf("max_width must be positive, got %d", c.MaxWidth)
	case c.GenQuality < 1 || c.GenQuality > 100:
		return fmt.Errorf("gen_quality out of range: %d", c.GenQuality)
	case c.ResizeQuality < 1 || c.ResizeQuality > 100:
		return fmt.Errorf("resize_quality out of range: %d", c.ResizeQuality)
	}
	return nil
}
