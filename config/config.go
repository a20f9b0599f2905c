// Package config loads lvlalign runtime settings from defaults, an optional
// config file and LVLALIGN_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlalign/affine"
	"github.com/katalvlaran/lvlalign/harness"
	"github.com/katalvlaran/lvlalign/simulate"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure of Load.
var ErrInvalid = errors.New("config: invalid setting")

// EnvPrefix prefixes environment overrides, e.g. LVLALIGN_SCORING_MATCH.
const EnvPrefix = "LVLALIGN"

// Output formats.
const (
	FormatTSV  = "tsv"
	FormatYAML = "yaml"
)

// Color modes for the show command.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds application configuration.
type Config struct {
	Scoring  affine.Params      `mapstructure:"scoring"`
	Engines  []string           `mapstructure:"engines"`
	Output   OutputConfig       `mapstructure:"output"`
	Log      LogConfig          `mapstructure:"log"`
	Simulate simulate.Generator `mapstructure:"simulate"`
	View     ViewConfig         `mapstructure:"view"`
}

// OutputConfig controls the align report.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Verify bool   `mapstructure:"verify"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ViewConfig holds rendering settings.
type ViewConfig struct {
	Width int    `mapstructure:"width"`
	Color string `mapstructure:"color"`
	Stats bool   `mapstructure:"stats"`
}

// Load reads configuration. An explicit path must exist; with an empty path
// lvlalign.{yaml,toml,...} is looked up in the working directory and in
// $HOME/.config/lvlalign, and a missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lvlalign")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lvlalign"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func setDefaults(v *viper.Viper) {
	p := affine.DefaultParams()
	v.SetDefault("scoring.match", p.Match)
	v.SetDefault("scoring.mismatch", p.Mismatch)
	v.SetDefault("scoring.gap_open", p.GapOpen)
	v.SetDefault("scoring.gap_extend", p.GapExtend)

	v.SetDefault("engines", []string{})
	v.SetDefault("output.format", FormatTSV)
	v.SetDefault("output.verify", false)
	v.SetDefault("log.level", "info")

	g := simulate.DefaultGenerator()
	v.SetDefault("simulate.count", g.Count)
	v.SetDefault("simulate.length", g.Length)
	v.SetDefault("simulate.error_rate", g.ErrorRate)
	v.SetDefault("simulate.seed", g.Seed)
	v.SetDefault("simulate.use_hmm", g.UseHMM)

	v.SetDefault("view.width", 80)
	v.SetDefault("view.color", ColorAuto)
	v.SetDefault("view.stats", true)
}

// Validate checks every field that Load cannot type-check.
func (c Config) Validate() error {
	if _, err := harness.Select(c.Engines, c.Scoring); err != nil {
		return fmt.Errorf("%w: engines: %v", ErrInvalid, err)
	}
	switch c.Output.Format {
	case FormatTSV, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if err := c.Simulate.Validate(); err != nil {
		return fmt.Errorf("%w: simulate: %v", ErrInvalid, err)
	}
	switch c.View.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: view.color %q", ErrInvalid, c.View.Color)
	}

	return nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}

	return lvl, nil
}
