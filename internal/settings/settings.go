// Package settings is for app wide settings that are unmarshalled from
// Viper: built-in defaults, then an optional config file, then HAIRPIN_*
// environment variables, then command line flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"hairpin/core/hairpin"
	"hairpin/internal/writers"
)

// EnvPrefix prefixes environment overrides, e.g. HAIRPIN_MIN_BIND=4.
const EnvPrefix = "HAIRPIN"

// Settings is the merged configuration of one run.
type Settings struct {
	// fold constraints
	MinBind int    `mapstructure:"min-bind"`
	MinStem int    `mapstructure:"min-stem"`
	MinLoop int    `mapstructure:"min-loop"`
	MaxLoop int    `mapstructure:"max-loop"`
	Tie     string `mapstructure:"tie"`

	// alternative thermodynamic table file (json/yaml/toml); empty = built-in
	Tables string `mapstructure:"tables"`

	// output
	Output       string  `mapstructure:"output"`
	Header       bool    `mapstructure:"header"`
	Pretty       bool    `mapstructure:"pretty"`
	OnlyHairpins bool    `mapstructure:"only-hairpins"`
	MaxDG        float64 `mapstructure:"max-dg"`

	// execution
	Threads    int  `mapstructure:"threads"`
	Progress   bool `mapstructure:"progress"`
	Quiet      bool `mapstructure:"quiet"`
	FailOnNone bool `mapstructure:"fail-on-none"`
}

// Default returns the built-in settings. Flag defaults are taken from here.
func Default() Settings {
	cfg := hairpin.DefaultConfig(3)
	return Settings{
		MinBind: cfg.MinimumBindLen,
		MinStem: cfg.MinStem,
		MinLoop: cfg.MinLoop,
		MaxLoop: cfg.MaxLoop,
		Tie:     cfg.TieBreak.String(),
		Output:  "text",
		Header:  true,
		MaxDG:   hairpin.NoHairpinDG,
	}
}

// New returns a viper instance carrying the defaults and env bindings.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("min-bind", d.MinBind)
	v.SetDefault("min-stem", d.MinStem)
	v.SetDefault("min-loop", d.MinLoop)
	v.SetDefault("max-loop", d.MaxLoop)
	v.SetDefault("tie", d.Tie)
	v.SetDefault("tables", d.Tables)
	v.SetDefault("output", d.Output)
	v.SetDefault("header", d.Header)
	v.SetDefault("pretty", d.Pretty)
	v.SetDefault("only-hairpins", d.OnlyHairpins)
	v.SetDefault("max-dg", d.MaxDG)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("fail-on-none", d.FailOnNone)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and unmarshals v. An explicit path must exist;
// otherwise hairpin.{yaml,json,toml} is looked up in the working directory
// and $HOME/.config/hairpin, and its absence is not an error.
func Load(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("hairpin")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hairpin"))
		}
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Settings{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return s, s.Validate()
}

// Validate checks the fields the calculator does not.
func (s Settings) Validate() error {
	if !writers.ValidFormat(s.Output) {
		return fmt.Errorf("--output must be one of %s (got %q)", strings.Join(writers.Formats, ", "), s.Output)
	}
	if s.Threads < 0 {
		return fmt.Errorf("--threads must be >= 0 (got %d)", s.Threads)
	}
	return nil
}

// HairpinConfig converts the fold constraints to a calculator config.
func (s Settings) HairpinConfig() (hairpin.Config, error) {
	tie, err := hairpin.ParseTieBreak(s.Tie)
	if err != nil {
		return hairpin.Config{}, err
	}
	return hairpin.Config{
		MinimumBindLen: s.MinBind,
		MinStem:        s.MinStem,
		MinLoop:        s.MinLoop,
		MaxLoop:        s.MaxLoop,
		TieBreak:       tie,
	}, nil
}

// Keep reports whether a result passes the output filters.
func (s Settings) Keep(r hairpin.Result) bool {
	if s.OnlyHairpins && !r.IsHairpin {
		return false
	}
	return r.DG <= s.MaxDG
}
