// Package config loads defaults for the CLI and TUI from the environment.
package config

import (
	"strings"

	"colombo-utc/internal/session"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "COLOMBO_UTC_"

// Config holds the environment-provided defaults. Flags override these.
type Config struct {
	Format     string `env:"FORMAT" envDefault:"json"`
	Pretty     bool   `env:"PRETTY"`
	CopyPolicy string `env:"COPY_POLICY" envDefault:"skip"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	// DebugLog is a file path; when set the TUI writes a debug log there.
	DebugLog  string `env:"DEBUG_LOG"`
	TUITheme  string `env:"TUI_THEME" envDefault:"auto"`
	TUIGlyphs string `env:"TUI_GLYPHS" envDefault:"unicode"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enum-like fields.
func (c Config) Validate() error {
	switch c.Format {
	case "json", "edn", "text":
	default:
		return errors.Errorf("%sFORMAT: unknown format %q (expected json|edn|text)", EnvPrefix, c.Format)
	}
	if _, err := session.ParseCopyPolicy(c.CopyPolicy); err != nil {
		return errors.Wrap(err, EnvPrefix+"COPY_POLICY")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errors.Wrap(err, EnvPrefix+"LOG_LEVEL")
	}
	switch strings.ToLower(c.TUITheme) {
	case "auto", "light", "dark":
	default:
		return errors.Errorf("%sTUI_THEME: unknown theme %q (expected auto|light|dark)", EnvPrefix, c.TUITheme)
	}
	switch strings.ToLower(c.TUIGlyphs) {
	case "unicode", "utf8", "ascii":
	default:
		return errors.Errorf("%sTUI_GLYPHS: unknown glyph set %q (expected unicode|ascii)", EnvPrefix, c.TUIGlyphs)
	}
	return nil
}
