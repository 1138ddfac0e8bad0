// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the wordgraph shell and CLI.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// a .env file in the working directory (via godotenv), then WORDGRAPH_*
// environment variables. Cobra flags are bound on top by the caller through
// Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WORDGRAPH_SEED.
const EnvPrefix = "WORDGRAPH"

// Keys understood by Load.
const (
	KeyCorpus      = "corpus"
	KeySeed        = "seed"
	KeyLogLevel    = "log_level"
	KeyHistoryFile = "history_file"
	KeyDotBinary   = "dot_binary"
	KeyImagePath   = "image_path"
	KeyWalkOutput  = "walk_output"
)

// ErrConfigFile indicates an unreadable or malformed config file.
var ErrConfigFile = errors.New("config: cannot read config file")

// ErrLogLevel indicates an unknown log_level value.
var ErrLogLevel = errors.New("config: unknown log level")

// Config holds every setting after all sources are merged.
type Config struct {
	Corpus      string `mapstructure:"corpus"`
	Seed        int64  `mapstructure:"seed"` // 0 draws from entropy
	LogLevel    string `mapstructure:"log_level"`
	HistoryFile string `mapstructure:"history_file"`
	DotBinary   string `mapstructure:"dot_binary"`
	ImagePath   string `mapstructure:"image_path"`
	WalkOutput  string `mapstructure:"walk_output"` // empty: do not save walks
}

// New returns a Viper instance with defaults and environment binding set up,
// ready for flag binding and Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCorpus, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHistoryFile, "/tmp/wordgraph_readline.tmp")
	v.SetDefault(KeyDotBinary, "dot")
	v.SetDefault(KeyImagePath, "graph.png")
	v.SetDefault(KeyWalkOutput, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load merges .env, the optional YAML file at path and the environment into v
// and decodes the result. An empty path skips the file.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config

	// 1) .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: .env: %w", err)
	}

	// 2) Optional config file.
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("%w %s: %v", ErrConfigFile, path, err)
		}
	}

	// 3) Decode.
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Level parses LogLevel into a zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}

	return lvl, nil
}
