package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/arith"
)

// Config is the CLI configuration. It can be loaded from a YAML file and is
// then overridden by command-line flags.
type Config struct {
	// Prec is the precision of float results in bits.
	Prec uint `yaml:"prec"`
	// MaxDepth is the bracket nesting limit. Zero or less means no limit.
	MaxDepth int `yaml:"max_depth"`
	// AllowTrailing ignores input after the first complete expression.
	AllowTrailing bool `yaml:"allow_trailing"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// History is the REPL history file. A leading ~/ is the home directory.
	// An empty string disables history.
	History string `yaml:"history"`
	// Jobs is the number of expressions to evaluate concurrently in batch
	// mode. Zero means no limit.
	Jobs int `yaml:"jobs"`
}

func defaultConfig() Config {
	return Config{
		Prec:     arith.DefaultPrec,
		MaxDepth: arith.DefaultMaxDepth,
		Color:    true,
		History:  "~/.arith_history",
		Jobs:     runtime.NumCPU(),
	}
}

// loadConfig reads a YAML config file. Keys missing from the file keep their
// default values. If path is empty, the result is the default config.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, pkgerrors.Wrap(err, "reading config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, pkgerrors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, pkgerrors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Jobs < 0 {
		return pkgerrors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	return nil
}

func (cfg *Config) parseOptions() []arith.ParseOption {
	opts := []arith.ParseOption{arith.MaxDepth(cfg.MaxDepth)}
	if cfg.AllowTrailing {
		opts = append(opts, arith.AllowTrailing())
	}
	return opts
}

func (cfg *Config) contextOptions() []arith.ContextOption {
	return []arith.ContextOption{arith.Prec(cfg.Prec)}
}

func (cfg *Config) batch() *arith.Batch {
	return &arith.Batch{
		Parse:   cfg.parseOptions(),
		Context: cfg.contextOptions(),
		Limit:   cfg.Jobs,
	}
}

// historyPath expands the history file name.
func (cfg *Config) historyPath() string {
	h := cfg.History
	if rest, ok := strings.CutPrefix(h, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, rest)
	}
	return h
}
