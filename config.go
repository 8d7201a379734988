package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultConfigName = "threadforth.toml"

// Config is the threadforth.toml configuration; command line flags override
// it.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	REPL   REPLConfig   `toml:"repl"`
	Load   LoadConfig   `toml:"load"`

	// Dir is the directory containing the config file (set at load time);
	// relative load paths resolve against it.
	Dir string `toml:"-"`
}

// EngineConfig configures the engine.
type EngineConfig struct {
	Base      int   `toml:"base"`
	HeapLimit int   `toml:"heap_limit"`
	Prelude   *bool `toml:"prelude"`
}

// REPLConfig configures the interactive shell.
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// LoadConfig lists source files to load before any given on the command line.
type LoadConfig struct {
	Files []string `toml:"files"`
}

// LoadPrelude reports whether the Forth prelude should be loaded; it is by
// default.
func (ec EngineConfig) LoadPrelude() bool {
	return ec.Prelude == nil || *ec.Prelude
}

// Files returns the configured load files, resolved against the config
// file's directory.
func (cfg *Config) Files() []string {
	files := make([]string, len(cfg.Load.Files))
	for i, name := range cfg.Load.Files {
		if !filepath.IsAbs(name) && cfg.Dir != "" {
			name = filepath.Join(cfg.Dir, name)
		}
		files[i] = name
	}
	return files
}

// loadConfig reads the config file at path. An empty path reads
// threadforth.toml from the working directory if there is one, and
// otherwise returns the defaults.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	optional := path == ""
	if optional {
		path = defaultConfigName
	}

	md, err := toml.DecodeFile(path, &cfg)
	if optional && errors.Is(err, fs.ErrNotExist) {
		cfg.setDefaults()
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.Engine.Base == 0 {
		cfg.Engine.Base = 10
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = "> "
	}
}
