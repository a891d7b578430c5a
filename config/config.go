// Package config loads the CLI's YAML configuration file (§7.1's ambient
// config concern): which backing engine to use, where to store it, and at
// what level to log.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Engine selects which nodestore backend the CLI opens.
type Engine string

const (
	EngineMemory  Engine = "memory"
	EngineLevelDB Engine = "leveldb"
)

// Config is the CLI's top-level YAML document.
type Config struct {
	// Engine selects the backing store; defaults to leveldb if empty.
	Engine Engine `yaml:"engine"`
	// StorePath is the backing file/directory for the leveldb engine.
	StorePath string `yaml:"store_path"`
	// LogLevel is one of trace/debug/info/warn/error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Engine:    EngineLevelDB,
		StorePath: "mtrie-data",
		LogLevel:  "info",
	}
}

// Load reads and parses the YAML config file at path, filling in defaults
// for any field left unset.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	if cfg.Engine == "" {
		cfg.Engine = EngineLevelDB
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "mtrie-data"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
