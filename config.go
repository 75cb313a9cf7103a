package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hyperchess/game"
	"hyperchess/meta"
)

// Config collects everything the binary needs to start a match. A YAML
// file can set any field; flags given on the command line win over it.
type Config struct {
	Players int       `yaml:"players"`
	Dims    game.Dims `yaml:"dims"`
	Serve   bool      `yaml:"serve"`
	Listen  string    `yaml:"listen"`
	LogDir  string    `yaml:"logDir"`
	Debug   bool      `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Players: meta.DEFAULT_PLAYERS,
		Dims:    game.CubeDims(meta.DEFAULT_AXES, meta.DEFAULT_AXIS_SIZE),
		Listen:  meta.DEFAULT_LISTEN,
	}
}

// LoadConfig reads a YAML file over the defaults. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Dims.Validate(); err != nil {
		return cfg, fmt.Errorf("bad dims in config %s: %w", path, err)
	}
	return cfg, nil
}
