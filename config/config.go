// Package config loads the level table and runtime settings of the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dimaq12/minefield/models"
)

//go:embed levels.yaml
var defaultYAML []byte

// Level is one playable board setup.
type Level struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Size  int    `yaml:"size"`
	Mines int    `yaml:"mines"`
}

// Config is the YAML configuration file.
type Config struct {
	LogLevel     string  `yaml:"logLevel"`     // logrus level name
	LogFile      string  `yaml:"logFile"`      // empty discards log output
	Placement    string  `yaml:"placement"`    // shuffle or diagonal
	DefaultLevel int     `yaml:"defaultLevel"` // level used when none is chosen
	Levels       []Level `yaml:"levels"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded levels.yaml is invalid: %v", err))
	}
	return cfg
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logrus.InfoLevel.String()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Levels) == 0 {
		return errors.New("at least one level is required")
	}

	seen := make(map[int]bool, len(c.Levels))
	for _, l := range c.Levels {
		if seen[l.ID] {
			return fmt.Errorf("level %d: duplicate id", l.ID)
		}
		seen[l.ID] = true

		if err := models.ValidateDimensions(l.Size, l.Mines); err != nil {
			return fmt.Errorf("level %d: %w", l.ID, err)
		}
	}

	if !seen[c.DefaultLevel] {
		return fmt.Errorf("default level %d is not defined", c.DefaultLevel)
	}
	if _, err := models.ParsePlacer(c.Placement); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	return nil
}

// Level returns the level with the given id.
func (c *Config) Level(id int) (Level, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// LevelIDs returns the ids of all levels in ascending order.
func (c *Config) LevelIDs() []int {
	ids := make([]int, 0, len(c.Levels))
	for _, l := range c.Levels {
		ids = append(ids, l.ID)
	}
	sort.Ints(ids)
	return ids
}

// Placer returns the mine placement strategy named in the config.
func (c *Config) Placer() (models.Placer, error) {
	return models.ParsePlacer(c.Placement)
}
