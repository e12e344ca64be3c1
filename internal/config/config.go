package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/levels"
	"github.com/san-kum/equipot/internal/potential"
)

const (
	DefaultM1         = 1.0
	DefaultM2         = 40.0
	DefaultDistance   = 1.0
	DefaultG          = 1.0
	DefaultOutput     = "equipot.png"
	DefaultLevelCount = levels.DefaultCount
)

// ErrInvalid indicates a configuration that cannot produce a field.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	M1       float64      `yaml:"m1"`
	M2       float64      `yaml:"m2"`
	Distance float64      `yaml:"d"`
	G        float64      `yaml:"g"`
	Grid     GridConfig   `yaml:"grid"`
	Levels   LevelsConfig `yaml:"levels"`
	Filled   bool         `yaml:"filled"`
	Negate   bool         `yaml:"negate"`
	HideAxes bool         `yaml:"hide_axes"`
	Output   string       `yaml:"output"`
	Title    string       `yaml:"title"`
}

type GridConfig struct {
	Resolution int     `yaml:"resolution"`
	Extent     float64 `yaml:"extent"`
}

type LevelsConfig struct {
	Strategy string `yaml:"strategy"`
	Count    int    `yaml:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		M1:       DefaultM1,
		M2:       DefaultM2,
		Distance: DefaultDistance,
		G:        DefaultG,
		Grid: GridConfig{
			Resolution: field.DefaultResolution,
			Extent:     field.DefaultExtent,
		},
		Levels: LevelsConfig{
			Strategy: string(levels.Hybrid),
			Count:    DefaultLevelCount,
		},
		Negate:   true,
		HideAxes: true,
		Output:   DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// System validates the physical parameters and returns the two-body system.
func (c *Config) System() (potential.System, error) {
	sys, err := potential.New(c.M1, c.M2, c.Distance, c.G)
	if err != nil {
		return potential.System{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return sys, nil
}

// Strategy parses the configured level strategy.
func (c *Config) Strategy() (levels.Strategy, error) {
	s, err := levels.ParseStrategy(c.Levels.Strategy)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return s, nil
}

// Validate reports the first problem that would stop a render.
func (c *Config) Validate() error {
	if _, err := c.System(); err != nil {
		return err
	}
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if c.Grid.Resolution < 2 {
		return fmt.Errorf("%w: grid resolution %d", ErrInvalid, c.Grid.Resolution)
	}
	if !(c.Grid.Extent > 0) {
		return fmt.Errorf("%w: grid extent %v", ErrInvalid, c.Grid.Extent)
	}
	if c.Levels.Strategy != string(levels.Hybrid) && c.Levels.Count < 2 {
		return fmt.Errorf("%w: level count %d", ErrInvalid, c.Levels.Count)
	}
	return nil
}
