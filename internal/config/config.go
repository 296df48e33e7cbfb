// Package config loads Life scenarios for the demo from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/joeclark-phd/bufferbuffer/internal/life"
)

// Scenario describes one Life run.
type Scenario struct {
	Name        string   `yaml:"name" toml:"name"`
	Width       int      `yaml:"width" toml:"width"`
	Height      int      `yaml:"height" toml:"height"`
	Wrap        bool     `yaml:"wrap,omitempty" toml:"wrap"`
	Generations uint64   `yaml:"generations,omitempty" toml:"generations"` // 0: run until interrupted
	TickRate    Duration `yaml:"tick_rate,omitempty" toml:"tick_rate"`
	LogLevel    string   `yaml:"log_level,omitempty" toml:"log_level"`
	Pattern     []string `yaml:"pattern" toml:"pattern"` // rows of '#' and '.'
}

// Duration is a time.Duration written as a string such as "100ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Load reads a scenario, choosing the decoder by file extension, and
// validates it.
func Load(path string) (*Scenario, error) {
	var s Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, fmt.Errorf("toml decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

// Validate checks the grid size, tick rate and pattern.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", s.Width, s.Height)
	}
	if s.TickRate < 0 {
		return errors.New("tick_rate must be non-negative")
	}
	if _, err := s.Grid(); err != nil {
		return err
	}
	return nil
}

// Grid parses the pattern into a seed grid.
func (s *Scenario) Grid() (life.Grid, error) {
	return life.Parse(s.Pattern, s.Width, s.Height, s.Wrap)
}
