// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped in a ValidationError) when a
// configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// MinObstacleSize bounds obstacle sizes from below; obstacle speed is
	// inversely proportional to size.
	MinObstacleSize = 1e-3

	// MaxTickRate is the fastest supported driver loop, in ticks per second.
	MaxTickRate = 1000
)

// Config contains configuration for an asteroids session
type Config struct {
	World     WorldConfig    `json:"world" yaml:"world"`
	Obstacles ObstacleConfig `json:"obstacles" yaml:"obstacles"`
	Craft     CraftConfig    `json:"craft" yaml:"craft"`
	Rules     RulesConfig    `json:"rules" yaml:"rules"`
	Runtime   RuntimeConfig  `json:"runtime" yaml:"runtime"`
}

// WorldConfig holds the bounds of the toroidal world
type WorldConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ObstacleConfig controls the initial obstacle population and how random
// obstacles are shaped.
type ObstacleConfig struct {
	InitialCount     int     `json:"initialCount" yaml:"initialCount"`
	InitialSize      float64 `json:"initialSize" yaml:"initialSize"`
	SecurityDistance float64 `json:"securityDistance" yaml:"securityDistance"`
	SpawnRetries     int     `json:"spawnRetries" yaml:"spawnRetries"`
	BaseSpeed        float64 `json:"baseSpeed" yaml:"baseSpeed"`
	SpeedJitter      float64 `json:"speedJitter" yaml:"speedJitter"`
	RadiusPerSize    float64 `json:"radiusPerSize" yaml:"radiusPerSize"`
	ShapeJitter      float64 `json:"shapeJitter" yaml:"shapeJitter"`
	MinVertices      int     `json:"minVertices" yaml:"minVertices"`
	MaxVertices      int     `json:"maxVertices" yaml:"maxVertices"`
}

// CraftConfig contains the player craft parameters
type CraftConfig struct {
	ThrustSpeed float64 `json:"thrustSpeed" yaml:"thrustSpeed"`
}

// RulesConfig contains scoring rules
type RulesConfig struct {
	ScoreRate float64 `json:"scoreRate" yaml:"scoreRate"`
}

// RuntimeConfig controls the driver loop and random seeding
type RuntimeConfig struct {
	TickRate   int    `json:"tickRate" yaml:"tickRate"`
	Seed       uint64 `json:"seed" yaml:"seed"`
	SeedPhrase string `json:"seedPhrase,omitempty" yaml:"seedPhrase,omitempty"`
}

// ValidationError reports the offending field of an invalid configuration
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// LoadConfig loads a configuration from a JSON or YAML file. The format is
// chosen by extension; anything other than .yaml/.yml is read as JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, as YAML or JSON by extension
func SaveConfig(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DefaultConfig returns the reference configuration: an 800x800 world with
// three size-2 obstacles kept 80 units away from the craft at spawn.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:  800,
			Height: 800,
		},
		Obstacles: ObstacleConfig{
			InitialCount:     3,
			InitialSize:      2,
			SecurityDistance: 80,
			SpawnRetries:     1000,
			BaseSpeed:        60,
			SpeedJitter:      0.25,
			RadiusPerSize:    20,
			ShapeJitter:      0.3,
			MinVertices:      8,
			MaxVertices:      12,
		},
		Craft: CraftConfig{
			ThrustSpeed: 100,
		},
		Rules: RulesConfig{
			ScoreRate: 10,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
	}
}

// Validate checks every value for range errors. It returns the first
// offending field as a *ValidationError.
func (c *Config) Validate() error {
	checks := []struct {
		ok     bool
		field  string
		reason string
	}{
		{positive(c.World.Width), "world.width", "must be positive"},
		{positive(c.World.Height), "world.height", "must be positive"},
		{c.Obstacles.InitialCount >= 0, "obstacles.initialCount", "must not be negative"},
		{finite(c.Obstacles.InitialSize) && c.Obstacles.InitialSize >= MinObstacleSize, "obstacles.initialSize", fmt.Sprintf("must be at least %v", MinObstacleSize)},
		{nonNegative(c.Obstacles.SecurityDistance), "obstacles.securityDistance", "must not be negative"},
		{c.Obstacles.SpawnRetries >= 1, "obstacles.spawnRetries", "must be at least 1"},
		{nonNegative(c.Obstacles.BaseSpeed), "obstacles.baseSpeed", "must not be negative"},
		{unitInterval(c.Obstacles.SpeedJitter), "obstacles.speedJitter", "must be in [0, 1)"},
		{positive(c.Obstacles.RadiusPerSize), "obstacles.radiusPerSize", "must be positive"},
		{unitInterval(c.Obstacles.ShapeJitter), "obstacles.shapeJitter", "must be in [0, 1)"},
		{c.Obstacles.MinVertices >= 3, "obstacles.minVertices", "must be at least 3"},
		{c.Obstacles.MaxVertices >= c.Obstacles.MinVertices, "obstacles.maxVertices", "must not be below minVertices"},
		{nonNegative(c.Craft.ThrustSpeed), "craft.thrustSpeed", "must not be negative"},
		{nonNegative(c.Rules.ScoreRate), "rules.scoreRate", "must not be negative"},
		{c.Runtime.TickRate >= 1 && c.Runtime.TickRate <= MaxTickRate, "runtime.tickRate", fmt.Sprintf("must be in [1, %d]", MaxTickRate)},
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field, Reason: check.reason}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}

func unitInterval(v float64) bool {
	return finite(v) && v >= 0 && v < 1
}
