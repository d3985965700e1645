// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnvironmentOverrides
const (
	EnvWorldWidth       = "ASTEROIDS_WORLD_WIDTH"
	EnvWorldHeight      = "ASTEROIDS_WORLD_HEIGHT"
	EnvObstacleCount    = "ASTEROIDS_OBSTACLE_COUNT"
	EnvObstacleSize     = "ASTEROIDS_OBSTACLE_SIZE"
	EnvSecurityDistance = "ASTEROIDS_SECURITY_DISTANCE"
	EnvSpawnRetries     = "ASTEROIDS_SPAWN_RETRIES"
	EnvThrustSpeed      = "ASTEROIDS_THRUST_SPEED"
	EnvScoreRate        = "ASTEROIDS_SCORE_RATE"
	EnvTickRate         = "ASTEROIDS_TICK_RATE"
	EnvSeed             = "ASTEROIDS_SEED"
	EnvSeedPhrase       = "ASTEROIDS_SEED_PHRASE"
)

// ApplyEnvironmentOverrides overwrites config values with any ASTEROIDS_*
// variables that are set. A malformed value is an error and leaves the
// remaining fields untouched.
func ApplyEnvironmentOverrides(config *Config) error {
	floats := []struct {
		key    string
		target *float64
	}{
		{EnvWorldWidth, &config.World.Width},
		{EnvWorldHeight, &config.World.Height},
		{EnvObstacleSize, &config.Obstacles.InitialSize},
		{EnvSecurityDistance, &config.Obstacles.SecurityDistance},
		{EnvThrustSpeed, &config.Craft.ThrustSpeed},
		{EnvScoreRate, &config.Rules.ScoreRate},
	}
	for _, f := range floats {
		if err := getEnvFloat(f.key, f.target); err != nil {
			return err
		}
	}

	ints := []struct {
		key    string
		target *int
	}{
		{EnvObstacleCount, &config.Obstacles.InitialCount},
		{EnvSpawnRetries, &config.Obstacles.SpawnRetries},
		{EnvTickRate, &config.Runtime.TickRate},
	}
	for _, i := range ints {
		if err := getEnvInt(i.key, i.target); err != nil {
			return err
		}
	}

	if value, ok := os.LookupEnv(EnvSeed); ok && value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, value, err)
		}
		config.Runtime.Seed = seed
	}

	if value, ok := os.LookupEnv(EnvSeedPhrase); ok && value != "" {
		config.Runtime.SeedPhrase = value
	}

	return nil
}

func getEnvFloat(key string, target *float64) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}

func getEnvInt(key string, target *int) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*target = parsed
	return nil
}
