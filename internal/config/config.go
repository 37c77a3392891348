// Package config handles the demo program configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/akmonengine/glide/actor"
	"github.com/akmonengine/glide/level"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Level      LevelConfig      `yaml:"level"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the fixed-step driver settings.
//
// The player tuning is expressed per tick: changing TickRate without rescaling
// Player.Movement changes how movement feels.
type SimulationConfig struct {
	TickRate  int           `yaml:"tick_rate"`
	Workers   int           `yaml:"workers"`
	Frames    int           `yaml:"frames"`     // frames simulated by the demo
	FrameTime time.Duration `yaml:"frame_time"` // simulated time between two frames
}

// PlayerConfig holds the player tuning.
type PlayerConfig struct {
	Movement        actor.Movement `yaml:"movement"`
	ProjectileSpeed float64        `yaml:"projectile_speed"` // per tick
}

// LevelConfig holds the level to load. An empty path uses a flat floor.
type LevelConfig struct {
	Path  string `yaml:"path"`
	Spawn string `yaml:"spawn"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:  actor.DefaultTickRate,
			Workers:   1,
			Frames:    600,
			FrameTime: 16 * time.Millisecond,
		},
		Player: PlayerConfig{
			Movement:        actor.DefaultMovement(),
			ProjectileSpeed: 0.5,
		},
		Level: LevelConfig{
			Path:  "",
			Spawn: level.PlayerStart,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate = %d: %w", c.Simulation.TickRate, ErrInvalidConfig)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers = %d: %w", c.Simulation.Workers, ErrInvalidConfig)
	}
	if c.Simulation.Frames < 0 {
		return fmt.Errorf("simulation.frames = %d: %w", c.Simulation.Frames, ErrInvalidConfig)
	}
	if c.Simulation.FrameTime <= 0 {
		return fmt.Errorf("simulation.frame_time = %v: %w", c.Simulation.FrameTime, ErrInvalidConfig)
	}
	if c.Level.Spawn == "" {
		return fmt.Errorf("level.spawn is empty: %w", ErrInvalidConfig)
	}

	return nil
}

// PlayerDescriptor is the player descriptor with the configured tuning.
func (c *Config) PlayerDescriptor() actor.Descriptor {
	desc := actor.PlayerDescriptor()
	desc.Movement = c.Player.Movement
	return desc
}
