package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akmonengine/glide/actor"
	"github.com/akmonengine/glide/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, actor.DefaultTickRate, cfg.Simulation.TickRate)
	assert.Equal(t, 1, cfg.Simulation.Workers)
	assert.Equal(t, 16*time.Millisecond, cfg.Simulation.FrameTime)
	assert.Equal(t, actor.DefaultMovement(), cfg.Player.Movement)
	assert.Equal(t, level.PlayerStart, cfg.Level.Spawn)
	assert.Empty(t, cfg.Level.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -1 }},
		{"negative frames", func(c *Config) { c.Simulation.Frames = -1 }},
		{"zero frame time", func(c *Config) { c.Simulation.FrameTime = 0 }},
		{"no spawn", func(c *Config) { c.Level.Spawn = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
simulation:
  tick_rate: 60
  workers: 4
  frames: 120
  frame_time: 33ms

player:
  movement:
    gravity: 0.003
    jump_grace_ticks: 10
  projectile_speed: 0.8

level:
  path: "maps/e1m1.yaml"
  spawn: "info_player_deathmatch"

logging:
  level: "debug"
  log_file: "glide.log"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))

	assert.Equal(t, 60, cfg.Simulation.TickRate)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, 120, cfg.Simulation.Frames)
	assert.Equal(t, 33*time.Millisecond, cfg.Simulation.FrameTime)

	assert.Equal(t, 0.003, cfg.Player.Movement.Gravity)
	assert.Equal(t, 10, cfg.Player.Movement.JumpGraceTicks)
	assert.Equal(t, 0.01, cfg.Player.Movement.MoveSpeed, "unset tuning keeps its default")
	assert.Equal(t, 0.8, cfg.Player.ProjectileSpeed)

	assert.Equal(t, "maps/e1m1.yaml", cfg.Level.Path)
	assert.Equal(t, "info_player_deathmatch", cfg.Level.Spawn)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "glide.log", cfg.Logging.LogFile)

	desc := cfg.PlayerDescriptor()
	assert.Equal(t, 0.003, desc.Movement.Gravity)
	assert.NoError(t, desc.Validate())
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
simulation:
  tick_rate: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	assert.Error(t, loadFromFile(Default(), configPath))
}

func TestLoadFromFileMissing(t *testing.T) {
	assert.Error(t, loadFromFile(Default(), "/nonexistent/path/config.yaml"))
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "level flag",
			setup: func() { *flagLevel = "maps/dm2.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "maps/dm2.yaml", cfg.Level.Path)
			},
			teardown: func() { *flagLevel = "" },
		},
		{
			name: "simulation flags",
			setup: func() {
				*flagTicks = 120
				*flagWorkers = 8
				*flagFrames = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 120, cfg.Simulation.TickRate)
				assert.Equal(t, 8, cfg.Simulation.Workers)
				assert.Equal(t, 30, cfg.Simulation.Frames)
			},
			teardown: func() {
				*flagTicks = 0
				*flagWorkers = 0
				*flagFrames = 0
			},
		},
		{
			name:  "unset flags keep the config",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
simulation:
  tick_rate: 60
  workers: 2
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	*flagWorkers = 6
	defer func() { *flagWorkers = 0 }()

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Simulation.Workers, "flag wins over the file")
	assert.Equal(t, 60, cfg.Simulation.TickRate, "file wins over the default")
	assert.Equal(t, 600, cfg.Simulation.Frames, "default kept")
}

func TestLoadFromConfigFlag(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("simulation:\n  frames: 42\n"), 0644))

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Simulation.Frames)
}

func TestLoadDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err, "a missing default file is not an error")
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("simulation:\n  workers: 3\n"), 0644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Simulation.Workers)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("simulation: [oops"), 0644))
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("simulation:\n  tick_rate: -5\n"), 0644))

	_, err := Load(configPath)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "glide.yaml")

	cfg := Default()
	cfg.Simulation.Workers = 3
	cfg.Player.Movement.AirControl = 0.25
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
