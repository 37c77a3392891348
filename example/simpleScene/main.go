// Package main runs a headless scene: a player dropped on a level walks, jumps and
// throws a test sphere while the simulation events are logged.
package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/glide"
	"github.com/akmonengine/glide/actor"
	"github.com/akmonengine/glide/internal/config"
	"github.com/akmonengine/glide/internal/logger"
	"github.com/akmonengine/glide/level"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Frames at which the scripted player acts
const (
	walkUntil = 120
	jumpAt    = 150
	throwAt   = 240
	turnAt    = 300
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Console(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	log.Info("=== simple scene ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	if err := run(cfg, log); err != nil {
		log.Error("scene failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadLevel reads the configured level, or builds a flat floor when none is set
func loadLevel(cfg *config.Config) (*level.Level, error) {
	if cfg.Level.Path == "" {
		return level.Floor(50, 0)
	}
	return level.Load(cfg.Level.Path)
}

func run(cfg *config.Config, log *zap.Logger) error {
	world := glide.NewWorld()
	world.Workers = cfg.Simulation.Workers
	world.Logger = log

	subscribe(world, log)

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}
	if err := world.SetLevel(lvl); err != nil {
		return err
	}

	player, err := actor.NewEntity(cfg.PlayerDescriptor(), mgl64.Vec3{}, mgl64.Vec2{1.5, 0}, mgl64.Vec3{})
	if err != nil {
		return err
	}
	world.AddEntity(player)
	if err := world.Respawn(player, cfg.Level.Spawn); err != nil {
		log.Warn("spawn point missing, starting at the origin", zap.Error(err))
	}

	sim, err := glide.NewSimulation(world, cfg.Simulation.TickRate)
	if err != nil {
		return err
	}

	for frame := 0; frame < cfg.Simulation.Frames; frame++ {
		script(world, player, frame, cfg, log)

		// reload halfway through, as an editor saving the map would
		if cfg.Level.Path != "" && frame == cfg.Simulation.Frames/2 {
			reload(world, sim, cfg, log)
		}

		sim.Advance(cfg.Simulation.FrameTime)

		if frame%60 == 0 {
			snapshot := player.Snapshot(sim.Alpha())
			log.Debug("player",
				zap.Int("frame", frame),
				zap.Uint64("tick", sim.TickCount()),
				zap.Float64("alpha", sim.Alpha()),
				zap.Float64s("position", snapshot.Position[:]),
				zap.Bool("grounded", snapshot.IsGrounded),
			)
		}
	}

	log.Info("scene finished",
		zap.Uint64("ticks", sim.TickCount()),
		zap.Int("entities", len(world.Entities)),
		zap.Float64s("player", player.Position[:]),
	)

	return nil
}

// script drives the player like a recorded input stream
func script(world *glide.World, player *actor.Entity, frame int, cfg *config.Config, log *zap.Logger) {
	switch {
	case frame < walkUntil:
		player.SetMovementDir(actor.IntentFromInput(1, 0, player.Rotation.Y()))
	case frame == walkUntil:
		player.SetMovementDir(actor.IntentFromInput(0, 0, player.Rotation.Y()))
	case frame == jumpAt:
		player.Jump()
	case frame == throwAt:
		ball, err := actor.SpawnProjectile(player, actor.TestSphereDescriptor(), cfg.Player.ProjectileSpeed)
		if err != nil {
			log.Warn("projectile rejected", zap.Error(err))
			return
		}
		world.AddEntity(ball)
		log.Info("projectile thrown", zap.Float64s("position", ball.Position[:]))
	case frame == turnAt:
		player.Look(0.2, 1.0)
		player.SetMovementDir(actor.IntentFromInput(1, 1, player.Rotation.Y()))
	}
}

// reload swaps in a freshly loaded level; a failed load keeps the current one
func reload(world *glide.World, sim *glide.Simulation, cfg *config.Config, log *zap.Logger) {
	lvl, err := level.Load(cfg.Level.Path)
	if err != nil {
		log.Warn("level reload failed, keeping the current level", zap.Error(err))
		return
	}
	if err := world.SetLevel(lvl); err != nil {
		log.Warn("level reload rejected", zap.Error(err))
		return
	}
	sim.Reset()
}

func subscribe(world *glide.World, log *zap.Logger) {
	entityName := func(e *actor.Entity) string {
		return e.Descriptor.Name
	}

	world.Events.Subscribe(glide.LAND, func(event glide.Event) {
		e := event.(glide.LandEvent)
		log.Info("landed", zap.String("entity", entityName(e.Entity)), zap.Uint64("tick", e.Tick))
	})
	world.Events.Subscribe(glide.TAKEOFF, func(event glide.Event) {
		e := event.(glide.TakeoffEvent)
		log.Debug("left the ground", zap.String("entity", entityName(e.Entity)), zap.Uint64("tick", e.Tick))
	})
	world.Events.Subscribe(glide.JUMP, func(event glide.Event) {
		e := event.(glide.JumpEvent)
		log.Info("jumped", zap.String("entity", entityName(e.Entity)), zap.Uint64("tick", e.Tick))
	})
	world.Events.Subscribe(glide.LEVEL_SWAP, func(event glide.Event) {
		e := event.(glide.LevelSwapEvent)
		log.Info("level ready", zap.Int("triangles", e.Current.Len()), zap.Bool("reload", e.Previous != nil))
	})
}
