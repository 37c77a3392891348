package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLevel   = flag.String("level", "", "Path to a level file")
	flagTicks   = flag.Int("ticks", 0, "Simulation ticks per second")
	flagWorkers = flag.Int("workers", 0, "Goroutines ticking entities")
	flagFrames  = flag.Int("frames", 0, "Number of frames to simulate")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLevel != "" {
		cfg.Level.Path = *flagLevel
	}
	if *flagTicks > 0 {
		cfg.Simulation.TickRate = *flagTicks
	}
	if *flagWorkers > 0 {
		cfg.Simulation.Workers = *flagWorkers
	}
	if *flagFrames > 0 {
		cfg.Simulation.Frames = *flagFrames
	}
}
