package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo settings. Environment variables (SHAPEDEMO_*)
// provide the defaults; command-line flags override them.
type Config struct {
	Frames   int           `envconfig:"FRAMES" default:"120"`
	Interval time.Duration `envconfig:"INTERVAL" default:"16ms"`
	Every    int           `envconfig:"EVERY" default:"20"`
	Output   string        `envconfig:"OUTPUT" default:"frames"`
	Surface  string        `envconfig:"SURFACE" default:"image"`
	Workers  int           `envconfig:"WORKERS" default:"4"`
	Verbose  bool          `envconfig:"VERBOSE" default:"false"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shapedemo", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindFlags registers flags on fs that default to the values in cfg.
func (cfg *Config) bindFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of ticks to run")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "tick interval")
	fs.IntVar(&cfg.Every, "every", cfg.Every, "write every n-th frame")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output directory")
	fs.StringVar(&cfg.Surface, "surface", cfg.Surface, "surface kind (image, record)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel PNG encoders")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
}

func (cfg *Config) logLevel() slog.Level {
	if cfg.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
