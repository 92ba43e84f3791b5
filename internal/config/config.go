package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// Scenario names accepted by -scenario.
const (
	ScenarioRandom   = "random"
	ScenarioCorners  = "corners"
	ScenarioCrossing = "crossing"
	ScenarioFile     = "file"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the parameters of one simulation run.
type Config struct {
	Width    float64
	Height   float64
	FPS      float64
	Scenario string
	Boats    int
	Seed     uint64
	File     string

	Headless bool
	MaxTime  float64 // simulated seconds, 0 means until every boat stops
	JSON     bool
	Quiet    bool
}

// Default returns the configuration used when no flag is given: ten random boats on
// an 800x600 lake refreshed 60 times per second.
func Default() Config {
	return Config{
		Width:    800,
		Height:   600,
		FPS:      60,
		Scenario: ScenarioRandom,
		Boats:    10,
		Seed:     uint64(time.Now().UnixNano()),
	}
}

// Parse reads the command line arguments (without the program name) on top of Default.
// Usage and parse errors are written to output.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "Lake width")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "Lake height")
	fs.Float64Var(&cfg.FPS, "fps", cfg.FPS, "Simulation steps per second")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Initial boats: random, corners, crossing or file")
	fs.IntVar(&cfg.Boats, "boats", cfg.Boats, "Number of boats for the random scenario")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; defaults to the current time")
	fs.StringVar(&cfg.File, "file", cfg.File, "Scenario file, required with -scenario file")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window and print the final state")
	fs.Float64Var(&cfg.MaxTime, "max-time", cfg.MaxTime, "Stop a headless run after this many simulated seconds")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the final state of a headless run as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Do not log boat events")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig, fs.Arg(0))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that do not depend on the simulation itself. Lake and
// frame rate limits are enforced again when the simulation is built.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: lake size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case !(c.FPS > 0):
		return fmt.Errorf("%w: fps %v", ErrInvalidConfig, c.FPS)
	case c.Boats < 0:
		return fmt.Errorf("%w: boats %d", ErrInvalidConfig, c.Boats)
	case c.MaxTime < 0:
		return fmt.Errorf("%w: max-time %v", ErrInvalidConfig, c.MaxTime)
	case c.JSON && !c.Headless:
		return fmt.Errorf("%w: -json requires -headless", ErrInvalidConfig)
	}

	switch c.Scenario {
	case ScenarioRandom, ScenarioCorners, ScenarioCrossing:
	case ScenarioFile:
		if c.File == "" {
			return fmt.Errorf("%w: -scenario file requires -file", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalidConfig, c.Scenario)
	}
	return nil
}
