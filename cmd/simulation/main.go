package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"lake-sim/internal/config"
	"lake-sim/internal/scenario"
	"lake-sim/internal/simulation"
	"lake-sim/internal/visualization"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ttacon/chalk"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatalf("Error reading configuration: %v", err)
	}

	lake, err := buildLake(cfg)
	if err != nil {
		fatalf("Error creating lake: %v", err)
	}

	sim, err := simulation.NewSimulation(lake, cfg.FPS)
	if err != nil {
		fatalf("Error creating simulation: %v", err)
	}
	if cfg.Quiet {
		sim.SetLogger(nil)
	}

	if cfg.Headless {
		if err := runHeadless(sim, cfg); err != nil {
			fatalf("Simulation failed: %v", err)
		}
		return
	}

	vis, err := visualization.NewRenderer(sim)
	if err != nil {
		fatalf("Failed to create visualizer: %v", err)
	}
	ebiten.SetWindowSize(vis.WindowSize())
	ebiten.SetWindowTitle("Lake")
	ebiten.SetTPS(max(1, int(math.Round(cfg.FPS))))
	if err := ebiten.RunGame(vis); err != nil {
		fatalf("Window closed: %v", err)
	}
}

func fatalf(format string, args ...any) {
	log.Fatal(chalk.Red.Color(fmt.Sprintf(format, args...)))
}

func buildLake(cfg config.Config) (*simulation.Lake, error) {
	if cfg.Scenario == config.ScenarioFile {
		f, err := scenario.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return f.Build()
	}

	lake, err := simulation.NewLake(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	switch cfg.Scenario {
	case config.ScenarioCorners:
		_, err = scenario.CornersToCenter(lake)
	case config.ScenarioCrossing:
		_, err = scenario.Crossing(lake)
	default:
		log.Printf("Random scenario with %d boats, seed %d", cfg.Boats, cfg.Seed)
		_, err = scenario.NewGenerator(cfg.Seed).RandomBoats(lake, cfg.Boats)
	}
	if err != nil {
		return nil, err
	}
	return lake, nil
}

func runHeadless(sim *simulation.Simulation, cfg config.Config) error {
	if cfg.MaxTime > 0 {
		if err := sim.RunFor(cfg.MaxTime); err != nil {
			return err
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := sim.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Time  float64              `json:"time"`
			Boats []simulation.BoatLog `json:"boats"`
		}{sim.GetCurrentTime(), sim.Snapshot()})
	}

	sim.PrintState(os.Stdout)
	fmt.Println(sim.Status())
	return nil
}
