package simulation

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"lake-sim/internal/common"

	"github.com/ttacon/chalk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Simulation drives a lake at a fixed frame rate and keeps track of simulated time.
// It is not safe for concurrent use; callers that read the lake while the simulation
// runs must do so between steps.
type Simulation struct {
	lake           *Lake
	fps            float64
	tickDuration   time.Duration // real time between two steps
	simulationTime float64       // total elapsed simulated time
	logger         *log.Logger
}

// NewSimulation creates a simulation stepping lake by 1/fps seconds per frame.
// A lake can be driven by a single simulation.
func NewSimulation(lake *Lake, fps float64) (*Simulation, error) {
	if !(fps > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFrameRate, fps)
	}
	tickDuration := time.Duration(float64(time.Second) / fps)
	if tickDuration < time.Millisecond {
		return nil, fmt.Errorf("%w: %v fps", ErrFrameRateTooHigh, fps)
	}
	if lake.hasRunner {
		return nil, ErrLakeHasRunner
	}
	lake.hasRunner = true

	s := &Simulation{
		lake:         lake,
		fps:          fps,
		tickDuration: tickDuration,
		logger:       log.Default(),
	}
	lake.On(EventStuck, s.logEvent)
	lake.On(EventSunk, s.logEvent)
	return s, nil
}

// SetLogger replaces the logger used for lake events. A nil logger silences them.
func (s *Simulation) SetLogger(logger *log.Logger) {
	s.logger = logger
}

func (s *Simulation) logEvent(e Event) {
	if s.logger == nil {
		return
	}
	color := chalk.Yellow
	if e.Kind == EventSunk {
		color = chalk.Blue
	}
	s.logger.Println(color.Color(fmt.Sprintf("[%s] %s %s at %s",
		common.TimeFormat(s.simulationTime), e.Boat.GetName(), e.Kind, e.Boat.position)))
}

func (s *Simulation) GetLake() *Lake                 { return s.lake }
func (s *Simulation) GetCurrentTime() float64        { return s.simulationTime }
func (s *Simulation) GetTickDuration() time.Duration { return s.tickDuration }

// Delta returns the simulated seconds covered by one step.
func (s *Simulation) Delta() float64 {
	return 1 / s.fps
}

// Step advances the lake by one frame.
func (s *Simulation) Step() error {
	delta := s.Delta()
	if err := s.lake.RunTime(delta); err != nil {
		return fmt.Errorf("at t=%.2f: %w", s.simulationTime, err)
	}
	s.simulationTime += delta
	return nil
}

// Run steps the simulation once per tick until no boat moves or ctx is done.
func (s *Simulation) Run(ctx context.Context) error {
	s.logf(chalk.Green, "Starting simulation: Lake=%vx%v, Boats=%d, TickDuration=%s",
		s.lake.GetWidth(), s.lake.GetHeight(), len(s.lake.boats), s.tickDuration)

	ticker := time.NewTicker(s.tickDuration)
	defer ticker.Stop()

	for s.lake.HasMovement() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := s.Step(); err != nil {
			return err
		}
	}

	s.logf(chalk.Green, "Simulation finished after %s", common.TimeFormat(s.simulationTime))
	return nil
}

// RunFor steps the simulation without real-time pacing until no boat moves or
// maxTime simulated seconds have elapsed. A non-positive maxTime means no limit.
func (s *Simulation) RunFor(maxTime float64) error {
	for s.lake.HasMovement() {
		if maxTime > 0 && s.simulationTime >= maxTime {
			return nil
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) logf(color chalk.Color, format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Println(color.Color(fmt.Sprintf(format, args...)))
}

// Status returns the one-line summary shown under the lake.
func (s *Simulation) Status() string {
	sep := "      "
	state := "No Movement"
	if s.lake.HasMovement() {
		state = "Running"
	}
	return "Time: " + common.TimeFormat(s.simulationTime) + sep +
		"Boats: " + fmt.Sprint(len(s.lake.boats)) + sep +
		"[" + state + "]"
}

// BoatLog is a point-in-time snapshot of a boat.
type BoatLog struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position common.Point `json:"position"`
	Speed    float64      `json:"speed"`
	Radius   float64      `json:"radius"`
	State    State        `json:"state"`
}

// Snapshot returns the state of every boat in simulation order.
func (s *Simulation) Snapshot() []BoatLog {
	logs := make([]BoatLog, len(s.lake.boats))
	for i, b := range s.lake.boats {
		logs[i] = BoatLog{
			ID:       b.id,
			Name:     b.name,
			Position: b.position,
			Speed:    b.speed,
			Radius:   b.radius,
			State:    b.state,
		}
	}
	return logs
}

// Summary aggregates boat states and the speeds of the boats still moving.
type Summary struct {
	Moving    int
	Stuck     int
	Sunk      int
	MeanSpeed float64 // over moving boats, 0 if none
	MaxSpeed  float64 // over moving boats, 0 if none
}

// Summary computes the current Summary of the lake.
func (s *Simulation) Summary() Summary {
	var sum Summary
	speeds := make([]float64, 0, len(s.lake.boats))
	for _, b := range s.lake.boats {
		switch b.state {
		case Moving:
			sum.Moving++
			speeds = append(speeds, b.speed)
		case Stuck:
			sum.Stuck++
		case Sunk:
			sum.Sunk++
		}
	}
	if len(speeds) > 0 {
		sum.MeanSpeed = stat.Mean(speeds, nil)
		sum.MaxSpeed = floats.Max(speeds)
	}
	return sum
}

// PrintState prints the position, speed, heading and state of every boat.
func (s *Simulation) PrintState(w io.Writer) {
	fmt.Fprintln(w, "--- Current Lake State ---")
	fmt.Fprintf(w, "Time = %s\n", common.TimeFormat(s.simulationTime))
	if len(s.lake.boats) == 0 {
		fmt.Fprintln(w, "  None")
	}
	for _, b := range s.lake.boats {
		fmt.Fprintf(w, "  %s: position = %s speed = %s direction = %s state = %s\n",
			b.name, b.position, common.Format(b.speed, 2), b.direction, b.state)
	}
	sum := s.Summary()
	fmt.Fprintf(w, "Moving: %d, Stuck: %d, Sunk: %d, Mean speed: %s\n",
		sum.Moving, sum.Stuck, sum.Sunk, common.Format(sum.MeanSpeed, 2))
	fmt.Fprintln(w, strings.Repeat("-", 26))
}
