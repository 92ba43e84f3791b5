package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"lake-sim/internal/common"
	"lake-sim/internal/simulation"
)

var (
	ErrNoHeading        = errors.New("boat needs a direction or a target")
	ErrAmbiguousHeading = errors.New("boat cannot have both a direction and a target")
)

// File is the on-disk description of a lake and its boats, in placement order.
type File struct {
	Lake  LakeConfig   `json:"lake"`
	Boats []BoatConfig `json:"boats"`
}

type LakeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoatConfig describes one boat. Exactly one of Direction and Target must be set;
// a target is turned into the heading from Position towards it.
type BoatConfig struct {
	Name         string         `json:"name"`
	Radius       float64        `json:"radius"`
	Speed        float64        `json:"speed"`
	MaxSpeed     float64        `json:"max_speed"`
	Acceleration float64        `json:"acceleration"`
	Position     common.Point   `json:"position"`
	Direction    *common.Vector `json:"direction,omitempty"`
	Target       *common.Point  `json:"target,omitempty"`
}

// Load decodes a scenario. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &f, nil
}

// LoadFile reads the scenario stored at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Build creates the lake and adds every boat in file order.
func (f *File) Build() (*simulation.Lake, error) {
	lake, err := simulation.NewLake(f.Lake.Width, f.Lake.Height)
	if err != nil {
		return nil, err
	}
	for i, bc := range f.Boats {
		if err := bc.addTo(lake); err != nil {
			return nil, fmt.Errorf("boat %d (%q): %w", i, bc.Name, err)
		}
	}
	return lake, nil
}

func (bc BoatConfig) heading() (common.Vector, error) {
	switch {
	case bc.Direction != nil && bc.Target != nil:
		return common.Vector{}, ErrAmbiguousHeading
	case bc.Direction != nil:
		return *bc.Direction, nil
	case bc.Target != nil:
		return bc.Target.Subtract(bc.Position), nil
	default:
		return common.Vector{}, ErrNoHeading
	}
}

func (bc BoatConfig) addTo(lake *simulation.Lake) error {
	direction, err := bc.heading()
	if err != nil {
		return err
	}
	boat, err := simulation.NewBoat(bc.Name, bc.Radius, bc.Speed, bc.MaxSpeed, bc.Acceleration)
	if err != nil {
		return err
	}
	return lake.AddBoat(boat, bc.Position, direction)
}
