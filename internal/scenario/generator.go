package scenario

import (
	"fmt"
	"math"
	"math/rand/v2"

	"lake-sim/internal/common"
	"lake-sim/internal/simulation"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator populates lakes with boats. Random scenes are reproducible for a given seed.
type Generator struct {
	src rand.Source
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewPCG(seed, seed)}
}

func (g *Generator) uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: g.src}.Rand()
}

func (g *Generator) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

// RandomBoats adds n boats named "Boat 1".."Boat n" with random parameters, headings
// and positions. Positions follow a normal distribution around the lake center and are
// redrawn until they fall inside the lake.
func (g *Generator) RandomBoats(lake *simulation.Lake, n int) ([]*simulation.Boat, error) {
	const factor = 2
	boats := make([]*simulation.Boat, 0, n)
	for i := 1; i <= n; i++ {
		initialSpeed := g.uniform(0, 10) * factor
		maxSpeed := (2 + g.uniform(15, 50)*initialSpeed) * factor
		acceleration := (maxSpeed - initialSpeed) / g.uniform(25, 30) * factor

		boat, err := simulation.NewBoat(fmt.Sprintf("Boat %d", i), g.uniform(10, 20), initialSpeed, maxSpeed, acceleration)
		if err != nil {
			return boats, fmt.Errorf("random boat %d: %w", i, err)
		}
		direction := common.Direction(g.uniform(0, 2*math.Pi))
		if err := lake.AddBoat(boat, g.randomPoint(lake), direction); err != nil {
			return boats, fmt.Errorf("random boat %d: %w", i, err)
		}
		boats = append(boats, boat)
	}
	return boats, nil
}

func (g *Generator) randomPoint(lake *simulation.Lake) common.Point {
	for {
		p := common.NewPoint(
			g.normal(0, lake.GetWidth()/4),
			g.normal(0, lake.GetHeight()/4),
		)
		if lake.IsInside(p) {
			return p
		}
	}
}

// CornersToCenter adds four boats tucked into the lake corners, all heading to the
// center. Order: top right, top left, bottom left, bottom right.
func CornersToCenter(lake *simulation.Lake) ([]*simulation.Boat, error) {
	const radius = 15
	w, h := lake.GetWidth()/2-radius, lake.GetHeight()/2-radius
	corners := []common.Point{
		common.NewPoint(w, h),
		common.NewPoint(-w, h),
		common.NewPoint(-w, -h),
		common.NewPoint(w, -h),
	}

	boats := make([]*simulation.Boat, 0, len(corners))
	for i, corner := range corners {
		boat, err := simulation.NewBoat(fmt.Sprintf("Boat %d", i), radius, 10, 200, 100)
		if err != nil {
			return boats, err
		}
		if err := lake.AddBoat(boat, corner, common.Origin().Subtract(corner)); err != nil {
			return boats, fmt.Errorf("corner boat %d: %w", i, err)
		}
		boats = append(boats, boat)
	}
	return boats, nil
}

// Crossing adds two boats on perpendicular courses: Neo heading north from just below
// the center and Old heading east from the west.
func Crossing(lake *simulation.Lake) ([]*simulation.Boat, error) {
	type entry struct {
		name      string
		position  common.Point
		direction common.Vector
	}
	entries := []entry{
		{"Neo", common.NewPoint(0, -10), common.NewVector(0, 1)},
		{"Old", common.NewPoint(-100, 0), common.NewVector(1, 0)},
	}

	boats := make([]*simulation.Boat, 0, len(entries))
	for _, e := range entries {
		boat, err := simulation.NewBoat(e.name, 10, 10, 100, 1)
		if err != nil {
			return boats, err
		}
		if err := lake.AddBoat(boat, e.position, e.direction); err != nil {
			return boats, fmt.Errorf("boat %s: %w", e.name, err)
		}
		boats = append(boats, boat)
	}
	return boats, nil
}
