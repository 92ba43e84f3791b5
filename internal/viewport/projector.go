package viewport

import (
	"errors"
	"fmt"
	"math"

	"lake-sim/internal/common"

	"gonum.org/v1/gonum/mat"
)

var ErrInvalidViewport = errors.New("invalid viewport")

// Projector converts between lake coordinates (origin at the center, Y up) and screen
// pixels (origin at the top left, Y down).
type Projector interface {
	ToScreen(p common.Point) (x, y float64)
	ToLake(x, y float64) common.Point
	// Scale is the number of pixels per lake unit.
	Scale() float64
}

// AffineProjector fits the whole lake into the screen minus padding, preserving the
// aspect ratio, and centers it.
type AffineProjector struct {
	forward *mat.Dense
	inverse *mat.Dense
	scale   float64
}

// NewAffineProjector creates the projector for a lake of lakeW x lakeH shown on a
// screenW x screenH screen with padding pixels left free on every side.
func NewAffineProjector(lakeW, lakeH, screenW, screenH, padding float64) (*AffineProjector, error) {
	if !(lakeW > 0) || !(lakeH > 0) {
		return nil, fmt.Errorf("%w: lake %vx%v", ErrInvalidViewport, lakeW, lakeH)
	}
	scale := math.Min((screenW-2*padding)/lakeW, (screenH-2*padding)/lakeH)
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: screen %vx%v with padding %v", ErrInvalidViewport, screenW, screenH, padding)
	}

	forward := mat.NewDense(3, 3, []float64{
		scale, 0, screenW / 2,
		0, -scale, screenH / 2,
		0, 0, 1,
	})
	var inverse mat.Dense
	if err := inverse.Inverse(forward); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidViewport, err)
	}
	return &AffineProjector{forward: forward, inverse: &inverse, scale: scale}, nil
}

func apply(m *mat.Dense, x, y float64) (float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{x, y, 1}))
	return out.AtVec(0), out.AtVec(1)
}

func (a *AffineProjector) ToScreen(p common.Point) (float64, float64) {
	return apply(a.forward, p.X, p.Y)
}

func (a *AffineProjector) ToLake(x, y float64) common.Point {
	return common.NewPoint(apply(a.inverse, x, y))
}

func (a *AffineProjector) Scale() float64 { return a.scale }
