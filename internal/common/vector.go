package common

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned when a direction is requested from a vector without magnitude.
var ErrZeroVector = errors.New("vector has zero magnitude")

// Vector represents a displacement or direction on the lake surface.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Polar creates a vector of the given magnitude pointing at angle (radians).
func Polar(magnitude, angle float64) Vector {
	p := PolarPoint(magnitude, angle)
	return Vector{X: p.X, Y: p.Y}
}

// Direction creates a unit vector pointing at angle (radians).
func Direction(angle float64) Vector {
	return Polar(1, angle)
}

// Add adds another vector to this vector.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// MultiplyByScalar multiplies the vector by a scalar value.
// Products are rounded before they are returned so callers adding the result to a
// point never get a fused multiply-add.
func (v Vector) MultiplyByScalar(scalar float64) Vector {
	return Vector{X: float64(v.X * scalar), Y: float64(v.Y * scalar)}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.NormSq())
}

// NormSq calculates the squared magnitude of the vector.
func (v Vector) NormSq() float64 {
	return float64(v.X*v.X) + float64(v.Y*v.Y)
}

// Unit returns the vector scaled to length 1.
func (v Vector) Unit() (Vector, error) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) {
		return Vector{}, ErrZeroVector
	}
	return v.MultiplyByScalar(1 / m), nil
}

// Angle returns the direction of the vector in radians.
func (v Vector) Angle() float64 {
	return Point(v).Angle()
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("<%s; %s>", Format(v.X, 2), Format(v.Y, 2))
}
