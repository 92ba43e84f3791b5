package common

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point is a coordinate on the lake surface. The origin is the lake center,
// X grows to the right and Y grows upwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a point from Cartesian coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PolarPoint creates a point at distance radius from the origin at angle (radians).
func PolarPoint(radius, angle float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Origin returns the lake center.
func Origin() Point {
	return Point{}
}

// Radius returns the distance from the origin.
func (p Point) Radius() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the polar angle of the point in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AddX shifts the point horizontally.
func (p Point) AddX(delta float64) Point {
	return Point{X: p.X + delta, Y: p.Y}
}

// AddY shifts the point vertically.
func (p Point) AddY(delta float64) Point {
	return Point{X: p.X, Y: p.Y + delta}
}

// Add translates the point by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Subtract returns the vector that goes from other to p.
func (p Point) Subtract(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance calculates the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return p.Subtract(other).Magnitude()
}

// R2 converts the point for use with r2 rectangles.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%s; %s)", Format(p.X, 2), Format(p.Y, 2))
}
