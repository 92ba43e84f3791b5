package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector
		expected Vector
	}{
		{"add", NewVector(3, 4).Add(NewVector(1, -2)), NewVector(4, 2)},
		{"scale", NewVector(3, -4).MultiplyByScalar(2), NewVector(6, -8)},
		{"scale by zero", NewVector(3, -4).MultiplyByScalar(0), NewVector(0, 0)},
		{"point difference", NewPoint(5, 5).Subtract(NewPoint(2, 1)), NewVector(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestVectorMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, NewVector(3, 4).Magnitude())
	assert.Equal(t, 25.0, NewVector(-3, 4).NormSq())
	assert.Equal(t, 0.0, Vector{}.Magnitude())
}

func TestVectorUnit(t *testing.T) {
	u, err := NewVector(0, 8).Unit()
	require.NoError(t, err)
	assert.Equal(t, NewVector(0, 1), u)

	u, err = NewVector(3, 4).Unit()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Magnitude(), 1e-12)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)

	_, err = Vector{}.Unit()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestPolarConversion(t *testing.T) {
	v := Polar(2, math.Pi/2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 2, v.Y, 1e-12)

	d := Direction(math.Pi)
	assert.InDelta(t, -1, d.X, 1e-12)
	assert.InDelta(t, 1, d.Magnitude(), 1e-12)

	p := PolarPoint(5, 0.3)
	assert.InDelta(t, 5, p.Radius(), 1e-12)
	assert.InDelta(t, 0.3, p.Angle(), 1e-12)
}

func TestPointTranslation(t *testing.T) {
	p := NewPoint(1, 2)

	assert.Equal(t, NewPoint(4, 6), p.Add(NewVector(3, 4)))
	assert.Equal(t, NewPoint(-1, 2), p.AddX(-2))
	assert.Equal(t, NewPoint(1, 7), p.AddY(5))
	assert.Equal(t, 5.0, NewPoint(4, 6).Distance(p))
	assert.Equal(t, Point{}, Origin())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.23; -4)", NewPoint(1.234, -4).String())
	assert.Equal(t, "<0.5; 2>", NewVector(0.5, 2).String())
}
