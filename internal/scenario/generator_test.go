package scenario

import (
	"fmt"
	"math"
	"testing"

	"lake-sim/internal/common"
	"lake-sim/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLake(t *testing.T, width, height float64) *simulation.Lake {
	t.Helper()
	lake, err := simulation.NewLake(width, height)
	require.NoError(t, err)
	return lake
}

func TestRandomBoats(t *testing.T) {
	lake := newLake(t, 800, 600)

	boats, err := NewGenerator(7).RandomBoats(lake, 10)
	require.NoError(t, err)
	require.Len(t, boats, 10)
	assert.Len(t, lake.GetBoats(), 10)

	for i, b := range boats {
		assert.Equal(t, fmt.Sprintf("Boat %d", i+1), b.GetName())
		assert.GreaterOrEqual(t, b.GetRadius(), 10.0)
		assert.Less(t, b.GetRadius(), 20.0)
		assert.LessOrEqual(t, b.GetSpeed(), b.GetMaxSpeed())
		assert.GreaterOrEqual(t, b.GetAcceleration(), 0.0)

		initial, err := b.GetInitialPosition()
		require.NoError(t, err)
		assert.True(t, lake.IsInside(initial), "%s spawned at %s", b.GetName(), initial)
	}
}

func TestRandomBoatsIsReproducible(t *testing.T) {
	build := func(seed uint64) []*simulation.Boat {
		boats, err := NewGenerator(seed).RandomBoats(newLake(t, 800, 600), 5)
		require.NoError(t, err)
		return boats
	}
	first, second, other := build(42), build(42), build(43)

	for i := range first {
		p1, _ := first[i].GetInitialPosition()
		p2, _ := second[i].GetInitialPosition()
		assert.Equal(t, p1, p2)
		assert.Equal(t, first[i].GetRadius(), second[i].GetRadius())
		assert.Equal(t, first[i].GetMaxSpeed(), second[i].GetMaxSpeed())
	}

	p1, _ := first[0].GetInitialPosition()
	p3, _ := other[0].GetInitialPosition()
	assert.NotEqual(t, p1, p3)
}

func TestRandomBoatsLakeTooSmall(t *testing.T) {
	lake := newLake(t, 15, 15)

	boats, err := NewGenerator(1).RandomBoats(lake, 3)
	assert.ErrorIs(t, err, simulation.ErrBoatTooLarge)
	assert.Empty(t, boats)
	assert.Empty(t, lake.GetBoats())
}

func TestCornersToCenter(t *testing.T) {
	lake := newLake(t, 800, 600)

	boats, err := CornersToCenter(lake)
	require.NoError(t, err)
	require.Len(t, boats, 4)

	expected := []common.Point{
		common.NewPoint(385, 285),
		common.NewPoint(-385, 285),
		common.NewPoint(-385, -285),
		common.NewPoint(385, -285),
	}
	for i, b := range boats {
		pos, err := b.GetPosition()
		require.NoError(t, err)
		assert.Equal(t, expected[i], pos)
		assert.True(t, b.IsMoving(), "flush corners are not aground")

		dir, err := b.GetDirection()
		require.NoError(t, err)
		assert.InDelta(t, -pos.X/pos.Radius(), dir.X, 1e-12)
		assert.InDelta(t, -pos.Y/pos.Radius(), dir.Y, 1e-12)
	}
}

func TestCornersToCenterCollideInTheMiddle(t *testing.T) {
	lake := newLake(t, 800, 600)
	_, err := CornersToCenter(lake)
	require.NoError(t, err)

	for i := 0; lake.HasMovement() && i < 10000; i++ {
		require.NoError(t, lake.RunTime(1.0/60))
	}
	for _, b := range lake.GetBoats() {
		assert.True(t, b.IsSunk(), "%s", b)
	}
}

func TestCrossing(t *testing.T) {
	lake := newLake(t, 800, 600)

	boats, err := Crossing(lake)
	require.NoError(t, err)
	require.Len(t, boats, 2)

	assert.Equal(t, "Neo", boats[0].GetName())
	assert.Equal(t, "Old", boats[1].GetName())
	pos, _ := boats[1].GetPosition()
	assert.Equal(t, common.NewPoint(-100, 0), pos)
}

func TestCrossingRunsAground(t *testing.T) {
	lake := newLake(t, 800, 600)
	boats, err := Crossing(lake)
	require.NoError(t, err)
	neo, old := boats[0], boats[1]

	// both boats keep the same speed, so the gap shrinks to 45*sqrt(2) and opens again
	minDist := math.Inf(1)
	for i := 0; lake.HasMovement() && i < 100000; i++ {
		require.NoError(t, lake.RunTime(1.0/60))
		p1, _ := neo.GetPosition()
		p2, _ := old.GetPosition()
		minDist = math.Min(minDist, p1.Distance(p2))
	}

	assert.True(t, neo.IsStuck())
	assert.True(t, old.IsStuck())
	assert.InDelta(t, 63.64, minDist, 0.01)

	pos, _ := neo.GetPosition()
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, 290, pos.Y, 1e-9)
	pos, _ = old.GetPosition()
	assert.InDelta(t, 390, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
}
