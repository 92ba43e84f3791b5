package viewport

import (
	"lake-sim/internal/common"
	"lake-sim/internal/simulation"
)

// Picker turns mouse presses and releases into boat selection and steering.
// Pressing on a moving boat selects it. Pressing on open water and releasing points
// the selected boat towards the release position.
type Picker struct {
	lake          *simulation.Lake
	selected      *simulation.Boat
	pressedOnBoat bool
}

func NewPicker(lake *simulation.Lake) *Picker {
	return &Picker{lake: lake}
}

// Tolerance is the extra grab distance around a boat. Small boats get more of it.
func Tolerance(radius float64) float64 {
	return 10 * 10 / (5 + radius)
}

// Press handles a mouse press at p in lake coordinates and returns the boat it
// selected, if any. The previous selection is kept when no boat is hit.
func (pk *Picker) Press(p common.Point) *simulation.Boat {
	pk.pressedOnBoat = false
	for _, b := range pk.lake.GetBoats() {
		if b.IsMoving() && b.IsInside(p, Tolerance(b.GetRadius())) {
			pk.selected = b
			pk.pressedOnBoat = true
			return b
		}
	}
	return nil
}

// Release handles a mouse release at p in lake coordinates. It reports whether the
// selected boat was given a new heading.
func (pk *Picker) Release(p common.Point) (bool, error) {
	if pk.pressedOnBoat || pk.selected == nil || !pk.selected.IsMoving() {
		return false, nil
	}
	pos, err := pk.selected.GetPosition()
	if err != nil {
		return false, err
	}
	if err := pk.selected.SetDirection(p.Subtract(pos)); err != nil {
		return false, err
	}
	return true, nil
}

// Selected returns the selected boat while it is still moving.
func (pk *Picker) Selected() *simulation.Boat {
	if pk.selected == nil || !pk.selected.IsMoving() {
		return nil
	}
	return pk.selected
}
