package simulation

import (
	"fmt"
	"math"

	"lake-sim/internal/common"

	"github.com/golang/geo/r2"
)

// Lake is a rectangular surface centered at the origin holding an ordered sequence of
// boats. The order decides collision precedence: a boat is only checked against the
// boats before it, and sunk boats are moved to the front.
type Lake struct {
	eventEmitter

	width   float64
	height  float64
	surface r2.Rect

	boats []*Boat

	// Running extremes over every boat ever added. They only move toward the extreme
	// and size the simulation step.
	minRadius   float64
	maxSpeed    float64
	hasExtremes bool

	// Boats waiting to be sunk at the end of the current RunTime call.
	sinking []*Boat

	hasRunner bool
}

// NewLake creates an empty lake of the given size.
func NewLake(width, height float64) (*Lake, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidDimensions, width, height)
	}
	return &Lake{
		width:   width,
		height:  height,
		surface: r2.RectFromCenterSize(r2.Point{}, r2.Point{X: width, Y: height}),
		boats:   make([]*Boat, 0),
	}, nil
}

func (l *Lake) GetWidth() float64  { return l.width }
func (l *Lake) GetHeight() float64 { return l.height }

// GetBoats returns the boats in simulation order. Sunk boats come first.
func (l *Lake) GetBoats() []*Boat {
	boats := make([]*Boat, len(l.boats))
	copy(boats, l.boats)
	return boats
}

// GetStepSize returns the longest sub-step RunTime uses: the time the fastest boat
// needs to cover the radius of the smallest one. ok is false while the lake is empty.
func (l *Lake) GetStepSize() (step float64, ok bool) {
	if !l.hasExtremes {
		return 0, false
	}
	return l.minRadius / l.maxSpeed, true
}

// AddBoat places boat at position heading along direction and appends it to the
// sequence. On error neither the lake nor the boat are modified.
func (l *Lake) AddBoat(boat *Boat, position common.Point, direction common.Vector) error {
	if boat.placed {
		return fmt.Errorf("boat %q: %w", boat.name, ErrBoatAlreadyPlaced)
	}
	if _, err := direction.Unit(); err != nil {
		return fmt.Errorf("boat %q direction: %w", boat.name, err)
	}
	if boat.ContainerWidth() > l.width || boat.ContainerHeight() > l.height {
		return fmt.Errorf("boat %q (radius %v) in %vx%v lake: %w", boat.name, boat.radius, l.width, l.height, ErrBoatTooLarge)
	}

	boat.SetPosition(position)
	if err := boat.SetDirection(direction); err != nil {
		return err
	}
	boat.placed = true
	l.trackExtremes(boat)

	l.boats = append(l.boats, boat)
	l.emit(Event{Kind: EventBoatAdded, Boat: boat})
	l.checkBoatLocation(boat)
	l.checkPreviousBoatsCollision(len(l.boats) - 1)
	return nil
}

func (l *Lake) trackExtremes(boat *Boat) {
	if !l.hasExtremes || boat.radius < l.minRadius {
		l.minRadius = boat.radius
	}
	if !l.hasExtremes || boat.maxSpeed > l.maxSpeed {
		l.maxSpeed = boat.maxSpeed
	}
	l.hasExtremes = true
}

// RunTime advances the simulation by delta seconds. The interval is split into steps
// no longer than GetStepSize so no boat can skip over another within one step.
func (l *Lake) RunTime(delta float64) error {
	if !(delta >= 0) || math.IsInf(delta, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, delta)
	}
	if len(l.boats) == 0 {
		return nil
	}

	step, _ := l.GetStepSize()
	steps := math.Floor(delta / step)
	if steps >= math.MaxInt64 {
		return fmt.Errorf("%w: %v is too long for steps of %v", ErrInvalidDelta, delta, step)
	}
	times := int(steps)
	remainder := math.Mod(delta, step)
	for i := 0; i < times; i++ {
		l.tick(step)
	}
	if remainder > 0 {
		l.tick(remainder)
	}

	l.sinkBoats()
	for _, boat := range l.boats {
		l.checkBoatLocation(boat)
	}
	return nil
}

// tick moves every boat by dt in sequence order, checking each one against the boats
// already moved in this tick. The sequence is not reordered here.
func (l *Lake) tick(dt float64) {
	for i, boat := range l.boats {
		boat.move(dt)
		if !boat.IsSunk() {
			l.checkPreviousBoatsCollision(i)
		}
	}
}

// HasMovement reports whether any boat is still Moving.
func (l *Lake) HasMovement() bool {
	for _, b := range l.boats {
		if b.IsMoving() {
			return true
		}
	}
	return false
}

// IsInside reports whether p lies strictly inside the lake. Boat size is not considered.
func (l *Lake) IsInside(p common.Point) bool {
	return l.surface.InteriorContainsPoint(p.R2())
}

// checkBoatLocation sticks a moving boat whose bounding square crosses the shore and
// shifts it back so it rests against the edge.
func (l *Lake) checkBoatLocation(boat *Boat) {
	if !boat.IsMoving() {
		return
	}
	lo, hi := l.surface.Lo(), l.surface.Hi()
	crossed := false
	if boat.MinX() < lo.X {
		boat.SetPosition(boat.position.AddX(lo.X - boat.MinX()))
		crossed = true
	} else if boat.MaxX() > hi.X {
		boat.SetPosition(boat.position.AddX(hi.X - boat.MaxX()))
		crossed = true
	}
	if boat.MinY() < lo.Y {
		boat.SetPosition(boat.position.AddY(lo.Y - boat.MinY()))
		crossed = true
	} else if boat.MaxY() > hi.Y {
		boat.SetPosition(boat.position.AddY(hi.Y - boat.MaxY()))
		crossed = true
	}
	if crossed && boat.stuck() {
		l.emit(Event{Kind: EventStuck, Boat: boat})
	}
}

// checkPreviousBoatsCollision resolves the first collision between the boat at index i
// and the boats before it. Both boats are queued for sinking and pulled apart so their
// hulls overlap by 2 units, which keeps the contact visible once drawn on a pixel grid.
func (l *Lake) checkPreviousBoatsCollision(i int) {
	boat := l.boats[i]
	for _, other := range l.boats[:i] {
		if other.IsSunk() || (!boat.IsMoving() && !other.IsMoving()) {
			continue
		}
		if !boat.HasIntersection(other) {
			continue
		}
		l.sinking = append(l.sinking, boat, other)
		l.emit(Event{Kind: EventCollision, Boat: boat, Other: other})

		distanceAfterCrash := boat.radius + other.radius - 2
		if boat.IsMoving() {
			boat.SetPosition(separate(other, boat, distanceAfterCrash))
		} else {
			other.SetPosition(separate(boat, other, distanceAfterCrash))
		}
		return
	}
}

// separate returns the position of b at distance from anchor, on the line from the
// anchor center through the center of b. Coincident centers fall back to the reverse
// of b's heading.
func separate(anchor, b *Boat, distance float64) common.Point {
	axis, err := b.position.Subtract(anchor.position).Unit()
	if err != nil {
		axis = b.direction.MultiplyByScalar(-1)
	}
	return anchor.position.Add(axis.MultiplyByScalar(distance))
}

// sinkBoats drains the sink queue in order, moving each boat to the front of the
// sequence before sinking it. Duplicated entries are moved again.
func (l *Lake) sinkBoats() {
	for len(l.sinking) > 0 {
		boat := l.sinking[0]
		l.sinking = l.sinking[1:]
		l.moveToFront(boat)
		if boat.sunk() {
			l.emit(Event{Kind: EventSunk, Boat: boat})
		}
	}
	l.sinking = nil
}

func (l *Lake) moveToFront(boat *Boat) {
	for i, b := range l.boats {
		if b == boat {
			copy(l.boats[1:i+1], l.boats[:i])
			l.boats[0] = boat
			return
		}
	}
}
