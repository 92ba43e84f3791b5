package simulation

import (
	"fmt"
	"math"

	"lake-sim/internal/common"

	"github.com/google/uuid"
)

// State is the lifecycle tag of a boat. Stuck and Sunk are terminal.
type State int

const (
	Moving State = iota
	Stuck
	Sunk
)

func (s State) String() string {
	switch s {
	case Moving:
		return "Moving"
	case Stuck:
		return "Stuck"
	case Sunk:
		return "Sunk"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name for JSON snapshots.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Boat is a circular vessel moving in a straight line under constant acceleration
// until it reaches its maximum speed.
type Boat struct {
	id    string
	name  string
	state State

	position        common.Point
	initialPosition *common.Point // first position ever assigned; nil until then
	direction       common.Vector // always unit length once set
	hasDirection    bool
	speed           float64

	radius       float64
	maxSpeed     float64
	acceleration float64

	placed bool // owned by a lake
}

// NewBoat creates a Moving boat without position or direction.
func NewBoat(name string, radius, initialSpeed, maxSpeed, acceleration float64) (*Boat, error) {
	b := &Boat{
		id:           fmt.Sprintf("boat-%s", uuid.NewString()[:8]),
		name:         name,
		state:        Moving,
		speed:        initialSpeed,
		radius:       radius,
		maxSpeed:     maxSpeed,
		acceleration: acceleration,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Boat) validate() error {
	switch {
	case !(b.speed <= b.maxSpeed):
		return &ValidationError{Kind: ErrInvalidSpeed, Reason: "initialSpeed cannot be > maxSpeed"}
	case !(b.speed >= 0):
		return &ValidationError{Kind: ErrInvalidSpeed, Reason: "speed must be >= 0"}
	case !(b.acceleration >= 0):
		return &ValidationError{Kind: ErrInvalidAcceleration, Reason: "acceleration must be >= 0"}
	case !(b.radius >= 1):
		return &ValidationError{Kind: ErrInvalidRadius, Reason: "radius must be >= 1"}
	}
	return nil
}

// stuck stops a moving boat against the shore. It reports whether the state changed.
func (b *Boat) stuck() bool {
	return b.stop(Stuck)
}

// sunk stops a moving boat after a collision. It reports whether the state changed.
func (b *Boat) sunk() bool {
	return b.stop(Sunk)
}

func (b *Boat) stop(final State) bool {
	if b.state != Moving {
		return false
	}
	b.speed = 0
	b.state = final
	return true
}

func (b *Boat) IsMoving() bool { return b.state == Moving }
func (b *Boat) IsStuck() bool  { return b.state == Stuck }
func (b *Boat) IsSunk() bool   { return b.state == Sunk }

// GetID returns the unique identifier of the boat.
func (b *Boat) GetID() string { return b.id }

func (b *Boat) GetName() string          { return b.name }
func (b *Boat) GetState() State          { return b.state }
func (b *Boat) GetRadius() float64       { return b.radius }
func (b *Boat) GetSpeed() float64        { return b.speed }
func (b *Boat) GetMaxSpeed() float64     { return b.maxSpeed }
func (b *Boat) GetAcceleration() float64 { return b.acceleration }

// GetPosition returns the current center of the boat.
func (b *Boat) GetPosition() (common.Point, error) {
	if b.initialPosition == nil {
		return common.Point{}, ErrPositionNotSet
	}
	return b.position, nil
}

// GetInitialPosition returns the first position the boat was given.
func (b *Boat) GetInitialPosition() (common.Point, error) {
	if b.initialPosition == nil {
		return common.Point{}, ErrPositionNotSet
	}
	return *b.initialPosition, nil
}

// SetPosition moves the boat center to p.
func (b *Boat) SetPosition(p common.Point) {
	b.position = p
	if b.initialPosition == nil {
		initial := p
		b.initialPosition = &initial
	}
}

// GetDirection returns the unit heading of the boat.
func (b *Boat) GetDirection() (common.Vector, error) {
	if !b.hasDirection {
		return common.Vector{}, ErrDirectionNotSet
	}
	return b.direction, nil
}

// SetDirection points the boat along v. The heading is stored normalized.
func (b *Boat) SetDirection(v common.Vector) error {
	u, err := v.Unit()
	if err != nil {
		return fmt.Errorf("boat %q direction: %w", b.name, err)
	}
	b.direction = u
	b.hasDirection = true
	return nil
}

// Move advances the boat by dt seconds.
func (b *Boat) Move(dt float64) error {
	if b.initialPosition == nil {
		return ErrPositionNotSet
	}
	if !b.hasDirection {
		return ErrDirectionNotSet
	}
	b.move(dt)
	return nil
}

// move integrates uniformly accelerated motion that turns into uniform motion once
// maxSpeed is reached. Products are wrapped in float64() so the compiler cannot fuse
// them into multiply-adds; trajectories must be identical on every platform.
func (b *Boat) move(dt float64) {
	if b.state != Moving {
		return
	}
	tmax := math.Inf(1)
	if b.acceleration != 0 {
		tmax = (b.maxSpeed - b.speed) / b.acceleration
	}

	var displacement float64
	if b.speed == b.maxSpeed {
		displacement = float64(b.speed * dt)
	} else if tmax > dt {
		displacement = float64(b.speed*dt) + float64(b.acceleration*float64(dt*dt))/2
		b.speed += float64(b.acceleration * dt)
	} else {
		// max speed is reached inside this tick
		displacement = float64(b.speed*tmax) + float64(b.acceleration*float64(tmax*tmax))/2
		b.speed = b.maxSpeed
		displacement += float64(b.speed * (dt - tmax))
	}
	b.position = b.position.Add(b.direction.MultiplyByScalar(displacement))
}

// HasIntersection reports whether the two hulls overlap. Touching hulls do not.
func (b *Boat) HasIntersection(other *Boat) bool {
	return other.position.Distance(b.position) < b.radius+other.radius
}

// IsInside reports whether p lies within radius+tolerance of the boat center.
func (b *Boat) IsInside(p common.Point, tolerance float64) bool {
	return p.Distance(b.position) < b.radius+tolerance
}

// ContainerWidth and ContainerHeight give the size of the bounding square.
func (b *Boat) ContainerWidth() float64  { return 2 * b.radius }
func (b *Boat) ContainerHeight() float64 { return 2 * b.radius }

// Bounding square edges.
func (b *Boat) MinX() float64 { return b.position.X - b.radius }
func (b *Boat) MaxX() float64 { return b.position.X + b.radius }
func (b *Boat) MinY() float64 { return b.position.Y - b.radius }
func (b *Boat) MaxY() float64 { return b.position.Y + b.radius }

func (b *Boat) String() string {
	return fmt.Sprintf("%s: %s %s", b.name, b.position, b.state)
}
