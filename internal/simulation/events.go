package simulation

// EventKind identifies what happened on the lake.
type EventKind string

const (
	EventBoatAdded EventKind = "boat-added"
	EventCollision EventKind = "collision"
	EventStuck     EventKind = "stuck"
	EventSunk      EventKind = "sunk"
)

// Event describes a state change of one boat. Other is set for collisions only.
type Event struct {
	Kind  EventKind
	Boat  *Boat
	Other *Boat
}

// EventHandler receives lake events synchronously, inside the call that caused them.
// Handlers must not mutate the lake.
type EventHandler func(e Event)

type eventEmitter struct {
	handlers map[EventKind][]EventHandler
}

// On registers handler for events of the given kind.
func (e *eventEmitter) On(kind EventKind, handler EventHandler) {
	if e.handlers == nil {
		e.handlers = make(map[EventKind][]EventHandler)
	}
	e.handlers[kind] = append(e.handlers[kind], handler)
}

func (e *eventEmitter) emit(ev Event) {
	for _, h := range e.handlers[ev.Kind] {
		h(ev)
	}
}
