// internal/event/event.go
package event

// EventType names a kind of notification.
type EventType string

// Event carries a notification and its optional payload. Payload types are
// documented next to each EventType constant in types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher is the in-process publish/subscribe boundary between the core
// systems and their collaborators. Listeners are notified synchronously, in
// registration order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for the given event type. The same listener
// may subscribe to any number of types.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes a listener from the given event type. Collaborators
// must unsubscribe on teardown so the dispatcher does not hold them alive.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch delivers the event to every subscriber of its type. The listener
// slice is snapshotted first so a listener may unsubscribe itself (or others)
// while being notified.
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners[event.Type]
	if !exists {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
