// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event is delivered synchronously to every listener of its type.
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. Func listeners are not
// comparable and cannot be passed to Unsubscribe.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers in subscription order.
// It is not safe for concurrent use; the game loop is its only caller.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every type in types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe removes listener from eventType, if present.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to its subscribers.
func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}).
// A nil dispatcher drops the event.
func (d *Dispatcher) Emit(t EventType, data any) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: t, Data: data})
}
