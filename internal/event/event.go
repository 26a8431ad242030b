// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event: структура события
type Event struct {
	Type EventType
	Data interface{} // Payload, one of the *Info types
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher: диспетчер событий.
//
// Dispatch is synchronous: every listener has run, in subscription order, by
// the time it returns. Economy updates rely on that to land inside the tick
// that caused them.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for each of the given event types.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// SubscribeAll registers listener for every event type. All-listeners run
// after the type-specific ones.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes listener from the given event types, or from
// everything when none are given.
func (d *Dispatcher) Unsubscribe(listener Listener, eventTypes ...EventType) {
	if len(eventTypes) == 0 {
		for t := range d.listeners {
			d.listeners[t] = without(d.listeners[t], listener)
		}
		d.any = without(d.any, listener)
		return
	}
	for _, t := range eventTypes {
		d.listeners[t] = without(d.listeners[t], listener)
	}
}

// Dispatch: отправка события всем подписчикам
func (d *Dispatcher) Dispatch(e Event) {
	// Copies let a listener unsubscribe itself mid-dispatch.
	for _, l := range append([]Listener(nil), d.listeners[e.Type]...) {
		l.OnEvent(e)
	}
	for _, l := range append([]Listener(nil), d.any...) {
		l.OnEvent(e)
	}
}

func without(listeners []Listener, target Listener) []Listener {
	out := listeners[:0]
	for _, l := range listeners {
		if l != target {
			out = append(out, l)
		}
	}
	return out
}
