// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // one of the payload types in types.go, or nil
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc is Subscribe for plain functions. The returned listener can
// be passed to Unsubscribe.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Listener {
	l := &funcListener{fn: fn}
	d.Subscribe(eventType, l)
	return l
}

// funcListener gives function subscribers a comparable identity.
type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(event Event) { l.fn(event) }

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
