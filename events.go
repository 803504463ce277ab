package sketch

// EventKind identifies the type of an Event.
type EventKind uint8

const (
	// EventPathsUpdate reports a change of the stroke collection.
	EventPathsUpdate EventKind = iota + 1

	// EventSaveResult reports the outcome of Canvas.Save.
	EventSaveResult
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPathsUpdate:
		return "pathsUpdate"
	case EventSaveResult:
		return "saveResult"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a Canvas.
type Event struct {
	Kind EventKind

	// Count is the number of strokes, set for EventPathsUpdate.
	Count int

	// Success and Path are set for EventSaveResult. Path is empty when
	// the save failed.
	Success bool
	Path    string
}

// PathsUpdate returns an EventPathsUpdate event.
func PathsUpdate(count int) Event {
	return Event{Kind: EventPathsUpdate, Count: count}
}

// SaveResult returns an EventSaveResult event.
func SaveResult(success bool, path string) Event {
	return Event{Kind: EventSaveResult, Success: success, Path: path}
}

// Payload returns the event body as a generic map, the shape hosts
// forward to script bridges.
func (e Event) Payload() map[string]any {
	switch e.Kind {
	case EventPathsUpdate:
		return map[string]any{"pathsUpdate": e.Count}
	case EventSaveResult:
		p := map[string]any{"success": e.Success}
		if e.Success {
			p["path"] = e.Path
		}
		return p
	default:
		return map[string]any{}
	}
}

// Notifier receives canvas events. Notify is called synchronously from the
// goroutine mutating the canvas and must not call back into it.
type Notifier interface {
	Notify(e Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(e Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// EventQueue is a bounded Notifier that buffers events for a consumer on
// another goroutine. When the buffer is full new events are dropped and a
// warning is logged; the canvas never blocks on delivery.
type EventQueue struct {
	ch chan Event
}

// NewEventQueue creates a queue holding up to size pending events.
func NewEventQueue(size int) *EventQueue {
	return &EventQueue{ch: make(chan Event, max(size, 1))}
}

// Notify enqueues e or drops it when the queue is full.
func (q *EventQueue) Notify(e Event) {
	select {
	case q.ch <- e:
	default:
		Logger().Warn("sketch: event queue full, dropping event", "kind", e.Kind.String())
	}
}

// Events returns the channel delivering queued events.
func (q *EventQueue) Events() <-chan Event {
	return q.ch
}

// Drain returns all currently queued events without blocking.
func (q *EventQueue) Drain() []Event {
	var out []Event
	for {
		select {
		case e := <-q.ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}
