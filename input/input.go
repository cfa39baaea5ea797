// Package input turns window-system callbacks into a polled event stream and
// tracks held keys between frames. It has no dependency on the window system
// itself; core.Window feeds it.
package input

// EventKind identifies the type of an Event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventResize
	EventKeyDown
	EventMouseMotion
	EventScroll
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventMouseMotion:
		return "mouse-motion"
	case EventScroll:
		return "scroll"
	}
	return "unknown"
}

// Event is one entry of the polled event stream. Only the fields relevant to
// Kind are set: Width/Height for EventResize, Key for EventKeyDown, DX/DY for
// EventMouseMotion (screen space, y grows downwards) and DY for EventScroll.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Key    Key
	DX, DY float64
}

// Queue accumulates events between polls. It is not safe for concurrent use;
// window callbacks run on the thread that polls.
type Queue struct {
	events []Event
	spare  []Event

	lastX, lastY float64
	haveCursor   bool
}

func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
		spare:  make([]Event, 0, 16),
	}
}

func (q *Queue) PushQuit() {
	q.events = append(q.events, Event{Kind: EventQuit})
}

func (q *Queue) PushResize(width, height int) {
	q.events = append(q.events, Event{Kind: EventResize, Width: width, Height: height})
}

func (q *Queue) PushKey(key Key) {
	q.events = append(q.events, Event{Kind: EventKeyDown, Key: key})
}

// PushCursor records an absolute cursor position and emits the delta from the
// previous one. The first position after NewQueue or ResetCursor only seeds
// the reference point, so grabbing the cursor does not cause a jump.
func (q *Queue) PushCursor(x, y float64) {
	if !q.haveCursor {
		q.lastX, q.lastY = x, y
		q.haveCursor = true
		return
	}
	dx, dy := x-q.lastX, y-q.lastY
	q.lastX, q.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	q.events = append(q.events, Event{Kind: EventMouseMotion, DX: dx, DY: dy})
}

// ResetCursor forgets the last cursor position.
func (q *Queue) ResetCursor() {
	q.haveCursor = false
}

func (q *Queue) PushScroll(yOffset float64) {
	q.events = append(q.events, Event{Kind: EventScroll, DY: yOffset})
}

// Drain returns the pending events in arrival order and empties the queue.
// The returned slice is reused, so it is only valid until the next Drain.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events, q.spare = q.spare[:0], events
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
