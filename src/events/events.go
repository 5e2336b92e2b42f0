package events

// names of the host events a knob listens to
const (
	PointerDown = "pointerdown"
	PointerMove = "pointermove"
	PointerUp   = "pointerup"
	Resize      = "resize"
)

// Event is dispatched on a Target and, when Bubbles is set, on each of its
// ancestors in turn
type Event struct {
	Name       string
	Value      int
	Bubbles    bool
	Cancelable bool
	// pointer position in page coordinates, zero for other events
	X, Y float64

	target           *Target
	current          *Target
	defaultPrevented bool
	stopped          bool
}

func (e *Event) Target() *Target {
	return e.target
}

func (e *Event) CurrentTarget() *Target {
	return e.current
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

func (e *Event) StopPropagation() {
	e.stopped = true
}

type Handler func(e *Event)

type listener struct {
	id int
	h  Handler
}

// Target is a node that events are dispatched on. Targets form a tree
// through SetParent (surface -> panel -> window).
type Target struct {
	name      string
	parent    *Target
	nextID    int
	listeners map[string][]listener
}

func NewTarget(name string) *Target {
	return &Target{name: name, listeners: make(map[string][]listener)}
}

func (t *Target) Name() string {
	return t.name
}

func (t *Target) Parent() *Target {
	return t.parent
}

func (t *Target) SetParent(p *Target) {
	t.parent = p
}

// AddListener subscribes h to events called name and returns the unsubscribe func
func (t *Target) AddListener(name string, h Handler) func() {
	t.nextID++
	id := t.nextID
	t.listeners[name] = append(t.listeners[name], listener{id: id, h: h})
	return func() {
		ls := t.listeners[name]
		for i, l := range ls {
			if l.id == id {
				t.listeners[name] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (t *Target) ListenerCount(name string) int {
	return len(t.listeners[name])
}

// Dispatch delivers e to t and, for bubbling events, up the parent chain.
// It returns false when a handler canceled the event.
func (t *Target) Dispatch(e *Event) bool {
	e.target = t
	for cur := t; cur != nil; cur = cur.parent {
		e.current = cur
		// copy, handlers may unsubscribe while running
		ls := append([]listener(nil), cur.listeners[e.Name]...)
		for _, l := range ls {
			l.h(e)
		}
		if e.stopped || !e.Bubbles {
			break
		}
	}
	e.current = nil
	return !e.defaultPrevented
}
