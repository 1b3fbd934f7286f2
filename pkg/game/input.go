package game

// Key identifies a key the controller reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyQ:       "Q",
	KeyE:       "E",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyEscape:  "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return keyNames[KeyUnknown]
}

// InputState is the set of keys currently held down
type InputState struct {
	held map[Key]struct{}
}

// NewInputState creates an empty input state
func NewInputState() *InputState {
	return &InputState{held: make(map[Key]struct{})}
}

// Press marks key as held
func (s *InputState) Press(key Key) {
	s.held[key] = struct{}{}
}

// Release marks key as no longer held
func (s *InputState) Release(key Key) {
	delete(s.held, key)
}

// Held reports whether key is down
func (s *InputState) Held(key Key) bool {
	_, ok := s.held[key]
	return ok
}

// Clear releases every key
func (s *InputState) Clear() {
	clear(s.held)
}

// Len returns the number of held keys
func (s *InputState) Len() int {
	return len(s.held)
}

// EventType tells which fields of an Event are meaningful
type EventType int

const (
	EventKeyPress EventType = iota
	EventKeyRelease
	EventMousePress
	EventMouseRelease
	EventMouseMove
	EventFocus
	EventBlur
	EventResize
)

// Event is a toolkit-independent input event
type Event struct {
	Type EventType

	// Key events
	Key Key

	// Mouse events, in window coordinates with Y growing downward
	X, Y float64

	// Resize events, in framebuffer pixels
	Width, Height int
}

// KeyPress builds a key press event. Auto-repeat is reported as further presses.
func KeyPress(key Key) Event {
	return Event{Type: EventKeyPress, Key: key}
}

// KeyRelease builds a key release event
func KeyRelease(key Key) Event {
	return Event{Type: EventKeyRelease, Key: key}
}

// MousePress builds a mouse button press event at (x, y)
func MousePress(x, y float64) Event {
	return Event{Type: EventMousePress, X: x, Y: y}
}

// MouseRelease builds a mouse button release event at (x, y)
func MouseRelease(x, y float64) Event {
	return Event{Type: EventMouseRelease, X: x, Y: y}
}

// MouseMove builds a pointer motion event
func MouseMove(x, y float64) Event {
	return Event{Type: EventMouseMove, X: x, Y: y}
}

// Focus builds a focus-gained event
func Focus() Event {
	return Event{Type: EventFocus}
}

// Blur builds a focus-lost event
func Blur() Event {
	return Event{Type: EventBlur}
}

// Resize builds a viewport resize event
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Signal is what the controller asks of the run loop after an event
type Signal int

const (
	SignalNone Signal = iota
	SignalQuit
)
