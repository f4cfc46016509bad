package input

// Directional key identifiers recognized by the walk loop. Any other id may be stored
// but nothing reads it.
const (
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
)

// Directions lists the four recognized ids in the order the walk loop checks them.
var Directions = []string{ArrowUp, ArrowDown, ArrowLeft, ArrowRight}

// State maps key identifiers to their latest pressed state. Last write wins; there is no
// buffering of repeated presses. State is written by key events and read by the frame body,
// both on the render goroutine, so it carries no lock.
type State struct {
	keys map[string]bool
}

// New returns a State with the four directional keys released.
func New() *State {
	s := &State{keys: make(map[string]bool, len(Directions))}
	for _, id := range Directions {
		s.keys[id] = false
	}
	return s
}

// SetKey records the latest state for id.
func (s *State) SetKey(id string, pressed bool) {
	s.keys[id] = pressed
}

// IsPressed returns the last recorded state for id, false if never set.
func (s *State) IsPressed(id string) bool {
	return s.keys[id]
}

// AnyPressed reports whether at least one of ids is pressed.
func (s *State) AnyPressed(ids ...string) bool {
	for _, id := range ids {
		if s.keys[id] {
			return true
		}
	}
	return false
}

// Reset releases every key, e.g. when the window loses focus.
func (s *State) Reset() {
	for id := range s.keys {
		s.keys[id] = false
	}
}
