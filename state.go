package armed

// State reports where a [Slot] is in its lifecycle.
type State uint8

const (
	// Alive is the sole initial state: the slot holds its value and both
	// terminal operations are still available.
	Alive State = iota

	// Terminated means a terminal operation — [Slot.Close] or [Slot.Defuse]
	// — has run. The slot is logically empty; accessing it panics.
	Terminated
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
