package playback

// State represents the coordinator's playback state.
type State int

const (
	StateIdle    State = iota // No audio handle bound
	StatePlaying              // Bound handle is playing
	StatePaused               // Bound handle is paused and can be resumed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of the coordinator
type Snapshot struct {
	State     State
	ControlID string // empty when idle
}
