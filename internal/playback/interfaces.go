package playback

// Icon is the glyph a preview control displays
type Icon string

const (
	IconPlay  Icon = "▶"
	IconPause Icon = "⏸"
)

// Control is the coordinator's view of a track's play button.
// ID must be stable for the lifetime of the control and unique across controls.
type Control interface {
	ID() string
	SetIcon(icon Icon)
}

// Audio is a single preview stream. The coordinator exclusively owns it.
type Audio interface {
	// Play starts or resumes playback.
	Play()
	// Pause halts playback and keeps the position.
	Pause()
	// Paused reports true before the first Play and after Pause.
	Paused() bool
	// OnEnded registers a one-shot observer for natural end of playback.
	OnEnded(fn func())
	// Close releases the stream. The ended observer must not fire afterwards.
	Close()
}

// AudioFactory creates Audio handles bound to a preview URL
type AudioFactory interface {
	NewAudio(url string) Audio
}
