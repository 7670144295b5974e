package playback

import (
	"errors"
	"log"

	"github.com/ytget/lineup-browser/internal/model"
)

// ErrBrokenLink is returned when a control is toggled without a playable preview
var ErrBrokenLink = errors.New("broken link")

// ErrNilControl is returned when Toggle is called without a control
var ErrNilControl = errors.New("playback: nil control")

// Coordinator keeps a single "currently playing" slot shared by all controls
type Coordinator struct {
	factory AudioFactory

	activeAudio   Audio   // owned
	activeControl Control // back-reference, not owned
}

// NewCoordinator creates an idle coordinator that builds handles with factory
func NewCoordinator(factory AudioFactory) *Coordinator {
	return &Coordinator{factory: factory}
}

// Toggle handles a user activating control's play button.
//
// A playing handle is always paused first. If control is the one bound to the
// paused handle it is resumed; otherwise the old handle is discarded and a new
// one is started for previewURL. Invalid URLs return ErrBrokenLink and leave
// the state untouched.
func (c *Coordinator) Toggle(previewURL string, control Control) error {
	if control == nil {
		return ErrNilControl
	}
	if !model.IsPlayableURL(previewURL) {
		log.Printf("Playback: control %s has no playable preview (%q)", control.ID(), previewURL)
		return ErrBrokenLink
	}

	if c.activeAudio != nil {
		if !c.activeAudio.Paused() {
			c.activeAudio.Pause()
			c.activeControl.SetIcon(IconPlay)
			log.Printf("Playback: paused control %s", c.activeControl.ID())
		} else if c.isActive(control) {
			c.activeAudio.Play()
			c.activeControl.SetIcon(IconPause)
			log.Printf("Playback: resumed control %s", control.ID())
		}
	}

	if c.activeAudio == nil || !c.isActive(control) {
		c.start(previewURL, control)
	}
	return nil
}

// Stop pauses and discards the bound handle, returning to idle.
// It is used when the controls are about to be torn down.
func (c *Coordinator) Stop() {
	if c.activeAudio == nil {
		return
	}

	audio, control := c.activeAudio, c.activeControl
	c.activeAudio, c.activeControl = nil, nil

	if !audio.Paused() {
		audio.Pause()
	}
	audio.Close()
	control.SetIcon(IconPlay)
	log.Printf("Playback: stopped control %s", control.ID())
}

// Snapshot returns the current state and the bound control's ID
func (c *Coordinator) Snapshot() Snapshot {
	if c.activeAudio == nil {
		return Snapshot{State: StateIdle}
	}
	state := StatePlaying
	if c.activeAudio.Paused() {
		state = StatePaused
	}
	return Snapshot{State: state, ControlID: c.activeControl.ID()}
}

// IsPlaying reports whether controlID is the control currently playing
func (c *Coordinator) IsPlaying(controlID string) bool {
	s := c.Snapshot()
	return s.State == StatePlaying && s.ControlID == controlID
}

func (c *Coordinator) isActive(control Control) bool {
	return c.activeControl != nil && c.activeControl.ID() == control.ID()
}

// start binds a fresh handle to control. State is recorded before Play so an
// ended notification delivered synchronously still finds its handle active.
func (c *Coordinator) start(previewURL string, control Control) {
	if c.activeAudio != nil {
		c.activeAudio.Close()
	}

	audio := c.factory.NewAudio(previewURL)
	audio.OnEnded(func() { c.finished(audio) })

	c.activeAudio, c.activeControl = audio, control
	control.SetIcon(IconPause)
	audio.Play()

	log.Printf("Playback: started control %s (%s)", control.ID(), previewURL)
}

// finished runs when a handle reaches its natural end
func (c *Coordinator) finished(audio Audio) {
	if c.activeAudio != audio {
		// superseded handle; its control was already reset
		return
	}

	control := c.activeControl
	c.activeAudio, c.activeControl = nil, nil

	audio.Close()
	control.SetIcon(IconPlay)
	log.Printf("Playback: control %s finished", control.ID())
}
