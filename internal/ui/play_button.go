package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/lineup-browser/internal/model"
	"github.com/ytget/lineup-browser/internal/playback"
)

// PlayButton is the per-track play/pause control. It implements
// playback.Control: the coordinator only sees its ID and drives its icon.
type PlayButton struct {
	widget.BaseWidget

	id     string
	track  model.Track
	icon   playback.Icon
	button *widget.Button

	onTapped func(track model.Track, control *PlayButton)
}

// NewPlayButton creates a play control for track, showing ▶
func NewPlayButton(track model.Track) *PlayButton {
	pb := &PlayButton{
		id:    uuid.NewString(),
		track: track,
		icon:  playback.IconPlay,
	}
	pb.button = widget.NewButton(string(pb.icon), pb.tapped)
	if track.HasPreview() {
		pb.button.Importance = widget.HighImportance
	} else {
		// still tappable so the broken-link notice is shown
		pb.button.Importance = widget.LowImportance
	}
	pb.ExtendBaseWidget(pb)
	return pb
}

// SetOnTapped sets the tap handler
func (pb *PlayButton) SetOnTapped(fn func(track model.Track, control *PlayButton)) {
	pb.onTapped = fn
}

// ID implements playback.Control
func (pb *PlayButton) ID() string {
	return pb.id
}

// SetIcon implements playback.Control
func (pb *PlayButton) SetIcon(icon playback.Icon) {
	if pb.icon == icon {
		return
	}
	pb.icon = icon
	pb.button.SetText(string(icon))
}

// Icon returns the glyph currently shown
func (pb *PlayButton) Icon() playback.Icon {
	return pb.icon
}

// Tapped lets tests and keyboard shortcuts press the button
func (pb *PlayButton) Tapped(_ *fyne.PointEvent) {
	pb.tapped()
}

func (pb *PlayButton) tapped() {
	if pb.onTapped == nil {
		log.Printf("PlayButton %s tapped with no handler", pb.id)
		return
	}
	pb.onTapped(pb.track, pb)
}

// MinSize keeps every play control at least PlayButtonWidth wide so ▶ and ⏸
// rows line up
func (pb *PlayButton) MinSize() fyne.Size {
	size := pb.BaseWidget.MinSize()
	if size.Width < PlayButtonWidth {
		size.Width = PlayButtonWidth
	}
	return size
}

// CreateRenderer creates the widget renderer
func (pb *PlayButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pb.button)
}
