package ui

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lineup-browser/internal/model"
)

// TrackRow represents one top track: play control, linked title and credits
type TrackRow struct {
	widget.BaseWidget

	track        model.Track
	localization *Localization

	// UI components
	playBtn      *PlayButton
	titleLink    *widget.Hyperlink
	creditsLabel *widget.Label
}

// NewTrackRow creates a new track row widget
func NewTrackRow(track model.Track, localization *Localization) *TrackRow {
	tr := &TrackRow{
		track:        track,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetCallbacks sets the play/pause handler
func (tr *TrackRow) SetCallbacks(onPlay func(track model.Track, control *PlayButton)) {
	if onPlay == nil {
		log.Printf("Warning: onPlay callback is nil for track %s", tr.track.ID)
	}
	tr.playBtn.SetOnTapped(onPlay)
}

// PlayButton returns the row's playback control
func (tr *TrackRow) PlayButton() *PlayButton {
	return tr.playBtn
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.playBtn = NewPlayButton(tr.track)

	title := cleanText(tr.track.Name)
	if title == "" {
		title = DashPlaceholder
	}
	tr.titleLink = widget.NewHyperlink(title, parseLink(tr.track.URL))
	tr.titleLink.Truncation = fyne.TextTruncateEllipsis

	credits := trackCredits(tr.track)
	if !tr.track.HasPreview() {
		if credits != "" {
			credits += MiddleDotSeparator
		}
		credits += tr.localization.GetText(KeyNoPreview)
	}
	tr.creditsLabel = widget.NewLabel(credits)
	tr.creditsLabel.TextStyle = fyne.TextStyle{Italic: true}
	tr.creditsLabel.Truncation = fyne.TextTruncateEllipsis
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(tr.titleLink, tr.creditsLabel)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, tr.playBtn, nil, text))
}

// parseLink parses an external URL for a hyperlink; invalid input yields nil
func parseLink(raw string) *url.URL {
	raw = cleanText(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		log.Printf("Ignoring invalid link %q: %v", raw, err)
		return nil
	}
	return u
}
