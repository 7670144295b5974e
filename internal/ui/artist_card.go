package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lineup-browser/internal/model"
)

// ArtistCard renders one lineup entry with its collapsible top tracks
type ArtistCard struct {
	widget.BaseWidget

	artist       *model.Artist
	localization *Localization
	expanded     bool

	// UI components
	nameLink       *widget.Hyperlink
	spotifyLabel   *widget.Label
	popularityText *canvas.Text
	popularityBg   *canvas.Rectangle
	followersLabel *widget.Label
	badges         *fyne.Container
	genres         *fyne.Container
	toggleBtn      *widget.Button
	tracksBox      *fyne.Container
	trackRows      []*TrackRow

	// Callbacks
	onToggleTracks func(card *ArtistCard)
}

// NewArtistCard creates a card for artist; tracks start collapsed
func NewArtistCard(artist *model.Artist, localization *Localization) *ArtistCard {
	if artist == nil {
		log.Printf("Warning: NewArtistCard called with nil artist")
		artist = &model.Artist{}
	}
	artist.Normalize()

	ac := &ArtistCard{
		artist:       artist,
		localization: localization,
	}
	ac.ExtendBaseWidget(ac)
	ac.createUI()
	return ac
}

// SetCallbacks sets the show/hide and play handlers
func (ac *ArtistCard) SetCallbacks(
	onToggleTracks func(card *ArtistCard),
	onPlay func(track model.Track, control *PlayButton),
) {
	if onToggleTracks == nil {
		log.Printf("Warning: onToggleTracks callback is nil for artist %s", ac.artist.GetDisplayName())
	}
	ac.onToggleTracks = onToggleTracks
	for _, row := range ac.trackRows {
		row.SetCallbacks(onPlay)
	}
}

// Artist returns the artist shown by the card
func (ac *ArtistCard) Artist() *model.Artist {
	return ac.artist
}

// TrackRows returns the card's track rows in feed order
func (ac *ArtistCard) TrackRows() []*TrackRow {
	return ac.trackRows
}

// Expanded reports whether the track list is visible
func (ac *ArtistCard) Expanded() bool {
	return ac.expanded
}

// SetExpanded shows or hides the track list
func (ac *ArtistCard) SetExpanded(expanded bool) {
	if ac.expanded == expanded {
		return
	}
	ac.expanded = expanded
	ac.updateToggle()
	if expanded {
		ac.tracksBox.Show()
	} else {
		ac.tracksBox.Hide()
	}
	ac.Refresh()
}

// RefreshTexts re-applies localized labels
func (ac *ArtistCard) RefreshTexts() {
	ac.followersLabel.SetText(ac.followersText())
	ac.updateToggle()
}

// createUI creates the UI components
func (ac *ArtistCard) createUI() {
	a := ac.artist

	name := cleanText(a.GetDisplayName())
	if a.Lineup.Headliner {
		name = IconHeadliner + " " + name
	}
	ac.nameLink = widget.NewHyperlink(name, parseLink(a.Spotify.URL))
	ac.nameLink.TextStyle = fyne.TextStyle{Bold: a.Lineup.Headliner}

	// the Spotify name is shown only when it differs from the lineup name
	ac.spotifyLabel = widget.NewLabel("")
	ac.spotifyLabel.TextStyle = fyne.TextStyle{Italic: true}
	if spotifyName := cleanText(a.Spotify.Name); spotifyName != "" && spotifyName != cleanText(a.Lineup.Artist) {
		ac.spotifyLabel.SetText(spotifyName)
	} else {
		ac.spotifyLabel.Hide()
	}

	ac.popularityBg = canvas.NewRectangle(PopularityColor(a.GetPopularityTier()))
	ac.popularityBg.CornerRadius = 4
	ac.popularityBg.SetMinSize(fyne.NewSize(BadgeMinWidth, BadgeMinHeight))
	ac.popularityText = canvas.NewText(fmt.Sprintf(PopularityFormat, a.Spotify.Popularity), PopularityForeground)
	ac.popularityText.Alignment = fyne.TextAlignCenter
	ac.popularityText.TextStyle = fyne.TextStyle{Bold: true}

	ac.followersLabel = widget.NewLabel(ac.followersText())

	ac.badges = container.NewHBox()
	for _, badge := range weekendBadges(a) {
		label := widget.NewLabel(badge)
		label.Importance = widget.HighImportance
		label.TextStyle = fyne.TextStyle{Bold: true}
		ac.badges.Add(label)
	}

	ac.genres = container.NewHBox()
	for i, genre := range a.Spotify.Genres {
		if i >= GenreChipMaxCount {
			break
		}
		chip := widget.NewLabel(cleanText(genre))
		chip.Importance = widget.LowImportance
		ac.genres.Add(chip)
	}

	ac.toggleBtn = widget.NewButton("", func() {
		if ac.onToggleTracks != nil {
			ac.onToggleTracks(ac)
			return
		}
		ac.SetExpanded(!ac.expanded)
	})
	ac.toggleBtn.Importance = widget.LowImportance
	ac.updateToggle()

	ac.tracksBox = container.NewVBox()
	for _, track := range a.Spotify.TopTracks {
		row := NewTrackRow(track, ac.localization)
		ac.trackRows = append(ac.trackRows, row)
		ac.tracksBox.Add(row)
	}
	if len(ac.trackRows) == 0 {
		ac.tracksBox.Add(widget.NewLabel(ac.localization.GetText(KeyNoTracks)))
	}
	ac.tracksBox.Hide()
}

func (ac *ArtistCard) followersText() string {
	return formatFollowers(ac.artist.Spotify.Followers, ac.localization.Tag()) + " " + ac.localization.GetText(KeyFollowers)
}

func (ac *ArtistCard) updateToggle() {
	if ac.expanded {
		ac.toggleBtn.SetText(ac.localization.GetText(KeyHideTracks) + " " + IconCollapse)
	} else {
		ac.toggleBtn.SetText(ac.localization.GetText(KeyShowTracks) + " " + IconExpand)
	}
}

// CreateRenderer creates the widget renderer
func (ac *ArtistCard) CreateRenderer() fyne.WidgetRenderer {
	popularity := container.NewStack(ac.popularityBg, container.NewCenter(ac.popularityText))

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(ac.badges, popularity),
		container.NewVBox(ac.nameLink, ac.spotifyLabel),
	)
	meta := container.NewHBox(ac.followersLabel, ac.genres)

	body := container.NewVBox(
		header,
		meta,
		container.NewHBox(ac.toggleBtn),
		ac.tracksBox,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(body)
}

// MinSize keeps cards from collapsing narrower than their header
func (ac *ArtistCard) MinSize() fyne.Size {
	size := ac.BaseWidget.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	return size
}
