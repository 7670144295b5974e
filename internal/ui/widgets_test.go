package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/lineup-browser/internal/model"
	"github.com/ytget/lineup-browser/internal/playback"
)

func sampleArtist() *model.Artist {
	return &model.Artist{
		Lineup: model.LineupEntry{Artist: "Tyler, The Creator", Headliner: true, WeekendOne: true, WeekendTwo: true},
		Spotify: model.SpotifyArtist{
			Name:       "Tyler, The Creator",
			URL:        "https://open.spotify.com/artist/a1",
			Genres:     []string{"hip hop", "rap"},
			Popularity: 88,
			Followers:  15000000,
			TopTracks: []model.Track{
				{ID: "t1", Name: "See You Again", URL: "https://open.spotify.com/track/t1", PreviewURL: "https://p.scdn.co/t1"},
				{ID: "t2", Name: "EARFQUAKE", URL: "https://open.spotify.com/track/t2"},
			},
		},
	}
}

func TestPlayButton_Control(t *testing.T) {
	test.NewApp()

	a := NewPlayButton(model.Track{ID: "t1", PreviewURL: "https://p.scdn.co/t1"})
	b := NewPlayButton(model.Track{ID: "t1", PreviewURL: "https://p.scdn.co/t1"})

	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected unique non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
	if a.Icon() != playback.IconPlay || a.button.Text != IconPlay {
		t.Errorf("new button should show %s, got %s", IconPlay, a.button.Text)
	}

	a.SetIcon(playback.IconPause)
	if a.button.Text != IconPause {
		t.Errorf("expected button text %s, got %s", IconPause, a.button.Text)
	}

	if w := a.MinSize().Width; w < PlayButtonWidth {
		t.Errorf("play button should be at least %v wide, got %v", PlayButtonWidth, w)
	}

	var tappedID string
	a.SetOnTapped(func(track model.Track, control *PlayButton) {
		tappedID = control.ID()
		if track.ID != "t1" {
			t.Errorf("expected track t1, got %s", track.ID)
		}
	})
	test.Tap(a)
	if tappedID != a.ID() {
		t.Error("tap should invoke the handler with the button itself")
	}
}

func TestArtistCard_Render(t *testing.T) {
	test.NewApp()
	card := NewArtistCard(sampleArtist(), NewLocalization())

	if !strings.HasPrefix(card.nameLink.Text, IconHeadliner) {
		t.Errorf("headliner name should carry %s, got %q", IconHeadliner, card.nameLink.Text)
	}
	if card.nameLink.URL == nil || card.nameLink.URL.String() != "https://open.spotify.com/artist/a1" {
		t.Error("artist name should link to the Spotify page")
	}
	if card.spotifyLabel.Visible() {
		t.Error("Spotify name matching the lineup name should be hidden")
	}
	if card.followersLabel.Text != "15,000,000 followers" {
		t.Errorf("unexpected followers text %q", card.followersLabel.Text)
	}
	if card.popularityBg.FillColor != PopularityGreen {
		t.Error("popularity 88 should use the green badge")
	}
	if len(card.badges.Objects) != 2 {
		t.Errorf("expected W1 and W2 badges, got %d", len(card.badges.Objects))
	}
	if len(card.TrackRows()) != 2 {
		t.Fatalf("expected 2 track rows, got %d", len(card.TrackRows()))
	}
	if card.Expanded() || card.tracksBox.Visible() {
		t.Error("tracks should start collapsed")
	}
}

func TestArtistCard_SpotifyNameShownWhenDifferent(t *testing.T) {
	test.NewApp()
	artist := sampleArtist()
	artist.Lineup.Artist = "Tyler"

	card := NewArtistCard(artist, NewLocalization())
	if !card.spotifyLabel.Visible() || card.spotifyLabel.Text != "Tyler, The Creator" {
		t.Errorf("expected Spotify name label, got visible=%v text=%q", card.spotifyLabel.Visible(), card.spotifyLabel.Text)
	}
}

func TestArtistCard_ToggleWithoutHandler(t *testing.T) {
	test.NewApp()
	card := NewArtistCard(sampleArtist(), NewLocalization())

	test.Tap(card.toggleBtn)
	if !card.Expanded() || !card.tracksBox.Visible() {
		t.Error("toggle should expand the track list")
	}
	if !strings.HasPrefix(card.toggleBtn.Text, "Hide Top Tracks") {
		t.Errorf("unexpected toggle text %q", card.toggleBtn.Text)
	}

	test.Tap(card.toggleBtn)
	if card.Expanded() || card.tracksBox.Visible() {
		t.Error("second toggle should collapse the track list")
	}
}

func TestArtistCard_NilArtist(t *testing.T) {
	test.NewApp()
	card := NewArtistCard(nil, NewLocalization())

	if card.Artist() == nil {
		t.Fatal("nil artist should be replaced with an empty record")
	}
	if len(card.TrackRows()) != 0 {
		t.Error("empty artist should have no track rows")
	}
}

func TestTrackRow_NoPreviewLabel(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	row := NewTrackRow(model.Track{ID: "t2", Name: "EARFQUAKE", Artists: []model.TrackArtist{{Name: "Tyler"}}}, l)
	if !strings.Contains(row.creditsLabel.Text, l.GetText(KeyNoPreview)) {
		t.Errorf("track without preview should say so, got %q", row.creditsLabel.Text)
	}

	row = NewTrackRow(model.Track{ID: "t1", Name: "See You Again", PreviewURL: "https://p.scdn.co/t1"}, l)
	if strings.Contains(row.creditsLabel.Text, l.GetText(KeyNoPreview)) {
		t.Error("track with preview should not show the no-preview note")
	}
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeyBrokenLink) != "broken link" {
		t.Errorf("unexpected English text %q", l.GetText(KeyBrokenLink))
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("expected ru, got %s", l.GetCurrentLanguage())
	}
	if l.FilterLabel(model.FilterAll) != "Все" {
		t.Errorf("unexpected Russian filter label %q", l.FilterLabel(model.FilterAll))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Error("unknown language should be ignored")
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Error("system language should resolve to en")
	}

	if l.GetText("missing_key") != "missing_key" {
		t.Error("missing key should fall back to the key itself")
	}
}
