package model

import (
	"strings"
)

// NoPreviewSentinel is the literal some lineup exports carry instead of a
// missing preview URL
const NoPreviewSentinel = "null"

// Popularity tier thresholds (Spotify popularity, 0-100)
const (
	PopularityHighThreshold   = 70
	PopularityMediumThreshold = 50
	PopularityLowThreshold    = 30
)

// PopularityTier buckets an artist's popularity for display
type PopularityTier string

const (
	PopularityTierHigh   PopularityTier = "green"
	PopularityTierMedium PopularityTier = "yellow"
	PopularityTierLow    PopularityTier = "orange"
	PopularityTierNiche  PopularityTier = "red"
)

// LineupEntry holds the festival-side facts about an artist
type LineupEntry struct {
	Artist     string `json:"artist"`
	Headliner  bool   `json:"headliner"`
	WeekendOne bool   `json:"weekend_one"`
	WeekendTwo bool   `json:"weekend_two"`
}

// TrackArtist is a credited artist on a track
type TrackArtist struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Track represents one of an artist's top tracks
type Track struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	URL        string        `json:"url"`
	PreviewURL string        `json:"preview_url"` // empty when the export has null
	Artists    []TrackArtist `json:"artists,omitempty"`
	Popularity int           `json:"popularity,omitempty"`
}

// SpotifyArtist holds the streaming-side metadata linked to a lineup entry
type SpotifyArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
	Followers  int64    `json:"followers"`
	TopTracks  []Track  `json:"top_tracks"`
}

// Artist is a single record of the lineup feed
type Artist struct {
	Lineup  LineupEntry   `json:"lineup"`
	Spotify SpotifyArtist `json:"spotify"`
}

// HasPreview reports whether the track carries a playable preview URL
func (t *Track) HasPreview() bool {
	return IsPlayableURL(t.PreviewURL)
}

// IsPlayableURL rejects empty URLs and the "null" sentinel
func IsPlayableURL(url string) bool {
	url = strings.TrimSpace(url)
	return url != "" && url != NoPreviewSentinel
}

// GetDisplayName returns the lineup name, falling back to the Spotify name
func (a *Artist) GetDisplayName() string {
	if name := strings.TrimSpace(a.Lineup.Artist); name != "" {
		return name
	}
	return strings.TrimSpace(a.Spotify.Name)
}

// PrimaryGenre returns the first listed genre or an empty string
func (a *Artist) PrimaryGenre() string {
	if len(a.Spotify.Genres) == 0 {
		return ""
	}
	return a.Spotify.Genres[0]
}

// GetPopularityTier classifies Spotify popularity into display tiers
func (a *Artist) GetPopularityTier() PopularityTier {
	switch p := a.Spotify.Popularity; {
	case p > PopularityHighThreshold:
		return PopularityTierHigh
	case p > PopularityMediumThreshold:
		return PopularityTierMedium
	case p > PopularityLowThreshold:
		return PopularityTierLow
	default:
		return PopularityTierNiche
	}
}

// PlayableTracks returns the top tracks that have a preview URL
func (a *Artist) PlayableTracks() []Track {
	var playable []Track
	for _, track := range a.Spotify.TopTracks {
		if track.HasPreview() {
			playable = append(playable, track)
		}
	}
	return playable
}

// Normalize fills nil slices so the rendering layer never has to nil-check
func (a *Artist) Normalize() {
	if a.Spotify.Genres == nil {
		a.Spotify.Genres = []string{}
	}
	if a.Spotify.TopTracks == nil {
		a.Spotify.TopTracks = []Track{}
	}
}
