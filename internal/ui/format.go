package ui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ytget/lineup-browser/internal/model"
)

// formatFollowers renders a follower count with locale grouping separators
func formatFollowers(count int64, tag language.Tag) string {
	if count < 0 {
		count = 0
	}
	return message.NewPrinter(tag).Sprintf("%d", count)
}

// weekendBadges returns the W1/W2 badges an artist carries, in weekend order
func weekendBadges(artist *model.Artist) []string {
	badges := make([]string, 0, 2)
	if artist == nil {
		return badges
	}
	if artist.Lineup.WeekendOne {
		badges = append(badges, WeekendOneBadge)
	}
	if artist.Lineup.WeekendTwo {
		badges = append(badges, WeekendTwoBadge)
	}
	return badges
}

// trackCredits joins the credited artist names of a track
func trackCredits(track model.Track) string {
	names := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		if name := strings.TrimSpace(a.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// cleanText collapses control whitespace that breaks single-line labels
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}
