package model

import (
	"fmt"
)

// WeekendFilter selects which artists are visible by weekend assignment
type WeekendFilter string

const (
	FilterAll            WeekendFilter = ""
	FilterWeekendOne     WeekendFilter = "weekend_one"
	FilterWeekendTwo     WeekendFilter = "weekend_two"
	FilterWeekendOneOnly WeekendFilter = "weekend_one_only"
	FilterWeekendTwoOnly WeekendFilter = "weekend_two_only"
)

// AllWeekendFilters returns the filters in display order
func AllWeekendFilters() []WeekendFilter {
	return []WeekendFilter{
		FilterAll,
		FilterWeekendOne,
		FilterWeekendTwo,
		FilterWeekendOneOnly,
		FilterWeekendTwoOnly,
	}
}

// ParseWeekendFilter converts a raw selection value into a WeekendFilter.
// "all" is accepted as an alias for the empty selection.
func ParseWeekendFilter(value string) (WeekendFilter, error) {
	if value == "all" {
		return FilterAll, nil
	}
	for _, f := range AllWeekendFilters() {
		if string(f) == value {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown weekend filter: %q", value)
}

// String returns an English label for the filter
func (f WeekendFilter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterWeekendOne:
		return "Weekend One"
	case FilterWeekendTwo:
		return "Weekend Two"
	case FilterWeekendOneOnly:
		return "Weekend One ONLY"
	case FilterWeekendTwoOnly:
		return "Weekend Two ONLY"
	default:
		return "Unknown"
	}
}

// Matches reports whether the artist is visible under this filter
func (f WeekendFilter) Matches(artist *Artist) bool {
	if artist == nil {
		return false
	}
	one, two := artist.Lineup.WeekendOne, artist.Lineup.WeekendTwo

	switch f {
	case FilterAll:
		return true
	case FilterWeekendOne:
		return one
	case FilterWeekendTwo:
		return two
	case FilterWeekendOneOnly:
		return one && !two
	case FilterWeekendTwoOnly:
		return two && !one
	default:
		return true
	}
}

// FilterArtists returns the artists visible under the filter, keeping feed order
func FilterArtists(artists []*Artist, filter WeekendFilter) []*Artist {
	filtered := make([]*Artist, 0, len(artists))
	for _, artist := range artists {
		if filter.Matches(artist) {
			filtered = append(filtered, artist)
		}
	}
	return filtered
}
