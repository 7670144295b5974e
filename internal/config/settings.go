package config

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
)

// Festival years with a published lineup feed
const (
	Year2023 = "2023"
	Year2024 = "2024"
)

// Settings keys for Fyne preferences
const (
	KeyLineupYear      = "lineup_year"
	KeyDataURLOverride = "data_url_override"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultLineupYear = Year2024
	DefaultLanguage   = "system"
)

// dataURLs maps a festival year to its pinned artists.json snapshot
var dataURLs = map[string]string{
	Year2023: "https://raw.githubusercontent.com/bushrow/acl_lineup_explorer/173a9c36f9bfa389912801f395db29ed5c2c9fb5/data/2023/artists.json",
	Year2024: "https://raw.githubusercontent.com/bushrow/acl_lineup_explorer/173a9c36f9bfa389912801f395db29ed5c2c9fb5/data/2024/artists.json",
}

// DataURLForYear returns the built-in feed URL for year, if one exists
func DataURLForYear(year string) (string, bool) {
	url, ok := dataURLs[strings.TrimSpace(year)]
	return url, ok
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env EnvConfig
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WithEnv applies environment overrides on top of stored preferences
func (s *Settings) WithEnv(env EnvConfig) *Settings {
	s.env = env
	return s
}

// Env returns the environment overrides in effect
func (s *Settings) Env() EnvConfig {
	return s.env
}

// GetLineupYear returns the selected festival year. A known LINEUP_YEAR
// overrides the stored preference and is never written back.
func (s *Settings) GetLineupYear() string {
	if _, ok := dataURLs[s.env.Year]; ok {
		return s.env.Year
	}
	year := s.app.Preferences().String(KeyLineupYear)
	if _, ok := dataURLs[year]; !ok {
		year = DefaultLineupYear
		s.SetLineupYear(year)
	}
	return year
}

// SetLineupYear sets the festival year; unknown years fall back to the default
func (s *Settings) SetLineupYear(year string) {
	year = strings.TrimSpace(year)
	if _, ok := dataURLs[year]; !ok {
		year = DefaultLineupYear
	}
	s.app.Preferences().SetString(KeyLineupYear, year)
}

// GetLineupYearOptions returns the years with a built-in feed, oldest first
func (s *Settings) GetLineupYearOptions() []string {
	years := make([]string, 0, len(dataURLs))
	for year := range dataURLs {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// GetDataURLOverride returns the user-supplied feed URL, empty when unset
func (s *Settings) GetDataURLOverride() string {
	return s.app.Preferences().String(KeyDataURLOverride)
}

// SetDataURLOverride stores a custom feed URL; an empty value clears it
func (s *Settings) SetDataURLOverride(url string) {
	s.app.Preferences().SetString(KeyDataURLOverride, strings.TrimSpace(url))
}

// ResolveDataURL picks the feed to load: LINEUP_DATA_URL, then the stored
// override, then the built-in URL for the selected year.
func (s *Settings) ResolveDataURL() string {
	if s.env.DataURL != "" {
		return s.env.DataURL
	}
	if override := s.GetDataURLOverride(); override != "" {
		return override
	}
	url, _ := DataURLForYear(s.GetLineupYear())
	return url
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
