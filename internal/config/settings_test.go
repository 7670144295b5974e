package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLineupYear(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	year := settings.GetLineupYear()
	if year != DefaultLineupYear {
		t.Errorf("Expected default year %s, got %s", DefaultLineupYear, year)
	}

	// Test setting custom value
	settings.SetLineupYear(Year2023)
	if settings.GetLineupYear() != Year2023 {
		t.Errorf("Expected year %s, got %s", Year2023, settings.GetLineupYear())
	}

	// Unknown years fall back to the default
	settings.SetLineupYear("1999")
	if settings.GetLineupYear() != DefaultLineupYear {
		t.Errorf("Unknown year should fall back to %s, got %s", DefaultLineupYear, settings.GetLineupYear())
	}
}

func TestLineupYear_EnvOverride(t *testing.T) {
	app := test.NewApp()

	tests := []struct {
		name     string
		env      EnvConfig
		expected string
	}{
		{name: "env 2023", env: EnvConfig{Year: Year2023}, expected: Year2023},
		{name: "env changed to 2024", env: EnvConfig{Year: Year2024}, expected: Year2024},
		{name: "env unset", env: EnvConfig{}, expected: DefaultLineupYear},
		{name: "unknown env year", env: EnvConfig{Year: "1999"}, expected: DefaultLineupYear},
	}

	// every case shares one app so a leaked preference would show up
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewSettings(app).WithEnv(tt.env)
			if got := settings.GetLineupYear(); got != tt.expected {
				t.Errorf("Expected year %s, got %s", tt.expected, got)
			}
			url, _ := DataURLForYear(tt.expected)
			if got := settings.ResolveDataURL(); got != url {
				t.Errorf("Expected %s, got %s", url, got)
			}
		})
	}

	if stored := app.Preferences().String(KeyLineupYear); stored != DefaultLineupYear {
		t.Errorf("env year must not be stored, preference is %q", stored)
	}
}

func TestLineupYear_EnvWinsOverStoredPreference(t *testing.T) {
	app := test.NewApp()
	NewSettings(app).SetLineupYear(Year2024)

	settings := NewSettings(app).WithEnv(EnvConfig{Year: Year2023})
	if settings.GetLineupYear() != Year2023 {
		t.Errorf("Expected env year %s, got %s", Year2023, settings.GetLineupYear())
	}
	if settings.Env().Year != Year2023 {
		t.Errorf("Env should report %s, got %s", Year2023, settings.Env().Year)
	}

	if NewSettings(app).GetLineupYear() != Year2024 {
		t.Error("Stored preference should apply again once the env year is gone")
	}
}

func TestGetLineupYearOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLineupYearOptions()
	expected := []string{Year2023, Year2024}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d year options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("Year option %d: expected %s, got %s", i, expected[i], options[i])
		}
	}
}

func TestResolveDataURL(t *testing.T) {
	url2023, _ := DataURLForYear(Year2023)
	url2024, _ := DataURLForYear(Year2024)

	tests := []struct {
		name     string
		env      EnvConfig
		year     string
		override string
		expected string
	}{
		{name: "default year", expected: url2024},
		{name: "selected year", year: Year2023, expected: url2023},
		{name: "override wins over year", year: Year2023, override: " https://example.com/a.json ", expected: "https://example.com/a.json"},
		{name: "env wins over override", env: EnvConfig{DataURL: "https://env.example/a.json"}, override: "https://example.com/a.json", expected: "https://env.example/a.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			settings := NewSettings(app).WithEnv(tt.env)
			if tt.year != "" {
				settings.SetLineupYear(tt.year)
			}
			settings.SetDataURLOverride(tt.override)

			if got := settings.ResolveDataURL(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDataURLForYear(t *testing.T) {
	if _, ok := DataURLForYear("2022"); ok {
		t.Error("2022 should not have a built-in feed")
	}
	url, ok := DataURLForYear(" 2024 ")
	if !ok || url == "" {
		t.Error("2024 should have a built-in feed")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
