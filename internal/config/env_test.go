package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvFromOS(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected EnvConfig
	}{
		{
			name:     "empty",
			vars:     map[string]string{EnvDataURL: "", EnvYear: "", EnvHTTPTimeout: ""},
			expected: EnvConfig{},
		},
		{
			name:     "all set",
			vars:     map[string]string{EnvDataURL: " https://example.com/a.json ", EnvYear: "2023", EnvHTTPTimeout: "15s"},
			expected: EnvConfig{DataURL: "https://example.com/a.json", Year: "2023", HTTPTimeout: 15 * time.Second},
		},
		{
			name:     "invalid timeout ignored",
			vars:     map[string]string{EnvDataURL: "", EnvYear: "", EnvHTTPTimeout: "soon"},
			expected: EnvConfig{},
		},
		{
			name:     "negative timeout ignored",
			vars:     map[string]string{EnvDataURL: "", EnvYear: "", EnvHTTPTimeout: "-5s"},
			expected: EnvConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}
			if got := EnvFromOS(); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestLoadEnv_File(t *testing.T) {
	t.Setenv(EnvDataURL, "")
	t.Setenv(EnvYear, "")
	t.Setenv(EnvHTTPTimeout, "")
	// godotenv only fills unset variables, so clear them for the file to apply
	os.Unsetenv(EnvYear)
	os.Unsetenv(EnvHTTPTimeout)

	path := filepath.Join(t.TempDir(), "test.env")
	content := EnvYear + "=2023\n" + EnvHTTPTimeout + "=2s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	env := LoadEnv(path)
	if env.Year != "2023" {
		t.Errorf("Expected year from file, got '%s'", env.Year)
	}
	if env.HTTPTimeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %v", env.HTTPTimeout)
	}
	if env.DataURL != "" {
		t.Errorf("Expected empty data URL, got '%s'", env.DataURL)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvDataURL, "https://example.com/a.json")

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if env.DataURL != "https://example.com/a.json" {
		t.Errorf("Expected process env to apply, got '%s'", env.DataURL)
	}
}
