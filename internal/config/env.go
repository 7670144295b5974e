package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvDataURL     = "LINEUP_DATA_URL"
	EnvYear        = "LINEUP_YEAR"
	EnvHTTPTimeout = "LINEUP_HTTP_TIMEOUT"
)

// EnvConfig holds overrides read from the process environment
type EnvConfig struct {
	DataURL     string
	Year        string
	HTTPTimeout time.Duration // zero means use the loader default
}

// LoadEnv reads the given .env files (".env" when none are given) into the
// process environment and returns the lineup overrides. Missing files are
// not an error; existing variables are not overwritten.
func LoadEnv(files ...string) EnvConfig {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: failed to read env file: %v", err)
	}
	return EnvFromOS()
}

// EnvFromOS builds an EnvConfig from the current environment only
func EnvFromOS() EnvConfig {
	return EnvConfig{
		DataURL:     envStr(EnvDataURL, ""),
		Year:        envStr(EnvYear, ""),
		HTTPTimeout: envDuration(EnvHTTPTimeout, 0),
	}
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts Go duration syntax ("15s", "1m")
func envDuration(key string, fallback time.Duration) time.Duration {
	v := envStr(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Config: ignoring invalid %s=%q", key, v)
		return fallback
	}
	return d
}
