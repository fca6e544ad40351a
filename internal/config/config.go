// Package config loads run settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Page        string
	Games       string
	TopN        int
	Placeholder int

	APIURL      string
	MappingPage string
	FlagURL     string

	OutputDir  string
	MappingDir string

	Timezone string
	LogLevel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Page:        getEnv("MEDALS_PAGE", "2026_Winter_Olympics_medal_table"),
		Games:       getEnv("MEDALS_GAMES", "Milano Cortina 2026"),
		TopN:        getEnvInt("MEDALS_TOP_N", 5),
		Placeholder: getEnvInt("MEDALS_PLACEHOLDER_COUNT", 10),

		APIURL:      getEnv("MEDALS_API_URL", "https://en.wikipedia.org/w/api.php"),
		MappingPage: getEnv("MEDALS_MAPPING_PAGE", "List_of_IOC_country_codes"),
		FlagURL:     getEnv("MEDALS_FLAG_URL", "https://flagcdn.com/w40/%s.png"),

		OutputDir:  getEnv("MEDALS_OUTPUT_DIR", "data"),
		MappingDir: getEnv("MEDALS_MAPPING_DIR", "data"),

		Timezone: getEnv("MEDALS_TIMEZONE", "America/New_York"),
		LogLevel: strings.ToUpper(getEnv("MEDALS_LOG_LEVEL", "INFO")),
	}

	return cfg, nil
}

// Validate reports settings that would make a run meaningless
func (c Config) Validate() error {
	if strings.TrimSpace(c.Page) == "" {
		return fmt.Errorf("page is required")
	}
	if c.TopN < 1 {
		return fmt.Errorf("top N must be at least 1, got %d", c.TopN)
	}
	if c.Placeholder < 1 {
		return fmt.Errorf("placeholder count must be at least 1, got %d", c.Placeholder)
	}
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}
	if !strings.Contains(c.FlagURL, "%s") {
		return fmt.Errorf("flag URL template %q must contain %%s", c.FlagURL)
	}
	return nil
}

// Location returns the time zone used for the payload timestamp
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// PageURL returns the human-readable article URL for a page on the configured wiki
func (c Config) PageURL(page string) string {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" {
		return "https://en.wikipedia.org/wiki/" + url.PathEscape(page)
	}
	return fmt.Sprintf("%s://%s/wiki/%s", u.Scheme, u.Host, url.PathEscape(page))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
