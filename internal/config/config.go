// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the search service.
type Config struct {
	Port                   string
	DatabaseURL            string
	RedisURL               string
	CacheTTLSeconds        int      // TTL for cached top-company payloads
	RefreshIntervalMinutes int      // how often the cron re-warms the cache
	ExtraSuffixWords       []string // appended to the built-in company-suffix vocabulary
}

// vocabularyFile is the shape of the optional YAML file pointed at by
// SEARCH_VOCABULARY_FILE. Words extend the built-in list, never replace it.
type vocabularyFile struct {
	CompanySuffixes []string `yaml:"companySuffixes"`
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("SEARCH_PORT")
	if port == "" {
		port = "8083"
	}

	ttl := 300
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_SECONDS must be a positive integer, got %q", s)
		}
		ttl = v
	}

	refresh := 15
	if s := os.Getenv("REFRESH_INTERVAL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_MINUTES must be a positive integer, got %q", s)
		}
		refresh = v
	}

	var extra []string
	if path := os.Getenv("SEARCH_VOCABULARY_FILE"); path != "" {
		words, err := loadVocabulary(path)
		if err != nil {
			return nil, fmt.Errorf("SEARCH_VOCABULARY_FILE: %w", err)
		}
		extra = words
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            dbURL,
		RedisURL:               redisURL,
		CacheTTLSeconds:        ttl,
		RefreshIntervalMinutes: refresh,
		ExtraSuffixWords:       extra,
	}, nil
}

func loadVocabulary(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f vocabularyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return f.CompanySuffixes, nil
}
