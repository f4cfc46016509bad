package env

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// Keys read by the demo.
const (
	AssetsDir  = "STAIRWALK_ASSETS"
	LayoutPath = "STAIRWALK_LAYOUT"
)

// Parse reads KEY=VALUE lines in .env syntax: # comments, optional export prefix,
// single or double quoted values.
func Parse(r io.Reader) (map[string]string, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return vars, nil
}

// Load applies path (e.g. ".env") to the process environment. Variables already set in
// the environment win over the file. A missing file is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env: %s: %w", path, err)
	}
	return nil
}

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
