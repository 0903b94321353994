// Package config loads env files and reads typed settings from the process
// environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads dotenv files into the process environment. Lines may use
// `export KEY=value` and single or double quotes. Variables already set in
// the environment are left alone. Missing files are skipped; the first file
// that fails to parse stops loading and is returned.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if fi, err := os.Stat(p); err != nil || fi.IsDir() {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// LoadDefaultEnv loads env from STRETCH_ENV, ~/.stretch.env and ./.env (in
// that order), when present. Earlier files win.
func LoadDefaultEnv() error {
	var paths []string
	if p := strings.TrimSpace(os.Getenv("STRETCH_ENV")); p != "" {
		paths = append(paths, p)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".stretch.env"))
	}
	return LoadEnv(append(paths, ".env")...)
}

// Int returns the integer value of key, or def when unset or malformed.
func Int(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// Float returns the float value of key, or def when unset or malformed.
func Float(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

// Bool returns the boolean value of key, or def when unset or malformed.
func Bool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
