// Package env loads settings from .env files and the process
// environment. Process environment values take precedence.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable lookup.
type Loader interface {
	// Load reads variables from a .env file.
	Load(path string) error
	// Get retrieves a variable value.
	Get(key string) string
	// GetRequired retrieves a required variable or returns an
	// error.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves a variable with a default
	// fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool parses a variable as a boolean. ok is false when
	// the variable is unset.
	GetBool(key string) (value, ok bool, err error)
	// Set sets a variable for this loader and the process.
	Set(key, value string) error
	// All returns all variables loaded from files.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support.
type DefaultLoader struct {
	mu     sync.RWMutex
	vars   map[string]string
	loaded bool
}

// NewLoader creates an empty DefaultLoader.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars: make(map[string]string),
	}
}

// Load parses KEY=VALUE lines from path. Blank lines, comments
// and an optional "export " prefix are accepted; surrounding
// quotes are stripped from values.
func (l *DefaultLoader) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	parsed := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		parsed[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range parsed {
		l.vars[k] = v
	}
	l.loaded = true
	return nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Loaded reports whether a .env file has been read
// successfully.
func (l *DefaultLoader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Get returns the process value of key if set, otherwise the
// value loaded from file.
func (l *DefaultLoader) Get(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

func (l *DefaultLoader) GetRequired(key string) (string, error) {
	v := l.Get(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (l *DefaultLoader) GetBool(key string) (bool, bool, error) {
	v := l.Get(key)
	if v == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, true, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, true, nil
}

func (l *DefaultLoader) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
	return os.Setenv(key, value)
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
