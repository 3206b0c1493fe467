// Package prefs persists design preferences as a flat key-value file, one
// string entry per design option, keyed with a fixed prefix.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/signature-studio/internal/types"
)

// keyPrefix namespaces every stored entry.
const keyPrefix = "sig_"

// Store reads and writes the preference file. A missing file behaves like an
// empty store: loads yield the built-in defaults.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user preference file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "signature-studio", "prefs.json"), nil
}

// Load reads the stored preferences and overlays them on the defaults.
// Malformed stored values (bad booleans, invalid colors) fall back to their
// defaults rather than failing; stored values are strings and never trusted.
func (s *Store) Load() (types.DesignOptions, error) {
	opts := types.DefaultDesignOptions()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read preferences: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return opts, fmt.Errorf("failed to parse preferences: %w", err)
	}

	for _, key := range types.OptionKeys {
		value, ok := entries[keyPrefix+key]
		if !ok || value == "" {
			continue
		}
		opts.SetOption(key, value)
	}

	return opts.Normalized(), nil
}

// Save writes every design option as a prefixed string entry.
func (s *Store) Save(opts types.DesignOptions) error {
	entries := make(map[string]string, len(types.OptionKeys))
	for _, key := range types.OptionKeys {
		entries[keyPrefix+key] = opts.Option(key)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// Reset removes the preference file, restoring defaults on the next load.
func (s *Store) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove preferences: %w", err)
	}
	return nil
}
