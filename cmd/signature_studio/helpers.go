package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/signature-studio/internal/prefs"
	"github.com/jonathan/signature-studio/internal/types"
)

// loadRecord reads a single contact record from a JSON file.
func loadRecord(path string) (*types.ContactRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var record types.ContactRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record JSON: %w", err)
	}

	return &record, nil
}

// loadTemplate reads and validates a company template file.
func loadTemplate(path string) (*types.CompanyTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	tpl, err := types.ParseCompanyTemplate(data)
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

// resolvePrefsStore picks the preference file: explicit flag, then config file,
// then the per-user default location.
func resolvePrefsStore(flagPath, configPath string) (*prefs.Store, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		var err error
		path, err = prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return prefs.NewStore(path), nil
}

// loadDesign assembles the effective design options: stored preferences first,
// then the template's design (if any), then --set overrides. Returns the
// template too so callers can apply its company field defaults.
func loadDesign(store *prefs.Store, templatePath string, sets []string) (types.DesignOptions, *types.CompanyTemplate, error) {
	opts, err := store.Load()
	if err != nil {
		return types.DesignOptions{}, nil, err
	}

	var tpl *types.CompanyTemplate
	if templatePath != "" {
		tpl, err = loadTemplate(templatePath)
		if err != nil {
			return types.DesignOptions{}, nil, err
		}
		opts = tpl.Design.MergeWithDefaults(types.DefaultDesignOptions()).Normalized()
	}

	if err := applySets(&opts, sets); err != nil {
		return types.DesignOptions{}, nil, err
	}

	return opts.Normalized(), tpl, nil
}

// applySets applies repeated --set key=value overrides to the design options.
func applySets(opts *types.DesignOptions, sets []string) error {
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q (expected key=value)", set)
		}
		if !slices.Contains(types.OptionKeys, key) {
			return fmt.Errorf("unknown design option %q (valid: %s)", key, strings.Join(types.OptionKeys, ", "))
		}
		opts.SetOption(key, value)
	}
	return nil
}

// writeOutput writes content to a file, creating parent directories as needed.
func writeOutput(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
