package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Settings represents the structure of $FRETBOARD_HOME/settings.json.
// Every field is optional; CLI flags and env vars take precedence.
type Settings struct {
	Debug          *bool  `json:"debug,omitempty"`
	DefaultBPM     *int   `json:"default_bpm,omitempty"`
	HistoryEnabled *bool  `json:"history_enabled,omitempty"`
	MaxLogFiles    *int   `json:"max_log_files,omitempty"`
	SamplesDir     string `json:"samples_dir,omitempty"`
}

// BPMOrDefault returns the configured default tempo, falling back to fallback
func (s *Settings) BPMOrDefault(fallback int) int {
	if s == nil || s.DefaultBPM == nil {
		return fallback
	}
	return *s.DefaultBPM
}

// HistoryOn reports whether practice sessions should be recorded (default true)
func (s *Settings) HistoryOn() bool {
	if s == nil || s.HistoryEnabled == nil {
		return true
	}
	return *s.HistoryEnabled
}

// Validate checks values that cannot be expressed in the JSON types
func (s *Settings) Validate() error {
	if s.DefaultBPM != nil && *s.DefaultBPM <= 0 {
		return fmt.Errorf("default_bpm must be positive, got %d", *s.DefaultBPM)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// SettingKeys returns the settings.json keys, sorted
func SettingKeys() []string {
	keys := make([]string, 0)
	for key := range GetSettingsExample() {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// SetValue parses value for the settings.json key and stores it.
// The result is validated, so a rejected value leaves s unchanged.
func (s *Settings) SetValue(key, value string) error {
	updated := *s
	value = strings.TrimSpace(value)

	switch key {
	case "debug", "history_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		if key == "debug" {
			updated.Debug = &b
		} else {
			updated.HistoryEnabled = &b
		}
	case "default_bpm", "max_log_files":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a whole number, got %q", key, value)
		}
		if key == "default_bpm" {
			updated.DefaultBPM = &n
		} else {
			updated.MaxLogFiles = &n
		}
	case "samples_dir":
		if value == "" {
			return fmt.Errorf("samples_dir cannot be empty")
		}
		updated.SamplesDir = value
	default:
		return fmt.Errorf("unknown setting '%s'. Valid settings: %s", key, strings.Join(SettingKeys(), ", "))
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*s = updated
	return nil
}

// LoadSettings loads settings from $FRETBOARD_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SamplesDir != "" {
		settings.SamplesDir = ExpandPath(settings.SamplesDir)
	}

	return &settings, nil
}

// SaveSettings writes settings to $FRETBOARD_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
