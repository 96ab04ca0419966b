package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("FRETBOARD_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.True(t, settings.HistoryOn())
	assert.Equal(t, 180, settings.BPMOrDefault(180))
}

func TestLoadSettings_ReadsValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FRETBOARD_HOME", home)
	content := `{"default_bpm": 96, "history_enabled": false, "samples_dir": "/opt/clicks", "max_log_files": 5}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, 96, settings.BPMOrDefault(180))
	assert.False(t, settings.HistoryOn())
	assert.Equal(t, "/opt/clicks", settings.SamplesDir)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"malformed json", `{"default_bpm":`, "invalid settings.json"},
		{"zero bpm", `{"default_bpm": 0}`, "default_bpm must be positive"},
		{"negative log files", `{"max_log_files": -1}`, "max_log_files cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("FRETBOARD_HOME", home)
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(tt.content), 0644))

			_, err := LoadSettings()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("FRETBOARD_HOME", home)
	bpm := 140

	require.NoError(t, SaveSettings(&Settings{DefaultBPM: &bpm}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 140, settings.BPMOrDefault(180))
}

func TestPaths(t *testing.T) {
	t.Setenv("FRETBOARD_HOME", "/tmp/fb-home")

	assert.Equal(t, "/tmp/fb-home", GetHome())
	assert.Equal(t, "/tmp/fb-home/settings.json", GetSettingsPath())
	assert.Equal(t, "/tmp/fb-home/history.db", GetHistoryDBPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "samples"), ExpandPath("~/samples"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 5)
	assert.Equal(t, 180, example["default_bpm"])
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, true, example["history_enabled"])
	assert.Equal(t, "~/.fretboard/samples", example["samples_dir"])
}

func TestSettings_SetValue(t *testing.T) {
	var s Settings

	require.NoError(t, s.SetValue("default_bpm", " 96 "))
	require.NoError(t, s.SetValue("history_enabled", "false"))
	require.NoError(t, s.SetValue("debug", "true"))
	require.NoError(t, s.SetValue("max_log_files", "0"))
	require.NoError(t, s.SetValue("samples_dir", "~/clicks"))

	assert.Equal(t, 96, s.BPMOrDefault(180))
	assert.False(t, s.HistoryOn())
	require.NotNil(t, s.Debug)
	assert.True(t, *s.Debug)
	require.NotNil(t, s.MaxLogFiles)
	assert.Equal(t, 0, *s.MaxLogFiles)
	assert.Equal(t, "~/clicks", s.SamplesDir)
}

func TestSettings_SetValueRejected(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		errText string
	}{
		{"unknown key", "volume", "11", "unknown setting 'volume'"},
		{"bpm not a number", "default_bpm", "fast", "expects a whole number"},
		{"zero bpm", "default_bpm", "0", "default_bpm must be positive"},
		{"negative log files", "max_log_files", "-3", "max_log_files cannot be negative"},
		{"not a bool", "history_enabled", "maybe", "expects true or false"},
		{"empty samples dir", "samples_dir", "  ", "samples_dir cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpm := 120
			s := Settings{DefaultBPM: &bpm}

			err := s.SetValue(tt.key, tt.value)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Equal(t, 120, s.BPMOrDefault(180))
		})
	}
}

func TestSettingKeys(t *testing.T) {
	assert.Equal(t, []string{"debug", "default_bpm", "history_enabled", "max_log_files", "samples_dir"}, SettingKeys())
}
