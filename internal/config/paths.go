package config

import (
	"os"
	"path/filepath"
)

// GetHome returns $FRETBOARD_HOME or ~/.fretboard
func GetHome() string {
	home := os.Getenv("FRETBOARD_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".fretboard"
		}
		return filepath.Join(homeDir, ".fretboard")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $FRETBOARD_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHistoryDBPath returns $FRETBOARD_HOME/history.db
func GetHistoryDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
