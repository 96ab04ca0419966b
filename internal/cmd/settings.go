package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/guitarlab/fretboard/internal/config"
	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Change one setting in settings.json"`
}

// SettingsSetCmd sets a single settings.json key
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name (e.g., default_bpm, samples_dir)"`
	Value string `arg:"" help:"New value (e.g., 120, ~/clicks, false)"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	return setSetting(os.Stdout, s.Key, s.Value)
}

func setSetting(w io.Writer, key, value string) error {
	logging.Logger.Debug("Setting value", "key", key, "value", value)

	// Start from the file on disk, not the copy loaded at startup
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.SetValue(key, value); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(w, "Set '%s' to: %s\n", key, value)
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	return writeSettingsMeta(os.Stdout, s.Format, config.GetSettingsPath(), config.GetSettingsExample())
}

func writeSettingsMeta(w io.Writer, format, settingsFile string, example map[string]any) error {
	if format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(w, theme.TitleStyle.UnsetPadding().Render("Example settings.json:"))
	fmt.Fprintln(w)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, example[key])
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.HintStyle.Render("Create or edit this file to configure fretboard."))
	fmt.Fprintln(w, theme.HintStyle.Render("All settings are optional and have sensible defaults."))
	fmt.Fprintln(w, theme.HintStyle.Render("Use 'fretboard settings set <key> <value>' to change one."))

	return nil
}
