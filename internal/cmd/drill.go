package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	adaptersound "github.com/guitarlab/fretboard/internal/adapters/sound"
	"github.com/guitarlab/fretboard/internal/adapters/terminal"
	"github.com/guitarlab/fretboard/internal/config"
	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/ports"
)

// DrillCmd runs a practice drill
type DrillCmd struct {
	Accidentals *bool   `help:"Include sharps in the note pool"`
	Auto        Tempo   `help:"Show a new prompt every bar at BPM beats per minute (default 180)" placeholder:"BPM"`
	NoHistory   bool    `help:"Do not record this drill in the practice history"`
	Note        *string `help:"Only prompt this note (C, C#, D, ... B)"`
	Preset      Tempo   `help:"Walk the circle of fifths over all six strings at BPM (default 180)" placeholder:"BPM"`
	SamplesDir  string  `help:"Directory holding the metronome samples (default: current directory)"`
	String      *int    `help:"Only prompt this string (1-6)"`
}

// Validate is called by kong after parsing; failures are usage errors.
// Preset conflicts depend on which flags were given, whatever their values.
func (d *DrillCmd) Validate() error {
	if d.Preset.Set {
		var conflicts []string
		if d.Auto.Set {
			conflicts = append(conflicts, "--auto")
		}
		if d.Accidentals != nil {
			conflicts = append(conflicts, "--accidentals")
		}
		if d.String != nil {
			conflicts = append(conflicts, "--string")
		}
		if d.Note != nil {
			conflicts = append(conflicts, "--note")
		}
		if len(conflicts) > 0 {
			return fmt.Errorf("%w, remove %s", domain.ErrPresetConflict, strings.Join(conflicts, ", "))
		}
	}

	if note := d.noteFlag(); note != "" {
		if _, err := domain.NormalizeNote(note); err != nil {
			return err
		}
	}

	return d.Config().Validate()
}

// Config builds the drill configuration from the parsed flags.
// An empty --note or --string 0 leaves the choice random.
func (d *DrillCmd) Config() domain.Config {
	cfg := domain.Config{
		Accidentals: d.Accidentals != nil && *d.Accidentals,
		Mode:        domain.ModeManual,
	}
	if d.String != nil {
		cfg.String = *d.String
	}
	if note, err := domain.NormalizeNote(d.noteFlag()); err == nil {
		cfg.Note = note
	}

	switch {
	case d.Preset.Set:
		cfg.Mode = domain.ModePreset
		cfg.BPM = d.Preset.BPM
	case d.Auto.Set:
		cfg.Mode = domain.ModeAuto
		cfg.BPM = d.Auto.BPM
	}

	return cfg
}

// Run executes the drill until the user quits or interrupts
func (d *DrillCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	cfg := d.Config()
	samplesDir := d.resolveSamplesDir(settings)

	logging.Logger.Debug("Checking metronome samples", "dir", samplesDir)
	if err := adaptersound.CheckAssets(samplesDir); err != nil {
		return err
	}

	var clicks ports.ClickPlayer = adaptersound.Muted()
	if cfg.Mode != domain.ModeManual {
		player, err := adaptersound.NewPlayer(samplesDir)
		if err != nil {
			return err
		}
		clicks = player
	}
	defer clicks.Close()

	var history ports.PracticeWriter
	if !d.NoHistory && settings.HistoryOn() {
		repo, err := cli.Container.PracticeRepository()
		if err != nil {
			logging.Logger.Warn("Practice history unavailable", "error", err)
		} else {
			history = repo
		}
	}

	renderer := terminal.NewRenderer(os.Stdout)
	service := cli.Container.NewDrillService(renderer, clicks, history)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.Run(ctx, cfg, os.Stdin); err != nil {
		return err
	}

	if ctx.Err() != nil {
		renderer.Message("\nStopped.")
	} else {
		renderer.Message("Stopped.")
	}
	return nil
}

func (d *DrillCmd) noteFlag() string {
	if d.Note == nil {
		return ""
	}
	return *d.Note
}

// resolveSamplesDir applies --samples-dir > settings samples_dir > working directory
func (d *DrillCmd) resolveSamplesDir(settings *config.Settings) string {
	if d.SamplesDir != "" {
		return config.ExpandPath(d.SamplesDir)
	}
	if settings.SamplesDir != "" {
		return settings.SamplesDir
	}
	return "."
}
