package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Mode selects how prompts are paced
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
	ModePreset Mode = "preset"
)

// DefaultBPM is the tempo used when --auto or --preset is given without a value
const DefaultBPM = 180

// BeatsPerBar is the number of sub-beats shown for every prompt in timed modes
const BeatsPerBar = 4

// Strings lists the guitar strings, 1 being the high E
var Strings = []int{1, 2, 3, 4, 5, 6}

// NaturalNotes is the pool used without accidentals, also the preset cycle
var NaturalNotes = []string{"C", "D", "E", "F", "G", "A", "B"}

// ChromaticNotes is the pool used with accidentals (sharps only)
var ChromaticNotes = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Prompt is a single (string, note) pair shown to the player
type Prompt struct {
	Note   string
	String int
}

// Label formats the prompt the way it is shown on screen
func (p Prompt) Label() string {
	return fmt.Sprintf("String: %d, Note: %s", p.String, p.Note)
}

// Config is the drill configuration, built once from CLI input
type Config struct {
	Accidentals bool
	BPM         int
	Mode        Mode
	Note        string // empty means any note
	String      int    // zero means any string
}

// NotePool returns the notes a prompt may be drawn from
func (c Config) NotePool() []string {
	if c.Note != "" {
		return []string{c.Note}
	}
	if c.Accidentals {
		return ChromaticNotes
	}
	return NaturalNotes
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	switch c.Mode {
	case ModeManual:
	case ModeAuto, ModePreset:
		if c.BPM <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidTempo, c.BPM)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	if c.String != 0 && !slices.Contains(Strings, c.String) {
		return fmt.Errorf("%w: %d", ErrInvalidString, c.String)
	}

	if c.Note != "" && !slices.Contains(ChromaticNotes, c.Note) {
		return fmt.Errorf("%w: %s", ErrUnknownNote, c.Note)
	}

	if c.Mode == ModePreset && (c.Accidentals || c.String != 0 || c.Note != "") {
		return ErrPresetConflict
	}

	return nil
}

// NormalizeNote maps user input such as "f#" to its canonical pitch name.
// Returns ErrUnknownNote when the input is not one of ChromaticNotes.
func NormalizeNote(input string) (string, error) {
	note := strings.ToUpper(strings.TrimSpace(input))
	if !slices.Contains(ChromaticNotes, note) {
		return "", fmt.Errorf("%w: %q", ErrUnknownNote, input)
	}
	return note, nil
}

// IsQuitInput reports whether a manual-mode input line ends the drill
func IsQuitInput(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
