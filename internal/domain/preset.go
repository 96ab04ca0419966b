package domain

// presetStartNote is the index of "F" in NaturalNotes
const presetStartNote = 3

// presetNoteStep moves one fifth up the natural scale (F→C→G→D→A→E→B)
const presetNoteStep = 4

// PresetSequence walks every string for one note, then moves to the
// next note in the circle of fifths. It repeats forever.
type PresetSequence struct {
	noteIdx   int
	stringIdx int
}

// NewPresetSequence starts on string 1 with F
func NewPresetSequence() *PresetSequence {
	return &PresetSequence{noteIdx: presetStartNote}
}

// Next returns the current prompt and advances the sequence
func (p *PresetSequence) Next() Prompt {
	prompt := Prompt{
		Note:   NaturalNotes[p.noteIdx],
		String: Strings[p.stringIdx],
	}

	p.stringIdx++
	if p.stringIdx == len(Strings) {
		p.stringIdx = 0
		p.noteIdx = (p.noteIdx + presetNoteStep) % len(NaturalNotes)
	}

	return prompt
}
