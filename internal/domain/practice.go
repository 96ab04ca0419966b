package domain

import (
	"sort"
	"time"
)

// PromptRecord is a prompt as it was shown during a practice session
type PromptRecord struct {
	Note    string
	ShownAt time.Time
	String  int
}

// PracticeSession is a finished drill, kept in the practice history
type PracticeSession struct {
	BPM       int
	EndedAt   time.Time
	ID        string
	Mode      Mode
	Prompts   []PromptRecord
	StartedAt time.Time
}

// Duration returns how long the session ran
func (s PracticeSession) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// TopNote returns the note prompted most often, ties broken alphabetically.
// Returns "" for a session without prompts.
func (s PracticeSession) TopNote() string {
	counts := make(map[string]int)
	for _, p := range s.Prompts {
		counts[p.Note]++
	}

	notes := make([]string, 0, len(counts))
	for note := range counts {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		if counts[notes[i]] != counts[notes[j]] {
			return counts[notes[i]] > counts[notes[j]]
		}
		return notes[i] < notes[j]
	})

	if len(notes) == 0 {
		return ""
	}
	return notes[0]
}
