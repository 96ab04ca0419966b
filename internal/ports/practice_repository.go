package ports

import (
	"context"

	"github.com/guitarlab/fretboard/internal/domain"
)

// PracticeWriter stores finished practice sessions
type PracticeWriter interface {
	Save(ctx context.Context, session domain.PracticeSession) error
}

// PracticeReader reads the practice history
type PracticeReader interface {
	// ListRecent returns up to limit sessions, newest first
	ListRecent(ctx context.Context, limit int) ([]domain.PracticeSession, error)
}

// PracticeRepository combines history reads and writes
type PracticeRepository interface {
	PracticeReader
	PracticeWriter
	Close() error
}
