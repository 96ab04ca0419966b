package services

import (
	"context"
	"fmt"
	"time"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/ports"
)

// HistorySummary aggregates a list of practice sessions
type HistorySummary struct {
	Prompts   int
	Sessions  int
	TotalTime time.Duration
}

// HistoryService reads the practice history
type HistoryService struct {
	reader ports.PracticeReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(reader ports.PracticeReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// Recent returns up to limit sessions, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.PracticeSession, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	sessions, err := s.reader.ListRecent(ctx, limit)
	if err != nil {
		logging.Logger.Error("Failed to list practice history", "error", err)
		return nil, fmt.Errorf("failed to list practice history: %w", err)
	}

	logging.Logger.Debug("Practice history loaded", "count", len(sessions))
	return sessions, nil
}

// Summarize totals the given sessions
func Summarize(sessions []domain.PracticeSession) HistorySummary {
	var summary HistorySummary
	for _, session := range sessions {
		summary.Prompts += len(session.Prompts)
		summary.Sessions++
		summary.TotalTime += session.Duration()
	}
	return summary
}
