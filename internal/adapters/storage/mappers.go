package storage

import (
	"github.com/guitarlab/fretboard/internal/domain"
)

func practiceSessionToModel(s domain.PracticeSession) PracticeSessionModel {
	prompts := make([]PracticePromptModel, len(s.Prompts))
	for i, p := range s.Prompts {
		prompts[i] = PracticePromptModel{
			Note:      p.Note,
			Position:  i,
			SessionID: s.ID,
			ShownAt:   p.ShownAt.UTC(),
			String:    p.String,
		}
	}

	return PracticeSessionModel{
		BPM:       s.BPM,
		EndedAt:   s.EndedAt.UTC(),
		ID:        s.ID,
		Mode:      string(s.Mode),
		Prompts:   prompts,
		StartedAt: s.StartedAt.UTC(),
	}
}

func practiceSessionModelToDomain(m PracticeSessionModel) domain.PracticeSession {
	var prompts []domain.PromptRecord
	for _, p := range m.Prompts {
		prompts = append(prompts, domain.PromptRecord{
			Note:    p.Note,
			ShownAt: p.ShownAt,
			String:  p.String,
		})
	}

	return domain.PracticeSession{
		BPM:       m.BPM,
		EndedAt:   m.EndedAt,
		ID:        m.ID,
		Mode:      domain.Mode(m.Mode),
		Prompts:   prompts,
		StartedAt: m.StartedAt,
	}
}
