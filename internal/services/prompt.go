package services

import (
	"math/rand/v2"

	"github.com/guitarlab/fretboard/internal/domain"
)

// PromptChooser draws random (string, note) prompts
type PromptChooser struct {
	rng *rand.Rand
}

// NewPromptChooser creates a PromptChooser. A nil rng uses a randomly seeded source.
func NewPromptChooser(rng *rand.Rand) *PromptChooser {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PromptChooser{rng: rng}
}

// Choose returns a prompt honoring the string and note filters of cfg.
// Unfiltered fields are sampled uniformly, with replacement.
func (c *PromptChooser) Choose(cfg domain.Config) domain.Prompt {
	str := cfg.String
	if str == 0 {
		str = domain.Strings[c.rng.IntN(len(domain.Strings))]
	}

	pool := cfg.NotePool()
	return domain.Prompt{
		Note:   pool[c.rng.IntN(len(pool))],
		String: str,
	}
}
