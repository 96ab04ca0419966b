package ports

import "context"

// ClickKind selects which metronome sample is played
type ClickKind int

const (
	ClickDownbeat ClickKind = iota
	ClickSecondary
)

// ClickPlayer plays short metronome samples
type ClickPlayer interface {
	// Play starts the sample and returns immediately
	Play(kind ClickKind)

	// PlayAndWait starts the sample and blocks until it finished playing
	PlayAndWait(ctx context.Context, kind ClickKind) error

	// Close releases the audio device. Safe to call more than once.
	Close()
}
