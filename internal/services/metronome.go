package services

import (
	"context"
	"time"

	"github.com/guitarlab/fretboard/internal/ports"
)

const (
	// coarse sleeps are only worth it when more than this remains
	coarseSleepThreshold = 3 * time.Millisecond
	// coarse sleeps wake up this long before the deadline
	coarseSleepMargin = 2 * time.Millisecond
	// step of the fine wait loop; below it the loop spins
	fineSleepStep = 500 * time.Microsecond
	// shortest beat period, whatever the tempo
	minBeatPeriod = time.Millisecond
)

// BeatPeriod returns the length of one quarter beat at bpm
func BeatPeriod(bpm int) time.Duration {
	if bpm <= 0 {
		return minBeatPeriod
	}
	return max(minBeatPeriod, time.Minute/time.Duration(bpm))
}

// BeatScheduler keeps a steady tempo by computing every deadline from a
// fixed start time. Beats whose deadline has passed fire immediately, one
// after another, until the schedule is back on the grid.
type BeatScheduler struct {
	clock  ports.Clock
	period time.Duration
	start  time.Time
}

// NewBeatScheduler creates a scheduler for bpm. Call Start before waiting.
func NewBeatScheduler(clock ports.Clock, bpm int) *BeatScheduler {
	return &BeatScheduler{
		clock:  clock,
		period: BeatPeriod(bpm),
	}
}

// Start fixes beat 0 at the current time
func (s *BeatScheduler) Start() {
	s.start = s.clock.Now()
}

// Period returns the time between two beats
func (s *BeatScheduler) Period() time.Duration {
	return s.period
}

// Deadline returns when beat beatIdx is due
func (s *BeatScheduler) Deadline(beatIdx int) time.Time {
	return s.start.Add(time.Duration(beatIdx) * s.period)
}

// WaitForBeat blocks until beat beatIdx is due or ctx is done
func (s *BeatScheduler) WaitForBeat(ctx context.Context, beatIdx int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := s.Deadline(beatIdx)
	remaining := target.Sub(s.clock.Now())
	if remaining <= 0 {
		return nil
	}

	if remaining > coarseSleepThreshold {
		if err := s.clock.Sleep(ctx, remaining-coarseSleepMargin); err != nil {
			return err
		}
	}

	for {
		left := target.Sub(s.clock.Now())
		if left <= 0 {
			return nil
		}
		if left > fineSleepStep {
			if err := s.clock.Sleep(ctx, fineSleepStep); err != nil {
				return err
			}
		}
	}
}
