package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatPeriod(t *testing.T) {
	tests := []struct {
		bpm      int
		expected time.Duration
	}{
		{180, time.Second / 3},
		{60, time.Second},
		{120, 500 * time.Millisecond},
		{0, time.Millisecond},
		{-10, time.Millisecond},
		{120000, time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BeatPeriod(tt.bpm), "bpm %d", tt.bpm)
	}
}

func TestDeadline_FixedGrid(t *testing.T) {
	clock := newFakeClock()
	scheduler := NewBeatScheduler(clock, 120)
	scheduler.Start()
	start := scheduler.Deadline(0)

	for i := 0; i < 10; i++ {
		assert.Equal(t, start.Add(time.Duration(i)*500*time.Millisecond), scheduler.Deadline(i))
	}
}

func TestWaitForBeat_CoarseThenFine(t *testing.T) {
	clock := newFakeClock()
	scheduler := NewBeatScheduler(clock, 60)
	scheduler.Start()

	require.NoError(t, scheduler.WaitForBeat(context.Background(), 1))

	require.NotEmpty(t, clock.sleeps)
	assert.InDelta(t, float64(time.Second-coarseSleepMargin), float64(clock.sleeps[0]), float64(100*time.Microsecond))
	fine := clock.sleeps[1:]
	assert.NotEmpty(t, fine)
	assert.LessOrEqual(t, len(fine), 4)
	for _, d := range fine {
		assert.Equal(t, fineSleepStep, d)
	}
	assert.False(t, clock.now.Before(scheduler.Deadline(1)))
}

func TestWaitForBeat_ShortWaitSkipsCoarseSleep(t *testing.T) {
	clock := newFakeClock()
	scheduler := NewBeatScheduler(clock, 60000)
	scheduler.Start()

	require.NoError(t, scheduler.WaitForBeat(context.Background(), 1))

	for _, d := range clock.sleeps {
		assert.Equal(t, fineSleepStep, d)
	}
	assert.False(t, clock.now.Before(scheduler.Deadline(1)))
}

func TestWaitForBeat_MissedBeatsFireUntilBackOnGrid(t *testing.T) {
	clock := newFakeClock()
	scheduler := NewBeatScheduler(clock, 60)
	scheduler.Start()

	clock.Advance(5 * time.Second)
	require.NoError(t, scheduler.WaitForBeat(context.Background(), 1))
	assert.Empty(t, clock.sleeps, "late beat fires immediately")

	// Beats 2..5 are also overdue and fire without sleeping; beat 6 waits again
	for i := 2; i <= 5; i++ {
		require.NoError(t, scheduler.WaitForBeat(context.Background(), i))
	}
	assert.Empty(t, clock.sleeps)

	require.NoError(t, scheduler.WaitForBeat(context.Background(), 6))
	require.NotEmpty(t, clock.sleeps)
	assert.Greater(t, clock.sleeps[0], 900*time.Millisecond)
}

func TestWaitForBeat_Cancelled(t *testing.T) {
	clock := newFakeClock()
	scheduler := NewBeatScheduler(clock, 60)
	scheduler.Start()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := scheduler.WaitForBeat(ctx, 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, clock.sleeps)
}
