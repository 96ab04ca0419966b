package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/ports"
	portsmocks "github.com/guitarlab/fretboard/internal/ports/mocks"
)

type shownBeat struct {
	beat   int
	prompt domain.Prompt
}

// expectBeats records ShowBeat calls and cancels ctx after n of them
func expectBeats(display *portsmocks.MockDisplay, n int, cancel context.CancelFunc) *[]shownBeat {
	shown := &[]shownBeat{}
	display.EXPECT().ShowBeat(mock.Anything, mock.Anything).
		Run(func(prompt domain.Prompt, beat int) {
			*shown = append(*shown, shownBeat{beat: beat, prompt: prompt})
			if len(*shown) == n {
				cancel()
			}
		}).
		Times(n)
	return shown
}

func TestRunAuto_FourSubBeatsPerPrompt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	clicks.EXPECT().Play(ports.ClickDownbeat).Times(3)
	clicks.EXPECT().Play(ports.ClickSecondary).Times(9)
	shown := expectBeats(display, 12, cancel)

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), nil)
	err := service.Run(ctx, domain.Config{Mode: domain.ModeAuto, BPM: 180, String: 4}, nil)

	require.NoError(t, err)
	require.Len(t, *shown, 12)
	for i, s := range *shown {
		assert.Equal(t, i%4, s.beat)
		assert.Equal(t, 4, s.prompt.String)
		assert.Contains(t, domain.NaturalNotes, s.prompt.Note)
		if s.beat != 0 {
			assert.Equal(t, (*shown)[i-1].prompt, s.prompt, "prompt only changes on the downbeat")
		}
	}
}

func TestRunAuto_BeatsFollowTempo(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := newFakeClock()
	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	clicks.EXPECT().Play(mock.Anything)
	expectBeats(display, 9, cancel)

	service := NewDrillService(newSeededChooser(), display, clicks, clock, nil)
	start := clock.now

	require.NoError(t, service.RunAuto(ctx, domain.Config{Mode: domain.ModeAuto, BPM: 60}))

	elapsed := clock.now.Sub(start)
	assert.GreaterOrEqual(t, elapsed, BeatPeriod(60)*8)
	assert.Less(t, elapsed, BeatPeriod(60)*9)
}

func TestRunPreset_CircleOfFifthsAcrossStrings(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const bars = 13
	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	clicks.EXPECT().Play(ports.ClickDownbeat).Times(bars)
	clicks.EXPECT().Play(ports.ClickSecondary).Times(bars * 3)
	shown := expectBeats(display, bars*4, cancel)

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), nil)
	err := service.Run(ctx, domain.Config{Mode: domain.ModePreset, BPM: 180}, nil)
	require.NoError(t, err)

	var downbeats []domain.Prompt
	for _, s := range *shown {
		if s.beat == 0 {
			downbeats = append(downbeats, s.prompt)
		}
	}
	require.Len(t, downbeats, bars)
	for i := 0; i < 6; i++ {
		assert.Equal(t, domain.Prompt{String: i + 1, Note: "F"}, downbeats[i])
		assert.Equal(t, domain.Prompt{String: i + 1, Note: "C"}, downbeats[i+6])
	}
	assert.Equal(t, domain.Prompt{String: 1, Note: "G"}, downbeats[12])
}

func TestRunTimed_SavesPracticeSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	history := portsmocks.NewMockPracticeWriter(t)
	clicks.EXPECT().Play(mock.Anything)
	expectBeats(display, 8, cancel)
	history.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.PracticeSession) bool {
		return s.Mode == domain.ModePreset &&
			s.BPM == 90 &&
			s.ID != "" &&
			len(s.Prompts) == 2 &&
			s.Prompts[0].Note == "F" &&
			s.Prompts[1].String == 2 &&
			s.EndedAt.After(s.StartedAt)
	})).Return(nil).Once()

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), history)

	require.NoError(t, service.Run(ctx, domain.Config{Mode: domain.ModePreset, BPM: 90}, nil))
}

func TestRunTimed_HistoryFailureIsSwallowed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	history := portsmocks.NewMockPracticeWriter(t)
	clicks.EXPECT().Play(mock.Anything)
	expectBeats(display, 4, cancel)
	history.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), history)

	assert.NoError(t, service.Run(ctx, domain.Config{Mode: domain.ModeAuto, BPM: 120}, nil))
}

func TestRunTimed_CancelledBeforeFirstBeatSavesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	history := portsmocks.NewMockPracticeWriter(t)

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), history)

	assert.NoError(t, service.Run(ctx, domain.Config{Mode: domain.ModeAuto, BPM: 120}, nil))
}

func TestRunManual_RepeatsUntilQuit(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedPrompts int
	}{
		{"quit immediately", "q\n", 1},
		{"enter then quit", "\nquit\n", 2},
		{"other input repeats", "a\nnext\n  EXIT  \n", 3},
		{"end of input stops", "\n\n", 3},
		{"empty input stops", "", 1},
		{"lines after quit are ignored", "Q\n\n\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := portsmocks.NewMockDisplay(t)
			clicks := portsmocks.NewMockClickPlayer(t)
			cfg := domain.Config{Mode: domain.ModeManual, String: 2, Note: "C"}
			display.EXPECT().ShowPrompt(domain.Prompt{String: 2, Note: "C"}).Times(tt.expectedPrompts)

			service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), nil)

			err := service.Run(context.Background(), cfg, strings.NewReader(tt.input))
			assert.NoError(t, err)
		})
	}
}

func TestRunManual_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	display.EXPECT().ShowPrompt(mock.Anything).Once()

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), nil)

	assert.NoError(t, service.RunManual(ctx, domain.Config{Mode: domain.ModeManual}, reader))
}

func TestRunManual_RecordsSession(t *testing.T) {
	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)
	history := portsmocks.NewMockPracticeWriter(t)
	display.EXPECT().ShowPrompt(mock.Anything).Times(2)
	history.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.PracticeSession) bool {
		return s.Mode == domain.ModeManual && s.BPM == 0 && len(s.Prompts) == 2
	})).Return(nil).Once()

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), history)

	require.NoError(t, service.Run(context.Background(), domain.Config{Mode: domain.ModeManual}, strings.NewReader("\nq\n")))
}

func TestRun_InvalidConfig(t *testing.T) {
	display := portsmocks.NewMockDisplay(t)
	clicks := portsmocks.NewMockClickPlayer(t)

	service := NewDrillService(newSeededChooser(), display, clicks, newFakeClock(), nil)

	err := service.Run(context.Background(), domain.Config{Mode: domain.ModeAuto, BPM: 100, String: 9}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidString)

	err = service.Run(context.Background(), domain.Config{Mode: domain.ModeAuto}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTempo)
}
