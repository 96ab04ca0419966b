package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/ports"
)

// historySaveTimeout bounds the final history write, which runs after the
// drill context has been cancelled
const historySaveTimeout = 5 * time.Second

// DrillService runs the practice loops
type DrillService struct {
	chooser *PromptChooser
	clicks  ports.ClickPlayer
	clock   ports.Clock
	display ports.Display
	history ports.PracticeWriter
}

// NewDrillService creates a new DrillService. history may be nil to disable recording.
func NewDrillService(
	chooser *PromptChooser,
	display ports.Display,
	clicks ports.ClickPlayer,
	clock ports.Clock,
	history ports.PracticeWriter,
) *DrillService {
	return &DrillService{
		chooser: chooser,
		clicks:  clicks,
		clock:   clock,
		display: display,
		history: history,
	}
}

// Run validates cfg and runs the matching mode until the user quits or ctx
// is cancelled. Both are normal endings and return nil.
func (s *DrillService) Run(ctx context.Context, cfg domain.Config, input io.Reader) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid drill configuration: %w", err)
	}

	logging.Logger.Info("Starting drill",
		"mode", cfg.Mode,
		"bpm", cfg.BPM,
		"string", cfg.String,
		"note", cfg.Note,
		"accidentals", cfg.Accidentals)

	switch cfg.Mode {
	case domain.ModeAuto:
		return s.RunAuto(ctx, cfg)
	case domain.ModePreset:
		return s.RunPreset(ctx, cfg)
	default:
		return s.RunManual(ctx, cfg, input)
	}
}

// RunManual shows a new prompt for every line read from input, until a
// quit keyword, end of input, or cancellation
func (s *DrillService) RunManual(ctx context.Context, cfg domain.Config, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := s.startSession(cfg)
	defer s.finishSession(session)

	lines := readLines(ctx, input)
	for {
		prompt := s.chooser.Choose(cfg)
		session.record(prompt, s.clock.Now())
		s.display.ShowPrompt(prompt)

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				logging.Logger.Debug("Input closed, stopping manual drill")
				return nil
			}
			if domain.IsQuitInput(line) {
				return nil
			}
		}
	}
}

// RunAuto picks a random prompt on every downbeat
func (s *DrillService) RunAuto(ctx context.Context, cfg domain.Config) error {
	return s.runTimed(ctx, cfg, func() domain.Prompt {
		return s.chooser.Choose(cfg)
	})
}

// RunPreset walks the circle of fifths over all strings, one prompt per bar
func (s *DrillService) RunPreset(ctx context.Context, cfg domain.Config) error {
	seq := domain.NewPresetSequence()
	return s.runTimed(ctx, cfg, seq.Next)
}

func (s *DrillService) runTimed(ctx context.Context, cfg domain.Config, next func() domain.Prompt) error {
	session := s.startSession(cfg)
	defer s.finishSession(session)

	scheduler := NewBeatScheduler(s.clock, cfg.BPM)
	logging.Logger.Debug("Beat scheduler ready", "period", scheduler.Period())
	scheduler.Start()

	var prompt domain.Prompt
	for beatIdx := 0; ; beatIdx++ {
		if err := scheduler.WaitForBeat(ctx, beatIdx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logging.Logger.Info("Drill interrupted", "beats", beatIdx)
				return nil
			}
			return err
		}

		beat := beatIdx % domain.BeatsPerBar
		if beat == 0 {
			prompt = next()
			session.record(prompt, s.clock.Now())
			s.clicks.Play(ports.ClickDownbeat)
		} else {
			s.clicks.Play(ports.ClickSecondary)
		}

		s.display.ShowBeat(prompt, beat)
	}
}

// activeSession collects prompts while a drill runs
type activeSession struct {
	domain.PracticeSession
}

func (a *activeSession) record(p domain.Prompt, at time.Time) {
	a.Prompts = append(a.Prompts, domain.PromptRecord{
		Note:    p.Note,
		ShownAt: at,
		String:  p.String,
	})
}

func (s *DrillService) startSession(cfg domain.Config) *activeSession {
	bpm := cfg.BPM
	if cfg.Mode == domain.ModeManual {
		bpm = 0
	}
	return &activeSession{domain.PracticeSession{
		BPM:       bpm,
		ID:        uuid.New().String(),
		Mode:      cfg.Mode,
		StartedAt: s.clock.Now(),
	}}
}

// finishSession stores the session in the history. Failures are logged
// and never surface to the player.
func (s *DrillService) finishSession(a *activeSession) {
	if s.history == nil || len(a.Prompts) == 0 {
		return
	}
	a.EndedAt = s.clock.Now()

	ctx, cancel := context.WithTimeout(context.Background(), historySaveTimeout)
	defer cancel()

	if err := s.history.Save(ctx, a.PracticeSession); err != nil {
		logging.Logger.Warn("Failed to save practice session", "id", a.ID, "error", err)
		return
	}
	logging.Logger.Info("Practice session saved",
		"id", a.ID,
		"prompts", len(a.Prompts),
		"duration", a.Duration())
}

// readLines forwards input lines on a channel so the manual loop can also
// watch for cancellation. The channel is closed at end of input.
func readLines(ctx context.Context, input io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logging.Logger.Warn("Failed to read input", "error", err)
		}
	}()
	return lines
}
