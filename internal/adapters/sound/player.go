package sound

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/ports"
)

const (
	outputSampleRate = beep.SampleRate(44100)
	resampleQuality  = 4
	speakerBuffer    = 10 * time.Millisecond
)

// speakerInit matches speaker.Init; replaced in tests
type speakerInit func(sampleRate beep.SampleRate, bufferSize int) error

// Player implements ports.ClickPlayer with pre-loaded WAV samples.
// When the audio device cannot be opened the player stays muted.
type Player struct {
	closeOnce sync.Once
	live      bool
	samples   map[ports.ClickKind]*beep.Buffer
}

var _ ports.ClickPlayer = (*Player)(nil)

// NewPlayer loads the metronome samples from dir and opens the speaker
func NewPlayer(dir string) (*Player, error) {
	return newPlayer(dir, speaker.Init)
}

// Muted returns a player that never makes a sound, for modes without clicks
func Muted() *Player {
	return &Player{}
}

func newPlayer(dir string, initSpeaker speakerInit) (*Player, error) {
	if err := CheckAssets(dir); err != nil {
		return nil, err
	}

	paths := RequiredSamples(dir)
	downbeat, err := loadSample(paths[0])
	if err != nil {
		return nil, err
	}
	secondary, err := loadSample(paths[1])
	if err != nil {
		return nil, err
	}

	p := &Player{
		samples: map[ports.ClickKind]*beep.Buffer{
			ports.ClickDownbeat:  downbeat,
			ports.ClickSecondary: secondary,
		},
	}

	if err := initSpeaker(outputSampleRate, outputSampleRate.N(speakerBuffer)); err != nil {
		logging.Logger.Warn("Audio device unavailable, clicks are muted", "error", err)
		return p, nil
	}
	p.live = true

	logging.Logger.Debug("Audio initialized",
		"sample_rate", int(outputSampleRate),
		"downbeat_samples", downbeat.Len(),
		"secondary_samples", secondary.Len())

	return p, nil
}

// loadSample decodes a WAV file into memory at the output sample rate
func loadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != outputSampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, outputSampleRate, streamer)
	}

	format.SampleRate = outputSampleRate
	buffer := beep.NewBuffer(format)
	buffer.Append(source)

	return buffer, nil
}

// Play implements ports.ClickPlayer. It never blocks.
func (p *Player) Play(kind ports.ClickKind) {
	buffer := p.sample(kind)
	if buffer == nil {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

// PlayAndWait implements ports.ClickPlayer
func (p *Player) PlayAndWait(ctx context.Context, kind ports.ClickKind) error {
	buffer := p.sample(kind)
	if buffer == nil {
		return nil
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		buffer.Streamer(0, buffer.Len()),
		beep.Callback(func() { close(done) }),
	))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Close implements ports.ClickPlayer
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		if !p.live {
			return
		}
		p.live = false
		speaker.Clear()
		speaker.Close()
		logging.Logger.Debug("Audio closed")
	})
}

// sample returns the buffer for kind, or nil while muted
func (p *Player) sample(kind ports.ClickKind) *beep.Buffer {
	if !p.live {
		return nil
	}
	return p.samples[kind]
}
