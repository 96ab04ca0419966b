package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guitarlab/fretboard/internal/domain"
)

func TestBeatIndicator_BlockCount(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	tests := []struct {
		beat   int
		blocks int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 4},
		{7, 4},
		{-2, 1},
	}

	for _, tt := range tests {
		indicator := r.BeatIndicator(tt.beat)
		assert.Equal(t, tt.blocks, strings.Count(indicator, beatBlock), "beat %d", tt.beat)
	}
}

func TestShowBeat(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ShowBeat(domain.Prompt{String: 5, Note: "D#"}, 2)

	out := buf.String()
	assert.Contains(t, out, "String: 5, Note: D#")
	assert.Contains(t, out, timedHint)
	assert.Equal(t, 3, strings.Count(out, beatBlock))
	assert.Less(t, strings.Index(out, "String: 5"), strings.Index(out, beatBlock))
}

func TestShowPrompt(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ShowPrompt(domain.Prompt{String: 1, Note: "B"})

	out := buf.String()
	assert.Contains(t, out, "String: 1, Note: B")
	assert.Contains(t, out, manualHint)
	assert.True(t, strings.HasSuffix(out, inputMarker))
	assert.NotContains(t, out, beatBlock)
}

func TestShowBeat_ClearsScreenEachTime(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.ShowBeat(domain.Prompt{String: 2, Note: "A"}, 0)
	r.ShowBeat(domain.Prompt{String: 2, Note: "A"}, 1)

	assert.Equal(t, 2, strings.Count(buf.String(), "\x1b[2J"))
}

func TestMessage(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Message("Stopped.")

	assert.Equal(t, "Stopped.\n", buf.String())
}
