package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/ports"
	"github.com/guitarlab/fretboard/internal/theme"
)

const (
	beatBlock   = "████████"
	manualHint  = "Press Enter to continue, or type 'q' to quit."
	timedHint   = "Ctrl + C to quit."
	inputMarker = "> "
)

// Renderer implements ports.Display on a terminal
type Renderer struct {
	downbeatStyle lipgloss.Style
	hintStyle     lipgloss.Style
	offbeatStyle  lipgloss.Style
	out           io.Writer
	promptStyle   lipgloss.Style
	term          *termenv.Output
}

var _ ports.Display = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to out. Colors are only emitted
// when out is a color-capable terminal.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		downbeatStyle: r.NewStyle().Bold(true).Foreground(theme.ColorDownbeat),
		hintStyle:     r.NewStyle().Foreground(theme.ColorMuted),
		offbeatStyle:  r.NewStyle().Bold(true).Foreground(theme.ColorOffbeat),
		out:           out,
		promptStyle:   r.NewStyle().Bold(true).Foreground(theme.ColorHighlight),
		term:          termenv.NewOutput(out),
	}
}

// ShowPrompt implements ports.Display
func (r *Renderer) ShowPrompt(prompt domain.Prompt) {
	r.term.ClearScreen()
	fmt.Fprintln(r.out, r.promptStyle.Render(prompt.Label()))
	fmt.Fprintln(r.out, r.hintStyle.Render(manualHint))
	fmt.Fprint(r.out, inputMarker)
}

// ShowBeat implements ports.Display
func (r *Renderer) ShowBeat(prompt domain.Prompt, beat int) {
	r.term.ClearScreen()
	fmt.Fprintf(r.out, "%s\n\n", r.promptStyle.Render(prompt.Label()))
	fmt.Fprintf(r.out, "%s\n\n", r.BeatIndicator(beat))
	fmt.Fprintln(r.out, r.hintStyle.Render(timedHint))
}

// Message implements ports.Display
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.out, msg)
}

// BeatIndicator draws one downbeat block followed by one block per
// elapsed sub-beat. beat is clamped to 0..BeatsPerBar-1.
func (r *Renderer) BeatIndicator(beat int) string {
	beat = min(max(beat, 0), domain.BeatsPerBar-1)

	indicator := r.downbeatStyle.Render(beatBlock)
	if beat == 0 {
		return indicator
	}

	offbeats := strings.TrimSuffix(strings.Repeat(beatBlock+" ", beat), " ")
	return indicator + " " + r.offbeatStyle.Render(offbeats)
}
