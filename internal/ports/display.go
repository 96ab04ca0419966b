package ports

import "github.com/guitarlab/fretboard/internal/domain"

// Display draws drill prompts on the terminal
type Display interface {
	// ShowPrompt draws a manual-mode prompt followed by the input marker
	ShowPrompt(prompt domain.Prompt)

	// ShowBeat draws a timed-mode prompt with the indicator for sub-beat beat (0-3)
	ShowBeat(prompt domain.Prompt, beat int)

	// Message prints a single line
	Message(msg string)
}
