package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// History table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSubtitle).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ModeStyle returns the style used to print a drill mode name
func ModeStyle(mode string) lipgloss.Style {
	switch mode {
	case "auto":
		return lipgloss.NewStyle().Foreground(ColorModeAuto)
	case "preset":
		return lipgloss.NewStyle().Foreground(ColorModePreset)
	default:
		return NormalStyle
	}
}
