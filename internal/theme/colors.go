package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary  Color = "99" // Purple - app name, titles
	ColorSubtitle Color = "86" // Cyan - subtitles
)

// Beat indicator colors
const (
	ColorDownbeat Color = "9"  // Bright red - first sub-beat
	ColorOffbeat  Color = "13" // Bright magenta - remaining sub-beats
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Mode colors used in the practice history
const (
	ColorModeAuto   Color = "33"  // Blue
	ColorModePreset Color = "214" // Orange
)
