// Package styles provides the terminal styling shared by hoard's commands.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Green  = lipgloss.Color("#00cc6a")
	Cyan   = lipgloss.Color("#00a0cc")
	Violet = lipgloss.Color("#8b5cf6")
	Red    = lipgloss.Color("#ff4444")
	Yellow = lipgloss.Color("#fbbf24")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")
)

// Semantic colors
var (
	ColorPrimary   = Green
	ColorSecondary = Cyan
	ColorAccent    = Violet
	ColorSuccess   = Green
	ColorWarning   = Yellow
	ColorError     = Red

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
)
