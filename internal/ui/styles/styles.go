// Package styles defines the terminal appearance of ratcycle's output.
// Colors come from the Catppuccin Mocha palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")
	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
)

// Semantic colors (using the palette)
var (
	Danger    = Red
	Warning   = Peach
	Success   = Green
	Accent    = Sapphire
	TextCol   = Text
	TextMuted = Subtext0
	Muted     = Overlay0
)

var (
	// ErrorHeader introduces a fatal startup report.
	ErrorHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	// ListItem renders one entry of a report list.
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			PaddingLeft(2)

	// Footer closes a report.
	Footer = lipgloss.NewStyle().
			Foreground(TextMuted)

	// Diagnostic renders informational progress lines.
	Diagnostic = lipgloss.NewStyle().
			Foreground(Muted)

	// Value highlights numbers inside diagnostic lines.
	Value = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	// SuccessText renders the final outcome of a successful run.
	SuccessText = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	// WarningText renders non-fatal problems.
	WarningText = lipgloss.NewStyle().
			Foreground(Warning)
)

// TruncateWithEllipsis shortens s to maxLen runes, ending with "...".
func TruncateWithEllipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
