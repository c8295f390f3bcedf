// Package styles holds the lipgloss styles used for everything printed
// between prompts: confirmations, errors, captions and table chrome
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/config/colors"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style // Listing captions like "Viewing all roles by title:"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	NoticeStyle  lipgloss.Style // Selection echo and placeholder actions

	// Table styles
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	BorderStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	NoticeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Notice))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Success renders a write confirmation
func Success(text string) string {
	return SuccessStyle.Render(text)
}

// Error renders a recovered error message
func Error(text string) string {
	return ErrorStyle.Render(text)
}

// Notice renders a neutral, yellow notice
func Notice(text string) string {
	return NoticeStyle.Render(text)
}

// Subtle renders muted caption text
func Subtle(text string) string {
	return SubtleStyle.Render(text)
}

// Title renders bold title text
func Title(text string) string {
	return TitleStyle.Render(text)
}
