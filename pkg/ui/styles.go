// Package ui holds the styled-console layer: the severity color
// palette and the console rendering of risk cards. All other output
// formats bypass this package entirely.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wificard/wificard/pkg/posture"
)

// Severity colors (matching OWASP/Nuclei conventions)
var (
	criticalColor = lipgloss.Color("#FF0000")
	highColor     = lipgloss.Color("#FF6B6B")
	mediumColor   = lipgloss.Color("#FFD93D")
	lowColor      = lipgloss.Color("#6BCB77")
	mutedColor    = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	// TitleStyle renders the card header line.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	// SectionStyle renders section headers inside the card.
	SectionStyle = lipgloss.NewStyle().
			Bold(true)

	// LabelStyle renders key names in key/value lines.
	LabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// BracketStyle renders the [ ] around badges.
	BracketStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	criticalStyle = lipgloss.NewStyle().Foreground(criticalColor).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(highColor).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(mediumColor)
	lowStyle      = lipgloss.NewStyle().Foreground(lowColor)
	unknownStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// SeverityStyle returns the style for a severity level.
func SeverityStyle(s posture.Severity) lipgloss.Style {
	switch s {
	case posture.SeverityCritical:
		return criticalStyle
	case posture.SeverityHigh:
		return highStyle
	case posture.SeverityMedium:
		return mediumStyle
	case posture.SeverityLow:
		return lowStyle
	default:
		return unknownStyle
	}
}

// SeverityBadge renders "[Critical]" with the severity's color.
func SeverityBadge(s posture.Severity) string {
	return BracketStyle.Render("[") + SeverityStyle(s).Render(s.String()) + BracketStyle.Render("]")
}
