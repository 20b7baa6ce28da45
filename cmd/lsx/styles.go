// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by help text, diagnostics and the text explain view.
const (
	// ColorPrimary is purple, for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, for subtitles and default decisions.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorError is red, for errors.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber, for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, for flag names and values chosen by a rule.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for error prefixes.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning prefixes.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for flag names and examples.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
