package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#FF6B6B") // Red - title, errors
	colorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, applied selections
	colorAccent    = lipgloss.Color("#ffe66d") // Yellow - suggest spans, focus, picker
	colorMuted     = lipgloss.Color("#666666") // Gray - help text
	colorSuccess   = lipgloss.Color("#a8e6cf") // Green - phonetic spans, status
	colorText      = lipgloss.Color("#f1faee") // Light text
	colorLabel     = lipgloss.Color("#a8dadc") // Inspector labels
	colorBg        = lipgloss.Color("#1a1a2e") // Dark background
	colorBorder    = lipgloss.Color("#3d5a80") // Border color
	colorSeparator = lipgloss.Color("#888888") // Inter-token separators
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(colorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Token span styles, keyed by the filter action
	spanPlainStyle = lipgloss.NewStyle().
			Foreground(colorText)

	spanPhoneticStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	spanSuggestStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Underline(true)

	spanFocusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBg).
			Background(colorAccent)

	spanAppliedStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(colorSeparator)

	textBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	inspectorBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSecondary).
				Padding(1, 2)

	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Margin(1, 0)

	pickerItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	pickerActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBg).
				Background(colorAccent).
				Padding(0, 1)

	glyphStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(11)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
