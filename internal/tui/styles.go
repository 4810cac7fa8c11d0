package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	dangerColor = lipgloss.AdaptiveColor{Light: "#C4314B", Dark: "#F25D7A"}
	okColor     = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	labelStyle      = lipgloss.NewStyle().Foreground(mutedColor).Width(14)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	statusStyle     = lipgloss.NewStyle().Foreground(okColor)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(1, 2)
)
