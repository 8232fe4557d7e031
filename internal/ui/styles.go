// internal/ui/styles.go
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Cyan     = lipgloss.Color("#00FFFF")
	Green    = lipgloss.Color("#00FF00")
	Yellow   = lipgloss.Color("#FFD700")
	Orange   = lipgloss.Color("#FFA500")
	Red      = lipgloss.Color("#FF6B6B")
	Magenta  = lipgloss.Color("#FF00FF")
	SkyBlue  = lipgloss.Color("#87CEEB")
	Violet   = lipgloss.Color("#B19CD9")
	Dim      = lipgloss.Color("#555555")
	White    = lipgloss.Color("#FFFFFF")

	// Box styles
	ActiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cyan)

	InactiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Yellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(Dim)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	// Status indicators
	StatusOK   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	StatusWarn = lipgloss.NewStyle().Foreground(Orange).Bold(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true).
			Underline(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Dim)
)

// ProviderColor returns the accent color for a model provider
func ProviderColor(provider string) lipgloss.Color {
	switch provider {
	case "OpenAI":
		return Green
	case "Anthropic":
		return Orange
	case "Google":
		return Cyan
	case "Meta":
		return SkyBlue
	case "xAI":
		return White
	case "Mistral":
		return Yellow
	case "Cohere":
		return Violet
	default:
		return Magenta
	}
}

// ModelStyle returns the name style for a model's provider
func ModelStyle(provider string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ProviderColor(provider)).Bold(true)
}
