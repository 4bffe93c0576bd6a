package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title          *lipgloss.Style
	Subtitle       *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Tile           *lipgloss.Style
	TileLabel      *lipgloss.Style
	ActiveTile     *lipgloss.Style
	ActiveLabel    *lipgloss.Style
	Button         *lipgloss.Style
	ButtonHover    *lipgloss.Style
	ButtonPosition *lipgloss.Style
	Ghost          *lipgloss.Style
	Prompt         *lipgloss.Style
	PromptMatch    *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-800"))).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-500"))),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Tile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-200"))),
	),
	TileLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-500"))),
	),
	ActiveTile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("amber-300"))).Bold(true),
	),
	ActiveLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-800"))).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(Hex("stone-700"))).
			Background(lipgloss.Color(Hex("amber-100"))).
			Bold(true),
	),
	ButtonHover: ptr(
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(Hex("stone-900"))).
			Background(lipgloss.Color(Hex("amber-200"))).
			Bold(true),
	),
	ButtonPosition: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("stone-500"))).Background(lipgloss.Color(Hex("amber-100"))),
	),
	Ghost: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex("amber-300"))),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
