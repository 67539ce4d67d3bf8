package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles of one color scheme. The dark-mode toggle swaps
// the whole theme at once.
type Theme struct {
	Name string

	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	Panel      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Formula    lipgloss.Style
	Derivation lipgloss.Style
	Diagram    lipgloss.Style

	ErrorBanner lipgloss.Style
	StatusBar   lipgloss.Style
	Help        lipgloss.Style
}

// DarkTheme is the default scheme
func DarkTheme() Theme {
	var (
		primary = lipgloss.Color("#8B5CF6") // Violet
		accent  = lipgloss.Color("#06B6D4") // Cyan
		fg      = lipgloss.Color("#F8FAFC") // Slate 50
		muted   = lipgloss.Color("#94A3B8") // Slate 400
		errorC  = lipgloss.Color("#EF4444") // Red
		panel   = lipgloss.Color("#1E293B") // Slate 800
	)

	return Theme{
		Name: "dark",

		Title: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Tab: lipgloss.NewStyle().Padding(0, 2).
			Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(fg).Background(primary),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		Label:      lipgloss.NewStyle().Foreground(muted),
		Value:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Formula:    lipgloss.NewStyle().Foreground(accent),
		Derivation: lipgloss.NewStyle().Foreground(fg),
		Diagram:    lipgloss.NewStyle().Foreground(accent),

		ErrorBanner: lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(fg).Background(errorC),
		StatusBar: lipgloss.NewStyle().Padding(0, 1).
			Foreground(muted).Background(panel),
		Help: lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

// LightTheme mirrors the dark theme with colors readable on light terminals
func LightTheme() Theme {
	var (
		primary = lipgloss.Color("#6D28D9") // Violet 700
		accent  = lipgloss.Color("#0E7490") // Cyan 700
		fg      = lipgloss.Color("#0F172A") // Slate 900
		muted   = lipgloss.Color("#64748B") // Slate 500
		errorC  = lipgloss.Color("#B91C1C") // Red 700
		panel   = lipgloss.Color("#E2E8F0") // Slate 200
	)

	return Theme{
		Name: "light",

		Title: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Tab: lipgloss.NewStyle().Padding(0, 2).
			Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(panel).Background(primary),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		Label:      lipgloss.NewStyle().Foreground(muted),
		Value:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Formula:    lipgloss.NewStyle().Foreground(accent),
		Derivation: lipgloss.NewStyle().Foreground(fg),
		Diagram:    lipgloss.NewStyle().Foreground(accent),

		ErrorBanner: lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(panel).Background(errorC),
		StatusBar: lipgloss.NewStyle().Padding(0, 1).
			Foreground(fg).Background(panel),
		Help: lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
