package book

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/sidebar"
	"github.com/jansmrcka/teabook/pkg/theme"
)

// Styles holds the shell chrome styles for one brightness.
type Styles struct {
	Sidebar sidebar.Styles

	Border        lipgloss.Style
	BorderFocused lipgloss.Style
	CardBg        lipgloss.Style
	StatusBar     lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates chrome styles from a sidebar theme.
func NewStyles(th theme.SidebarTheme) Styles {
	return Styles{
		Sidebar: sidebar.NewStyles(th),

		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.HoverBackground())),
		BorderFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.TextSecondary())),
		CardBg: lipgloss.NewStyle().
			Background(lipgloss.Color(th.ContentBackground())),
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(th.SidebarBackground())).
			Foreground(lipgloss.Color(th.TextSecondary())),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.TextPrimary())).
			Bold(true).
			Underline(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.TextSecondary())),
	}
}
