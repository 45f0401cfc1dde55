package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/theme"
)

// Styles holds the lipgloss styles derived from a sidebar theme.
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Toggle   lipgloss.Style
	Section  lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// NewStyles creates styles from a sidebar theme.
func NewStyles(th theme.SidebarTheme) Styles {
	bg := lipgloss.Color(th.SidebarBackground())
	base := lipgloss.NewStyle().Background(bg)
	return Styles{
		Base: base,
		Title: base.
			Foreground(lipgloss.Color(th.TextPrimary())).
			Bold(true),
		Toggle: base.
			Foreground(lipgloss.Color(th.TextSecondary())),
		Section: base.
			Foreground(lipgloss.Color(th.TextSecondary())).
			Bold(true),
		Item: base.
			Foreground(lipgloss.Color(th.TextSecondary())),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(th.SelectedBackground())).
			Foreground(lipgloss.Color(th.TextPrimary())).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(th.HoverBackground())).
			Foreground(lipgloss.Color(th.TextPrimary())),
	}
}

// State is the shell-owned state the sidebar is drawn with.
type State struct {
	Selected   string
	Cursor     int
	Focused    bool
	Brightness theme.Brightness
	// Search is the rendered search input, shown when non-empty.
	Search string
	Height int
}

const (
	padX       = 1
	itemIndent = 2
)

// Render draws the sidebar at the theme's width. Rows beyond Height are
// scrolled so the cursor stays visible, or the selected story when the
// sidebar is not focused.
func Render(cfg Config, st State, th theme.SidebarTheme) string {
	return RenderStyled(cfg, st, th, NewStyles(th))
}

// RenderStyled is Render with precomputed styles.
func RenderStyled(cfg Config, st State, th theme.SidebarTheme, s Styles) string {
	width := th.SidebarWidth()
	inner := max(1, width-2*padX)
	row := func(style lipgloss.Style, text string) string {
		return style.Width(width).PaddingLeft(padX).Render(text)
	}

	header := []string{
		row(s.Title, th.TitleFont().Truncate(cfg.Title, inner)),
		row(s.Toggle, th.NavFont().Truncate(toggleLabel(st.Brightness), inner)),
	}
	if st.Search != "" {
		header = append(header, row(s.Base, st.Search))
	}
	header = append(header, row(s.Base, ""))

	var body []string
	focusLine := -1
	n := 0
	for i, sec := range cfg.Sections {
		if i > 0 {
			body = append(body, row(s.Base, ""))
		}
		body = append(body, row(s.Section, th.SectionFont().Truncate(strings.ToUpper(sec.Title), inner)))
		for _, it := range sec.Items {
			label := strings.Repeat(" ", itemIndent) + th.NavFont().Truncate(it.Label, inner-itemIndent)
			style := s.Item
			switch {
			case st.Focused && n == st.Cursor:
				style = s.Cursor
				focusLine = len(body)
			case it.ID == st.Selected:
				style = s.Selected
				if !st.Focused {
					focusLine = len(body)
				}
			}
			body = append(body, row(style, label))
			n++
		}
	}
	if len(body) == 0 {
		body = append(body, row(s.Toggle, "  no matches"))
	}

	if st.Height > 0 {
		room := max(0, st.Height-len(header))
		body = window(body, focusLine, room)
		for len(body) < room {
			body = append(body, row(s.Base, ""))
		}
	}
	return strings.Join(append(header, body...), "\n")
}

func toggleLabel(b theme.Brightness) string {
	if b == theme.Dark {
		return "◐ Dark · t to switch"
	}
	return "◑ Light · t to switch"
}

// window returns at most n lines of lines, keeping focus visible.
func window(lines []string, focus, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := 0
	if focus >= n {
		start = focus - n + 1
	}
	return lines[start : start+n]
}
