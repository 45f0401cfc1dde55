package book

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jansmrcka/teabook/pkg/sidebar"
	"github.com/jansmrcka/teabook/pkg/story"
)

func (m Model[T, M]) View() string {
	if m.width == 0 || !m.ready {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", m.width, m.height, minWidth, minHeight)
	}
	b := m.prefs.Brightness()
	sth := m.provider.SidebarTheme(b)
	st := m.styles.Get(b)

	state := sidebar.State{
		Selected:   m.selected,
		Cursor:     m.cursor,
		Focused:    m.focus != focusContent,
		Brightness: b,
		Height:     m.mainHeight(),
	}
	if m.focus == focusSearch || m.search.Value() != "" {
		state.Search = m.search.View()
	}
	side := sidebar.RenderStyled(m.visible(), state, sth, st.Sidebar)
	title := sth.NavFont().Truncate(m.cardTitle(), m.contentWidth()-3)
	card := m.renderCard(st, title, m.viewport.View(), m.focus == focusContent)
	main := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", card)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar(st), m.renderHelpBar(st))
}

func (m Model[T, M]) sidebarWidth() int {
	return m.provider.SidebarTheme(m.prefs.Brightness()).SidebarWidth()
}

// mainHeight is the height of the sidebar and the card including borders.
func (m Model[T, M]) mainHeight() int {
	return max(0, m.height-2)
}

func (m Model[T, M]) contentWidth() int {
	return max(1, m.width-m.sidebarWidth()-3)
}

func (m Model[T, M]) contentHeight() int {
	return max(1, m.mainHeight()-2)
}

// renderCard draws content in a rounded border. title must already fit
// the card width.
func (m Model[T, M]) renderCard(st *Styles, title, content string, focused bool) string {
	w, h := m.contentWidth(), m.contentHeight()
	bs := st.Border
	if focused {
		bs = st.BorderFocused
	}
	titleStr := ""
	if title != "" {
		titleStr = " " + title + " "
	}
	topFill := max(0, w-lipgloss.Width(titleStr)-1)
	top := bs.Render("╭─" + titleStr + strings.Repeat("─", topFill) + "╮")
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	rows := make([]string, 0, h)
	for i := 0; i < h; i++ {
		line := lines[i]
		if pad := w - lipgloss.Width(line); pad > 0 {
			line += st.CardBg.Render(strings.Repeat(" ", pad))
		}
		rows = append(rows, bs.Render("│")+line+bs.Render("│"))
	}
	bottom := bs.Render("╰" + strings.Repeat("─", w) + "╯")
	return lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(rows, "\n"), bottom)
}

func (m Model[T, M]) cardTitle() string {
	if m.selected == "" {
		return "Welcome"
	}
	if s, ok := story.Lookup(m.stories, m.selected); ok {
		return s.Title
	}
	return m.selected
}

func (m Model[T, M]) renderStatusBar(st *Styles) string {
	left := " " + m.title
	if s, ok := story.Lookup(m.stories, m.selected); ok {
		left += "  " + s.Category + " › " + s.Title
	}
	left += "  " + m.prefs.Brightness().String()
	if q := m.search.Value(); q != "" {
		left += fmt.Sprintf("  %d/%d match %q", m.visible().Len(), m.nav.Len(), q)
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	return st.StatusBar.Width(m.width).Render(ansi.Truncate(left, m.width, "…"))
}

func (m Model[T, M]) helpBindings() []key.Binding {
	switch m.focus {
	case focusContent:
		out := append([]key.Binding{}, m.element().Bindings...)
		return append(out, m.keys.Back, m.keys.Toggle, m.keys.Quit)
	case focusSearch:
		return []key.Binding{
			key.NewBinding(key.WithHelp("type", "filter")),
			key.NewBinding(key.WithHelp("↑/↓", "navigate")),
			key.NewBinding(key.WithHelp("enter", "keep")),
			key.NewBinding(key.WithHelp("esc", "clear")),
		}
	default:
		return append(m.keys.Sidebar.ShortHelp(), m.keys.Focus, m.keys.Quit)
	}
}

func (m Model[T, M]) renderHelpBar(st *Styles) string {
	bindings := m.helpBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, st.HelpKey.Render(h.Key)+" "+st.HelpDesc.Render(h.Desc))
	}
	bar := ansi.Truncate(" "+strings.Join(parts, "  ·  "), m.width, "…")
	return lipgloss.NewStyle().Width(m.width).Render(bar)
}
