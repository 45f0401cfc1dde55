package book

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jansmrcka/teabook/pkg/sidebar"
	"github.com/jansmrcka/teabook/pkg/view"
)

// Update routes brightness toggles to the preferences, navigation to the
// shell itself and everything else to the registry.
func (m Model[T, M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case sidebar.ToggleBrightnessMsg:
		return m.handleToggle()
	case sidebar.SelectStoryMsg:
		return m.handleSelect(msg)
	case sidebar.SearchChangedMsg:
		return m.handleSearch(msg)
	case StoryMsg[M]:
		m.registry.Update(msg.StoryID, msg.Msg)
		return m.syncContent(), nil
	case tea.KeyMsg:
		switch m.focus {
		case focusContent:
			return m.updateContentFocus(msg)
		case focusSearch:
			return m.updateSearchFocus(msg)
		default:
			return m.updateSidebarFocus(msg)
		}
	case M:
		m.registry.Update(m.selected, msg)
		return m.syncContent(), nil
	}
	return m, nil
}

func (m Model[T, M]) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if m.ready {
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = m.contentHeight()
	} else {
		m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
	}
	m.search.Width = max(1, m.sidebarWidth()-4)
	m.ready = true
	return m.syncContent(), nil
}

func (m Model[T, M]) handleToggle() (tea.Model, tea.Cmd) {
	b := m.prefs.Toggle()
	m.statusMsg = b.String() + " mode"
	return m.syncContent(), nil
}

func (m Model[T, M]) handleSelect(msg sidebar.SelectStoryMsg) (tea.Model, tea.Cmd) {
	if msg.ID == m.selected {
		return m, nil
	}
	m.selected = msg.ID
	if i := m.visible().IndexOf(msg.ID); i >= 0 {
		m.cursor = i
	}
	m.statusMsg = ""
	m = m.syncContent()
	m.viewport.GotoTop()
	return m, nil
}

func (m Model[T, M]) handleSearch(msg sidebar.SearchChangedMsg) (tea.Model, tea.Cmd) {
	if m.search.Value() != msg.Query {
		m.search.SetValue(msg.Query)
	}
	nav := m.visible()
	if i := nav.IndexOf(m.selected); i >= 0 {
		m.cursor = i
	} else {
		m.cursor = min(m.cursor, max(0, nav.Len()-1))
	}
	return m, nil
}

// sidebarMsg maps a key pressed in the sidebar to the message it stands for.
func (m Model[T, M]) sidebarMsg(k tea.KeyMsg) (tea.Msg, bool) {
	km := m.keys.Sidebar
	items := m.visible().Items()
	switch {
	case key.Matches(k, km.Toggle):
		return sidebar.ToggleBrightnessMsg{}, true
	case key.Matches(k, km.Home):
		return sidebar.SelectStoryMsg{}, true
	case key.Matches(k, km.Up):
		if m.cursor > 0 && m.cursor-1 < len(items) {
			return sidebar.SelectStoryMsg{ID: items[m.cursor-1].ID}, true
		}
	case key.Matches(k, km.Down):
		if m.cursor+1 < len(items) {
			return sidebar.SelectStoryMsg{ID: items[m.cursor+1].ID}, true
		}
	}
	return nil, false
}

func (m Model[T, M]) updateSidebarFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, ok := m.sidebarMsg(msg); ok {
		return m.Update(next)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Sidebar.Search):
		m.focus = focusSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Sidebar.Select):
		items := m.visible().Items()
		if m.cursor < len(items) && items[m.cursor].ID != m.selected {
			next, _ := m.handleSelect(sidebar.SelectStoryMsg{ID: items[m.cursor].ID})
			m = next.(Model[T, M])
		}
		m.focus = focusContent
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusContent
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()
	}
	return m, nil
}

func (m Model[T, M]) updateContentFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if sm, ok := m.element().Handle(msg); ok {
		return m.Update(To(m.selected, sm))
	}
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		m.focus = focusSidebar
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model[T, M]) updateSearchFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusSidebar
		m.search.Blur()
		return m.Update(sidebar.SearchChangedMsg{})
	case tea.KeyEnter:
		m.focus = focusSidebar
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyUp, tea.KeyDown:
		if next, ok := m.sidebarMsg(msg); ok {
			return m.Update(next)
		}
		return m, nil
	}
	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != prev {
		next, _ := m.Update(sidebar.SearchChangedMsg{Query: q})
		return next, cmd
	}
	return m, cmd
}

// visible returns the navigation tree after the search filter.
func (m Model[T, M]) visible() sidebar.Config {
	return m.nav.Filter(m.search.Value())
}

// element renders the selected story, or the welcome view.
func (m Model[T, M]) element() view.Element[M] {
	th := m.provider.Theme(m.prefs.Brightness())
	if m.selected == "" {
		return m.registry.WelcomeView(th)
	}
	return m.registry.View(m.selected, th)
}

// syncContent re-renders the active view into the viewport.
func (m Model[T, M]) syncContent() Model[T, M] {
	if !m.ready {
		return m
	}
	m.viewport.SetContent(m.element().Body)
	return m
}
