// Package book is the storybook shell: a Bubble Tea model that shows a
// registry's stories next to a category sidebar and routes input to the
// selected story.
package book

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jansmrcka/teabook/pkg/prefs"
	"github.com/jansmrcka/teabook/pkg/sidebar"
	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/theme"
)

type focus int

const (
	focusSidebar focus = iota
	focusContent
	focusSearch
)

const (
	minWidth  = 60
	minHeight = 12
)

// StoryMsg addresses Msg to a specific story regardless of which story is
// selected. Commands returned from story code should wrap their results in
// it so late replies reach the story that asked.
type StoryMsg[M any] struct {
	StoryID string
	Msg     M
}

// To wraps msg for the story with the given id.
func To[M any](storyID string, msg M) StoryMsg[M] {
	return StoryMsg[M]{StoryID: storyID, Msg: msg}
}

// Model is the storybook shell. T is the consumer's theme type and M the
// registry's aggregate message type.
type Model[T, M any] struct {
	registry story.Registry[T, M]
	provider theme.Provider[T]
	prefs    *prefs.Preferences
	styles   *theme.Memo[Styles]
	keys     KeyMap
	logger   *log.Logger

	title   string
	stories []story.Meta
	nav     sidebar.Config

	selected  string
	cursor    int
	focus     focus
	search    textinput.Model
	viewport  viewport.Model
	statusMsg string
	width     int
	height    int
	ready     bool
}

type config struct {
	title   string
	initial string
	keys    KeyMap
	logger  *log.Logger
}

// Option configures New.
type Option func(*config)

// WithTitle overrides the registry's title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithInitialStory selects the story shown at startup. A leading "#/" is
// ignored, matching links copied from a browser storybook.
func WithInitialStory(id string) Option {
	return func(c *config) { c.initial = id }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(c *config) { c.keys = k }
}

// New creates the shell. It fails only when the registry declares empty
// or duplicate story ids. A nil p is treated as preferences without a
// persistence medium.
func New[T, M any](reg story.Registry[T, M], provider theme.Provider[T], p *prefs.Preferences, opts ...Option) (Model[T, M], error) {
	cfg := config{
		title:  story.TitleOf(reg),
		keys:   DefaultKeyMap(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if p == nil {
		p = prefs.Open(nil, prefs.WithLogger(cfg.logger))
	}

	stories := reg.Stories()
	if err := story.Validate(stories); err != nil {
		return Model[T, M]{}, fmt.Errorf("invalid registry: %w", err)
	}
	if err := story.CheckRouting(reg, provider.Theme(p.Brightness())); err != nil {
		cfg.logger.Warn("stories without a view", "err", err)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search..."
	ti.CharLimit = 64

	m := Model[T, M]{
		registry: reg,
		provider: provider,
		prefs:    p,
		keys:     cfg.keys,
		logger:   cfg.logger,
		title:    cfg.title,
		stories:  stories,
		nav:      sidebar.Build(cfg.title, stories),
		search:   ti,
	}
	m.styles = theme.NewMemo(func(b theme.Brightness) Styles {
		return NewStyles(provider.SidebarTheme(b))
	})
	m.selected = initialStory(stories, cfg.initial)
	m.cursor = max(0, m.nav.IndexOf(m.selected))
	m.logger.Debug("storybook ready", "title", m.title, "stories", len(stories), "selected", m.selected, "brightness", p.Brightness())
	return m, nil
}

// initialStory resolves the requested id against the registered stories,
// falling back to the first story and then to the welcome view.
func initialStory(stories []story.Meta, requested string) string {
	id := strings.ToLower(strings.TrimSpace(requested))
	id = strings.TrimPrefix(strings.TrimPrefix(id, "#"), "/")
	if _, ok := story.Lookup(stories, id); ok && id != "" {
		return id
	}
	if len(stories) > 0 {
		return stories[0].ID
	}
	return ""
}

// Selected returns the selected story id, empty for the welcome view.
func (m Model[T, M]) Selected() string { return m.selected }

// Brightness returns the current brightness.
func (m Model[T, M]) Brightness() theme.Brightness { return m.prefs.Brightness() }

func (m Model[T, M]) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Run starts a Bubble Tea program for m and blocks until it exits.
func Run[T, M any](m Model[T, M], opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
