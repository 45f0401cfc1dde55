// Package story defines a single documented component demo (Story) and the
// registry that routes story ids to them.
package story

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/view"
)

// Meta is the static navigation metadata for a story.
type Meta struct {
	// ID is the unique route for the story, e.g. "buttons".
	ID string
	// Title is the display label, e.g. "Buttons".
	Title string
	// Category groups stories in the sidebar, e.g. "Actions".
	Category string
}

// Story is one component demo with its own state and message type M.
// T is the consumer's theme type.
//
// Meta must not depend on state; it is called on zero values.
// Update mutates the story and performs no I/O.
// View must not mutate the story.
type Story[T, M any] interface {
	Meta() Meta
	Update(msg M)
	View(theme *T) view.Element[M]
}

// Registry owns one instance of every story and routes to them by id.
// M is the aggregate message type, usually a sealed interface implemented
// by each story's message type.
//
// Implementations dispatch with a switch over the declared ids. Update
// silently drops messages for unknown ids or of the wrong story type;
// View returns NotFound for unknown ids.
type Registry[T, M any] interface {
	// Stories lists every story in declaration order.
	Stories() []Meta
	Update(storyID string, msg M)
	View(storyID string, theme *T) view.Element[M]
	// WelcomeView is shown when no story is selected.
	WelcomeView(theme *T) view.Element[M]
}

// Titled is implemented by registries that name their storybook.
type Titled interface {
	Title() string
}

// DefaultTitle names registries that do not implement Titled.
const DefaultTitle = "teabook"

// TitleOf returns the registry's title or DefaultTitle.
func TitleOf(r any) string {
	if t, ok := r.(Titled); ok && t.Title() != "" {
		return t.Title()
	}
	return DefaultTitle
}

var (
	ErrEmptyID     = errors.New("story id is empty")
	ErrDuplicateID = errors.New("duplicate story id")
	ErrUnrouted    = errors.New("story id has no view")
)

// Validate checks that every id is non-empty and unique.
func Validate(stories []Meta) error {
	var errs []error
	seen := make(map[string]bool, len(stories))
	for i, s := range stories {
		if strings.TrimSpace(s.ID) == "" {
			errs = append(errs, fmt.Errorf("story %d (%q): %w", i, s.Title, ErrEmptyID))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("%q: %w", s.ID, ErrDuplicateID))
			continue
		}
		seen[s.ID] = true
	}
	return errors.Join(errs...)
}

// CheckRouting reports every declared story whose view is the fallback,
// i.e. a Stories entry the registry's switch has no arm for.
func CheckRouting[T, M any](r Registry[T, M], theme *T) error {
	var errs []error
	for _, s := range r.Stories() {
		if r.View(s.ID, theme).Fallback {
			errs = append(errs, fmt.Errorf("%q: %w", s.ID, ErrUnrouted))
		}
	}
	return errors.Join(errs...)
}

// Lookup finds the story with the given id.
func Lookup(stories []Meta, id string) (Meta, bool) {
	for _, s := range stories {
		if s.ID == id {
			return s, true
		}
	}
	return Meta{}, false
}

// Forward delivers msg to s if it carries s's message type and reports
// whether it did.
func Forward[T, SM, M any](s Story[T, SM], msg M) bool {
	sm, ok := any(msg).(SM)
	if !ok {
		return false
	}
	s.Update(sm)
	return true
}

// Lift renders s and wraps its messages into the aggregate type.
func Lift[T, SM, M any](s Story[T, SM], theme *T, wrap func(SM) M) view.Element[M] {
	return view.Map(s.View(theme), wrap)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b3b3b3"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// NotFound is the fallback view for an unknown story id.
func NotFound[M any](storyID string) view.Element[M] {
	e := view.Text[M](lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Story not found"),
		"",
		mutedStyle.Render(fmt.Sprintf("No story is registered as %q.", storyID)),
	))
	e.Fallback = true
	return e
}

// Welcome is the default landing view.
func Welcome[M any](title string) view.Element[M] {
	return view.Text[M](lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Welcome to "+title),
		"",
		mutedStyle.Render("Select a component from the sidebar to view its stories."),
	))
}
