// Package view defines Element, the renderable value every story and
// registry view returns. An element carries its rendered body together
// with the key handler that turns user input into its own message type.
package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Element is a rendered view whose interactions produce messages of type M.
type Element[M any] struct {
	Body string
	// Bindings are shown in the help bar while the element is active.
	Bindings []key.Binding
	// Fallback marks placeholder views such as "story not found".
	Fallback bool

	handle func(tea.KeyMsg) (M, bool)
}

// Text returns a non-interactive element.
func Text[M any](body string) Element[M] {
	return Element[M]{Body: body}
}

// On makes b produce msg. Handlers registered earlier win.
func (e Element[M]) On(b key.Binding, msg M) Element[M] {
	return e.OnKey(func(k tea.KeyMsg) (M, bool) {
		if key.Matches(k, b) {
			return msg, true
		}
		var zero M
		return zero, false
	}, b)
}

// OnKey adds a free-form key handler, for text entry and similar.
func (e Element[M]) OnKey(f func(tea.KeyMsg) (M, bool), help ...key.Binding) Element[M] {
	prev := e.handle
	e.Bindings = appendBindings(e.Bindings, help)
	if prev == nil {
		e.handle = f
		return e
	}
	e.handle = func(k tea.KeyMsg) (M, bool) {
		if msg, ok := prev(k); ok {
			return msg, true
		}
		return f(k)
	}
	return e
}

// Handle offers k to the element.
func (e Element[M]) Handle(k tea.KeyMsg) (M, bool) {
	if e.handle == nil {
		var zero M
		return zero, false
	}
	return e.handle(k)
}

// Interactive reports whether the element handles any keys.
func (e Element[M]) Interactive() bool { return e.handle != nil }

// Map lifts the element's messages into another type.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	out := Element[B]{Body: e.Body, Bindings: e.Bindings, Fallback: e.Fallback}
	if e.handle == nil {
		return out
	}
	inner := e.handle
	out.handle = func(k tea.KeyMsg) (B, bool) {
		msg, ok := inner(k)
		if !ok {
			var zero B
			return zero, false
		}
		return f(msg), true
	}
	return out
}

// Column stacks children vertically with gap blank lines between them.
func Column[M any](gap int, children ...Element[M]) Element[M] {
	return join(children, func(bodies []string) string {
		return lipgloss.JoinVertical(lipgloss.Left, spaced(bodies, gap, "\n")...)
	})
}

// Row places children side by side with gap spaces between them.
func Row[M any](gap int, children ...Element[M]) Element[M] {
	return join(children, func(bodies []string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, spaced(bodies, gap, " ")...)
	})
}

func join[M any](children []Element[M], layout func([]string) string) Element[M] {
	var out Element[M]
	bodies := make([]string, 0, len(children))
	for _, c := range children {
		bodies = append(bodies, c.Body)
		if c.handle != nil {
			out = out.OnKey(c.handle)
		}
		out.Bindings = appendBindings(out.Bindings, c.Bindings)
	}
	out.Body = layout(bodies)
	return out
}

func spaced(bodies []string, gap int, unit string) []string {
	if gap <= 0 || len(bodies) < 2 {
		return bodies
	}
	sep := strings.Repeat(unit, gap)
	if unit == "\n" {
		// JoinVertical already breaks between blocks.
		sep = sep[1:]
	}
	out := make([]string, 0, len(bodies)*2-1)
	for i, b := range bodies {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}

func appendBindings(dst, src []key.Binding) []key.Binding {
	if len(src) == 0 {
		return dst
	}
	out := make([]key.Binding, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}
