package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// ButtonOp is an interaction with the buttons story.
type ButtonOp int

const (
	ButtonPress ButtonOp = iota
	ButtonNext
	ButtonPrev
	ButtonReset
)

// ButtonMsg is the buttons story message.
type ButtonMsg struct {
	Op ButtonOp
}

var buttonVariants = []string{"Primary", "Secondary", "Danger"}

var buttonKeys = struct {
	press, next, prev, reset key.Binding
}{
	press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
	next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "focus")),
	prev:  key.NewBinding(key.WithKeys("left", "h")),
	reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
}

// ButtonStory counts clicks per button variant.
type ButtonStory struct {
	focused int
	clicks  [3]int
	last    string
}

func (*ButtonStory) Meta() story.Meta {
	return story.Meta{ID: "buttons", Title: "Buttons", Category: "Components"}
}

func (s *ButtonStory) Update(msg ButtonMsg) {
	switch msg.Op {
	case ButtonPress:
		s.clicks[s.focused]++
		s.last = buttonVariants[s.focused]
	case ButtonNext:
		s.focused = (s.focused + 1) % len(buttonVariants)
	case ButtonPrev:
		s.focused = (s.focused + len(buttonVariants) - 1) % len(buttonVariants)
	case ButtonReset:
		*s = ButtonStory{focused: s.focused}
	}
}

// Total is the number of clicks across all variants.
func (s *ButtonStory) Total() int {
	n := 0
	for _, c := range s.clicks {
		n += c
	}
	return n
}

func (s *ButtonStory) View(th *Theme) view.Element[ButtonMsg] {
	fg := lipgloss.Color(th.Fg)
	title := lipgloss.NewStyle().Foreground(fg).Bold(true).Render("Button Story")
	count := lipgloss.NewStyle().Foreground(fg).Render(fmt.Sprintf("Click count: %d", s.Total()))

	buttons := make([]view.Element[ButtonMsg], 0, len(buttonVariants))
	for i, name := range buttonVariants {
		buttons = append(buttons, view.Text[ButtonMsg](s.renderButton(th, i, name)))
	}

	last := "Nothing clicked yet"
	if s.last != "" {
		last = "Last clicked: " + s.last
	}
	return view.Column(1,
		view.Text[ButtonMsg](title),
		view.Text[ButtonMsg](count),
		view.Row(1, buttons...),
		view.Text[ButtonMsg](lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted)).Render(last)),
	).
		On(buttonKeys.press, ButtonMsg{Op: ButtonPress}).
		On(buttonKeys.next, ButtonMsg{Op: ButtonNext}).
		On(buttonKeys.prev, ButtonMsg{Op: ButtonPrev}).
		On(buttonKeys.reset, ButtonMsg{Op: ButtonReset})
}

func (s *ButtonStory) renderButton(th *Theme, i int, name string) string {
	bg, fg := th.SecondaryBg, th.SecondaryFg
	switch name {
	case "Primary":
		bg, fg = th.PrimaryBg, th.PrimaryFg
	case "Danger":
		bg, fg = th.DangerBg, th.DangerFg
	}
	border := lipgloss.HiddenBorder()
	borderFg := th.Bg
	if i == s.focused {
		border = lipgloss.RoundedBorder()
		borderFg = th.FocusFg
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(borderFg)).
		Render(lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Bold(true).
			Padding(0, 2).
			Render(name))
}
