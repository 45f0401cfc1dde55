// Package demo is an example component library storybook: a theme with
// dark and light palettes and a handful of stories.
package demo

import (
	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// Message is implemented by every story message in this registry.
type Message interface{ isMessage() }

func (ButtonMsg) isMessage()     {}
func (InputMsg) isMessage()      {}
func (TypographyMsg) isMessage() {}
func (ColorsMsg) isMessage()     {}
func (CodeMsg) isMessage()       {}

// Stories owns one instance of every demo story.
type Stories struct {
	buttons    ButtonStory
	inputs     InputStory
	typography TypographyStory
	colors     ColorsStory
	code       CodeStory
}

// NewStories returns the registry with every story in its initial state.
func NewStories() *Stories { return &Stories{} }

func (*Stories) Title() string { return "Example Storybook" }

func (*Stories) Stories() []story.Meta {
	return []story.Meta{
		(*ButtonStory)(nil).Meta(),
		(*InputStory)(nil).Meta(),
		(*TypographyStory)(nil).Meta(),
		(*ColorsStory)(nil).Meta(),
		(*CodeStory)(nil).Meta(),
	}
}

func (r *Stories) Update(storyID string, msg Message) {
	switch storyID {
	case "buttons":
		story.Forward(&r.buttons, msg)
	case "inputs":
		story.Forward(&r.inputs, msg)
	case "typography":
		story.Forward(&r.typography, msg)
	case "colors":
		story.Forward(&r.colors, msg)
	case "code":
		story.Forward(&r.code, msg)
	}
}

func (r *Stories) View(storyID string, th *Theme) view.Element[Message] {
	switch storyID {
	case "buttons":
		return story.Lift(&r.buttons, th, func(m ButtonMsg) Message { return m })
	case "inputs":
		return story.Lift(&r.inputs, th, func(m InputMsg) Message { return m })
	case "typography":
		return story.Lift(&r.typography, th, func(m TypographyMsg) Message { return m })
	case "colors":
		return story.Lift(&r.colors, th, func(m ColorsMsg) Message { return m })
	case "code":
		return story.Lift(&r.code, th, func(m CodeMsg) Message { return m })
	default:
		return story.NotFound[Message](storyID)
	}
}

func (r *Stories) WelcomeView(*Theme) view.Element[Message] {
	return story.Welcome[Message](r.Title())
}
