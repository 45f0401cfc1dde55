package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// TypographyMsg is never produced; the story is static.
type TypographyMsg struct{}

// TypographyStory shows the text scale.
type TypographyStory struct{}

func (*TypographyStory) Meta() story.Meta {
	return story.Meta{ID: "typography", Title: "Typography", Category: "Foundation"}
}

func (*TypographyStory) Update(TypographyMsg) {}

func (*TypographyStory) View(th *Theme) view.Element[TypographyMsg] {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Fg))
	return view.Column(1,
		view.Text[TypographyMsg](base.Bold(true).Underline(true).Render("TYPOGRAPHY STORY")),
		view.Text[TypographyMsg](base.Bold(true).Render("HEADING 1")),
		view.Text[TypographyMsg](base.Bold(true).Render("Heading 2")),
		view.Text[TypographyMsg](base.Italic(true).Render("Heading 3")),
		view.Text[TypographyMsg](base.Render("Body text - The quick brown fox jumps over the lazy dog.")),
		view.Text[TypographyMsg](base.Foreground(lipgloss.Color(th.Muted)).Faint(true).Render("Caption text")),
	)
}
