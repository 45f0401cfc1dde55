package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// CodeMsg moves between snippets by Delta.
type CodeMsg struct {
	Delta int
}

type snippet struct {
	name     string
	language string
	source   string
}

var snippets = []snippet{
	{name: "Go", language: "go", source: `func (s *ButtonStory) Update(msg ButtonMsg) {
	if msg.Op == ButtonPress {
		s.clicks[s.focused]++
	}
}`},
	{name: "JSON", language: "json", source: `{
  // preferences.json
  "teabook_theme": "dark",
}`},
	{name: "YAML", language: "yaml", source: `stories:
  - id: buttons
    category: Components
  - id: colors
    category: Foundation`},
}

var codeKeys = struct {
	next, prev key.Binding
}{
	next: key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/p", "snippet")),
	prev: key.NewBinding(key.WithKeys("p", "left")),
}

// CodeStory shows syntax highlighted snippets in the theme's chroma style.
type CodeStory struct {
	index int
}

func (*CodeStory) Meta() story.Meta {
	return story.Meta{ID: "code", Title: "Code", Category: "Foundation"}
}

func (s *CodeStory) Update(msg CodeMsg) {
	n := len(snippets)
	s.index = ((s.index+msg.Delta)%n + n) % n
}

func (s *CodeStory) View(th *Theme) view.Element[CodeMsg] {
	sn := snippets[s.index]
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Fg))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted))
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(th.CodeBg)).
		Padding(1, 2)

	return view.Column(1,
		view.Text[CodeMsg](text.Bold(true).Render("Code Story")),
		view.Text[CodeMsg](muted.Render(fmt.Sprintf("%s  %d/%d  style %s", sn.name, s.index+1, len(snippets), th.ChromaStyle))),
		view.Text[CodeMsg](block.Render(highlight(sn.source, sn.language, th.ChromaStyle, th.CodeBg))),
	).
		On(codeKeys.next, CodeMsg{Delta: 1}).
		On(codeKeys.prev, CodeMsg{Delta: -1})
}
