package demo

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// ColorsMsg is never produced; the story is static.
type ColorsMsg struct{}

// ColorsStory shows the theme palette as swatches.
type ColorsStory struct{}

func (*ColorsStory) Meta() story.Meta {
	return story.Meta{ID: "colors", Title: "Colors", Category: "Foundation"}
}

func (*ColorsStory) Update(ColorsMsg) {}

func (*ColorsStory) View(th *Theme) view.Element[ColorsMsg] {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Fg))
	rows := []view.Element[ColorsMsg]{
		view.Text[ColorsMsg](text.Bold(true).Render("Colors Story")),
	}
	for _, sw := range th.Palette() {
		rows = append(rows, view.Row(1,
			view.Text[ColorsMsg](swatch(sw.Hex)),
			view.Text[ColorsMsg](text.Render(fmt.Sprintf("%-10s %s", sw.Name, sw.Hex))),
		))
	}
	return view.Column(0, rows...)
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}
