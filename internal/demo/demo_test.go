package demo

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/theme"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStories_Valid(t *testing.T) {
	t.Parallel()

	r := NewStories()
	if err := story.Validate(r.Stories()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, b := range []theme.Brightness{theme.Dark, theme.Light} {
		if err := story.CheckRouting(r, Provider().Theme(b)); err != nil {
			t.Fatalf("CheckRouting(%v): %v", b, err)
		}
	}
	if story.TitleOf(r) != "Example Storybook" {
		t.Fatalf("title = %q", story.TitleOf(r))
	}
}

func TestStories_Categories(t *testing.T) {
	t.Parallel()

	var got []string
	for _, m := range NewStories().Stories() {
		got = append(got, m.ID+":"+m.Category)
	}
	want := "buttons:Components,inputs:Components,typography:Foundation,colors:Foundation,code:Foundation"
	if strings.Join(got, ",") != want {
		t.Fatalf("stories = %v", got)
	}
}

func TestStories_UnknownIDFallsBack(t *testing.T) {
	t.Parallel()

	r := NewStories()
	el := r.View("nope", Provider().Theme(theme.Dark))
	if !el.Fallback {
		t.Fatal("expected fallback view")
	}
	r.Update("nope", ButtonMsg{Op: ButtonPress})
	if r.buttons.Total() != 0 {
		t.Fatal("expected message for unknown id to be dropped")
	}
}

func TestStories_MismatchedMessageDropped(t *testing.T) {
	t.Parallel()

	r := NewStories()
	r.Update("buttons", CodeMsg{Delta: 1})
	r.Update("code", ButtonMsg{Op: ButtonPress})
	if r.buttons.Total() != 0 || r.code.index != 0 {
		t.Fatal("expected mismatched messages to be dropped")
	}
}

func TestButtons_ClickThroughView(t *testing.T) {
	t.Parallel()

	r := NewStories()
	th := Provider().Theme(theme.Dark)
	for range 3 {
		msg, ok := r.View("buttons", th).Handle(tea.KeyMsg{Type: tea.KeyEnter})
		if !ok {
			t.Fatal("expected enter to click")
		}
		r.Update("buttons", msg)
	}
	if r.buttons.Total() != 3 {
		t.Fatalf("clicks = %d, want 3", r.buttons.Total())
	}
	out := ansi.Strip(r.View("buttons", th).Body)
	if !strings.Contains(out, "Click count: 3") || !strings.Contains(out, "Last clicked: Primary") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}

func TestButtons_FocusAndReset(t *testing.T) {
	t.Parallel()

	var s ButtonStory
	s.Update(ButtonMsg{Op: ButtonPrev})
	if s.focused != 2 {
		t.Fatalf("focused = %d, want 2", s.focused)
	}
	s.Update(ButtonMsg{Op: ButtonNext})
	s.Update(ButtonMsg{Op: ButtonNext})
	s.Update(ButtonMsg{Op: ButtonPress})
	if s.clicks[1] != 1 || s.last != "Secondary" {
		t.Fatalf("clicks = %v last = %q", s.clicks, s.last)
	}
	s.Update(ButtonMsg{Op: ButtonReset})
	if s.Total() != 0 || s.last != "" || s.focused != 1 {
		t.Fatalf("after reset: %+v", s)
	}
}

func TestInputs_TypeAndSubmit(t *testing.T) {
	t.Parallel()

	r := NewStories()
	th := Provider().Theme(theme.Light)
	send := func(k tea.KeyMsg) {
		t.Helper()
		msg, ok := r.View("inputs", th).Handle(k)
		if !ok {
			t.Fatalf("expected input to take %q", k.String())
		}
		r.Update("inputs", msg)
	}

	send(keyRunes("hello"))
	send(tea.KeyMsg{Type: tea.KeyBackspace})
	if r.inputs.Value() != "hell" {
		t.Fatalf("value = %q, want hell", r.inputs.Value())
	}
	if !strings.Contains(ansi.Strip(r.View("inputs", th).Body), "You typed: hell") {
		t.Fatal("expected echo of typed text")
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if r.inputs.Value() != "" {
		t.Fatalf("value after submit = %q", r.inputs.Value())
	}
	if !strings.Contains(ansi.Strip(r.View("inputs", th).Body), "Submitted: hell") {
		t.Fatal("expected submitted value")
	}

	if _, ok := r.View("inputs", th).Handle(tea.KeyMsg{Type: tea.KeyEsc}); ok {
		t.Fatal("esc must stay with the shell")
	}
}

func TestInputs_ViewDoesNotMutate(t *testing.T) {
	t.Parallel()

	var s InputStory
	_ = s.View(Provider().Theme(theme.Dark))
	if s.ready {
		t.Fatal("View must not initialize the story")
	}
}

func TestCode_CyclesSnippets(t *testing.T) {
	t.Parallel()

	var s CodeStory
	s.Update(CodeMsg{Delta: -1})
	if s.index != len(snippets)-1 {
		t.Fatalf("index = %d, want %d", s.index, len(snippets)-1)
	}
	s.Update(CodeMsg{Delta: 1})
	if s.index != 0 {
		t.Fatalf("index = %d, want 0", s.index)
	}

	el := s.View(Provider().Theme(theme.Dark))
	msg, ok := el.Handle(keyRunes("n"))
	if !ok || msg.Delta != 1 {
		t.Fatalf("n = %+v, %v", msg, ok)
	}
	if !strings.Contains(ansi.Strip(el.Body), "github-dark") {
		t.Fatal("expected chroma style name in view")
	}
}

func TestColors_ShowsPalette(t *testing.T) {
	t.Parallel()

	th := Provider().Theme(theme.Light)
	out := ansi.Strip(NewStories().View("colors", th).Body)
	for _, sw := range th.Palette() {
		if !strings.Contains(out, sw.Name) || !strings.Contains(out, sw.Hex) {
			t.Fatalf("missing %s in:\n%s", sw.Name, out)
		}
	}
}

func TestTypography_Static(t *testing.T) {
	t.Parallel()

	el := NewStories().View("typography", Provider().Theme(theme.Dark))
	if el.Interactive() {
		t.Fatal("typography should not handle keys")
	}
	if !strings.Contains(ansi.Strip(el.Body), "Heading 2") {
		t.Fatal("expected headings")
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	p := Provider()
	if p.Theme(theme.Dark) != p.Theme(theme.Dark) {
		t.Fatal("expected the same dark theme pointer")
	}
	if p.Theme(theme.Dark).Bg == p.Theme(theme.Light).Bg {
		t.Fatal("expected different palettes")
	}
	if p.SidebarTheme(theme.Light) != theme.DefaultSidebarTheme(theme.Light) {
		t.Fatal("expected default sidebar theme")
	}
}

func TestTokenForeground_Set(t *testing.T) {
	t.Parallel()
	entry := chroma.StyleEntry{Colour: chroma.MustParseColour("#ff0000")}
	if got := tokenForeground(entry); got != "#ff0000" {
		t.Errorf("tokenForeground = %q, want #ff0000", got)
	}
}

func TestTokenForeground_Unset(t *testing.T) {
	t.Parallel()
	if got := tokenForeground(chroma.StyleEntry{}); got != "" {
		t.Errorf("expected empty foreground for unset colour, got %q", got)
	}
}

func TestHighlightLine(t *testing.T) {
	t.Parallel()

	if got := highlightLine("", "go", "github", ""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	got := highlight("func main() {}\nreturn", "go", "no-such-style", "#000000")
	if ansi.Strip(got) != "func main() {}\nreturn" {
		t.Errorf("highlight changed text: %q", ansi.Strip(got))
	}
}
