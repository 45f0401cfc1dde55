package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	incKey = key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "inc"))
	decKey = key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "dec"))
)

func TestText_NotInteractive(t *testing.T) {
	t.Parallel()
	e := Text[int]("hello")
	if e.Interactive() {
		t.Error("text element should not be interactive")
	}
	if _, ok := e.Handle(runeKey("x")); ok {
		t.Error("text element should not handle keys")
	}
	if e.Body != "hello" {
		t.Errorf("Body=%q", e.Body)
	}
}

func TestOn_MatchesBinding(t *testing.T) {
	t.Parallel()
	e := Text[int]("counter").On(incKey, 1).On(decKey, -1)
	if got, ok := e.Handle(runeKey("+")); !ok || got != 1 {
		t.Errorf("+ => %d,%v", got, ok)
	}
	if got, ok := e.Handle(runeKey("-")); !ok || got != -1 {
		t.Errorf("- => %d,%v", got, ok)
	}
	if _, ok := e.Handle(runeKey("x")); ok {
		t.Error("unbound key should not be handled")
	}
	if len(e.Bindings) != 2 {
		t.Errorf("len(Bindings)=%d, want 2", len(e.Bindings))
	}
}

func TestOn_EarlierHandlerWins(t *testing.T) {
	t.Parallel()
	e := Text[string]("").On(incKey, "first").On(incKey, "second")
	if got, _ := e.Handle(runeKey("+")); got != "first" {
		t.Errorf("got %q, want first", got)
	}
}

func TestOn_DoesNotAliasBindings(t *testing.T) {
	t.Parallel()
	base := Text[int]("").On(incKey, 1)
	a := base.On(decKey, -1)
	b := base.On(key.NewBinding(key.WithKeys("0")), 0)
	if len(base.Bindings) != 1 || len(a.Bindings) != 2 || len(b.Bindings) != 2 {
		t.Fatal("unexpected binding counts")
	}
	if a.Bindings[1].Help().Key != "-" {
		t.Error("deriving b should not overwrite a's bindings")
	}
}

type wrapped struct{ n int }

func TestMap_LiftsMessages(t *testing.T) {
	t.Parallel()
	e := Text[int]("body").On(incKey, 1)
	e.Fallback = true
	m := Map(e, func(n int) wrapped { return wrapped{n: n} })
	got, ok := m.Handle(runeKey("+"))
	if !ok || got.n != 1 {
		t.Errorf("mapped handle => %+v,%v", got, ok)
	}
	if _, ok := m.Handle(runeKey("x")); ok {
		t.Error("mapped element should not handle unbound keys")
	}
	if m.Body != "body" || !m.Fallback || len(m.Bindings) != 1 {
		t.Errorf("Map should preserve body, fallback and bindings: %+v", m)
	}
}

func TestMap_NonInteractive(t *testing.T) {
	t.Parallel()
	m := Map(Text[int]("x"), func(n int) string { return "" })
	if m.Interactive() {
		t.Error("mapping a static element should stay static")
	}
}

func TestOnKey_FreeForm(t *testing.T) {
	t.Parallel()
	e := Text[string]("").OnKey(func(k tea.KeyMsg) (string, bool) {
		if k.Type == tea.KeyRunes {
			return string(k.Runes), true
		}
		return "", false
	})
	if got, ok := e.Handle(runeKey("abc")); !ok || got != "abc" {
		t.Errorf("got %q,%v", got, ok)
	}
	if _, ok := e.Handle(tea.KeyMsg{Type: tea.KeyEsc}); ok {
		t.Error("esc should fall through")
	}
}

func TestColumn(t *testing.T) {
	t.Parallel()
	c := Column(1,
		Text[int]("top"),
		Text[int]("bottom").On(incKey, 7),
	)
	lines := strings.Split(c.Body, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%q, want 3 lines", lines)
	}
	if strings.TrimSpace(lines[0]) != "top" || strings.TrimSpace(lines[1]) != "" || strings.TrimSpace(lines[2]) != "bottom" {
		t.Errorf("unexpected layout %q", lines)
	}
	if got, ok := c.Handle(runeKey("+")); !ok || got != 7 {
		t.Errorf("column should route to child handler, got %d,%v", got, ok)
	}
	if len(c.Bindings) != 1 {
		t.Errorf("len(Bindings)=%d, want 1", len(c.Bindings))
	}
}

func TestRow(t *testing.T) {
	t.Parallel()
	r := Row(2, Text[int]("a"), Text[int]("b"))
	if r.Body != "a  b" {
		t.Errorf("Body=%q, want %q", r.Body, "a  b")
	}
}
