package demo

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jansmrcka/teabook/pkg/story"
	"github.com/jansmrcka/teabook/pkg/view"
)

// InputMsg carries a key typed into the input story.
type InputMsg struct {
	Key tea.KeyMsg
}

var inputHelp = []key.Binding{
	key.NewBinding(key.WithHelp("type", "edit")),
	key.NewBinding(key.WithHelp("enter", "submit")),
}

// InputStory demonstrates a single-line text input.
type InputStory struct {
	input     textinput.Model
	ready     bool
	submitted []string
}

func (*InputStory) Meta() story.Meta {
	return story.Meta{ID: "inputs", Title: "Inputs", Category: "Components"}
}

func (s *InputStory) init() {
	if s.ready {
		return
	}
	s.input = textinput.New()
	s.input.Placeholder = "Placeholder..."
	s.input.CharLimit = 120
	s.input.Width = 30
	s.input.Focus()
	s.ready = true
}

// Value returns the current input text.
func (s *InputStory) Value() string { return s.input.Value() }

func (s *InputStory) Update(msg InputMsg) {
	s.init()
	if msg.Key.Type == tea.KeyEnter {
		if v := s.input.Value(); v != "" {
			s.submitted = append(s.submitted, v)
			s.input.Reset()
		}
		return
	}
	s.input, _ = s.input.Update(msg.Key)
}

func (s *InputStory) View(th *Theme) view.Element[InputMsg] {
	// View works on a copy so rendering never initializes the story.
	input := s.input
	if !s.ready {
		input = textinput.New()
		input.Placeholder = "Placeholder..."
		input.Width = 30
		input.Focus()
	}
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Fg))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Muted))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.InputFocus)).
		Padding(0, 1)

	children := []view.Element[InputMsg]{
		view.Text[InputMsg](text.Bold(true).Render("Input Story")),
		view.Text[InputMsg](text.Render("Enter some text:")),
		view.Text[InputMsg](box.Render(input.View())),
		view.Text[InputMsg](text.Render("You typed: " + input.Value())),
	}
	if n := len(s.submitted); n > 0 {
		children = append(children, view.Text[InputMsg](muted.Render("Submitted: "+s.submitted[n-1])))
	}
	return view.Column(1, children...).OnKey(captureInput, inputHelp...)
}

// captureInput takes the keys a text field edits with and leaves
// navigation keys such as esc and tab to the shell.
func captureInput(k tea.KeyMsg) (InputMsg, bool) {
	switch k.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlU, tea.KeyCtrlW, tea.KeyEnter:
		return InputMsg{Key: k}, true
	}
	return InputMsg{}, false
}
