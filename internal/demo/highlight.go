package demo

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	lexerCache sync.Map // language -> chroma.Lexer
	styleCache sync.Map // style name -> *chroma.Style
)

// chromaStyle returns a cached Chroma style, falling back to monokai.
func chromaStyle(name string) *chroma.Style {
	if cached, ok := styleCache.Load(name); ok {
		return cached.(*chroma.Style)
	}
	s := styles.Get(name)
	if s == nil {
		s = styles.Get("monokai")
	}
	styleCache.Store(name, s)
	return s
}

// getLexer returns a cached Chroma lexer for the given language name.
func getLexer(language string) chroma.Lexer {
	if cached, ok := lexerCache.Load(language); ok {
		return cached.(chroma.Lexer)
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	lexerCache.Store(language, lexer)
	return lexer
}

// highlight applies syntax highlighting to source, line by line so that
// every line keeps bgColor.
func highlight(source, language, styleName, bgColor string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line, language, styleName, bgColor)
	}
	return strings.Join(lines, "\n")
}

// highlightLine applies Chroma foreground colors to one line but keeps the
// background from bgColor.
func highlightLine(content, language, styleName, bgColor string) string {
	if content == "" {
		return content
	}
	style := chromaStyle(styleName)
	iterator, err := getLexer(language).Tokenise(nil, content)
	if err != nil {
		return content
	}

	bg := lipgloss.NewStyle()
	if bgColor != "" {
		bg = bg.Background(lipgloss.Color(bgColor))
	}
	var b strings.Builder
	for _, token := range iterator.Tokens() {
		value := strings.TrimRight(token.Value, "\n")
		if value == "" {
			continue
		}
		if fg := tokenForeground(style.Get(token.Type)); fg != "" {
			b.WriteString(bg.Foreground(lipgloss.Color(fg)).Render(value))
		} else {
			b.WriteString(bg.Render(value))
		}
	}
	return b.String()
}

// tokenForeground extracts the hex foreground color from a chroma style entry.
func tokenForeground(entry chroma.StyleEntry) string {
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
