package theme

import "github.com/charmbracelet/x/ansi"

// Color is a hex color string such as "#0d1117".
type Color string

// Shaping selects how text width is measured.
type Shaping int

const (
	// ShapingBasic measures each rune on its own (wcwidth).
	ShapingBasic Shaping = iota
	// ShapingAdvanced measures grapheme clusters, so emoji sequences and
	// combining marks count as one glyph.
	ShapingAdvanced
)

// SidebarFont describes how a piece of sidebar text is set.
type SidebarFont struct {
	Family  string
	Shaping Shaping
}

// Width returns the display width of s in terminal cells.
func (f SidebarFont) Width(s string) int {
	if f.Shaping == ShapingAdvanced {
		return ansi.StringWidth(s)
	}
	return ansi.StringWidthWc(s)
}

// Truncate shortens s to at most n cells, ending with an ellipsis when cut.
func (f SidebarFont) Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if f.Width(s) <= n {
		return s
	}
	if f.Shaping == ShapingAdvanced {
		return ansi.Truncate(s, n, "…")
	}
	return ansi.TruncateWc(s, n, "…")
}

// SidebarTheme supplies the colors and fonts for the storybook chrome.
type SidebarTheme interface {
	SidebarBackground() Color
	TextPrimary() Color
	TextSecondary() Color
	SelectedBackground() Color
	// HoverBackground marks the row under the keyboard cursor.
	HoverBackground() Color
	ContentBackground() Color

	TitleFont() SidebarFont
	SectionFont() SidebarFont
	NavFont() SidebarFont

	// SidebarWidth is the sidebar width in cells.
	SidebarWidth() int
}

// FallbackFontFamily names the family used by the built-in sidebars.
const FallbackFontFamily = "Fira Sans"

const defaultSidebarWidth = 28

// simpleSidebar is the built-in SidebarTheme.
type simpleSidebar struct {
	background Color
	primary    Color
	secondary  Color
	selected   Color
	hover      Color
	content    Color
}

func (s simpleSidebar) SidebarBackground() Color  { return s.background }
func (s simpleSidebar) TextPrimary() Color        { return s.primary }
func (s simpleSidebar) TextSecondary() Color      { return s.secondary }
func (s simpleSidebar) SelectedBackground() Color { return s.selected }
func (s simpleSidebar) HoverBackground() Color    { return s.hover }
func (s simpleSidebar) ContentBackground() Color  { return s.content }

func (s simpleSidebar) TitleFont() SidebarFont {
	return SidebarFont{Family: FallbackFontFamily, Shaping: ShapingAdvanced}
}

func (s simpleSidebar) SectionFont() SidebarFont {
	return SidebarFont{Family: FallbackFontFamily, Shaping: ShapingBasic}
}

func (s simpleSidebar) NavFont() SidebarFont {
	return SidebarFont{Family: FallbackFontFamily, Shaping: ShapingAdvanced}
}

func (s simpleSidebar) SidebarWidth() int { return defaultSidebarWidth }

// Built once at package init and never mutated.
var defaultSidebars = [2]SidebarTheme{
	simpleSidebar{
		background: "#1a1a1a",
		primary:    "#f2f2f2",
		secondary:  "#999999",
		selected:   "#333333",
		hover:      "#262626",
		content:    "#262626",
	},
	simpleSidebar{
		background: "#f2f2f2",
		primary:    "#1a1a1a",
		secondary:  "#666666",
		selected:   "#dcdcdc",
		hover:      "#e8e8e8",
		content:    "#ffffff",
	},
}

// DefaultSidebarTheme returns the built-in sidebar theme for b.
func DefaultSidebarTheme(b Brightness) SidebarTheme {
	return defaultSidebars[b.index()]
}
