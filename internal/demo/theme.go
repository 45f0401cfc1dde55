package demo

import "github.com/jansmrcka/teabook/pkg/theme"

// Theme defines color values for the demo components. All values are hex
// color strings; stories derive lipgloss styles from them.
type Theme struct {
	Bg    string
	Fg    string
	Muted string

	// Buttons
	PrimaryBg   string
	PrimaryFg   string
	SecondaryBg string
	SecondaryFg string
	DangerBg    string
	DangerFg    string
	FocusFg     string

	// Inputs
	InputBorder string
	InputFocus  string

	// Status colors
	Success string
	Warning string
	Error   string

	// Code
	CodeBg string
	// Chroma syntax theme name
	ChromaStyle string
}

// Swatch is a named palette entry.
type Swatch struct {
	Name string
	Hex  string
}

// Palette lists the theme colors shown by the colors story.
func (t *Theme) Palette() []Swatch {
	return []Swatch{
		{"Background", t.Bg},
		{"Text", t.Fg},
		{"Muted", t.Muted},
		{"Primary", t.PrimaryBg},
		{"Secondary", t.SecondaryBg},
		{"Success", t.Success},
		{"Warning", t.Warning},
		{"Error", t.Error},
	}
}

// DarkTheme returns a GitHub Dark-inspired theme.
func DarkTheme() Theme {
	return Theme{
		Bg:    "#0d1117",
		Fg:    "#c9d1d9",
		Muted: "#8b949e",

		PrimaryBg:   "#4d80ff",
		PrimaryFg:   "#ffffff",
		SecondaryBg: "#30363d",
		SecondaryFg: "#c9d1d9",
		DangerBg:    "#da3633",
		DangerFg:    "#ffffff",
		FocusFg:     "#58a6ff",

		InputBorder: "#30363d",
		InputFocus:  "#58a6ff",

		Success: "#3fb950",
		Warning: "#d29922",
		Error:   "#f85149",

		CodeBg:      "#161b22",
		ChromaStyle: "github-dark",
	}
}

// LightTheme returns a GitHub Light-inspired theme.
func LightTheme() Theme {
	return Theme{
		Bg:    "#ffffff",
		Fg:    "#1f2328",
		Muted: "#656d76",

		PrimaryBg:   "#3366e6",
		PrimaryFg:   "#ffffff",
		SecondaryBg: "#eaeef2",
		SecondaryFg: "#1f2328",
		DangerBg:    "#cf222e",
		DangerFg:    "#ffffff",
		FocusFg:     "#0969da",

		InputBorder: "#d0d7de",
		InputFocus:  "#0969da",

		Success: "#1a7f37",
		Warning: "#9a6700",
		Error:   "#cf222e",

		CodeBg:      "#f6f8fa",
		ChromaStyle: "github",
	}
}

// Provider resolves brightness to the demo themes. Each theme is built once.
func Provider() theme.Provider[Theme] {
	return theme.NewProvider(func(b theme.Brightness) Theme {
		if b == theme.Dark {
			return DarkTheme()
		}
		return LightTheme()
	})
}
