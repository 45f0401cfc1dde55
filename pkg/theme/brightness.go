// Package theme defines the brightness mode and the theme resolution
// contract between a storybook and the component library it showcases.
// This package has no lipgloss dependency; renderers derive styles from it.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBrightness is returned when a value is neither dark nor light.
var ErrInvalidBrightness = errors.New("invalid brightness")

// Brightness selects the dark or light variant of every theme.
type Brightness int

const (
	Dark Brightness = iota
	Light
)

// Toggle returns the other brightness.
func (b Brightness) Toggle() Brightness {
	if b == Dark {
		return Light
	}
	return Dark
}

func (b Brightness) String() string {
	if b == Light {
		return "light"
	}
	return "dark"
}

// ParseBrightness accepts "dark" or "light", ignoring case and surrounding space.
func ParseBrightness(s string) (Brightness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrInvalidBrightness, s)
}

func (b Brightness) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Brightness) UnmarshalText(text []byte) error {
	parsed, err := ParseBrightness(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// index maps a brightness onto a two-slot table. Out-of-range values
// resolve to dark so lookups stay total.
func (b Brightness) index() int {
	if b == Light {
		return 1
	}
	return 0
}
