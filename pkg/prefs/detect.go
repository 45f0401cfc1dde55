package prefs

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jansmrcka/teabook/pkg/theme"
)

// Detector reports the platform's brightness preference, if it has one.
type Detector func() (theme.Brightness, bool)

// EnvVar is consulted by DefaultDetector before the terminal.
const EnvVar = "TEABOOK_THEME"

// None is a Detector for platforms that report nothing.
func None() (theme.Brightness, bool) { return theme.Light, false }

// Env reads "dark" or "light" from the named environment variable.
func Env(name string) Detector {
	return func() (theme.Brightness, bool) {
		v, ok := os.LookupEnv(name)
		if !ok {
			return theme.Light, false
		}
		b, err := theme.ParseBrightness(v)
		if err != nil {
			return theme.Light, false
		}
		return b, true
	}
}

// Terminal asks the terminal behind out for its background color. It
// reports nothing when out is not a terminal.
func Terminal(out *termenv.Output) Detector {
	return func() (theme.Brightness, bool) {
		if out == nil {
			return theme.Light, false
		}
		tty := out.TTY()
		if tty == nil || !term.IsTerminal(int(tty.Fd())) {
			return theme.Light, false
		}
		if out.HasDarkBackground() {
			return theme.Dark, true
		}
		return theme.Light, true
	}
}

// FirstOf returns the first preference any detector reports.
func FirstOf(detectors ...Detector) Detector {
	return func() (theme.Brightness, bool) {
		for _, d := range detectors {
			if d == nil {
				continue
			}
			if b, ok := d(); ok {
				return b, true
			}
		}
		return theme.Light, false
	}
}

// DefaultDetector checks EnvVar, then the terminal on stdout.
func DefaultDetector() Detector {
	return FirstOf(Env(EnvVar), Terminal(termenv.NewOutput(os.Stdout)))
}
