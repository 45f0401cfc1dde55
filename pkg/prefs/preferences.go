package prefs

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/jansmrcka/teabook/pkg/theme"
)

// Fallback is the brightness used when neither the store nor the platform
// has a preference.
const Fallback = theme.Light

// Source tells where the startup brightness came from.
type Source int

const (
	SourceDefault Source = iota
	SourceSystem
	SourceSaved
)

func (s Source) String() string {
	switch s {
	case SourceSaved:
		return "saved"
	case SourceSystem:
		return "system"
	default:
		return "default"
	}
}

// Initial resolves the startup brightness: the saved value, else the
// detected system value, else Fallback. It never fails.
func Initial(store Store, detect Detector) (theme.Brightness, Source) {
	if store != nil {
		if b, err := store.Load(); err == nil {
			return b, SourceSaved
		}
	}
	if detect != nil {
		if b, ok := detect(); ok {
			return b, SourceSystem
		}
	}
	return Fallback, SourceDefault
}

// Preferences holds the current brightness for a session. The in-memory
// value is authoritative; saving is best effort.
type Preferences struct {
	store      Store
	detect     Detector
	logger     *log.Logger
	brightness theme.Brightness
	source     Source
}

// Option configures Open.
type Option func(*Preferences)

// WithDetector sets the system preference used when nothing is saved.
func WithDetector(d Detector) Option {
	return func(p *Preferences) { p.detect = d }
}

// WithLogger sets the logger for load and save failures.
func WithLogger(l *log.Logger) Option {
	return func(p *Preferences) {
		if l != nil {
			p.logger = l
		}
	}
}

// Open loads the preference from store once. A nil store behaves like
// Unavailable.
func Open(store Store, opts ...Option) *Preferences {
	if store == nil {
		store = Unavailable{}
	}
	p := &Preferences{
		store:  store,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	if b, err := store.Load(); err == nil {
		p.brightness, p.source = b, SourceSaved
	} else {
		if !errors.Is(err, ErrNotSet) && !errors.Is(err, ErrUnavailable) {
			p.logger.Warn("ignoring stored brightness", "key", Key, "err", err)
		}
		p.brightness, p.source = Initial(nil, p.detect)
	}
	p.logger.Debug("brightness loaded", "brightness", p.brightness, "source", p.source)
	return p
}

// Brightness returns the current brightness.
func (p *Preferences) Brightness() theme.Brightness { return p.brightness }

// Source reports where the startup brightness came from.
func (p *Preferences) Source() Source { return p.source }

// Set changes the brightness without saving it.
func (p *Preferences) Set(b theme.Brightness) { p.brightness = b }

// Save writes the current brightness to the store. Failures are logged
// and returned; the in-memory value is kept either way.
func (p *Preferences) Save() error {
	if err := p.store.Save(p.brightness); err != nil {
		p.logger.Warn("failed to save brightness", "key", Key, "brightness", p.brightness, "err", err)
		return err
	}
	return nil
}

// Toggle flips the brightness and saves it immediately.
func (p *Preferences) Toggle() theme.Brightness {
	p.brightness = p.brightness.Toggle()
	_ = p.Save()
	return p.brightness
}
