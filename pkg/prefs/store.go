// Package prefs persists the light/dark choice across sessions.
package prefs

import (
	"errors"
	"sync"

	"github.com/jansmrcka/teabook/pkg/theme"
)

// Key is the well-known identifier the brightness is stored under.
const Key = "teabook_theme"

var (
	// ErrNotSet means the medium is available but holds no preference.
	ErrNotSet = errors.New("preference not set")
	// ErrCorrupt means the stored value could not be understood.
	ErrCorrupt = errors.New("preference corrupt")
	// ErrUnavailable means there is no medium to read from or write to.
	ErrUnavailable = errors.New("preference storage unavailable")
)

// Store is a persistence medium for the brightness preference.
// Any Load error means "no usable value".
type Store interface {
	Load() (theme.Brightness, error)
	Save(b theme.Brightness) error
}

// Unavailable is a Store for platforms without persistence.
type Unavailable struct{}

func (Unavailable) Load() (theme.Brightness, error) { return theme.Dark, ErrUnavailable }
func (Unavailable) Save(theme.Brightness) error     { return ErrUnavailable }

// MemoryStore keeps the raw stored text in memory.
type MemoryStore struct {
	mu  sync.Mutex
	raw *string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// SetRaw stores text verbatim, valid or not.
func (s *MemoryStore) SetRaw(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = &text
}

// Raw returns the stored text and whether anything is stored.
func (s *MemoryStore) Raw() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return "", false
	}
	return *s.raw, true
}

func (s *MemoryStore) Load() (theme.Brightness, error) {
	raw, ok := s.Raw()
	if !ok {
		return theme.Dark, ErrNotSet
	}
	return decode(raw)
}

func (s *MemoryStore) Save(b theme.Brightness) error {
	s.SetRaw(b.String())
	return nil
}

func decode(raw string) (theme.Brightness, error) {
	b, err := theme.ParseBrightness(raw)
	if err != nil {
		return theme.Dark, errors.Join(ErrCorrupt, err)
	}
	return b, nil
}
