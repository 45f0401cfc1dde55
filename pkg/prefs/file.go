package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/jansmrcka/teabook/pkg/theme"
)

// FileStore keeps preferences as a JSON object of string values, e.g.
//
//	{"teabook_theme": "dark"}
//
// Comments and trailing commas are accepted when reading. Keys other than
// Key are preserved on save.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns ~/.config/teabook/preferences.json (or the
// platform's equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "teabook", "preferences.json"), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (theme.Brightness, error) {
	values, err := s.read()
	if err != nil {
		return theme.Dark, err
	}
	raw, ok := values[Key]
	if !ok {
		return theme.Dark, ErrNotSet
	}
	return decode(raw)
}

func (s *FileStore) Save(b theme.Brightness) error {
	values, err := s.read()
	switch {
	case err == nil:
	case errors.Is(err, ErrNotSet), errors.Is(err, ErrCorrupt):
		// A missing or corrupt file is replaced.
		values = map[string]string{}
	default:
		return err
	}
	values[Key] = b.String()
	return s.write(values)
}

func (s *FileStore) read() (map[string]string, error) {
	if s.path == "" {
		return nil, ErrUnavailable
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotSet
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var values map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, errors.Join(ErrCorrupt, err))
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	if s.path == "" {
		return ErrUnavailable
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".preferences-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
