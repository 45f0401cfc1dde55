package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jansmrcka/teabook/pkg/theme"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "preferences.json")
	s := NewFileStore(path)

	for _, b := range []theme.Brightness{theme.Light, theme.Dark} {
		if err := s.Save(b); err != nil {
			t.Fatalf("Save(%s): %v", b, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got != b {
			t.Errorf("Load()=%s, want %s", got, b)
		}
	}
}

func TestFileStore_NoFile(t *testing.T) {
	t.Parallel()
	s := NewFileStore(filepath.Join(t.TempDir(), "nonexistent.json"))
	if _, err := s.Load(); !errors.Is(err, ErrNotSet) {
		t.Errorf("err=%v, want ErrNotSet", err)
	}
}

func TestFileStore_InvalidJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{invalid json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("err=%v, want ErrCorrupt", err)
	}
}

func TestFileStore_UnknownValue(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"teabook_theme": "sepia"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("err=%v, want ErrCorrupt", err)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"other": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrNotSet) {
		t.Errorf("err=%v, want ErrNotSet", err)
	}
}

func TestFileStore_CommentsAndTrailingCommas(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	data := []byte(`{
  // picked by hand
  "teabook_theme": "light",
}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != theme.Light {
		t.Errorf("Load()=%s, want light", got)
	}
}

func TestFileStore_SavePreservesOtherKeys(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte(`{"last_story": "buttons"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewFileStore(path).Save(theme.Dark); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		t.Fatalf("saved file is not JSON: %v", err)
	}
	if values["last_story"] != "buttons" || values[Key] != "dark" {
		t.Errorf("values=%v", values)
	}
}

func TestFileStore_SaveReplacesCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Save(theme.Light); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, err := s.Load(); err != nil || got != theme.Light {
		t.Errorf("Load()=%s,%v", got, err)
	}
}

func TestFileStore_SaveCreatesDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	if err := NewFileStore(path).Save(theme.Dark); err != nil {
		t.Fatalf("Save should create dirs: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("prefs file should exist: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.json" {
		t.Errorf("temporary file should be renamed away, dir has %v", entries)
	}
}

func TestFileStore_SaveKeepsUnreadableFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A directory at the preference path cannot be read as a file.
	path := filepath.Join(dir, "prefs.json")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}
	err := NewFileStore(path).Save(theme.Dark)
	if err == nil {
		t.Fatal("expected read failure to abort Save")
	}
	if errors.Is(err, ErrNotSet) || errors.Is(err, ErrCorrupt) {
		t.Errorf("err=%v, want a read error", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Save should not leave temporary files, dir has %v", entries)
	}
	if _, err := os.Stat(filepath.Join(path, "keep")); err != nil {
		t.Errorf("existing content should be untouched: %v", err)
	}
}

func TestFileStore_EmptyPath(t *testing.T) {
	t.Parallel()
	s := NewFileStore("")
	if _, err := s.Load(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Load err=%v, want ErrUnavailable", err)
	}
	if err := s.Save(theme.Dark); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Save err=%v, want ErrUnavailable", err)
	}
}
