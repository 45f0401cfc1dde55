package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jansmrcka/teabook/pkg/prefs"
	"github.com/jansmrcka/teabook/pkg/theme"
)

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	if err := runList(listCmd, nil); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Example Storybook\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if strings.Index(got, "COMPONENTS") > strings.Index(got, "FOUNDATION") {
		t.Fatalf("expected Components before Foundation:\n%s", got)
	}
	for _, id := range []string{"buttons", "inputs", "typography", "colors", "code"} {
		if !strings.Contains(got, id) {
			t.Fatalf("missing %q:\n%s", id, got)
		}
	}
}

func TestRunTheme_SetThenShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	flagPrefs, flagNoPersist, flagLogFile, flagLogLevel = path, false, "", "info"
	t.Cleanup(func() { flagPrefs = "" })

	var out bytes.Buffer
	themeCmd.SetOut(&out)
	if err := runTheme(themeCmd, []string{"Dark"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "saved dark to "+path) {
		t.Fatalf("unexpected output: %q", out.String())
	}

	b, err := prefs.NewFileStore(path).Load()
	if err != nil || b != theme.Dark {
		t.Fatalf("Load = %v, %v", b, err)
	}

	out.Reset()
	if err := runTheme(themeCmd, nil); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "dark (saved)\n" {
		t.Fatalf("show = %q", got)
	}
}

func TestRunTheme_Invalid(t *testing.T) {
	flagPrefs, flagNoPersist, flagLogLevel = filepath.Join(t.TempDir(), "p.json"), false, "info"
	t.Cleanup(func() { flagPrefs = "" })

	if err := runTheme(themeCmd, []string{"sepia"}); err == nil {
		t.Fatal("expected error for unknown brightness")
	}
}
