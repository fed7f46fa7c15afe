package display

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title: "Configuration Missing",
	}

	w.Display(&buf)

	if got, want := buf.String(), "Warning: Configuration Missing\n"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestDisplayWarning_WithMessage(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:   "Unreadable directory",
		Message: "Source files inside it were not checked",
	}

	w.Display(&buf)

	if !strings.Contains(buf.String(), "    Source files inside it were not checked\n") {
		t.Errorf("Expected indented message in output, got %q", buf.String())
	}
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "t", Files: []string{"/contest/GD-10001"}}

	w.Display(&buf)

	output := buf.String()
	if !strings.Contains(output, "    Affected path:\n") {
		t.Errorf("Expected singular header, got %q", output)
	}
	if !strings.Contains(output, "      1. /contest/GD-10001\n") {
		t.Errorf("Expected numbered path, got %q", output)
	}
}

func TestDisplayWarning_MultipleFiles(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "t", Files: []string{"/a", "/b"}, Suggestion: "Remove one"}

	w.Display(&buf)

	output := buf.String()
	for _, want := range []string{"Affected paths:", "1. /a", "2. /b", "    Suggestion:\n    Remove one\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got %q", want, output)
		}
	}
}

func TestDisplayFatal_NoWarningPrefix(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Errcode 1, checker.cfg not found"}.DisplayFatal(&buf)

	if got, want := buf.String(), "Errcode 1, checker.cfg not found\n"; got != want {
		t.Errorf("DisplayFatal() = %q, want %q", got, want)
	}
}

func TestWarnScanErrors(t *testing.T) {
	w := WarnScanErrors([]error{errors.New("failed to open directory /x: permission denied")})

	if !strings.HasPrefix(w.Title, "1 path(s)") {
		t.Errorf("unexpected title %q", w.Title)
	}
	if len(w.Files) != 1 || !strings.Contains(w.Files[0], "permission denied") {
		t.Errorf("unexpected files %v", w.Files)
	}
}
