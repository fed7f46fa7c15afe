package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing diagnostic message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a non-fatal warning in yellow
func (w Warning) Display(out io.Writer) {
	w.render(out, color.New(color.FgYellow), "Warning: ")
}

// DisplayFatal shows a run-ending error in red
func (w Warning) DisplayFatal(out io.Writer) {
	w.render(out, color.New(color.FgRed, color.Bold), "")
}

func (w Warning) render(out io.Writer, c *color.Color, prefix string) {
	var b strings.Builder

	b.WriteString(c.Sprint(prefix + w.Title))
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}

// WarnScanErrors creates a warning for directories that could not be read
func WarnScanErrors(errs []error) Warning {
	files := make([]string, len(errs))
	for i, err := range errs {
		files[i] = err.Error()
	}
	return Warning{
		Title:      fmt.Sprintf("%d path(s) under the contestant folder could not be read", len(errs)),
		Message:    "Source files inside them were not checked",
		Files:      files,
		Suggestion: "Check the folder permissions and run the checker again",
	}
}
