package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/harrison/checker/internal/config"
	"github.com/harrison/checker/internal/display"
	"github.com/harrison/checker/internal/fileutil"
	"github.com/harrison/checker/internal/resolver"
)

// Process exit codes. Each fatal condition has its own code.
const (
	ExitOK                 = 0
	ExitConfigMissing      = 1
	ExitConfigMalformed    = 2
	ExitNoFolder           = 3
	ExitMultipleFolders    = 4
	ExitFolderInaccessible = 5
	ExitUsage              = 6
	ExitOutput             = 7
)

// errReportWrite wraps failures to write the report itself.
var errReportWrite = errors.New("failed to write report")

// ExitError carries the exit code of a failed run up to main. Its message has
// already been shown to the operator when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code.
// Errors that did not come from a run (flag parsing, unknown arguments) are
// usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// classify turns a fatal run error into the diagnostic shown to the operator
// and the matching exit code.
func classify(err error, configPath string) (display.Warning, int) {
	var multi *resolver.MultipleFoundError
	cfgName := filepath.Base(configPath)

	switch {
	case errors.Is(err, config.ErrConfigMissing):
		return display.Warning{
			Title:      fmt.Sprintf("Errcode 1, %s not found", cfgName),
			Message:    err.Error(),
			Files:      []string{configPath},
			Suggestion: "Place checker.cfg next to the checker executable or pass --config",
		}, ExitConfigMissing

	case errors.Is(err, config.ErrConfigMalformed):
		return display.Warning{
			Title:      fmt.Sprintf("Errcode 2, %s unparsable", cfgName),
			Message:    err.Error(),
			Files:      []string{configPath},
			Suggestion: fmt.Sprintf("Fix the format of %s or ask the contest staff for a new copy", cfgName),
		}, ExitConfigMalformed

	case errors.Is(err, resolver.ErrNoneFound):
		return display.Warning{
			Title:      "Errcode 3, No valid personal directory found. Please read contestant notification",
			Message:    err.Error(),
			Suggestion: "Create exactly one folder named after your contestant ID under the root path",
		}, ExitNoFolder

	case errors.As(err, &multi):
		return display.Warning{
			Title:      "Errcode 4, found multiple personal directories.",
			Message:    err.Error(),
			Files:      multi.Paths(),
			Suggestion: "Keep only the folder named after your own contestant ID",
		}, ExitMultipleFolders

	case errors.Is(err, fileutil.ErrRootInaccessible):
		return display.Warning{
			Title:      "Errcode 5, directory not accessible",
			Message:    err.Error(),
			Suggestion: "Check that root_path in checker.cfg exists and can be read",
		}, ExitFolderInaccessible

	case errors.Is(err, errReportWrite):
		return display.Warning{
			Title:      "Report could not be written",
			Message:    err.Error(),
			Suggestion: "Check that the output stream is writable, or rerun with --format text",
		}, ExitOutput

	default:
		return display.Warning{
			Title:   "Unexpected error",
			Message: err.Error(),
		}, ExitUsage
	}
}
