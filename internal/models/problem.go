package models

import "github.com/harrison/checker/internal/rule"

// DefaultNotFoundHint is printed for a problem without source files when the
// problem does not configure its own hint.
const DefaultNotFoundHint = "No source files found."

// Problem is one configured judging unit
type Problem struct {
	Name         string            // Display label, unique within a config
	Rule         rule.LocationRule // Decides which files belong to the problem
	NotFoundHint string            // Shown when no file matches
}

// Hint returns the configured not-found hint or DefaultNotFoundHint.
func (p Problem) Hint() string {
	if p.NotFoundHint == "" {
		return DefaultNotFoundHint
	}
	return p.NotFoundHint
}
