package models

// Outcome classifies how many files matched a problem
type Outcome string

// Outcome values
const (
	OutcomeMissing   Outcome = "missing"   // No file matched
	OutcomeFound     Outcome = "found"     // Exactly one file matched
	OutcomeDuplicate Outcome = "duplicate" // More than one file matched
)

// MatchResult holds the files found for one problem during a run
type MatchResult struct {
	Problem Problem
	Files   []string // Absolute paths in traversal order
}

// Outcome derives the classification from the number of files.
func (m MatchResult) Outcome() Outcome {
	switch len(m.Files) {
	case 0:
		return OutcomeMissing
	case 1:
		return OutcomeFound
	default:
		return OutcomeDuplicate
	}
}

// Report is everything a single run produced
type Report struct {
	RunID        string        // Identifies this run in machine-readable output
	Root         string        // Configured root path
	Contestant   string        // Name of the resolved contestant folder
	Folder       string        // Absolute path of the resolved contestant folder
	FilesScanned int           // Number of files visited under Folder
	Results      []MatchResult // One per problem, in configured order
	ScanErrors   []error       // Directories below Folder that could not be read
}

// Count returns how many results have the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome() == o {
			n++
		}
	}
	return n
}
