// Package resolver selects the single contestant folder under a root path.
//
// The selection never guesses: zero or several matching folders are both
// reported as errors and the caller is expected to stop.
package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/checker/internal/fileutil"
	"github.com/harrison/checker/internal/logger"
	"github.com/harrison/checker/internal/rule"
)

// ErrNoneFound is returned when no immediate subdirectory of the root matches.
var ErrNoneFound = errors.New("no valid contestant folder found")

// MultipleFoundError is returned when more than one subdirectory matches.
type MultipleFoundError struct {
	Root  string
	Names []string // Matching names in enumeration order
}

func (e *MultipleFoundError) Error() string {
	return fmt.Sprintf("found %d contestant folders: %s", len(e.Names), strings.Join(e.Names, ", "))
}

// Paths returns the root-prefixed path of every matching folder.
func (e *MultipleFoundError) Paths() []string {
	paths := make([]string, len(e.Names))
	for i, name := range e.Names {
		paths[i] = fileutil.WithTrailingSeparator(e.Root) + name
	}
	return paths
}

// Resolution is the selected contestant folder
type Resolution struct {
	Name string // Bare directory name
	Path string // Absolute path
}

// Resolve lists the immediate children of root and keeps the directories whose
// bare name satisfies id. Exactly one must remain.
//
// A root that cannot be listed yields an error wrapping
// fileutil.ErrRootInaccessible.
func Resolve(root string, id rule.IDRule, log logger.Logger) (*Resolution, error) {
	if err := fileutil.CheckDir(root); err != nil {
		return nil, fmt.Errorf("root path %s: %w", root, err)
	}

	var names []string
	for entry, err := range fileutil.Children(root) {
		if err != nil {
			return nil, fmt.Errorf("root path %s: %w: %w", root, fileutil.ErrRootInaccessible, err)
		}
		if !entry.IsDir || entry.Name == "." || entry.Name == ".." {
			continue
		}
		if !id.MatchName(entry.Name) {
			log.LogTrace(fmt.Sprintf("ignoring directory %q: does not match %s", entry.Name, id))
			continue
		}
		log.LogDebug(fmt.Sprintf("candidate contestant folder %q", entry.Name))
		names = append(names, entry.Name)
	}

	switch len(names) {
	case 0:
		return nil, fmt.Errorf("%w under %s (expected %s)", ErrNoneFound, root, id)
	case 1:
	default:
		return nil, &MultipleFoundError{Root: root, Names: names}
	}

	path, err := filepath.Abs(filepath.Join(root, names[0]))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path of %s: %w", names[0], err)
	}
	log.LogInfo(fmt.Sprintf("contestant folder: %s", path))

	return &Resolution{Name: names[0], Path: path}, nil
}
