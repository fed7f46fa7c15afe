package fileutil

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootInaccessible is returned when a directory that must be scanned does not
// exist, cannot be opened, or is not a directory.
var ErrRootInaccessible = errors.New("directory is not accessible")

// readBatch is the number of entries requested from the OS per ReadDir call.
const readBatch = 64

// Entry is a single child of a directory as reported by the filesystem.
type Entry struct {
	// Name is the bare entry name (no path components)
	Name string
	// IsDir is true for directories. Symlinks are never reported as directories.
	IsDir bool
}

// WithTrailingSeparator returns path with exactly one trailing host separator.
// An empty path is returned unchanged.
func WithTrailingSeparator(path string) string {
	if path == "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return path
	}
	return path + string(filepath.Separator)
}

// CheckDir verifies that dir exists and is a directory.
// The returned error wraps ErrRootInaccessible.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootInaccessible, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: path is not a directory: %s", ErrRootInaccessible, dir)
	}
	return nil
}

// Children lists the immediate children of dir in the order the filesystem
// returns them. The listing is lazy: the directory is opened when iteration
// starts and closed when it ends, including when the caller breaks early.
// A failure to open or read dir is yielded once as an error and ends the sequence.
func Children(dir string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		f, err := os.Open(dir)
		if err != nil {
			yield(Entry{}, fmt.Errorf("failed to open directory %s: %w", dir, err))
			return
		}
		defer f.Close()

		for {
			batch, err := f.ReadDir(readBatch)
			for _, d := range batch {
				if !yield(Entry{Name: d.Name(), IsDir: d.IsDir()}, nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Entry{}, fmt.Errorf("failed to read directory %s: %w", dir, err))
				return
			}
		}
	}
}

// WalkFiles traverses root depth-first in pre-order and yields the full path of
// every non-directory entry beneath it. Directories are descended into as they
// are met, so a directory's files come before those of its later siblings.
//
// Read failures below root are yielded as errors and the walk continues with
// the next sibling. Callers that need a hard failure for a missing root should
// call CheckDir first. Each range over the result performs a fresh traversal.
func WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkFiles(root, yield)
	}
}

// walkFiles reports whether the traversal should continue.
func walkFiles(dir string, yield func(string, error) bool) bool {
	for entry, err := range Children(dir) {
		if err != nil {
			return yield("", err)
		}
		if entry.Name == "." || entry.Name == ".." {
			continue
		}

		path := filepath.Join(dir, entry.Name)
		if entry.IsDir {
			if !walkFiles(path, yield) {
				return false
			}
			continue
		}
		if !yield(path, nil) {
			return false
		}
	}
	return true
}
