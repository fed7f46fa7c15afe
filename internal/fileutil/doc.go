// Package fileutil provides the filesystem walking primitives used by the checker.
//
// All traversal goes through this package so that directory handles are opened
// and released in one place.
//
// # Main Components
//
// Children - lazy listing of one directory level:
//   - Entries come back in filesystem enumeration order, never sorted
//   - The handle is closed when iteration ends, on break, or on error
//
// WalkFiles - lazy depth-first, pre-order traversal yielding full file paths:
//   - Directories are descended into, everything else is yielded
//   - Symlinks are not followed (they are yielded like regular files)
//   - Unreadable subdirectories are yielded as errors and skipped
//
// CheckDir - verifies a root before traversal and wraps ErrRootInaccessible.
//
// # Usage Examples
//
// Listing contestant candidates:
//
//	for entry, err := range fileutil.Children(root) {
//	    if err != nil {
//	        return err
//	    }
//	    if entry.IsDir {
//	        fmt.Println(entry.Name)
//	    }
//	}
//
// Walking every file under a folder:
//
//	if err := fileutil.CheckDir(folder); err != nil {
//	    return err
//	}
//	for path, err := range fileutil.WalkFiles(folder) {
//	    if err != nil {
//	        log.Printf("skipped: %v", err)
//	        continue
//	    }
//	    fmt.Println(path)
//	}
//
// # Ordering
//
// Results follow whatever order the operating system yields. Callers that need
// a stable order across platforms must sort themselves; the checker does not,
// because report order is defined as traversal order.
package fileutil
