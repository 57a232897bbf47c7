package watch

import (
	"path/filepath"
)

// PatternFilter matches file paths against include and exclude globs.
// The store watcher uses it to narrow directory events down to the
// database file and its journal sidecars.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a filter. Patterns are matched with
// filepath.Match against both the base name and the full path.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// storeFileFilter matches a database file and its journal sidecars, like
// store.db, store.db-wal and store.db-shm.
func storeFileFilter(base string) *PatternFilter {
	return NewPatternFilter([]string{base, base + "-*"}, nil)
}

// Matches reports whether the path passes the filter: no exclude pattern
// may match, and when include patterns are set at least one must.
func (f *PatternFilter) Matches(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range f.Exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}

	return false
}
