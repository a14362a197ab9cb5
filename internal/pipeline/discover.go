package pipeline

import (
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/backmassage/mmv/internal/naming"
)

// FindMatching lists the directory named by patternPath (non-recursive;
// files and subdirectories both count) and returns the full paths of
// entries whose names match the wildcard pattern, sorted
// lexicographically for deterministic processing order.
//
// An unreadable directory and an empty match set are both reported as
// errors, never as a silent empty result. The no-match error carries
// the queried pattern verbatim.
func FindMatching(patternPath string) ([]string, error) {
	dir, pattern := naming.SplitPath(patternPath)
	if dir == "" {
		return nil, errors.Wrapf(ErrDirUnreadable, "mmv: pattern '%s' names no directory", patternPath)
	}
	match := naming.CompileMatch(pattern)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrDirUnreadable, "mmv: %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if match.MatchString(entry.Name()) {
			paths = append(paths, naming.JoinPath(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "mmv: pattern '%s'", patternPath)
	}

	sort.Strings(paths)
	return paths, nil
}
