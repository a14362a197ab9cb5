package pipeline

import "github.com/pkg/errors"

// Sentinel errors classifying the ways a batch can fail. They are
// wrapped with path and cause context at the point of detection
// (errors.Wrapf), so callers get a descriptive message and can still
// classify with errors.Is.
var (
	// ErrDirUnreadable: the source directory named by the pattern
	// cannot be listed.
	ErrDirUnreadable = errors.New("not able to read directory")

	// ErrNoMatch: the source pattern matched zero entries.
	ErrNoMatch = errors.New("no files found")

	// ErrTargetExists: a computed target path already exists and force
	// was not requested. Raised before any mutation.
	ErrTargetExists = errors.New("not able to replace existing file")

	// ErrReplaceFailed: under force, deleting an existing target failed.
	// Earlier deletions in the same pass are not restored.
	ErrReplaceFailed = errors.New("not able to remove existing file")

	// ErrTargetDirCreate: creating the target directory tree failed.
	ErrTargetDirCreate = errors.New("not able to create target directory")

	// ErrRenameFailed: the move primitive failed for one file; the
	// remaining batch is abandoned, completed renames stand.
	ErrRenameFailed = errors.New("not able to move file")
)
