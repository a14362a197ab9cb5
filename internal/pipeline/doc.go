// Package pipeline orchestrates one mass-move batch: source discovery,
// rename planning, target validation, and sequential execution with
// per-file reporting.
//
// The batch is a linear pass with no retries and no rollback:
// discover → validate all targets → ensure target directory → execute.
// Validation happens for every plan before the first rename, so a
// colliding target aborts the batch with the filesystem untouched; once
// execution starts, completed renames stand even if a later one fails.
//
// Split along these boundaries: discover.go, plan.go, runner.go,
// stats.go, errors.go.
package pipeline
