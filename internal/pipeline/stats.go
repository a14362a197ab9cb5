package pipeline

// RunStats tracks aggregate counters across one batch run.
type RunStats struct {
	Total    int // Matched source files.
	Moved    int // Renames performed (or previewed under dry run).
	Replaced int // Pre-existing targets deleted under force.
}
