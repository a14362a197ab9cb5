package naming

// ExtractParts recovers the substrings each '*' in patternPath matched
// for the filename in path, in left-to-right order of the wildcards.
// Both arguments are full paths; only the filename components take part
// in the match. Capture boundaries follow shortest-match semantics, so
// adjacent wildcards or wildcards separated by short literals resolve
// deterministically (the left group takes as little as possible).
//
// If the filename does not satisfy the pattern the result is empty.
// Callers normally pass filenames that already matched [CompileMatch],
// so that case is degenerate, but it is not an error.
func ExtractParts(path, patternPath string) []string {
	_, name := SplitPath(path)
	_, pattern := SplitPath(patternPath)

	m := CompileExtract(pattern).FindStringSubmatch(name)
	if m == nil {
		return nil
	}
	return m[1:]
}
