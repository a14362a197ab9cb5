// Package naming implements the path and pattern vocabulary of mmv:
// lexical path splitting, wildcard pattern compilation, capture
// extraction, and target path building.
//
// A wildcard pattern is a filename in which each '*' stands for an
// arbitrary, possibly empty character run; every other character is
// literal, including '.'. A target template is a filename in which
// '#1', '#2', … markers reinsert the substrings the wildcards captured.
//
// Split along these boundaries: split.go, pattern.go, extract.go,
// target.go.
package naming
