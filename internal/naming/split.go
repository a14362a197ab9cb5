package naming

import "strings"

// SplitPath splits a full path at the last '/' into a directory and a
// filename (or filename pattern). The split is purely lexical: no
// filesystem lookups, no cleaning. A path without a separator has an
// empty directory component.
//
//	SplitPath("a/b/c.txt") == ("a/b", "c.txt")
//	SplitPath("c.txt")     == ("", "c.txt")
//
// Every component that needs to separate a directory from a filename
// must go through this function so the behavior stays consistent.
func SplitPath(full string) (dir, name string) {
	i := strings.LastIndex(full, "/")
	if i < 0 {
		return "", full
	}
	return full[:i], full[i+1:]
}

// JoinPath reassembles a directory and filename split by [SplitPath].
// An empty directory yields the bare name, so a filename-only template
// never turns into an absolute path.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
