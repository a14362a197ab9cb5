package naming

import (
	"regexp"
	"strings"
)

// CompileMatch translates a wildcard filename pattern into an anchored
// regexp with whole-string semantics: a name matches if and only if it
// equals the pattern with every '*' expanded to any (possibly empty)
// character run. All other characters are literal; in particular '.'
// never acts as a wildcard.
func CompileMatch(pattern string) *regexp.Regexp {
	return regexp.MustCompile(translate(pattern, false))
}

// CompileExtract is [CompileMatch] with every '*' compiled as a lazy
// capture group, so submatches recover the shortest capture per group,
// left to right. The accepted set of names is identical to CompileMatch.
func CompileExtract(pattern string) *regexp.Regexp {
	return regexp.MustCompile(translate(pattern, true))
}

// translate builds the anchored regexp source for a wildcard pattern.
// Every rune except '*' is escaped so regexp metacharacters stay literal.
func translate(pattern string, capture bool) string {
	star := ".*"
	if capture {
		star = "(.*?)"
	}

	var b strings.Builder
	b.WriteByte('^')
	for _, r := range pattern {
		if r == '*' {
			b.WriteString(star)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte('$')
	return b.String()
}
