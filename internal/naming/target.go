package naming

import (
	"regexp"
	"strconv"
)

// markerPattern matches '#N' insertion markers in a target template.
var markerPattern = regexp.MustCompile(`#(\d+)`)

// BuildTargetPath builds the target path for one file by substituting
// the extracted parts into a template path. Markers are 1-based: '#1'
// is the first wildcard's capture. A marker may repeat; each occurrence
// substitutes independently. Markers with no corresponding part resolve
// to the empty string rather than failing.
func BuildTargetPath(parts []string, templatePath string) string {
	dir, template := SplitPath(templatePath)

	name := markerPattern.ReplaceAllStringFunc(template, func(marker string) string {
		idx, err := strconv.Atoi(marker[1:])
		if err != nil || idx < 1 || idx > len(parts) {
			return ""
		}
		return parts[idx-1]
	})
	return JoinPath(dir, name)
}
