package pipeline

import (
	"github.com/backmassage/mmv/internal/naming"
)

// Plan is one scheduled rename: a matched source file and the target
// path built for it. All plans of a batch are computed before any
// filesystem mutation.
type Plan struct {
	Source string
	Target string
}

// BuildPlans computes the target path for every matched source file by
// extracting the wildcard captures against sourcePattern and
// substituting them into targetPattern.
func BuildPlans(sources []string, sourcePattern, targetPattern string) []Plan {
	plans := make([]Plan, 0, len(sources))
	for _, src := range sources {
		parts := naming.ExtractParts(src, sourcePattern)
		plans = append(plans, Plan{
			Source: src,
			Target: naming.BuildTargetPath(parts, targetPattern),
		})
	}
	return plans
}

// duplicateTargets returns the targets claimed by more than one source,
// in first-claimed order. Duplicates do not abort the batch (the last
// rename wins), but the runner warns about them.
func duplicateTargets(plans []Plan) []string {
	owners := make(map[string]int, len(plans))
	var dups []string
	for _, p := range plans {
		owners[p.Target]++
		if owners[p.Target] == 2 {
			dups = append(dups, p.Target)
		}
	}
	return dups
}
