package pipeline

import (
	"os"

	"github.com/pkg/errors"

	"github.com/backmassage/mmv/internal/config"
	"github.com/backmassage/mmv/internal/logging"
	"github.com/backmassage/mmv/internal/naming"
)

// Run is the batch entry point. It discovers the source files, builds
// every rename plan up front, validates all targets, ensures the target
// directory exists, and then executes the renames in enumeration order.
// The result is binary: either every matched file moved (each one
// logged as a "source -> target" line) or the first failure is
// returned and the batch stops there. Completed renames are never
// rolled back; under force, targets deleted during validation are not
// restored if a later step fails.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	sources, err := FindMatching(cfg.SourcePattern)
	if err != nil {
		return stats, err
	}
	stats.Total = len(sources)

	plans := BuildPlans(sources, cfg.SourcePattern, cfg.TargetPattern)
	for _, target := range duplicateTargets(plans) {
		log.Warn("multiple sources map to %s; the last move wins", target)
	}

	// Validate every target before touching anything. Under force,
	// existing targets are removed in this pass so the renames below
	// cannot collide.
	for _, p := range plans {
		if _, err := os.Stat(p.Target); err != nil {
			continue
		}
		if !cfg.Force {
			return stats, errors.Wrapf(ErrTargetExists, "mmv: %s", p.Target)
		}
		if cfg.DryRun {
			log.Debug(cfg.Verbose, "would replace %s", p.Target)
			stats.Replaced++
			continue
		}
		if err := os.Remove(p.Target); err != nil {
			return stats, errors.Wrapf(ErrReplaceFailed, "mmv: %s: %v", p.Target, err)
		}
		stats.Replaced++
	}

	if targetDir, _ := naming.SplitPath(cfg.TargetPattern); targetDir != "" && !cfg.DryRun {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return stats, errors.Wrapf(ErrTargetDirCreate, "mmv: %s: %v", targetDir, err)
		}
	}

	for _, p := range plans {
		if cfg.DryRun {
			log.Info("%s -> %s (dry run)", p.Source, p.Target)
			stats.Moved++
			continue
		}
		if err := os.Rename(p.Source, p.Target); err != nil {
			return stats, errors.Wrapf(ErrRenameFailed, "mmv: %s -> %s: %v", p.Source, p.Target, err)
		}
		log.Success("%s -> %s", p.Source, p.Target)
		stats.Moved++
	}
	return stats, nil
}
