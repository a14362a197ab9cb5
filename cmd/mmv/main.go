// Command mmv is the entrypoint for the mass-move CLI. It parses flags
// and the two positional patterns, applies config-file defaults, and
// runs the rename pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/mmv/internal/config"
	"github.com/backmassage/mmv/internal/logging"
	"github.com/backmassage/mmv/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := newRootCommand(&cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	var (
		colorMode  string
		configFile string
	)

	cmd := &cobra.Command{
		Use:     "mmv <source_pattern> <target_pattern>",
		Short:   "Move batches of files selected by a wildcard pattern",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Long: `mmv moves every file whose name matches a wildcard pattern, inserting
the substrings the wildcards matched into a target path template.

The source pattern may contain '*' in its filename component, each one
standing for an arbitrary (possibly empty) character run. The target
pattern reinserts those runs with 1-based '#N' markers.

Examples:
  # some_A_report.bin -> archive/A_report.bin (likewise for every match)
  mmv 'data/some_*_report.*' 'archive/#1_report.#2'

  # Overwrite targets that already exist
  mmv -f 'data/some_*_report.*' 'archive/#1_report.#2'

  # Preview without touching the filesystem
  mmv -n 'data/some_*_report.*' 'archive/#1_report.#2'

Targets are validated before any file moves: a pre-existing target
aborts the whole batch unless --force is given. Once moving starts
there is no rollback; the first failure stops the batch and files
already moved stay moved.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.SourcePattern = args[0]
			cfg.TargetPattern = args[1]
			cfg.ColorMode = config.ColorMode(colorMode)

			// File defaults apply only where the user passed no flag.
			path := configFile
			explicit := cmd.Flags().Changed("config")
			if path == "" {
				path = config.DefaultFilePath()
			}
			if path != "" {
				fc, err := config.LoadFile(path, explicit)
				if err != nil {
					return err
				}
				if err := fc.Apply(cfg, cmd.Flags().Changed); err != nil {
					return err
				}
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			stats, err := pipeline.Run(cfg, log)
			if err != nil {
				return err
			}
			log.Debug(cfg.Verbose, "moved %d of %d file(s), replaced %d",
				stats.Moved, stats.Total, stats.Replaced)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cfg.Force, "force", "f", false, "Replace existing files at target paths")
	cmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Preview the plan without moving anything")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().StringVar(&colorMode, "color", string(config.ColorAuto), "Color mode: auto | always | never")
	cmd.Flags().StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/mmv/config.yaml)")

	return cmd
}
