package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atmosprobe/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffprobe, directories, and the probe cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			binaries := preflight.CheckSystemDeps(cfg)
			failed := preflight.Failed(results)
			missing := 0
			for _, status := range binaries {
				if !status.Available && !status.Optional {
					missing++
				}
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, map[string]any{
					"checks":   results,
					"binaries": binaries,
				}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("Dependencies", colorize) {
					fmt.Fprintln(out, line)
				}
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
				}
				for _, line := range renderSectionHeader("Binaries", colorize) {
					fmt.Fprintln(out, line)
				}
				for _, status := range binaries {
					kind, detail := statusOK, status.Command
					if !status.Available {
						kind, detail = statusError, status.Detail
						if status.Optional {
							kind = statusWarn
						}
					}
					fmt.Fprintln(out, renderStatusLine(status.Name, kind, detail, colorize))
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			if missing > 0 {
				return fmt.Errorf("%d required binaries missing", missing)
			}
			return nil
		},
	}
}
