package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"atmosprobe/internal/scan"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>...",
		Short: "Inspect media files and classify their audio streams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			files := make([]string, 0, len(args))
			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", arg, err)
				}
				files = append(files, abs)
			}

			scanner := scan.New(cfg, ctx.ensureLogger())
			reports := scanner.Files(cmd.Context(), files)
			if ctx.jsonOutput() {
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, report := range reports {
					printFileReport(out, report, colorize)
				}
			}

			failed := 0
			for _, report := range reports {
				if report.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be inspected", failed, len(reports))
			}
			return nil
		},
	}
}
