package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atmosprobe/internal/logging"
	"atmosprobe/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var noCache bool
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Scan files and directories for Atmos audio",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			lock, err := scan.Lock(cfg.ScanLockPath())
			if err != nil {
				return err
			}
			defer func() { _ = lock.Unlock() }()

			opts := []scan.Option{scan.WithWorkers(workers)}
			if !noCache {
				cache, err := ctx.openCache(cmd.Context())
				if err != nil {
					logging.WarnWithContext(logger, "probe cache unavailable", "cache_open_failed",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "run 'atmosprobe check' or delete the cache file"),
						logging.String(logging.FieldImpact, "every file will be probed"))
				} else if cache != nil {
					defer cache.Close()
					opts = append(opts, scan.WithCache(cache))
				}
			}

			report, err := scan.New(cfg, logger, opts...).Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					scan.Report
					Summary scan.Summary `json:"summary"`
				}{report, report.Summary()})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if verbose {
				for _, file := range report.Files {
					printFileReport(out, file, colorize)
				}
			} else if len(report.Files) > 0 {
				headers := []string{"File", "Audio", "Atmos", "Cached", "Primary"}
				aligns := []columnAlignment{alignLeft, alignRight, alignRight}
				fmt.Fprintln(out, renderTable(headers, scanRows(report.Files), aligns, colorize))
			}
			printSummary(out, report.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Probe every file even when a cached result is fresh")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent ffprobe processes (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every audio stream instead of one row per file")
	return cmd
}
