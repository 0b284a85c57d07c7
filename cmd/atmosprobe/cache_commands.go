package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"atmosprobe/internal/probecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the probe cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(ctx))

	return cacheCmd
}

func withCache(ctx *commandContext, cmd *cobra.Command, fn func(*probecache.Cache) error) error {
	cache, err := ctx.openCache(cmd.Context())
	if err != nil {
		return fmt.Errorf("open probe cache: %w", err)
	}
	if cache == nil {
		return errors.New("probe cache is disabled (set [cache] enabled = true)")
	}
	defer cache.Close()
	return fn(cache)
}

type cacheEntryView struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
	RunID    string    `json:"run_id,omitempty"`
	CachedAt time.Time `json:"cached_at"`
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached probe results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *probecache.Cache) error {
				entries, err := cache.List(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					views := make([]cacheEntryView, 0, len(entries))
					for _, e := range entries {
						views = append(views, cacheEntryView{
							Path:     e.Path,
							Size:     e.Size,
							ModTime:  e.ModTime,
							RunID:    e.RunID,
							CachedAt: e.CachedAt,
						})
					}
					return writeJSON(cmd, views)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Cached probes: none")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.Path,
						humanize.IBytes(uint64(max(e.Size, 0))),
						humanize.Time(e.CachedAt),
					})
				}
				aligns := []columnAlignment{alignLeft, alignRight}
				fmt.Fprintln(out, renderTable([]string{"Path", "Size", "Cached"}, rows, aligns, shouldColorize(out)))
				return nil
			})
		},
	}
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show probe cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *probecache.Cache) error {
				count, err := cache.Count(cmd.Context())
				if err != nil {
					return err
				}
				var dbSize int64
				if info, statErr := os.Stat(cache.Path()); statErr == nil {
					dbSize = info.Size()
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{
						"path":    cache.Path(),
						"entries": count,
						"bytes":   dbSize,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Path:    %s\n", cache.Path())
				fmt.Fprintf(out, "Entries: %d\n", count)
				fmt.Fprintf(out, "Size:    %s\n", humanize.IBytes(uint64(dbSize)))
				return nil
			})
		},
	}
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove cached probes older than the configured age",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			maxAge := cfg.CacheMaxAge()
			if cmd.Flags().Changed("days") {
				if days < 1 {
					return fmt.Errorf("--days must be at least 1, got %d", days)
				}
				maxAge = time.Duration(days) * 24 * time.Hour
			}
			if maxAge <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Pruning disabled (max_age_days = 0)")
				return nil
			}
			return withCache(ctx, cmd, func(cache *probecache.Cache) error {
				removed, err := cache.Prune(cmd.Context(), maxAge)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d cached probes older than %d days\n",
					removed, int(maxAge.Hours()/24))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "Override cache.max_age_days (at least 1)")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *probecache.Cache) error {
				removed, err := cache.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached probes\n", removed)
				return nil
			})
		},
	}
}

func newCacheRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file>...",
		Short: "Forget cached probes for specific files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *probecache.Cache) error {
				out := cmd.OutOrStdout()
				for _, arg := range args {
					abs, err := filepath.Abs(arg)
					if err != nil {
						return fmt.Errorf("resolve %s: %w", arg, err)
					}
					if err := cache.Remove(cmd.Context(), abs); err != nil {
						if errors.Is(err, probecache.ErrNotFound) {
							fmt.Fprintf(out, "Not cached: %s\n", abs)
							continue
						}
						return err
					}
					fmt.Fprintf(out, "Removed: %s\n", abs)
				}
				return nil
			})
		},
	}
}
