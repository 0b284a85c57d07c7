package probecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"atmosprobe/internal/logging"
)

// Entry is a cached ffprobe payload for one media file. The payload is stored
// raw so classification always runs against current code.
type Entry struct {
	Path     string
	Size     int64
	ModTime  time.Time
	RunID    string
	Probe    []byte
	CachedAt time.Time
}

// Fresh reports whether the entry still describes a file with the given size
// and modification time.
func (e Entry) Fresh(size int64, modTime time.Time) bool {
	return e.Size == size && e.ModTime.UnixNano() == modTime.UnixNano()
}

// ErrNotFound indicates no cache entry exists for a path.
var ErrNotFound = errors.New("probe cache entry not found")

// Cache persists probe results in SQLite.
type Cache struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
	now    func() time.Time
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the cache database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Cache, error) {
	ctx = ensureContext(ctx)
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("open probe cache: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "probecache"),
		now:    time.Now,
	}
	if err := cache.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// Path returns the database file location.
func (c *Cache) Path() string {
	return c.path
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached entry for path when it is still fresh for the
// given size and modification time.
func (c *Cache) Lookup(ctx context.Context, path string, size int64, modTime time.Time) (Entry, bool, error) {
	ctx = ensureContext(ctx)
	row := c.db.QueryRowContext(ctx,
		"SELECT path, size, mod_time_ns, run_id, probe_json, cached_at FROM probe_results WHERE path = ?", path)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup %s: %w", path, err)
	}
	if !entry.Fresh(size, modTime) {
		c.logger.Debug("cached probe is stale",
			logging.String(logging.FieldPath, path),
			logging.Int64("cached_size", entry.Size),
			logging.Int64("size", size))
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Store inserts or replaces the entry for entry.Path.
func (c *Cache) Store(ctx context.Context, entry Entry) error {
	entry.Path = strings.TrimSpace(entry.Path)
	if entry.Path == "" {
		return errors.New("store probe: empty path")
	}
	if len(entry.Probe) == 0 {
		return fmt.Errorf("store probe %s: empty payload", entry.Path)
	}
	if entry.CachedAt.IsZero() {
		entry.CachedAt = c.now()
	}
	_, err := c.execWithRetry(ctx,
		`INSERT INTO probe_results (path, size, mod_time_ns, run_id, probe_json, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   size = excluded.size,
		   mod_time_ns = excluded.mod_time_ns,
		   run_id = excluded.run_id,
		   probe_json = excluded.probe_json,
		   cached_at = excluded.cached_at`,
		entry.Path, entry.Size, entry.ModTime.UnixNano(), entry.RunID, entry.Probe, entry.CachedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("store probe %s: %w", entry.Path, err)
	}
	return nil
}

// List returns all entries, newest first.
func (c *Cache) List(ctx context.Context) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := c.db.QueryContext(ctx,
		"SELECT path, size, mod_time_ns, run_id, probe_json, cached_at FROM probe_results ORDER BY cached_at DESC, path")
	if err != nil {
		return nil, fmt.Errorf("list probes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan probe row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate probes: %w", err)
	}
	return entries, nil
}

// Count returns the number of cached entries.
func (c *Cache) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ensureContext(ctx), "SELECT COUNT(1) FROM probe_results").Scan(&count); err != nil {
		return 0, fmt.Errorf("count probes: %w", err)
	}
	return count, nil
}

// Remove deletes the entry for path. It returns ErrNotFound when no entry
// exists.
func (c *Cache) Remove(ctx context.Context, path string) error {
	res, err := c.execWithRetry(ctx, "DELETE FROM probe_results WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("remove probe %s: %w", path, err)
	}
	if removed, _ := res.RowsAffected(); removed == 0 {
		return fmt.Errorf("remove probe %s: %w", path, ErrNotFound)
	}
	return nil
}

// Clear removes every entry and returns how many were deleted.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	res, err := c.execWithRetry(ctx, "DELETE FROM probe_results")
	if err != nil {
		return 0, fmt.Errorf("clear probes: %w", err)
	}
	removed, _ := res.RowsAffected()
	c.logger.Debug("cleared probe cache", logging.Int64("removed", removed))
	return removed, nil
}

// Prune removes entries cached more than maxAge ago. A non-positive maxAge
// removes nothing.
func (c *Cache) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	cutoff := c.now().Add(-maxAge).UnixNano()
	res, err := c.execWithRetry(ctx, "DELETE FROM probe_results WHERE cached_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune probes: %w", err)
	}
	removed, _ := res.RowsAffected()
	if removed > 0 {
		c.logger.Info("pruned probe cache",
			logging.Int64("removed", removed),
			logging.Duration("max_age", maxAge))
	}
	return removed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		entry    Entry
		modTime  int64
		cachedAt int64
	)
	if err := row.Scan(&entry.Path, &entry.Size, &modTime, &entry.RunID, &entry.Probe, &cachedAt); err != nil {
		return Entry{}, err
	}
	entry.ModTime = time.Unix(0, modTime)
	entry.CachedAt = time.Unix(0, cachedAt)
	return entry, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (c *Cache) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = c.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}
