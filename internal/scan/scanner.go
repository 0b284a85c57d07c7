package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"atmosprobe/internal/config"
	"atmosprobe/internal/logging"
	"atmosprobe/internal/media/audio"
	"atmosprobe/internal/media/ffprobe"
	"atmosprobe/internal/probecache"
)

// InspectFunc runs a stream inspection for one file.
type InspectFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Option configures optional Scanner behavior.
type Option func(*Scanner)

// WithInspector replaces the ffprobe invocation, mainly for tests.
func WithInspector(fn InspectFunc) Option {
	return func(s *Scanner) {
		if fn != nil {
			s.inspect = fn
		}
	}
}

// WithCache enables probe result reuse through cache.
func WithCache(cache *probecache.Cache) Option {
	return func(s *Scanner) {
		s.cache = cache
	}
}

// WithWorkers overrides the configured worker count when n is positive.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// Scanner inspects media files and classifies their audio streams.
type Scanner struct {
	binary     string
	timeout    time.Duration
	workers    int
	extensions map[string]struct{}
	inspect    InspectFunc
	cache      *probecache.Cache
	logger     *slog.Logger
	newRunID   func() string
	now        func() time.Time
}

// New constructs a Scanner from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Scanner {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	s := &Scanner{
		binary:     cfg.FFprobeBinary(),
		timeout:    cfg.FFprobeTimeout(),
		workers:    cfg.Scan.Workers,
		extensions: make(map[string]struct{}, len(cfg.Scan.Extensions)),
		inspect:    ffprobe.Inspect,
		logger:     logging.NewComponentLogger(logger, "scan"),
		newRunID:   func() string { return uuid.NewString() },
		now:        time.Now,
	}
	for _, ext := range cfg.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extensions[ext] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = 1
	}
	return s
}

// Run collects files under paths and inspects them. The returned report keeps
// files in collection order. An error is returned only when collection fails
// or ctx is cancelled; per-file failures live on each FileReport.
func (s *Scanner) Run(ctx context.Context, paths []string) (Report, error) {
	runID := s.newRunID()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, s.logger)

	report := Report{RunID: runID, Started: s.now()}
	files, err := s.Collect(ctx, paths)
	if err != nil {
		return report, err
	}
	logger.Info("scan started",
		logging.String(logging.FieldEventType, "scan_started"),
		logging.Int("files", len(files)),
		logging.Int("workers", s.workers),
		logging.Bool("cache", s.cache != nil))

	report.Files = s.inspectAll(ctx, logger, files)
	report.Finished = s.now()
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("scan cancelled: %w", err)
	}

	sum := report.Summary()
	logger.Info("scan completed",
		logging.String(logging.FieldEventType, "scan_completed"),
		logging.Int("files", sum.Files),
		logging.Int("failed", sum.Failed),
		logging.Int("cached", sum.Cached),
		logging.Int("atmos", sum.Atmos),
		logging.Int("undetermined", sum.Undetermined),
		logging.Duration("duration", report.Duration()))
	return report, nil
}

// Files inspects an explicit list of files without walking or filtering.
func (s *Scanner) Files(ctx context.Context, files []string) []FileReport {
	return s.inspectAll(ctx, s.logger, files)
}

func (s *Scanner) inspectAll(ctx context.Context, logger *slog.Logger, files []string) []FileReport {
	results := make([]FileReport, len(files))
	if len(files) == 0 {
		return results
	}
	workers := s.workers
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = s.inspectFile(ctx, logger, files[idx])
			}
		}()
	}

feed:
	for idx := range files {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			for rest := idx; rest < len(files); rest++ {
				results[rest] = failed(files[rest], ctx.Err())
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func (s *Scanner) inspectFile(ctx context.Context, logger *slog.Logger, path string) FileReport {
	if err := ctx.Err(); err != nil {
		return failed(path, err)
	}
	fileLogger := logger.With(logging.String(logging.FieldPath, path))

	info, err := os.Stat(path)
	if err != nil {
		fileLogger.Warn("stat failed", logging.Error(err))
		return failed(path, fmt.Errorf("stat: %w", err))
	}
	if info.IsDir() {
		return failed(path, errors.New("is a directory"))
	}

	result, cached, err := s.probe(ctx, fileLogger, path, info)
	if err != nil {
		logging.WarnWithContext(fileLogger, "inspection failed", "inspect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify the file is readable and ffprobe is installed"),
			logging.String(logging.FieldImpact, "file omitted from results"))
		report := failed(path, err)
		report.Size = info.Size()
		return report
	}

	report := FileReport{Path: path, Size: info.Size(), Cached: cached}
	audioStreams := result.AudioStreams()
	for _, track := range audio.Analyze(audioStreams) {
		report.Streams = append(report.Streams, StreamReport{
			Track:  track,
			Layout: audio.PlanLayout(track),
			Label:  audio.Describe(track),
		})
	}
	var primary *audio.Track
	if len(report.Streams) > 0 {
		selection := audio.Select(audioStreams)
		report.Selection = &selection
		primary = &selection.Primary
	}
	metadata := audio.NewMetadata(result, primary)
	report.Metadata = &metadata
	fileLogger.Debug("file classified",
		logging.Int("audio_streams", len(report.Streams)),
		logging.Bool("cached", cached))
	return report
}

func (s *Scanner) probe(ctx context.Context, logger *slog.Logger, path string, info os.FileInfo) (ffprobe.Result, bool, error) {
	if s.cache != nil {
		entry, ok, err := s.cache.Lookup(ctx, path, info.Size(), info.ModTime())
		if err != nil {
			logger.Warn("cache lookup failed", logging.Error(err))
		} else if ok {
			result, parseErr := ffprobe.Parse(entry.Probe)
			if parseErr == nil {
				return result, true, nil
			}
			logger.Warn("discarding unreadable cache entry", logging.Error(parseErr))
		}
	}

	inspectCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		inspectCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	result, err := s.inspect(inspectCtx, s.binary, path)
	if err != nil {
		return ffprobe.Result{}, false, err
	}

	if s.cache != nil {
		raw := result.RawJSON()
		if len(raw) > 0 {
			runID, _ := logging.RunIDFromContext(ctx)
			entry := probecache.Entry{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
				RunID:   runID,
				Probe:   raw,
			}
			if err := s.cache.Store(ctx, entry); err != nil {
				logger.Warn("cache store failed", logging.Error(err))
			}
		}
	}
	return result, false, nil
}

func failed(path string, err error) FileReport {
	return FileReport{Path: path, Err: err, Error: err.Error()}
}
