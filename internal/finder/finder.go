// Package finder runs the mdfiles pipeline: check the root, walk it, keep
// the files that pass the suffix and date filters and print each one as a
// Markdown link.
//
// Per-file problems (unreadable directories, files that vanish, metadata
// that cannot be read, names that are not UTF-8) drop that file from the
// results and nothing else. They are reported only at trace log level.
// Only a missing root or a failing output writer end a run early.
package finder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/mdfiles/internal/fileutil"
	"github.com/harrison/mdfiles/internal/filter"
	"github.com/harrison/mdfiles/internal/markdown"
	"github.com/harrison/mdfiles/internal/models"
)

// Logger is the subset of logger.ConsoleLogger the finder uses.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogSummary(cfg models.SearchConfig, result models.SearchResult)
}

// Finder executes searches. The zero value is not usable; call New.
type Finder struct {
	fs     fileutil.FS
	logger Logger
	now    func() time.Time
}

// New returns a Finder reading metadata from fsys. A nil fsys uses the
// real file system; a nil logger discards log output.
func New(fsys fileutil.FS, logger Logger) *Finder {
	if fsys == nil {
		fsys = fileutil.NewOSFS()
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Finder{fs: fsys, logger: logger, now: time.Now}
}

// Predicate builds the filter chain for cfg. The suffix check runs first
// because it needs no system call.
func (f *Finder) Predicate(cfg models.SearchConfig) filter.Predicate {
	return filter.All(
		filter.Suffix(cfg.Suffix),
		filter.ModifiedOn(f.fs, cfg.Date, cfg.Loc()),
	)
}

// Run searches cfg.Root and writes one "- [name](path)" line to out per
// match, in traversal order. It returns a *models.RootNotFoundError before
// reading anything if the root is missing, the context error if ctx is
// cancelled mid-walk, and any error from out.
func (f *Finder) Run(ctx context.Context, cfg models.SearchConfig, out io.Writer) (models.SearchResult, error) {
	var result models.SearchResult

	if err := fileutil.CheckRoot(cfg.Root); err != nil {
		return result, err
	}

	runID := uuid.New().String()
	f.logger.LogDebug(fmt.Sprintf("run %s: searching %s for *%s modified on %s (%s)",
		runID, cfg.Root, cfg.Suffix, cfg.Date, cfg.Loc()))

	start := f.now()
	pred := f.Predicate(cfg)

	files := fileutil.Walk(cfg.Root, fileutil.WalkOptions{
		ExcludeDirs: cfg.ExcludeDirs,
		MaxDepth:    cfg.MaxDepth,
		OnSkip: func(path string, err error) {
			f.logger.LogTrace(fmt.Sprintf("run %s: skipped %s: %v", runID, path, err))
		},
	})

	for path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Scanned++
		if !pred.Matches(path) {
			continue
		}

		if err := markdown.WriteLink(out, path); err != nil {
			return result, fmt.Errorf("failed to write result: %w", err)
		}
		result.Matched++
	}

	result.Duration = f.now().Sub(start)
	f.logger.LogSummary(cfg, result)

	return result, nil
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}

func (nopLogger) LogDebug(string) {}

func (nopLogger) LogSummary(models.SearchConfig, models.SearchResult) {}
