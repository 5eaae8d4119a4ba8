// Package organizer drives one organization pass over a source
// directory, moving top-level files into category subfolders.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/wizzomafizzo/tidy/internal/category"
	"github.com/wizzomafizzo/tidy/internal/logging"
)

// ErrNotDirectory is returned when the source path exists but is not a
// directory.
var ErrNotDirectory = errors.New("source is not a directory")

// Recorder receives a record of every completed move. Implementations
// must tolerate being called once per moved file, sequentially.
type Recorder interface {
	RecordMove(ctx context.Context, source, dest, category string) error
}

// Organizer performs sequential organization passes. It holds no state
// between passes beyond its configuration.
type Organizer struct {
	fs         afero.Fs
	categories *category.Map
	log        *logging.RunLog
	recorder   Recorder
	dryRun     bool
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithRecorder wires a move recorder. Recorder failures are logged and
// never fail the pass.
func WithRecorder(r Recorder) Option {
	return func(o *Organizer) { o.recorder = r }
}

// WithDryRun makes the pass resolve destinations without moving
// anything.
func WithDryRun(enabled bool) Option {
	return func(o *Organizer) { o.dryRun = enabled }
}

// New creates an Organizer over the given filesystem and category map.
func New(fs afero.Fs, categories *category.Map, log *logging.RunLog, opts ...Option) *Organizer {
	o := &Organizer{fs: fs, categories: categories, log: log}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result records the outcome for a single file: either a destination it
// was moved to, or the error that left it in place.
type Result struct {
	Source   string
	Dest     string
	Category string
	Err      error
}

// Moved reports whether the file reached its destination.
func (r Result) Moved() bool {
	return r.Err == nil
}

// Summary aggregates the per-file results of one pass.
type Summary struct {
	Results []Result
	Moved   int
	Failed  int
	Skipped int
	DryRun  bool
}

// Organize runs one pass over the top-level entries of sourceDir.
// Individual file failures are logged and counted but never abort the
// pass; only a failure to list the directory itself does. Callers must
// have verified that sourceDir exists and is a directory, but the check
// is repeated here so a stale path fails cleanly.
func (o *Organizer) Organize(ctx context.Context, sourceDir string) (*Summary, error) {
	info, err := o.fs.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", sourceDir, ErrNotDirectory)
	}

	entries, err := afero.ReadDir(o.fs, sourceDir)
	if err != nil {
		o.log.Error().Str("source", sourceDir).Err(err).Msg("failed to list source directory")
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	summary := &Summary{DryRun: o.dryRun}
	for _, entry := range entries {
		path := filepath.Join(sourceDir, entry.Name())

		switch {
		case entry.IsDir():
			o.log.Debug().Str("path", path).Msg("skipped directory")
			summary.Skipped++
			continue
		case logging.IsLogFile(entry.Name()):
			// The run log and its rotated backups live in the source
			// directory; they stay put.
			o.log.Debug().Str("path", path).Msg("skipped log file")
			summary.Skipped++
			continue
		case !entry.Mode().IsRegular():
			o.log.Debug().Str("path", path).Msg("skipped non-regular file")
			summary.Skipped++
			continue
		}

		result := o.processFile(ctx, sourceDir, entry.Name())
		summary.Results = append(summary.Results, result)
		if result.Moved() {
			summary.Moved++
		} else {
			summary.Failed++
		}
	}

	return summary, nil
}

// processFile classifies, resolves and moves a single file, returning
// its Result. Every failure is logged exactly once.
func (o *Organizer) processFile(ctx context.Context, sourceDir, name string) Result {
	source := filepath.Join(sourceDir, name)
	cat := o.categories.Lookup(Ext(name))
	destDir := filepath.Join(sourceDir, cat)
	result := Result{Source: source, Category: cat}

	if err := o.fs.MkdirAll(destDir, 0o755); err != nil {
		result.Err = fmt.Errorf("failed to create category directory: %w", err)
		o.log.Error().
			Str("source", source).
			Str("dest", destDir).
			Err(err).
			Msg("failed to create category directory")
		return result
	}

	dest, err := ResolveDestination(destDir, name, func(path string) (bool, error) {
		return afero.Exists(o.fs, path) //nolint:wrapcheck // wrapped by the resolver
	})
	if err != nil {
		result.Err = err
		o.log.Error().
			Str("source", source).
			Str("dest", destDir).
			Err(err).
			Msg("failed to resolve destination")
		return result
	}
	result.Dest = dest

	if o.dryRun {
		o.log.Info().Str("source", source).Str("dest", result.Dest).Msg("would move")
		return result
	}

	if err := o.move(source, result.Dest); err != nil {
		result.Err = err
		o.log.Error().
			Str("source", source).
			Str("dest", result.Dest).
			Err(err).
			Msg("failed to move")
		return result
	}

	o.log.Info().Str("source", source).Str("dest", result.Dest).Msg("moved")

	if o.recorder != nil {
		if err := o.recorder.RecordMove(ctx, source, result.Dest, cat); err != nil {
			o.log.Error().Str("source", source).Err(err).Msg("failed to record move in history")
		}
	}
	return result
}
