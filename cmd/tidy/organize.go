package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wizzomafizzo/tidy/internal/history"
	"github.com/wizzomafizzo/tidy/internal/logging"
	"github.com/wizzomafizzo/tidy/internal/organizer"
	"github.com/wizzomafizzo/tidy/internal/storage"
)

type organizeParams struct {
	source string
	dryRun bool
}

// runOrganize performs one organization pass. Per-file failures are
// logged and summarized but leave the exit code at zero; only startup
// and directory-level failures return an error.
func runOrganize(cmd *cobra.Command, params organizeParams) error {
	cfg, err := loadConfigFromCommand(cmd)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	store := storage.New(fs)

	source := params.source
	if source == "" {
		source = cfg.Source
	}
	if source == "" {
		source = store.DefaultSource()
	}
	source, err = filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}

	info, err := fs.Stat(source)
	if err != nil {
		return fmt.Errorf("source directory %s: %w", source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", source, organizer.ErrNotDirectory)
	}

	log, err := logging.Open(filepath.Join(source, logging.Filename), cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	opts := []organizer.Option{organizer.WithDryRun(params.dryRun)}
	if cfg.HistoryEnabled() && !params.dryRun {
		journal := openJournal(cmd, store, log)
		if journal != nil {
			defer func() { _ = journal.Close() }()
			opts = append(opts, organizer.WithRecorder(journal))
		}
	}

	org := organizer.New(fs, cfg.CategoryMap(), log, opts...)

	log.Info().Str("source", source).Msg("starting organization")
	summary, err := org.Organize(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("organization failed: %w", err)
	}
	log.Info().
		Int("moved", summary.Moved).
		Int("failed", summary.Failed).
		Msg("organization complete")

	printSummary(cmd.OutOrStdout(), source, summary)
	return nil
}

// openJournal opens the move journal, degrading to nil with a log record
// when it cannot be opened. A broken journal never blocks a pass.
func openJournal(cmd *cobra.Command, store *storage.Manager, log *logging.RunLog) *history.Store {
	dsn, err := store.GetHistoryPath()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve history journal path")
		return nil
	}
	journal, err := history.New(cmd.Context(), dsn)
	if err != nil {
		log.Error().Err(err).Msg("failed to open history journal")
		return nil
	}
	return journal
}

func printSummary(w io.Writer, source string, summary *organizer.Summary) {
	verb := "moved"
	if summary.DryRun {
		verb = "would move"
	}

	_, _ = fmt.Fprintf(w, "%s %s: %s %d, %s %d, %s %d\n",
		color.GreenString("tidy"), source,
		verb, summary.Moved,
		color.RedString("failed"), summary.Failed,
		"skipped", summary.Skipped,
	)

	for _, result := range summary.Results {
		if result.Moved() {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s: %v\n",
			color.RedString("failed"), result.Source, result.Err)
	}
}
