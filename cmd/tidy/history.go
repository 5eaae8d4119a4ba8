package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wizzomafizzo/tidy/internal/history"
	"github.com/wizzomafizzo/tidy/internal/storage"
)

// createHistoryCommand creates the history command.
func createHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently moved files",
		Long:  "Show the most recent entries of the move journal, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			store := storage.New(afero.NewOsFs())
			dsn, err := store.GetHistoryPath()
			if err != nil {
				return fmt.Errorf("failed to resolve history journal path: %w", err)
			}

			journal, err := history.New(cmd.Context(), dsn)
			if err != nil {
				return fmt.Errorf("failed to open history journal: %w", err)
			}
			defer func() { _ = journal.Close() }()

			moves, err := journal.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read history journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(moves) == 0 {
				_, _ = fmt.Fprintln(out, "No moves recorded yet.")
				return nil
			}

			for _, move := range moves {
				_, _ = fmt.Fprintf(out, "%s  %s  %s -> %s\n",
					move.MovedAt.Format("2006-01-02 15:04:05"),
					color.CyanString("%-10s", move.Category),
					move.Source, move.Dest,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of entries to show")

	return cmd
}
