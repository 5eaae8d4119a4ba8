package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wizzomafizzo/tidy/internal/config"
	"github.com/wizzomafizzo/tidy/internal/storage"
)

// createRootCommand creates the main root command. Running it without a
// subcommand performs one organization pass.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidy [source]",
		Short: "Organize a folder's files into category subfolders",
		Long: "Organize the top-level files of a folder into category subfolders " +
			"(Images, Documents, ...) by extension, without ever overwriting. " +
			"Defaults to the user's download directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return fmt.Errorf("failed to get dry-run flag: %w", err)
			}

			source := ""
			if len(args) > 0 {
				source = args[0]
			}

			return runOrganize(cmd, organizeParams{source: source, dryRun: dryRun})
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Resolve destinations without moving anything")

	rootCmd.AddCommand(
		createCategoriesCommand(),
		createHistoryCommand(),
		createInitCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand resolves the effective config: an explicit
// --config path must exist, the default XDG path may be absent.
func loadConfigFromCommand(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		return cfg, nil
	}

	store := storage.New(afero.NewOsFs())
	cfg, err := config.LoadOrDefault(store.GetConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
