package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wizzomafizzo/tidy/internal/config"
	"github.com/wizzomafizzo/tidy/internal/prompt"
	"github.com/wizzomafizzo/tidy/internal/storage"
)

// createInitCommand creates the init command.
func createInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  "Write the default configuration to the user config directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}
			return runInit(cmd, afero.NewOsFs(), force, prompt.Confirm)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, fs afero.Fs, force bool, confirm func(string) (bool, error)) error {
	store := storage.New(fs)
	path := store.GetConfigPath()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		ok, err := confirm(fmt.Sprintf("Config %s exists. Overwrite?", path))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
