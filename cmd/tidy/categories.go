package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createCategoriesCommand creates the categories command.
func createCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the effective category table",
		Long:  "Show the category-to-extension table after config overrides are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}

			m := cfg.CategoryMap()
			out := cmd.OutOrStdout()
			for _, name := range m.Names() {
				exts := m.Extensions(name)
				if len(exts) == 0 {
					continue
				}
				_, _ = fmt.Fprintf(out, "%s: %s\n",
					color.CyanString(name), strings.Join(exts, ", "))
			}
			_, _ = fmt.Fprintf(out, "%s: everything else\n", color.CyanString(m.Fallback()))
			return nil
		},
	}
}
