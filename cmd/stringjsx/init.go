package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/stringjsx/internal/config"
	"github.com/vango-dev/stringjsx/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		asYAML bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default config file",
		Long: `Write stringjsx.json (or stringjsx.yaml with --yaml) holding the
default settings into dir, or the working directory.`,
		Args: cobra.MaximumNArgs(1),
		// init must work where the existing config is broken.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			name := config.ConfigFileName
			if asYAML {
				name = "stringjsx.yaml"
			}
			path := filepath.Join(dir, name)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Use --force to overwrite it.")
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.New("E241").Wrap(err)
			}
			if err := config.New().SaveTo(path); err != nil {
				return errors.New("E241").Wrap(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write YAML instead of JSON")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
