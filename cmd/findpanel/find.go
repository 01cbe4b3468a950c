package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"findpanel/internal/config"
	"findpanel/internal/headless"
)

func newFindCommand() *cobra.Command {
	var opts headless.Options

	cmd := &cobra.Command{
		Use:   "find PATTERN PATHS...",
		Short: "Search or replace in files without the editor",
		Long: `Runs the search panel against every file found under PATHS and prints
the results panel of each file as plain text.

Examples:
  # List every line containing a word
  findpanel find --word require ./scripts

  # Rename a function in place
  findpanel find --regex 'old_(\w+)' --replace 'new_$1' --replace-all --write ./scripts`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Pattern = args[0]
			if opts.Write && !opts.ReplaceAll {
				return fmt.Errorf("--write requires --replace-all")
			}

			closeLog := setupLogging(logPath)
			defer closeLog()

			cfg := loadConfig(config.NewConfigService(configPath, nil))
			summary, err := headless.Run(cmd.Context(), opts, args[1:], cfg.Discovery, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if opts.ReplaceAll {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files changed, %d saved\n", summary.Changed, summary.Files, summary.Saved)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Regex, "regex", false, "treat PATTERN as a regular expression")
	cmd.Flags().BoolVar(&opts.CaseSensitive, "case", false, "match case")
	cmd.Flags().BoolVar(&opts.WholeWord, "word", false, "match whole words only")
	cmd.Flags().StringVar(&opts.Replacement, "replace", "", "replacement text, $1 refers to a regex group")
	cmd.Flags().BoolVar(&opts.ReplaceAll, "replace-all", false, "replace every match")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "save files changed by --replace-all")

	return cmd
}
