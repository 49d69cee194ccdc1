package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/tools/pm/changes"
)

func newChangelogCmd() *cobra.Command {
	var (
		file       string
		release    bool
		preRelease bool
	)

	changelogCmd := &cobra.Command{
		Use:   "changelog",
		Short: "Commands related to change logs",
	}
	changelogCmd.PersistentFlags().StringVarP(&file, "file", "f", changes.Filename, "change log to read")

	lintCmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the change log for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := changes.CheckStandard
			switch {
			case release:
				mode = changes.CheckRelease
			case preRelease:
				mode = changes.CheckPreRelease
			}

			r, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("unable to open change log: %w", err)
			}
			defer func() { _ = r.Close() }()

			return changes.Lint(r, mode)
		},
	}
	lintCmd.Flags().BoolVarP(&release, "release", "r", false, "verify the change log is ready for release")
	lintCmd.Flags().BoolVarP(&preRelease, "pre-release", "p", false, "verify the change log still has a WIP section")
	lintCmd.MarkFlagsMutuallyExclusive("release", "pre-release")

	extractCmd := &cobra.Command{
		Use:   "extract <version>",
		Short: "Print the bullets of the change log section for the given version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("unable to open change log: %w", err)
			}
			defer func() { _ = r.Close() }()

			section, err := changes.Extract(r, args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), section)
			return err
		},
	}

	changelogCmd.AddCommand(lintCmd)
	changelogCmd.AddCommand(extractCmd)

	return changelogCmd
}
