package cmd

import "github.com/spf13/cobra"

// NewRootCmd builds the pm command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pm",
		Short:        "Project management tools for go-headerlines",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newChangelogCmd())

	return rootCmd
}

// Execute runs pm with the arguments from the command line.
func Execute() error {
	return NewRootCmd().Execute()
}
