package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "manifest",
		Short:         "Generate identifier manifests for a directory of HTML files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// A bare invocation generates manifests for the current directory.
		RunE: runGenerate,
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}
