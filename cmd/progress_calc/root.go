package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "progress_calc",
		Short:         "Compute gym progress offline",
		Long:          "progress_calc computes streak, XP, level and achievements from exported workout sets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newLevelsCmd())
	return rootCmd
}
