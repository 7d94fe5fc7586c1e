package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/2beens/gymprogress/internal/progress"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the level ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LEVEL\tTITLE\tMIN XP")
			for _, lvl := range progress.Levels() {
				fmt.Fprintf(w, "%d\t%s %s\t%d\n", lvl.Level, lvl.Icon, lvl.Title, lvl.MinXP)
			}
			return w.Flush()
		},
	}
}
