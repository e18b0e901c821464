package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Move finished or cancelled rows out of the active table.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		stats, err := svc.Cleanup(cmd.Context())
		if err != nil {
			fail(err)
		}
		fmt.Printf("cleanup: moved=%d skipped=%d\n", stats.Moved, stats.Skipped)
	},
}
