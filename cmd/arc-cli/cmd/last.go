package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var lastActive bool

func init() {
	lastCmd.Flags().BoolVar(&lastActive, "active", false, "show in-progress trades instead of completed ones")
	rootCmd.AddCommand(lastCmd)
}

var lastCmd = &cobra.Command{
	Use:   "last [count]",
	Short: "Show the most recently completed trades.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		count := 0
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed <= 0 {
				fmt.Fprintln(os.Stderr, "count must be a positive number")
				os.Exit(1)
			}
			count = parsed
		}

		list := svc.Recent
		if lastActive {
			list = svc.InProgress
		}
		offers, err := list(cmd.Context(), count)
		if err != nil {
			fail(err)
		}
		renderOffers(offers)
	},
}
