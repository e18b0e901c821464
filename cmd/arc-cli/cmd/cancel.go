package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cancelCmd)
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <offer id>",
	Short: "Cancel an offer you posted.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireUser()
		svc := openService()

		err := svc.Cancel(cmd.Context(), args[0], userID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("offer %s cancelled\n", args[0])
	},
}
