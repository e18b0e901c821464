package cmd

import (
	"fmt"
	"strings"

	"arctraders-backend/services/trades"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completeCmd)
}

var completeCmd = &cobra.Command{
	Use:   "complete <item>",
	Short: "Mark one of your accepted trades as done.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireUser()
		svc := openService()

		offer, err := svc.Complete(cmd.Context(), trades.CompleteRequest{
			CallerID: userID,
			Query:    strings.Join(args, " "),
		})
		if err != nil {
			fail(err)
		}

		fmt.Printf("offer %s completed\n", offer.ID)
		renderOffers([]trades.Offer{offer})
	},
}
