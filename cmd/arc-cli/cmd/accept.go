package cmd

import (
	"fmt"
	"strings"

	"arctraders-backend/services/trades"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(acceptCmd)
}

var acceptCmd = &cobra.Command{
	Use:   "accept <item> [from <player>]",
	Short: "Accept an open offer matching the query.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireUser()
		svc := openService()

		offer, err := svc.Accept(cmd.Context(), trades.AcceptRequest{
			AccepterID:   userID,
			AccepterName: userName,
			Query:        strings.Join(args, " "),
		})
		if err != nil {
			fail(err)
		}

		fmt.Printf("accepted %s from %s\n", offer.Item, offer.OffererName)
		renderOffers([]trades.Offer{offer})
	},
}
