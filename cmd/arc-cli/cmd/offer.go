package cmd

import (
	"fmt"
	"strings"

	"arctraders-backend/services/trades"

	"github.com/spf13/cobra"
)

var offerNotes string

func init() {
	offerCmd.Flags().StringVar(&offerNotes, "notes", "", "free-form note attached to the offer")
	rootCmd.AddCommand(offerCmd)
}

var offerCmd = &cobra.Command{
	Use:   "offer <item text>",
	Short: "Post a new trade offer.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireUser()
		svc := openService()

		offer, err := svc.Offer(cmd.Context(), trades.OfferRequest{
			OffererID:   userID,
			OffererName: userName,
			Item:        strings.Join(args, " "),
			Notes:       offerNotes,
		})
		if err != nil {
			fail(err)
		}

		fmt.Printf("offer %s posted\n", offer.ID)
		renderOffers([]trades.Offer{offer})
	},
}
