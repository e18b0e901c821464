package trades

import (
	"encoding/json"
	"testing"

	"arctraders-backend/services/trades/db"

	"github.com/stretchr/testify/require"
)

func TestOfferJSONLeavesUnsetTimesOut(t *testing.T) {
	offer := offerFromActive(db.ActiveTrade{
		OfferID:   "aaaa1111",
		Status:    string(StatusOpen),
		ItemRaw:   "Anvil Blueprint",
		ItemNorm:  "Anvil",
		OffererID: "100",
		CreatedTs: 1767225600,
	})
	require.Nil(t, offer.AcceptedAt)
	require.Nil(t, offer.CompletedAt)

	body, err := json.Marshal(offer)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	require.Contains(t, fields, "created_at")
	require.NotContains(t, fields, "accepted_at", "an open offer has no accept time")
	require.NotContains(t, fields, "completed_at")
}

func TestIsParticipant(t *testing.T) {
	offer := Offer{OffererID: "100", AccepterID: "200"}
	require.True(t, offer.IsParticipant("100"))
	require.True(t, offer.IsParticipant("200"))
	require.False(t, offer.IsParticipant("300"))
	require.False(t, Offer{}.IsParticipant(""))
}
