package trades

import (
	"time"

	"arctraders-backend/services/trades/db"
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusAccepted  Status = "ACCEPTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Offer is one trade, in flight or done. The database row is the source
// of truth; this is just its in-memory shape.
type Offer struct {
	ID           string     `json:"id"`
	Status       Status     `json:"status"`
	Item         string     `json:"item"`
	ItemRaw      string     `json:"item_raw"`
	OffererID    string     `json:"offerer_id"`
	OffererName  string     `json:"offerer_name"`
	AccepterID   string     `json:"accepter_id,omitempty"`
	AccepterName string     `json:"accepter_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	GuildID      string     `json:"guild_id,omitempty"`
	ChannelID    string     `json:"channel_id,omitempty"`
}

// IsParticipant reports whether the user created or accepted the offer.
func (o Offer) IsParticipant(userID string) bool {
	return userID != "" && (o.OffererID == userID || o.AccepterID == userID)
}

func unixOrNil(ts int64) *time.Time {
	if ts == 0 {
		return nil
	}
	t := time.Unix(ts, 0).UTC()
	return &t
}

func offerFromActive(row db.ActiveTrade) Offer {
	return Offer{
		ID:           row.OfferID,
		Status:       Status(row.Status),
		Item:         row.ItemNorm,
		ItemRaw:      row.ItemRaw,
		OffererID:    row.OffererID,
		OffererName:  row.OffererName,
		AccepterID:   row.AccepterID,
		AccepterName: row.AccepterName,
		CreatedAt:    time.Unix(row.CreatedTs, 0).UTC(),
		AcceptedAt:   unixOrNil(row.AcceptedTs),
		CompletedAt:  unixOrNil(row.CompletedTs),
		Notes:        row.Notes,
		GuildID:      row.GuildID,
		ChannelID:    row.ChannelID,
	}
}

func offerFromCompleted(row db.CompletedTrade) Offer {
	return offerFromActive(db.ActiveTrade(row))
}
