// Package trades drives an offer from creation through acceptance to
// completion. Textual references are resolved by the matcher, every
// transition is persisted through the ledger before it is considered
// applied, and expected failures come back as the tagged errors in
// errors.go.
package trades

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/textutil"
	"arctraders-backend/services/trades/db"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/trades")

type Options struct {
	Match MatchOptions `json:"match"`
	// default and cap for the `last` command
	RecentDefault int `json:"recent_default"`
	RecentMax     int `json:"recent_max"`
}

func DefaultOptions() Options {
	return Options{
		Match:         DefaultMatchOptions(),
		RecentDefault: 5,
		RecentMax:     25,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	o.Match = o.Match.withDefaults()
	if o.RecentDefault <= 0 {
		o.RecentDefault = def.RecentDefault
	}
	if o.RecentMax <= 0 {
		o.RecentMax = def.RecentMax
	}
	return o
}

type Service struct {
	ledger  *Ledger
	catalog *catalog.Store
	opts    Options
	now     func() time.Time
}

func NewService(database *sql.DB, store *catalog.Store, opts Options) *Service {
	return &Service{
		ledger:  NewLedger(database),
		catalog: store,
		opts:    opts.withDefaults(),
		now:     time.Now,
	}
}

func newOfferID() string {
	return uuid.NewString()[:8]
}

type OfferRequest struct {
	OffererID   string `json:"offerer_id"`
	OffererName string `json:"offerer_name"`
	Item        string `json:"item"`
	Notes       string `json:"notes"`
	GuildID     string `json:"guild_id"`
	ChannelID   string `json:"channel_id"`
}

// Offer posts a new trade. The item text is normalized against the
// catalog when a unique match exists, and kept raw otherwise: members
// trade plenty of things the wiki has never heard of.
func (s *Service) Offer(ctx context.Context, req OfferRequest) (Offer, error) {
	ctx, span := tracer.Start(ctx, "Offer")
	defer span.End()

	itemRaw := textutil.CollapseWhitespace(req.Item)
	if itemRaw == "" {
		return Offer{}, &ValidationError{Reason: "offer needs an item"}
	}
	if req.OffererID == "" {
		return Offer{}, &ValidationError{Reason: "offer needs an offerer"}
	}

	itemNorm := itemRaw
	match := MatchCatalog(s.catalog, itemRaw, s.opts.Match)
	if match.Kind == MatchUnique {
		itemNorm = match.Best.Entry.Name
	}
	span.SetAttributes(
		attribute.String("item_raw", itemRaw),
		attribute.String("item_norm", itemNorm),
	)

	row := db.CreateActiveTradeParams{
		OfferID:     newOfferID(),
		Status:      string(StatusOpen),
		ItemRaw:     itemRaw,
		ItemNorm:    itemNorm,
		OffererID:   req.OffererID,
		OffererName: req.OffererName,
		CreatedTs:   s.now().Unix(),
		Notes:       req.Notes,
		GuildID:     req.GuildID,
		ChannelID:   req.ChannelID,
	}
	err := s.ledger.AppendActive(ctx, row)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Offer{}, err
	}

	slog.InfoContext(ctx, "offer created",
		"offer_id", row.OfferID,
		"item", itemNorm,
		"offerer", req.OffererID,
	)
	return offerFromActive(db.ActiveTrade(row)), nil
}

type AcceptRequest struct {
	AccepterID   string `json:"accepter_id"`
	AccepterName string `json:"accepter_name"`
	Query        string `json:"query"`
}

// Accept resolves the query against open offers and performs the
// guarded OPEN -> ACCEPTED transition. Ambiguity and no-match are
// returned without mutating anything.
func (s *Service) Accept(ctx context.Context, req AcceptRequest) (Offer, error) {
	ctx, span := tracer.Start(ctx, "Accept")
	defer span.End()
	span.SetAttributes(attribute.String("query", req.Query))

	open, err := s.ledger.ActiveByStatus(ctx, StatusOpen)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Offer{}, err
	}

	offer, err := s.resolveOne(open, req.Query)
	if err != nil {
		return Offer{}, err
	}

	if offer.OffererID == req.AccepterID {
		return Offer{}, &ValidationError{Reason: "you cannot accept your own offer"}
	}

	acceptedTs := s.now().Unix()
	won, err := s.ledger.Accept(ctx, db.AcceptActiveTradeParams{
		AccepterID:   req.AccepterID,
		AccepterName: req.AccepterName,
		AcceptedTs:   acceptedTs,
		OfferID:      offer.ID,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Offer{}, err
	}
	if !won {
		// someone else got there between the read and the update
		return Offer{}, fmt.Errorf("offer %s is no longer open: %w", offer.ID, NotFound)
	}

	offer.Status = StatusAccepted
	offer.AccepterID = req.AccepterID
	offer.AccepterName = req.AccepterName
	acceptedAt := time.Unix(acceptedTs, 0).UTC()
	offer.AcceptedAt = &acceptedAt

	slog.InfoContext(ctx, "offer accepted",
		"offer_id", offer.ID,
		"accepter", req.AccepterID,
	)
	return offer, nil
}

type CompleteRequest struct {
	CallerID string `json:"caller_id"`
	Query    string `json:"query"`
}

// Complete resolves the query against the caller's accepted offers and
// moves the winner into completed storage. Only participants may
// complete a trade.
func (s *Service) Complete(ctx context.Context, req CompleteRequest) (Offer, error) {
	ctx, span := tracer.Start(ctx, "Complete")
	defer span.End()
	span.SetAttributes(attribute.String("query", req.Query))

	accepted, err := s.ledger.ActiveByStatus(ctx, StatusAccepted)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Offer{}, err
	}

	var pool []db.ActiveTrade
	for _, row := range accepted {
		if row.OffererID == req.CallerID || row.AccepterID == req.CallerID {
			pool = append(pool, row)
		}
	}

	offer, err := s.resolveOne(pool, req.Query)
	if err != nil {
		return Offer{}, err
	}

	completedTs := s.now().Unix()
	moved, won, err := s.ledger.CompleteMove(ctx, offer.ID, completedTs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Offer{}, err
	}
	if !won {
		return Offer{}, fmt.Errorf("offer %s is no longer accepted: %w", offer.ID, NotFound)
	}

	slog.InfoContext(ctx, "offer completed", "offer_id", offer.ID, "caller", req.CallerID)
	return offerFromActive(moved), nil
}

// Cancel abandons an offer the caller created. Not exposed as a chat
// command; ops tooling only.
func (s *Service) Cancel(ctx context.Context, offerID, callerID string) error {
	ctx, span := tracer.Start(ctx, "Cancel")
	defer span.End()

	rows, err := s.ledger.ActiveAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	for _, row := range rows {
		if row.OfferID != offerID {
			continue
		}
		if row.OffererID != callerID {
			return &ValidationError{Reason: "only the offerer can cancel an offer"}
		}
		won, err := s.ledger.Cancel(ctx, offerID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if !won {
			return fmt.Errorf("offer %s cannot be cancelled anymore: %w", offerID, NotFound)
		}
		slog.InfoContext(ctx, "offer cancelled", "offer_id", offerID)
		return nil
	}
	return NotFound
}

// Recent returns the n most recently completed trades, n clamped to
// [1, RecentMax]. n <= 0 picks the configured default.
func (s *Service) Recent(ctx context.Context, n int) ([]Offer, error) {
	ctx, span := tracer.Start(ctx, "Recent")
	defer span.End()

	if n <= 0 {
		n = s.opts.RecentDefault
	}
	if n > s.opts.RecentMax {
		n = s.opts.RecentMax
	}
	span.SetAttributes(attribute.Int("count", n))

	rows, err := s.ledger.RecentCompleted(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	offers := make([]Offer, len(rows))
	for i, row := range rows {
		offers[i] = offerFromCompleted(row)
	}
	return offers, nil
}

// InProgress returns up to n OPEN/ACCEPTED offers, newest first.
func (s *Service) InProgress(ctx context.Context, n int) ([]Offer, error) {
	ctx, span := tracer.Start(ctx, "InProgress")
	defer span.End()

	if n <= 0 {
		n = s.opts.RecentDefault
	}
	if n > s.opts.RecentMax {
		n = s.opts.RecentMax
	}

	rows, err := s.ledger.ActiveAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var offers []Offer
	for _, row := range rows {
		if row.Status != string(StatusOpen) && row.Status != string(StatusAccepted) {
			continue
		}
		offers = append(offers, offerFromActive(row))
		if len(offers) == n {
			break
		}
	}
	return offers, nil
}

// Cleanup moves lingering COMPLETED/CANCELLED rows out of active
// storage. Safe to run repeatedly.
func (s *Service) Cleanup(ctx context.Context) (SweepStats, error) {
	ctx, span := tracer.Start(ctx, "Cleanup")
	defer span.End()

	stats, err := s.ledger.Sweep(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return stats, err
	}
	slog.InfoContext(ctx, "cleanup swept active trades",
		"moved", stats.Moved,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

// resolveOne runs the matcher over a pool of rows and insists on a
// unique winner.
func (s *Service) resolveOne(rows []db.ActiveTrade, query string) (Offer, error) {
	offers := make([]Offer, len(rows))
	for i, row := range rows {
		offers[i] = offerFromActive(row)
	}

	match := MatchOffers(offers, query, s.opts.Match)
	switch match.Kind {
	case MatchUnique:
		return *match.Best.Offer, nil
	case MatchAmbiguous:
		return Offer{}, &AmbiguousMatch{Candidates: match.Candidates}
	default:
		return Offer{}, NoMatch
	}
}
