package trades

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"arctraders-backend/services/trades/db"

	"github.com/cenkalti/backoff/v4"
)

// Ledger is the thin accessor over the two trade tables. It owns no
// state beyond the connection; the database is the only copy of every
// offer. Each call is bounded by a timeout and retried once with
// backoff when the failure looks transient.
type Ledger struct {
	db      *sql.DB
	qry     *db.Queries
	timeout time.Duration
}

func NewLedger(database *sql.DB) *Ledger {
	return &Ledger{
		db:      database,
		qry:     db.New(database),
		timeout: time.Second * 5,
	}
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "busy") ||
		strings.Contains(msg, "unavailable")
}

// run executes op under the ledger timeout with a single backoff retry
// for transient failures. Anything that still fails comes back as a
// StorageError; sql.ErrNoRows passes through untouched.
func (l *Ledger) run(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := func() error {
		opCtx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()

		err := op(opCtx)
		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) || !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1), ctx)
	err := backoff.Retry(attempt, bo)
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return &StorageError{Transient: isTransient(err), Err: err}
}

func (l *Ledger) AppendActive(ctx context.Context, row db.CreateActiveTradeParams) error {
	return l.run(ctx, func(ctx context.Context) error {
		return l.qry.CreateActiveTrade(ctx, row)
	})
}

func (l *Ledger) ActiveByStatus(ctx context.Context, status Status) ([]db.ActiveTrade, error) {
	var rows []db.ActiveTrade
	err := l.run(ctx, func(ctx context.Context) error {
		var err error
		rows, err = l.qry.ListActiveTradesByStatus(ctx, string(status))
		return err
	})
	return rows, err
}

func (l *Ledger) ActiveAll(ctx context.Context) ([]db.ActiveTrade, error) {
	var rows []db.ActiveTrade
	err := l.run(ctx, func(ctx context.Context) error {
		var err error
		rows, err = l.qry.ListActiveTrades(ctx)
		return err
	})
	return rows, err
}

// Accept performs the guarded OPEN -> ACCEPTED update. The returned
// bool is false when the guard lost a race: the offer was no longer
// open by the time the update ran.
func (l *Ledger) Accept(ctx context.Context, arg db.AcceptActiveTradeParams) (bool, error) {
	var won bool
	err := l.run(ctx, func(ctx context.Context) error {
		rows, err := l.qry.AcceptActiveTrade(ctx, arg)
		if err != nil {
			return err
		}
		won = rows == 1
		return nil
	})
	return won, err
}

// CompleteMove transitions an ACCEPTED offer to COMPLETED and moves the
// row into completed_trades as one transaction. Returns the moved row
// and false (without error) when the guard lost a race.
func (l *Ledger) CompleteMove(ctx context.Context, offerID string, completedTs int64) (db.ActiveTrade, bool, error) {
	var moved db.ActiveTrade
	var won bool

	err := l.run(ctx, func(ctx context.Context) error {
		tx, err := l.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()
		txqry := l.qry.WithTx(tx)

		rows, err := txqry.MarkActiveTradeCompleted(ctx, db.MarkActiveTradeCompletedParams{
			CompletedTs: completedTs,
			OfferID:     offerID,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			won = false
			return nil
		}

		row, err := txqry.GetActiveTrade(ctx, offerID)
		if err != nil {
			return err
		}
		err = txqry.CreateCompletedTrade(ctx, db.CreateCompletedTradeParams(row))
		if err != nil {
			return err
		}
		err = txqry.DeleteActiveTrade(ctx, offerID)
		if err != nil {
			return err
		}

		err = tx.Commit()
		if err != nil {
			return err
		}
		moved = row
		won = true
		return nil
	})
	return moved, won, err
}

// Cancel performs the guarded transition to CANCELLED. False means the
// offer was not in a cancellable state (or did not exist).
func (l *Ledger) Cancel(ctx context.Context, offerID string) (bool, error) {
	var won bool
	err := l.run(ctx, func(ctx context.Context) error {
		rows, err := l.qry.CancelActiveTrade(ctx, offerID)
		if err != nil {
			return err
		}
		won = rows == 1
		return nil
	})
	return won, err
}

func (l *Ledger) RecentCompleted(ctx context.Context, n int) ([]db.CompletedTrade, error) {
	var rows []db.CompletedTrade
	err := l.run(ctx, func(ctx context.Context) error {
		var err error
		rows, err = l.qry.ListCompletedTrades(ctx, int64(n))
		return err
	})
	return rows, err
}

type SweepStats struct {
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
}

// Sweep moves any COMPLETED or CANCELLED rows still lingering in
// active_trades over to completed_trades. Idempotent housekeeping; safe
// to run at any time.
func (l *Ledger) Sweep(ctx context.Context) (SweepStats, error) {
	var stats SweepStats
	err := l.run(ctx, func(ctx context.Context) error {
		stats = SweepStats{}

		tx, err := l.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()
		txqry := l.qry.WithTx(tx)

		rows, err := txqry.ListActiveTrades(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.Status != string(StatusCompleted) && row.Status != string(StatusCancelled) {
				stats.Skipped++
				continue
			}
			err = txqry.CreateCompletedTrade(ctx, db.CreateCompletedTradeParams(row))
			if err != nil {
				return err
			}
			err = txqry.DeleteActiveTrade(ctx, row.OfferID)
			if err != nil {
				return err
			}
			stats.Moved++
		}

		return tx.Commit()
	})
	return stats, err
}
