package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgWriter upserts ledger rows directly against the Postgres database
// behind the REST API, using a single atomic statement. It relies on the
// unique index on (date, category) and is therefore safe under concurrent
// invocations, unlike the REST writer. Selected when DATABASE_URL is set.
type PgWriter struct {
	pool *pgxpool.Pool
}

// NewPgWriter creates a direct-Postgres ledger writer.
func NewPgWriter(pool *pgxpool.Pool) *PgWriter {
	return &PgWriter{pool: pool}
}

func (w *PgWriter) Record(ctx context.Context, date, category string, amount decimal.Decimal, notes string) error {
	_, err := w.pool.Exec(ctx,
		`INSERT INTO net_worth_entries (date, category, amount, notes, created_by)
		 VALUES ($1, $2, $3::numeric, $4, $5)
		 ON CONFLICT (date, category)
		 DO UPDATE SET amount = EXCLUDED.amount, notes = EXCLUDED.notes, updated_at = NOW()`,
		date, category, amount.String(), notes, createdBy)
	if err != nil {
		return fmt.Errorf("upserting entry for (%s, %s): %w", date, category, err)
	}
	return nil
}
