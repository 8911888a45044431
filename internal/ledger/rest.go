package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// RestClient defines the subset of the Supabase REST client used here.
type RestClient interface {
	GetJSON(ctx context.Context, path string, dest any) error
	Write(ctx context.Context, method, path string, payload any) error
}

// RestWriter upserts ledger rows through the Supabase REST API with a
// check-then-write sequence: read the row for (date, category), then PATCH
// it or POST a new one. The three calls are sequential and unguarded, so
// the daily uniqueness of rows holds only when at most one invocation runs
// per day per category. Concurrent runs can both observe "no row" and both
// insert; the direct-Postgres writer closes that race.
type RestWriter struct {
	client RestClient
}

// NewRestWriter creates a REST ledger writer. A nil client means
// credentials are absent and every record attempt fails immediately.
func NewRestWriter(client RestClient) *RestWriter {
	return &RestWriter{client: client}
}

type updatePayload struct {
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
	UpdatedAt string  `json:"updated_at"`
}

type insertPayload struct {
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
	CreatedBy string  `json:"created_by"`
}

func (w *RestWriter) Record(ctx context.Context, date, category string, amount decimal.Decimal, notes string) error {
	if w.client == nil {
		return errors.New("supabase credentials not configured")
	}

	checkPath := fmt.Sprintf("/rest/v1/net_worth_entries?date=eq.%s&category=eq.%s",
		url.QueryEscape(date), url.QueryEscape(category))

	var existing []Entry
	if err := w.client.GetJSON(ctx, checkPath, &existing); err != nil {
		return fmt.Errorf("checking existing entry: %w", err)
	}

	amt, _ := amount.Float64()

	if len(existing) > 0 {
		updatePath := "/rest/v1/net_worth_entries?id=eq." + url.QueryEscape(string(existing[0].ID))
		payload := updatePayload{
			Amount:    amt,
			Notes:     notes,
			UpdatedAt: time.Now().Format(time.RFC3339),
		}
		if err := w.client.Write(ctx, http.MethodPatch, updatePath, payload); err != nil {
			return fmt.Errorf("updating entry %s: %w", existing[0].ID, err)
		}
		return nil
	}

	payload := insertPayload{
		Date:      date,
		Category:  category,
		Amount:    amt,
		Notes:     notes,
		CreatedBy: createdBy,
	}
	if err := w.client.Write(ctx, http.MethodPost, "/rest/v1/net_worth_entries", payload); err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}
