package export

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
)

// Report is the tabular valuation report pushed to export destinations.
type Report struct {
	Date   time.Time
	Priced []domain.PricedHolding
	Total  decimal.Decimal
}

// Writer writes a valuation report to one destination.
type Writer interface {
	Write(ctx context.Context, r Report) error
}

// Service fans a report out to all configured writers. Export failures are
// logged and returned but never affect the ledger outcome or exit code.
type Service struct {
	writers []Writer
}

// NewService creates an export Service over the given writers.
func NewService(writers ...Writer) *Service {
	return &Service{writers: writers}
}

// Export writes the report to every destination, continuing past failures.
func (s *Service) Export(ctx context.Context, r Report) error {
	var errs []error
	for _, w := range s.writers {
		if err := w.Write(ctx, r); err != nil {
			slog.Error("report export failed", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// buildRows renders the shared tabular layout: a header row, one row per
// priced holding, and a trailing total row.
func buildRows(r Report) [][]any {
	rows := make([][]any, 0, len(r.Priced)+2)
	rows = append(rows, []any{"Ticker", "Shares", "Price", "Value"})

	rows = append(rows, lo.Map(r.Priced, func(h domain.PricedHolding, _ int) []any {
		return []any{h.Ticker, toFloat(h.Shares), toFloat(h.Price), toFloat(h.Value)}
	})...)

	rows = append(rows, []any{"Total", nil, nil, toFloat(r.Total)})
	return rows
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
