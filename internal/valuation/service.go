package valuation

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
)

// notesTickerLimit caps how many tickers appear in the ledger notes string.
// Downstream consumers of the notes field rely on this exact truncation.
const notesTickerLimit = 3

// PriceResolver resolves the latest market price for a ticker. The boolean
// is false when no usable price exists; resolution never errors.
type PriceResolver interface {
	FetchPrice(ctx context.Context, ticker string) (decimal.Decimal, bool)
}

// Service aggregates holdings into a total portfolio value.
type Service struct {
	resolver PriceResolver
}

// NewService creates a new valuation Service.
func NewService(resolver PriceResolver) *Service {
	return &Service{resolver: resolver}
}

// Result holds the outcome of valuing one batch of holdings.
type Result struct {
	Total    decimal.Decimal
	Priced   []domain.PricedHolding
	Unpriced []string
}

// Value resolves a price for each holding in order and sums shares × price.
// An explicit non-zero price on a holding wins and the resolver is never
// consulted for it. A holding contributes to the total when its price is
// non-zero and its share count positive; anything else lands in Unpriced
// without aborting the batch.
func (s *Service) Value(ctx context.Context, hs []domain.Holding) Result {
	result := Result{Total: decimal.Zero}

	for _, h := range hs {
		price := h.Price
		if !h.HasPrice() {
			resolved, ok := s.resolver.FetchPrice(ctx, h.Ticker)
			if !ok {
				result.Unpriced = append(result.Unpriced, h.Ticker)
				continue
			}
			price = resolved
		}

		if price.IsZero() || !h.Shares.IsPositive() {
			result.Unpriced = append(result.Unpriced, h.Ticker)
			continue
		}

		result.Priced = append(result.Priced, domain.NewPricedHolding(h.Ticker, h.Shares, price))
	}

	result.Total = lo.Reduce(result.Priced, func(acc decimal.Decimal, p domain.PricedHolding, _ int) decimal.Decimal {
		return acc.Add(p.Value)
	}, decimal.Zero)

	return result
}

// BuildNotes renders the ledger notes summary: the first 3 priced tickers
// with their price, then a "+N more" count for the rest.
func BuildNotes(priced []domain.PricedHolding) string {
	shown := priced
	if len(shown) > notesTickerLimit {
		shown = shown[:notesTickerLimit]
	}

	parts := lo.Map(shown, func(p domain.PricedHolding, _ int) string {
		return fmt.Sprintf("%s($%s)", p.Ticker, domain.FormatPrice(p.Price))
	})

	notes := fmt.Sprintf("Updated %d positions: %s", len(priced), strings.Join(parts, ", "))
	if len(priced) > notesTickerLimit {
		notes += fmt.Sprintf(" +%d more", len(priced)-notesTickerLimit)
	}
	return notes
}
