package holdings

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
)

// RestClient defines the subset of the Supabase REST client used here.
type RestClient interface {
	GetJSON(ctx context.Context, path string, dest any) error
}

// Service reads portfolio positions from the remote holdings store.
type Service struct {
	client RestClient
}

// NewService creates a new holdings Service. A nil client means credentials
// are absent and every fetch degrades to an empty result.
func NewService(client RestClient) *Service {
	return &Service{client: client}
}

// record mirrors one row of the portfolio_holdings table. Price is optional;
// most rows rely on market-data resolution instead.
type record struct {
	Ticker string   `json:"ticker"`
	Shares float64  `json:"shares"`
	Price  *float64 `json:"price"`
}

// Fetch returns the ordered list of holdings from the remote store. Missing
// credentials, transport failures, and malformed bodies all degrade to an
// empty list; the caller treats empty as "nothing to do", never as fatal.
func (s *Service) Fetch(ctx context.Context) []domain.Holding {
	if s.client == nil {
		slog.Error("SUPABASE_URL and SUPABASE_ANON_KEY required to fetch holdings")
		return nil
	}

	var records []record
	if err := s.client.GetJSON(ctx, "/rest/v1/portfolio_holdings?select=*", &records); err != nil {
		slog.Error("fetching holdings failed", "error", err)
		return nil
	}

	return lo.Map(records, func(r record, _ int) domain.Holding {
		h := domain.Holding{
			Ticker: r.Ticker,
			Shares: decimal.NewFromFloat(r.Shares),
		}
		if r.Price != nil {
			h.Price = decimal.NewFromFloat(*r.Price)
		}
		return h
	})
}

// Manual builds the single-holding list for manual override mode, bypassing
// the remote store entirely.
func Manual(ticker string, shares, price float64) []domain.Holding {
	return []domain.Holding{{
		Ticker: ticker,
		Shares: decimal.NewFromFloat(shares),
		Price:  decimal.NewFromFloat(price),
	}}
}
