package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/valuation"
)

func TestValuationOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Header(time.Date(2026, 8, 30, 14, 5, 0, 0, time.Local))
	p.Valuation(valuation.Result{
		Total: decimal.NewFromFloat(1234.5),
		Priced: []domain.PricedHolding{
			domain.NewPricedHolding("AAPL", decimal.NewFromInt(10), decimal.NewFromFloat(123.45)),
		},
		Unpriced: []string{"MSFT"},
	})

	out := buf.String()

	for _, want := range []string{
		"Net Worth Sync - 2026-08-30 14:05",
		"  AAPL: 10 shares × $123.45 = $1,234.50",
		"  MSFT: could not fetch price",
		"Total Investment Value: $1,234.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestDryRunAndOutcomeLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.DryRun()
	p.Success("investments", decimal.NewFromInt(5000))
	p.Failure()

	out := buf.String()
	for _, want := range []string{
		"[DRY RUN] No changes made to database",
		"Updated net_worth_entries: investments = $5,000.00",
		"Failed to update database",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestNoHoldings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.NoHoldings()

	if !strings.Contains(buf.String(), "No holdings found") {
		t.Errorf("output = %q, want No holdings found notice", buf.String())
	}
}
