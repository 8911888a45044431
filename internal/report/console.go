package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/valuation"
)

var separator = strings.Repeat("-", 50)

// Printer renders the fixed-format human report for one sync run. The
// format is informational only, not a machine contract.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Header prints the run banner with a timestamp.
func (p *Printer) Header(now time.Time) {
	fmt.Fprintf(p.out, "Net Worth Sync - %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintln(p.out, separator)
}

// NoHoldings prints the empty-portfolio notice.
func (p *Printer) NoHoldings() {
	fmt.Fprintln(p.out, "No holdings found. Add stocks to portfolio_holdings table first.")
}

// Valuation prints one line per holding followed by the total line.
func (p *Printer) Valuation(result valuation.Result) {
	for _, h := range result.Priced {
		fmt.Fprintf(p.out, "  %s: %s shares × $%s = $%s\n",
			h.Ticker, domain.FormatShares(h.Shares), domain.FormatPrice(h.Price), domain.FormatAmount(h.Value))
	}
	for _, ticker := range result.Unpriced {
		fmt.Fprintf(p.out, "  %s: could not fetch price\n", ticker)
	}
	fmt.Fprintln(p.out, separator)
	fmt.Fprintf(p.out, "Total Investment Value: $%s\n", domain.FormatAmount(result.Total))
}

// DryRun prints the dry-run notice.
func (p *Printer) DryRun() {
	fmt.Fprintln(p.out, "\n[DRY RUN] No changes made to database")
}

// Success prints the ledger-write confirmation line.
func (p *Printer) Success(category string, total decimal.Decimal) {
	fmt.Fprintf(p.out, "\nUpdated net_worth_entries: %s = $%s\n", category, domain.FormatAmount(total))
}

// Failure prints the ledger-write failure line.
func (p *Printer) Failure() {
	fmt.Fprintln(p.out, "\nFailed to update database")
}
