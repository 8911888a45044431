package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/config"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/database"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/export"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/holdings"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/ledger"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/report"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/supabase"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/valuation"
	"github.com/robinsoorma-clawdy/robin-dashboard/internal/yahoo"
)

func main() {
	app := &cli.App{
		Name:  "networth-sync",
		Usage: "fetch stock prices and update the net worth ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tickers",
				Usage: "comma-separated tickers (reserved; the computed flow reads the portfolio)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "preview without updating the ledger",
			},
			&cli.StringFlag{
				Name:  "ticker",
				Usage: "single ticker for manual update",
			},
			&cli.Float64Flag{
				Name:  "shares",
				Usage: "shares for manual update",
			},
			&cli.Float64Flag{
				Name:  "price",
				Usage: "price for manual update",
			},
			&cli.StringFlag{
				Name:  "category",
				Value: "investments",
				Usage: "ledger category to record",
			},
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "also write the valuation report to this Excel file",
			},
			&cli.BoolFlag{
				Name:  "sheet",
				Usage: "also push the valuation report to the configured Google Sheet",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	var client *supabase.Client
	if cfg.HasSupabase() {
		client = supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.HTTPTimeout)
	}

	source := holdings.NewService(nil)
	if client != nil {
		source = holdings.NewService(client)
	}

	s := &syncer{
		source:   source,
		resolver: yahoo.NewClient(cfg.YahooURL, cfg.HTTPTimeout),
		newWriter: func(ctx context.Context) (ledger.Writer, func(), error) {
			return newLedgerWriter(ctx, cfg, client)
		},
		printer: report.NewPrinter(os.Stdout),
		export: func(ctx context.Context, now time.Time, result valuation.Result) {
			exportReport(ctx, c, cfg, now, result)
		},
	}

	opts := syncOptions{
		ticker:   c.String("ticker"),
		shares:   c.Float64("shares"),
		price:    c.Float64("price"),
		dryRun:   c.Bool("dry-run"),
		category: c.String("category"),
	}

	if err := s.run(ctx, opts, time.Now()); err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

type syncOptions struct {
	ticker   string
	shares   float64
	price    float64
	dryRun   bool
	category string
}

// holdingsSource yields the holdings to value for one run.
type holdingsSource interface {
	Fetch(ctx context.Context) []domain.Holding
}

// writerFactory defers ledger construction until a write is actually due,
// so dry runs never touch the database.
type writerFactory func(ctx context.Context) (ledger.Writer, func(), error)

// syncer is the one-run pipeline with every collaborator injected.
type syncer struct {
	source    holdingsSource
	resolver  valuation.PriceResolver
	newWriter writerFactory
	printer   *report.Printer
	export    func(ctx context.Context, now time.Time, result valuation.Result)
}

// run executes one sync: gather holdings, value them, and unless this is a
// dry run, export and record the total. Manual mode bypasses the holdings
// store entirely and, since it carries an explicit price, never reaches
// market data either. A non-nil error means the ledger write failed.
func (s *syncer) run(ctx context.Context, opts syncOptions, now time.Time) error {
	s.printer.Header(now)

	manual := opts.ticker != "" && opts.shares > 0 && opts.price != 0

	var hs []domain.Holding
	if manual {
		hs = holdings.Manual(opts.ticker, opts.shares, opts.price)
	} else {
		hs = s.source.Fetch(ctx)
	}

	if len(hs) == 0 {
		s.printer.NoHoldings()
		return nil
	}

	result := valuation.NewService(s.resolver).Value(ctx, hs)
	s.printer.Valuation(result)

	if opts.dryRun {
		s.printer.DryRun()
		return nil
	}

	if s.export != nil {
		s.export(ctx, now, result)
	}

	writer, cleanup, err := s.newWriter(ctx)
	if err != nil {
		slog.Error("ledger unavailable", "error", err)
		s.printer.Failure()
		return err
	}
	defer cleanup()

	notes := valuation.BuildNotes(result.Priced)
	if err := writer.Record(ctx, now.Format("2006-01-02"), opts.category, result.Total, notes); err != nil {
		slog.Error("ledger write failed", "category", opts.category, "error", err)
		s.printer.Failure()
		return err
	}

	s.printer.Success(opts.category, result.Total)
	return nil
}

// newLedgerWriter picks the direct-Postgres atomic upsert when DATABASE_URL
// is set, otherwise the REST check-then-write path.
func newLedgerWriter(ctx context.Context, cfg config.Config, client *supabase.Client) (ledger.Writer, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return ledger.NewPgWriter(pool), pool.Close, nil
	}
	if client != nil {
		return ledger.NewRestWriter(client), func() {}, nil
	}
	return ledger.NewRestWriter(nil), func() {}, nil
}

// exportReport pushes the valuation report to any requested destinations.
// Export failures are logged inside the export service and never change the
// exit code; only the ledger write does.
func exportReport(ctx context.Context, c *cli.Context, cfg config.Config, now time.Time, result valuation.Result) {
	var writers []export.Writer

	if path := c.String("xlsx"); path != "" {
		writers = append(writers, export.NewExcelWriter(path))
	}

	if c.Bool("sheet") {
		if cfg.SpreadsheetID == "" || cfg.GoogleCredsJSON == "" {
			slog.Warn("sheet export requested but SHEETS_SPREADSHEET_ID or GOOGLE_CREDENTIALS_JSON not set")
		} else {
			sw, err := export.NewSheetsWriter(ctx, cfg.SpreadsheetID, cfg.GoogleCredsJSON)
			if err != nil {
				slog.Error("creating sheets writer failed", "error", err)
			} else {
				writers = append(writers, sw)
			}
		}
	}

	if len(writers) == 0 {
		return
	}

	_ = export.NewService(writers...).Export(ctx, export.Report{
		Date:   now,
		Priced: result.Priced,
		Total:  result.Total,
	})
}
