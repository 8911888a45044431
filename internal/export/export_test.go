package export

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/robinsoorma-clawdy/robin-dashboard/internal/domain"
)

func sampleReport() Report {
	return Report{
		Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Priced: []domain.PricedHolding{
			domain.NewPricedHolding("AAPL", decimal.NewFromInt(10), decimal.NewFromFloat(123.45)),
			domain.NewPricedHolding("MSFT", decimal.NewFromInt(2), decimal.NewFromFloat(50)),
		},
		Total: decimal.NewFromFloat(1334.5),
	}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows(sampleReport())

	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4 (header + 2 holdings + total)", len(rows))
	}
	if rows[0][0] != "Ticker" {
		t.Errorf("header = %v, want Ticker first", rows[0])
	}
	if rows[1][0] != "AAPL" || rows[1][3] != 1234.5 {
		t.Errorf("rows[1] = %v, want AAPL with value 1234.5", rows[1])
	}
	if rows[3][0] != "Total" || rows[3][3] != 1334.5 {
		t.Errorf("total row = %v, want Total 1334.5", rows[3])
	}
}

func TestExcelWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := NewExcelWriter(path)

	if err := w.Write(context.Background(), sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Holdings", "A2")
	if err != nil {
		t.Fatalf("reading cell: %v", err)
	}
	if got != "AAPL" {
		t.Errorf("A2 = %q, want AAPL", got)
	}
}

type mockWriter struct {
	err   error
	calls int
}

func (m *mockWriter) Write(_ context.Context, _ Report) error {
	m.calls++
	return m.err
}

func TestServiceContinuesPastFailures(t *testing.T) {
	failing := &mockWriter{err: errors.New("quota exceeded")}
	working := &mockWriter{}
	svc := NewService(failing, working)

	err := svc.Export(context.Background(), sampleReport())
	if err == nil {
		t.Fatal("expected joined error from failing writer")
	}
	if working.calls != 1 {
		t.Errorf("working writer calls = %d, want 1", working.calls)
	}
}
