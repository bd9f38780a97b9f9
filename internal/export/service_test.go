package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

type fakeLoans struct {
	rows []*entity.ExportRow
}

func (f *fakeLoans) ListCompleted(context.Context, repository.PageRange) ([]*entity.ExportRow, error) {
	return f.rows, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRows() []*entity.ExportRow {
	bank := "ПАО Сбербанк"
	dealType := "Договор займа (кредита)"
	amount := 250000.00
	cur := "RUB"
	status := "Closed"
	card := true
	deal := time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)
	term := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	extracted := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	full := &entity.ExportRow{
		Loan: entity.Loan{
			ID:              1,
			ParagraphID:     10,
			BankName:        &bank,
			DealDate:        &deal,
			DealType:        &dealType,
			CardUsage:       &card,
			LoanAmount:      &amount,
			LoanCurrency:    &cur,
			TerminationDate: &term,
			LoanStatus:      &status,
			ExtractedAt:     extracted,
		},
		PageNumber: 3,
	}
	sparse := &entity.ExportRow{
		Loan: entity.Loan{
			ID:          2,
			ParagraphID: 11,
			BankName:    &bank,
			ExtractedAt: extracted,
		},
		PageNumber: 4,
	}
	return []*entity.ExportRow{full, sparse}
}

func TestWriteCSV(t *testing.T) {
	svc := NewService(&fakeLoans{rows: sampleRows()}, testLogger())

	var buf bytes.Buffer
	n, err := svc.WriteCSV(context.Background(), &buf, repository.PageRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}

	header := records[0]
	if len(header) != len(Columns) {
		t.Fatalf("header width = %d, want %d", len(header), len(Columns))
	}
	for i, want := range Columns {
		if header[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want)
		}
	}

	full := records[1]
	want := []string{
		"1", "10", "3", "ПАО Сбербанк", "2019-03-15",
		"Договор займа (кредита)", "", "true", "250000.00",
		"RUB", "2024-03-15", "Closed", "2026-08-30T12:00:00Z",
	}
	for i := range want {
		if full[i] != want[i] {
			t.Errorf("row[%d] (%s) = %q, want %q", i, Columns[i], full[i], want[i])
		}
	}

	// missing optionals stay empty, not "null" or "0"
	sparse := records[2]
	for _, i := range []int{4, 5, 6, 7, 8, 9, 10, 11} {
		if sparse[i] != "" {
			t.Errorf("sparse row %s = %q, want empty", Columns[i], sparse[i])
		}
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	svc := NewService(&fakeLoans{}, testLogger())

	var buf bytes.Buffer
	n, err := svc.WriteCSV(context.Background(), &buf, repository.PageRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil || len(records) != 1 {
		t.Fatalf("expected header only, got %v (%v)", records, err)
	}
}

func TestWriteXLSX(t *testing.T) {
	svc := NewService(&fakeLoans{rows: sampleRows()}, testLogger())

	out, err := svc.WriteXLSX(context.Background(), repository.PageRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Loans")
	if err != nil {
		t.Fatalf("missing Loans sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "id" || rows[0][3] != "bank_name" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][3] != "ПАО Сбербанк" {
		t.Errorf("bank cell = %q", rows[1][3])
	}
	if rows[1][11] != "Closed" {
		t.Errorf("status cell = %q", rows[1][11])
	}
}
