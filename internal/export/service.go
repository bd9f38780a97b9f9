package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/loans-extractor/internal/entity"
	"github.com/joseph-ayodele/loans-extractor/internal/repository"
)

// Columns is the export column order, one row per loan joined with its
// paragraph's page number.
var Columns = []string{
	"id", "paragraph_id", "page_number", "bank_name", "deal_date",
	"deal_type", "loan_type", "card_usage", "loan_amount",
	"loan_currency", "termination_date", "loan_status", "extracted_at",
}

const dateLayout = "2006-01-02"

// Service serializes completed extraction results.
type Service struct {
	loans  repository.LoanRepository
	logger *slog.Logger
}

func NewService(loans repository.LoanRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loans: loans, logger: logger}
}

// WriteCSV streams completed rows as CSV. Paragraphs that yielded zero loans
// contribute no rows. Row order is paragraph id then loan id, so repeated
// exports diff cleanly.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, pages repository.PageRange) (int, error) {
	rows, err := s.loans.ListCompleted(ctx, pages)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return 0, fmt.Errorf("csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(record(row)); err != nil {
			return 0, fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok", "rows", len(rows))
	return len(rows), nil
}

// WriteXLSX returns the same rows as an XLSX workbook.
func (s *Service) WriteXLSX(ctx context.Context, pages repository.PageRange) ([]byte, error) {
	start := time.Now()
	rows, err := s.loans.ListCompleted(ctx, pages)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Loans"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		for col, v := range record(row) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "D", "D", 40) // bank
	_ = f.SetColWidth(sheet, "E", "E", 12) // deal date
	_ = f.SetColWidth(sheet, "F", "G", 28) // deal/loan type
	_ = f.SetColWidth(sheet, "I", "J", 14) // amount, currency
	_ = f.SetColWidth(sheet, "K", "M", 18) // termination, status, extracted

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func record(row *entity.ExportRow) []string {
	return []string{
		strconv.Itoa(row.ID),
		strconv.Itoa(row.ParagraphID),
		strconv.Itoa(row.PageNumber),
		strOrEmpty(row.BankName),
		dateOrEmpty(row.DealDate),
		strOrEmpty(row.DealType),
		strOrEmpty(row.LoanType),
		boolOrEmpty(row.CardUsage),
		amountOrEmpty(row.LoanAmount),
		strOrEmpty(row.LoanCurrency),
		dateOrEmpty(row.TerminationDate),
		strOrEmpty(row.LoanStatus),
		row.ExtractedAt.UTC().Format(time.RFC3339),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(dateLayout)
}

func boolOrEmpty(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func amountOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
