package llm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/loans-extractor/constants"
	"github.com/joseph-ayodele/loans-extractor/internal/common"
	"github.com/joseph-ayodele/loans-extractor/internal/entity"
)

const (
	reportDateLayout = "02-01-2006"
	// openEndedDate marks a loan with no contractual end: the loan is active.
	openEndedDate = "31-12-9999"
	notAvailable  = "Н/Д"
)

// CoerceLoan turns the model's semi-structured fields into an entity.Loan.
// The coercion is total: it either yields a typed loan or a validation error,
// never a partially-typed structure. A fields set carrying no usable facts
// returns (nil, nil) so the caller can skip it.
func CoerceLoan(f LoanFields) (*entity.Loan, error) {
	bank := strings.TrimSpace(f.BankName)
	if bank == "" && f.DealDate == "" && f.LoanAmount == "" {
		return nil, nil
	}

	loan := &entity.Loan{}
	if bank != "" {
		loan.BankName = &bank
	}
	if s := strings.TrimSpace(f.DealType); s != "" {
		loan.DealType = &s
	}
	if s := strings.TrimSpace(f.LoanType); s != "" {
		loan.LoanType = &s
	}
	loan.CardUsage = f.CardUsage

	dealDate, _, err := parseReportDate(f.DealDate)
	if err != nil {
		return nil, fmt.Errorf("deal_date: %w", err)
	}
	loan.DealDate = dealDate

	termDate, openEnded, err := parseReportDate(f.TerminationDate)
	if err != nil {
		return nil, fmt.Errorf("termination_date: %w", err)
	}
	loan.TerminationDate = termDate

	actualTerm, _, err := parseReportDate(f.ActualTerminationDate)
	if err != nil {
		return nil, fmt.Errorf("actual_termination_date: %w", err)
	}

	amount, currency := parseAmount(f.LoanAmount)
	loan.LoanAmount = amount
	loan.LoanCurrency = currency

	status := deriveStatus(f.LoanStatus, openEnded, termDate, actualTerm)
	loan.LoanStatus = &status
	return loan, nil
}

// parseReportDate parses DD-MM-YYYY. The report's sentinels map to nil:
// "Н/Д" is simply absent, "31-12-9999" means open-ended (second return true).
func parseReportDate(s string) (*time.Time, bool, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, false, nil
	case strings.EqualFold(s, notAvailable):
		return nil, false, nil
	case s == openEndedDate:
		return nil, true, nil
	}
	t, err := time.ParseInLocation(reportDateLayout, s, time.UTC)
	if err != nil {
		return nil, false, common.WrapError(common.ErrValidation, "bad date "+strconv.Quote(s))
	}
	return &t, false, nil
}

// parseAmount splits a "50000,00 RUB" style string into amount and ISO-like
// currency code. Comma and dot decimal separators are both accepted.
// An unparseable amount nulls both fields rather than failing the record.
func parseAmount(s string) (*float64, *string) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) < 3 {
		return nil, nil
	}

	cur := strings.ToUpper(strings.TrimSpace(s[len(s)-3:]))
	numPart := strings.TrimSpace(s[:len(s)-3])
	numPart = strings.ReplaceAll(numPart, " ", "")
	numPart = strings.ReplaceAll(numPart, ",", ".")

	if !isAlpha(cur) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return nil, nil
	}
	return &v, &cur
}

// deriveStatus applies the report's business rule when the model did not
// state a status: open-ended or not-yet-terminated loans are Active, loans
// with both a contractual and an actual termination date are Closed.
func deriveStatus(explicit string, openEnded bool, termDate, actualTerm *time.Time) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	switch {
	case openEnded:
		return string(constants.LoanActive)
	case termDate != nil && actualTerm == nil:
		return string(constants.LoanActive)
	case termDate != nil && actualTerm != nil:
		return string(constants.LoanClosed)
	default:
		return string(constants.LoanActive)
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) == 3
}
