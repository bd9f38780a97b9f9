package llm

import (
	"context"

	"github.com/joseph-ayodele/loans-extractor/internal/entity"
)

// LoanFields is the semi-structured shape we ask the model for, one object
// per loan fact. Dates arrive as DD-MM-YYYY strings and the amount keeps the
// report's "50000,00 RUB" form; Coerce turns this into an entity.Loan.
type LoanFields struct {
	BankName              string `json:"bank_name"`
	DealDate              string `json:"deal_date,omitempty"`
	DealType              string `json:"deal_type,omitempty"`
	LoanType              string `json:"loan_type,omitempty"`
	CardUsage             *bool  `json:"card_usage,omitempty"`
	LoanAmount            string `json:"loan_amount,omitempty"`
	TerminationDate       string `json:"termination_date,omitempty"`
	ActualTerminationDate string `json:"actual_termination_date,omitempty"`
	LoanStatus            string `json:"loan_status,omitempty"`
}

// FieldExtractor is the capability boundary the scheduler depends on.
// ExtractLoans returns the coerced loan set for one paragraph plus the raw
// model reply for diagnostics. Zero loans is a valid outcome. Errors wrap
// common.ErrTransient or common.ErrValidation so callers can classify them.
type FieldExtractor interface {
	ExtractLoans(ctx context.Context, paragraphText string) ([]*entity.Loan, []byte, error)
}
