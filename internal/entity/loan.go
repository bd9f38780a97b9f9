package entity

import "time"

// Loan represents one structured loan fact derived from a paragraph.
// All business fields are optional; the model omits what the report
// does not state.
type Loan struct {
	ID              int        `json:"id"`
	ParagraphID     int        `json:"paragraph_id"`
	BankName        *string    `json:"bank_name,omitempty"`
	DealDate        *time.Time `json:"deal_date,omitempty"`
	DealType        *string    `json:"deal_type,omitempty"`
	LoanType        *string    `json:"loan_type,omitempty"`
	CardUsage       *bool      `json:"card_usage,omitempty"`
	LoanAmount      *float64   `json:"loan_amount,omitempty"`
	LoanCurrency    *string    `json:"loan_currency,omitempty"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
	LoanStatus      *string    `json:"loan_status,omitempty"`
	ExtractedAt     time.Time  `json:"extracted_at"`
}

// ExportRow is one loan joined with its paragraph's page provenance.
type ExportRow struct {
	Loan
	PageNumber int `json:"page_number"`
}
