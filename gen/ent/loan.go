// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
)

// Loan is the model entity for the Loan schema.
type Loan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParagraphID holds the value of the "paragraph_id" field.
	ParagraphID int `json:"paragraph_id,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName *string `json:"bank_name,omitempty"`
	// DealDate holds the value of the "deal_date" field.
	DealDate *time.Time `json:"deal_date,omitempty"`
	// DealType holds the value of the "deal_type" field.
	DealType *string `json:"deal_type,omitempty"`
	// LoanType holds the value of the "loan_type" field.
	LoanType *string `json:"loan_type,omitempty"`
	// CardUsage holds the value of the "card_usage" field.
	CardUsage *bool `json:"card_usage,omitempty"`
	// LoanAmount holds the value of the "loan_amount" field.
	LoanAmount *float64 `json:"loan_amount,omitempty"`
	// LoanCurrency holds the value of the "loan_currency" field.
	LoanCurrency *string `json:"loan_currency,omitempty"`
	// TerminationDate holds the value of the "termination_date" field.
	TerminationDate *time.Time `json:"termination_date,omitempty"`
	// LoanStatus holds the value of the "loan_status" field.
	LoanStatus *string `json:"loan_status,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LoanQuery when eager-loading is set.
	Edges        LoanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LoanEdges holds the relations/edges for other nodes in the graph.
type LoanEdges struct {
	// Paragraph holds the value of the paragraph edge.
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ParagraphOrErr returns the Paragraph value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LoanEdges) ParagraphOrErr() (*Paragraph, error) {
	if e.Paragraph != nil {
		return e.Paragraph, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: paragraph.Label}
	}
	return nil, &NotLoadedError{edge: "paragraph"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Loan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loan.FieldCardUsage:
			values[i] = new(sql.NullBool)
		case loan.FieldLoanAmount:
			values[i] = new(sql.NullFloat64)
		case loan.FieldID, loan.FieldParagraphID:
			values[i] = new(sql.NullInt64)
		case loan.FieldBankName, loan.FieldDealType, loan.FieldLoanType, loan.FieldLoanCurrency, loan.FieldLoanStatus:
			values[i] = new(sql.NullString)
		case loan.FieldDealDate, loan.FieldTerminationDate, loan.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Loan fields.
func (_m *Loan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case loan.FieldParagraphID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field paragraph_id", values[i])
			} else if value.Valid {
				_m.ParagraphID = int(value.Int64)
			}
		case loan.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = new(string)
				*_m.BankName = value.String
			}
		case loan.FieldDealDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deal_date", values[i])
			} else if value.Valid {
				_m.DealDate = new(time.Time)
				*_m.DealDate = value.Time
			}
		case loan.FieldDealType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deal_type", values[i])
			} else if value.Valid {
				_m.DealType = new(string)
				*_m.DealType = value.String
			}
		case loan.FieldLoanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loan_type", values[i])
			} else if value.Valid {
				_m.LoanType = new(string)
				*_m.LoanType = value.String
			}
		case loan.FieldCardUsage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field card_usage", values[i])
			} else if value.Valid {
				_m.CardUsage = new(bool)
				*_m.CardUsage = value.Bool
			}
		case loan.FieldLoanAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field loan_amount", values[i])
			} else if value.Valid {
				_m.LoanAmount = new(float64)
				*_m.LoanAmount = value.Float64
			}
		case loan.FieldLoanCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loan_currency", values[i])
			} else if value.Valid {
				_m.LoanCurrency = new(string)
				*_m.LoanCurrency = value.String
			}
		case loan.FieldTerminationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field termination_date", values[i])
			} else if value.Valid {
				_m.TerminationDate = new(time.Time)
				*_m.TerminationDate = value.Time
			}
		case loan.FieldLoanStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loan_status", values[i])
			} else if value.Valid {
				_m.LoanStatus = new(string)
				*_m.LoanStatus = value.String
			}
		case loan.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Loan.
// This includes values selected through modifiers, order, etc.
func (_m *Loan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParagraph queries the "paragraph" edge of the Loan entity.
func (_m *Loan) QueryParagraph() *ParagraphQuery {
	return NewLoanClient(_m.config).QueryParagraph(_m)
}

// Update returns a builder for updating this Loan.
// Note that you need to call Loan.Unwrap() before calling this method if this Loan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Loan) Update() *LoanUpdateOne {
	return NewLoanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Loan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Loan) Unwrap() *Loan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Loan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Loan) String() string {
	var builder strings.Builder
	builder.WriteString("Loan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paragraph_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParagraphID))
	builder.WriteString(", ")
	if v := _m.BankName; v != nil {
		builder.WriteString("bank_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DealDate; v != nil {
		builder.WriteString("deal_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DealType; v != nil {
		builder.WriteString("deal_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LoanType; v != nil {
		builder.WriteString("loan_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CardUsage; v != nil {
		builder.WriteString("card_usage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LoanAmount; v != nil {
		builder.WriteString("loan_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LoanCurrency; v != nil {
		builder.WriteString("loan_currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TerminationDate; v != nil {
		builder.WriteString("termination_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LoanStatus; v != nil {
		builder.WriteString("loan_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Loans is a parsable slice of Loan.
type Loans []*Loan
