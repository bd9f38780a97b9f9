// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
)

// Paragraph is the model entity for the Paragraph schema.
type Paragraph struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorDetail holds the value of the "error_detail" field.
	ErrorDetail *string `json:"error_detail,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParagraphQuery when eager-loading is set.
	Edges        ParagraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParagraphEdges holds the relations/edges for other nodes in the graph.
type ParagraphEdges struct {
	// Loans holds the value of the loans edge.
	Loans []*Loan `json:"loans,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoansOrErr returns the Loans value or an error if the edge
// was not loaded in eager-loading.
func (e ParagraphEdges) LoansOrErr() ([]*Loan, error) {
	if e.loadedTypes[0] {
		return e.Loans, nil
	}
	return nil, &NotLoadedError{edge: "loans"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paragraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paragraph.FieldID, paragraph.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case paragraph.FieldContent, paragraph.FieldFingerprint, paragraph.FieldStatus, paragraph.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case paragraph.FieldExtractedAt, paragraph.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paragraph fields.
func (_m *Paragraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paragraph.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case paragraph.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case paragraph.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case paragraph.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case paragraph.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case paragraph.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				_m.ErrorDetail = new(string)
				*_m.ErrorDetail = value.String
			}
		case paragraph.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case paragraph.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paragraph.
// This includes values selected through modifiers, order, etc.
func (_m *Paragraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoans queries the "loans" edge of the Paragraph entity.
func (_m *Paragraph) QueryLoans() *LoanQuery {
	return NewParagraphClient(_m.config).QueryLoans(_m)
}

// Update returns a builder for updating this Paragraph.
// Note that you need to call Paragraph.Unwrap() before calling this method if this Paragraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paragraph) Update() *ParagraphUpdateOne {
	return NewParagraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paragraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paragraph) Unwrap() *Paragraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paragraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paragraph) String() string {
	var builder strings.Builder
	builder.WriteString("Paragraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorDetail; v != nil {
		builder.WriteString("error_detail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Paragraphs is a parsable slice of Paragraph.
type Paragraphs []*Paragraph
