// Code generated by ent, DO NOT EDIT.

package loan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the loan type in the database.
	Label = "loan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParagraphID holds the string denoting the paragraph_id field in the database.
	FieldParagraphID = "paragraph_id"
	// FieldBankName holds the string denoting the bank_name field in the database.
	FieldBankName = "bank_name"
	// FieldDealDate holds the string denoting the deal_date field in the database.
	FieldDealDate = "deal_date"
	// FieldDealType holds the string denoting the deal_type field in the database.
	FieldDealType = "deal_type"
	// FieldLoanType holds the string denoting the loan_type field in the database.
	FieldLoanType = "loan_type"
	// FieldCardUsage holds the string denoting the card_usage field in the database.
	FieldCardUsage = "card_usage"
	// FieldLoanAmount holds the string denoting the loan_amount field in the database.
	FieldLoanAmount = "loan_amount"
	// FieldLoanCurrency holds the string denoting the loan_currency field in the database.
	FieldLoanCurrency = "loan_currency"
	// FieldTerminationDate holds the string denoting the termination_date field in the database.
	FieldTerminationDate = "termination_date"
	// FieldLoanStatus holds the string denoting the loan_status field in the database.
	FieldLoanStatus = "loan_status"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeParagraph holds the string denoting the paragraph edge name in mutations.
	EdgeParagraph = "paragraph"
	// Table holds the table name of the loan in the database.
	Table = "loans"
	// ParagraphTable is the table that holds the paragraph relation/edge.
	ParagraphTable = "loans"
	// ParagraphInverseTable is the table name for the Paragraph entity.
	// It exists in this package in order to avoid circular dependency with the "paragraph" package.
	ParagraphInverseTable = "paragraphs"
	// ParagraphColumn is the table column denoting the paragraph relation/edge.
	ParagraphColumn = "paragraph_id"
)

// Columns holds all SQL columns for loan fields.
var Columns = []string{
	FieldID,
	FieldParagraphID,
	FieldBankName,
	FieldDealDate,
	FieldDealType,
	FieldLoanType,
	FieldCardUsage,
	FieldLoanAmount,
	FieldLoanCurrency,
	FieldTerminationDate,
	FieldLoanStatus,
	FieldExtractedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LoanCurrencyValidator is a validator for the "loan_currency" field. It is called by the builders before save.
	LoanCurrencyValidator func(string) error
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
)

// OrderOption defines the ordering options for the Loan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParagraphID orders the results by the paragraph_id field.
func ByParagraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParagraphID, opts...).ToFunc()
}

// ByBankName orders the results by the bank_name field.
func ByBankName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankName, opts...).ToFunc()
}

// ByDealDate orders the results by the deal_date field.
func ByDealDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealDate, opts...).ToFunc()
}

// ByDealType orders the results by the deal_type field.
func ByDealType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealType, opts...).ToFunc()
}

// ByLoanType orders the results by the loan_type field.
func ByLoanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanType, opts...).ToFunc()
}

// ByCardUsage orders the results by the card_usage field.
func ByCardUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardUsage, opts...).ToFunc()
}

// ByLoanAmount orders the results by the loan_amount field.
func ByLoanAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanAmount, opts...).ToFunc()
}

// ByLoanCurrency orders the results by the loan_currency field.
func ByLoanCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanCurrency, opts...).ToFunc()
}

// ByTerminationDate orders the results by the termination_date field.
func ByTerminationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationDate, opts...).ToFunc()
}

// ByLoanStatus orders the results by the loan_status field.
func ByLoanStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoanStatus, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByParagraphField orders the results by paragraph field.
func ByParagraphField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParagraphStep(), sql.OrderByField(field, opts...))
	}
}
func newParagraphStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParagraphInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParagraphTable, ParagraphColumn),
	)
}
