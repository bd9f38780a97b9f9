// Code generated by ent, DO NOT EDIT.

package loan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldID, id))
}

// ParagraphID applies equality check predicate on the "paragraph_id" field. It's identical to ParagraphIDEQ.
func ParagraphID(v int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldParagraphID, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldBankName, v))
}

// DealDate applies equality check predicate on the "deal_date" field. It's identical to DealDateEQ.
func DealDate(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldDealDate, v))
}

// DealType applies equality check predicate on the "deal_type" field. It's identical to DealTypeEQ.
func DealType(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldDealType, v))
}

// LoanType applies equality check predicate on the "loan_type" field. It's identical to LoanTypeEQ.
func LoanType(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanType, v))
}

// CardUsage applies equality check predicate on the "card_usage" field. It's identical to CardUsageEQ.
func CardUsage(v bool) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCardUsage, v))
}

// LoanAmount applies equality check predicate on the "loan_amount" field. It's identical to LoanAmountEQ.
func LoanAmount(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanAmount, v))
}

// LoanCurrency applies equality check predicate on the "loan_currency" field. It's identical to LoanCurrencyEQ.
func LoanCurrency(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanCurrency, v))
}

// TerminationDate applies equality check predicate on the "termination_date" field. It's identical to TerminationDateEQ.
func TerminationDate(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldTerminationDate, v))
}

// LoanStatus applies equality check predicate on the "loan_status" field. It's identical to LoanStatusEQ.
func LoanStatus(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanStatus, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldExtractedAt, v))
}

// ParagraphIDEQ applies the EQ predicate on the "paragraph_id" field.
func ParagraphIDEQ(v int) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldParagraphID, v))
}

// ParagraphIDNEQ applies the NEQ predicate on the "paragraph_id" field.
func ParagraphIDNEQ(v int) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldParagraphID, v))
}

// ParagraphIDIn applies the In predicate on the "paragraph_id" field.
func ParagraphIDIn(vs ...int) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldParagraphID, vs...))
}

// ParagraphIDNotIn applies the NotIn predicate on the "paragraph_id" field.
func ParagraphIDNotIn(vs ...int) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldParagraphID, vs...))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldBankName, v))
}

// DealDateEQ applies the EQ predicate on the "deal_date" field.
func DealDateEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldDealDate, v))
}

// DealDateNEQ applies the NEQ predicate on the "deal_date" field.
func DealDateNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldDealDate, v))
}

// DealDateIn applies the In predicate on the "deal_date" field.
func DealDateIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldDealDate, vs...))
}

// DealDateNotIn applies the NotIn predicate on the "deal_date" field.
func DealDateNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldDealDate, vs...))
}

// DealDateGT applies the GT predicate on the "deal_date" field.
func DealDateGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldDealDate, v))
}

// DealDateGTE applies the GTE predicate on the "deal_date" field.
func DealDateGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldDealDate, v))
}

// DealDateLT applies the LT predicate on the "deal_date" field.
func DealDateLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldDealDate, v))
}

// DealDateLTE applies the LTE predicate on the "deal_date" field.
func DealDateLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldDealDate, v))
}

// DealDateIsNil applies the IsNil predicate on the "deal_date" field.
func DealDateIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldDealDate))
}

// DealDateNotNil applies the NotNil predicate on the "deal_date" field.
func DealDateNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldDealDate))
}

// DealTypeEQ applies the EQ predicate on the "deal_type" field.
func DealTypeEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldDealType, v))
}

// DealTypeNEQ applies the NEQ predicate on the "deal_type" field.
func DealTypeNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldDealType, v))
}

// DealTypeIn applies the In predicate on the "deal_type" field.
func DealTypeIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldDealType, vs...))
}

// DealTypeNotIn applies the NotIn predicate on the "deal_type" field.
func DealTypeNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldDealType, vs...))
}

// DealTypeGT applies the GT predicate on the "deal_type" field.
func DealTypeGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldDealType, v))
}

// DealTypeGTE applies the GTE predicate on the "deal_type" field.
func DealTypeGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldDealType, v))
}

// DealTypeLT applies the LT predicate on the "deal_type" field.
func DealTypeLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldDealType, v))
}

// DealTypeLTE applies the LTE predicate on the "deal_type" field.
func DealTypeLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldDealType, v))
}

// DealTypeContains applies the Contains predicate on the "deal_type" field.
func DealTypeContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldDealType, v))
}

// DealTypeHasPrefix applies the HasPrefix predicate on the "deal_type" field.
func DealTypeHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldDealType, v))
}

// DealTypeHasSuffix applies the HasSuffix predicate on the "deal_type" field.
func DealTypeHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldDealType, v))
}

// DealTypeIsNil applies the IsNil predicate on the "deal_type" field.
func DealTypeIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldDealType))
}

// DealTypeNotNil applies the NotNil predicate on the "deal_type" field.
func DealTypeNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldDealType))
}

// DealTypeEqualFold applies the EqualFold predicate on the "deal_type" field.
func DealTypeEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldDealType, v))
}

// DealTypeContainsFold applies the ContainsFold predicate on the "deal_type" field.
func DealTypeContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldDealType, v))
}

// LoanTypeEQ applies the EQ predicate on the "loan_type" field.
func LoanTypeEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanType, v))
}

// LoanTypeNEQ applies the NEQ predicate on the "loan_type" field.
func LoanTypeNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanType, v))
}

// LoanTypeIn applies the In predicate on the "loan_type" field.
func LoanTypeIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanType, vs...))
}

// LoanTypeNotIn applies the NotIn predicate on the "loan_type" field.
func LoanTypeNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanType, vs...))
}

// LoanTypeGT applies the GT predicate on the "loan_type" field.
func LoanTypeGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanType, v))
}

// LoanTypeGTE applies the GTE predicate on the "loan_type" field.
func LoanTypeGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanType, v))
}

// LoanTypeLT applies the LT predicate on the "loan_type" field.
func LoanTypeLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanType, v))
}

// LoanTypeLTE applies the LTE predicate on the "loan_type" field.
func LoanTypeLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanType, v))
}

// LoanTypeContains applies the Contains predicate on the "loan_type" field.
func LoanTypeContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLoanType, v))
}

// LoanTypeHasPrefix applies the HasPrefix predicate on the "loan_type" field.
func LoanTypeHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLoanType, v))
}

// LoanTypeHasSuffix applies the HasSuffix predicate on the "loan_type" field.
func LoanTypeHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLoanType, v))
}

// LoanTypeIsNil applies the IsNil predicate on the "loan_type" field.
func LoanTypeIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLoanType))
}

// LoanTypeNotNil applies the NotNil predicate on the "loan_type" field.
func LoanTypeNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLoanType))
}

// LoanTypeEqualFold applies the EqualFold predicate on the "loan_type" field.
func LoanTypeEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLoanType, v))
}

// LoanTypeContainsFold applies the ContainsFold predicate on the "loan_type" field.
func LoanTypeContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLoanType, v))
}

// CardUsageEQ applies the EQ predicate on the "card_usage" field.
func CardUsageEQ(v bool) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldCardUsage, v))
}

// CardUsageNEQ applies the NEQ predicate on the "card_usage" field.
func CardUsageNEQ(v bool) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldCardUsage, v))
}

// CardUsageIsNil applies the IsNil predicate on the "card_usage" field.
func CardUsageIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldCardUsage))
}

// CardUsageNotNil applies the NotNil predicate on the "card_usage" field.
func CardUsageNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldCardUsage))
}

// LoanAmountEQ applies the EQ predicate on the "loan_amount" field.
func LoanAmountEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanAmount, v))
}

// LoanAmountNEQ applies the NEQ predicate on the "loan_amount" field.
func LoanAmountNEQ(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanAmount, v))
}

// LoanAmountIn applies the In predicate on the "loan_amount" field.
func LoanAmountIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanAmount, vs...))
}

// LoanAmountNotIn applies the NotIn predicate on the "loan_amount" field.
func LoanAmountNotIn(vs ...float64) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanAmount, vs...))
}

// LoanAmountGT applies the GT predicate on the "loan_amount" field.
func LoanAmountGT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanAmount, v))
}

// LoanAmountGTE applies the GTE predicate on the "loan_amount" field.
func LoanAmountGTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanAmount, v))
}

// LoanAmountLT applies the LT predicate on the "loan_amount" field.
func LoanAmountLT(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanAmount, v))
}

// LoanAmountLTE applies the LTE predicate on the "loan_amount" field.
func LoanAmountLTE(v float64) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanAmount, v))
}

// LoanAmountIsNil applies the IsNil predicate on the "loan_amount" field.
func LoanAmountIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLoanAmount))
}

// LoanAmountNotNil applies the NotNil predicate on the "loan_amount" field.
func LoanAmountNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLoanAmount))
}

// LoanCurrencyEQ applies the EQ predicate on the "loan_currency" field.
func LoanCurrencyEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanCurrency, v))
}

// LoanCurrencyNEQ applies the NEQ predicate on the "loan_currency" field.
func LoanCurrencyNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanCurrency, v))
}

// LoanCurrencyIn applies the In predicate on the "loan_currency" field.
func LoanCurrencyIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanCurrency, vs...))
}

// LoanCurrencyNotIn applies the NotIn predicate on the "loan_currency" field.
func LoanCurrencyNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanCurrency, vs...))
}

// LoanCurrencyGT applies the GT predicate on the "loan_currency" field.
func LoanCurrencyGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanCurrency, v))
}

// LoanCurrencyGTE applies the GTE predicate on the "loan_currency" field.
func LoanCurrencyGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanCurrency, v))
}

// LoanCurrencyLT applies the LT predicate on the "loan_currency" field.
func LoanCurrencyLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanCurrency, v))
}

// LoanCurrencyLTE applies the LTE predicate on the "loan_currency" field.
func LoanCurrencyLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanCurrency, v))
}

// LoanCurrencyContains applies the Contains predicate on the "loan_currency" field.
func LoanCurrencyContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLoanCurrency, v))
}

// LoanCurrencyHasPrefix applies the HasPrefix predicate on the "loan_currency" field.
func LoanCurrencyHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLoanCurrency, v))
}

// LoanCurrencyHasSuffix applies the HasSuffix predicate on the "loan_currency" field.
func LoanCurrencyHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLoanCurrency, v))
}

// LoanCurrencyIsNil applies the IsNil predicate on the "loan_currency" field.
func LoanCurrencyIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLoanCurrency))
}

// LoanCurrencyNotNil applies the NotNil predicate on the "loan_currency" field.
func LoanCurrencyNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLoanCurrency))
}

// LoanCurrencyEqualFold applies the EqualFold predicate on the "loan_currency" field.
func LoanCurrencyEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLoanCurrency, v))
}

// LoanCurrencyContainsFold applies the ContainsFold predicate on the "loan_currency" field.
func LoanCurrencyContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLoanCurrency, v))
}

// TerminationDateEQ applies the EQ predicate on the "termination_date" field.
func TerminationDateEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldTerminationDate, v))
}

// TerminationDateNEQ applies the NEQ predicate on the "termination_date" field.
func TerminationDateNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldTerminationDate, v))
}

// TerminationDateIn applies the In predicate on the "termination_date" field.
func TerminationDateIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldTerminationDate, vs...))
}

// TerminationDateNotIn applies the NotIn predicate on the "termination_date" field.
func TerminationDateNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldTerminationDate, vs...))
}

// TerminationDateGT applies the GT predicate on the "termination_date" field.
func TerminationDateGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldTerminationDate, v))
}

// TerminationDateGTE applies the GTE predicate on the "termination_date" field.
func TerminationDateGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldTerminationDate, v))
}

// TerminationDateLT applies the LT predicate on the "termination_date" field.
func TerminationDateLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldTerminationDate, v))
}

// TerminationDateLTE applies the LTE predicate on the "termination_date" field.
func TerminationDateLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldTerminationDate, v))
}

// TerminationDateIsNil applies the IsNil predicate on the "termination_date" field.
func TerminationDateIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldTerminationDate))
}

// TerminationDateNotNil applies the NotNil predicate on the "termination_date" field.
func TerminationDateNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldTerminationDate))
}

// LoanStatusEQ applies the EQ predicate on the "loan_status" field.
func LoanStatusEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldLoanStatus, v))
}

// LoanStatusNEQ applies the NEQ predicate on the "loan_status" field.
func LoanStatusNEQ(v string) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldLoanStatus, v))
}

// LoanStatusIn applies the In predicate on the "loan_status" field.
func LoanStatusIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldLoanStatus, vs...))
}

// LoanStatusNotIn applies the NotIn predicate on the "loan_status" field.
func LoanStatusNotIn(vs ...string) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldLoanStatus, vs...))
}

// LoanStatusGT applies the GT predicate on the "loan_status" field.
func LoanStatusGT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldLoanStatus, v))
}

// LoanStatusGTE applies the GTE predicate on the "loan_status" field.
func LoanStatusGTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldLoanStatus, v))
}

// LoanStatusLT applies the LT predicate on the "loan_status" field.
func LoanStatusLT(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldLoanStatus, v))
}

// LoanStatusLTE applies the LTE predicate on the "loan_status" field.
func LoanStatusLTE(v string) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldLoanStatus, v))
}

// LoanStatusContains applies the Contains predicate on the "loan_status" field.
func LoanStatusContains(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContains(FieldLoanStatus, v))
}

// LoanStatusHasPrefix applies the HasPrefix predicate on the "loan_status" field.
func LoanStatusHasPrefix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasPrefix(FieldLoanStatus, v))
}

// LoanStatusHasSuffix applies the HasSuffix predicate on the "loan_status" field.
func LoanStatusHasSuffix(v string) predicate.Loan {
	return predicate.Loan(sql.FieldHasSuffix(FieldLoanStatus, v))
}

// LoanStatusIsNil applies the IsNil predicate on the "loan_status" field.
func LoanStatusIsNil() predicate.Loan {
	return predicate.Loan(sql.FieldIsNull(FieldLoanStatus))
}

// LoanStatusNotNil applies the NotNil predicate on the "loan_status" field.
func LoanStatusNotNil() predicate.Loan {
	return predicate.Loan(sql.FieldNotNull(FieldLoanStatus))
}

// LoanStatusEqualFold applies the EqualFold predicate on the "loan_status" field.
func LoanStatusEqualFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldEqualFold(FieldLoanStatus, v))
}

// LoanStatusContainsFold applies the ContainsFold predicate on the "loan_status" field.
func LoanStatusContainsFold(v string) predicate.Loan {
	return predicate.Loan(sql.FieldContainsFold(FieldLoanStatus, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.Loan {
	return predicate.Loan(sql.FieldLTE(FieldExtractedAt, v))
}

// HasParagraph applies the HasEdge predicate on the "paragraph" edge.
func HasParagraph() predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParagraphTable, ParagraphColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParagraphWith applies the HasEdge predicate on the "paragraph" edge with a given conditions (other predicates).
func HasParagraphWith(preds ...predicate.Paragraph) predicate.Loan {
	return predicate.Loan(func(s *sql.Selector) {
		step := newParagraphStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Loan) predicate.Loan {
	return predicate.Loan(sql.NotPredicates(p))
}
