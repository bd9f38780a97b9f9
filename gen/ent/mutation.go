// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLoan      = "Loan"
	TypeParagraph = "Paragraph"
)

// LoanMutation represents an operation that mutates the Loan nodes in the graph.
type LoanMutation struct {
	config
	op               Op
	typ              string
	id               *int
	bank_name        *string
	deal_date        *time.Time
	deal_type        *string
	loan_type        *string
	card_usage       *bool
	loan_amount      *float64
	addloan_amount   *float64
	loan_currency    *string
	termination_date *time.Time
	loan_status      *string
	extracted_at     *time.Time
	clearedFields    map[string]struct{}
	paragraph        *int
	clearedparagraph bool
	done             bool
	oldValue         func(context.Context) (*Loan, error)
	predicates       []predicate.Loan
}

var _ ent.Mutation = (*LoanMutation)(nil)

// loanOption allows management of the mutation configuration using functional options.
type loanOption func(*LoanMutation)

// newLoanMutation creates new mutation for the Loan entity.
func newLoanMutation(c config, op Op, opts ...loanOption) *LoanMutation {
	m := &LoanMutation{
		config:        c,
		op:            op,
		typ:           TypeLoan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoanID sets the ID field of the mutation.
func withLoanID(id int) loanOption {
	return func(m *LoanMutation) {
		var (
			err   error
			once  sync.Once
			value *Loan
		)
		m.oldValue = func(ctx context.Context) (*Loan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Loan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoan sets the old Loan of the mutation.
func withLoan(node *Loan) loanOption {
	return func(m *LoanMutation) {
		m.oldValue = func(context.Context) (*Loan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Loan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParagraphID sets the "paragraph_id" field.
func (m *LoanMutation) SetParagraphID(i int) {
	m.paragraph = &i
}

// ParagraphID returns the value of the "paragraph_id" field in the mutation.
func (m *LoanMutation) ParagraphID() (r int, exists bool) {
	v := m.paragraph
	if v == nil {
		return
	}
	return *v, true
}

// OldParagraphID returns the old "paragraph_id" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldParagraphID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParagraphID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParagraphID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParagraphID: %w", err)
	}
	return oldValue.ParagraphID, nil
}

// ResetParagraphID resets all changes to the "paragraph_id" field.
func (m *LoanMutation) ResetParagraphID() {
	m.paragraph = nil
}

// SetBankName sets the "bank_name" field.
func (m *LoanMutation) SetBankName(s string) {
	m.bank_name = &s
}

// BankName returns the value of the "bank_name" field in the mutation.
func (m *LoanMutation) BankName() (r string, exists bool) {
	v := m.bank_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBankName returns the old "bank_name" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldBankName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBankName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBankName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBankName: %w", err)
	}
	return oldValue.BankName, nil
}

// ClearBankName clears the value of the "bank_name" field.
func (m *LoanMutation) ClearBankName() {
	m.bank_name = nil
	m.clearedFields[loan.FieldBankName] = struct{}{}
}

// BankNameCleared returns if the "bank_name" field was cleared in this mutation.
func (m *LoanMutation) BankNameCleared() bool {
	_, ok := m.clearedFields[loan.FieldBankName]
	return ok
}

// ResetBankName resets all changes to the "bank_name" field.
func (m *LoanMutation) ResetBankName() {
	m.bank_name = nil
	delete(m.clearedFields, loan.FieldBankName)
}

// SetDealDate sets the "deal_date" field.
func (m *LoanMutation) SetDealDate(t time.Time) {
	m.deal_date = &t
}

// DealDate returns the value of the "deal_date" field in the mutation.
func (m *LoanMutation) DealDate() (r time.Time, exists bool) {
	v := m.deal_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDealDate returns the old "deal_date" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldDealDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealDate: %w", err)
	}
	return oldValue.DealDate, nil
}

// ClearDealDate clears the value of the "deal_date" field.
func (m *LoanMutation) ClearDealDate() {
	m.deal_date = nil
	m.clearedFields[loan.FieldDealDate] = struct{}{}
}

// DealDateCleared returns if the "deal_date" field was cleared in this mutation.
func (m *LoanMutation) DealDateCleared() bool {
	_, ok := m.clearedFields[loan.FieldDealDate]
	return ok
}

// ResetDealDate resets all changes to the "deal_date" field.
func (m *LoanMutation) ResetDealDate() {
	m.deal_date = nil
	delete(m.clearedFields, loan.FieldDealDate)
}

// SetDealType sets the "deal_type" field.
func (m *LoanMutation) SetDealType(s string) {
	m.deal_type = &s
}

// DealType returns the value of the "deal_type" field in the mutation.
func (m *LoanMutation) DealType() (r string, exists bool) {
	v := m.deal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDealType returns the old "deal_type" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldDealType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealType: %w", err)
	}
	return oldValue.DealType, nil
}

// ClearDealType clears the value of the "deal_type" field.
func (m *LoanMutation) ClearDealType() {
	m.deal_type = nil
	m.clearedFields[loan.FieldDealType] = struct{}{}
}

// DealTypeCleared returns if the "deal_type" field was cleared in this mutation.
func (m *LoanMutation) DealTypeCleared() bool {
	_, ok := m.clearedFields[loan.FieldDealType]
	return ok
}

// ResetDealType resets all changes to the "deal_type" field.
func (m *LoanMutation) ResetDealType() {
	m.deal_type = nil
	delete(m.clearedFields, loan.FieldDealType)
}

// SetLoanType sets the "loan_type" field.
func (m *LoanMutation) SetLoanType(s string) {
	m.loan_type = &s
}

// LoanType returns the value of the "loan_type" field in the mutation.
func (m *LoanMutation) LoanType() (r string, exists bool) {
	v := m.loan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanType returns the old "loan_type" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanType: %w", err)
	}
	return oldValue.LoanType, nil
}

// ClearLoanType clears the value of the "loan_type" field.
func (m *LoanMutation) ClearLoanType() {
	m.loan_type = nil
	m.clearedFields[loan.FieldLoanType] = struct{}{}
}

// LoanTypeCleared returns if the "loan_type" field was cleared in this mutation.
func (m *LoanMutation) LoanTypeCleared() bool {
	_, ok := m.clearedFields[loan.FieldLoanType]
	return ok
}

// ResetLoanType resets all changes to the "loan_type" field.
func (m *LoanMutation) ResetLoanType() {
	m.loan_type = nil
	delete(m.clearedFields, loan.FieldLoanType)
}

// SetCardUsage sets the "card_usage" field.
func (m *LoanMutation) SetCardUsage(b bool) {
	m.card_usage = &b
}

// CardUsage returns the value of the "card_usage" field in the mutation.
func (m *LoanMutation) CardUsage() (r bool, exists bool) {
	v := m.card_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldCardUsage returns the old "card_usage" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldCardUsage(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardUsage: %w", err)
	}
	return oldValue.CardUsage, nil
}

// ClearCardUsage clears the value of the "card_usage" field.
func (m *LoanMutation) ClearCardUsage() {
	m.card_usage = nil
	m.clearedFields[loan.FieldCardUsage] = struct{}{}
}

// CardUsageCleared returns if the "card_usage" field was cleared in this mutation.
func (m *LoanMutation) CardUsageCleared() bool {
	_, ok := m.clearedFields[loan.FieldCardUsage]
	return ok
}

// ResetCardUsage resets all changes to the "card_usage" field.
func (m *LoanMutation) ResetCardUsage() {
	m.card_usage = nil
	delete(m.clearedFields, loan.FieldCardUsage)
}

// SetLoanAmount sets the "loan_amount" field.
func (m *LoanMutation) SetLoanAmount(f float64) {
	m.loan_amount = &f
	m.addloan_amount = nil
}

// LoanAmount returns the value of the "loan_amount" field in the mutation.
func (m *LoanMutation) LoanAmount() (r float64, exists bool) {
	v := m.loan_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanAmount returns the old "loan_amount" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanAmount: %w", err)
	}
	return oldValue.LoanAmount, nil
}

// AddLoanAmount adds f to the "loan_amount" field.
func (m *LoanMutation) AddLoanAmount(f float64) {
	if m.addloan_amount != nil {
		*m.addloan_amount += f
	} else {
		m.addloan_amount = &f
	}
}

// AddedLoanAmount returns the value that was added to the "loan_amount" field in this mutation.
func (m *LoanMutation) AddedLoanAmount() (r float64, exists bool) {
	v := m.addloan_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearLoanAmount clears the value of the "loan_amount" field.
func (m *LoanMutation) ClearLoanAmount() {
	m.loan_amount = nil
	m.addloan_amount = nil
	m.clearedFields[loan.FieldLoanAmount] = struct{}{}
}

// LoanAmountCleared returns if the "loan_amount" field was cleared in this mutation.
func (m *LoanMutation) LoanAmountCleared() bool {
	_, ok := m.clearedFields[loan.FieldLoanAmount]
	return ok
}

// ResetLoanAmount resets all changes to the "loan_amount" field.
func (m *LoanMutation) ResetLoanAmount() {
	m.loan_amount = nil
	m.addloan_amount = nil
	delete(m.clearedFields, loan.FieldLoanAmount)
}

// SetLoanCurrency sets the "loan_currency" field.
func (m *LoanMutation) SetLoanCurrency(s string) {
	m.loan_currency = &s
}

// LoanCurrency returns the value of the "loan_currency" field in the mutation.
func (m *LoanMutation) LoanCurrency() (r string, exists bool) {
	v := m.loan_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanCurrency returns the old "loan_currency" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanCurrency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanCurrency: %w", err)
	}
	return oldValue.LoanCurrency, nil
}

// ClearLoanCurrency clears the value of the "loan_currency" field.
func (m *LoanMutation) ClearLoanCurrency() {
	m.loan_currency = nil
	m.clearedFields[loan.FieldLoanCurrency] = struct{}{}
}

// LoanCurrencyCleared returns if the "loan_currency" field was cleared in this mutation.
func (m *LoanMutation) LoanCurrencyCleared() bool {
	_, ok := m.clearedFields[loan.FieldLoanCurrency]
	return ok
}

// ResetLoanCurrency resets all changes to the "loan_currency" field.
func (m *LoanMutation) ResetLoanCurrency() {
	m.loan_currency = nil
	delete(m.clearedFields, loan.FieldLoanCurrency)
}

// SetTerminationDate sets the "termination_date" field.
func (m *LoanMutation) SetTerminationDate(t time.Time) {
	m.termination_date = &t
}

// TerminationDate returns the value of the "termination_date" field in the mutation.
func (m *LoanMutation) TerminationDate() (r time.Time, exists bool) {
	v := m.termination_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationDate returns the old "termination_date" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldTerminationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationDate: %w", err)
	}
	return oldValue.TerminationDate, nil
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (m *LoanMutation) ClearTerminationDate() {
	m.termination_date = nil
	m.clearedFields[loan.FieldTerminationDate] = struct{}{}
}

// TerminationDateCleared returns if the "termination_date" field was cleared in this mutation.
func (m *LoanMutation) TerminationDateCleared() bool {
	_, ok := m.clearedFields[loan.FieldTerminationDate]
	return ok
}

// ResetTerminationDate resets all changes to the "termination_date" field.
func (m *LoanMutation) ResetTerminationDate() {
	m.termination_date = nil
	delete(m.clearedFields, loan.FieldTerminationDate)
}

// SetLoanStatus sets the "loan_status" field.
func (m *LoanMutation) SetLoanStatus(s string) {
	m.loan_status = &s
}

// LoanStatus returns the value of the "loan_status" field in the mutation.
func (m *LoanMutation) LoanStatus() (r string, exists bool) {
	v := m.loan_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLoanStatus returns the old "loan_status" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldLoanStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoanStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoanStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoanStatus: %w", err)
	}
	return oldValue.LoanStatus, nil
}

// ClearLoanStatus clears the value of the "loan_status" field.
func (m *LoanMutation) ClearLoanStatus() {
	m.loan_status = nil
	m.clearedFields[loan.FieldLoanStatus] = struct{}{}
}

// LoanStatusCleared returns if the "loan_status" field was cleared in this mutation.
func (m *LoanMutation) LoanStatusCleared() bool {
	_, ok := m.clearedFields[loan.FieldLoanStatus]
	return ok
}

// ResetLoanStatus resets all changes to the "loan_status" field.
func (m *LoanMutation) ResetLoanStatus() {
	m.loan_status = nil
	delete(m.clearedFields, loan.FieldLoanStatus)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *LoanMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *LoanMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the Loan entity.
// If the Loan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoanMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *LoanMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearParagraph clears the "paragraph" edge to the Paragraph entity.
func (m *LoanMutation) ClearParagraph() {
	m.clearedparagraph = true
	m.clearedFields[loan.FieldParagraphID] = struct{}{}
}

// ParagraphCleared reports if the "paragraph" edge to the Paragraph entity was cleared.
func (m *LoanMutation) ParagraphCleared() bool {
	return m.clearedparagraph
}

// ParagraphIDs returns the "paragraph" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParagraphID instead. It exists only for internal usage by the builders.
func (m *LoanMutation) ParagraphIDs() (ids []int) {
	if id := m.paragraph; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParagraph resets all changes to the "paragraph" edge.
func (m *LoanMutation) ResetParagraph() {
	m.paragraph = nil
	m.clearedparagraph = false
}

// Where appends a list predicates to the LoanMutation builder.
func (m *LoanMutation) Where(ps ...predicate.Loan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Loan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Loan).
func (m *LoanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoanMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.paragraph != nil {
		fields = append(fields, loan.FieldParagraphID)
	}
	if m.bank_name != nil {
		fields = append(fields, loan.FieldBankName)
	}
	if m.deal_date != nil {
		fields = append(fields, loan.FieldDealDate)
	}
	if m.deal_type != nil {
		fields = append(fields, loan.FieldDealType)
	}
	if m.loan_type != nil {
		fields = append(fields, loan.FieldLoanType)
	}
	if m.card_usage != nil {
		fields = append(fields, loan.FieldCardUsage)
	}
	if m.loan_amount != nil {
		fields = append(fields, loan.FieldLoanAmount)
	}
	if m.loan_currency != nil {
		fields = append(fields, loan.FieldLoanCurrency)
	}
	if m.termination_date != nil {
		fields = append(fields, loan.FieldTerminationDate)
	}
	if m.loan_status != nil {
		fields = append(fields, loan.FieldLoanStatus)
	}
	if m.extracted_at != nil {
		fields = append(fields, loan.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loan.FieldParagraphID:
		return m.ParagraphID()
	case loan.FieldBankName:
		return m.BankName()
	case loan.FieldDealDate:
		return m.DealDate()
	case loan.FieldDealType:
		return m.DealType()
	case loan.FieldLoanType:
		return m.LoanType()
	case loan.FieldCardUsage:
		return m.CardUsage()
	case loan.FieldLoanAmount:
		return m.LoanAmount()
	case loan.FieldLoanCurrency:
		return m.LoanCurrency()
	case loan.FieldTerminationDate:
		return m.TerminationDate()
	case loan.FieldLoanStatus:
		return m.LoanStatus()
	case loan.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loan.FieldParagraphID:
		return m.OldParagraphID(ctx)
	case loan.FieldBankName:
		return m.OldBankName(ctx)
	case loan.FieldDealDate:
		return m.OldDealDate(ctx)
	case loan.FieldDealType:
		return m.OldDealType(ctx)
	case loan.FieldLoanType:
		return m.OldLoanType(ctx)
	case loan.FieldCardUsage:
		return m.OldCardUsage(ctx)
	case loan.FieldLoanAmount:
		return m.OldLoanAmount(ctx)
	case loan.FieldLoanCurrency:
		return m.OldLoanCurrency(ctx)
	case loan.FieldTerminationDate:
		return m.OldTerminationDate(ctx)
	case loan.FieldLoanStatus:
		return m.OldLoanStatus(ctx)
	case loan.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Loan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loan.FieldParagraphID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParagraphID(v)
		return nil
	case loan.FieldBankName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBankName(v)
		return nil
	case loan.FieldDealDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealDate(v)
		return nil
	case loan.FieldDealType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealType(v)
		return nil
	case loan.FieldLoanType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanType(v)
		return nil
	case loan.FieldCardUsage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardUsage(v)
		return nil
	case loan.FieldLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanAmount(v)
		return nil
	case loan.FieldLoanCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanCurrency(v)
		return nil
	case loan.FieldTerminationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationDate(v)
		return nil
	case loan.FieldLoanStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoanStatus(v)
		return nil
	case loan.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Loan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoanMutation) AddedFields() []string {
	var fields []string
	if m.addloan_amount != nil {
		fields = append(fields, loan.FieldLoanAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case loan.FieldLoanAmount:
		return m.AddedLoanAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case loan.FieldLoanAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoanAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Loan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(loan.FieldBankName) {
		fields = append(fields, loan.FieldBankName)
	}
	if m.FieldCleared(loan.FieldDealDate) {
		fields = append(fields, loan.FieldDealDate)
	}
	if m.FieldCleared(loan.FieldDealType) {
		fields = append(fields, loan.FieldDealType)
	}
	if m.FieldCleared(loan.FieldLoanType) {
		fields = append(fields, loan.FieldLoanType)
	}
	if m.FieldCleared(loan.FieldCardUsage) {
		fields = append(fields, loan.FieldCardUsage)
	}
	if m.FieldCleared(loan.FieldLoanAmount) {
		fields = append(fields, loan.FieldLoanAmount)
	}
	if m.FieldCleared(loan.FieldLoanCurrency) {
		fields = append(fields, loan.FieldLoanCurrency)
	}
	if m.FieldCleared(loan.FieldTerminationDate) {
		fields = append(fields, loan.FieldTerminationDate)
	}
	if m.FieldCleared(loan.FieldLoanStatus) {
		fields = append(fields, loan.FieldLoanStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoanMutation) ClearField(name string) error {
	switch name {
	case loan.FieldBankName:
		m.ClearBankName()
		return nil
	case loan.FieldDealDate:
		m.ClearDealDate()
		return nil
	case loan.FieldDealType:
		m.ClearDealType()
		return nil
	case loan.FieldLoanType:
		m.ClearLoanType()
		return nil
	case loan.FieldCardUsage:
		m.ClearCardUsage()
		return nil
	case loan.FieldLoanAmount:
		m.ClearLoanAmount()
		return nil
	case loan.FieldLoanCurrency:
		m.ClearLoanCurrency()
		return nil
	case loan.FieldTerminationDate:
		m.ClearTerminationDate()
		return nil
	case loan.FieldLoanStatus:
		m.ClearLoanStatus()
		return nil
	}
	return fmt.Errorf("unknown Loan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoanMutation) ResetField(name string) error {
	switch name {
	case loan.FieldParagraphID:
		m.ResetParagraphID()
		return nil
	case loan.FieldBankName:
		m.ResetBankName()
		return nil
	case loan.FieldDealDate:
		m.ResetDealDate()
		return nil
	case loan.FieldDealType:
		m.ResetDealType()
		return nil
	case loan.FieldLoanType:
		m.ResetLoanType()
		return nil
	case loan.FieldCardUsage:
		m.ResetCardUsage()
		return nil
	case loan.FieldLoanAmount:
		m.ResetLoanAmount()
		return nil
	case loan.FieldLoanCurrency:
		m.ResetLoanCurrency()
		return nil
	case loan.FieldTerminationDate:
		m.ResetTerminationDate()
		return nil
	case loan.FieldLoanStatus:
		m.ResetLoanStatus()
		return nil
	case loan.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown Loan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.paragraph != nil {
		edges = append(edges, loan.EdgeParagraph)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case loan.EdgeParagraph:
		if id := m.paragraph; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparagraph {
		edges = append(edges, loan.EdgeParagraph)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoanMutation) EdgeCleared(name string) bool {
	switch name {
	case loan.EdgeParagraph:
		return m.clearedparagraph
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoanMutation) ClearEdge(name string) error {
	switch name {
	case loan.EdgeParagraph:
		m.ClearParagraph()
		return nil
	}
	return fmt.Errorf("unknown Loan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoanMutation) ResetEdge(name string) error {
	switch name {
	case loan.EdgeParagraph:
		m.ResetParagraph()
		return nil
	}
	return fmt.Errorf("unknown Loan edge %s", name)
}

// ParagraphMutation represents an operation that mutates the Paragraph nodes in the graph.
type ParagraphMutation struct {
	config
	op             Op
	typ            string
	id             *int
	page_number    *int
	addpage_number *int
	content        *string
	fingerprint    *string
	status         *string
	error_detail   *string
	extracted_at   *time.Time
	processed_at   *time.Time
	clearedFields  map[string]struct{}
	loans          map[int]struct{}
	removedloans   map[int]struct{}
	clearedloans   bool
	done           bool
	oldValue       func(context.Context) (*Paragraph, error)
	predicates     []predicate.Paragraph
}

var _ ent.Mutation = (*ParagraphMutation)(nil)

// paragraphOption allows management of the mutation configuration using functional options.
type paragraphOption func(*ParagraphMutation)

// newParagraphMutation creates new mutation for the Paragraph entity.
func newParagraphMutation(c config, op Op, opts ...paragraphOption) *ParagraphMutation {
	m := &ParagraphMutation{
		config:        c,
		op:            op,
		typ:           TypeParagraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParagraphID sets the ID field of the mutation.
func withParagraphID(id int) paragraphOption {
	return func(m *ParagraphMutation) {
		var (
			err   error
			once  sync.Once
			value *Paragraph
		)
		m.oldValue = func(ctx context.Context) (*Paragraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paragraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParagraph sets the old Paragraph of the mutation.
func withParagraph(node *Paragraph) paragraphOption {
	return func(m *ParagraphMutation) {
		m.oldValue = func(context.Context) (*Paragraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParagraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParagraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParagraphMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParagraphMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paragraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageNumber sets the "page_number" field.
func (m *ParagraphMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *ParagraphMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *ParagraphMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *ParagraphMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *ParagraphMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetContent sets the "content" field.
func (m *ParagraphMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ParagraphMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ParagraphMutation) ResetContent() {
	m.content = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *ParagraphMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *ParagraphMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *ParagraphMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetStatus sets the "status" field.
func (m *ParagraphMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParagraphMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ParagraphMutation) ResetStatus() {
	m.status = nil
}

// SetErrorDetail sets the "error_detail" field.
func (m *ParagraphMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *ParagraphMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldErrorDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *ParagraphMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[paragraph.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *ParagraphMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[paragraph.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *ParagraphMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, paragraph.FieldErrorDetail)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *ParagraphMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *ParagraphMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *ParagraphMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ParagraphMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ParagraphMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Paragraph entity.
// If the Paragraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParagraphMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ParagraphMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[paragraph.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ParagraphMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[paragraph.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ParagraphMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, paragraph.FieldProcessedAt)
}

// AddLoanIDs adds the "loans" edge to the Loan entity by ids.
func (m *ParagraphMutation) AddLoanIDs(ids ...int) {
	if m.loans == nil {
		m.loans = make(map[int]struct{})
	}
	for i := range ids {
		m.loans[ids[i]] = struct{}{}
	}
}

// ClearLoans clears the "loans" edge to the Loan entity.
func (m *ParagraphMutation) ClearLoans() {
	m.clearedloans = true
}

// LoansCleared reports if the "loans" edge to the Loan entity was cleared.
func (m *ParagraphMutation) LoansCleared() bool {
	return m.clearedloans
}

// RemoveLoanIDs removes the "loans" edge to the Loan entity by IDs.
func (m *ParagraphMutation) RemoveLoanIDs(ids ...int) {
	if m.removedloans == nil {
		m.removedloans = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.loans, ids[i])
		m.removedloans[ids[i]] = struct{}{}
	}
}

// RemovedLoans returns the removed IDs of the "loans" edge to the Loan entity.
func (m *ParagraphMutation) RemovedLoansIDs() (ids []int) {
	for id := range m.removedloans {
		ids = append(ids, id)
	}
	return
}

// LoansIDs returns the "loans" edge IDs in the mutation.
func (m *ParagraphMutation) LoansIDs() (ids []int) {
	for id := range m.loans {
		ids = append(ids, id)
	}
	return
}

// ResetLoans resets all changes to the "loans" edge.
func (m *ParagraphMutation) ResetLoans() {
	m.loans = nil
	m.clearedloans = false
	m.removedloans = nil
}

// Where appends a list predicates to the ParagraphMutation builder.
func (m *ParagraphMutation) Where(ps ...predicate.Paragraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParagraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParagraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paragraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParagraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParagraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paragraph).
func (m *ParagraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParagraphMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.page_number != nil {
		fields = append(fields, paragraph.FieldPageNumber)
	}
	if m.content != nil {
		fields = append(fields, paragraph.FieldContent)
	}
	if m.fingerprint != nil {
		fields = append(fields, paragraph.FieldFingerprint)
	}
	if m.status != nil {
		fields = append(fields, paragraph.FieldStatus)
	}
	if m.error_detail != nil {
		fields = append(fields, paragraph.FieldErrorDetail)
	}
	if m.extracted_at != nil {
		fields = append(fields, paragraph.FieldExtractedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, paragraph.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParagraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paragraph.FieldPageNumber:
		return m.PageNumber()
	case paragraph.FieldContent:
		return m.Content()
	case paragraph.FieldFingerprint:
		return m.Fingerprint()
	case paragraph.FieldStatus:
		return m.Status()
	case paragraph.FieldErrorDetail:
		return m.ErrorDetail()
	case paragraph.FieldExtractedAt:
		return m.ExtractedAt()
	case paragraph.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParagraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paragraph.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case paragraph.FieldContent:
		return m.OldContent(ctx)
	case paragraph.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case paragraph.FieldStatus:
		return m.OldStatus(ctx)
	case paragraph.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case paragraph.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case paragraph.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Paragraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParagraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paragraph.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case paragraph.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case paragraph.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case paragraph.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case paragraph.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case paragraph.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case paragraph.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Paragraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParagraphMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, paragraph.FieldPageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParagraphMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paragraph.FieldPageNumber:
		return m.AddedPageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParagraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paragraph.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Paragraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParagraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paragraph.FieldErrorDetail) {
		fields = append(fields, paragraph.FieldErrorDetail)
	}
	if m.FieldCleared(paragraph.FieldProcessedAt) {
		fields = append(fields, paragraph.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParagraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParagraphMutation) ClearField(name string) error {
	switch name {
	case paragraph.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	case paragraph.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Paragraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParagraphMutation) ResetField(name string) error {
	switch name {
	case paragraph.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case paragraph.FieldContent:
		m.ResetContent()
		return nil
	case paragraph.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case paragraph.FieldStatus:
		m.ResetStatus()
		return nil
	case paragraph.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case paragraph.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case paragraph.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Paragraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParagraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loans != nil {
		edges = append(edges, paragraph.EdgeLoans)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParagraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paragraph.EdgeLoans:
		ids := make([]ent.Value, 0, len(m.loans))
		for id := range m.loans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParagraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedloans != nil {
		edges = append(edges, paragraph.EdgeLoans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParagraphMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case paragraph.EdgeLoans:
		ids := make([]ent.Value, 0, len(m.removedloans))
		for id := range m.removedloans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParagraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloans {
		edges = append(edges, paragraph.EdgeLoans)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParagraphMutation) EdgeCleared(name string) bool {
	switch name {
	case paragraph.EdgeLoans:
		return m.clearedloans
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParagraphMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Paragraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParagraphMutation) ResetEdge(name string) error {
	switch name {
	case paragraph.EdgeLoans:
		m.ResetLoans()
		return nil
	}
	return fmt.Errorf("unknown Paragraph edge %s", name)
}
