// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/predicate"
)

// LoanUpdate is the builder for updating Loan entities.
type LoanUpdate struct {
	config
	hooks    []Hook
	mutation *LoanMutation
}

// Where appends a list predicates to the LoanUpdate builder.
func (_u *LoanUpdate) Where(ps ...predicate.Loan) *LoanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParagraphID sets the "paragraph_id" field.
func (_u *LoanUpdate) SetParagraphID(v int) *LoanUpdate {
	_u.mutation.SetParagraphID(v)
	return _u
}

// SetNillableParagraphID sets the "paragraph_id" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableParagraphID(v *int) *LoanUpdate {
	if v != nil {
		_u.SetParagraphID(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *LoanUpdate) SetBankName(v string) *LoanUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableBankName(v *string) *LoanUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *LoanUpdate) ClearBankName() *LoanUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetDealDate sets the "deal_date" field.
func (_u *LoanUpdate) SetDealDate(v time.Time) *LoanUpdate {
	_u.mutation.SetDealDate(v)
	return _u
}

// SetNillableDealDate sets the "deal_date" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableDealDate(v *time.Time) *LoanUpdate {
	if v != nil {
		_u.SetDealDate(*v)
	}
	return _u
}

// ClearDealDate clears the value of the "deal_date" field.
func (_u *LoanUpdate) ClearDealDate() *LoanUpdate {
	_u.mutation.ClearDealDate()
	return _u
}

// SetDealType sets the "deal_type" field.
func (_u *LoanUpdate) SetDealType(v string) *LoanUpdate {
	_u.mutation.SetDealType(v)
	return _u
}

// SetNillableDealType sets the "deal_type" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableDealType(v *string) *LoanUpdate {
	if v != nil {
		_u.SetDealType(*v)
	}
	return _u
}

// ClearDealType clears the value of the "deal_type" field.
func (_u *LoanUpdate) ClearDealType() *LoanUpdate {
	_u.mutation.ClearDealType()
	return _u
}

// SetLoanType sets the "loan_type" field.
func (_u *LoanUpdate) SetLoanType(v string) *LoanUpdate {
	_u.mutation.SetLoanType(v)
	return _u
}

// SetNillableLoanType sets the "loan_type" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanType(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLoanType(*v)
	}
	return _u
}

// ClearLoanType clears the value of the "loan_type" field.
func (_u *LoanUpdate) ClearLoanType() *LoanUpdate {
	_u.mutation.ClearLoanType()
	return _u
}

// SetCardUsage sets the "card_usage" field.
func (_u *LoanUpdate) SetCardUsage(v bool) *LoanUpdate {
	_u.mutation.SetCardUsage(v)
	return _u
}

// SetNillableCardUsage sets the "card_usage" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableCardUsage(v *bool) *LoanUpdate {
	if v != nil {
		_u.SetCardUsage(*v)
	}
	return _u
}

// ClearCardUsage clears the value of the "card_usage" field.
func (_u *LoanUpdate) ClearCardUsage() *LoanUpdate {
	_u.mutation.ClearCardUsage()
	return _u
}

// SetLoanAmount sets the "loan_amount" field.
func (_u *LoanUpdate) SetLoanAmount(v float64) *LoanUpdate {
	_u.mutation.ResetLoanAmount()
	_u.mutation.SetLoanAmount(v)
	return _u
}

// SetNillableLoanAmount sets the "loan_amount" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanAmount(v *float64) *LoanUpdate {
	if v != nil {
		_u.SetLoanAmount(*v)
	}
	return _u
}

// AddLoanAmount adds value to the "loan_amount" field.
func (_u *LoanUpdate) AddLoanAmount(v float64) *LoanUpdate {
	_u.mutation.AddLoanAmount(v)
	return _u
}

// ClearLoanAmount clears the value of the "loan_amount" field.
func (_u *LoanUpdate) ClearLoanAmount() *LoanUpdate {
	_u.mutation.ClearLoanAmount()
	return _u
}

// SetLoanCurrency sets the "loan_currency" field.
func (_u *LoanUpdate) SetLoanCurrency(v string) *LoanUpdate {
	_u.mutation.SetLoanCurrency(v)
	return _u
}

// SetNillableLoanCurrency sets the "loan_currency" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanCurrency(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLoanCurrency(*v)
	}
	return _u
}

// ClearLoanCurrency clears the value of the "loan_currency" field.
func (_u *LoanUpdate) ClearLoanCurrency() *LoanUpdate {
	_u.mutation.ClearLoanCurrency()
	return _u
}

// SetTerminationDate sets the "termination_date" field.
func (_u *LoanUpdate) SetTerminationDate(v time.Time) *LoanUpdate {
	_u.mutation.SetTerminationDate(v)
	return _u
}

// SetNillableTerminationDate sets the "termination_date" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableTerminationDate(v *time.Time) *LoanUpdate {
	if v != nil {
		_u.SetTerminationDate(*v)
	}
	return _u
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (_u *LoanUpdate) ClearTerminationDate() *LoanUpdate {
	_u.mutation.ClearTerminationDate()
	return _u
}

// SetLoanStatus sets the "loan_status" field.
func (_u *LoanUpdate) SetLoanStatus(v string) *LoanUpdate {
	_u.mutation.SetLoanStatus(v)
	return _u
}

// SetNillableLoanStatus sets the "loan_status" field if the given value is not nil.
func (_u *LoanUpdate) SetNillableLoanStatus(v *string) *LoanUpdate {
	if v != nil {
		_u.SetLoanStatus(*v)
	}
	return _u
}

// ClearLoanStatus clears the value of the "loan_status" field.
func (_u *LoanUpdate) ClearLoanStatus() *LoanUpdate {
	_u.mutation.ClearLoanStatus()
	return _u
}

// SetParagraph sets the "paragraph" edge to the Paragraph entity.
func (_u *LoanUpdate) SetParagraph(v *Paragraph) *LoanUpdate {
	return _u.SetParagraphID(v.ID)
}

// Mutation returns the LoanMutation object of the builder.
func (_u *LoanUpdate) Mutation() *LoanMutation {
	return _u.mutation
}

// ClearParagraph clears the "paragraph" edge to the Paragraph entity.
func (_u *LoanUpdate) ClearParagraph() *LoanUpdate {
	_u.mutation.ClearParagraph()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanUpdate) check() error {
	if v, ok := _u.mutation.LoanCurrency(); ok {
		if err := loan.LoanCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "loan_currency", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_currency": %w`, err)}
		}
	}
	if _u.mutation.ParagraphCleared() && len(_u.mutation.ParagraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Loan.paragraph"`)
	}
	return nil
}

func (_u *LoanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loan.Table, loan.Columns, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(loan.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(loan.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.DealDate(); ok {
		_spec.SetField(loan.FieldDealDate, field.TypeTime, value)
	}
	if _u.mutation.DealDateCleared() {
		_spec.ClearField(loan.FieldDealDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DealType(); ok {
		_spec.SetField(loan.FieldDealType, field.TypeString, value)
	}
	if _u.mutation.DealTypeCleared() {
		_spec.ClearField(loan.FieldDealType, field.TypeString)
	}
	if value, ok := _u.mutation.LoanType(); ok {
		_spec.SetField(loan.FieldLoanType, field.TypeString, value)
	}
	if _u.mutation.LoanTypeCleared() {
		_spec.ClearField(loan.FieldLoanType, field.TypeString)
	}
	if value, ok := _u.mutation.CardUsage(); ok {
		_spec.SetField(loan.FieldCardUsage, field.TypeBool, value)
	}
	if _u.mutation.CardUsageCleared() {
		_spec.ClearField(loan.FieldCardUsage, field.TypeBool)
	}
	if value, ok := _u.mutation.LoanAmount(); ok {
		_spec.SetField(loan.FieldLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoanAmount(); ok {
		_spec.AddField(loan.FieldLoanAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LoanAmountCleared() {
		_spec.ClearField(loan.FieldLoanAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LoanCurrency(); ok {
		_spec.SetField(loan.FieldLoanCurrency, field.TypeString, value)
	}
	if _u.mutation.LoanCurrencyCleared() {
		_spec.ClearField(loan.FieldLoanCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationDate(); ok {
		_spec.SetField(loan.FieldTerminationDate, field.TypeTime, value)
	}
	if _u.mutation.TerminationDateCleared() {
		_spec.ClearField(loan.FieldTerminationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LoanStatus(); ok {
		_spec.SetField(loan.FieldLoanStatus, field.TypeString, value)
	}
	if _u.mutation.LoanStatusCleared() {
		_spec.ClearField(loan.FieldLoanStatus, field.TypeString)
	}
	if _u.mutation.ParagraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loan.ParagraphTable,
			Columns: []string{loan.ParagraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParagraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loan.ParagraphTable,
			Columns: []string{loan.ParagraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoanUpdateOne is the builder for updating a single Loan entity.
type LoanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoanMutation
}

// SetParagraphID sets the "paragraph_id" field.
func (_u *LoanUpdateOne) SetParagraphID(v int) *LoanUpdateOne {
	_u.mutation.SetParagraphID(v)
	return _u
}

// SetNillableParagraphID sets the "paragraph_id" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableParagraphID(v *int) *LoanUpdateOne {
	if v != nil {
		_u.SetParagraphID(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *LoanUpdateOne) SetBankName(v string) *LoanUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableBankName(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *LoanUpdateOne) ClearBankName() *LoanUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetDealDate sets the "deal_date" field.
func (_u *LoanUpdateOne) SetDealDate(v time.Time) *LoanUpdateOne {
	_u.mutation.SetDealDate(v)
	return _u
}

// SetNillableDealDate sets the "deal_date" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableDealDate(v *time.Time) *LoanUpdateOne {
	if v != nil {
		_u.SetDealDate(*v)
	}
	return _u
}

// ClearDealDate clears the value of the "deal_date" field.
func (_u *LoanUpdateOne) ClearDealDate() *LoanUpdateOne {
	_u.mutation.ClearDealDate()
	return _u
}

// SetDealType sets the "deal_type" field.
func (_u *LoanUpdateOne) SetDealType(v string) *LoanUpdateOne {
	_u.mutation.SetDealType(v)
	return _u
}

// SetNillableDealType sets the "deal_type" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableDealType(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetDealType(*v)
	}
	return _u
}

// ClearDealType clears the value of the "deal_type" field.
func (_u *LoanUpdateOne) ClearDealType() *LoanUpdateOne {
	_u.mutation.ClearDealType()
	return _u
}

// SetLoanType sets the "loan_type" field.
func (_u *LoanUpdateOne) SetLoanType(v string) *LoanUpdateOne {
	_u.mutation.SetLoanType(v)
	return _u
}

// SetNillableLoanType sets the "loan_type" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanType(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanType(*v)
	}
	return _u
}

// ClearLoanType clears the value of the "loan_type" field.
func (_u *LoanUpdateOne) ClearLoanType() *LoanUpdateOne {
	_u.mutation.ClearLoanType()
	return _u
}

// SetCardUsage sets the "card_usage" field.
func (_u *LoanUpdateOne) SetCardUsage(v bool) *LoanUpdateOne {
	_u.mutation.SetCardUsage(v)
	return _u
}

// SetNillableCardUsage sets the "card_usage" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableCardUsage(v *bool) *LoanUpdateOne {
	if v != nil {
		_u.SetCardUsage(*v)
	}
	return _u
}

// ClearCardUsage clears the value of the "card_usage" field.
func (_u *LoanUpdateOne) ClearCardUsage() *LoanUpdateOne {
	_u.mutation.ClearCardUsage()
	return _u
}

// SetLoanAmount sets the "loan_amount" field.
func (_u *LoanUpdateOne) SetLoanAmount(v float64) *LoanUpdateOne {
	_u.mutation.ResetLoanAmount()
	_u.mutation.SetLoanAmount(v)
	return _u
}

// SetNillableLoanAmount sets the "loan_amount" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanAmount(v *float64) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanAmount(*v)
	}
	return _u
}

// AddLoanAmount adds value to the "loan_amount" field.
func (_u *LoanUpdateOne) AddLoanAmount(v float64) *LoanUpdateOne {
	_u.mutation.AddLoanAmount(v)
	return _u
}

// ClearLoanAmount clears the value of the "loan_amount" field.
func (_u *LoanUpdateOne) ClearLoanAmount() *LoanUpdateOne {
	_u.mutation.ClearLoanAmount()
	return _u
}

// SetLoanCurrency sets the "loan_currency" field.
func (_u *LoanUpdateOne) SetLoanCurrency(v string) *LoanUpdateOne {
	_u.mutation.SetLoanCurrency(v)
	return _u
}

// SetNillableLoanCurrency sets the "loan_currency" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanCurrency(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanCurrency(*v)
	}
	return _u
}

// ClearLoanCurrency clears the value of the "loan_currency" field.
func (_u *LoanUpdateOne) ClearLoanCurrency() *LoanUpdateOne {
	_u.mutation.ClearLoanCurrency()
	return _u
}

// SetTerminationDate sets the "termination_date" field.
func (_u *LoanUpdateOne) SetTerminationDate(v time.Time) *LoanUpdateOne {
	_u.mutation.SetTerminationDate(v)
	return _u
}

// SetNillableTerminationDate sets the "termination_date" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableTerminationDate(v *time.Time) *LoanUpdateOne {
	if v != nil {
		_u.SetTerminationDate(*v)
	}
	return _u
}

// ClearTerminationDate clears the value of the "termination_date" field.
func (_u *LoanUpdateOne) ClearTerminationDate() *LoanUpdateOne {
	_u.mutation.ClearTerminationDate()
	return _u
}

// SetLoanStatus sets the "loan_status" field.
func (_u *LoanUpdateOne) SetLoanStatus(v string) *LoanUpdateOne {
	_u.mutation.SetLoanStatus(v)
	return _u
}

// SetNillableLoanStatus sets the "loan_status" field if the given value is not nil.
func (_u *LoanUpdateOne) SetNillableLoanStatus(v *string) *LoanUpdateOne {
	if v != nil {
		_u.SetLoanStatus(*v)
	}
	return _u
}

// ClearLoanStatus clears the value of the "loan_status" field.
func (_u *LoanUpdateOne) ClearLoanStatus() *LoanUpdateOne {
	_u.mutation.ClearLoanStatus()
	return _u
}

// SetParagraph sets the "paragraph" edge to the Paragraph entity.
func (_u *LoanUpdateOne) SetParagraph(v *Paragraph) *LoanUpdateOne {
	return _u.SetParagraphID(v.ID)
}

// Mutation returns the LoanMutation object of the builder.
func (_u *LoanUpdateOne) Mutation() *LoanMutation {
	return _u.mutation
}

// ClearParagraph clears the "paragraph" edge to the Paragraph entity.
func (_u *LoanUpdateOne) ClearParagraph() *LoanUpdateOne {
	_u.mutation.ClearParagraph()
	return _u
}

// Where appends a list predicates to the LoanUpdate builder.
func (_u *LoanUpdateOne) Where(ps ...predicate.Loan) *LoanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoanUpdateOne) Select(field string, fields ...string) *LoanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Loan entity.
func (_u *LoanUpdateOne) Save(ctx context.Context) (*Loan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanUpdateOne) SaveX(ctx context.Context) *Loan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanUpdateOne) check() error {
	if v, ok := _u.mutation.LoanCurrency(); ok {
		if err := loan.LoanCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "loan_currency", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_currency": %w`, err)}
		}
	}
	if _u.mutation.ParagraphCleared() && len(_u.mutation.ParagraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Loan.paragraph"`)
	}
	return nil
}

func (_u *LoanUpdateOne) sqlSave(ctx context.Context) (_node *Loan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loan.Table, loan.Columns, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Loan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loan.FieldID)
		for _, f := range fields {
			if !loan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(loan.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(loan.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.DealDate(); ok {
		_spec.SetField(loan.FieldDealDate, field.TypeTime, value)
	}
	if _u.mutation.DealDateCleared() {
		_spec.ClearField(loan.FieldDealDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DealType(); ok {
		_spec.SetField(loan.FieldDealType, field.TypeString, value)
	}
	if _u.mutation.DealTypeCleared() {
		_spec.ClearField(loan.FieldDealType, field.TypeString)
	}
	if value, ok := _u.mutation.LoanType(); ok {
		_spec.SetField(loan.FieldLoanType, field.TypeString, value)
	}
	if _u.mutation.LoanTypeCleared() {
		_spec.ClearField(loan.FieldLoanType, field.TypeString)
	}
	if value, ok := _u.mutation.CardUsage(); ok {
		_spec.SetField(loan.FieldCardUsage, field.TypeBool, value)
	}
	if _u.mutation.CardUsageCleared() {
		_spec.ClearField(loan.FieldCardUsage, field.TypeBool)
	}
	if value, ok := _u.mutation.LoanAmount(); ok {
		_spec.SetField(loan.FieldLoanAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoanAmount(); ok {
		_spec.AddField(loan.FieldLoanAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LoanAmountCleared() {
		_spec.ClearField(loan.FieldLoanAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LoanCurrency(); ok {
		_spec.SetField(loan.FieldLoanCurrency, field.TypeString, value)
	}
	if _u.mutation.LoanCurrencyCleared() {
		_spec.ClearField(loan.FieldLoanCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationDate(); ok {
		_spec.SetField(loan.FieldTerminationDate, field.TypeTime, value)
	}
	if _u.mutation.TerminationDateCleared() {
		_spec.ClearField(loan.FieldTerminationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LoanStatus(); ok {
		_spec.SetField(loan.FieldLoanStatus, field.TypeString, value)
	}
	if _u.mutation.LoanStatusCleared() {
		_spec.ClearField(loan.FieldLoanStatus, field.TypeString)
	}
	if _u.mutation.ParagraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loan.ParagraphTable,
			Columns: []string{loan.ParagraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParagraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loan.ParagraphTable,
			Columns: []string{loan.ParagraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Loan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
