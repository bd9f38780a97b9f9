// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
)

// LoanCreate is the builder for creating a Loan entity.
type LoanCreate struct {
	config
	mutation *LoanMutation
	hooks    []Hook
}

// SetParagraphID sets the "paragraph_id" field.
func (_c *LoanCreate) SetParagraphID(v int) *LoanCreate {
	_c.mutation.SetParagraphID(v)
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *LoanCreate) SetBankName(v string) *LoanCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *LoanCreate) SetNillableBankName(v *string) *LoanCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetDealDate sets the "deal_date" field.
func (_c *LoanCreate) SetDealDate(v time.Time) *LoanCreate {
	_c.mutation.SetDealDate(v)
	return _c
}

// SetNillableDealDate sets the "deal_date" field if the given value is not nil.
func (_c *LoanCreate) SetNillableDealDate(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetDealDate(*v)
	}
	return _c
}

// SetDealType sets the "deal_type" field.
func (_c *LoanCreate) SetDealType(v string) *LoanCreate {
	_c.mutation.SetDealType(v)
	return _c
}

// SetNillableDealType sets the "deal_type" field if the given value is not nil.
func (_c *LoanCreate) SetNillableDealType(v *string) *LoanCreate {
	if v != nil {
		_c.SetDealType(*v)
	}
	return _c
}

// SetLoanType sets the "loan_type" field.
func (_c *LoanCreate) SetLoanType(v string) *LoanCreate {
	_c.mutation.SetLoanType(v)
	return _c
}

// SetNillableLoanType sets the "loan_type" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLoanType(v *string) *LoanCreate {
	if v != nil {
		_c.SetLoanType(*v)
	}
	return _c
}

// SetCardUsage sets the "card_usage" field.
func (_c *LoanCreate) SetCardUsage(v bool) *LoanCreate {
	_c.mutation.SetCardUsage(v)
	return _c
}

// SetNillableCardUsage sets the "card_usage" field if the given value is not nil.
func (_c *LoanCreate) SetNillableCardUsage(v *bool) *LoanCreate {
	if v != nil {
		_c.SetCardUsage(*v)
	}
	return _c
}

// SetLoanAmount sets the "loan_amount" field.
func (_c *LoanCreate) SetLoanAmount(v float64) *LoanCreate {
	_c.mutation.SetLoanAmount(v)
	return _c
}

// SetNillableLoanAmount sets the "loan_amount" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLoanAmount(v *float64) *LoanCreate {
	if v != nil {
		_c.SetLoanAmount(*v)
	}
	return _c
}

// SetLoanCurrency sets the "loan_currency" field.
func (_c *LoanCreate) SetLoanCurrency(v string) *LoanCreate {
	_c.mutation.SetLoanCurrency(v)
	return _c
}

// SetNillableLoanCurrency sets the "loan_currency" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLoanCurrency(v *string) *LoanCreate {
	if v != nil {
		_c.SetLoanCurrency(*v)
	}
	return _c
}

// SetTerminationDate sets the "termination_date" field.
func (_c *LoanCreate) SetTerminationDate(v time.Time) *LoanCreate {
	_c.mutation.SetTerminationDate(v)
	return _c
}

// SetNillableTerminationDate sets the "termination_date" field if the given value is not nil.
func (_c *LoanCreate) SetNillableTerminationDate(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetTerminationDate(*v)
	}
	return _c
}

// SetLoanStatus sets the "loan_status" field.
func (_c *LoanCreate) SetLoanStatus(v string) *LoanCreate {
	_c.mutation.SetLoanStatus(v)
	return _c
}

// SetNillableLoanStatus sets the "loan_status" field if the given value is not nil.
func (_c *LoanCreate) SetNillableLoanStatus(v *string) *LoanCreate {
	if v != nil {
		_c.SetLoanStatus(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *LoanCreate) SetExtractedAt(v time.Time) *LoanCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *LoanCreate) SetNillableExtractedAt(v *time.Time) *LoanCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetParagraph sets the "paragraph" edge to the Paragraph entity.
func (_c *LoanCreate) SetParagraph(v *Paragraph) *LoanCreate {
	return _c.SetParagraphID(v.ID)
}

// Mutation returns the LoanMutation object of the builder.
func (_c *LoanCreate) Mutation() *LoanMutation {
	return _c.mutation
}

// Save creates the Loan in the database.
func (_c *LoanCreate) Save(ctx context.Context) (*Loan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoanCreate) SaveX(ctx context.Context) *Loan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoanCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := loan.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoanCreate) check() error {
	if _, ok := _c.mutation.ParagraphID(); !ok {
		return &ValidationError{Name: "paragraph_id", err: errors.New(`ent: missing required field "Loan.paragraph_id"`)}
	}
	if v, ok := _c.mutation.LoanCurrency(); ok {
		if err := loan.LoanCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "loan_currency", err: fmt.Errorf(`ent: validator failed for field "Loan.loan_currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "Loan.extracted_at"`)}
	}
	if len(_c.mutation.ParagraphIDs()) == 0 {
		return &ValidationError{Name: "paragraph", err: errors.New(`ent: missing required edge "Loan.paragraph"`)}
	}
	return nil
}

func (_c *LoanCreate) sqlSave(ctx context.Context) (*Loan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LoanCreate) createSpec() (*Loan, *sqlgraph.CreateSpec) {
	var (
		_node = &Loan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loan.Table, sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(loan.FieldBankName, field.TypeString, value)
		_node.BankName = &value
	}
	if value, ok := _c.mutation.DealDate(); ok {
		_spec.SetField(loan.FieldDealDate, field.TypeTime, value)
		_node.DealDate = &value
	}
	if value, ok := _c.mutation.DealType(); ok {
		_spec.SetField(loan.FieldDealType, field.TypeString, value)
		_node.DealType = &value
	}
	if value, ok := _c.mutation.LoanType(); ok {
		_spec.SetField(loan.FieldLoanType, field.TypeString, value)
		_node.LoanType = &value
	}
	if value, ok := _c.mutation.CardUsage(); ok {
		_spec.SetField(loan.FieldCardUsage, field.TypeBool, value)
		_node.CardUsage = &value
	}
	if value, ok := _c.mutation.LoanAmount(); ok {
		_spec.SetField(loan.FieldLoanAmount, field.TypeFloat64, value)
		_node.LoanAmount = &value
	}
	if value, ok := _c.mutation.LoanCurrency(); ok {
		_spec.SetField(loan.FieldLoanCurrency, field.TypeString, value)
		_node.LoanCurrency = &value
	}
	if value, ok := _c.mutation.TerminationDate(); ok {
		_spec.SetField(loan.FieldTerminationDate, field.TypeTime, value)
		_node.TerminationDate = &value
	}
	if value, ok := _c.mutation.LoanStatus(); ok {
		_spec.SetField(loan.FieldLoanStatus, field.TypeString, value)
		_node.LoanStatus = &value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(loan.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.ParagraphIDs(); len(nodes) > 0 {
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
		_node.ParagraphID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LoanCreateBulk is the builder for creating many Loan entities in bulk.
type LoanCreateBulk struct {
	config
	err      error
	builders []*LoanCreate
}

// Save creates the Loan entities in the database.
func (_c *LoanCreateBulk) Save(ctx context.Context) ([]*Loan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Loan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LoanCreateBulk) SaveX(ctx context.Context) []*Loan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
