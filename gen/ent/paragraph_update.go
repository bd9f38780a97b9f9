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

// ParagraphUpdate is the builder for updating Paragraph entities.
type ParagraphUpdate struct {
	config
	hooks    []Hook
	mutation *ParagraphMutation
}

// Where appends a list predicates to the ParagraphUpdate builder.
func (_u *ParagraphUpdate) Where(ps ...predicate.Paragraph) *ParagraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParagraphUpdate) SetStatus(v string) *ParagraphUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParagraphUpdate) SetNillableStatus(v *string) *ParagraphUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ParagraphUpdate) SetErrorDetail(v string) *ParagraphUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ParagraphUpdate) SetNillableErrorDetail(v *string) *ParagraphUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ParagraphUpdate) ClearErrorDetail() *ParagraphUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ParagraphUpdate) SetProcessedAt(v time.Time) *ParagraphUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ParagraphUpdate) SetNillableProcessedAt(v *time.Time) *ParagraphUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ParagraphUpdate) ClearProcessedAt() *ParagraphUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddLoanIDs adds the "loans" edge to the Loan entity by IDs.
func (_u *ParagraphUpdate) AddLoanIDs(ids ...int) *ParagraphUpdate {
	_u.mutation.AddLoanIDs(ids...)
	return _u
}

// AddLoans adds the "loans" edges to the Loan entity.
func (_u *ParagraphUpdate) AddLoans(v ...*Loan) *ParagraphUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoanIDs(ids...)
}

// Mutation returns the ParagraphMutation object of the builder.
func (_u *ParagraphUpdate) Mutation() *ParagraphMutation {
	return _u.mutation
}

// ClearLoans clears all "loans" edges to the Loan entity.
func (_u *ParagraphUpdate) ClearLoans() *ParagraphUpdate {
	_u.mutation.ClearLoans()
	return _u
}

// RemoveLoanIDs removes the "loans" edge to Loan entities by IDs.
func (_u *ParagraphUpdate) RemoveLoanIDs(ids ...int) *ParagraphUpdate {
	_u.mutation.RemoveLoanIDs(ids...)
	return _u
}

// RemoveLoans removes "loans" edges to Loan entities.
func (_u *ParagraphUpdate) RemoveLoans(v ...*Loan) *ParagraphUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParagraphUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParagraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParagraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParagraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParagraphUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paragraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Paragraph.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParagraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paragraph.Table, paragraph.Columns, sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paragraph.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(paragraph.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(paragraph.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(paragraph.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(paragraph.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LoansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoansIDs(); len(nodes) > 0 && !_u.mutation.LoansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paragraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParagraphUpdateOne is the builder for updating a single Paragraph entity.
type ParagraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParagraphMutation
}

// SetStatus sets the "status" field.
func (_u *ParagraphUpdateOne) SetStatus(v string) *ParagraphUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParagraphUpdateOne) SetNillableStatus(v *string) *ParagraphUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ParagraphUpdateOne) SetErrorDetail(v string) *ParagraphUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ParagraphUpdateOne) SetNillableErrorDetail(v *string) *ParagraphUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ParagraphUpdateOne) ClearErrorDetail() *ParagraphUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ParagraphUpdateOne) SetProcessedAt(v time.Time) *ParagraphUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ParagraphUpdateOne) SetNillableProcessedAt(v *time.Time) *ParagraphUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ParagraphUpdateOne) ClearProcessedAt() *ParagraphUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddLoanIDs adds the "loans" edge to the Loan entity by IDs.
func (_u *ParagraphUpdateOne) AddLoanIDs(ids ...int) *ParagraphUpdateOne {
	_u.mutation.AddLoanIDs(ids...)
	return _u
}

// AddLoans adds the "loans" edges to the Loan entity.
func (_u *ParagraphUpdateOne) AddLoans(v ...*Loan) *ParagraphUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoanIDs(ids...)
}

// Mutation returns the ParagraphMutation object of the builder.
func (_u *ParagraphUpdateOne) Mutation() *ParagraphMutation {
	return _u.mutation
}

// ClearLoans clears all "loans" edges to the Loan entity.
func (_u *ParagraphUpdateOne) ClearLoans() *ParagraphUpdateOne {
	_u.mutation.ClearLoans()
	return _u
}

// RemoveLoanIDs removes the "loans" edge to Loan entities by IDs.
func (_u *ParagraphUpdateOne) RemoveLoanIDs(ids ...int) *ParagraphUpdateOne {
	_u.mutation.RemoveLoanIDs(ids...)
	return _u
}

// RemoveLoans removes "loans" edges to Loan entities.
func (_u *ParagraphUpdateOne) RemoveLoans(v ...*Loan) *ParagraphUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoanIDs(ids...)
}

// Where appends a list predicates to the ParagraphUpdate builder.
func (_u *ParagraphUpdateOne) Where(ps ...predicate.Paragraph) *ParagraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParagraphUpdateOne) Select(field string, fields ...string) *ParagraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paragraph entity.
func (_u *ParagraphUpdateOne) Save(ctx context.Context) (*Paragraph, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParagraphUpdateOne) SaveX(ctx context.Context) *Paragraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParagraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParagraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParagraphUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paragraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Paragraph.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParagraphUpdateOne) sqlSave(ctx context.Context) (_node *Paragraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paragraph.Table, paragraph.Columns, sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paragraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paragraph.FieldID)
		for _, f := range fields {
			if !paragraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paragraph.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paragraph.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(paragraph.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(paragraph.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(paragraph.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(paragraph.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LoansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoansIDs(); len(nodes) > 0 && !_u.mutation.LoansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paragraph.LoansTable,
			Columns: []string{paragraph.LoansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loan.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Paragraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paragraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
