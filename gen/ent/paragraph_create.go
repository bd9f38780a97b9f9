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

// ParagraphCreate is the builder for creating a Paragraph entity.
type ParagraphCreate struct {
	config
	mutation *ParagraphMutation
	hooks    []Hook
}

// SetPageNumber sets the "page_number" field.
func (_c *ParagraphCreate) SetPageNumber(v int) *ParagraphCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ParagraphCreate) SetContent(v string) *ParagraphCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *ParagraphCreate) SetFingerprint(v string) *ParagraphCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParagraphCreate) SetStatus(v string) *ParagraphCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ParagraphCreate) SetNillableStatus(v *string) *ParagraphCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *ParagraphCreate) SetErrorDetail(v string) *ParagraphCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *ParagraphCreate) SetNillableErrorDetail(v *string) *ParagraphCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *ParagraphCreate) SetExtractedAt(v time.Time) *ParagraphCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *ParagraphCreate) SetNillableExtractedAt(v *time.Time) *ParagraphCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ParagraphCreate) SetProcessedAt(v time.Time) *ParagraphCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ParagraphCreate) SetNillableProcessedAt(v *time.Time) *ParagraphCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// AddLoanIDs adds the "loans" edge to the Loan entity by IDs.
func (_c *ParagraphCreate) AddLoanIDs(ids ...int) *ParagraphCreate {
	_c.mutation.AddLoanIDs(ids...)
	return _c
}

// AddLoans adds the "loans" edges to the Loan entity.
func (_c *ParagraphCreate) AddLoans(v ...*Loan) *ParagraphCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLoanIDs(ids...)
}

// Mutation returns the ParagraphMutation object of the builder.
func (_c *ParagraphCreate) Mutation() *ParagraphMutation {
	return _c.mutation
}

// Save creates the Paragraph in the database.
func (_c *ParagraphCreate) Save(ctx context.Context) (*Paragraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParagraphCreate) SaveX(ctx context.Context) *Paragraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParagraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParagraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParagraphCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := paragraph.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := paragraph.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParagraphCreate) check() error {
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "Paragraph.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := paragraph.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "Paragraph.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Paragraph.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := paragraph.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Paragraph.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Paragraph.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := paragraph.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Paragraph.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Paragraph.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := paragraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Paragraph.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "Paragraph.extracted_at"`)}
	}
	return nil
}

func (_c *ParagraphCreate) sqlSave(ctx context.Context) (*Paragraph, error) {
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

func (_c *ParagraphCreate) createSpec() (*Paragraph, *sqlgraph.CreateSpec) {
	var (
		_node = &Paragraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paragraph.Table, sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(paragraph.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(paragraph.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(paragraph.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paragraph.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(paragraph.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = &value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(paragraph.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(paragraph.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.LoansIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParagraphCreateBulk is the builder for creating many Paragraph entities in bulk.
type ParagraphCreateBulk struct {
	config
	err      error
	builders []*ParagraphCreate
}

// Save creates the Paragraph entities in the database.
func (_c *ParagraphCreateBulk) Save(ctx context.Context) ([]*Paragraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paragraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParagraphMutation)
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
func (_c *ParagraphCreateBulk) SaveX(ctx context.Context) []*Paragraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParagraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParagraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
