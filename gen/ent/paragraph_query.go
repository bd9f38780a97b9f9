// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/predicate"
)

// ParagraphQuery is the builder for querying Paragraph entities.
type ParagraphQuery struct {
	config
	ctx        *QueryContext
	order      []paragraph.OrderOption
	inters     []Interceptor
	predicates []predicate.Paragraph
	withLoans  *LoanQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ParagraphQuery builder.
func (_q *ParagraphQuery) Where(ps ...predicate.Paragraph) *ParagraphQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ParagraphQuery) Limit(limit int) *ParagraphQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ParagraphQuery) Offset(offset int) *ParagraphQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ParagraphQuery) Unique(unique bool) *ParagraphQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ParagraphQuery) Order(o ...paragraph.OrderOption) *ParagraphQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLoans chains the current query on the "loans" edge.
func (_q *ParagraphQuery) QueryLoans() *LoanQuery {
	query := (&LoanClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paragraph.Table, paragraph.FieldID, selector),
			sqlgraph.To(loan.Table, loan.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paragraph.LoansTable, paragraph.LoansColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Paragraph entity from the query.
// Returns a *NotFoundError when no Paragraph was found.
func (_q *ParagraphQuery) First(ctx context.Context) (*Paragraph, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paragraph.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ParagraphQuery) FirstX(ctx context.Context) *Paragraph {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Paragraph ID from the query.
// Returns a *NotFoundError when no Paragraph ID was found.
func (_q *ParagraphQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paragraph.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ParagraphQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Paragraph entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Paragraph entity is found.
// Returns a *NotFoundError when no Paragraph entities are found.
func (_q *ParagraphQuery) Only(ctx context.Context) (*Paragraph, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paragraph.Label}
	default:
		return nil, &NotSingularError{paragraph.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ParagraphQuery) OnlyX(ctx context.Context) *Paragraph {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Paragraph ID in the query.
// Returns a *NotSingularError when more than one Paragraph ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ParagraphQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paragraph.Label}
	default:
		err = &NotSingularError{paragraph.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ParagraphQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Paragraphs.
func (_q *ParagraphQuery) All(ctx context.Context) ([]*Paragraph, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Paragraph, *ParagraphQuery]()
	return withInterceptors[[]*Paragraph](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ParagraphQuery) AllX(ctx context.Context) []*Paragraph {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Paragraph IDs.
func (_q *ParagraphQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(paragraph.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ParagraphQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ParagraphQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ParagraphQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ParagraphQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ParagraphQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ParagraphQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ParagraphQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ParagraphQuery) Clone() *ParagraphQuery {
	if _q == nil {
		return nil
	}
	return &ParagraphQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]paragraph.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Paragraph{}, _q.predicates...),
		withLoans:  _q.withLoans.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLoans tells the query-builder to eager-load the nodes that are connected to
// the "loans" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParagraphQuery) WithLoans(opts ...func(*LoanQuery)) *ParagraphQuery {
	query := (&LoanClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLoans = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PageNumber int `json:"page_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Paragraph.Query().
//		GroupBy(paragraph.FieldPageNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ParagraphQuery) GroupBy(field string, fields ...string) *ParagraphGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ParagraphGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = paragraph.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PageNumber int `json:"page_number,omitempty"`
//	}
//
//	client.Paragraph.Query().
//		Select(paragraph.FieldPageNumber).
//		Scan(ctx, &v)
func (_q *ParagraphQuery) Select(fields ...string) *ParagraphSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ParagraphSelect{ParagraphQuery: _q}
	sbuild.label = paragraph.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ParagraphSelect configured with the given aggregations.
func (_q *ParagraphQuery) Aggregate(fns ...AggregateFunc) *ParagraphSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ParagraphQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !paragraph.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ParagraphQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Paragraph, error) {
	var (
		nodes       = []*Paragraph{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withLoans != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Paragraph).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Paragraph{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withLoans; query != nil {
		if err := _q.loadLoans(ctx, query, nodes,
			func(n *Paragraph) { n.Edges.Loans = []*Loan{} },
			func(n *Paragraph, e *Loan) { n.Edges.Loans = append(n.Edges.Loans, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ParagraphQuery) loadLoans(ctx context.Context, query *LoanQuery, nodes []*Paragraph, init func(*Paragraph), assign func(*Paragraph, *Loan)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Paragraph)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(loan.FieldParagraphID)
	}
	query.Where(predicate.Loan(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(paragraph.LoansColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParagraphID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paragraph_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ParagraphQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ParagraphQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paragraph.Table, paragraph.Columns, sqlgraph.NewFieldSpec(paragraph.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paragraph.FieldID)
		for i := range fields {
			if fields[i] != paragraph.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ParagraphQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(paragraph.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = paragraph.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ParagraphGroupBy is the group-by builder for Paragraph entities.
type ParagraphGroupBy struct {
	selector
	build *ParagraphQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ParagraphGroupBy) Aggregate(fns ...AggregateFunc) *ParagraphGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ParagraphGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ParagraphQuery, *ParagraphGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ParagraphGroupBy) sqlScan(ctx context.Context, root *ParagraphQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ParagraphSelect is the builder for selecting fields of Paragraph entities.
type ParagraphSelect struct {
	*ParagraphQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ParagraphSelect) Aggregate(fns ...AggregateFunc) *ParagraphSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ParagraphSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ParagraphQuery, *ParagraphSelect](ctx, _s.ParagraphQuery, _s, _s.inters, v)
}

func (_s *ParagraphSelect) sqlScan(ctx context.Context, root *ParagraphQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
