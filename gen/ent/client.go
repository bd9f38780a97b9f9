// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/joseph-ayodele/loans-extractor/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/loan"
	"github.com/joseph-ayodele/loans-extractor/gen/ent/paragraph"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Loan is the client for interacting with the Loan builders.
	Loan *LoanClient
	// Paragraph is the client for interacting with the Paragraph builders.
	Paragraph *ParagraphClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Loan = NewLoanClient(c.config)
	c.Paragraph = NewParagraphClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Loan:      NewLoanClient(cfg),
		Paragraph: NewParagraphClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Loan:      NewLoanClient(cfg),
		Paragraph: NewParagraphClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Loan.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Loan.Use(hooks...)
	c.Paragraph.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Loan.Intercept(interceptors...)
	c.Paragraph.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LoanMutation:
		return c.Loan.mutate(ctx, m)
	case *ParagraphMutation:
		return c.Paragraph.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LoanClient is a client for the Loan schema.
type LoanClient struct {
	config
}

// NewLoanClient returns a client for the Loan from the given config.
func NewLoanClient(c config) *LoanClient {
	return &LoanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loan.Hooks(f(g(h())))`.
func (c *LoanClient) Use(hooks ...Hook) {
	c.hooks.Loan = append(c.hooks.Loan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loan.Intercept(f(g(h())))`.
func (c *LoanClient) Intercept(interceptors ...Interceptor) {
	c.inters.Loan = append(c.inters.Loan, interceptors...)
}

// Create returns a builder for creating a Loan entity.
func (c *LoanClient) Create() *LoanCreate {
	mutation := newLoanMutation(c.config, OpCreate)
	return &LoanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Loan entities.
func (c *LoanClient) CreateBulk(builders ...*LoanCreate) *LoanCreateBulk {
	return &LoanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoanClient) MapCreateBulk(slice any, setFunc func(*LoanCreate, int)) *LoanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoanCreateBulk{err: fmt.Errorf("calling to LoanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Loan.
func (c *LoanClient) Update() *LoanUpdate {
	mutation := newLoanMutation(c.config, OpUpdate)
	return &LoanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoanClient) UpdateOne(_m *Loan) *LoanUpdateOne {
	mutation := newLoanMutation(c.config, OpUpdateOne, withLoan(_m))
	return &LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoanClient) UpdateOneID(id int) *LoanUpdateOne {
	mutation := newLoanMutation(c.config, OpUpdateOne, withLoanID(id))
	return &LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Loan.
func (c *LoanClient) Delete() *LoanDelete {
	mutation := newLoanMutation(c.config, OpDelete)
	return &LoanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoanClient) DeleteOne(_m *Loan) *LoanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoanClient) DeleteOneID(id int) *LoanDeleteOne {
	builder := c.Delete().Where(loan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoanDeleteOne{builder}
}

// Query returns a query builder for Loan.
func (c *LoanClient) Query() *LoanQuery {
	return &LoanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoan},
		inters: c.Interceptors(),
	}
}

// Get returns a Loan entity by its id.
func (c *LoanClient) Get(ctx context.Context, id int) (*Loan, error) {
	return c.Query().Where(loan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoanClient) GetX(ctx context.Context, id int) *Loan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParagraph queries the paragraph edge of a Loan.
func (c *LoanClient) QueryParagraph(_m *Loan) *ParagraphQuery {
	query := (&ParagraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loan.Table, loan.FieldID, id),
			sqlgraph.To(paragraph.Table, paragraph.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, loan.ParagraphTable, loan.ParagraphColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LoanClient) Hooks() []Hook {
	return c.hooks.Loan
}

// Interceptors returns the client interceptors.
func (c *LoanClient) Interceptors() []Interceptor {
	return c.inters.Loan
}

func (c *LoanClient) mutate(ctx context.Context, m *LoanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Loan mutation op: %q", m.Op())
	}
}

// ParagraphClient is a client for the Paragraph schema.
type ParagraphClient struct {
	config
}

// NewParagraphClient returns a client for the Paragraph from the given config.
func NewParagraphClient(c config) *ParagraphClient {
	return &ParagraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paragraph.Hooks(f(g(h())))`.
func (c *ParagraphClient) Use(hooks ...Hook) {
	c.hooks.Paragraph = append(c.hooks.Paragraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paragraph.Intercept(f(g(h())))`.
func (c *ParagraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paragraph = append(c.inters.Paragraph, interceptors...)
}

// Create returns a builder for creating a Paragraph entity.
func (c *ParagraphClient) Create() *ParagraphCreate {
	mutation := newParagraphMutation(c.config, OpCreate)
	return &ParagraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paragraph entities.
func (c *ParagraphClient) CreateBulk(builders ...*ParagraphCreate) *ParagraphCreateBulk {
	return &ParagraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParagraphClient) MapCreateBulk(slice any, setFunc func(*ParagraphCreate, int)) *ParagraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParagraphCreateBulk{err: fmt.Errorf("calling to ParagraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParagraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParagraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paragraph.
func (c *ParagraphClient) Update() *ParagraphUpdate {
	mutation := newParagraphMutation(c.config, OpUpdate)
	return &ParagraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParagraphClient) UpdateOne(_m *Paragraph) *ParagraphUpdateOne {
	mutation := newParagraphMutation(c.config, OpUpdateOne, withParagraph(_m))
	return &ParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParagraphClient) UpdateOneID(id int) *ParagraphUpdateOne {
	mutation := newParagraphMutation(c.config, OpUpdateOne, withParagraphID(id))
	return &ParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paragraph.
func (c *ParagraphClient) Delete() *ParagraphDelete {
	mutation := newParagraphMutation(c.config, OpDelete)
	return &ParagraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParagraphClient) DeleteOne(_m *Paragraph) *ParagraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParagraphClient) DeleteOneID(id int) *ParagraphDeleteOne {
	builder := c.Delete().Where(paragraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParagraphDeleteOne{builder}
}

// Query returns a query builder for Paragraph.
func (c *ParagraphClient) Query() *ParagraphQuery {
	return &ParagraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParagraph},
		inters: c.Interceptors(),
	}
}

// Get returns a Paragraph entity by its id.
func (c *ParagraphClient) Get(ctx context.Context, id int) (*Paragraph, error) {
	return c.Query().Where(paragraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParagraphClient) GetX(ctx context.Context, id int) *Paragraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoans queries the loans edge of a Paragraph.
func (c *ParagraphClient) QueryLoans(_m *Paragraph) *LoanQuery {
	query := (&LoanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paragraph.Table, paragraph.FieldID, id),
			sqlgraph.To(loan.Table, loan.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paragraph.LoansTable, paragraph.LoansColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParagraphClient) Hooks() []Hook {
	return c.hooks.Paragraph
}

// Interceptors returns the client interceptors.
func (c *ParagraphClient) Interceptors() []Interceptor {
	return c.inters.Paragraph
}

func (c *ParagraphClient) mutate(ctx context.Context, m *ParagraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParagraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParagraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParagraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Paragraph mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Loan, Paragraph []ent.Hook
	}
	inters struct {
		Loan, Paragraph []ent.Interceptor
	}
)
