// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/reefwatch/icp-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reefwatch/icp-tracker/gen/ent/icptest"
	"github.com/reefwatch/icp-tracker/gen/ent/parsejob"
	"github.com/reefwatch/icp-tracker/gen/ent/reportfile"
	"github.com/reefwatch/icp-tracker/gen/ent/tank"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IcpTest is the client for interacting with the IcpTest builders.
	IcpTest *IcpTestClient
	// ParseJob is the client for interacting with the ParseJob builders.
	ParseJob *ParseJobClient
	// ReportFile is the client for interacting with the ReportFile builders.
	ReportFile *ReportFileClient
	// Tank is the client for interacting with the Tank builders.
	Tank *TankClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IcpTest = NewIcpTestClient(c.config)
	c.ParseJob = NewParseJobClient(c.config)
	c.ReportFile = NewReportFileClient(c.config)
	c.Tank = NewTankClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		IcpTest:    NewIcpTestClient(cfg),
		ParseJob:   NewParseJobClient(cfg),
		ReportFile: NewReportFileClient(cfg),
		Tank:       NewTankClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		IcpTest:    NewIcpTestClient(cfg),
		ParseJob:   NewParseJobClient(cfg),
		ReportFile: NewReportFileClient(cfg),
		Tank:       NewTankClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IcpTest.
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
	c.IcpTest.Use(hooks...)
	c.ParseJob.Use(hooks...)
	c.ReportFile.Use(hooks...)
	c.Tank.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IcpTest.Intercept(interceptors...)
	c.ParseJob.Intercept(interceptors...)
	c.ReportFile.Intercept(interceptors...)
	c.Tank.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IcpTestMutation:
		return c.IcpTest.mutate(ctx, m)
	case *ParseJobMutation:
		return c.ParseJob.mutate(ctx, m)
	case *ReportFileMutation:
		return c.ReportFile.mutate(ctx, m)
	case *TankMutation:
		return c.Tank.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IcpTestClient is a client for the IcpTest schema.
type IcpTestClient struct {
	config
}

// NewIcpTestClient returns a client for the IcpTest from the given config.
func NewIcpTestClient(c config) *IcpTestClient {
	return &IcpTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `icptest.Hooks(f(g(h())))`.
func (c *IcpTestClient) Use(hooks ...Hook) {
	c.hooks.IcpTest = append(c.hooks.IcpTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `icptest.Intercept(f(g(h())))`.
func (c *IcpTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.IcpTest = append(c.inters.IcpTest, interceptors...)
}

// Create returns a builder for creating a IcpTest entity.
func (c *IcpTestClient) Create() *IcpTestCreate {
	mutation := newIcpTestMutation(c.config, OpCreate)
	return &IcpTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IcpTest entities.
func (c *IcpTestClient) CreateBulk(builders ...*IcpTestCreate) *IcpTestCreateBulk {
	return &IcpTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IcpTestClient) MapCreateBulk(slice any, setFunc func(*IcpTestCreate, int)) *IcpTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IcpTestCreateBulk{err: fmt.Errorf("calling to IcpTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IcpTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IcpTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IcpTest.
func (c *IcpTestClient) Update() *IcpTestUpdate {
	mutation := newIcpTestMutation(c.config, OpUpdate)
	return &IcpTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IcpTestClient) UpdateOne(_m *IcpTest) *IcpTestUpdateOne {
	mutation := newIcpTestMutation(c.config, OpUpdateOne, withIcpTest(_m))
	return &IcpTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IcpTestClient) UpdateOneID(id uuid.UUID) *IcpTestUpdateOne {
	mutation := newIcpTestMutation(c.config, OpUpdateOne, withIcpTestID(id))
	return &IcpTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IcpTest.
func (c *IcpTestClient) Delete() *IcpTestDelete {
	mutation := newIcpTestMutation(c.config, OpDelete)
	return &IcpTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IcpTestClient) DeleteOne(_m *IcpTest) *IcpTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IcpTestClient) DeleteOneID(id uuid.UUID) *IcpTestDeleteOne {
	builder := c.Delete().Where(icptest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IcpTestDeleteOne{builder}
}

// Query returns a query builder for IcpTest.
func (c *IcpTestClient) Query() *IcpTestQuery {
	return &IcpTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIcpTest},
		inters: c.Interceptors(),
	}
}

// Get returns a IcpTest entity by its id.
func (c *IcpTestClient) Get(ctx context.Context, id uuid.UUID) (*IcpTest, error) {
	return c.Query().Where(icptest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IcpTestClient) GetX(ctx context.Context, id uuid.UUID) *IcpTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTank queries the tank edge of a IcpTest.
func (c *IcpTestClient) QueryTank(_m *IcpTest) *TankQuery {
	query := (&TankClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(icptest.Table, icptest.FieldID, id),
			sqlgraph.To(tank.Table, tank.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, icptest.TankTable, icptest.TankColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFile queries the file edge of a IcpTest.
func (c *IcpTestClient) QueryFile(_m *IcpTest) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(icptest.Table, icptest.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, icptest.FileTable, icptest.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IcpTestClient) Hooks() []Hook {
	return c.hooks.IcpTest
}

// Interceptors returns the client interceptors.
func (c *IcpTestClient) Interceptors() []Interceptor {
	return c.inters.IcpTest
}

func (c *IcpTestClient) mutate(ctx context.Context, m *IcpTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IcpTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IcpTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IcpTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IcpTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IcpTest mutation op: %q", m.Op())
	}
}

// ParseJobClient is a client for the ParseJob schema.
type ParseJobClient struct {
	config
}

// NewParseJobClient returns a client for the ParseJob from the given config.
func NewParseJobClient(c config) *ParseJobClient {
	return &ParseJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsejob.Hooks(f(g(h())))`.
func (c *ParseJobClient) Use(hooks ...Hook) {
	c.hooks.ParseJob = append(c.hooks.ParseJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsejob.Intercept(f(g(h())))`.
func (c *ParseJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseJob = append(c.inters.ParseJob, interceptors...)
}

// Create returns a builder for creating a ParseJob entity.
func (c *ParseJobClient) Create() *ParseJobCreate {
	mutation := newParseJobMutation(c.config, OpCreate)
	return &ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseJob entities.
func (c *ParseJobClient) CreateBulk(builders ...*ParseJobCreate) *ParseJobCreateBulk {
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseJobClient) MapCreateBulk(slice any, setFunc func(*ParseJobCreate, int)) *ParseJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseJobCreateBulk{err: fmt.Errorf("calling to ParseJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseJob.
func (c *ParseJobClient) Update() *ParseJobUpdate {
	mutation := newParseJobMutation(c.config, OpUpdate)
	return &ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseJobClient) UpdateOne(_m *ParseJob) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJob(_m))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseJobClient) UpdateOneID(id uuid.UUID) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJobID(id))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseJob.
func (c *ParseJobClient) Delete() *ParseJobDelete {
	mutation := newParseJobMutation(c.config, OpDelete)
	return &ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseJobClient) DeleteOne(_m *ParseJob) *ParseJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseJobClient) DeleteOneID(id uuid.UUID) *ParseJobDeleteOne {
	builder := c.Delete().Where(parsejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseJobDeleteOne{builder}
}

// Query returns a query builder for ParseJob.
func (c *ParseJobClient) Query() *ParseJobQuery {
	return &ParseJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseJob entity by its id.
func (c *ParseJobClient) Get(ctx context.Context, id uuid.UUID) (*ParseJob, error) {
	return c.Query().Where(parsejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseJobClient) GetX(ctx context.Context, id uuid.UUID) *ParseJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ParseJob.
func (c *ParseJobClient) QueryFile(_m *ParseJob) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.FileTable, parsejob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTank queries the tank edge of a ParseJob.
func (c *ParseJobClient) QueryTank(_m *ParseJob) *TankQuery {
	query := (&TankClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(tank.Table, tank.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.TankTable, parsejob.TankColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseJobClient) Hooks() []Hook {
	return c.hooks.ParseJob
}

// Interceptors returns the client interceptors.
func (c *ParseJobClient) Interceptors() []Interceptor {
	return c.inters.ParseJob
}

func (c *ParseJobClient) mutate(ctx context.Context, m *ParseJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseJob mutation op: %q", m.Op())
	}
}

// ReportFileClient is a client for the ReportFile schema.
type ReportFileClient struct {
	config
}

// NewReportFileClient returns a client for the ReportFile from the given config.
func NewReportFileClient(c config) *ReportFileClient {
	return &ReportFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportfile.Hooks(f(g(h())))`.
func (c *ReportFileClient) Use(hooks ...Hook) {
	c.hooks.ReportFile = append(c.hooks.ReportFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportfile.Intercept(f(g(h())))`.
func (c *ReportFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportFile = append(c.inters.ReportFile, interceptors...)
}

// Create returns a builder for creating a ReportFile entity.
func (c *ReportFileClient) Create() *ReportFileCreate {
	mutation := newReportFileMutation(c.config, OpCreate)
	return &ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportFile entities.
func (c *ReportFileClient) CreateBulk(builders ...*ReportFileCreate) *ReportFileCreateBulk {
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportFileClient) MapCreateBulk(slice any, setFunc func(*ReportFileCreate, int)) *ReportFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportFileCreateBulk{err: fmt.Errorf("calling to ReportFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportFile.
func (c *ReportFileClient) Update() *ReportFileUpdate {
	mutation := newReportFileMutation(c.config, OpUpdate)
	return &ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportFileClient) UpdateOne(_m *ReportFile) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFile(_m))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportFileClient) UpdateOneID(id uuid.UUID) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFileID(id))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportFile.
func (c *ReportFileClient) Delete() *ReportFileDelete {
	mutation := newReportFileMutation(c.config, OpDelete)
	return &ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportFileClient) DeleteOne(_m *ReportFile) *ReportFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportFileClient) DeleteOneID(id uuid.UUID) *ReportFileDeleteOne {
	builder := c.Delete().Where(reportfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportFileDeleteOne{builder}
}

// Query returns a query builder for ReportFile.
func (c *ReportFileClient) Query() *ReportFileQuery {
	return &ReportFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportFile entity by its id.
func (c *ReportFileClient) Get(ctx context.Context, id uuid.UUID) (*ReportFile, error) {
	return c.Query().Where(reportfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportFileClient) GetX(ctx context.Context, id uuid.UUID) *ReportFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTank queries the tank edge of a ReportFile.
func (c *ReportFileClient) QueryTank(_m *ReportFile) *TankQuery {
	query := (&TankClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(tank.Table, tank.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportfile.TankTable, reportfile.TankColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a ReportFile.
func (c *ReportFileClient) QueryJobs(_m *ReportFile) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reportfile.JobsTable, reportfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTests queries the tests edge of a ReportFile.
func (c *ReportFileClient) QueryTests(_m *ReportFile) *IcpTestQuery {
	query := (&IcpTestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(icptest.Table, icptest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reportfile.TestsTable, reportfile.TestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportFileClient) Hooks() []Hook {
	return c.hooks.ReportFile
}

// Interceptors returns the client interceptors.
func (c *ReportFileClient) Interceptors() []Interceptor {
	return c.inters.ReportFile
}

func (c *ReportFileClient) mutate(ctx context.Context, m *ReportFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportFile mutation op: %q", m.Op())
	}
}

// TankClient is a client for the Tank schema.
type TankClient struct {
	config
}

// NewTankClient returns a client for the Tank from the given config.
func NewTankClient(c config) *TankClient {
	return &TankClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tank.Hooks(f(g(h())))`.
func (c *TankClient) Use(hooks ...Hook) {
	c.hooks.Tank = append(c.hooks.Tank, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tank.Intercept(f(g(h())))`.
func (c *TankClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tank = append(c.inters.Tank, interceptors...)
}

// Create returns a builder for creating a Tank entity.
func (c *TankClient) Create() *TankCreate {
	mutation := newTankMutation(c.config, OpCreate)
	return &TankCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tank entities.
func (c *TankClient) CreateBulk(builders ...*TankCreate) *TankCreateBulk {
	return &TankCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TankClient) MapCreateBulk(slice any, setFunc func(*TankCreate, int)) *TankCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TankCreateBulk{err: fmt.Errorf("calling to TankClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TankCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TankCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tank.
func (c *TankClient) Update() *TankUpdate {
	mutation := newTankMutation(c.config, OpUpdate)
	return &TankUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TankClient) UpdateOne(_m *Tank) *TankUpdateOne {
	mutation := newTankMutation(c.config, OpUpdateOne, withTank(_m))
	return &TankUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TankClient) UpdateOneID(id uuid.UUID) *TankUpdateOne {
	mutation := newTankMutation(c.config, OpUpdateOne, withTankID(id))
	return &TankUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tank.
func (c *TankClient) Delete() *TankDelete {
	mutation := newTankMutation(c.config, OpDelete)
	return &TankDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TankClient) DeleteOne(_m *Tank) *TankDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TankClient) DeleteOneID(id uuid.UUID) *TankDeleteOne {
	builder := c.Delete().Where(tank.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TankDeleteOne{builder}
}

// Query returns a query builder for Tank.
func (c *TankClient) Query() *TankQuery {
	return &TankQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTank},
		inters: c.Interceptors(),
	}
}

// Get returns a Tank entity by its id.
func (c *TankClient) Get(ctx context.Context, id uuid.UUID) (*Tank, error) {
	return c.Query().Where(tank.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TankClient) GetX(ctx context.Context, id uuid.UUID) *Tank {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTests queries the tests edge of a Tank.
func (c *TankClient) QueryTests(_m *Tank) *IcpTestQuery {
	query := (&IcpTestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tank.Table, tank.FieldID, id),
			sqlgraph.To(icptest.Table, icptest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tank.TestsTable, tank.TestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Tank.
func (c *TankClient) QueryFiles(_m *Tank) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tank.Table, tank.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tank.FilesTable, tank.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Tank.
func (c *TankClient) QueryJobs(_m *Tank) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tank.Table, tank.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tank.JobsTable, tank.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TankClient) Hooks() []Hook {
	return c.hooks.Tank
}

// Interceptors returns the client interceptors.
func (c *TankClient) Interceptors() []Interceptor {
	return c.inters.Tank
}

func (c *TankClient) mutate(ctx context.Context, m *TankMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TankCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TankUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TankUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TankDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tank mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IcpTest, ParseJob, ReportFile, Tank []ent.Hook
	}
	inters struct {
		IcpTest, ParseJob, ReportFile, Tank []ent.Interceptor
	}
)
