// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/monailabs/monai/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monailabs/monai/gen/ent/job"
	"github.com/monailabs/monai/gen/ent/jobdata"
	"github.com/monailabs/monai/gen/ent/querylog"
	"github.com/monailabs/monai/gen/ent/rule"
	"github.com/monailabs/monai/gen/ent/rulegroup"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobData is the client for interacting with the JobData builders.
	JobData *JobDataClient
	// QueryLog is the client for interacting with the QueryLog builders.
	QueryLog *QueryLogClient
	// Rule is the client for interacting with the Rule builders.
	Rule *RuleClient
	// RuleGroup is the client for interacting with the RuleGroup builders.
	RuleGroup *RuleGroupClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Job = NewJobClient(c.config)
	c.JobData = NewJobDataClient(c.config)
	c.QueryLog = NewQueryLogClient(c.config)
	c.Rule = NewRuleClient(c.config)
	c.RuleGroup = NewRuleGroupClient(c.config)
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
		Job:       NewJobClient(cfg),
		JobData:   NewJobDataClient(cfg),
		QueryLog:  NewQueryLogClient(cfg),
		Rule:      NewRuleClient(cfg),
		RuleGroup: NewRuleGroupClient(cfg),
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
		Job:       NewJobClient(cfg),
		JobData:   NewJobDataClient(cfg),
		QueryLog:  NewQueryLogClient(cfg),
		Rule:      NewRuleClient(cfg),
		RuleGroup: NewRuleGroupClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Job.
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
	c.Job.Use(hooks...)
	c.JobData.Use(hooks...)
	c.QueryLog.Use(hooks...)
	c.Rule.Use(hooks...)
	c.RuleGroup.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Job.Intercept(interceptors...)
	c.JobData.Intercept(interceptors...)
	c.QueryLog.Intercept(interceptors...)
	c.Rule.Intercept(interceptors...)
	c.RuleGroup.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobDataMutation:
		return c.JobData.mutate(ctx, m)
	case *QueryLogMutation:
		return c.QueryLog.mutate(ctx, m)
	case *RuleMutation:
		return c.Rule.mutate(ctx, m)
	case *RuleGroupMutation:
		return c.RuleGroup.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuleGroups queries the rule_groups edge of a Job.
func (c *JobClient) QueryRuleGroups(_m *Job) *RuleGroupQuery {
	query := (&RuleGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(rulegroup.Table, rulegroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, job.RuleGroupsTable, job.RuleGroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Job.
func (c *JobClient) QueryExecutions(_m *Job) *JobDataQuery {
	query := (&JobDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobdata.Table, jobdata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.ExecutionsTable, job.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobDataClient is a client for the JobData schema.
type JobDataClient struct {
	config
}

// NewJobDataClient returns a client for the JobData from the given config.
func NewJobDataClient(c config) *JobDataClient {
	return &JobDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobdata.Hooks(f(g(h())))`.
func (c *JobDataClient) Use(hooks ...Hook) {
	c.hooks.JobData = append(c.hooks.JobData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobdata.Intercept(f(g(h())))`.
func (c *JobDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobData = append(c.inters.JobData, interceptors...)
}

// Create returns a builder for creating a JobData entity.
func (c *JobDataClient) Create() *JobDataCreate {
	mutation := newJobDataMutation(c.config, OpCreate)
	return &JobDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobData entities.
func (c *JobDataClient) CreateBulk(builders ...*JobDataCreate) *JobDataCreateBulk {
	return &JobDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobDataClient) MapCreateBulk(slice any, setFunc func(*JobDataCreate, int)) *JobDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobDataCreateBulk{err: fmt.Errorf("calling to JobDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobData.
func (c *JobDataClient) Update() *JobDataUpdate {
	mutation := newJobDataMutation(c.config, OpUpdate)
	return &JobDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobDataClient) UpdateOne(_m *JobData) *JobDataUpdateOne {
	mutation := newJobDataMutation(c.config, OpUpdateOne, withJobData(_m))
	return &JobDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobDataClient) UpdateOneID(id uuid.UUID) *JobDataUpdateOne {
	mutation := newJobDataMutation(c.config, OpUpdateOne, withJobDataID(id))
	return &JobDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobData.
func (c *JobDataClient) Delete() *JobDataDelete {
	mutation := newJobDataMutation(c.config, OpDelete)
	return &JobDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobDataClient) DeleteOne(_m *JobData) *JobDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobDataClient) DeleteOneID(id uuid.UUID) *JobDataDeleteOne {
	builder := c.Delete().Where(jobdata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDataDeleteOne{builder}
}

// Query returns a query builder for JobData.
func (c *JobDataClient) Query() *JobDataQuery {
	return &JobDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobData},
		inters: c.Interceptors(),
	}
}

// Get returns a JobData entity by its id.
func (c *JobDataClient) Get(ctx context.Context, id uuid.UUID) (*JobData, error) {
	return c.Query().Where(jobdata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobDataClient) GetX(ctx context.Context, id uuid.UUID) *JobData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobData.
func (c *JobDataClient) QueryJob(_m *JobData) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobdata.Table, jobdata.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobdata.JobTable, jobdata.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobDataClient) Hooks() []Hook {
	return c.hooks.JobData
}

// Interceptors returns the client interceptors.
func (c *JobDataClient) Interceptors() []Interceptor {
	return c.inters.JobData
}

func (c *JobDataClient) mutate(ctx context.Context, m *JobDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobData mutation op: %q", m.Op())
	}
}

// QueryLogClient is a client for the QueryLog schema.
type QueryLogClient struct {
	config
}

// NewQueryLogClient returns a client for the QueryLog from the given config.
func NewQueryLogClient(c config) *QueryLogClient {
	return &QueryLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `querylog.Hooks(f(g(h())))`.
func (c *QueryLogClient) Use(hooks ...Hook) {
	c.hooks.QueryLog = append(c.hooks.QueryLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `querylog.Intercept(f(g(h())))`.
func (c *QueryLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueryLog = append(c.inters.QueryLog, interceptors...)
}

// Create returns a builder for creating a QueryLog entity.
func (c *QueryLogClient) Create() *QueryLogCreate {
	mutation := newQueryLogMutation(c.config, OpCreate)
	return &QueryLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueryLog entities.
func (c *QueryLogClient) CreateBulk(builders ...*QueryLogCreate) *QueryLogCreateBulk {
	return &QueryLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueryLogClient) MapCreateBulk(slice any, setFunc func(*QueryLogCreate, int)) *QueryLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueryLogCreateBulk{err: fmt.Errorf("calling to QueryLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueryLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueryLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueryLog.
func (c *QueryLogClient) Update() *QueryLogUpdate {
	mutation := newQueryLogMutation(c.config, OpUpdate)
	return &QueryLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueryLogClient) UpdateOne(_m *QueryLog) *QueryLogUpdateOne {
	mutation := newQueryLogMutation(c.config, OpUpdateOne, withQueryLog(_m))
	return &QueryLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueryLogClient) UpdateOneID(id uuid.UUID) *QueryLogUpdateOne {
	mutation := newQueryLogMutation(c.config, OpUpdateOne, withQueryLogID(id))
	return &QueryLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueryLog.
func (c *QueryLogClient) Delete() *QueryLogDelete {
	mutation := newQueryLogMutation(c.config, OpDelete)
	return &QueryLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueryLogClient) DeleteOne(_m *QueryLog) *QueryLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueryLogClient) DeleteOneID(id uuid.UUID) *QueryLogDeleteOne {
	builder := c.Delete().Where(querylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueryLogDeleteOne{builder}
}

// Query returns a query builder for QueryLog.
func (c *QueryLogClient) Query() *QueryLogQuery {
	return &QueryLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueryLog},
		inters: c.Interceptors(),
	}
}

// Get returns a QueryLog entity by its id.
func (c *QueryLogClient) Get(ctx context.Context, id uuid.UUID) (*QueryLog, error) {
	return c.Query().Where(querylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueryLogClient) GetX(ctx context.Context, id uuid.UUID) *QueryLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueryLogClient) Hooks() []Hook {
	return c.hooks.QueryLog
}

// Interceptors returns the client interceptors.
func (c *QueryLogClient) Interceptors() []Interceptor {
	return c.inters.QueryLog
}

func (c *QueryLogClient) mutate(ctx context.Context, m *QueryLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueryLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueryLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueryLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueryLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueryLog mutation op: %q", m.Op())
	}
}

// RuleClient is a client for the Rule schema.
type RuleClient struct {
	config
}

// NewRuleClient returns a client for the Rule from the given config.
func NewRuleClient(c config) *RuleClient {
	return &RuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rule.Hooks(f(g(h())))`.
func (c *RuleClient) Use(hooks ...Hook) {
	c.hooks.Rule = append(c.hooks.Rule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rule.Intercept(f(g(h())))`.
func (c *RuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rule = append(c.inters.Rule, interceptors...)
}

// Create returns a builder for creating a Rule entity.
func (c *RuleClient) Create() *RuleCreate {
	mutation := newRuleMutation(c.config, OpCreate)
	return &RuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rule entities.
func (c *RuleClient) CreateBulk(builders ...*RuleCreate) *RuleCreateBulk {
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleClient) MapCreateBulk(slice any, setFunc func(*RuleCreate, int)) *RuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleCreateBulk{err: fmt.Errorf("calling to RuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rule.
func (c *RuleClient) Update() *RuleUpdate {
	mutation := newRuleMutation(c.config, OpUpdate)
	return &RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleClient) UpdateOne(_m *Rule) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRule(_m))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleClient) UpdateOneID(id uuid.UUID) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRuleID(id))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rule.
func (c *RuleClient) Delete() *RuleDelete {
	mutation := newRuleMutation(c.config, OpDelete)
	return &RuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleClient) DeleteOne(_m *Rule) *RuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleClient) DeleteOneID(id uuid.UUID) *RuleDeleteOne {
	builder := c.Delete().Where(rule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleDeleteOne{builder}
}

// Query returns a query builder for Rule.
func (c *RuleClient) Query() *RuleQuery {
	return &RuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRule},
		inters: c.Interceptors(),
	}
}

// Get returns a Rule entity by its id.
func (c *RuleClient) Get(ctx context.Context, id uuid.UUID) (*Rule, error) {
	return c.Query().Where(rule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleClient) GetX(ctx context.Context, id uuid.UUID) *Rule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroups queries the groups edge of a Rule.
func (c *RuleClient) QueryGroups(_m *Rule) *RuleGroupQuery {
	query := (&RuleGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rule.Table, rule.FieldID, id),
			sqlgraph.To(rulegroup.Table, rulegroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, rule.GroupsTable, rule.GroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleClient) Hooks() []Hook {
	return c.hooks.Rule
}

// Interceptors returns the client interceptors.
func (c *RuleClient) Interceptors() []Interceptor {
	return c.inters.Rule
}

func (c *RuleClient) mutate(ctx context.Context, m *RuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rule mutation op: %q", m.Op())
	}
}

// RuleGroupClient is a client for the RuleGroup schema.
type RuleGroupClient struct {
	config
}

// NewRuleGroupClient returns a client for the RuleGroup from the given config.
func NewRuleGroupClient(c config) *RuleGroupClient {
	return &RuleGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rulegroup.Hooks(f(g(h())))`.
func (c *RuleGroupClient) Use(hooks ...Hook) {
	c.hooks.RuleGroup = append(c.hooks.RuleGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rulegroup.Intercept(f(g(h())))`.
func (c *RuleGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuleGroup = append(c.inters.RuleGroup, interceptors...)
}

// Create returns a builder for creating a RuleGroup entity.
func (c *RuleGroupClient) Create() *RuleGroupCreate {
	mutation := newRuleGroupMutation(c.config, OpCreate)
	return &RuleGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuleGroup entities.
func (c *RuleGroupClient) CreateBulk(builders ...*RuleGroupCreate) *RuleGroupCreateBulk {
	return &RuleGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleGroupClient) MapCreateBulk(slice any, setFunc func(*RuleGroupCreate, int)) *RuleGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleGroupCreateBulk{err: fmt.Errorf("calling to RuleGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuleGroup.
func (c *RuleGroupClient) Update() *RuleGroupUpdate {
	mutation := newRuleGroupMutation(c.config, OpUpdate)
	return &RuleGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleGroupClient) UpdateOne(_m *RuleGroup) *RuleGroupUpdateOne {
	mutation := newRuleGroupMutation(c.config, OpUpdateOne, withRuleGroup(_m))
	return &RuleGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleGroupClient) UpdateOneID(id uuid.UUID) *RuleGroupUpdateOne {
	mutation := newRuleGroupMutation(c.config, OpUpdateOne, withRuleGroupID(id))
	return &RuleGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuleGroup.
func (c *RuleGroupClient) Delete() *RuleGroupDelete {
	mutation := newRuleGroupMutation(c.config, OpDelete)
	return &RuleGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleGroupClient) DeleteOne(_m *RuleGroup) *RuleGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleGroupClient) DeleteOneID(id uuid.UUID) *RuleGroupDeleteOne {
	builder := c.Delete().Where(rulegroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleGroupDeleteOne{builder}
}

// Query returns a query builder for RuleGroup.
func (c *RuleGroupClient) Query() *RuleGroupQuery {
	return &RuleGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuleGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a RuleGroup entity by its id.
func (c *RuleGroupClient) Get(ctx context.Context, id uuid.UUID) (*RuleGroup, error) {
	return c.Query().Where(rulegroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleGroupClient) GetX(ctx context.Context, id uuid.UUID) *RuleGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRules queries the rules edge of a RuleGroup.
func (c *RuleGroupClient) QueryRules(_m *RuleGroup) *RuleQuery {
	query := (&RuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rulegroup.Table, rulegroup.FieldID, id),
			sqlgraph.To(rule.Table, rule.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, rulegroup.RulesTable, rulegroup.RulesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a RuleGroup.
func (c *RuleGroupClient) QueryJobs(_m *RuleGroup) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rulegroup.Table, rulegroup.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, rulegroup.JobsTable, rulegroup.JobsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleGroupClient) Hooks() []Hook {
	return c.hooks.RuleGroup
}

// Interceptors returns the client interceptors.
func (c *RuleGroupClient) Interceptors() []Interceptor {
	return c.inters.RuleGroup
}

func (c *RuleGroupClient) mutate(ctx context.Context, m *RuleGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuleGroup mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Job, JobData, QueryLog, Rule, RuleGroup []ent.Hook
	}
	inters struct {
		Job, JobData, QueryLog, Rule, RuleGroup []ent.Interceptor
	}
)
