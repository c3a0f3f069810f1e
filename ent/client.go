// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/scribeflow/scribeflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scribeflow/scribeflow/ent/event"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
	"github.com/scribeflow/scribeflow/ent/summary"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/ent/taskstage"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// QuotaEntry is the client for interacting with the QuotaEntry builders.
	QuotaEntry *QuotaEntryClient
	// Summary is the client for interacting with the Summary builders.
	Summary *SummaryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskStage is the client for interacting with the TaskStage builders.
	TaskStage *TaskStageClient
	// TranscriptSegment is the client for interacting with the TranscriptSegment builders.
	TranscriptSegment *TranscriptSegmentClient
	// UsageRecord is the client for interacting with the UsageRecord builders.
	UsageRecord *UsageRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Event = NewEventClient(c.config)
	c.QuotaEntry = NewQuotaEntryClient(c.config)
	c.Summary = NewSummaryClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskStage = NewTaskStageClient(c.config)
	c.TranscriptSegment = NewTranscriptSegmentClient(c.config)
	c.UsageRecord = NewUsageRecordClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Event:             NewEventClient(cfg),
		QuotaEntry:        NewQuotaEntryClient(cfg),
		Summary:           NewSummaryClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskStage:         NewTaskStageClient(cfg),
		TranscriptSegment: NewTranscriptSegmentClient(cfg),
		UsageRecord:       NewUsageRecordClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Event:             NewEventClient(cfg),
		QuotaEntry:        NewQuotaEntryClient(cfg),
		Summary:           NewSummaryClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskStage:         NewTaskStageClient(cfg),
		TranscriptSegment: NewTranscriptSegmentClient(cfg),
		UsageRecord:       NewUsageRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Event.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Event, c.QuotaEntry, c.Summary, c.Task, c.TaskStage, c.TranscriptSegment,
		c.UsageRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Event, c.QuotaEntry, c.Summary, c.Task, c.TaskStage, c.TranscriptSegment,
		c.UsageRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *QuotaEntryMutation:
		return c.QuotaEntry.mutate(ctx, m)
	case *SummaryMutation:
		return c.Summary.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskStageMutation:
		return c.TaskStage.mutate(ctx, m)
	case *TranscriptSegmentMutation:
		return c.TranscriptSegment.mutate(ctx, m)
	case *UsageRecordMutation:
		return c.UsageRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Event.
func (c *EventClient) QueryTask(_m *Event) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.TaskTable, event.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// QuotaEntryClient is a client for the QuotaEntry schema.
type QuotaEntryClient struct {
	config
}

// NewQuotaEntryClient returns a client for the QuotaEntry from the given config.
func NewQuotaEntryClient(c config) *QuotaEntryClient {
	return &QuotaEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quotaentry.Hooks(f(g(h())))`.
func (c *QuotaEntryClient) Use(hooks ...Hook) {
	c.hooks.QuotaEntry = append(c.hooks.QuotaEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quotaentry.Intercept(f(g(h())))`.
func (c *QuotaEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuotaEntry = append(c.inters.QuotaEntry, interceptors...)
}

// Create returns a builder for creating a QuotaEntry entity.
func (c *QuotaEntryClient) Create() *QuotaEntryCreate {
	mutation := newQuotaEntryMutation(c.config, OpCreate)
	return &QuotaEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuotaEntry entities.
func (c *QuotaEntryClient) CreateBulk(builders ...*QuotaEntryCreate) *QuotaEntryCreateBulk {
	return &QuotaEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuotaEntryClient) MapCreateBulk(slice any, setFunc func(*QuotaEntryCreate, int)) *QuotaEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuotaEntryCreateBulk{err: fmt.Errorf("calling to QuotaEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuotaEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuotaEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuotaEntry.
func (c *QuotaEntryClient) Update() *QuotaEntryUpdate {
	mutation := newQuotaEntryMutation(c.config, OpUpdate)
	return &QuotaEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuotaEntryClient) UpdateOne(_m *QuotaEntry) *QuotaEntryUpdateOne {
	mutation := newQuotaEntryMutation(c.config, OpUpdateOne, withQuotaEntry(_m))
	return &QuotaEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuotaEntryClient) UpdateOneID(id string) *QuotaEntryUpdateOne {
	mutation := newQuotaEntryMutation(c.config, OpUpdateOne, withQuotaEntryID(id))
	return &QuotaEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuotaEntry.
func (c *QuotaEntryClient) Delete() *QuotaEntryDelete {
	mutation := newQuotaEntryMutation(c.config, OpDelete)
	return &QuotaEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuotaEntryClient) DeleteOne(_m *QuotaEntry) *QuotaEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuotaEntryClient) DeleteOneID(id string) *QuotaEntryDeleteOne {
	builder := c.Delete().Where(quotaentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuotaEntryDeleteOne{builder}
}

// Query returns a query builder for QuotaEntry.
func (c *QuotaEntryClient) Query() *QuotaEntryQuery {
	return &QuotaEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuotaEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a QuotaEntry entity by its id.
func (c *QuotaEntryClient) Get(ctx context.Context, id string) (*QuotaEntry, error) {
	return c.Query().Where(quotaentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuotaEntryClient) GetX(ctx context.Context, id string) *QuotaEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuotaEntryClient) Hooks() []Hook {
	return c.hooks.QuotaEntry
}

// Interceptors returns the client interceptors.
func (c *QuotaEntryClient) Interceptors() []Interceptor {
	return c.inters.QuotaEntry
}

func (c *QuotaEntryClient) mutate(ctx context.Context, m *QuotaEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuotaEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuotaEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuotaEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuotaEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuotaEntry mutation op: %q", m.Op())
	}
}

// SummaryClient is a client for the Summary schema.
type SummaryClient struct {
	config
}

// NewSummaryClient returns a client for the Summary from the given config.
func NewSummaryClient(c config) *SummaryClient {
	return &SummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summary.Hooks(f(g(h())))`.
func (c *SummaryClient) Use(hooks ...Hook) {
	c.hooks.Summary = append(c.hooks.Summary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summary.Intercept(f(g(h())))`.
func (c *SummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Summary = append(c.inters.Summary, interceptors...)
}

// Create returns a builder for creating a Summary entity.
func (c *SummaryClient) Create() *SummaryCreate {
	mutation := newSummaryMutation(c.config, OpCreate)
	return &SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Summary entities.
func (c *SummaryClient) CreateBulk(builders ...*SummaryCreate) *SummaryCreateBulk {
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryClient) MapCreateBulk(slice any, setFunc func(*SummaryCreate, int)) *SummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCreateBulk{err: fmt.Errorf("calling to SummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Summary.
func (c *SummaryClient) Update() *SummaryUpdate {
	mutation := newSummaryMutation(c.config, OpUpdate)
	return &SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryClient) UpdateOne(_m *Summary) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummary(_m))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryClient) UpdateOneID(id string) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummaryID(id))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Summary.
func (c *SummaryClient) Delete() *SummaryDelete {
	mutation := newSummaryMutation(c.config, OpDelete)
	return &SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryClient) DeleteOne(_m *Summary) *SummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryClient) DeleteOneID(id string) *SummaryDeleteOne {
	builder := c.Delete().Where(summary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryDeleteOne{builder}
}

// Query returns a query builder for Summary.
func (c *SummaryClient) Query() *SummaryQuery {
	return &SummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a Summary entity by its id.
func (c *SummaryClient) Get(ctx context.Context, id string) (*Summary, error) {
	return c.Query().Where(summary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryClient) GetX(ctx context.Context, id string) *Summary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Summary.
func (c *SummaryClient) QueryTask(_m *Summary) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, summary.TaskTable, summary.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummaryClient) Hooks() []Hook {
	return c.hooks.Summary
}

// Interceptors returns the client interceptors.
func (c *SummaryClient) Interceptors() []Interceptor {
	return c.inters.Summary
}

func (c *SummaryClient) mutate(ctx context.Context, m *SummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Summary mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a Task.
func (c *TaskClient) QueryStages(_m *Task) *TaskStageQuery {
	query := (&TaskStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskstage.Table, taskstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.StagesTable, task.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySegments queries the segments edge of a Task.
func (c *TaskClient) QuerySegments(_m *Task) *TranscriptSegmentQuery {
	query := (&TranscriptSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(transcriptsegment.Table, transcriptsegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SegmentsTable, task.SegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySummaries queries the summaries edge of a Task.
func (c *TaskClient) QuerySummaries(_m *Task) *SummaryQuery {
	query := (&SummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SummariesTable, task.SummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(_m *Task) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskStageClient is a client for the TaskStage schema.
type TaskStageClient struct {
	config
}

// NewTaskStageClient returns a client for the TaskStage from the given config.
func NewTaskStageClient(c config) *TaskStageClient {
	return &TaskStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskstage.Hooks(f(g(h())))`.
func (c *TaskStageClient) Use(hooks ...Hook) {
	c.hooks.TaskStage = append(c.hooks.TaskStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskstage.Intercept(f(g(h())))`.
func (c *TaskStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskStage = append(c.inters.TaskStage, interceptors...)
}

// Create returns a builder for creating a TaskStage entity.
func (c *TaskStageClient) Create() *TaskStageCreate {
	mutation := newTaskStageMutation(c.config, OpCreate)
	return &TaskStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskStage entities.
func (c *TaskStageClient) CreateBulk(builders ...*TaskStageCreate) *TaskStageCreateBulk {
	return &TaskStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskStageClient) MapCreateBulk(slice any, setFunc func(*TaskStageCreate, int)) *TaskStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskStageCreateBulk{err: fmt.Errorf("calling to TaskStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskStage.
func (c *TaskStageClient) Update() *TaskStageUpdate {
	mutation := newTaskStageMutation(c.config, OpUpdate)
	return &TaskStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskStageClient) UpdateOne(_m *TaskStage) *TaskStageUpdateOne {
	mutation := newTaskStageMutation(c.config, OpUpdateOne, withTaskStage(_m))
	return &TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskStageClient) UpdateOneID(id string) *TaskStageUpdateOne {
	mutation := newTaskStageMutation(c.config, OpUpdateOne, withTaskStageID(id))
	return &TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskStage.
func (c *TaskStageClient) Delete() *TaskStageDelete {
	mutation := newTaskStageMutation(c.config, OpDelete)
	return &TaskStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskStageClient) DeleteOne(_m *TaskStage) *TaskStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskStageClient) DeleteOneID(id string) *TaskStageDeleteOne {
	builder := c.Delete().Where(taskstage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskStageDeleteOne{builder}
}

// Query returns a query builder for TaskStage.
func (c *TaskStageClient) Query() *TaskStageQuery {
	return &TaskStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskStage},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskStage entity by its id.
func (c *TaskStageClient) Get(ctx context.Context, id string) (*TaskStage, error) {
	return c.Query().Where(taskstage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskStageClient) GetX(ctx context.Context, id string) *TaskStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskStage.
func (c *TaskStageClient) QueryTask(_m *TaskStage) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstage.Table, taskstage.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskstage.TaskTable, taskstage.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskStageClient) Hooks() []Hook {
	return c.hooks.TaskStage
}

// Interceptors returns the client interceptors.
func (c *TaskStageClient) Interceptors() []Interceptor {
	return c.inters.TaskStage
}

func (c *TaskStageClient) mutate(ctx context.Context, m *TaskStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskStage mutation op: %q", m.Op())
	}
}

// TranscriptSegmentClient is a client for the TranscriptSegment schema.
type TranscriptSegmentClient struct {
	config
}

// NewTranscriptSegmentClient returns a client for the TranscriptSegment from the given config.
func NewTranscriptSegmentClient(c config) *TranscriptSegmentClient {
	return &TranscriptSegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptsegment.Hooks(f(g(h())))`.
func (c *TranscriptSegmentClient) Use(hooks ...Hook) {
	c.hooks.TranscriptSegment = append(c.hooks.TranscriptSegment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptsegment.Intercept(f(g(h())))`.
func (c *TranscriptSegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptSegment = append(c.inters.TranscriptSegment, interceptors...)
}

// Create returns a builder for creating a TranscriptSegment entity.
func (c *TranscriptSegmentClient) Create() *TranscriptSegmentCreate {
	mutation := newTranscriptSegmentMutation(c.config, OpCreate)
	return &TranscriptSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptSegment entities.
func (c *TranscriptSegmentClient) CreateBulk(builders ...*TranscriptSegmentCreate) *TranscriptSegmentCreateBulk {
	return &TranscriptSegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptSegmentClient) MapCreateBulk(slice any, setFunc func(*TranscriptSegmentCreate, int)) *TranscriptSegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptSegmentCreateBulk{err: fmt.Errorf("calling to TranscriptSegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptSegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptSegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Update() *TranscriptSegmentUpdate {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdate)
	return &TranscriptSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptSegmentClient) UpdateOne(_m *TranscriptSegment) *TranscriptSegmentUpdateOne {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdateOne, withTranscriptSegment(_m))
	return &TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptSegmentClient) UpdateOneID(id string) *TranscriptSegmentUpdateOne {
	mutation := newTranscriptSegmentMutation(c.config, OpUpdateOne, withTranscriptSegmentID(id))
	return &TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Delete() *TranscriptSegmentDelete {
	mutation := newTranscriptSegmentMutation(c.config, OpDelete)
	return &TranscriptSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptSegmentClient) DeleteOne(_m *TranscriptSegment) *TranscriptSegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptSegmentClient) DeleteOneID(id string) *TranscriptSegmentDeleteOne {
	builder := c.Delete().Where(transcriptsegment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptSegmentDeleteOne{builder}
}

// Query returns a query builder for TranscriptSegment.
func (c *TranscriptSegmentClient) Query() *TranscriptSegmentQuery {
	return &TranscriptSegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptSegment entity by its id.
func (c *TranscriptSegmentClient) Get(ctx context.Context, id string) (*TranscriptSegment, error) {
	return c.Query().Where(transcriptsegment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptSegmentClient) GetX(ctx context.Context, id string) *TranscriptSegment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TranscriptSegment.
func (c *TranscriptSegmentClient) QueryTask(_m *TranscriptSegment) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptsegment.Table, transcriptsegment.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcriptsegment.TaskTable, transcriptsegment.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptSegmentClient) Hooks() []Hook {
	return c.hooks.TranscriptSegment
}

// Interceptors returns the client interceptors.
func (c *TranscriptSegmentClient) Interceptors() []Interceptor {
	return c.inters.TranscriptSegment
}

func (c *TranscriptSegmentClient) mutate(ctx context.Context, m *TranscriptSegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptSegment mutation op: %q", m.Op())
	}
}

// UsageRecordClient is a client for the UsageRecord schema.
type UsageRecordClient struct {
	config
}

// NewUsageRecordClient returns a client for the UsageRecord from the given config.
func NewUsageRecordClient(c config) *UsageRecordClient {
	return &UsageRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagerecord.Hooks(f(g(h())))`.
func (c *UsageRecordClient) Use(hooks ...Hook) {
	c.hooks.UsageRecord = append(c.hooks.UsageRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagerecord.Intercept(f(g(h())))`.
func (c *UsageRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageRecord = append(c.inters.UsageRecord, interceptors...)
}

// Create returns a builder for creating a UsageRecord entity.
func (c *UsageRecordClient) Create() *UsageRecordCreate {
	mutation := newUsageRecordMutation(c.config, OpCreate)
	return &UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageRecord entities.
func (c *UsageRecordClient) CreateBulk(builders ...*UsageRecordCreate) *UsageRecordCreateBulk {
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageRecordClient) MapCreateBulk(slice any, setFunc func(*UsageRecordCreate, int)) *UsageRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageRecordCreateBulk{err: fmt.Errorf("calling to UsageRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageRecord.
func (c *UsageRecordClient) Update() *UsageRecordUpdate {
	mutation := newUsageRecordMutation(c.config, OpUpdate)
	return &UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageRecordClient) UpdateOne(_m *UsageRecord) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecord(_m))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageRecordClient) UpdateOneID(id string) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecordID(id))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageRecord.
func (c *UsageRecordClient) Delete() *UsageRecordDelete {
	mutation := newUsageRecordMutation(c.config, OpDelete)
	return &UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageRecordClient) DeleteOne(_m *UsageRecord) *UsageRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageRecordClient) DeleteOneID(id string) *UsageRecordDeleteOne {
	builder := c.Delete().Where(usagerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageRecordDeleteOne{builder}
}

// Query returns a query builder for UsageRecord.
func (c *UsageRecordClient) Query() *UsageRecordQuery {
	return &UsageRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageRecord entity by its id.
func (c *UsageRecordClient) Get(ctx context.Context, id string) (*UsageRecord, error) {
	return c.Query().Where(usagerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageRecordClient) GetX(ctx context.Context, id string) *UsageRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageRecordClient) Hooks() []Hook {
	return c.hooks.UsageRecord
}

// Interceptors returns the client interceptors.
func (c *UsageRecordClient) Interceptors() []Interceptor {
	return c.inters.UsageRecord
}

func (c *UsageRecordClient) mutate(ctx context.Context, m *UsageRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Event, QuotaEntry, Summary, Task, TaskStage, TranscriptSegment,
		UsageRecord []ent.Hook
	}
	inters struct {
		Event, QuotaEntry, Summary, Task, TaskStage, TranscriptSegment,
		UsageRecord []ent.Interceptor
	}
)
