// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/maestro-run/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/agentperformance"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/leaderelection"
	"github.com/maestro-run/maestro/ent/leaderhistory"
	"github.com/maestro-run/maestro/ent/manualtask"
	"github.com/maestro-run/maestro/ent/scalingdecision"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/ent/workerevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentPerformance is the client for interacting with the AgentPerformance builders.
	AgentPerformance *AgentPerformanceClient
	// AgentPerformanceMetric is the client for interacting with the AgentPerformanceMetric builders.
	AgentPerformanceMetric *AgentPerformanceMetricClient
	// ErrorLog is the client for interacting with the ErrorLog builders.
	ErrorLog *ErrorLogClient
	// LeaderElection is the client for interacting with the LeaderElection builders.
	LeaderElection *LeaderElectionClient
	// LeaderHistory is the client for interacting with the LeaderHistory builders.
	LeaderHistory *LeaderHistoryClient
	// ManualTask is the client for interacting with the ManualTask builders.
	ManualTask *ManualTaskClient
	// ScalingDecision is the client for interacting with the ScalingDecision builders.
	ScalingDecision *ScalingDecisionClient
	// Subtask is the client for interacting with the Subtask builders.
	Subtask *SubtaskClient
	// SystemAlert is the client for interacting with the SystemAlert builders.
	SystemAlert *SystemAlertClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskDecomposition is the client for interacting with the TaskDecomposition builders.
	TaskDecomposition *TaskDecompositionClient
	// TaskQueueStat is the client for interacting with the TaskQueueStat builders.
	TaskQueueStat *TaskQueueStatClient
	// TaskWorker is the client for interacting with the TaskWorker builders.
	TaskWorker *TaskWorkerClient
	// WorkerEvent is the client for interacting with the WorkerEvent builders.
	WorkerEvent *WorkerEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentPerformance = NewAgentPerformanceClient(c.config)
	c.AgentPerformanceMetric = NewAgentPerformanceMetricClient(c.config)
	c.ErrorLog = NewErrorLogClient(c.config)
	c.LeaderElection = NewLeaderElectionClient(c.config)
	c.LeaderHistory = NewLeaderHistoryClient(c.config)
	c.ManualTask = NewManualTaskClient(c.config)
	c.ScalingDecision = NewScalingDecisionClient(c.config)
	c.Subtask = NewSubtaskClient(c.config)
	c.SystemAlert = NewSystemAlertClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskDecomposition = NewTaskDecompositionClient(c.config)
	c.TaskQueueStat = NewTaskQueueStatClient(c.config)
	c.TaskWorker = NewTaskWorkerClient(c.config)
	c.WorkerEvent = NewWorkerEventClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		Agent:                  NewAgentClient(cfg),
		AgentPerformance:       NewAgentPerformanceClient(cfg),
		AgentPerformanceMetric: NewAgentPerformanceMetricClient(cfg),
		ErrorLog:               NewErrorLogClient(cfg),
		LeaderElection:         NewLeaderElectionClient(cfg),
		LeaderHistory:          NewLeaderHistoryClient(cfg),
		ManualTask:             NewManualTaskClient(cfg),
		ScalingDecision:        NewScalingDecisionClient(cfg),
		Subtask:                NewSubtaskClient(cfg),
		SystemAlert:            NewSystemAlertClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskDecomposition:      NewTaskDecompositionClient(cfg),
		TaskQueueStat:          NewTaskQueueStatClient(cfg),
		TaskWorker:             NewTaskWorkerClient(cfg),
		WorkerEvent:            NewWorkerEventClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		Agent:                  NewAgentClient(cfg),
		AgentPerformance:       NewAgentPerformanceClient(cfg),
		AgentPerformanceMetric: NewAgentPerformanceMetricClient(cfg),
		ErrorLog:               NewErrorLogClient(cfg),
		LeaderElection:         NewLeaderElectionClient(cfg),
		LeaderHistory:          NewLeaderHistoryClient(cfg),
		ManualTask:             NewManualTaskClient(cfg),
		ScalingDecision:        NewScalingDecisionClient(cfg),
		Subtask:                NewSubtaskClient(cfg),
		SystemAlert:            NewSystemAlertClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskDecomposition:      NewTaskDecompositionClient(cfg),
		TaskQueueStat:          NewTaskQueueStatClient(cfg),
		TaskWorker:             NewTaskWorkerClient(cfg),
		WorkerEvent:            NewWorkerEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AgentPerformance, c.AgentPerformanceMetric, c.ErrorLog,
		c.LeaderElection, c.LeaderHistory, c.ManualTask, c.ScalingDecision, c.Subtask,
		c.SystemAlert, c.Task, c.TaskDecomposition, c.TaskQueueStat, c.TaskWorker,
		c.WorkerEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentPerformance, c.AgentPerformanceMetric, c.ErrorLog,
		c.LeaderElection, c.LeaderHistory, c.ManualTask, c.ScalingDecision, c.Subtask,
		c.SystemAlert, c.Task, c.TaskDecomposition, c.TaskQueueStat, c.TaskWorker,
		c.WorkerEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentPerformanceMutation:
		return c.AgentPerformance.mutate(ctx, m)
	case *AgentPerformanceMetricMutation:
		return c.AgentPerformanceMetric.mutate(ctx, m)
	case *ErrorLogMutation:
		return c.ErrorLog.mutate(ctx, m)
	case *LeaderElectionMutation:
		return c.LeaderElection.mutate(ctx, m)
	case *LeaderHistoryMutation:
		return c.LeaderHistory.mutate(ctx, m)
	case *ManualTaskMutation:
		return c.ManualTask.mutate(ctx, m)
	case *ScalingDecisionMutation:
		return c.ScalingDecision.mutate(ctx, m)
	case *SubtaskMutation:
		return c.Subtask.mutate(ctx, m)
	case *SystemAlertMutation:
		return c.SystemAlert.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskDecompositionMutation:
		return c.TaskDecomposition.mutate(ctx, m)
	case *TaskQueueStatMutation:
		return c.TaskQueueStat.mutate(ctx, m)
	case *TaskWorkerMutation:
		return c.TaskWorker.mutate(ctx, m)
	case *WorkerEventMutation:
		return c.WorkerEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentPerformanceClient is a client for the AgentPerformance schema.
type AgentPerformanceClient struct {
	config
}

// NewAgentPerformanceClient returns a client for the AgentPerformance from the given config.
func NewAgentPerformanceClient(c config) *AgentPerformanceClient {
	return &AgentPerformanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentperformance.Hooks(f(g(h())))`.
func (c *AgentPerformanceClient) Use(hooks ...Hook) {
	c.hooks.AgentPerformance = append(c.hooks.AgentPerformance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentperformance.Intercept(f(g(h())))`.
func (c *AgentPerformanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPerformance = append(c.inters.AgentPerformance, interceptors...)
}

// Create returns a builder for creating a AgentPerformance entity.
func (c *AgentPerformanceClient) Create() *AgentPerformanceCreate {
	mutation := newAgentPerformanceMutation(c.config, OpCreate)
	return &AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPerformance entities.
func (c *AgentPerformanceClient) CreateBulk(builders ...*AgentPerformanceCreate) *AgentPerformanceCreateBulk {
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPerformanceClient) MapCreateBulk(slice any, setFunc func(*AgentPerformanceCreate, int)) *AgentPerformanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPerformanceCreateBulk{err: fmt.Errorf("calling to AgentPerformanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPerformanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPerformanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPerformance.
func (c *AgentPerformanceClient) Update() *AgentPerformanceUpdate {
	mutation := newAgentPerformanceMutation(c.config, OpUpdate)
	return &AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPerformanceClient) UpdateOne(_m *AgentPerformance) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformance(_m))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPerformanceClient) UpdateOneID(id string) *AgentPerformanceUpdateOne {
	mutation := newAgentPerformanceMutation(c.config, OpUpdateOne, withAgentPerformanceID(id))
	return &AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPerformance.
func (c *AgentPerformanceClient) Delete() *AgentPerformanceDelete {
	mutation := newAgentPerformanceMutation(c.config, OpDelete)
	return &AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPerformanceClient) DeleteOne(_m *AgentPerformance) *AgentPerformanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPerformanceClient) DeleteOneID(id string) *AgentPerformanceDeleteOne {
	builder := c.Delete().Where(agentperformance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPerformanceDeleteOne{builder}
}

// Query returns a query builder for AgentPerformance.
func (c *AgentPerformanceClient) Query() *AgentPerformanceQuery {
	return &AgentPerformanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPerformance},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPerformance entity by its id.
func (c *AgentPerformanceClient) Get(ctx context.Context, id string) (*AgentPerformance, error) {
	return c.Query().Where(agentperformance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPerformanceClient) GetX(ctx context.Context, id string) *AgentPerformance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPerformanceClient) Hooks() []Hook {
	return c.hooks.AgentPerformance
}

// Interceptors returns the client interceptors.
func (c *AgentPerformanceClient) Interceptors() []Interceptor {
	return c.inters.AgentPerformance
}

func (c *AgentPerformanceClient) mutate(ctx context.Context, m *AgentPerformanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPerformanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPerformanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPerformanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPerformanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPerformance mutation op: %q", m.Op())
	}
}

// AgentPerformanceMetricClient is a client for the AgentPerformanceMetric schema.
type AgentPerformanceMetricClient struct {
	config
}

// NewAgentPerformanceMetricClient returns a client for the AgentPerformanceMetric from the given config.
func NewAgentPerformanceMetricClient(c config) *AgentPerformanceMetricClient {
	return &AgentPerformanceMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentperformancemetric.Hooks(f(g(h())))`.
func (c *AgentPerformanceMetricClient) Use(hooks ...Hook) {
	c.hooks.AgentPerformanceMetric = append(c.hooks.AgentPerformanceMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentperformancemetric.Intercept(f(g(h())))`.
func (c *AgentPerformanceMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPerformanceMetric = append(c.inters.AgentPerformanceMetric, interceptors...)
}

// Create returns a builder for creating a AgentPerformanceMetric entity.
func (c *AgentPerformanceMetricClient) Create() *AgentPerformanceMetricCreate {
	mutation := newAgentPerformanceMetricMutation(c.config, OpCreate)
	return &AgentPerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPerformanceMetric entities.
func (c *AgentPerformanceMetricClient) CreateBulk(builders ...*AgentPerformanceMetricCreate) *AgentPerformanceMetricCreateBulk {
	return &AgentPerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPerformanceMetricClient) MapCreateBulk(slice any, setFunc func(*AgentPerformanceMetricCreate, int)) *AgentPerformanceMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPerformanceMetricCreateBulk{err: fmt.Errorf("calling to AgentPerformanceMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPerformanceMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPerformanceMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPerformanceMetric.
func (c *AgentPerformanceMetricClient) Update() *AgentPerformanceMetricUpdate {
	mutation := newAgentPerformanceMetricMutation(c.config, OpUpdate)
	return &AgentPerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPerformanceMetricClient) UpdateOne(_m *AgentPerformanceMetric) *AgentPerformanceMetricUpdateOne {
	mutation := newAgentPerformanceMetricMutation(c.config, OpUpdateOne, withAgentPerformanceMetric(_m))
	return &AgentPerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPerformanceMetricClient) UpdateOneID(id string) *AgentPerformanceMetricUpdateOne {
	mutation := newAgentPerformanceMetricMutation(c.config, OpUpdateOne, withAgentPerformanceMetricID(id))
	return &AgentPerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPerformanceMetric.
func (c *AgentPerformanceMetricClient) Delete() *AgentPerformanceMetricDelete {
	mutation := newAgentPerformanceMetricMutation(c.config, OpDelete)
	return &AgentPerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPerformanceMetricClient) DeleteOne(_m *AgentPerformanceMetric) *AgentPerformanceMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPerformanceMetricClient) DeleteOneID(id string) *AgentPerformanceMetricDeleteOne {
	builder := c.Delete().Where(agentperformancemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPerformanceMetricDeleteOne{builder}
}

// Query returns a query builder for AgentPerformanceMetric.
func (c *AgentPerformanceMetricClient) Query() *AgentPerformanceMetricQuery {
	return &AgentPerformanceMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPerformanceMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPerformanceMetric entity by its id.
func (c *AgentPerformanceMetricClient) Get(ctx context.Context, id string) (*AgentPerformanceMetric, error) {
	return c.Query().Where(agentperformancemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPerformanceMetricClient) GetX(ctx context.Context, id string) *AgentPerformanceMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPerformanceMetricClient) Hooks() []Hook {
	return c.hooks.AgentPerformanceMetric
}

// Interceptors returns the client interceptors.
func (c *AgentPerformanceMetricClient) Interceptors() []Interceptor {
	return c.inters.AgentPerformanceMetric
}

func (c *AgentPerformanceMetricClient) mutate(ctx context.Context, m *AgentPerformanceMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPerformanceMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPerformanceMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPerformanceMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPerformanceMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPerformanceMetric mutation op: %q", m.Op())
	}
}

// ErrorLogClient is a client for the ErrorLog schema.
type ErrorLogClient struct {
	config
}

// NewErrorLogClient returns a client for the ErrorLog from the given config.
func NewErrorLogClient(c config) *ErrorLogClient {
	return &ErrorLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorlog.Hooks(f(g(h())))`.
func (c *ErrorLogClient) Use(hooks ...Hook) {
	c.hooks.ErrorLog = append(c.hooks.ErrorLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorlog.Intercept(f(g(h())))`.
func (c *ErrorLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorLog = append(c.inters.ErrorLog, interceptors...)
}

// Create returns a builder for creating a ErrorLog entity.
func (c *ErrorLogClient) Create() *ErrorLogCreate {
	mutation := newErrorLogMutation(c.config, OpCreate)
	return &ErrorLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorLog entities.
func (c *ErrorLogClient) CreateBulk(builders ...*ErrorLogCreate) *ErrorLogCreateBulk {
	return &ErrorLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorLogClient) MapCreateBulk(slice any, setFunc func(*ErrorLogCreate, int)) *ErrorLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorLogCreateBulk{err: fmt.Errorf("calling to ErrorLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorLog.
func (c *ErrorLogClient) Update() *ErrorLogUpdate {
	mutation := newErrorLogMutation(c.config, OpUpdate)
	return &ErrorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorLogClient) UpdateOne(_m *ErrorLog) *ErrorLogUpdateOne {
	mutation := newErrorLogMutation(c.config, OpUpdateOne, withErrorLog(_m))
	return &ErrorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorLogClient) UpdateOneID(id string) *ErrorLogUpdateOne {
	mutation := newErrorLogMutation(c.config, OpUpdateOne, withErrorLogID(id))
	return &ErrorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorLog.
func (c *ErrorLogClient) Delete() *ErrorLogDelete {
	mutation := newErrorLogMutation(c.config, OpDelete)
	return &ErrorLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorLogClient) DeleteOne(_m *ErrorLog) *ErrorLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorLogClient) DeleteOneID(id string) *ErrorLogDeleteOne {
	builder := c.Delete().Where(errorlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorLogDeleteOne{builder}
}

// Query returns a query builder for ErrorLog.
func (c *ErrorLogClient) Query() *ErrorLogQuery {
	return &ErrorLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorLog entity by its id.
func (c *ErrorLogClient) Get(ctx context.Context, id string) (*ErrorLog, error) {
	return c.Query().Where(errorlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorLogClient) GetX(ctx context.Context, id string) *ErrorLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ErrorLogClient) Hooks() []Hook {
	return c.hooks.ErrorLog
}

// Interceptors returns the client interceptors.
func (c *ErrorLogClient) Interceptors() []Interceptor {
	return c.inters.ErrorLog
}

func (c *ErrorLogClient) mutate(ctx context.Context, m *ErrorLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorLog mutation op: %q", m.Op())
	}
}

// LeaderElectionClient is a client for the LeaderElection schema.
type LeaderElectionClient struct {
	config
}

// NewLeaderElectionClient returns a client for the LeaderElection from the given config.
func NewLeaderElectionClient(c config) *LeaderElectionClient {
	return &LeaderElectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leaderelection.Hooks(f(g(h())))`.
func (c *LeaderElectionClient) Use(hooks ...Hook) {
	c.hooks.LeaderElection = append(c.hooks.LeaderElection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leaderelection.Intercept(f(g(h())))`.
func (c *LeaderElectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeaderElection = append(c.inters.LeaderElection, interceptors...)
}

// Create returns a builder for creating a LeaderElection entity.
func (c *LeaderElectionClient) Create() *LeaderElectionCreate {
	mutation := newLeaderElectionMutation(c.config, OpCreate)
	return &LeaderElectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeaderElection entities.
func (c *LeaderElectionClient) CreateBulk(builders ...*LeaderElectionCreate) *LeaderElectionCreateBulk {
	return &LeaderElectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaderElectionClient) MapCreateBulk(slice any, setFunc func(*LeaderElectionCreate, int)) *LeaderElectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaderElectionCreateBulk{err: fmt.Errorf("calling to LeaderElectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaderElectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaderElectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeaderElection.
func (c *LeaderElectionClient) Update() *LeaderElectionUpdate {
	mutation := newLeaderElectionMutation(c.config, OpUpdate)
	return &LeaderElectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaderElectionClient) UpdateOne(_m *LeaderElection) *LeaderElectionUpdateOne {
	mutation := newLeaderElectionMutation(c.config, OpUpdateOne, withLeaderElection(_m))
	return &LeaderElectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaderElectionClient) UpdateOneID(id string) *LeaderElectionUpdateOne {
	mutation := newLeaderElectionMutation(c.config, OpUpdateOne, withLeaderElectionID(id))
	return &LeaderElectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeaderElection.
func (c *LeaderElectionClient) Delete() *LeaderElectionDelete {
	mutation := newLeaderElectionMutation(c.config, OpDelete)
	return &LeaderElectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaderElectionClient) DeleteOne(_m *LeaderElection) *LeaderElectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaderElectionClient) DeleteOneID(id string) *LeaderElectionDeleteOne {
	builder := c.Delete().Where(leaderelection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaderElectionDeleteOne{builder}
}

// Query returns a query builder for LeaderElection.
func (c *LeaderElectionClient) Query() *LeaderElectionQuery {
	return &LeaderElectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeaderElection},
		inters: c.Interceptors(),
	}
}

// Get returns a LeaderElection entity by its id.
func (c *LeaderElectionClient) Get(ctx context.Context, id string) (*LeaderElection, error) {
	return c.Query().Where(leaderelection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaderElectionClient) GetX(ctx context.Context, id string) *LeaderElection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaderElectionClient) Hooks() []Hook {
	return c.hooks.LeaderElection
}

// Interceptors returns the client interceptors.
func (c *LeaderElectionClient) Interceptors() []Interceptor {
	return c.inters.LeaderElection
}

func (c *LeaderElectionClient) mutate(ctx context.Context, m *LeaderElectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaderElectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaderElectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaderElectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaderElectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeaderElection mutation op: %q", m.Op())
	}
}

// LeaderHistoryClient is a client for the LeaderHistory schema.
type LeaderHistoryClient struct {
	config
}

// NewLeaderHistoryClient returns a client for the LeaderHistory from the given config.
func NewLeaderHistoryClient(c config) *LeaderHistoryClient {
	return &LeaderHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `leaderhistory.Hooks(f(g(h())))`.
func (c *LeaderHistoryClient) Use(hooks ...Hook) {
	c.hooks.LeaderHistory = append(c.hooks.LeaderHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `leaderhistory.Intercept(f(g(h())))`.
func (c *LeaderHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LeaderHistory = append(c.inters.LeaderHistory, interceptors...)
}

// Create returns a builder for creating a LeaderHistory entity.
func (c *LeaderHistoryClient) Create() *LeaderHistoryCreate {
	mutation := newLeaderHistoryMutation(c.config, OpCreate)
	return &LeaderHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LeaderHistory entities.
func (c *LeaderHistoryClient) CreateBulk(builders ...*LeaderHistoryCreate) *LeaderHistoryCreateBulk {
	return &LeaderHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaderHistoryClient) MapCreateBulk(slice any, setFunc func(*LeaderHistoryCreate, int)) *LeaderHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaderHistoryCreateBulk{err: fmt.Errorf("calling to LeaderHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaderHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaderHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LeaderHistory.
func (c *LeaderHistoryClient) Update() *LeaderHistoryUpdate {
	mutation := newLeaderHistoryMutation(c.config, OpUpdate)
	return &LeaderHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaderHistoryClient) UpdateOne(_m *LeaderHistory) *LeaderHistoryUpdateOne {
	mutation := newLeaderHistoryMutation(c.config, OpUpdateOne, withLeaderHistory(_m))
	return &LeaderHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaderHistoryClient) UpdateOneID(id string) *LeaderHistoryUpdateOne {
	mutation := newLeaderHistoryMutation(c.config, OpUpdateOne, withLeaderHistoryID(id))
	return &LeaderHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LeaderHistory.
func (c *LeaderHistoryClient) Delete() *LeaderHistoryDelete {
	mutation := newLeaderHistoryMutation(c.config, OpDelete)
	return &LeaderHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaderHistoryClient) DeleteOne(_m *LeaderHistory) *LeaderHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaderHistoryClient) DeleteOneID(id string) *LeaderHistoryDeleteOne {
	builder := c.Delete().Where(leaderhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaderHistoryDeleteOne{builder}
}

// Query returns a query builder for LeaderHistory.
func (c *LeaderHistoryClient) Query() *LeaderHistoryQuery {
	return &LeaderHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLeaderHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a LeaderHistory entity by its id.
func (c *LeaderHistoryClient) Get(ctx context.Context, id string) (*LeaderHistory, error) {
	return c.Query().Where(leaderhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaderHistoryClient) GetX(ctx context.Context, id string) *LeaderHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeaderHistoryClient) Hooks() []Hook {
	return c.hooks.LeaderHistory
}

// Interceptors returns the client interceptors.
func (c *LeaderHistoryClient) Interceptors() []Interceptor {
	return c.inters.LeaderHistory
}

func (c *LeaderHistoryClient) mutate(ctx context.Context, m *LeaderHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaderHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaderHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaderHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaderHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LeaderHistory mutation op: %q", m.Op())
	}
}

// ManualTaskClient is a client for the ManualTask schema.
type ManualTaskClient struct {
	config
}

// NewManualTaskClient returns a client for the ManualTask from the given config.
func NewManualTaskClient(c config) *ManualTaskClient {
	return &ManualTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `manualtask.Hooks(f(g(h())))`.
func (c *ManualTaskClient) Use(hooks ...Hook) {
	c.hooks.ManualTask = append(c.hooks.ManualTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `manualtask.Intercept(f(g(h())))`.
func (c *ManualTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ManualTask = append(c.inters.ManualTask, interceptors...)
}

// Create returns a builder for creating a ManualTask entity.
func (c *ManualTaskClient) Create() *ManualTaskCreate {
	mutation := newManualTaskMutation(c.config, OpCreate)
	return &ManualTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ManualTask entities.
func (c *ManualTaskClient) CreateBulk(builders ...*ManualTaskCreate) *ManualTaskCreateBulk {
	return &ManualTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ManualTaskClient) MapCreateBulk(slice any, setFunc func(*ManualTaskCreate, int)) *ManualTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ManualTaskCreateBulk{err: fmt.Errorf("calling to ManualTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ManualTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ManualTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ManualTask.
func (c *ManualTaskClient) Update() *ManualTaskUpdate {
	mutation := newManualTaskMutation(c.config, OpUpdate)
	return &ManualTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ManualTaskClient) UpdateOne(_m *ManualTask) *ManualTaskUpdateOne {
	mutation := newManualTaskMutation(c.config, OpUpdateOne, withManualTask(_m))
	return &ManualTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ManualTaskClient) UpdateOneID(id string) *ManualTaskUpdateOne {
	mutation := newManualTaskMutation(c.config, OpUpdateOne, withManualTaskID(id))
	return &ManualTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ManualTask.
func (c *ManualTaskClient) Delete() *ManualTaskDelete {
	mutation := newManualTaskMutation(c.config, OpDelete)
	return &ManualTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ManualTaskClient) DeleteOne(_m *ManualTask) *ManualTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ManualTaskClient) DeleteOneID(id string) *ManualTaskDeleteOne {
	builder := c.Delete().Where(manualtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ManualTaskDeleteOne{builder}
}

// Query returns a query builder for ManualTask.
func (c *ManualTaskClient) Query() *ManualTaskQuery {
	return &ManualTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeManualTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ManualTask entity by its id.
func (c *ManualTaskClient) Get(ctx context.Context, id string) (*ManualTask, error) {
	return c.Query().Where(manualtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ManualTaskClient) GetX(ctx context.Context, id string) *ManualTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ManualTaskClient) Hooks() []Hook {
	return c.hooks.ManualTask
}

// Interceptors returns the client interceptors.
func (c *ManualTaskClient) Interceptors() []Interceptor {
	return c.inters.ManualTask
}

func (c *ManualTaskClient) mutate(ctx context.Context, m *ManualTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ManualTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ManualTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ManualTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ManualTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ManualTask mutation op: %q", m.Op())
	}
}

// ScalingDecisionClient is a client for the ScalingDecision schema.
type ScalingDecisionClient struct {
	config
}

// NewScalingDecisionClient returns a client for the ScalingDecision from the given config.
func NewScalingDecisionClient(c config) *ScalingDecisionClient {
	return &ScalingDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scalingdecision.Hooks(f(g(h())))`.
func (c *ScalingDecisionClient) Use(hooks ...Hook) {
	c.hooks.ScalingDecision = append(c.hooks.ScalingDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scalingdecision.Intercept(f(g(h())))`.
func (c *ScalingDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScalingDecision = append(c.inters.ScalingDecision, interceptors...)
}

// Create returns a builder for creating a ScalingDecision entity.
func (c *ScalingDecisionClient) Create() *ScalingDecisionCreate {
	mutation := newScalingDecisionMutation(c.config, OpCreate)
	return &ScalingDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScalingDecision entities.
func (c *ScalingDecisionClient) CreateBulk(builders ...*ScalingDecisionCreate) *ScalingDecisionCreateBulk {
	return &ScalingDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScalingDecisionClient) MapCreateBulk(slice any, setFunc func(*ScalingDecisionCreate, int)) *ScalingDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScalingDecisionCreateBulk{err: fmt.Errorf("calling to ScalingDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScalingDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScalingDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScalingDecision.
func (c *ScalingDecisionClient) Update() *ScalingDecisionUpdate {
	mutation := newScalingDecisionMutation(c.config, OpUpdate)
	return &ScalingDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScalingDecisionClient) UpdateOne(_m *ScalingDecision) *ScalingDecisionUpdateOne {
	mutation := newScalingDecisionMutation(c.config, OpUpdateOne, withScalingDecision(_m))
	return &ScalingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScalingDecisionClient) UpdateOneID(id string) *ScalingDecisionUpdateOne {
	mutation := newScalingDecisionMutation(c.config, OpUpdateOne, withScalingDecisionID(id))
	return &ScalingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScalingDecision.
func (c *ScalingDecisionClient) Delete() *ScalingDecisionDelete {
	mutation := newScalingDecisionMutation(c.config, OpDelete)
	return &ScalingDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScalingDecisionClient) DeleteOne(_m *ScalingDecision) *ScalingDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScalingDecisionClient) DeleteOneID(id string) *ScalingDecisionDeleteOne {
	builder := c.Delete().Where(scalingdecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScalingDecisionDeleteOne{builder}
}

// Query returns a query builder for ScalingDecision.
func (c *ScalingDecisionClient) Query() *ScalingDecisionQuery {
	return &ScalingDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScalingDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a ScalingDecision entity by its id.
func (c *ScalingDecisionClient) Get(ctx context.Context, id string) (*ScalingDecision, error) {
	return c.Query().Where(scalingdecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScalingDecisionClient) GetX(ctx context.Context, id string) *ScalingDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScalingDecisionClient) Hooks() []Hook {
	return c.hooks.ScalingDecision
}

// Interceptors returns the client interceptors.
func (c *ScalingDecisionClient) Interceptors() []Interceptor {
	return c.inters.ScalingDecision
}

func (c *ScalingDecisionClient) mutate(ctx context.Context, m *ScalingDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScalingDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScalingDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScalingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScalingDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScalingDecision mutation op: %q", m.Op())
	}
}

// SubtaskClient is a client for the Subtask schema.
type SubtaskClient struct {
	config
}

// NewSubtaskClient returns a client for the Subtask from the given config.
func NewSubtaskClient(c config) *SubtaskClient {
	return &SubtaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtask.Hooks(f(g(h())))`.
func (c *SubtaskClient) Use(hooks ...Hook) {
	c.hooks.Subtask = append(c.hooks.Subtask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtask.Intercept(f(g(h())))`.
func (c *SubtaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtask = append(c.inters.Subtask, interceptors...)
}

// Create returns a builder for creating a Subtask entity.
func (c *SubtaskClient) Create() *SubtaskCreate {
	mutation := newSubtaskMutation(c.config, OpCreate)
	return &SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtask entities.
func (c *SubtaskClient) CreateBulk(builders ...*SubtaskCreate) *SubtaskCreateBulk {
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtaskClient) MapCreateBulk(slice any, setFunc func(*SubtaskCreate, int)) *SubtaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtaskCreateBulk{err: fmt.Errorf("calling to SubtaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtask.
func (c *SubtaskClient) Update() *SubtaskUpdate {
	mutation := newSubtaskMutation(c.config, OpUpdate)
	return &SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtaskClient) UpdateOne(_m *Subtask) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtask(_m))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtaskClient) UpdateOneID(id string) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtaskID(id))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtask.
func (c *SubtaskClient) Delete() *SubtaskDelete {
	mutation := newSubtaskMutation(c.config, OpDelete)
	return &SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtaskClient) DeleteOne(_m *Subtask) *SubtaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtaskClient) DeleteOneID(id string) *SubtaskDeleteOne {
	builder := c.Delete().Where(subtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtaskDeleteOne{builder}
}

// Query returns a query builder for Subtask.
func (c *SubtaskClient) Query() *SubtaskQuery {
	return &SubtaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtask},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtask entity by its id.
func (c *SubtaskClient) Get(ctx context.Context, id string) (*Subtask, error) {
	return c.Query().Where(subtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtaskClient) GetX(ctx context.Context, id string) *Subtask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Subtask.
func (c *SubtaskClient) QueryTask(_m *Subtask) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subtask.Table, subtask.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subtask.TaskTable, subtask.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubtaskClient) Hooks() []Hook {
	return c.hooks.Subtask
}

// Interceptors returns the client interceptors.
func (c *SubtaskClient) Interceptors() []Interceptor {
	return c.inters.Subtask
}

func (c *SubtaskClient) mutate(ctx context.Context, m *SubtaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtask mutation op: %q", m.Op())
	}
}

// SystemAlertClient is a client for the SystemAlert schema.
type SystemAlertClient struct {
	config
}

// NewSystemAlertClient returns a client for the SystemAlert from the given config.
func NewSystemAlertClient(c config) *SystemAlertClient {
	return &SystemAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemalert.Hooks(f(g(h())))`.
func (c *SystemAlertClient) Use(hooks ...Hook) {
	c.hooks.SystemAlert = append(c.hooks.SystemAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemalert.Intercept(f(g(h())))`.
func (c *SystemAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemAlert = append(c.inters.SystemAlert, interceptors...)
}

// Create returns a builder for creating a SystemAlert entity.
func (c *SystemAlertClient) Create() *SystemAlertCreate {
	mutation := newSystemAlertMutation(c.config, OpCreate)
	return &SystemAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemAlert entities.
func (c *SystemAlertClient) CreateBulk(builders ...*SystemAlertCreate) *SystemAlertCreateBulk {
	return &SystemAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemAlertClient) MapCreateBulk(slice any, setFunc func(*SystemAlertCreate, int)) *SystemAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemAlertCreateBulk{err: fmt.Errorf("calling to SystemAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemAlert.
func (c *SystemAlertClient) Update() *SystemAlertUpdate {
	mutation := newSystemAlertMutation(c.config, OpUpdate)
	return &SystemAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemAlertClient) UpdateOne(_m *SystemAlert) *SystemAlertUpdateOne {
	mutation := newSystemAlertMutation(c.config, OpUpdateOne, withSystemAlert(_m))
	return &SystemAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemAlertClient) UpdateOneID(id string) *SystemAlertUpdateOne {
	mutation := newSystemAlertMutation(c.config, OpUpdateOne, withSystemAlertID(id))
	return &SystemAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemAlert.
func (c *SystemAlertClient) Delete() *SystemAlertDelete {
	mutation := newSystemAlertMutation(c.config, OpDelete)
	return &SystemAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemAlertClient) DeleteOne(_m *SystemAlert) *SystemAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemAlertClient) DeleteOneID(id string) *SystemAlertDeleteOne {
	builder := c.Delete().Where(systemalert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemAlertDeleteOne{builder}
}

// Query returns a query builder for SystemAlert.
func (c *SystemAlertClient) Query() *SystemAlertQuery {
	return &SystemAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemAlert entity by its id.
func (c *SystemAlertClient) Get(ctx context.Context, id string) (*SystemAlert, error) {
	return c.Query().Where(systemalert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemAlertClient) GetX(ctx context.Context, id string) *SystemAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemAlertClient) Hooks() []Hook {
	return c.hooks.SystemAlert
}

// Interceptors returns the client interceptors.
func (c *SystemAlertClient) Interceptors() []Interceptor {
	return c.inters.SystemAlert
}

func (c *SystemAlertClient) mutate(ctx context.Context, m *SystemAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemAlert mutation op: %q", m.Op())
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

// QuerySubtasks queries the subtasks edge of a Task.
func (c *TaskClient) QuerySubtasks(_m *Task) *SubtaskQuery {
	query := (&SubtaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(subtask.Table, subtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SubtasksTable, task.SubtasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecomposition queries the decomposition edge of a Task.
func (c *TaskClient) QueryDecomposition(_m *Task) *TaskDecompositionQuery {
	query := (&TaskDecompositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskdecomposition.Table, taskdecomposition.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, task.DecompositionTable, task.DecompositionColumn),
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

// TaskDecompositionClient is a client for the TaskDecomposition schema.
type TaskDecompositionClient struct {
	config
}

// NewTaskDecompositionClient returns a client for the TaskDecomposition from the given config.
func NewTaskDecompositionClient(c config) *TaskDecompositionClient {
	return &TaskDecompositionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskdecomposition.Hooks(f(g(h())))`.
func (c *TaskDecompositionClient) Use(hooks ...Hook) {
	c.hooks.TaskDecomposition = append(c.hooks.TaskDecomposition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskdecomposition.Intercept(f(g(h())))`.
func (c *TaskDecompositionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskDecomposition = append(c.inters.TaskDecomposition, interceptors...)
}

// Create returns a builder for creating a TaskDecomposition entity.
func (c *TaskDecompositionClient) Create() *TaskDecompositionCreate {
	mutation := newTaskDecompositionMutation(c.config, OpCreate)
	return &TaskDecompositionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskDecomposition entities.
func (c *TaskDecompositionClient) CreateBulk(builders ...*TaskDecompositionCreate) *TaskDecompositionCreateBulk {
	return &TaskDecompositionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskDecompositionClient) MapCreateBulk(slice any, setFunc func(*TaskDecompositionCreate, int)) *TaskDecompositionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskDecompositionCreateBulk{err: fmt.Errorf("calling to TaskDecompositionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskDecompositionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskDecompositionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskDecomposition.
func (c *TaskDecompositionClient) Update() *TaskDecompositionUpdate {
	mutation := newTaskDecompositionMutation(c.config, OpUpdate)
	return &TaskDecompositionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskDecompositionClient) UpdateOne(_m *TaskDecomposition) *TaskDecompositionUpdateOne {
	mutation := newTaskDecompositionMutation(c.config, OpUpdateOne, withTaskDecomposition(_m))
	return &TaskDecompositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskDecompositionClient) UpdateOneID(id string) *TaskDecompositionUpdateOne {
	mutation := newTaskDecompositionMutation(c.config, OpUpdateOne, withTaskDecompositionID(id))
	return &TaskDecompositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskDecomposition.
func (c *TaskDecompositionClient) Delete() *TaskDecompositionDelete {
	mutation := newTaskDecompositionMutation(c.config, OpDelete)
	return &TaskDecompositionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskDecompositionClient) DeleteOne(_m *TaskDecomposition) *TaskDecompositionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskDecompositionClient) DeleteOneID(id string) *TaskDecompositionDeleteOne {
	builder := c.Delete().Where(taskdecomposition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDecompositionDeleteOne{builder}
}

// Query returns a query builder for TaskDecomposition.
func (c *TaskDecompositionClient) Query() *TaskDecompositionQuery {
	return &TaskDecompositionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskDecomposition},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskDecomposition entity by its id.
func (c *TaskDecompositionClient) Get(ctx context.Context, id string) (*TaskDecomposition, error) {
	return c.Query().Where(taskdecomposition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskDecompositionClient) GetX(ctx context.Context, id string) *TaskDecomposition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskDecomposition.
func (c *TaskDecompositionClient) QueryTask(_m *TaskDecomposition) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskdecomposition.Table, taskdecomposition.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, taskdecomposition.TaskTable, taskdecomposition.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskDecompositionClient) Hooks() []Hook {
	return c.hooks.TaskDecomposition
}

// Interceptors returns the client interceptors.
func (c *TaskDecompositionClient) Interceptors() []Interceptor {
	return c.inters.TaskDecomposition
}

func (c *TaskDecompositionClient) mutate(ctx context.Context, m *TaskDecompositionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskDecompositionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskDecompositionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskDecompositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDecompositionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskDecomposition mutation op: %q", m.Op())
	}
}

// TaskQueueStatClient is a client for the TaskQueueStat schema.
type TaskQueueStatClient struct {
	config
}

// NewTaskQueueStatClient returns a client for the TaskQueueStat from the given config.
func NewTaskQueueStatClient(c config) *TaskQueueStatClient {
	return &TaskQueueStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskqueuestat.Hooks(f(g(h())))`.
func (c *TaskQueueStatClient) Use(hooks ...Hook) {
	c.hooks.TaskQueueStat = append(c.hooks.TaskQueueStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskqueuestat.Intercept(f(g(h())))`.
func (c *TaskQueueStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskQueueStat = append(c.inters.TaskQueueStat, interceptors...)
}

// Create returns a builder for creating a TaskQueueStat entity.
func (c *TaskQueueStatClient) Create() *TaskQueueStatCreate {
	mutation := newTaskQueueStatMutation(c.config, OpCreate)
	return &TaskQueueStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskQueueStat entities.
func (c *TaskQueueStatClient) CreateBulk(builders ...*TaskQueueStatCreate) *TaskQueueStatCreateBulk {
	return &TaskQueueStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskQueueStatClient) MapCreateBulk(slice any, setFunc func(*TaskQueueStatCreate, int)) *TaskQueueStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskQueueStatCreateBulk{err: fmt.Errorf("calling to TaskQueueStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskQueueStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskQueueStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskQueueStat.
func (c *TaskQueueStatClient) Update() *TaskQueueStatUpdate {
	mutation := newTaskQueueStatMutation(c.config, OpUpdate)
	return &TaskQueueStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskQueueStatClient) UpdateOne(_m *TaskQueueStat) *TaskQueueStatUpdateOne {
	mutation := newTaskQueueStatMutation(c.config, OpUpdateOne, withTaskQueueStat(_m))
	return &TaskQueueStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskQueueStatClient) UpdateOneID(id string) *TaskQueueStatUpdateOne {
	mutation := newTaskQueueStatMutation(c.config, OpUpdateOne, withTaskQueueStatID(id))
	return &TaskQueueStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskQueueStat.
func (c *TaskQueueStatClient) Delete() *TaskQueueStatDelete {
	mutation := newTaskQueueStatMutation(c.config, OpDelete)
	return &TaskQueueStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskQueueStatClient) DeleteOne(_m *TaskQueueStat) *TaskQueueStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskQueueStatClient) DeleteOneID(id string) *TaskQueueStatDeleteOne {
	builder := c.Delete().Where(taskqueuestat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskQueueStatDeleteOne{builder}
}

// Query returns a query builder for TaskQueueStat.
func (c *TaskQueueStatClient) Query() *TaskQueueStatQuery {
	return &TaskQueueStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskQueueStat},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskQueueStat entity by its id.
func (c *TaskQueueStatClient) Get(ctx context.Context, id string) (*TaskQueueStat, error) {
	return c.Query().Where(taskqueuestat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskQueueStatClient) GetX(ctx context.Context, id string) *TaskQueueStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskQueueStatClient) Hooks() []Hook {
	return c.hooks.TaskQueueStat
}

// Interceptors returns the client interceptors.
func (c *TaskQueueStatClient) Interceptors() []Interceptor {
	return c.inters.TaskQueueStat
}

func (c *TaskQueueStatClient) mutate(ctx context.Context, m *TaskQueueStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskQueueStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskQueueStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskQueueStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskQueueStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskQueueStat mutation op: %q", m.Op())
	}
}

// TaskWorkerClient is a client for the TaskWorker schema.
type TaskWorkerClient struct {
	config
}

// NewTaskWorkerClient returns a client for the TaskWorker from the given config.
func NewTaskWorkerClient(c config) *TaskWorkerClient {
	return &TaskWorkerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskworker.Hooks(f(g(h())))`.
func (c *TaskWorkerClient) Use(hooks ...Hook) {
	c.hooks.TaskWorker = append(c.hooks.TaskWorker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskworker.Intercept(f(g(h())))`.
func (c *TaskWorkerClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskWorker = append(c.inters.TaskWorker, interceptors...)
}

// Create returns a builder for creating a TaskWorker entity.
func (c *TaskWorkerClient) Create() *TaskWorkerCreate {
	mutation := newTaskWorkerMutation(c.config, OpCreate)
	return &TaskWorkerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskWorker entities.
func (c *TaskWorkerClient) CreateBulk(builders ...*TaskWorkerCreate) *TaskWorkerCreateBulk {
	return &TaskWorkerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskWorkerClient) MapCreateBulk(slice any, setFunc func(*TaskWorkerCreate, int)) *TaskWorkerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskWorkerCreateBulk{err: fmt.Errorf("calling to TaskWorkerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskWorkerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskWorkerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskWorker.
func (c *TaskWorkerClient) Update() *TaskWorkerUpdate {
	mutation := newTaskWorkerMutation(c.config, OpUpdate)
	return &TaskWorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskWorkerClient) UpdateOne(_m *TaskWorker) *TaskWorkerUpdateOne {
	mutation := newTaskWorkerMutation(c.config, OpUpdateOne, withTaskWorker(_m))
	return &TaskWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskWorkerClient) UpdateOneID(id string) *TaskWorkerUpdateOne {
	mutation := newTaskWorkerMutation(c.config, OpUpdateOne, withTaskWorkerID(id))
	return &TaskWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskWorker.
func (c *TaskWorkerClient) Delete() *TaskWorkerDelete {
	mutation := newTaskWorkerMutation(c.config, OpDelete)
	return &TaskWorkerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskWorkerClient) DeleteOne(_m *TaskWorker) *TaskWorkerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskWorkerClient) DeleteOneID(id string) *TaskWorkerDeleteOne {
	builder := c.Delete().Where(taskworker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskWorkerDeleteOne{builder}
}

// Query returns a query builder for TaskWorker.
func (c *TaskWorkerClient) Query() *TaskWorkerQuery {
	return &TaskWorkerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskWorker},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskWorker entity by its id.
func (c *TaskWorkerClient) Get(ctx context.Context, id string) (*TaskWorker, error) {
	return c.Query().Where(taskworker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskWorkerClient) GetX(ctx context.Context, id string) *TaskWorker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskWorkerClient) Hooks() []Hook {
	return c.hooks.TaskWorker
}

// Interceptors returns the client interceptors.
func (c *TaskWorkerClient) Interceptors() []Interceptor {
	return c.inters.TaskWorker
}

func (c *TaskWorkerClient) mutate(ctx context.Context, m *TaskWorkerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskWorkerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskWorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskWorkerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskWorker mutation op: %q", m.Op())
	}
}

// WorkerEventClient is a client for the WorkerEvent schema.
type WorkerEventClient struct {
	config
}

// NewWorkerEventClient returns a client for the WorkerEvent from the given config.
func NewWorkerEventClient(c config) *WorkerEventClient {
	return &WorkerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workerevent.Hooks(f(g(h())))`.
func (c *WorkerEventClient) Use(hooks ...Hook) {
	c.hooks.WorkerEvent = append(c.hooks.WorkerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workerevent.Intercept(f(g(h())))`.
func (c *WorkerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkerEvent = append(c.inters.WorkerEvent, interceptors...)
}

// Create returns a builder for creating a WorkerEvent entity.
func (c *WorkerEventClient) Create() *WorkerEventCreate {
	mutation := newWorkerEventMutation(c.config, OpCreate)
	return &WorkerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkerEvent entities.
func (c *WorkerEventClient) CreateBulk(builders ...*WorkerEventCreate) *WorkerEventCreateBulk {
	return &WorkerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkerEventClient) MapCreateBulk(slice any, setFunc func(*WorkerEventCreate, int)) *WorkerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkerEventCreateBulk{err: fmt.Errorf("calling to WorkerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkerEvent.
func (c *WorkerEventClient) Update() *WorkerEventUpdate {
	mutation := newWorkerEventMutation(c.config, OpUpdate)
	return &WorkerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkerEventClient) UpdateOne(_m *WorkerEvent) *WorkerEventUpdateOne {
	mutation := newWorkerEventMutation(c.config, OpUpdateOne, withWorkerEvent(_m))
	return &WorkerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkerEventClient) UpdateOneID(id string) *WorkerEventUpdateOne {
	mutation := newWorkerEventMutation(c.config, OpUpdateOne, withWorkerEventID(id))
	return &WorkerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkerEvent.
func (c *WorkerEventClient) Delete() *WorkerEventDelete {
	mutation := newWorkerEventMutation(c.config, OpDelete)
	return &WorkerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkerEventClient) DeleteOne(_m *WorkerEvent) *WorkerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkerEventClient) DeleteOneID(id string) *WorkerEventDeleteOne {
	builder := c.Delete().Where(workerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkerEventDeleteOne{builder}
}

// Query returns a query builder for WorkerEvent.
func (c *WorkerEventClient) Query() *WorkerEventQuery {
	return &WorkerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkerEvent entity by its id.
func (c *WorkerEventClient) Get(ctx context.Context, id string) (*WorkerEvent, error) {
	return c.Query().Where(workerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkerEventClient) GetX(ctx context.Context, id string) *WorkerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkerEventClient) Hooks() []Hook {
	return c.hooks.WorkerEvent
}

// Interceptors returns the client interceptors.
func (c *WorkerEventClient) Interceptors() []Interceptor {
	return c.inters.WorkerEvent
}

func (c *WorkerEventClient) mutate(ctx context.Context, m *WorkerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkerEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentPerformance, AgentPerformanceMetric, ErrorLog, LeaderElection,
		LeaderHistory, ManualTask, ScalingDecision, Subtask, SystemAlert, Task,
		TaskDecomposition, TaskQueueStat, TaskWorker, WorkerEvent []ent.Hook
	}
	inters struct {
		Agent, AgentPerformance, AgentPerformanceMetric, ErrorLog, LeaderElection,
		LeaderHistory, ManualTask, ScalingDecision, Subtask, SystemAlert, Task,
		TaskDecomposition, TaskQueueStat, TaskWorker, WorkerEvent []ent.Interceptor
	}
)
