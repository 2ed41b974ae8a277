// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/agentperformance"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/leaderelection"
	"github.com/maestro-run/maestro/ent/leaderhistory"
	"github.com/maestro-run/maestro/ent/manualtask"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/scalingdecision"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/ent/workerevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent                  = "Agent"
	TypeAgentPerformance       = "AgentPerformance"
	TypeAgentPerformanceMetric = "AgentPerformanceMetric"
	TypeErrorLog               = "ErrorLog"
	TypeLeaderElection         = "LeaderElection"
	TypeLeaderHistory          = "LeaderHistory"
	TypeManualTask             = "ManualTask"
	TypeScalingDecision        = "ScalingDecision"
	TypeSubtask                = "Subtask"
	TypeSystemAlert            = "SystemAlert"
	TypeTask                   = "Task"
	TypeTaskDecomposition      = "TaskDecomposition"
	TypeTaskQueueStat          = "TaskQueueStat"
	TypeTaskWorker             = "TaskWorker"
	TypeWorkerEvent            = "WorkerEvent"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	kind               *agent.Kind
	system_prompt      *string
	capabilities       *[]string
	appendcapabilities []string
	domain             *string
	supervisor_id      *string
	_config            *map[string]interface{}
	allow_delegation   *bool
	max_iterations     *int
	addmax_iterations  *int
	status             *agent.Status
	created_at         *time.Time
	last_activity_at   *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *AgentMutation) SetKind(a agent.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentMutation) Kind() (r agent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldKind(ctx context.Context) (v agent.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentMutation) ResetKind() {
	m.kind = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agent.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agent.FieldSystemPrompt)
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
}

// SetDomain sets the "domain" field.
func (m *AgentMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *AgentMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *AgentMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[agent.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *AgentMutation) DomainCleared() bool {
	_, ok := m.clearedFields[agent.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *AgentMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, agent.FieldDomain)
}

// SetSupervisorID sets the "supervisor_id" field.
func (m *AgentMutation) SetSupervisorID(s string) {
	m.supervisor_id = &s
}

// SupervisorID returns the value of the "supervisor_id" field in the mutation.
func (m *AgentMutation) SupervisorID() (r string, exists bool) {
	v := m.supervisor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorID returns the old "supervisor_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSupervisorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorID: %w", err)
	}
	return oldValue.SupervisorID, nil
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (m *AgentMutation) ClearSupervisorID() {
	m.supervisor_id = nil
	m.clearedFields[agent.FieldSupervisorID] = struct{}{}
}

// SupervisorIDCleared returns if the "supervisor_id" field was cleared in this mutation.
func (m *AgentMutation) SupervisorIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldSupervisorID]
	return ok
}

// ResetSupervisorID resets all changes to the "supervisor_id" field.
func (m *AgentMutation) ResetSupervisorID() {
	m.supervisor_id = nil
	delete(m.clearedFields, agent.FieldSupervisorID)
}

// SetConfig sets the "config" field.
func (m *AgentMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agent.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agent.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agent.FieldConfig)
}

// SetAllowDelegation sets the "allow_delegation" field.
func (m *AgentMutation) SetAllowDelegation(b bool) {
	m.allow_delegation = &b
}

// AllowDelegation returns the value of the "allow_delegation" field in the mutation.
func (m *AgentMutation) AllowDelegation() (r bool, exists bool) {
	v := m.allow_delegation
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowDelegation returns the old "allow_delegation" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAllowDelegation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowDelegation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowDelegation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowDelegation: %w", err)
	}
	return oldValue.AllowDelegation, nil
}

// ResetAllowDelegation resets all changes to the "allow_delegation" field.
func (m *AgentMutation) ResetAllowDelegation() {
	m.allow_delegation = nil
}

// SetMaxIterations sets the "max_iterations" field.
func (m *AgentMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *AgentMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *AgentMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *AgentMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *AgentMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *AgentMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *AgentMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *AgentMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, agent.FieldKind)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.domain != nil {
		fields = append(fields, agent.FieldDomain)
	}
	if m.supervisor_id != nil {
		fields = append(fields, agent.FieldSupervisorID)
	}
	if m._config != nil {
		fields = append(fields, agent.FieldConfig)
	}
	if m.allow_delegation != nil {
		fields = append(fields, agent.FieldAllowDelegation)
	}
	if m.max_iterations != nil {
		fields = append(fields, agent.FieldMaxIterations)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, agent.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldKind:
		return m.Kind()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldDomain:
		return m.Domain()
	case agent.FieldSupervisorID:
		return m.SupervisorID()
	case agent.FieldConfig:
		return m.Config()
	case agent.FieldAllowDelegation:
		return m.AllowDelegation()
	case agent.FieldMaxIterations:
		return m.MaxIterations()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldKind:
		return m.OldKind(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldDomain:
		return m.OldDomain(ctx)
	case agent.FieldSupervisorID:
		return m.OldSupervisorID(ctx)
	case agent.FieldConfig:
		return m.OldConfig(ctx)
	case agent.FieldAllowDelegation:
		return m.OldAllowDelegation(ctx)
	case agent.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldKind:
		v, ok := value.(agent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case agent.FieldSupervisorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorID(v)
		return nil
	case agent.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agent.FieldAllowDelegation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowDelegation(v)
		return nil
	case agent.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addmax_iterations != nil {
		fields = append(fields, agent.FieldMaxIterations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldMaxIterations:
		return m.AddedMaxIterations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldSystemPrompt) {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.FieldCleared(agent.FieldDomain) {
		fields = append(fields, agent.FieldDomain)
	}
	if m.FieldCleared(agent.FieldSupervisorID) {
		fields = append(fields, agent.FieldSupervisorID)
	}
	if m.FieldCleared(agent.FieldConfig) {
		fields = append(fields, agent.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case agent.FieldDomain:
		m.ClearDomain()
		return nil
	case agent.FieldSupervisorID:
		m.ClearSupervisorID()
		return nil
	case agent.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldKind:
		m.ResetKind()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldDomain:
		m.ResetDomain()
		return nil
	case agent.FieldSupervisorID:
		m.ResetSupervisorID()
		return nil
	case agent.FieldConfig:
		m.ResetConfig()
		return nil
	case agent.FieldAllowDelegation:
		m.ResetAllowDelegation()
		return nil
	case agent.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentPerformanceMutation represents an operation that mutates the AgentPerformance nodes in the graph.
type AgentPerformanceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	agent_id                 *string
	day                      *time.Time
	total_executions         *int64
	addtotal_executions      *int64
	successful_executions    *int64
	addsuccessful_executions *int64
	failed_executions        *int64
	addfailed_executions     *int64
	avg_latency_ms           *float64
	addavg_latency_ms        *float64
	total_cost               *float64
	addtotal_cost            *float64
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*AgentPerformance, error)
	predicates               []predicate.AgentPerformance
}

var _ ent.Mutation = (*AgentPerformanceMutation)(nil)

// agentperformanceOption allows management of the mutation configuration using functional options.
type agentperformanceOption func(*AgentPerformanceMutation)

// newAgentPerformanceMutation creates new mutation for the AgentPerformance entity.
func newAgentPerformanceMutation(c config, op Op, opts ...agentperformanceOption) *AgentPerformanceMutation {
	m := &AgentPerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPerformanceID sets the ID field of the mutation.
func withAgentPerformanceID(id string) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPerformance
		)
		m.oldValue = func(ctx context.Context) (*AgentPerformance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPerformance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPerformance sets the old AgentPerformance of the mutation.
func withAgentPerformance(node *AgentPerformance) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		m.oldValue = func(context.Context) (*AgentPerformance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentPerformance entities.
func (m *AgentPerformanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPerformanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPerformanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPerformance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentPerformanceMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentPerformanceMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentPerformanceMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetDay sets the "day" field.
func (m *AgentPerformanceMutation) SetDay(t time.Time) {
	m.day = &t
}

// Day returns the value of the "day" field in the mutation.
func (m *AgentPerformanceMutation) Day() (r time.Time, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldDay(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *AgentPerformanceMutation) ResetDay() {
	m.day = nil
}

// SetTotalExecutions sets the "total_executions" field.
func (m *AgentPerformanceMutation) SetTotalExecutions(i int64) {
	m.total_executions = &i
	m.addtotal_executions = nil
}

// TotalExecutions returns the value of the "total_executions" field in the mutation.
func (m *AgentPerformanceMutation) TotalExecutions() (r int64, exists bool) {
	v := m.total_executions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExecutions returns the old "total_executions" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldTotalExecutions(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExecutions: %w", err)
	}
	return oldValue.TotalExecutions, nil
}

// AddTotalExecutions adds i to the "total_executions" field.
func (m *AgentPerformanceMutation) AddTotalExecutions(i int64) {
	if m.addtotal_executions != nil {
		*m.addtotal_executions += i
	} else {
		m.addtotal_executions = &i
	}
}

// AddedTotalExecutions returns the value that was added to the "total_executions" field in this mutation.
func (m *AgentPerformanceMutation) AddedTotalExecutions() (r int64, exists bool) {
	v := m.addtotal_executions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExecutions resets all changes to the "total_executions" field.
func (m *AgentPerformanceMutation) ResetTotalExecutions() {
	m.total_executions = nil
	m.addtotal_executions = nil
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (m *AgentPerformanceMutation) SetSuccessfulExecutions(i int64) {
	m.successful_executions = &i
	m.addsuccessful_executions = nil
}

// SuccessfulExecutions returns the value of the "successful_executions" field in the mutation.
func (m *AgentPerformanceMutation) SuccessfulExecutions() (r int64, exists bool) {
	v := m.successful_executions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulExecutions returns the old "successful_executions" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldSuccessfulExecutions(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulExecutions: %w", err)
	}
	return oldValue.SuccessfulExecutions, nil
}

// AddSuccessfulExecutions adds i to the "successful_executions" field.
func (m *AgentPerformanceMutation) AddSuccessfulExecutions(i int64) {
	if m.addsuccessful_executions != nil {
		*m.addsuccessful_executions += i
	} else {
		m.addsuccessful_executions = &i
	}
}

// AddedSuccessfulExecutions returns the value that was added to the "successful_executions" field in this mutation.
func (m *AgentPerformanceMutation) AddedSuccessfulExecutions() (r int64, exists bool) {
	v := m.addsuccessful_executions
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulExecutions resets all changes to the "successful_executions" field.
func (m *AgentPerformanceMutation) ResetSuccessfulExecutions() {
	m.successful_executions = nil
	m.addsuccessful_executions = nil
}

// SetFailedExecutions sets the "failed_executions" field.
func (m *AgentPerformanceMutation) SetFailedExecutions(i int64) {
	m.failed_executions = &i
	m.addfailed_executions = nil
}

// FailedExecutions returns the value of the "failed_executions" field in the mutation.
func (m *AgentPerformanceMutation) FailedExecutions() (r int64, exists bool) {
	v := m.failed_executions
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedExecutions returns the old "failed_executions" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldFailedExecutions(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedExecutions: %w", err)
	}
	return oldValue.FailedExecutions, nil
}

// AddFailedExecutions adds i to the "failed_executions" field.
func (m *AgentPerformanceMutation) AddFailedExecutions(i int64) {
	if m.addfailed_executions != nil {
		*m.addfailed_executions += i
	} else {
		m.addfailed_executions = &i
	}
}

// AddedFailedExecutions returns the value that was added to the "failed_executions" field in this mutation.
func (m *AgentPerformanceMutation) AddedFailedExecutions() (r int64, exists bool) {
	v := m.addfailed_executions
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedExecutions resets all changes to the "failed_executions" field.
func (m *AgentPerformanceMutation) ResetFailedExecutions() {
	m.failed_executions = nil
	m.addfailed_executions = nil
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (m *AgentPerformanceMutation) SetAvgLatencyMs(f float64) {
	m.avg_latency_ms = &f
	m.addavg_latency_ms = nil
}

// AvgLatencyMs returns the value of the "avg_latency_ms" field in the mutation.
func (m *AgentPerformanceMutation) AvgLatencyMs() (r float64, exists bool) {
	v := m.avg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatencyMs returns the old "avg_latency_ms" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAvgLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatencyMs: %w", err)
	}
	return oldValue.AvgLatencyMs, nil
}

// AddAvgLatencyMs adds f to the "avg_latency_ms" field.
func (m *AgentPerformanceMutation) AddAvgLatencyMs(f float64) {
	if m.addavg_latency_ms != nil {
		*m.addavg_latency_ms += f
	} else {
		m.addavg_latency_ms = &f
	}
}

// AddedAvgLatencyMs returns the value that was added to the "avg_latency_ms" field in this mutation.
func (m *AgentPerformanceMutation) AddedAvgLatencyMs() (r float64, exists bool) {
	v := m.addavg_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatencyMs resets all changes to the "avg_latency_ms" field.
func (m *AgentPerformanceMutation) ResetAvgLatencyMs() {
	m.avg_latency_ms = nil
	m.addavg_latency_ms = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *AgentPerformanceMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *AgentPerformanceMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *AgentPerformanceMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *AgentPerformanceMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *AgentPerformanceMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentPerformanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentPerformanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentPerformanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentPerformanceMutation builder.
func (m *AgentPerformanceMutation) Where(ps ...predicate.AgentPerformance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPerformance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPerformance).
func (m *AgentPerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPerformanceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_id != nil {
		fields = append(fields, agentperformance.FieldAgentID)
	}
	if m.day != nil {
		fields = append(fields, agentperformance.FieldDay)
	}
	if m.total_executions != nil {
		fields = append(fields, agentperformance.FieldTotalExecutions)
	}
	if m.successful_executions != nil {
		fields = append(fields, agentperformance.FieldSuccessfulExecutions)
	}
	if m.failed_executions != nil {
		fields = append(fields, agentperformance.FieldFailedExecutions)
	}
	if m.avg_latency_ms != nil {
		fields = append(fields, agentperformance.FieldAvgLatencyMs)
	}
	if m.total_cost != nil {
		fields = append(fields, agentperformance.FieldTotalCost)
	}
	if m.updated_at != nil {
		fields = append(fields, agentperformance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldAgentID:
		return m.AgentID()
	case agentperformance.FieldDay:
		return m.Day()
	case agentperformance.FieldTotalExecutions:
		return m.TotalExecutions()
	case agentperformance.FieldSuccessfulExecutions:
		return m.SuccessfulExecutions()
	case agentperformance.FieldFailedExecutions:
		return m.FailedExecutions()
	case agentperformance.FieldAvgLatencyMs:
		return m.AvgLatencyMs()
	case agentperformance.FieldTotalCost:
		return m.TotalCost()
	case agentperformance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentperformance.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentperformance.FieldDay:
		return m.OldDay(ctx)
	case agentperformance.FieldTotalExecutions:
		return m.OldTotalExecutions(ctx)
	case agentperformance.FieldSuccessfulExecutions:
		return m.OldSuccessfulExecutions(ctx)
	case agentperformance.FieldFailedExecutions:
		return m.OldFailedExecutions(ctx)
	case agentperformance.FieldAvgLatencyMs:
		return m.OldAvgLatencyMs(ctx)
	case agentperformance.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case agentperformance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPerformance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentperformance.FieldDay:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case agentperformance.FieldTotalExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExecutions(v)
		return nil
	case agentperformance.FieldSuccessfulExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulExecutions(v)
		return nil
	case agentperformance.FieldFailedExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedExecutions(v)
		return nil
	case agentperformance.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatencyMs(v)
		return nil
	case agentperformance.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case agentperformance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPerformanceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_executions != nil {
		fields = append(fields, agentperformance.FieldTotalExecutions)
	}
	if m.addsuccessful_executions != nil {
		fields = append(fields, agentperformance.FieldSuccessfulExecutions)
	}
	if m.addfailed_executions != nil {
		fields = append(fields, agentperformance.FieldFailedExecutions)
	}
	if m.addavg_latency_ms != nil {
		fields = append(fields, agentperformance.FieldAvgLatencyMs)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, agentperformance.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPerformanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldTotalExecutions:
		return m.AddedTotalExecutions()
	case agentperformance.FieldSuccessfulExecutions:
		return m.AddedSuccessfulExecutions()
	case agentperformance.FieldFailedExecutions:
		return m.AddedFailedExecutions()
	case agentperformance.FieldAvgLatencyMs:
		return m.AddedAvgLatencyMs()
	case agentperformance.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldTotalExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExecutions(v)
		return nil
	case agentperformance.FieldSuccessfulExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulExecutions(v)
		return nil
	case agentperformance.FieldFailedExecutions:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedExecutions(v)
		return nil
	case agentperformance.FieldAvgLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatencyMs(v)
		return nil
	case agentperformance.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPerformanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentPerformance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ResetField(name string) error {
	switch name {
	case agentperformance.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentperformance.FieldDay:
		m.ResetDay()
		return nil
	case agentperformance.FieldTotalExecutions:
		m.ResetTotalExecutions()
		return nil
	case agentperformance.FieldSuccessfulExecutions:
		m.ResetSuccessfulExecutions()
		return nil
	case agentperformance.FieldFailedExecutions:
		m.ResetFailedExecutions()
		return nil
	case agentperformance.FieldAvgLatencyMs:
		m.ResetAvgLatencyMs()
		return nil
	case agentperformance.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case agentperformance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPerformanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPerformanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPerformanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPerformanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance edge %s", name)
}

// AgentPerformanceMetricMutation represents an operation that mutates the AgentPerformanceMetric nodes in the graph.
type AgentPerformanceMetricMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	metric_type   *agentperformancemetric.MetricType
	value         *float64
	addvalue      *float64
	tags          *map[string]string
	recorded_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentPerformanceMetric, error)
	predicates    []predicate.AgentPerformanceMetric
}

var _ ent.Mutation = (*AgentPerformanceMetricMutation)(nil)

// agentperformancemetricOption allows management of the mutation configuration using functional options.
type agentperformancemetricOption func(*AgentPerformanceMetricMutation)

// newAgentPerformanceMetricMutation creates new mutation for the AgentPerformanceMetric entity.
func newAgentPerformanceMetricMutation(c config, op Op, opts ...agentperformancemetricOption) *AgentPerformanceMetricMutation {
	m := &AgentPerformanceMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPerformanceMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPerformanceMetricID sets the ID field of the mutation.
func withAgentPerformanceMetricID(id string) agentperformancemetricOption {
	return func(m *AgentPerformanceMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPerformanceMetric
		)
		m.oldValue = func(ctx context.Context) (*AgentPerformanceMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPerformanceMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPerformanceMetric sets the old AgentPerformanceMetric of the mutation.
func withAgentPerformanceMetric(node *AgentPerformanceMetric) agentperformancemetricOption {
	return func(m *AgentPerformanceMetricMutation) {
		m.oldValue = func(context.Context) (*AgentPerformanceMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPerformanceMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPerformanceMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentPerformanceMetric entities.
func (m *AgentPerformanceMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPerformanceMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPerformanceMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPerformanceMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentPerformanceMetricMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentPerformanceMetricMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentPerformanceMetric entity.
// If the AgentPerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMetricMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentPerformanceMetricMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetMetricType sets the "metric_type" field.
func (m *AgentPerformanceMetricMutation) SetMetricType(at agentperformancemetric.MetricType) {
	m.metric_type = &at
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *AgentPerformanceMetricMutation) MetricType() (r agentperformancemetric.MetricType, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the AgentPerformanceMetric entity.
// If the AgentPerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMetricMutation) OldMetricType(ctx context.Context) (v agentperformancemetric.MetricType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *AgentPerformanceMetricMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetValue sets the "value" field.
func (m *AgentPerformanceMetricMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *AgentPerformanceMetricMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the AgentPerformanceMetric entity.
// If the AgentPerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMetricMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *AgentPerformanceMetricMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *AgentPerformanceMetricMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *AgentPerformanceMetricMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetTags sets the "tags" field.
func (m *AgentPerformanceMetricMutation) SetTags(value map[string]string) {
	m.tags = &value
}

// Tags returns the value of the "tags" field in the mutation.
func (m *AgentPerformanceMetricMutation) Tags() (r map[string]string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the AgentPerformanceMetric entity.
// If the AgentPerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMetricMutation) OldTags(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ClearTags clears the value of the "tags" field.
func (m *AgentPerformanceMetricMutation) ClearTags() {
	m.tags = nil
	m.clearedFields[agentperformancemetric.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *AgentPerformanceMetricMutation) TagsCleared() bool {
	_, ok := m.clearedFields[agentperformancemetric.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *AgentPerformanceMetricMutation) ResetTags() {
	m.tags = nil
	delete(m.clearedFields, agentperformancemetric.FieldTags)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *AgentPerformanceMetricMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *AgentPerformanceMetricMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the AgentPerformanceMetric entity.
// If the AgentPerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMetricMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *AgentPerformanceMetricMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the AgentPerformanceMetricMutation builder.
func (m *AgentPerformanceMetricMutation) Where(ps ...predicate.AgentPerformanceMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPerformanceMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPerformanceMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPerformanceMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPerformanceMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPerformanceMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPerformanceMetric).
func (m *AgentPerformanceMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPerformanceMetricMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.agent_id != nil {
		fields = append(fields, agentperformancemetric.FieldAgentID)
	}
	if m.metric_type != nil {
		fields = append(fields, agentperformancemetric.FieldMetricType)
	}
	if m.value != nil {
		fields = append(fields, agentperformancemetric.FieldValue)
	}
	if m.tags != nil {
		fields = append(fields, agentperformancemetric.FieldTags)
	}
	if m.recorded_at != nil {
		fields = append(fields, agentperformancemetric.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPerformanceMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentperformancemetric.FieldAgentID:
		return m.AgentID()
	case agentperformancemetric.FieldMetricType:
		return m.MetricType()
	case agentperformancemetric.FieldValue:
		return m.Value()
	case agentperformancemetric.FieldTags:
		return m.Tags()
	case agentperformancemetric.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPerformanceMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentperformancemetric.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentperformancemetric.FieldMetricType:
		return m.OldMetricType(ctx)
	case agentperformancemetric.FieldValue:
		return m.OldValue(ctx)
	case agentperformancemetric.FieldTags:
		return m.OldTags(ctx)
	case agentperformancemetric.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPerformanceMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentperformancemetric.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentperformancemetric.FieldMetricType:
		v, ok := value.(agentperformancemetric.MetricType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case agentperformancemetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case agentperformancemetric.FieldTags:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case agentperformancemetric.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformanceMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPerformanceMetricMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, agentperformancemetric.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPerformanceMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentperformancemetric.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentperformancemetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformanceMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPerformanceMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentperformancemetric.FieldTags) {
		fields = append(fields, agentperformancemetric.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPerformanceMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPerformanceMetricMutation) ClearField(name string) error {
	switch name {
	case agentperformancemetric.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformanceMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPerformanceMetricMutation) ResetField(name string) error {
	switch name {
	case agentperformancemetric.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentperformancemetric.FieldMetricType:
		m.ResetMetricType()
		return nil
	case agentperformancemetric.FieldValue:
		m.ResetValue()
		return nil
	case agentperformancemetric.FieldTags:
		m.ResetTags()
		return nil
	case agentperformancemetric.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformanceMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPerformanceMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPerformanceMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPerformanceMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPerformanceMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPerformanceMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPerformanceMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPerformanceMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformanceMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPerformanceMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformanceMetric edge %s", name)
}

// ErrorLogMutation represents an operation that mutates the ErrorLog nodes in the graph.
type ErrorLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source        *string
	message       *string
	details       *map[string]interface{}
	task_id       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ErrorLog, error)
	predicates    []predicate.ErrorLog
}

var _ ent.Mutation = (*ErrorLogMutation)(nil)

// errorlogOption allows management of the mutation configuration using functional options.
type errorlogOption func(*ErrorLogMutation)

// newErrorLogMutation creates new mutation for the ErrorLog entity.
func newErrorLogMutation(c config, op Op, opts ...errorlogOption) *ErrorLogMutation {
	m := &ErrorLogMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorLogID sets the ID field of the mutation.
func withErrorLogID(id string) errorlogOption {
	return func(m *ErrorLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorLog
		)
		m.oldValue = func(ctx context.Context) (*ErrorLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorLog sets the old ErrorLog of the mutation.
func withErrorLog(node *ErrorLog) errorlogOption {
	return func(m *ErrorLogMutation) {
		m.oldValue = func(context.Context) (*ErrorLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ErrorLog entities.
func (m *ErrorLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *ErrorLogMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ErrorLogMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ErrorLog entity.
// If the ErrorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorLogMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ErrorLogMutation) ResetSource() {
	m.source = nil
}

// SetMessage sets the "message" field.
func (m *ErrorLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ErrorLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ErrorLog entity.
// If the ErrorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ErrorLogMutation) ResetMessage() {
	m.message = nil
}

// SetDetails sets the "details" field.
func (m *ErrorLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ErrorLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ErrorLog entity.
// If the ErrorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ErrorLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[errorlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ErrorLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[errorlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ErrorLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, errorlog.FieldDetails)
}

// SetTaskID sets the "task_id" field.
func (m *ErrorLogMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ErrorLogMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ErrorLog entity.
// If the ErrorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorLogMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ErrorLogMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[errorlog.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ErrorLogMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[errorlog.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ErrorLogMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, errorlog.FieldTaskID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ErrorLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ErrorLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ErrorLog entity.
// If the ErrorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ErrorLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ErrorLogMutation builder.
func (m *ErrorLogMutation) Where(ps ...predicate.ErrorLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorLog).
func (m *ErrorLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source != nil {
		fields = append(fields, errorlog.FieldSource)
	}
	if m.message != nil {
		fields = append(fields, errorlog.FieldMessage)
	}
	if m.details != nil {
		fields = append(fields, errorlog.FieldDetails)
	}
	if m.task_id != nil {
		fields = append(fields, errorlog.FieldTaskID)
	}
	if m.created_at != nil {
		fields = append(fields, errorlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorlog.FieldSource:
		return m.Source()
	case errorlog.FieldMessage:
		return m.Message()
	case errorlog.FieldDetails:
		return m.Details()
	case errorlog.FieldTaskID:
		return m.TaskID()
	case errorlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorlog.FieldSource:
		return m.OldSource(ctx)
	case errorlog.FieldMessage:
		return m.OldMessage(ctx)
	case errorlog.FieldDetails:
		return m.OldDetails(ctx)
	case errorlog.FieldTaskID:
		return m.OldTaskID(ctx)
	case errorlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorlog.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case errorlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case errorlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case errorlog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case errorlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ErrorLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(errorlog.FieldDetails) {
		fields = append(fields, errorlog.FieldDetails)
	}
	if m.FieldCleared(errorlog.FieldTaskID) {
		fields = append(fields, errorlog.FieldTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorLogMutation) ClearField(name string) error {
	switch name {
	case errorlog.FieldDetails:
		m.ClearDetails()
		return nil
	case errorlog.FieldTaskID:
		m.ClearTaskID()
		return nil
	}
	return fmt.Errorf("unknown ErrorLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorLogMutation) ResetField(name string) error {
	switch name {
	case errorlog.FieldSource:
		m.ResetSource()
		return nil
	case errorlog.FieldMessage:
		m.ResetMessage()
		return nil
	case errorlog.FieldDetails:
		m.ResetDetails()
		return nil
	case errorlog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case errorlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ErrorLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ErrorLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ErrorLog edge %s", name)
}

// LeaderElectionMutation represents an operation that mutates the LeaderElection nodes in the graph.
type LeaderElectionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	node_id          *string
	term             *int64
	addterm          *int64
	lease_expires_at *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LeaderElection, error)
	predicates       []predicate.LeaderElection
}

var _ ent.Mutation = (*LeaderElectionMutation)(nil)

// leaderelectionOption allows management of the mutation configuration using functional options.
type leaderelectionOption func(*LeaderElectionMutation)

// newLeaderElectionMutation creates new mutation for the LeaderElection entity.
func newLeaderElectionMutation(c config, op Op, opts ...leaderelectionOption) *LeaderElectionMutation {
	m := &LeaderElectionMutation{
		config:        c,
		op:            op,
		typ:           TypeLeaderElection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaderElectionID sets the ID field of the mutation.
func withLeaderElectionID(id string) leaderelectionOption {
	return func(m *LeaderElectionMutation) {
		var (
			err   error
			once  sync.Once
			value *LeaderElection
		)
		m.oldValue = func(ctx context.Context) (*LeaderElection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeaderElection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeaderElection sets the old LeaderElection of the mutation.
func withLeaderElection(node *LeaderElection) leaderelectionOption {
	return func(m *LeaderElectionMutation) {
		m.oldValue = func(context.Context) (*LeaderElection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaderElectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaderElectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LeaderElection entities.
func (m *LeaderElectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaderElectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaderElectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeaderElection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeID sets the "node_id" field.
func (m *LeaderElectionMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *LeaderElectionMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the LeaderElection entity.
// If the LeaderElection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderElectionMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *LeaderElectionMutation) ResetNodeID() {
	m.node_id = nil
}

// SetTerm sets the "term" field.
func (m *LeaderElectionMutation) SetTerm(i int64) {
	m.term = &i
	m.addterm = nil
}

// Term returns the value of the "term" field in the mutation.
func (m *LeaderElectionMutation) Term() (r int64, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the LeaderElection entity.
// If the LeaderElection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderElectionMutation) OldTerm(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// AddTerm adds i to the "term" field.
func (m *LeaderElectionMutation) AddTerm(i int64) {
	if m.addterm != nil {
		*m.addterm += i
	} else {
		m.addterm = &i
	}
}

// AddedTerm returns the value that was added to the "term" field in this mutation.
func (m *LeaderElectionMutation) AddedTerm() (r int64, exists bool) {
	v := m.addterm
	if v == nil {
		return
	}
	return *v, true
}

// ResetTerm resets all changes to the "term" field.
func (m *LeaderElectionMutation) ResetTerm() {
	m.term = nil
	m.addterm = nil
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *LeaderElectionMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *LeaderElectionMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the LeaderElection entity.
// If the LeaderElection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderElectionMutation) OldLeaseExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *LeaderElectionMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeaderElectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeaderElectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LeaderElection entity.
// If the LeaderElection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderElectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeaderElectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LeaderElectionMutation builder.
func (m *LeaderElectionMutation) Where(ps ...predicate.LeaderElection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaderElectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaderElectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeaderElection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaderElectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaderElectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeaderElection).
func (m *LeaderElectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaderElectionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.node_id != nil {
		fields = append(fields, leaderelection.FieldNodeID)
	}
	if m.term != nil {
		fields = append(fields, leaderelection.FieldTerm)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, leaderelection.FieldLeaseExpiresAt)
	}
	if m.updated_at != nil {
		fields = append(fields, leaderelection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaderElectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leaderelection.FieldNodeID:
		return m.NodeID()
	case leaderelection.FieldTerm:
		return m.Term()
	case leaderelection.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case leaderelection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaderElectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leaderelection.FieldNodeID:
		return m.OldNodeID(ctx)
	case leaderelection.FieldTerm:
		return m.OldTerm(ctx)
	case leaderelection.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case leaderelection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeaderElection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderElectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leaderelection.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case leaderelection.FieldTerm:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case leaderelection.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case leaderelection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderElection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaderElectionMutation) AddedFields() []string {
	var fields []string
	if m.addterm != nil {
		fields = append(fields, leaderelection.FieldTerm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaderElectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leaderelection.FieldTerm:
		return m.AddedTerm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderElectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leaderelection.FieldTerm:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTerm(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderElection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaderElectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaderElectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaderElectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LeaderElection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaderElectionMutation) ResetField(name string) error {
	switch name {
	case leaderelection.FieldNodeID:
		m.ResetNodeID()
		return nil
	case leaderelection.FieldTerm:
		m.ResetTerm()
		return nil
	case leaderelection.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case leaderelection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeaderElection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaderElectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaderElectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaderElectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaderElectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaderElectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaderElectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaderElectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LeaderElection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaderElectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LeaderElection edge %s", name)
}

// LeaderHistoryMutation represents an operation that mutates the LeaderHistory nodes in the graph.
type LeaderHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	role          *string
	old_node_id   *string
	new_node_id   *string
	term          *int64
	addterm       *int64
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LeaderHistory, error)
	predicates    []predicate.LeaderHistory
}

var _ ent.Mutation = (*LeaderHistoryMutation)(nil)

// leaderhistoryOption allows management of the mutation configuration using functional options.
type leaderhistoryOption func(*LeaderHistoryMutation)

// newLeaderHistoryMutation creates new mutation for the LeaderHistory entity.
func newLeaderHistoryMutation(c config, op Op, opts ...leaderhistoryOption) *LeaderHistoryMutation {
	m := &LeaderHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeaderHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaderHistoryID sets the ID field of the mutation.
func withLeaderHistoryID(id string) leaderhistoryOption {
	return func(m *LeaderHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeaderHistory
		)
		m.oldValue = func(ctx context.Context) (*LeaderHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeaderHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeaderHistory sets the old LeaderHistory of the mutation.
func withLeaderHistory(node *LeaderHistory) leaderhistoryOption {
	return func(m *LeaderHistoryMutation) {
		m.oldValue = func(context.Context) (*LeaderHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaderHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaderHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LeaderHistory entities.
func (m *LeaderHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaderHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaderHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeaderHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *LeaderHistoryMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LeaderHistoryMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *LeaderHistoryMutation) ResetRole() {
	m.role = nil
}

// SetOldNodeID sets the "old_node_id" field.
func (m *LeaderHistoryMutation) SetOldNodeID(s string) {
	m.old_node_id = &s
}

// OldNodeID returns the value of the "old_node_id" field in the mutation.
func (m *LeaderHistoryMutation) OldNodeID() (r string, exists bool) {
	v := m.old_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOldNodeID returns the old "old_node_id" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldOldNodeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldNodeID: %w", err)
	}
	return oldValue.OldNodeID, nil
}

// ClearOldNodeID clears the value of the "old_node_id" field.
func (m *LeaderHistoryMutation) ClearOldNodeID() {
	m.old_node_id = nil
	m.clearedFields[leaderhistory.FieldOldNodeID] = struct{}{}
}

// OldNodeIDCleared returns if the "old_node_id" field was cleared in this mutation.
func (m *LeaderHistoryMutation) OldNodeIDCleared() bool {
	_, ok := m.clearedFields[leaderhistory.FieldOldNodeID]
	return ok
}

// ResetOldNodeID resets all changes to the "old_node_id" field.
func (m *LeaderHistoryMutation) ResetOldNodeID() {
	m.old_node_id = nil
	delete(m.clearedFields, leaderhistory.FieldOldNodeID)
}

// SetNewNodeID sets the "new_node_id" field.
func (m *LeaderHistoryMutation) SetNewNodeID(s string) {
	m.new_node_id = &s
}

// NewNodeID returns the value of the "new_node_id" field in the mutation.
func (m *LeaderHistoryMutation) NewNodeID() (r string, exists bool) {
	v := m.new_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNewNodeID returns the old "new_node_id" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldNewNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewNodeID: %w", err)
	}
	return oldValue.NewNodeID, nil
}

// ResetNewNodeID resets all changes to the "new_node_id" field.
func (m *LeaderHistoryMutation) ResetNewNodeID() {
	m.new_node_id = nil
}

// SetTerm sets the "term" field.
func (m *LeaderHistoryMutation) SetTerm(i int64) {
	m.term = &i
	m.addterm = nil
}

// Term returns the value of the "term" field in the mutation.
func (m *LeaderHistoryMutation) Term() (r int64, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldTerm(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// AddTerm adds i to the "term" field.
func (m *LeaderHistoryMutation) AddTerm(i int64) {
	if m.addterm != nil {
		*m.addterm += i
	} else {
		m.addterm = &i
	}
}

// AddedTerm returns the value that was added to the "term" field in this mutation.
func (m *LeaderHistoryMutation) AddedTerm() (r int64, exists bool) {
	v := m.addterm
	if v == nil {
		return
	}
	return *v, true
}

// ResetTerm resets all changes to the "term" field.
func (m *LeaderHistoryMutation) ResetTerm() {
	m.term = nil
	m.addterm = nil
}

// SetReason sets the "reason" field.
func (m *LeaderHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LeaderHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *LeaderHistoryMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeaderHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeaderHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeaderHistory entity.
// If the LeaderHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaderHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeaderHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LeaderHistoryMutation builder.
func (m *LeaderHistoryMutation) Where(ps ...predicate.LeaderHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaderHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaderHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeaderHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaderHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaderHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeaderHistory).
func (m *LeaderHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaderHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.role != nil {
		fields = append(fields, leaderhistory.FieldRole)
	}
	if m.old_node_id != nil {
		fields = append(fields, leaderhistory.FieldOldNodeID)
	}
	if m.new_node_id != nil {
		fields = append(fields, leaderhistory.FieldNewNodeID)
	}
	if m.term != nil {
		fields = append(fields, leaderhistory.FieldTerm)
	}
	if m.reason != nil {
		fields = append(fields, leaderhistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, leaderhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaderHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leaderhistory.FieldRole:
		return m.Role()
	case leaderhistory.FieldOldNodeID:
		return m.OldNodeID()
	case leaderhistory.FieldNewNodeID:
		return m.NewNodeID()
	case leaderhistory.FieldTerm:
		return m.Term()
	case leaderhistory.FieldReason:
		return m.Reason()
	case leaderhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaderHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leaderhistory.FieldRole:
		return m.OldRole(ctx)
	case leaderhistory.FieldOldNodeID:
		return m.OldOldNodeID(ctx)
	case leaderhistory.FieldNewNodeID:
		return m.OldNewNodeID(ctx)
	case leaderhistory.FieldTerm:
		return m.OldTerm(ctx)
	case leaderhistory.FieldReason:
		return m.OldReason(ctx)
	case leaderhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeaderHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leaderhistory.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case leaderhistory.FieldOldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldNodeID(v)
		return nil
	case leaderhistory.FieldNewNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewNodeID(v)
		return nil
	case leaderhistory.FieldTerm:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case leaderhistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case leaderhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaderHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addterm != nil {
		fields = append(fields, leaderhistory.FieldTerm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaderHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leaderhistory.FieldTerm:
		return m.AddedTerm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaderHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leaderhistory.FieldTerm:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTerm(v)
		return nil
	}
	return fmt.Errorf("unknown LeaderHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaderHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leaderhistory.FieldOldNodeID) {
		fields = append(fields, leaderhistory.FieldOldNodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaderHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaderHistoryMutation) ClearField(name string) error {
	switch name {
	case leaderhistory.FieldOldNodeID:
		m.ClearOldNodeID()
		return nil
	}
	return fmt.Errorf("unknown LeaderHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaderHistoryMutation) ResetField(name string) error {
	switch name {
	case leaderhistory.FieldRole:
		m.ResetRole()
		return nil
	case leaderhistory.FieldOldNodeID:
		m.ResetOldNodeID()
		return nil
	case leaderhistory.FieldNewNodeID:
		m.ResetNewNodeID()
		return nil
	case leaderhistory.FieldTerm:
		m.ResetTerm()
		return nil
	case leaderhistory.FieldReason:
		m.ResetReason()
		return nil
	case leaderhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeaderHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaderHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaderHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaderHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaderHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaderHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaderHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaderHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LeaderHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaderHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LeaderHistory edge %s", name)
}

// ManualTaskMutation represents an operation that mutates the ManualTask nodes in the graph.
type ManualTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	category      *string
	title         *string
	description   *string
	priority      *int
	addpriority   *int
	source_system *string
	source_id     *string
	status        *manualtask.Status
	metadata      *map[string]interface{}
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ManualTask, error)
	predicates    []predicate.ManualTask
}

var _ ent.Mutation = (*ManualTaskMutation)(nil)

// manualtaskOption allows management of the mutation configuration using functional options.
type manualtaskOption func(*ManualTaskMutation)

// newManualTaskMutation creates new mutation for the ManualTask entity.
func newManualTaskMutation(c config, op Op, opts ...manualtaskOption) *ManualTaskMutation {
	m := &ManualTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeManualTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withManualTaskID sets the ID field of the mutation.
func withManualTaskID(id string) manualtaskOption {
	return func(m *ManualTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ManualTask
		)
		m.oldValue = func(ctx context.Context) (*ManualTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ManualTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withManualTask sets the old ManualTask of the mutation.
func withManualTask(node *ManualTask) manualtaskOption {
	return func(m *ManualTaskMutation) {
		m.oldValue = func(context.Context) (*ManualTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ManualTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ManualTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ManualTask entities.
func (m *ManualTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ManualTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ManualTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ManualTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *ManualTaskMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ManualTaskMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ManualTaskMutation) ResetCategory() {
	m.category = nil
}

// SetTitle sets the "title" field.
func (m *ManualTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ManualTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ManualTaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ManualTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ManualTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ManualTaskMutation) ResetDescription() {
	m.description = nil
}

// SetPriority sets the "priority" field.
func (m *ManualTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ManualTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ManualTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ManualTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ManualTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetSourceSystem sets the "source_system" field.
func (m *ManualTaskMutation) SetSourceSystem(s string) {
	m.source_system = &s
}

// SourceSystem returns the value of the "source_system" field in the mutation.
func (m *ManualTaskMutation) SourceSystem() (r string, exists bool) {
	v := m.source_system
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSystem returns the old "source_system" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldSourceSystem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSystem: %w", err)
	}
	return oldValue.SourceSystem, nil
}

// ResetSourceSystem resets all changes to the "source_system" field.
func (m *ManualTaskMutation) ResetSourceSystem() {
	m.source_system = nil
}

// SetSourceID sets the "source_id" field.
func (m *ManualTaskMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ManualTaskMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ManualTaskMutation) ResetSourceID() {
	m.source_id = nil
}

// SetStatus sets the "status" field.
func (m *ManualTaskMutation) SetStatus(value manualtask.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *ManualTaskMutation) Status() (r manualtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldStatus(ctx context.Context) (v manualtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ManualTaskMutation) ResetStatus() {
	m.status = nil
}

// SetMetadata sets the "metadata" field.
func (m *ManualTaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ManualTaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ManualTaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[manualtask.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ManualTaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[manualtask.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ManualTaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, manualtask.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ManualTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ManualTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ManualTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ManualTaskMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ManualTaskMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ManualTask entity.
// If the ManualTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManualTaskMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ManualTaskMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[manualtask.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ManualTaskMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[manualtask.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ManualTaskMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, manualtask.FieldResolvedAt)
}

// Where appends a list predicates to the ManualTaskMutation builder.
func (m *ManualTaskMutation) Where(ps ...predicate.ManualTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ManualTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ManualTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ManualTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ManualTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ManualTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ManualTask).
func (m *ManualTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ManualTaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.category != nil {
		fields = append(fields, manualtask.FieldCategory)
	}
	if m.title != nil {
		fields = append(fields, manualtask.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, manualtask.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, manualtask.FieldPriority)
	}
	if m.source_system != nil {
		fields = append(fields, manualtask.FieldSourceSystem)
	}
	if m.source_id != nil {
		fields = append(fields, manualtask.FieldSourceID)
	}
	if m.status != nil {
		fields = append(fields, manualtask.FieldStatus)
	}
	if m.metadata != nil {
		fields = append(fields, manualtask.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, manualtask.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, manualtask.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ManualTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case manualtask.FieldCategory:
		return m.Category()
	case manualtask.FieldTitle:
		return m.Title()
	case manualtask.FieldDescription:
		return m.Description()
	case manualtask.FieldPriority:
		return m.Priority()
	case manualtask.FieldSourceSystem:
		return m.SourceSystem()
	case manualtask.FieldSourceID:
		return m.SourceID()
	case manualtask.FieldStatus:
		return m.Status()
	case manualtask.FieldMetadata:
		return m.Metadata()
	case manualtask.FieldCreatedAt:
		return m.CreatedAt()
	case manualtask.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ManualTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case manualtask.FieldCategory:
		return m.OldCategory(ctx)
	case manualtask.FieldTitle:
		return m.OldTitle(ctx)
	case manualtask.FieldDescription:
		return m.OldDescription(ctx)
	case manualtask.FieldPriority:
		return m.OldPriority(ctx)
	case manualtask.FieldSourceSystem:
		return m.OldSourceSystem(ctx)
	case manualtask.FieldSourceID:
		return m.OldSourceID(ctx)
	case manualtask.FieldStatus:
		return m.OldStatus(ctx)
	case manualtask.FieldMetadata:
		return m.OldMetadata(ctx)
	case manualtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case manualtask.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ManualTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManualTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case manualtask.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case manualtask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case manualtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case manualtask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case manualtask.FieldSourceSystem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSystem(v)
		return nil
	case manualtask.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case manualtask.FieldStatus:
		v, ok := value.(manualtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case manualtask.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case manualtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case manualtask.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ManualTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ManualTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, manualtask.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ManualTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case manualtask.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManualTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case manualtask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ManualTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ManualTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(manualtask.FieldMetadata) {
		fields = append(fields, manualtask.FieldMetadata)
	}
	if m.FieldCleared(manualtask.FieldResolvedAt) {
		fields = append(fields, manualtask.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ManualTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ManualTaskMutation) ClearField(name string) error {
	switch name {
	case manualtask.FieldMetadata:
		m.ClearMetadata()
		return nil
	case manualtask.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ManualTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ManualTaskMutation) ResetField(name string) error {
	switch name {
	case manualtask.FieldCategory:
		m.ResetCategory()
		return nil
	case manualtask.FieldTitle:
		m.ResetTitle()
		return nil
	case manualtask.FieldDescription:
		m.ResetDescription()
		return nil
	case manualtask.FieldPriority:
		m.ResetPriority()
		return nil
	case manualtask.FieldSourceSystem:
		m.ResetSourceSystem()
		return nil
	case manualtask.FieldSourceID:
		m.ResetSourceID()
		return nil
	case manualtask.FieldStatus:
		m.ResetStatus()
		return nil
	case manualtask.FieldMetadata:
		m.ResetMetadata()
		return nil
	case manualtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case manualtask.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ManualTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ManualTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ManualTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ManualTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ManualTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ManualTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ManualTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ManualTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ManualTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ManualTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ManualTask edge %s", name)
}

// ScalingDecisionMutation represents an operation that mutates the ScalingDecision nodes in the graph.
type ScalingDecisionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	decision           *scalingdecision.Decision
	queue_name         *string
	current_workers    *int
	addcurrent_workers *int
	target_workers     *int
	addtarget_workers  *int
	reason             *string
	metrics            *map[string]interface{}
	applied            *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ScalingDecision, error)
	predicates         []predicate.ScalingDecision
}

var _ ent.Mutation = (*ScalingDecisionMutation)(nil)

// scalingdecisionOption allows management of the mutation configuration using functional options.
type scalingdecisionOption func(*ScalingDecisionMutation)

// newScalingDecisionMutation creates new mutation for the ScalingDecision entity.
func newScalingDecisionMutation(c config, op Op, opts ...scalingdecisionOption) *ScalingDecisionMutation {
	m := &ScalingDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeScalingDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScalingDecisionID sets the ID field of the mutation.
func withScalingDecisionID(id string) scalingdecisionOption {
	return func(m *ScalingDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScalingDecision
		)
		m.oldValue = func(ctx context.Context) (*ScalingDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScalingDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScalingDecision sets the old ScalingDecision of the mutation.
func withScalingDecision(node *ScalingDecision) scalingdecisionOption {
	return func(m *ScalingDecisionMutation) {
		m.oldValue = func(context.Context) (*ScalingDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScalingDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScalingDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScalingDecision entities.
func (m *ScalingDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScalingDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScalingDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScalingDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDecision sets the "decision" field.
func (m *ScalingDecisionMutation) SetDecision(s scalingdecision.Decision) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ScalingDecisionMutation) Decision() (r scalingdecision.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldDecision(ctx context.Context) (v scalingdecision.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ScalingDecisionMutation) ResetDecision() {
	m.decision = nil
}

// SetQueueName sets the "queue_name" field.
func (m *ScalingDecisionMutation) SetQueueName(s string) {
	m.queue_name = &s
}

// QueueName returns the value of the "queue_name" field in the mutation.
func (m *ScalingDecisionMutation) QueueName() (r string, exists bool) {
	v := m.queue_name
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueName returns the old "queue_name" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldQueueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueName: %w", err)
	}
	return oldValue.QueueName, nil
}

// ResetQueueName resets all changes to the "queue_name" field.
func (m *ScalingDecisionMutation) ResetQueueName() {
	m.queue_name = nil
}

// SetCurrentWorkers sets the "current_workers" field.
func (m *ScalingDecisionMutation) SetCurrentWorkers(i int) {
	m.current_workers = &i
	m.addcurrent_workers = nil
}

// CurrentWorkers returns the value of the "current_workers" field in the mutation.
func (m *ScalingDecisionMutation) CurrentWorkers() (r int, exists bool) {
	v := m.current_workers
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentWorkers returns the old "current_workers" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldCurrentWorkers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentWorkers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentWorkers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentWorkers: %w", err)
	}
	return oldValue.CurrentWorkers, nil
}

// AddCurrentWorkers adds i to the "current_workers" field.
func (m *ScalingDecisionMutation) AddCurrentWorkers(i int) {
	if m.addcurrent_workers != nil {
		*m.addcurrent_workers += i
	} else {
		m.addcurrent_workers = &i
	}
}

// AddedCurrentWorkers returns the value that was added to the "current_workers" field in this mutation.
func (m *ScalingDecisionMutation) AddedCurrentWorkers() (r int, exists bool) {
	v := m.addcurrent_workers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentWorkers resets all changes to the "current_workers" field.
func (m *ScalingDecisionMutation) ResetCurrentWorkers() {
	m.current_workers = nil
	m.addcurrent_workers = nil
}

// SetTargetWorkers sets the "target_workers" field.
func (m *ScalingDecisionMutation) SetTargetWorkers(i int) {
	m.target_workers = &i
	m.addtarget_workers = nil
}

// TargetWorkers returns the value of the "target_workers" field in the mutation.
func (m *ScalingDecisionMutation) TargetWorkers() (r int, exists bool) {
	v := m.target_workers
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetWorkers returns the old "target_workers" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldTargetWorkers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetWorkers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetWorkers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetWorkers: %w", err)
	}
	return oldValue.TargetWorkers, nil
}

// AddTargetWorkers adds i to the "target_workers" field.
func (m *ScalingDecisionMutation) AddTargetWorkers(i int) {
	if m.addtarget_workers != nil {
		*m.addtarget_workers += i
	} else {
		m.addtarget_workers = &i
	}
}

// AddedTargetWorkers returns the value that was added to the "target_workers" field in this mutation.
func (m *ScalingDecisionMutation) AddedTargetWorkers() (r int, exists bool) {
	v := m.addtarget_workers
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetWorkers resets all changes to the "target_workers" field.
func (m *ScalingDecisionMutation) ResetTargetWorkers() {
	m.target_workers = nil
	m.addtarget_workers = nil
}

// SetReason sets the "reason" field.
func (m *ScalingDecisionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ScalingDecisionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *ScalingDecisionMutation) ResetReason() {
	m.reason = nil
}

// SetMetrics sets the "metrics" field.
func (m *ScalingDecisionMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *ScalingDecisionMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *ScalingDecisionMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[scalingdecision.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *ScalingDecisionMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[scalingdecision.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *ScalingDecisionMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, scalingdecision.FieldMetrics)
}

// SetApplied sets the "applied" field.
func (m *ScalingDecisionMutation) SetApplied(b bool) {
	m.applied = &b
}

// Applied returns the value of the "applied" field in the mutation.
func (m *ScalingDecisionMutation) Applied() (r bool, exists bool) {
	v := m.applied
	if v == nil {
		return
	}
	return *v, true
}

// OldApplied returns the old "applied" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldApplied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplied: %w", err)
	}
	return oldValue.Applied, nil
}

// ResetApplied resets all changes to the "applied" field.
func (m *ScalingDecisionMutation) ResetApplied() {
	m.applied = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScalingDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScalingDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScalingDecision entity.
// If the ScalingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalingDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScalingDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScalingDecisionMutation builder.
func (m *ScalingDecisionMutation) Where(ps ...predicate.ScalingDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScalingDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScalingDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScalingDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScalingDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScalingDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScalingDecision).
func (m *ScalingDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScalingDecisionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.decision != nil {
		fields = append(fields, scalingdecision.FieldDecision)
	}
	if m.queue_name != nil {
		fields = append(fields, scalingdecision.FieldQueueName)
	}
	if m.current_workers != nil {
		fields = append(fields, scalingdecision.FieldCurrentWorkers)
	}
	if m.target_workers != nil {
		fields = append(fields, scalingdecision.FieldTargetWorkers)
	}
	if m.reason != nil {
		fields = append(fields, scalingdecision.FieldReason)
	}
	if m.metrics != nil {
		fields = append(fields, scalingdecision.FieldMetrics)
	}
	if m.applied != nil {
		fields = append(fields, scalingdecision.FieldApplied)
	}
	if m.created_at != nil {
		fields = append(fields, scalingdecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScalingDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scalingdecision.FieldDecision:
		return m.Decision()
	case scalingdecision.FieldQueueName:
		return m.QueueName()
	case scalingdecision.FieldCurrentWorkers:
		return m.CurrentWorkers()
	case scalingdecision.FieldTargetWorkers:
		return m.TargetWorkers()
	case scalingdecision.FieldReason:
		return m.Reason()
	case scalingdecision.FieldMetrics:
		return m.Metrics()
	case scalingdecision.FieldApplied:
		return m.Applied()
	case scalingdecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScalingDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scalingdecision.FieldDecision:
		return m.OldDecision(ctx)
	case scalingdecision.FieldQueueName:
		return m.OldQueueName(ctx)
	case scalingdecision.FieldCurrentWorkers:
		return m.OldCurrentWorkers(ctx)
	case scalingdecision.FieldTargetWorkers:
		return m.OldTargetWorkers(ctx)
	case scalingdecision.FieldReason:
		return m.OldReason(ctx)
	case scalingdecision.FieldMetrics:
		return m.OldMetrics(ctx)
	case scalingdecision.FieldApplied:
		return m.OldApplied(ctx)
	case scalingdecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScalingDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScalingDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scalingdecision.FieldDecision:
		v, ok := value.(scalingdecision.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case scalingdecision.FieldQueueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueName(v)
		return nil
	case scalingdecision.FieldCurrentWorkers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentWorkers(v)
		return nil
	case scalingdecision.FieldTargetWorkers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetWorkers(v)
		return nil
	case scalingdecision.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case scalingdecision.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case scalingdecision.FieldApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplied(v)
		return nil
	case scalingdecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScalingDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScalingDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_workers != nil {
		fields = append(fields, scalingdecision.FieldCurrentWorkers)
	}
	if m.addtarget_workers != nil {
		fields = append(fields, scalingdecision.FieldTargetWorkers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScalingDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scalingdecision.FieldCurrentWorkers:
		return m.AddedCurrentWorkers()
	case scalingdecision.FieldTargetWorkers:
		return m.AddedTargetWorkers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScalingDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scalingdecision.FieldCurrentWorkers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentWorkers(v)
		return nil
	case scalingdecision.FieldTargetWorkers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetWorkers(v)
		return nil
	}
	return fmt.Errorf("unknown ScalingDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScalingDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scalingdecision.FieldMetrics) {
		fields = append(fields, scalingdecision.FieldMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScalingDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScalingDecisionMutation) ClearField(name string) error {
	switch name {
	case scalingdecision.FieldMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown ScalingDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScalingDecisionMutation) ResetField(name string) error {
	switch name {
	case scalingdecision.FieldDecision:
		m.ResetDecision()
		return nil
	case scalingdecision.FieldQueueName:
		m.ResetQueueName()
		return nil
	case scalingdecision.FieldCurrentWorkers:
		m.ResetCurrentWorkers()
		return nil
	case scalingdecision.FieldTargetWorkers:
		m.ResetTargetWorkers()
		return nil
	case scalingdecision.FieldReason:
		m.ResetReason()
		return nil
	case scalingdecision.FieldMetrics:
		m.ResetMetrics()
		return nil
	case scalingdecision.FieldApplied:
		m.ResetApplied()
		return nil
	case scalingdecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScalingDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScalingDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScalingDecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScalingDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScalingDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScalingDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScalingDecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScalingDecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScalingDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScalingDecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScalingDecision edge %s", name)
}

// SubtaskMutation represents an operation that mutates the Subtask nodes in the graph.
type SubtaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	local_id                    *string
	description                 *string
	required_capabilities       *[]string
	appendrequired_capabilities []string
	estimated_complexity        *subtask.EstimatedComplexity
	depends_on                  *[]string
	appenddepends_on            []string
	agent_id                    *string
	status                      *subtask.Status
	result                      *map[string]interface{}
	error_message               *string
	started_at                  *time.Time
	completed_at                *time.Time
	execution_time_ms           *int64
	addexecution_time_ms        *int64
	retry_count                 *int
	addretry_count              *int
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	task                        *string
	clearedtask                 bool
	done                        bool
	oldValue                    func(context.Context) (*Subtask, error)
	predicates                  []predicate.Subtask
}

var _ ent.Mutation = (*SubtaskMutation)(nil)

// subtaskOption allows management of the mutation configuration using functional options.
type subtaskOption func(*SubtaskMutation)

// newSubtaskMutation creates new mutation for the Subtask entity.
func newSubtaskMutation(c config, op Op, opts ...subtaskOption) *SubtaskMutation {
	m := &SubtaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtaskID sets the ID field of the mutation.
func withSubtaskID(id string) subtaskOption {
	return func(m *SubtaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Subtask
		)
		m.oldValue = func(ctx context.Context) (*Subtask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subtask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtask sets the old Subtask of the mutation.
func withSubtask(node *Subtask) subtaskOption {
	return func(m *SubtaskMutation) {
		m.oldValue = func(context.Context) (*Subtask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subtask entities.
func (m *SubtaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subtask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SubtaskMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubtaskMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubtaskMutation) ResetTaskID() {
	m.task = nil
}

// SetLocalID sets the "local_id" field.
func (m *SubtaskMutation) SetLocalID(s string) {
	m.local_id = &s
}

// LocalID returns the value of the "local_id" field in the mutation.
func (m *SubtaskMutation) LocalID() (r string, exists bool) {
	v := m.local_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalID returns the old "local_id" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldLocalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalID: %w", err)
	}
	return oldValue.LocalID, nil
}

// ResetLocalID resets all changes to the "local_id" field.
func (m *SubtaskMutation) ResetLocalID() {
	m.local_id = nil
}

// SetDescription sets the "description" field.
func (m *SubtaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubtaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SubtaskMutation) ResetDescription() {
	m.description = nil
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (m *SubtaskMutation) SetRequiredCapabilities(s []string) {
	m.required_capabilities = &s
	m.appendrequired_capabilities = nil
}

// RequiredCapabilities returns the value of the "required_capabilities" field in the mutation.
func (m *SubtaskMutation) RequiredCapabilities() (r []string, exists bool) {
	v := m.required_capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapabilities returns the old "required_capabilities" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldRequiredCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapabilities: %w", err)
	}
	return oldValue.RequiredCapabilities, nil
}

// AppendRequiredCapabilities adds s to the "required_capabilities" field.
func (m *SubtaskMutation) AppendRequiredCapabilities(s []string) {
	m.appendrequired_capabilities = append(m.appendrequired_capabilities, s...)
}

// AppendedRequiredCapabilities returns the list of values that were appended to the "required_capabilities" field in this mutation.
func (m *SubtaskMutation) AppendedRequiredCapabilities() ([]string, bool) {
	if len(m.appendrequired_capabilities) == 0 {
		return nil, false
	}
	return m.appendrequired_capabilities, true
}

// ResetRequiredCapabilities resets all changes to the "required_capabilities" field.
func (m *SubtaskMutation) ResetRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (m *SubtaskMutation) SetEstimatedComplexity(sc subtask.EstimatedComplexity) {
	m.estimated_complexity = &sc
}

// EstimatedComplexity returns the value of the "estimated_complexity" field in the mutation.
func (m *SubtaskMutation) EstimatedComplexity() (r subtask.EstimatedComplexity, exists bool) {
	v := m.estimated_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedComplexity returns the old "estimated_complexity" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldEstimatedComplexity(ctx context.Context) (v subtask.EstimatedComplexity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedComplexity: %w", err)
	}
	return oldValue.EstimatedComplexity, nil
}

// ResetEstimatedComplexity resets all changes to the "estimated_complexity" field.
func (m *SubtaskMutation) ResetEstimatedComplexity() {
	m.estimated_complexity = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *SubtaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *SubtaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *SubtaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *SubtaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *SubtaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
}

// SetAgentID sets the "agent_id" field.
func (m *SubtaskMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SubtaskMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *SubtaskMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[subtask.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *SubtaskMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[subtask.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SubtaskMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, subtask.FieldAgentID)
}

// SetStatus sets the "status" field.
func (m *SubtaskMutation) SetStatus(s subtask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubtaskMutation) Status() (r subtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldStatus(ctx context.Context) (v subtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubtaskMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *SubtaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *SubtaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *SubtaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[subtask.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *SubtaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[subtask.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *SubtaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, subtask.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *SubtaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubtaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubtaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[subtask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubtaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[subtask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubtaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, subtask.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *SubtaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SubtaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SubtaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[subtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SubtaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SubtaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, subtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubtaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubtaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubtaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubtaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubtaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subtask.FieldCompletedAt)
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *SubtaskMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *SubtaskMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldExecutionTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *SubtaskMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *SubtaskMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *SubtaskMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[subtask.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *SubtaskMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[subtask.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *SubtaskMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, subtask.FieldExecutionTimeMs)
}

// SetRetryCount sets the "retry_count" field.
func (m *SubtaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SubtaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SubtaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SubtaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SubtaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubtaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubtaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subtask entity.
// If the Subtask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubtaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubtaskMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[subtask.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubtaskMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubtaskMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubtaskMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SubtaskMutation builder.
func (m *SubtaskMutation) Where(ps ...predicate.Subtask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subtask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subtask).
func (m *SubtaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.task != nil {
		fields = append(fields, subtask.FieldTaskID)
	}
	if m.local_id != nil {
		fields = append(fields, subtask.FieldLocalID)
	}
	if m.description != nil {
		fields = append(fields, subtask.FieldDescription)
	}
	if m.required_capabilities != nil {
		fields = append(fields, subtask.FieldRequiredCapabilities)
	}
	if m.estimated_complexity != nil {
		fields = append(fields, subtask.FieldEstimatedComplexity)
	}
	if m.depends_on != nil {
		fields = append(fields, subtask.FieldDependsOn)
	}
	if m.agent_id != nil {
		fields = append(fields, subtask.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, subtask.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, subtask.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, subtask.FieldExecutionTimeMs)
	}
	if m.retry_count != nil {
		fields = append(fields, subtask.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, subtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldTaskID:
		return m.TaskID()
	case subtask.FieldLocalID:
		return m.LocalID()
	case subtask.FieldDescription:
		return m.Description()
	case subtask.FieldRequiredCapabilities:
		return m.RequiredCapabilities()
	case subtask.FieldEstimatedComplexity:
		return m.EstimatedComplexity()
	case subtask.FieldDependsOn:
		return m.DependsOn()
	case subtask.FieldAgentID:
		return m.AgentID()
	case subtask.FieldStatus:
		return m.Status()
	case subtask.FieldResult:
		return m.Result()
	case subtask.FieldErrorMessage:
		return m.ErrorMessage()
	case subtask.FieldStartedAt:
		return m.StartedAt()
	case subtask.FieldCompletedAt:
		return m.CompletedAt()
	case subtask.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case subtask.FieldRetryCount:
		return m.RetryCount()
	case subtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtask.FieldTaskID:
		return m.OldTaskID(ctx)
	case subtask.FieldLocalID:
		return m.OldLocalID(ctx)
	case subtask.FieldDescription:
		return m.OldDescription(ctx)
	case subtask.FieldRequiredCapabilities:
		return m.OldRequiredCapabilities(ctx)
	case subtask.FieldEstimatedComplexity:
		return m.OldEstimatedComplexity(ctx)
	case subtask.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case subtask.FieldAgentID:
		return m.OldAgentID(ctx)
	case subtask.FieldStatus:
		return m.OldStatus(ctx)
	case subtask.FieldResult:
		return m.OldResult(ctx)
	case subtask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case subtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case subtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case subtask.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case subtask.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case subtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subtask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case subtask.FieldLocalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalID(v)
		return nil
	case subtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case subtask.FieldRequiredCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapabilities(v)
		return nil
	case subtask.FieldEstimatedComplexity:
		v, ok := value.(subtask.EstimatedComplexity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedComplexity(v)
		return nil
	case subtask.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case subtask.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case subtask.FieldStatus:
		v, ok := value.(subtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subtask.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case subtask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case subtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case subtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case subtask.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case subtask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case subtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subtask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtaskMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_time_ms != nil {
		fields = append(fields, subtask.FieldExecutionTimeMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, subtask.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	case subtask.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	case subtask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Subtask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subtask.FieldAgentID) {
		fields = append(fields, subtask.FieldAgentID)
	}
	if m.FieldCleared(subtask.FieldResult) {
		fields = append(fields, subtask.FieldResult)
	}
	if m.FieldCleared(subtask.FieldErrorMessage) {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	if m.FieldCleared(subtask.FieldStartedAt) {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.FieldCleared(subtask.FieldCompletedAt) {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	if m.FieldCleared(subtask.FieldExecutionTimeMs) {
		fields = append(fields, subtask.FieldExecutionTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtaskMutation) ClearField(name string) error {
	switch name {
	case subtask.FieldAgentID:
		m.ClearAgentID()
		return nil
	case subtask.FieldResult:
		m.ClearResult()
		return nil
	case subtask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case subtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case subtask.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	}
	return fmt.Errorf("unknown Subtask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtaskMutation) ResetField(name string) error {
	switch name {
	case subtask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case subtask.FieldLocalID:
		m.ResetLocalID()
		return nil
	case subtask.FieldDescription:
		m.ResetDescription()
		return nil
	case subtask.FieldRequiredCapabilities:
		m.ResetRequiredCapabilities()
		return nil
	case subtask.FieldEstimatedComplexity:
		m.ResetEstimatedComplexity()
		return nil
	case subtask.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case subtask.FieldAgentID:
		m.ResetAgentID()
		return nil
	case subtask.FieldStatus:
		m.ResetStatus()
		return nil
	case subtask.FieldResult:
		m.ResetResult()
		return nil
	case subtask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case subtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case subtask.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case subtask.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case subtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subtask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subtask.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, subtask.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subtask.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtaskMutation) ClearEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Subtask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtaskMutation) ResetEdge(name string) error {
	switch name {
	case subtask.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Subtask edge %s", name)
}

// SystemAlertMutation represents an operation that mutates the SystemAlert nodes in the graph.
type SystemAlertMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	message         *string
	severity        *systemalert.Severity
	source          *string
	source_id       *string
	metadata        *map[string]interface{}
	created_at      *time.Time
	acknowledged    *bool
	acknowledged_at *time.Time
	resolved        *bool
	resolved_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SystemAlert, error)
	predicates      []predicate.SystemAlert
}

var _ ent.Mutation = (*SystemAlertMutation)(nil)

// systemalertOption allows management of the mutation configuration using functional options.
type systemalertOption func(*SystemAlertMutation)

// newSystemAlertMutation creates new mutation for the SystemAlert entity.
func newSystemAlertMutation(c config, op Op, opts ...systemalertOption) *SystemAlertMutation {
	m := &SystemAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemAlertID sets the ID field of the mutation.
func withSystemAlertID(id string) systemalertOption {
	return func(m *SystemAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemAlert
		)
		m.oldValue = func(ctx context.Context) (*SystemAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemAlert sets the old SystemAlert of the mutation.
func withSystemAlert(node *SystemAlert) systemalertOption {
	return func(m *SystemAlertMutation) {
		m.oldValue = func(context.Context) (*SystemAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemAlert entities.
func (m *SystemAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SystemAlertMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SystemAlertMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SystemAlertMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *SystemAlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SystemAlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *SystemAlertMutation) ResetMessage() {
	m.message = nil
}

// SetSeverity sets the "severity" field.
func (m *SystemAlertMutation) SetSeverity(s systemalert.Severity) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SystemAlertMutation) Severity() (r systemalert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldSeverity(ctx context.Context) (v systemalert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SystemAlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetSource sets the "source" field.
func (m *SystemAlertMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SystemAlertMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SystemAlertMutation) ResetSource() {
	m.source = nil
}

// SetSourceID sets the "source_id" field.
func (m *SystemAlertMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *SystemAlertMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *SystemAlertMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[systemalert.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *SystemAlertMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[systemalert.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *SystemAlertMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, systemalert.FieldSourceID)
}

// SetMetadata sets the "metadata" field.
func (m *SystemAlertMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SystemAlertMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SystemAlertMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[systemalert.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SystemAlertMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[systemalert.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SystemAlertMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, systemalert.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAcknowledged sets the "acknowledged" field.
func (m *SystemAlertMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *SystemAlertMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *SystemAlertMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *SystemAlertMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *SystemAlertMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *SystemAlertMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[systemalert.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *SystemAlertMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[systemalert.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *SystemAlertMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, systemalert.FieldAcknowledgedAt)
}

// SetResolved sets the "resolved" field.
func (m *SystemAlertMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *SystemAlertMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *SystemAlertMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *SystemAlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *SystemAlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the SystemAlert entity.
// If the SystemAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemAlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *SystemAlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[systemalert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *SystemAlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[systemalert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *SystemAlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, systemalert.FieldResolvedAt)
}

// Where appends a list predicates to the SystemAlertMutation builder.
func (m *SystemAlertMutation) Where(ps ...predicate.SystemAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemAlert).
func (m *SystemAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemAlertMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, systemalert.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, systemalert.FieldMessage)
	}
	if m.severity != nil {
		fields = append(fields, systemalert.FieldSeverity)
	}
	if m.source != nil {
		fields = append(fields, systemalert.FieldSource)
	}
	if m.source_id != nil {
		fields = append(fields, systemalert.FieldSourceID)
	}
	if m.metadata != nil {
		fields = append(fields, systemalert.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, systemalert.FieldCreatedAt)
	}
	if m.acknowledged != nil {
		fields = append(fields, systemalert.FieldAcknowledged)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, systemalert.FieldAcknowledgedAt)
	}
	if m.resolved != nil {
		fields = append(fields, systemalert.FieldResolved)
	}
	if m.resolved_at != nil {
		fields = append(fields, systemalert.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemalert.FieldTitle:
		return m.Title()
	case systemalert.FieldMessage:
		return m.Message()
	case systemalert.FieldSeverity:
		return m.Severity()
	case systemalert.FieldSource:
		return m.Source()
	case systemalert.FieldSourceID:
		return m.SourceID()
	case systemalert.FieldMetadata:
		return m.Metadata()
	case systemalert.FieldCreatedAt:
		return m.CreatedAt()
	case systemalert.FieldAcknowledged:
		return m.Acknowledged()
	case systemalert.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	case systemalert.FieldResolved:
		return m.Resolved()
	case systemalert.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemalert.FieldTitle:
		return m.OldTitle(ctx)
	case systemalert.FieldMessage:
		return m.OldMessage(ctx)
	case systemalert.FieldSeverity:
		return m.OldSeverity(ctx)
	case systemalert.FieldSource:
		return m.OldSource(ctx)
	case systemalert.FieldSourceID:
		return m.OldSourceID(ctx)
	case systemalert.FieldMetadata:
		return m.OldMetadata(ctx)
	case systemalert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case systemalert.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case systemalert.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	case systemalert.FieldResolved:
		return m.OldResolved(ctx)
	case systemalert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemalert.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case systemalert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case systemalert.FieldSeverity:
		v, ok := value.(systemalert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case systemalert.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case systemalert.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case systemalert.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case systemalert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case systemalert.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case systemalert.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	case systemalert.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case systemalert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemAlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemAlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemalert.FieldSourceID) {
		fields = append(fields, systemalert.FieldSourceID)
	}
	if m.FieldCleared(systemalert.FieldMetadata) {
		fields = append(fields, systemalert.FieldMetadata)
	}
	if m.FieldCleared(systemalert.FieldAcknowledgedAt) {
		fields = append(fields, systemalert.FieldAcknowledgedAt)
	}
	if m.FieldCleared(systemalert.FieldResolvedAt) {
		fields = append(fields, systemalert.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemAlertMutation) ClearField(name string) error {
	switch name {
	case systemalert.FieldSourceID:
		m.ClearSourceID()
		return nil
	case systemalert.FieldMetadata:
		m.ClearMetadata()
		return nil
	case systemalert.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	case systemalert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemAlertMutation) ResetField(name string) error {
	switch name {
	case systemalert.FieldTitle:
		m.ResetTitle()
		return nil
	case systemalert.FieldMessage:
		m.ResetMessage()
		return nil
	case systemalert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case systemalert.FieldSource:
		m.ResetSource()
		return nil
	case systemalert.FieldSourceID:
		m.ResetSourceID()
		return nil
	case systemalert.FieldMetadata:
		m.ResetMetadata()
		return nil
	case systemalert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case systemalert.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case systemalert.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	case systemalert.FieldResolved:
		m.ResetResolved()
		return nil
	case systemalert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemAlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemAlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemAlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemAlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemAlert edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	description            *string
	parameters             *map[string]interface{}
	priority               *int
	addpriority            *int
	decomposition_strategy *string
	delegation_strategy    *string
	distribution_mode      *task.DistributionMode
	status                 *task.Status
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	result                 *map[string]interface{}
	error_message          *string
	pod_id                 *string
	clearedFields          map[string]struct{}
	subtasks               map[string]struct{}
	removedsubtasks        map[string]struct{}
	clearedsubtasks        bool
	decomposition          *string
	cleareddecomposition   bool
	done                   bool
	oldValue               func(context.Context) (*Task, error)
	predicates             []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetParameters sets the "parameters" field.
func (m *TaskMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *TaskMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *TaskMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[task.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *TaskMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[task.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *TaskMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, task.FieldParameters)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDecompositionStrategy sets the "decomposition_strategy" field.
func (m *TaskMutation) SetDecompositionStrategy(s string) {
	m.decomposition_strategy = &s
}

// DecompositionStrategy returns the value of the "decomposition_strategy" field in the mutation.
func (m *TaskMutation) DecompositionStrategy() (r string, exists bool) {
	v := m.decomposition_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldDecompositionStrategy returns the old "decomposition_strategy" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDecompositionStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecompositionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecompositionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecompositionStrategy: %w", err)
	}
	return oldValue.DecompositionStrategy, nil
}

// ResetDecompositionStrategy resets all changes to the "decomposition_strategy" field.
func (m *TaskMutation) ResetDecompositionStrategy() {
	m.decomposition_strategy = nil
}

// SetDelegationStrategy sets the "delegation_strategy" field.
func (m *TaskMutation) SetDelegationStrategy(s string) {
	m.delegation_strategy = &s
}

// DelegationStrategy returns the value of the "delegation_strategy" field in the mutation.
func (m *TaskMutation) DelegationStrategy() (r string, exists bool) {
	v := m.delegation_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegationStrategy returns the old "delegation_strategy" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDelegationStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegationStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegationStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegationStrategy: %w", err)
	}
	return oldValue.DelegationStrategy, nil
}

// ResetDelegationStrategy resets all changes to the "delegation_strategy" field.
func (m *TaskMutation) ResetDelegationStrategy() {
	m.delegation_strategy = nil
}

// SetDistributionMode sets the "distribution_mode" field.
func (m *TaskMutation) SetDistributionMode(tm task.DistributionMode) {
	m.distribution_mode = &tm
}

// DistributionMode returns the value of the "distribution_mode" field in the mutation.
func (m *TaskMutation) DistributionMode() (r task.DistributionMode, exists bool) {
	v := m.distribution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionMode returns the old "distribution_mode" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDistributionMode(ctx context.Context) (v task.DistributionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionMode: %w", err)
	}
	return oldValue.DistributionMode, nil
}

// ResetDistributionMode resets all changes to the "distribution_mode" field.
func (m *TaskMutation) ResetDistributionMode() {
	m.distribution_mode = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by ids.
func (m *TaskMutation) AddSubtaskIDs(ids ...string) {
	if m.subtasks == nil {
		m.subtasks = make(map[string]struct{})
	}
	for i := range ids {
		m.subtasks[ids[i]] = struct{}{}
	}
}

// ClearSubtasks clears the "subtasks" edge to the Subtask entity.
func (m *TaskMutation) ClearSubtasks() {
	m.clearedsubtasks = true
}

// SubtasksCleared reports if the "subtasks" edge to the Subtask entity was cleared.
func (m *TaskMutation) SubtasksCleared() bool {
	return m.clearedsubtasks
}

// RemoveSubtaskIDs removes the "subtasks" edge to the Subtask entity by IDs.
func (m *TaskMutation) RemoveSubtaskIDs(ids ...string) {
	if m.removedsubtasks == nil {
		m.removedsubtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.subtasks, ids[i])
		m.removedsubtasks[ids[i]] = struct{}{}
	}
}

// RemovedSubtasks returns the removed IDs of the "subtasks" edge to the Subtask entity.
func (m *TaskMutation) RemovedSubtasksIDs() (ids []string) {
	for id := range m.removedsubtasks {
		ids = append(ids, id)
	}
	return
}

// SubtasksIDs returns the "subtasks" edge IDs in the mutation.
func (m *TaskMutation) SubtasksIDs() (ids []string) {
	for id := range m.subtasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubtasks resets all changes to the "subtasks" edge.
func (m *TaskMutation) ResetSubtasks() {
	m.subtasks = nil
	m.clearedsubtasks = false
	m.removedsubtasks = nil
}

// SetDecompositionID sets the "decomposition" edge to the TaskDecomposition entity by id.
func (m *TaskMutation) SetDecompositionID(id string) {
	m.decomposition = &id
}

// ClearDecomposition clears the "decomposition" edge to the TaskDecomposition entity.
func (m *TaskMutation) ClearDecomposition() {
	m.cleareddecomposition = true
}

// DecompositionCleared reports if the "decomposition" edge to the TaskDecomposition entity was cleared.
func (m *TaskMutation) DecompositionCleared() bool {
	return m.cleareddecomposition
}

// DecompositionID returns the "decomposition" edge ID in the mutation.
func (m *TaskMutation) DecompositionID() (id string, exists bool) {
	if m.decomposition != nil {
		return *m.decomposition, true
	}
	return
}

// DecompositionIDs returns the "decomposition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DecompositionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) DecompositionIDs() (ids []string) {
	if id := m.decomposition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDecomposition resets all changes to the "decomposition" edge.
func (m *TaskMutation) ResetDecomposition() {
	m.decomposition = nil
	m.cleareddecomposition = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.parameters != nil {
		fields = append(fields, task.FieldParameters)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.decomposition_strategy != nil {
		fields = append(fields, task.FieldDecompositionStrategy)
	}
	if m.delegation_strategy != nil {
		fields = append(fields, task.FieldDelegationStrategy)
	}
	if m.distribution_mode != nil {
		fields = append(fields, task.FieldDistributionMode)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldDescription:
		return m.Description()
	case task.FieldParameters:
		return m.Parameters()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldDecompositionStrategy:
		return m.DecompositionStrategy()
	case task.FieldDelegationStrategy:
		return m.DelegationStrategy()
	case task.FieldDistributionMode:
		return m.DistributionMode()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldResult:
		return m.Result()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldParameters:
		return m.OldParameters(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldDecompositionStrategy:
		return m.OldDecompositionStrategy(ctx)
	case task.FieldDelegationStrategy:
		return m.OldDelegationStrategy(ctx)
	case task.FieldDistributionMode:
		return m.OldDistributionMode(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldDecompositionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecompositionStrategy(v)
		return nil
	case task.FieldDelegationStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegationStrategy(v)
		return nil
	case task.FieldDistributionMode:
		v, ok := value.(task.DistributionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionMode(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldParameters) {
		fields = append(fields, task.FieldParameters)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldParameters:
		m.ClearParameters()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldParameters:
		m.ResetParameters()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldDecompositionStrategy:
		m.ResetDecompositionStrategy()
		return nil
	case task.FieldDelegationStrategy:
		m.ResetDelegationStrategy()
		return nil
	case task.FieldDistributionMode:
		m.ResetDistributionMode()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	if m.decomposition != nil {
		edges = append(edges, task.EdgeDecomposition)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.subtasks))
		for id := range m.subtasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDecomposition:
		if id := m.decomposition; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubtasks != nil {
		edges = append(edges, task.EdgeSubtasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubtasks:
		ids := make([]ent.Value, 0, len(m.removedsubtasks))
		for id := range m.removedsubtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubtasks {
		edges = append(edges, task.EdgeSubtasks)
	}
	if m.cleareddecomposition {
		edges = append(edges, task.EdgeDecomposition)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSubtasks:
		return m.clearedsubtasks
	case task.EdgeDecomposition:
		return m.cleareddecomposition
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeDecomposition:
		m.ClearDecomposition()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSubtasks:
		m.ResetSubtasks()
		return nil
	case task.EdgeDecomposition:
		m.ResetDecomposition()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskDecompositionMutation represents an operation that mutates the TaskDecomposition nodes in the graph.
type TaskDecompositionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	description         *string
	strategy            *string
	total_complexity    *int
	addtotal_complexity *int
	max_parallelism     *int
	addmax_parallelism  *int
	critical_path       *[]string
	appendcritical_path []string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	task                *string
	clearedtask         bool
	done                bool
	oldValue            func(context.Context) (*TaskDecomposition, error)
	predicates          []predicate.TaskDecomposition
}

var _ ent.Mutation = (*TaskDecompositionMutation)(nil)

// taskdecompositionOption allows management of the mutation configuration using functional options.
type taskdecompositionOption func(*TaskDecompositionMutation)

// newTaskDecompositionMutation creates new mutation for the TaskDecomposition entity.
func newTaskDecompositionMutation(c config, op Op, opts ...taskdecompositionOption) *TaskDecompositionMutation {
	m := &TaskDecompositionMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskDecomposition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskDecompositionID sets the ID field of the mutation.
func withTaskDecompositionID(id string) taskdecompositionOption {
	return func(m *TaskDecompositionMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskDecomposition
		)
		m.oldValue = func(ctx context.Context) (*TaskDecomposition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskDecomposition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskDecomposition sets the old TaskDecomposition of the mutation.
func withTaskDecomposition(node *TaskDecomposition) taskdecompositionOption {
	return func(m *TaskDecompositionMutation) {
		m.oldValue = func(context.Context) (*TaskDecomposition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskDecompositionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskDecompositionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskDecomposition entities.
func (m *TaskDecompositionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskDecompositionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskDecompositionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskDecomposition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskDecompositionMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskDecompositionMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskDecompositionMutation) ResetTaskID() {
	m.task = nil
}

// SetDescription sets the "description" field.
func (m *TaskDecompositionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskDecompositionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskDecompositionMutation) ResetDescription() {
	m.description = nil
}

// SetStrategy sets the "strategy" field.
func (m *TaskDecompositionMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *TaskDecompositionMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *TaskDecompositionMutation) ResetStrategy() {
	m.strategy = nil
}

// SetTotalComplexity sets the "total_complexity" field.
func (m *TaskDecompositionMutation) SetTotalComplexity(i int) {
	m.total_complexity = &i
	m.addtotal_complexity = nil
}

// TotalComplexity returns the value of the "total_complexity" field in the mutation.
func (m *TaskDecompositionMutation) TotalComplexity() (r int, exists bool) {
	v := m.total_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalComplexity returns the old "total_complexity" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldTotalComplexity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalComplexity: %w", err)
	}
	return oldValue.TotalComplexity, nil
}

// AddTotalComplexity adds i to the "total_complexity" field.
func (m *TaskDecompositionMutation) AddTotalComplexity(i int) {
	if m.addtotal_complexity != nil {
		*m.addtotal_complexity += i
	} else {
		m.addtotal_complexity = &i
	}
}

// AddedTotalComplexity returns the value that was added to the "total_complexity" field in this mutation.
func (m *TaskDecompositionMutation) AddedTotalComplexity() (r int, exists bool) {
	v := m.addtotal_complexity
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalComplexity resets all changes to the "total_complexity" field.
func (m *TaskDecompositionMutation) ResetTotalComplexity() {
	m.total_complexity = nil
	m.addtotal_complexity = nil
}

// SetMaxParallelism sets the "max_parallelism" field.
func (m *TaskDecompositionMutation) SetMaxParallelism(i int) {
	m.max_parallelism = &i
	m.addmax_parallelism = nil
}

// MaxParallelism returns the value of the "max_parallelism" field in the mutation.
func (m *TaskDecompositionMutation) MaxParallelism() (r int, exists bool) {
	v := m.max_parallelism
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxParallelism returns the old "max_parallelism" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldMaxParallelism(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxParallelism is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxParallelism requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxParallelism: %w", err)
	}
	return oldValue.MaxParallelism, nil
}

// AddMaxParallelism adds i to the "max_parallelism" field.
func (m *TaskDecompositionMutation) AddMaxParallelism(i int) {
	if m.addmax_parallelism != nil {
		*m.addmax_parallelism += i
	} else {
		m.addmax_parallelism = &i
	}
}

// AddedMaxParallelism returns the value that was added to the "max_parallelism" field in this mutation.
func (m *TaskDecompositionMutation) AddedMaxParallelism() (r int, exists bool) {
	v := m.addmax_parallelism
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxParallelism resets all changes to the "max_parallelism" field.
func (m *TaskDecompositionMutation) ResetMaxParallelism() {
	m.max_parallelism = nil
	m.addmax_parallelism = nil
}

// SetCriticalPath sets the "critical_path" field.
func (m *TaskDecompositionMutation) SetCriticalPath(s []string) {
	m.critical_path = &s
	m.appendcritical_path = nil
}

// CriticalPath returns the value of the "critical_path" field in the mutation.
func (m *TaskDecompositionMutation) CriticalPath() (r []string, exists bool) {
	v := m.critical_path
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalPath returns the old "critical_path" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldCriticalPath(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalPath: %w", err)
	}
	return oldValue.CriticalPath, nil
}

// AppendCriticalPath adds s to the "critical_path" field.
func (m *TaskDecompositionMutation) AppendCriticalPath(s []string) {
	m.appendcritical_path = append(m.appendcritical_path, s...)
}

// AppendedCriticalPath returns the list of values that were appended to the "critical_path" field in this mutation.
func (m *TaskDecompositionMutation) AppendedCriticalPath() ([]string, bool) {
	if len(m.appendcritical_path) == 0 {
		return nil, false
	}
	return m.appendcritical_path, true
}

// ResetCriticalPath resets all changes to the "critical_path" field.
func (m *TaskDecompositionMutation) ResetCriticalPath() {
	m.critical_path = nil
	m.appendcritical_path = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskDecompositionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskDecompositionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskDecomposition entity.
// If the TaskDecomposition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskDecompositionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskDecompositionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskDecompositionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskdecomposition.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskDecompositionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskDecompositionMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskDecompositionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskDecompositionMutation builder.
func (m *TaskDecompositionMutation) Where(ps ...predicate.TaskDecomposition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskDecompositionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskDecompositionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskDecomposition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskDecompositionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskDecompositionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskDecomposition).
func (m *TaskDecompositionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskDecompositionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, taskdecomposition.FieldTaskID)
	}
	if m.description != nil {
		fields = append(fields, taskdecomposition.FieldDescription)
	}
	if m.strategy != nil {
		fields = append(fields, taskdecomposition.FieldStrategy)
	}
	if m.total_complexity != nil {
		fields = append(fields, taskdecomposition.FieldTotalComplexity)
	}
	if m.max_parallelism != nil {
		fields = append(fields, taskdecomposition.FieldMaxParallelism)
	}
	if m.critical_path != nil {
		fields = append(fields, taskdecomposition.FieldCriticalPath)
	}
	if m.created_at != nil {
		fields = append(fields, taskdecomposition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskDecompositionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskdecomposition.FieldTaskID:
		return m.TaskID()
	case taskdecomposition.FieldDescription:
		return m.Description()
	case taskdecomposition.FieldStrategy:
		return m.Strategy()
	case taskdecomposition.FieldTotalComplexity:
		return m.TotalComplexity()
	case taskdecomposition.FieldMaxParallelism:
		return m.MaxParallelism()
	case taskdecomposition.FieldCriticalPath:
		return m.CriticalPath()
	case taskdecomposition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskDecompositionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskdecomposition.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskdecomposition.FieldDescription:
		return m.OldDescription(ctx)
	case taskdecomposition.FieldStrategy:
		return m.OldStrategy(ctx)
	case taskdecomposition.FieldTotalComplexity:
		return m.OldTotalComplexity(ctx)
	case taskdecomposition.FieldMaxParallelism:
		return m.OldMaxParallelism(ctx)
	case taskdecomposition.FieldCriticalPath:
		return m.OldCriticalPath(ctx)
	case taskdecomposition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskDecomposition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDecompositionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskdecomposition.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskdecomposition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case taskdecomposition.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case taskdecomposition.FieldTotalComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalComplexity(v)
		return nil
	case taskdecomposition.FieldMaxParallelism:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxParallelism(v)
		return nil
	case taskdecomposition.FieldCriticalPath:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalPath(v)
		return nil
	case taskdecomposition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskDecomposition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskDecompositionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_complexity != nil {
		fields = append(fields, taskdecomposition.FieldTotalComplexity)
	}
	if m.addmax_parallelism != nil {
		fields = append(fields, taskdecomposition.FieldMaxParallelism)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskDecompositionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskdecomposition.FieldTotalComplexity:
		return m.AddedTotalComplexity()
	case taskdecomposition.FieldMaxParallelism:
		return m.AddedMaxParallelism()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskDecompositionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskdecomposition.FieldTotalComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalComplexity(v)
		return nil
	case taskdecomposition.FieldMaxParallelism:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxParallelism(v)
		return nil
	}
	return fmt.Errorf("unknown TaskDecomposition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskDecompositionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskDecompositionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskDecompositionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskDecomposition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskDecompositionMutation) ResetField(name string) error {
	switch name {
	case taskdecomposition.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskdecomposition.FieldDescription:
		m.ResetDescription()
		return nil
	case taskdecomposition.FieldStrategy:
		m.ResetStrategy()
		return nil
	case taskdecomposition.FieldTotalComplexity:
		m.ResetTotalComplexity()
		return nil
	case taskdecomposition.FieldMaxParallelism:
		m.ResetMaxParallelism()
		return nil
	case taskdecomposition.FieldCriticalPath:
		m.ResetCriticalPath()
		return nil
	case taskdecomposition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskDecomposition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskDecompositionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskdecomposition.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskDecompositionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskdecomposition.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskDecompositionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskDecompositionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskDecompositionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskdecomposition.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskDecompositionMutation) EdgeCleared(name string) bool {
	switch name {
	case taskdecomposition.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskDecompositionMutation) ClearEdge(name string) error {
	switch name {
	case taskdecomposition.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskDecomposition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskDecompositionMutation) ResetEdge(name string) error {
	switch name {
	case taskdecomposition.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskDecomposition edge %s", name)
}

// TaskQueueStatMutation represents an operation that mutates the TaskQueueStat nodes in the graph.
type TaskQueueStatMutation struct {
	config
	op              Op
	typ             string
	id              *string
	queue_name      *string
	worker_count    *int
	addworker_count *int
	queued_count    *int
	addqueued_count *int
	active_count    *int
	addactive_count *int
	utilization     *float64
	addutilization  *float64
	sampled_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TaskQueueStat, error)
	predicates      []predicate.TaskQueueStat
}

var _ ent.Mutation = (*TaskQueueStatMutation)(nil)

// taskqueuestatOption allows management of the mutation configuration using functional options.
type taskqueuestatOption func(*TaskQueueStatMutation)

// newTaskQueueStatMutation creates new mutation for the TaskQueueStat entity.
func newTaskQueueStatMutation(c config, op Op, opts ...taskqueuestatOption) *TaskQueueStatMutation {
	m := &TaskQueueStatMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskQueueStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskQueueStatID sets the ID field of the mutation.
func withTaskQueueStatID(id string) taskqueuestatOption {
	return func(m *TaskQueueStatMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskQueueStat
		)
		m.oldValue = func(ctx context.Context) (*TaskQueueStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskQueueStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskQueueStat sets the old TaskQueueStat of the mutation.
func withTaskQueueStat(node *TaskQueueStat) taskqueuestatOption {
	return func(m *TaskQueueStatMutation) {
		m.oldValue = func(context.Context) (*TaskQueueStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskQueueStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskQueueStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskQueueStat entities.
func (m *TaskQueueStatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskQueueStatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskQueueStatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskQueueStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueueName sets the "queue_name" field.
func (m *TaskQueueStatMutation) SetQueueName(s string) {
	m.queue_name = &s
}

// QueueName returns the value of the "queue_name" field in the mutation.
func (m *TaskQueueStatMutation) QueueName() (r string, exists bool) {
	v := m.queue_name
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueName returns the old "queue_name" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldQueueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueName: %w", err)
	}
	return oldValue.QueueName, nil
}

// ResetQueueName resets all changes to the "queue_name" field.
func (m *TaskQueueStatMutation) ResetQueueName() {
	m.queue_name = nil
}

// SetWorkerCount sets the "worker_count" field.
func (m *TaskQueueStatMutation) SetWorkerCount(i int) {
	m.worker_count = &i
	m.addworker_count = nil
}

// WorkerCount returns the value of the "worker_count" field in the mutation.
func (m *TaskQueueStatMutation) WorkerCount() (r int, exists bool) {
	v := m.worker_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerCount returns the old "worker_count" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldWorkerCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerCount: %w", err)
	}
	return oldValue.WorkerCount, nil
}

// AddWorkerCount adds i to the "worker_count" field.
func (m *TaskQueueStatMutation) AddWorkerCount(i int) {
	if m.addworker_count != nil {
		*m.addworker_count += i
	} else {
		m.addworker_count = &i
	}
}

// AddedWorkerCount returns the value that was added to the "worker_count" field in this mutation.
func (m *TaskQueueStatMutation) AddedWorkerCount() (r int, exists bool) {
	v := m.addworker_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkerCount resets all changes to the "worker_count" field.
func (m *TaskQueueStatMutation) ResetWorkerCount() {
	m.worker_count = nil
	m.addworker_count = nil
}

// SetQueuedCount sets the "queued_count" field.
func (m *TaskQueueStatMutation) SetQueuedCount(i int) {
	m.queued_count = &i
	m.addqueued_count = nil
}

// QueuedCount returns the value of the "queued_count" field in the mutation.
func (m *TaskQueueStatMutation) QueuedCount() (r int, exists bool) {
	v := m.queued_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedCount returns the old "queued_count" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldQueuedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedCount: %w", err)
	}
	return oldValue.QueuedCount, nil
}

// AddQueuedCount adds i to the "queued_count" field.
func (m *TaskQueueStatMutation) AddQueuedCount(i int) {
	if m.addqueued_count != nil {
		*m.addqueued_count += i
	} else {
		m.addqueued_count = &i
	}
}

// AddedQueuedCount returns the value that was added to the "queued_count" field in this mutation.
func (m *TaskQueueStatMutation) AddedQueuedCount() (r int, exists bool) {
	v := m.addqueued_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueuedCount resets all changes to the "queued_count" field.
func (m *TaskQueueStatMutation) ResetQueuedCount() {
	m.queued_count = nil
	m.addqueued_count = nil
}

// SetActiveCount sets the "active_count" field.
func (m *TaskQueueStatMutation) SetActiveCount(i int) {
	m.active_count = &i
	m.addactive_count = nil
}

// ActiveCount returns the value of the "active_count" field in the mutation.
func (m *TaskQueueStatMutation) ActiveCount() (r int, exists bool) {
	v := m.active_count
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveCount returns the old "active_count" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldActiveCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveCount: %w", err)
	}
	return oldValue.ActiveCount, nil
}

// AddActiveCount adds i to the "active_count" field.
func (m *TaskQueueStatMutation) AddActiveCount(i int) {
	if m.addactive_count != nil {
		*m.addactive_count += i
	} else {
		m.addactive_count = &i
	}
}

// AddedActiveCount returns the value that was added to the "active_count" field in this mutation.
func (m *TaskQueueStatMutation) AddedActiveCount() (r int, exists bool) {
	v := m.addactive_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveCount resets all changes to the "active_count" field.
func (m *TaskQueueStatMutation) ResetActiveCount() {
	m.active_count = nil
	m.addactive_count = nil
}

// SetUtilization sets the "utilization" field.
func (m *TaskQueueStatMutation) SetUtilization(f float64) {
	m.utilization = &f
	m.addutilization = nil
}

// Utilization returns the value of the "utilization" field in the mutation.
func (m *TaskQueueStatMutation) Utilization() (r float64, exists bool) {
	v := m.utilization
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilization returns the old "utilization" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldUtilization(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilization: %w", err)
	}
	return oldValue.Utilization, nil
}

// AddUtilization adds f to the "utilization" field.
func (m *TaskQueueStatMutation) AddUtilization(f float64) {
	if m.addutilization != nil {
		*m.addutilization += f
	} else {
		m.addutilization = &f
	}
}

// AddedUtilization returns the value that was added to the "utilization" field in this mutation.
func (m *TaskQueueStatMutation) AddedUtilization() (r float64, exists bool) {
	v := m.addutilization
	if v == nil {
		return
	}
	return *v, true
}

// ResetUtilization resets all changes to the "utilization" field.
func (m *TaskQueueStatMutation) ResetUtilization() {
	m.utilization = nil
	m.addutilization = nil
}

// SetSampledAt sets the "sampled_at" field.
func (m *TaskQueueStatMutation) SetSampledAt(t time.Time) {
	m.sampled_at = &t
}

// SampledAt returns the value of the "sampled_at" field in the mutation.
func (m *TaskQueueStatMutation) SampledAt() (r time.Time, exists bool) {
	v := m.sampled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSampledAt returns the old "sampled_at" field's value of the TaskQueueStat entity.
// If the TaskQueueStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueStatMutation) OldSampledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampledAt: %w", err)
	}
	return oldValue.SampledAt, nil
}

// ResetSampledAt resets all changes to the "sampled_at" field.
func (m *TaskQueueStatMutation) ResetSampledAt() {
	m.sampled_at = nil
}

// Where appends a list predicates to the TaskQueueStatMutation builder.
func (m *TaskQueueStatMutation) Where(ps ...predicate.TaskQueueStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskQueueStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskQueueStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskQueueStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskQueueStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskQueueStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskQueueStat).
func (m *TaskQueueStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskQueueStatMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.queue_name != nil {
		fields = append(fields, taskqueuestat.FieldQueueName)
	}
	if m.worker_count != nil {
		fields = append(fields, taskqueuestat.FieldWorkerCount)
	}
	if m.queued_count != nil {
		fields = append(fields, taskqueuestat.FieldQueuedCount)
	}
	if m.active_count != nil {
		fields = append(fields, taskqueuestat.FieldActiveCount)
	}
	if m.utilization != nil {
		fields = append(fields, taskqueuestat.FieldUtilization)
	}
	if m.sampled_at != nil {
		fields = append(fields, taskqueuestat.FieldSampledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskQueueStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskqueuestat.FieldQueueName:
		return m.QueueName()
	case taskqueuestat.FieldWorkerCount:
		return m.WorkerCount()
	case taskqueuestat.FieldQueuedCount:
		return m.QueuedCount()
	case taskqueuestat.FieldActiveCount:
		return m.ActiveCount()
	case taskqueuestat.FieldUtilization:
		return m.Utilization()
	case taskqueuestat.FieldSampledAt:
		return m.SampledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskQueueStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskqueuestat.FieldQueueName:
		return m.OldQueueName(ctx)
	case taskqueuestat.FieldWorkerCount:
		return m.OldWorkerCount(ctx)
	case taskqueuestat.FieldQueuedCount:
		return m.OldQueuedCount(ctx)
	case taskqueuestat.FieldActiveCount:
		return m.OldActiveCount(ctx)
	case taskqueuestat.FieldUtilization:
		return m.OldUtilization(ctx)
	case taskqueuestat.FieldSampledAt:
		return m.OldSampledAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskQueueStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskQueueStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskqueuestat.FieldQueueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueName(v)
		return nil
	case taskqueuestat.FieldWorkerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerCount(v)
		return nil
	case taskqueuestat.FieldQueuedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedCount(v)
		return nil
	case taskqueuestat.FieldActiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveCount(v)
		return nil
	case taskqueuestat.FieldUtilization:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilization(v)
		return nil
	case taskqueuestat.FieldSampledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampledAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskQueueStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskQueueStatMutation) AddedFields() []string {
	var fields []string
	if m.addworker_count != nil {
		fields = append(fields, taskqueuestat.FieldWorkerCount)
	}
	if m.addqueued_count != nil {
		fields = append(fields, taskqueuestat.FieldQueuedCount)
	}
	if m.addactive_count != nil {
		fields = append(fields, taskqueuestat.FieldActiveCount)
	}
	if m.addutilization != nil {
		fields = append(fields, taskqueuestat.FieldUtilization)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskQueueStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskqueuestat.FieldWorkerCount:
		return m.AddedWorkerCount()
	case taskqueuestat.FieldQueuedCount:
		return m.AddedQueuedCount()
	case taskqueuestat.FieldActiveCount:
		return m.AddedActiveCount()
	case taskqueuestat.FieldUtilization:
		return m.AddedUtilization()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskQueueStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskqueuestat.FieldWorkerCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkerCount(v)
		return nil
	case taskqueuestat.FieldQueuedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueuedCount(v)
		return nil
	case taskqueuestat.FieldActiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveCount(v)
		return nil
	case taskqueuestat.FieldUtilization:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUtilization(v)
		return nil
	}
	return fmt.Errorf("unknown TaskQueueStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskQueueStatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskQueueStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskQueueStatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskQueueStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskQueueStatMutation) ResetField(name string) error {
	switch name {
	case taskqueuestat.FieldQueueName:
		m.ResetQueueName()
		return nil
	case taskqueuestat.FieldWorkerCount:
		m.ResetWorkerCount()
		return nil
	case taskqueuestat.FieldQueuedCount:
		m.ResetQueuedCount()
		return nil
	case taskqueuestat.FieldActiveCount:
		m.ResetActiveCount()
		return nil
	case taskqueuestat.FieldUtilization:
		m.ResetUtilization()
		return nil
	case taskqueuestat.FieldSampledAt:
		m.ResetSampledAt()
		return nil
	}
	return fmt.Errorf("unknown TaskQueueStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskQueueStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskQueueStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskQueueStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskQueueStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskQueueStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskQueueStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskQueueStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskQueueStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskQueueStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskQueueStat edge %s", name)
}

// TaskWorkerMutation represents an operation that mutates the TaskWorker nodes in the graph.
type TaskWorkerMutation struct {
	config
	op              Op
	typ             string
	id              *string
	kind            *string
	hostname        *string
	pid             *int
	addpid          *int
	status          *taskworker.Status
	max_tasks       *int
	addmax_tasks    *int
	active_tasks    *int
	addactive_tasks *int
	queues          *[]string
	appendqueues    []string
	capabilities    *map[string]interface{}
	metadata        *map[string]interface{}
	last_heartbeat  *time.Time
	registered_at   *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TaskWorker, error)
	predicates      []predicate.TaskWorker
}

var _ ent.Mutation = (*TaskWorkerMutation)(nil)

// taskworkerOption allows management of the mutation configuration using functional options.
type taskworkerOption func(*TaskWorkerMutation)

// newTaskWorkerMutation creates new mutation for the TaskWorker entity.
func newTaskWorkerMutation(c config, op Op, opts ...taskworkerOption) *TaskWorkerMutation {
	m := &TaskWorkerMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskWorker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskWorkerID sets the ID field of the mutation.
func withTaskWorkerID(id string) taskworkerOption {
	return func(m *TaskWorkerMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskWorker
		)
		m.oldValue = func(ctx context.Context) (*TaskWorker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskWorker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskWorker sets the old TaskWorker of the mutation.
func withTaskWorker(node *TaskWorker) taskworkerOption {
	return func(m *TaskWorkerMutation) {
		m.oldValue = func(context.Context) (*TaskWorker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskWorkerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskWorkerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskWorker entities.
func (m *TaskWorkerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskWorkerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskWorkerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskWorker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TaskWorkerMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskWorkerMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskWorkerMutation) ResetKind() {
	m.kind = nil
}

// SetHostname sets the "hostname" field.
func (m *TaskWorkerMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *TaskWorkerMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ResetHostname resets all changes to the "hostname" field.
func (m *TaskWorkerMutation) ResetHostname() {
	m.hostname = nil
}

// SetPid sets the "pid" field.
func (m *TaskWorkerMutation) SetPid(i int) {
	m.pid = &i
	m.addpid = nil
}

// Pid returns the value of the "pid" field in the mutation.
func (m *TaskWorkerMutation) Pid() (r int, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldPid(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// AddPid adds i to the "pid" field.
func (m *TaskWorkerMutation) AddPid(i int) {
	if m.addpid != nil {
		*m.addpid += i
	} else {
		m.addpid = &i
	}
}

// AddedPid returns the value that was added to the "pid" field in this mutation.
func (m *TaskWorkerMutation) AddedPid() (r int, exists bool) {
	v := m.addpid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPid resets all changes to the "pid" field.
func (m *TaskWorkerMutation) ResetPid() {
	m.pid = nil
	m.addpid = nil
}

// SetStatus sets the "status" field.
func (m *TaskWorkerMutation) SetStatus(t taskworker.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskWorkerMutation) Status() (r taskworker.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldStatus(ctx context.Context) (v taskworker.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskWorkerMutation) ResetStatus() {
	m.status = nil
}

// SetMaxTasks sets the "max_tasks" field.
func (m *TaskWorkerMutation) SetMaxTasks(i int) {
	m.max_tasks = &i
	m.addmax_tasks = nil
}

// MaxTasks returns the value of the "max_tasks" field in the mutation.
func (m *TaskWorkerMutation) MaxTasks() (r int, exists bool) {
	v := m.max_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTasks returns the old "max_tasks" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldMaxTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTasks: %w", err)
	}
	return oldValue.MaxTasks, nil
}

// AddMaxTasks adds i to the "max_tasks" field.
func (m *TaskWorkerMutation) AddMaxTasks(i int) {
	if m.addmax_tasks != nil {
		*m.addmax_tasks += i
	} else {
		m.addmax_tasks = &i
	}
}

// AddedMaxTasks returns the value that was added to the "max_tasks" field in this mutation.
func (m *TaskWorkerMutation) AddedMaxTasks() (r int, exists bool) {
	v := m.addmax_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTasks resets all changes to the "max_tasks" field.
func (m *TaskWorkerMutation) ResetMaxTasks() {
	m.max_tasks = nil
	m.addmax_tasks = nil
}

// SetActiveTasks sets the "active_tasks" field.
func (m *TaskWorkerMutation) SetActiveTasks(i int) {
	m.active_tasks = &i
	m.addactive_tasks = nil
}

// ActiveTasks returns the value of the "active_tasks" field in the mutation.
func (m *TaskWorkerMutation) ActiveTasks() (r int, exists bool) {
	v := m.active_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveTasks returns the old "active_tasks" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldActiveTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveTasks: %w", err)
	}
	return oldValue.ActiveTasks, nil
}

// AddActiveTasks adds i to the "active_tasks" field.
func (m *TaskWorkerMutation) AddActiveTasks(i int) {
	if m.addactive_tasks != nil {
		*m.addactive_tasks += i
	} else {
		m.addactive_tasks = &i
	}
}

// AddedActiveTasks returns the value that was added to the "active_tasks" field in this mutation.
func (m *TaskWorkerMutation) AddedActiveTasks() (r int, exists bool) {
	v := m.addactive_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveTasks resets all changes to the "active_tasks" field.
func (m *TaskWorkerMutation) ResetActiveTasks() {
	m.active_tasks = nil
	m.addactive_tasks = nil
}

// SetQueues sets the "queues" field.
func (m *TaskWorkerMutation) SetQueues(s []string) {
	m.queues = &s
	m.appendqueues = nil
}

// Queues returns the value of the "queues" field in the mutation.
func (m *TaskWorkerMutation) Queues() (r []string, exists bool) {
	v := m.queues
	if v == nil {
		return
	}
	return *v, true
}

// OldQueues returns the old "queues" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldQueues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueues: %w", err)
	}
	return oldValue.Queues, nil
}

// AppendQueues adds s to the "queues" field.
func (m *TaskWorkerMutation) AppendQueues(s []string) {
	m.appendqueues = append(m.appendqueues, s...)
}

// AppendedQueues returns the list of values that were appended to the "queues" field in this mutation.
func (m *TaskWorkerMutation) AppendedQueues() ([]string, bool) {
	if len(m.appendqueues) == 0 {
		return nil, false
	}
	return m.appendqueues, true
}

// ResetQueues resets all changes to the "queues" field.
func (m *TaskWorkerMutation) ResetQueues() {
	m.queues = nil
	m.appendqueues = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *TaskWorkerMutation) SetCapabilities(value map[string]interface{}) {
	m.capabilities = &value
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *TaskWorkerMutation) Capabilities() (r map[string]interface{}, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldCapabilities(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *TaskWorkerMutation) ClearCapabilities() {
	m.capabilities = nil
	m.clearedFields[taskworker.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *TaskWorkerMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[taskworker.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *TaskWorkerMutation) ResetCapabilities() {
	m.capabilities = nil
	delete(m.clearedFields, taskworker.FieldCapabilities)
}

// SetMetadata sets the "metadata" field.
func (m *TaskWorkerMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskWorkerMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskWorkerMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[taskworker.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskWorkerMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[taskworker.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskWorkerMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, taskworker.FieldMetadata)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *TaskWorkerMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *TaskWorkerMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *TaskWorkerMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// SetRegisteredAt sets the "registered_at" field.
func (m *TaskWorkerMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *TaskWorkerMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the TaskWorker entity.
// If the TaskWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskWorkerMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *TaskWorkerMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// Where appends a list predicates to the TaskWorkerMutation builder.
func (m *TaskWorkerMutation) Where(ps ...predicate.TaskWorker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskWorkerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskWorkerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskWorker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskWorkerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskWorkerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskWorker).
func (m *TaskWorkerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskWorkerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.kind != nil {
		fields = append(fields, taskworker.FieldKind)
	}
	if m.hostname != nil {
		fields = append(fields, taskworker.FieldHostname)
	}
	if m.pid != nil {
		fields = append(fields, taskworker.FieldPid)
	}
	if m.status != nil {
		fields = append(fields, taskworker.FieldStatus)
	}
	if m.max_tasks != nil {
		fields = append(fields, taskworker.FieldMaxTasks)
	}
	if m.active_tasks != nil {
		fields = append(fields, taskworker.FieldActiveTasks)
	}
	if m.queues != nil {
		fields = append(fields, taskworker.FieldQueues)
	}
	if m.capabilities != nil {
		fields = append(fields, taskworker.FieldCapabilities)
	}
	if m.metadata != nil {
		fields = append(fields, taskworker.FieldMetadata)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, taskworker.FieldLastHeartbeat)
	}
	if m.registered_at != nil {
		fields = append(fields, taskworker.FieldRegisteredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskWorkerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskworker.FieldKind:
		return m.Kind()
	case taskworker.FieldHostname:
		return m.Hostname()
	case taskworker.FieldPid:
		return m.Pid()
	case taskworker.FieldStatus:
		return m.Status()
	case taskworker.FieldMaxTasks:
		return m.MaxTasks()
	case taskworker.FieldActiveTasks:
		return m.ActiveTasks()
	case taskworker.FieldQueues:
		return m.Queues()
	case taskworker.FieldCapabilities:
		return m.Capabilities()
	case taskworker.FieldMetadata:
		return m.Metadata()
	case taskworker.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case taskworker.FieldRegisteredAt:
		return m.RegisteredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskWorkerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskworker.FieldKind:
		return m.OldKind(ctx)
	case taskworker.FieldHostname:
		return m.OldHostname(ctx)
	case taskworker.FieldPid:
		return m.OldPid(ctx)
	case taskworker.FieldStatus:
		return m.OldStatus(ctx)
	case taskworker.FieldMaxTasks:
		return m.OldMaxTasks(ctx)
	case taskworker.FieldActiveTasks:
		return m.OldActiveTasks(ctx)
	case taskworker.FieldQueues:
		return m.OldQueues(ctx)
	case taskworker.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case taskworker.FieldMetadata:
		return m.OldMetadata(ctx)
	case taskworker.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case taskworker.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskWorker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskWorkerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskworker.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case taskworker.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case taskworker.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case taskworker.FieldStatus:
		v, ok := value.(taskworker.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskworker.FieldMaxTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTasks(v)
		return nil
	case taskworker.FieldActiveTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveTasks(v)
		return nil
	case taskworker.FieldQueues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueues(v)
		return nil
	case taskworker.FieldCapabilities:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case taskworker.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case taskworker.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case taskworker.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskWorker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskWorkerMutation) AddedFields() []string {
	var fields []string
	if m.addpid != nil {
		fields = append(fields, taskworker.FieldPid)
	}
	if m.addmax_tasks != nil {
		fields = append(fields, taskworker.FieldMaxTasks)
	}
	if m.addactive_tasks != nil {
		fields = append(fields, taskworker.FieldActiveTasks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskWorkerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskworker.FieldPid:
		return m.AddedPid()
	case taskworker.FieldMaxTasks:
		return m.AddedMaxTasks()
	case taskworker.FieldActiveTasks:
		return m.AddedActiveTasks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskWorkerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskworker.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPid(v)
		return nil
	case taskworker.FieldMaxTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTasks(v)
		return nil
	case taskworker.FieldActiveTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveTasks(v)
		return nil
	}
	return fmt.Errorf("unknown TaskWorker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskWorkerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskworker.FieldCapabilities) {
		fields = append(fields, taskworker.FieldCapabilities)
	}
	if m.FieldCleared(taskworker.FieldMetadata) {
		fields = append(fields, taskworker.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskWorkerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskWorkerMutation) ClearField(name string) error {
	switch name {
	case taskworker.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case taskworker.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown TaskWorker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskWorkerMutation) ResetField(name string) error {
	switch name {
	case taskworker.FieldKind:
		m.ResetKind()
		return nil
	case taskworker.FieldHostname:
		m.ResetHostname()
		return nil
	case taskworker.FieldPid:
		m.ResetPid()
		return nil
	case taskworker.FieldStatus:
		m.ResetStatus()
		return nil
	case taskworker.FieldMaxTasks:
		m.ResetMaxTasks()
		return nil
	case taskworker.FieldActiveTasks:
		m.ResetActiveTasks()
		return nil
	case taskworker.FieldQueues:
		m.ResetQueues()
		return nil
	case taskworker.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case taskworker.FieldMetadata:
		m.ResetMetadata()
		return nil
	case taskworker.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case taskworker.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	}
	return fmt.Errorf("unknown TaskWorker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskWorkerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskWorkerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskWorkerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskWorkerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskWorkerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskWorkerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskWorkerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskWorker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskWorkerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskWorker edge %s", name)
}

// WorkerEventMutation represents an operation that mutates the WorkerEvent nodes in the graph.
type WorkerEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	worker_id     *string
	event_type    *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WorkerEvent, error)
	predicates    []predicate.WorkerEvent
}

var _ ent.Mutation = (*WorkerEventMutation)(nil)

// workereventOption allows management of the mutation configuration using functional options.
type workereventOption func(*WorkerEventMutation)

// newWorkerEventMutation creates new mutation for the WorkerEvent entity.
func newWorkerEventMutation(c config, op Op, opts ...workereventOption) *WorkerEventMutation {
	m := &WorkerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkerEventID sets the ID field of the mutation.
func withWorkerEventID(id string) workereventOption {
	return func(m *WorkerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkerEvent
		)
		m.oldValue = func(ctx context.Context) (*WorkerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkerEvent sets the old WorkerEvent of the mutation.
func withWorkerEvent(node *WorkerEvent) workereventOption {
	return func(m *WorkerEventMutation) {
		m.oldValue = func(context.Context) (*WorkerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkerEvent entities.
func (m *WorkerEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkerEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkerEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkerID sets the "worker_id" field.
func (m *WorkerEventMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *WorkerEventMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the WorkerEvent entity.
// If the WorkerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkerEventMutation) OldWorkerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *WorkerEventMutation) ResetWorkerID() {
	m.worker_id = nil
}

// SetEventType sets the "event_type" field.
func (m *WorkerEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WorkerEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WorkerEvent entity.
// If the WorkerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkerEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WorkerEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDetails sets the "details" field.
func (m *WorkerEventMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *WorkerEventMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the WorkerEvent entity.
// If the WorkerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkerEventMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *WorkerEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[workerevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *WorkerEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[workerevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *WorkerEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, workerevent.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkerEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkerEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkerEvent entity.
// If the WorkerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkerEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkerEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkerEventMutation builder.
func (m *WorkerEventMutation) Where(ps ...predicate.WorkerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkerEvent).
func (m *WorkerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkerEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.worker_id != nil {
		fields = append(fields, workerevent.FieldWorkerID)
	}
	if m.event_type != nil {
		fields = append(fields, workerevent.FieldEventType)
	}
	if m.details != nil {
		fields = append(fields, workerevent.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, workerevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workerevent.FieldWorkerID:
		return m.WorkerID()
	case workerevent.FieldEventType:
		return m.EventType()
	case workerevent.FieldDetails:
		return m.Details()
	case workerevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workerevent.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case workerevent.FieldEventType:
		return m.OldEventType(ctx)
	case workerevent.FieldDetails:
		return m.OldDetails(ctx)
	case workerevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workerevent.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case workerevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case workerevent.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case workerevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkerEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkerEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workerevent.FieldDetails) {
		fields = append(fields, workerevent.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkerEventMutation) ClearField(name string) error {
	switch name {
	case workerevent.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown WorkerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkerEventMutation) ResetField(name string) error {
	switch name {
	case workerevent.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case workerevent.FieldEventType:
		m.ResetEventType()
		return nil
	case workerevent.FieldDetails:
		m.ResetDetails()
		return nil
	case workerevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkerEvent edge %s", name)
}
