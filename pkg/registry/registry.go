// Package registry owns the canonical set of agents: creation, retrieval,
// update, deletion, lifecycle transitions, and policy-driven selection.
// Other components reference agents by UUID only.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/services"
)

// defaultCapability is assumed for agents created without capabilities and
// for selection requests with an empty requirement list.
const defaultCapability = "general"

// InitHook runs once per agent on its first start, before the agent turns
// idle. Loading persisted context and registering tools belongs here.
type InitHook func(ctx context.Context, a *ent.Agent) error

// agentStats is the per-agent runtime state feeding selection scoring.
type agentStats struct {
	load           int
	executions     int64
	successes      int64
	totalLatencyMS float64
	totalCost      float64
}

func (s *agentStats) successRate() float64 {
	if s.executions == 0 {
		return 1.0
	}
	return float64(s.successes) / float64(s.executions)
}

func (s *agentStats) avgLatencyMS() float64 {
	if s.executions == 0 {
		return 0
	}
	return s.totalLatencyMS / float64(s.executions)
}

func (s *agentStats) costPerRequest() float64 {
	if s.executions == 0 {
		return 0
	}
	return s.totalCost / float64(s.executions)
}

// Registry is the single owner of in-memory agent state. The store is the
// source of truth; the maps are a write-through cache plus the capability
// index used for O(1) lookup.
type Registry struct {
	client   *ent.Client
	initHook InitHook

	mu          sync.RWMutex
	byID        map[string]*ent.Agent
	byName      map[string]string
	capIndex    map[string]map[string]struct{}
	stats       map[string]*agentStats
	initialized map[string]bool
}

// New creates an empty registry. Call Load to warm it from storage.
func New(client *ent.Client, initHook InitHook) *Registry {
	return &Registry{
		client:      client,
		initHook:    initHook,
		byID:        make(map[string]*ent.Agent),
		byName:      make(map[string]string),
		capIndex:    make(map[string]map[string]struct{}),
		stats:       make(map[string]*agentStats),
		initialized: make(map[string]bool),
	}
}

// Load rebuilds the cache and capability index from storage. Meant to run
// once at startup, before the registry is shared.
func (r *Registry) Load(ctx context.Context) error {
	agents, err := r.client.Agent.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range agents {
		r.cacheLocked(a)
	}
	slog.Info("Agent registry loaded", "agents", len(agents))
	return nil
}

// Create validates the definition, persists the agent, and indexes its
// capabilities. The returned agent is in `initializing` state.
func (r *Registry) Create(ctx context.Context, def models.AgentDefinition) (*ent.Agent, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, services.NewValidationError("name", "must not be empty")
	}
	kind := agent.Kind(def.Kind)
	if err := agent.KindValidator(kind); err != nil {
		return nil, services.NewValidationError("kind", err.Error())
	}

	r.mu.RLock()
	_, nameTaken := r.byName[def.Name]
	r.mu.RUnlock()
	if nameTaken {
		return nil, fmt.Errorf("agent %q: %w", def.Name, services.ErrNameConflict)
	}

	if def.SupervisorID != nil {
		if _, err := r.Get(ctx, *def.SupervisorID); err != nil {
			return nil, fmt.Errorf("supervisor %s: %w", *def.SupervisorID, services.ErrInvalidSupervisor)
		}
	}

	capabilities := normalizeCapabilities(def.Capabilities)
	maxIterations := def.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 10
	}

	builder := r.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName(def.Name).
		SetKind(kind).
		SetCapabilities(capabilities).
		SetAllowDelegation(def.AllowDelegation).
		SetMaxIterations(maxIterations).
		SetStatus(agent.StatusInitializing)
	if def.SystemPrompt != "" {
		builder.SetSystemPrompt(def.SystemPrompt)
	}
	if def.Domain != "" {
		builder.SetDomain(def.Domain)
	}
	if def.SupervisorID != nil {
		builder.SetSupervisorID(*def.SupervisorID)
	}
	if def.Config != nil {
		builder.SetConfig(def.Config)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent %q: %w", def.Name, services.ErrNameConflict)
		}
		return nil, fmt.Errorf("failed to create agent %q: %w", def.Name, err)
	}

	r.mu.Lock()
	r.cacheLocked(created)
	r.mu.Unlock()

	slog.Info("Agent created", "agent_id", created.ID, "name", created.Name, "kind", created.Kind)
	return created, nil
}

// Get returns the agent with the given UUID.
func (r *Registry) Get(ctx context.Context, id string) (*ent.Agent, error) {
	r.mu.RLock()
	cached, ok := r.byID[id]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	a, err := r.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent %s: %w", id, err)
	}

	r.mu.Lock()
	r.cacheLocked(a)
	r.mu.Unlock()
	return a, nil
}

// GetByName returns the agent with the given unique name.
func (r *Registry) GetByName(ctx context.Context, name string) (*ent.Agent, error) {
	r.mu.RLock()
	id, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return r.Get(ctx, id)
	}

	a, err := r.client.Agent.Query().Where(agent.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %q: %w", name, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent %q: %w", name, err)
	}

	r.mu.Lock()
	r.cacheLocked(a)
	r.mu.Unlock()
	return a, nil
}

// List returns agents matching the filters, ordered by name. The capability
// filter is a substring match against each declared capability.
func (r *Registry) List(ctx context.Context, filters models.AgentFilters) ([]*ent.Agent, error) {
	q := r.client.Agent.Query()
	if filters.Kind != "" {
		q = q.Where(agent.KindEQ(agent.Kind(filters.Kind)))
	}
	if filters.Status != "" {
		q = q.Where(agent.StatusEQ(agent.Status(filters.Status)))
	}
	if filters.Domain != "" {
		q = q.Where(agent.DomainEQ(filters.Domain))
	}

	agents, err := q.Order(ent.Asc(agent.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	if filters.Capability == "" {
		return agents, nil
	}
	filtered := agents[:0]
	for _, a := range agents {
		for _, c := range a.Capabilities {
			if strings.Contains(c, filters.Capability) {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered, nil
}

// Update applies the patch and re-indexes capabilities when they change.
// ID and kind are immutable. The store write happens first, so a persist
// failure leaves the in-memory index untouched.
func (r *Registry) Update(ctx context.Context, id string, patch models.AgentPatch) (*ent.Agent, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.SupervisorID != nil {
		if err := r.validateSupervisor(ctx, id, *patch.SupervisorID); err != nil {
			return nil, err
		}
	}

	update := current.Update()
	if patch.SystemPrompt != nil {
		update.SetSystemPrompt(*patch.SystemPrompt)
	}
	if patch.Capabilities != nil {
		update.SetCapabilities(normalizeCapabilities(patch.Capabilities))
	}
	if patch.Domain != nil {
		update.SetDomain(*patch.Domain)
	}
	if patch.SupervisorID != nil {
		update.SetSupervisorID(*patch.SupervisorID)
	}
	if patch.Config != nil {
		update.SetConfig(patch.Config)
	}
	if patch.AllowDelegation != nil {
		update.SetAllowDelegation(*patch.AllowDelegation)
	}
	if patch.MaxIterations != nil {
		update.SetMaxIterations(*patch.MaxIterations)
	}
	update.SetLastActivityAt(time.Now().UTC())

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent %s: %w", id, err)
	}

	r.mu.Lock()
	r.uncacheLocked(current)
	r.cacheLocked(updated)
	r.mu.Unlock()
	return updated, nil
}

// Delete removes an agent. Refused while other agents list it as their
// supervisor; detaching or cascading is the caller's decision.
func (r *Registry) Delete(ctx context.Context, id string) error {
	a, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	dependents, err := r.client.Agent.Query().
		Where(agent.SupervisorIDEQ(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check supervisees of agent %s: %w", id, err)
	}
	if dependents > 0 {
		return fmt.Errorf("agent %s supervises %d agents: %w", id, dependents, services.ErrAgentInUse)
	}

	if err := r.client.Agent.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", id, services.ErrNotFound)
		}
		return fmt.Errorf("failed to delete agent %s: %w", id, err)
	}

	r.mu.Lock()
	r.uncacheLocked(a)
	delete(r.stats, id)
	delete(r.initialized, id)
	r.mu.Unlock()

	slog.Info("Agent deleted", "agent_id", id, "name", a.Name)
	return nil
}

// Start transitions an agent to idle, running the initialization hook on
// the first start. Busy agents cannot be started.
func (r *Registry) Start(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == agent.StatusProcessing || a.Status == agent.StatusWaiting {
		return nil, services.NewValidationError("status", fmt.Sprintf("agent is %s and cannot be started", a.Status))
	}

	r.mu.Lock()
	needsInit := !r.initialized[id]
	r.mu.Unlock()

	if needsInit && r.initHook != nil {
		if err := r.initHook(ctx, a); err != nil {
			_, _ = r.SetStatus(ctx, id, agent.StatusError)
			return nil, fmt.Errorf("agent %s initialization failed: %w", id, err)
		}
	}

	updated, err := r.SetStatus(ctx, id, agent.StatusIdle)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.initialized[id] = true
	r.mu.Unlock()

	slog.Info("Agent started", "agent_id", id, "name", a.Name)
	return updated, nil
}

// Stop transitions an agent to stopped. Stopped agents are excluded from
// selection until restarted.
func (r *Registry) Stop(ctx context.Context, id string) (*ent.Agent, error) {
	updated, err := r.SetStatus(ctx, id, agent.StatusStopped)
	if err != nil {
		return nil, err
	}
	slog.Info("Agent stopped", "agent_id", id, "name", updated.Name)
	return updated, nil
}

// SetStatus persists a status transition and refreshes the cache.
func (r *Registry) SetStatus(ctx context.Context, id string, status agent.Status) (*ent.Agent, error) {
	updated, err := r.client.Agent.UpdateOneID(id).
		SetStatus(status).
		SetLastActivityAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to set agent %s status: %w", id, err)
	}

	r.mu.Lock()
	if old, ok := r.byID[id]; ok {
		r.uncacheLocked(old)
	}
	r.cacheLocked(updated)
	r.mu.Unlock()
	return updated, nil
}

// FindByCapability returns agents offering the exact capability, ordered by
// name. Constant-time index lookup; no storage round-trip.
func (r *Registry) FindByCapability(capability string) []*ent.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.capIndex[capability]
	if !ok {
		return nil
	}
	agents := make([]*ent.Agent, 0, len(ids))
	for id := range ids {
		if a, ok := r.byID[id]; ok {
			agents = append(agents, a)
		}
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return agents
}

// RecordExecution folds one finished execution into the runtime stats used
// by cost_optimized and performance_optimized scoring.
func (r *Registry) RecordExecution(agentID string, success bool, latencyMS, cost float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.statsLocked(agentID)
	s.executions++
	if success {
		s.successes++
	}
	s.totalLatencyMS += latencyMS
	s.totalCost += cost
}

// AddLoad increments the agent's in-flight assignment count.
func (r *Registry) AddLoad(agentID string) {
	r.mu.Lock()
	r.statsLocked(agentID).load++
	r.mu.Unlock()
}

// ReleaseLoad decrements the agent's in-flight assignment count.
func (r *Registry) ReleaseLoad(agentID string) {
	r.mu.Lock()
	if s := r.statsLocked(agentID); s.load > 0 {
		s.load--
	}
	r.mu.Unlock()
}

// CurrentLoad returns the agent's in-flight assignment count.
func (r *Registry) CurrentLoad(agentID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.stats[agentID]; ok {
		return s.load
	}
	return 0
}

// validateSupervisor rejects unknown supervisors, self-supervision, and
// supervisor chains that would loop back to the agent.
func (r *Registry) validateSupervisor(ctx context.Context, id, supervisorID string) error {
	if supervisorID == id {
		return fmt.Errorf("agent %s cannot supervise itself: %w", id, services.ErrInvalidSupervisor)
	}
	seen := map[string]bool{id: true}
	current := supervisorID
	for current != "" {
		if seen[current] {
			return fmt.Errorf("supervisor chain loops through %s: %w", current, services.ErrInvalidSupervisor)
		}
		seen[current] = true
		sup, err := r.Get(ctx, current)
		if err != nil {
			return fmt.Errorf("supervisor %s: %w", current, services.ErrInvalidSupervisor)
		}
		if sup.SupervisorID == nil {
			break
		}
		current = *sup.SupervisorID
	}
	return nil
}

func (r *Registry) statsLocked(agentID string) *agentStats {
	s, ok := r.stats[agentID]
	if !ok {
		s = &agentStats{}
		r.stats[agentID] = s
	}
	return s
}

// cacheLocked inserts an agent into all maps. Caller holds r.mu.
func (r *Registry) cacheLocked(a *ent.Agent) {
	r.byID[a.ID] = a
	r.byName[a.Name] = a.ID
	for _, c := range a.Capabilities {
		set, ok := r.capIndex[c]
		if !ok {
			set = make(map[string]struct{})
			r.capIndex[c] = set
		}
		set[a.ID] = struct{}{}
	}
}

// uncacheLocked removes an agent from all maps. Caller holds r.mu.
func (r *Registry) uncacheLocked(a *ent.Agent) {
	delete(r.byID, a.ID)
	delete(r.byName, a.Name)
	for _, c := range a.Capabilities {
		if set, ok := r.capIndex[c]; ok {
			delete(set, a.ID)
			if len(set) == 0 {
				delete(r.capIndex, c)
			}
		}
	}
}

func normalizeCapabilities(capabilities []string) []string {
	out := make([]string, 0, len(capabilities))
	seen := make(map[string]bool)
	for _, c := range capabilities {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		out = []string{defaultCapability}
	}
	return out
}
