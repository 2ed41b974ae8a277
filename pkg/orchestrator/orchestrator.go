// Package orchestrator transforms submitted tasks into subtask DAGs,
// assigns agents, executes respecting dependencies, and aggregates results.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
)

// Dispatcher hands tasks off to the worker fleet. Nil disables distributed
// modes; dispatch errors degrade execution to local.
type Dispatcher interface {
	// DispatchTask pushes a whole task onto a broker queue (DISTRIBUTED).
	DispatchTask(ctx context.Context, t *ent.Task) error
	// DispatchSubtasks pushes each subtask of a local decomposition onto
	// the broker with dependency metadata (HYBRID).
	DispatchSubtasks(ctx context.Context, t *ent.Task, decomp *models.Decomposition, plan *models.DelegationPlan) error
}

// Config contains orchestrator tuning knobs.
type Config struct {
	// QueueSize bounds the submission queue; overflow fails submission.
	QueueSize int
	// PodID identifies this replica on task rows for orphan recovery.
	PodID string
}

// DefaultConfig returns the built-in orchestrator defaults.
func DefaultConfig() Config {
	return Config{QueueSize: 100}
}

// Orchestrator owns the task pipeline: bounded submission queue, a single
// processor consuming it, and per-task cancellation.
type Orchestrator struct {
	client     *ent.Client
	registry   *registry.Registry
	monitor    *monitor.Monitor
	decomposer *Decomposer
	planner    *Planner
	executor   *Executor
	dispatcher Dispatcher
	config     Config

	queue chan string

	// cancelMu guards the per-task cancel registry.
	cancelMu sync.Mutex
	cancels  map[string]context.CancelFunc

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New assembles an orchestrator. dispatcher may be nil (local-only).
func New(client *ent.Client, reg *registry.Registry, mon *monitor.Monitor, llmClient llm.Client, invoker AgentInvoker, dispatcher Dispatcher, cfg Config) *Orchestrator {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	return &Orchestrator{
		client:     client,
		registry:   reg,
		monitor:    mon,
		decomposer: NewDecomposer(llmClient),
		planner:    NewPlanner(reg),
		executor:   NewExecutor(client, reg, mon, invoker),
		dispatcher: dispatcher,
		config:     cfg,
		queue:      make(chan string, cfg.QueueSize),
		cancels:    make(map[string]context.CancelFunc),
		stopCh:     make(chan struct{}),
	}
}

// Start launches the task processor: a single consumer that drives each
// task serially while its subtasks run concurrently.
func (o *Orchestrator) Start(ctx context.Context) {
	o.wg.Add(1)
	go o.run(ctx)
	slog.Info("Orchestrator started", "queue_size", o.config.QueueSize, "pod_id", o.config.PodID)
}

// Stop signals the processor to finish the current task and exit. Safe to
// call multiple times.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() { close(o.stopCh) })
	o.wg.Wait()
	slog.Info("Orchestrator stopped")
}

func (o *Orchestrator) run(ctx context.Context) {
	defer o.wg.Done()
	for {
		select {
		case <-o.stopCh:
			return
		case <-ctx.Done():
			return
		case taskID := <-o.queue:
			o.processTask(ctx, taskID, false)
		}
	}
}

// Submit validates the input, persists a task record, and enqueues it.
// A full queue fails the submission; nothing is persisted in that case.
func (o *Orchestrator) Submit(ctx context.Context, input models.SubmitTaskInput) (*ent.Task, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, services.NewValidationError("description", "must not be empty")
	}
	if input.Priority == 0 {
		input.Priority = 3
	}
	if input.Priority < 1 || input.Priority > 5 {
		return nil, services.NewValidationError("priority", "must be between 1 and 5")
	}
	if input.DecompositionStrategy == "" {
		input.DecompositionStrategy = models.DecompositionHierarchical
	}
	if err := input.DecompositionStrategy.Validate(); err != nil {
		return nil, services.NewValidationError("decomposition_strategy", err.Error())
	}
	if input.DelegationStrategy == "" {
		input.DelegationStrategy = models.DelegationCapabilityMatch
	}
	if err := input.DelegationStrategy.Validate(); err != nil {
		return nil, services.NewValidationError("delegation_strategy", err.Error())
	}
	if input.DistributionMode == "" {
		input.DistributionMode = models.DistributionLocal
	}
	if err := input.DistributionMode.Validate(); err != nil {
		return nil, services.NewValidationError("distribution_mode", err.Error())
	}

	builder := o.client.Task.Create().
		SetID(uuid.New().String()).
		SetDescription(input.Description).
		SetPriority(input.Priority).
		SetDecompositionStrategy(string(input.DecompositionStrategy)).
		SetDelegationStrategy(string(input.DelegationStrategy)).
		SetDistributionMode(task.DistributionMode(input.DistributionMode)).
		SetStatus(task.StatusSubmitted)
	if input.Parameters != nil {
		builder.SetParameters(input.Parameters)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist task: %w", err)
	}

	select {
	case o.queue <- created.ID:
	default:
		// Roll the record back so a rejected submission leaves no trace.
		_ = o.client.Task.DeleteOneID(created.ID).Exec(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("submission queue full (%d): %w", o.config.QueueSize, services.ErrBackpressureExceeded)
	}

	slog.Info("Task submitted", "task_id", created.ID, "priority", created.Priority,
		"mode", created.DistributionMode)
	return created, nil
}

// Cancel aborts a task. Queued tasks flip straight to cancelled; a task in
// flight has its context cancelled and the processor records the terminal
// state. Terminal tasks are not cancellable.
func (o *Orchestrator) Cancel(ctx context.Context, taskID string) error {
	t, err := o.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s: %w", taskID, services.ErrNotFound)
		}
		return fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	switch t.Status {
	case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
		return fmt.Errorf("task %s is %s: %w", taskID, t.Status, services.ErrNotCancellable)
	case task.StatusSubmitted, task.StatusQueued:
		return o.finishTask(ctx, taskID, task.StatusCancelled, nil, services.ErrCancelled.Error())
	}

	o.cancelMu.Lock()
	cancel, ok := o.cancels[taskID]
	o.cancelMu.Unlock()
	if !ok {
		// In-flight on another replica or already draining; flag the row.
		return o.finishTask(ctx, taskID, task.StatusCancelled, nil, services.ErrCancelled.Error())
	}

	slog.Info("Cancelling task", "task_id", taskID)
	cancel()
	return nil
}

// processTask drives one task through decomposition, planning, and
// execution.
func (o *Orchestrator) processTask(ctx context.Context, taskID string, forceLocal bool) {
	log := slog.With("task_id", taskID)

	t, err := o.client.Task.Get(ctx, taskID)
	if err != nil {
		log.Error("Failed to load queued task", "error", err)
		return
	}
	expected := task.StatusSubmitted
	if forceLocal {
		expected = task.StatusQueued
	}
	if t.Status != expected {
		// Cancelled while waiting in the queue.
		log.Info("Skipping task no longer runnable", "status", t.Status)
		return
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.cancelMu.Lock()
	o.cancels[taskID] = cancel
	o.cancelMu.Unlock()
	defer func() {
		o.cancelMu.Lock()
		delete(o.cancels, taskID)
		o.cancelMu.Unlock()
	}()

	mode := models.DistributionMode(t.DistributionMode)

	// DISTRIBUTED pushes the whole task to the fleet before any local work.
	if mode == models.DistributionDistributed && o.dispatcher != nil && !forceLocal {
		if err := o.dispatcher.DispatchTask(taskCtx, t); err == nil {
			o.setStatus(taskID, task.StatusQueued)
			log.Info("Task dispatched to worker fleet")
			return
		} else {
			log.Warn("Distributed dispatch failed, degrading to local execution", "error", err)
		}
	}

	t = o.setStatusStarted(taskID)
	if t == nil {
		return
	}

	decomp := o.decomposer.Decompose(taskCtx, taskID, t.Description,
		models.DecompositionStrategy(t.DecompositionStrategy))
	if err := o.persistDecomposition(taskCtx, decomp); err != nil {
		log.Error("Failed to persist decomposition", "error", err)
		_ = o.finishTask(context.WithoutCancel(ctx), taskID, task.StatusFailed, nil, err.Error())
		return
	}
	o.setStatus(taskID, task.StatusDecomposed)

	plan, err := o.planner.BuildPlan(decomp,
		models.DelegationStrategy(t.DelegationStrategy), domainOf(t))
	if err != nil {
		log.Warn("Delegation plan failed", "error", err)
		_ = o.finishTask(context.WithoutCancel(ctx), taskID, task.StatusFailed, nil, err.Error())
		return
	}

	// HYBRID hands the planned subtasks to the fleet; workers gate on
	// dependencies through the store.
	if mode == models.DistributionHybrid && o.dispatcher != nil && !forceLocal {
		if err := o.dispatcher.DispatchSubtasks(taskCtx, t, decomp, plan); err == nil {
			o.setStatus(taskID, task.StatusQueued)
			log.Info("Subtasks dispatched to worker fleet", "subtasks", len(decomp.Subtasks))
			return
		}
		log.Warn("Hybrid dispatch failed, degrading to local execution", "error", err)
	}

	o.setStatus(taskID, task.StatusProcessing)
	agg, execErr := o.executor.Execute(taskCtx, t, decomp, plan)
	result := aggregateToMap(agg)

	finishCtx := context.WithoutCancel(ctx)
	switch {
	case errors.Is(execErr, services.ErrCancelled) || taskCtx.Err() != nil:
		_ = o.finishTask(finishCtx, taskID, task.StatusCancelled, result, services.ErrCancelled.Error())
	case errors.Is(execErr, services.ErrDependencyDeadlock):
		_ = o.finishTask(finishCtx, taskID, task.StatusFailed, result, services.ErrDependencyDeadlock.Error())
	case agg.SubtasksFailed > 0:
		_ = o.finishTask(finishCtx, taskID, task.StatusFailed, result,
			fmt.Sprintf("%d of %d subtasks failed", agg.SubtasksFailed, agg.SubtasksTotal))
	default:
		_ = o.finishTask(finishCtx, taskID, task.StatusCompleted, result, "")
		log.Info("Task completed", "subtasks", agg.SubtasksTotal)
	}
}

// ProcessQueued runs a task that was dispatched to the worker fleet.
// Distributed workers call this after dequeuing a whole-task message; the
// task executes locally on this node regardless of its distribution mode.
func (o *Orchestrator) ProcessQueued(ctx context.Context, taskID string) error {
	t, err := o.client.Task.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	if t.Status != task.StatusQueued {
		return fmt.Errorf("task %s is not queued (status %s)", taskID, t.Status)
	}
	o.processTask(ctx, taskID, true)
	return nil
}

// persistDecomposition writes the decomposition record and its subtask
// rows.
func (o *Orchestrator) persistDecomposition(ctx context.Context, decomp *models.Decomposition) error {
	err := o.client.TaskDecomposition.Create().
		SetID(uuid.New().String()).
		SetTaskID(decomp.TaskID).
		SetDescription(decomp.Description).
		SetStrategy(string(decomp.Strategy)).
		SetTotalComplexity(decomp.TotalComplexity).
		SetMaxParallelism(decomp.MaxParallelism).
		SetCriticalPath(decomp.CriticalPath).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist decomposition: %w", err)
	}

	builders := make([]*ent.SubtaskCreate, len(decomp.Subtasks))
	for i, s := range decomp.Subtasks {
		builders[i] = o.client.Subtask.Create().
			SetID(uuid.New().String()).
			SetTaskID(decomp.TaskID).
			SetLocalID(s.ID).
			SetDescription(s.Description).
			SetRequiredCapabilities(s.RequiredCapabilities).
			SetEstimatedComplexity(subtaskComplexity(s.EstimatedComplexity)).
			SetDependsOn(s.Dependencies)
	}
	if _, err := o.client.Subtask.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist subtasks: %w", err)
	}
	return nil
}

func (o *Orchestrator) setStatusStarted(taskID string) *ent.Task {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := o.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusDecomposing).
		SetStartedAt(time.Now().UTC())
	if o.config.PodID != "" {
		update.SetPodID(o.config.PodID)
	}
	t, err := update.Save(ctx)
	if err != nil {
		slog.Error("Failed to mark task decomposing", "task_id", taskID, "error", err)
		return nil
	}
	return t
}

func (o *Orchestrator) setStatus(taskID string, status task.Status) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.client.Task.UpdateOneID(taskID).SetStatus(status).Exec(ctx); err != nil {
		slog.Error("Failed to update task status", "task_id", taskID, "status", status, "error", err)
	}
}

// finishTask records a terminal status with result and error message.
func (o *Orchestrator) finishTask(ctx context.Context, taskID string, status task.Status, result map[string]any, errMsg string) error {
	update := o.client.Task.UpdateOneID(taskID).
		SetStatus(status).
		SetCompletedAt(time.Now().UTC())
	if result != nil {
		update.SetResult(result)
	}
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to finish task", "task_id", taskID, "status", status, "error", err)
		return fmt.Errorf("failed to finish task %s: %w", taskID, err)
	}
	return nil
}

// domainOf extracts the optional domain hint from task parameters.
func domainOf(t *ent.Task) string {
	if t.Parameters == nil {
		return ""
	}
	if d, ok := t.Parameters["domain"].(string); ok {
		return d
	}
	return ""
}

// aggregateToMap converts the aggregate into the JSON shape stored on the
// task row.
func aggregateToMap(agg *models.TaskAggregate) map[string]any {
	if agg == nil {
		return nil
	}
	raw, err := json.Marshal(agg)
	if err != nil {
		slog.Error("Failed to encode task aggregate", "error", err)
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func subtaskComplexity(c models.Complexity) subtask.EstimatedComplexity {
	switch c {
	case models.ComplexityLow:
		return subtask.EstimatedComplexityLow
	case models.ComplexityHigh:
		return subtask.EstimatedComplexityHigh
	default:
		return subtask.EstimatedComplexityMedium
	}
}
