package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
)

const (
	// defaultSubtaskTimeout bounds a single subtask execution.
	defaultSubtaskTimeout = 25 * time.Minute
	// defaultCancelGrace is how long in-flight subtasks get to abort after
	// a task-level cancel.
	defaultCancelGrace = 30 * time.Second
)

// InvokeRequest carries everything an agent needs to execute one subtask.
type InvokeRequest struct {
	TaskID      string
	SubtaskID   string
	Description string
	Parameters  map[string]any
}

// AgentInvoker executes one subtask on the assigned agent. The local
// invoker drives the LLM; the distributed service provides a broker-backed
// one.
type AgentInvoker interface {
	Invoke(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error)
}

// Executor drives a decomposition's DAG: it launches ready subtasks up to
// max_parallelism, records transitions, and detects deadlock.
type Executor struct {
	client   *ent.Client
	registry *registry.Registry
	monitor  *monitor.Monitor
	invoker  AgentInvoker

	subtaskTimeout time.Duration
	cancelGrace    time.Duration
}

// NewExecutor creates a DAG executor.
func NewExecutor(client *ent.Client, reg *registry.Registry, mon *monitor.Monitor, invoker AgentInvoker) *Executor {
	return &Executor{
		client:         client,
		registry:       reg,
		monitor:        mon,
		invoker:        invoker,
		subtaskTimeout: defaultSubtaskTimeout,
		cancelGrace:    defaultCancelGrace,
	}
}

// Execute runs the DAG to termination. It always returns an aggregate; the
// error is non-nil for deadlock and cancellation. A subtask starts only
// after all its dependencies completed; at most max_parallelism subtasks
// are in flight at once.
func (e *Executor) Execute(ctx context.Context, task *ent.Task, decomp *models.Decomposition, plan *models.DelegationPlan) (*models.TaskAggregate, error) {
	log := slog.With("task_id", task.ID)

	rowIDs, err := e.subtaskRowIDs(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	specs := make(map[string]models.SubtaskSpec, len(decomp.Subtasks))
	pending := make(map[string]bool, len(decomp.Subtasks))
	for _, s := range decomp.Subtasks {
		specs[s.ID] = s
		pending[s.ID] = true
	}
	inProgress := make(map[string]bool)
	completed := make(map[string]bool)
	results := make(map[string]*models.SubtaskResult, len(decomp.Subtasks))

	limit := decomp.MaxParallelism
	if limit < 1 {
		limit = 1
	}
	// Buffered so abandoned senders (after a cancel grace timeout) never
	// block.
	resultCh := make(chan *models.SubtaskResult, len(decomp.Subtasks))

	var terminal error
loop:
	for len(pending) > 0 || len(inProgress) > 0 {
		// Launch every ready subtask the parallelism budget allows.
		for _, localID := range readySubtasks(decomp.Subtasks, pending, completed) {
			if len(inProgress) >= limit {
				break
			}
			delete(pending, localID)
			inProgress[localID] = true
			go e.runSubtask(ctx, task, specs[localID], rowIDs[localID], plan.Assignments[localID], resultCh)
		}

		if len(inProgress) == 0 {
			// Nothing running and nothing launchable: the remaining
			// pending subtasks wait on dependencies that can never
			// complete.
			terminal = e.failDeadlocked(ctx, task, pending, results, rowIDs)
			break loop
		}

		select {
		case res := <-resultCh:
			delete(inProgress, res.SubtaskID)
			results[res.SubtaskID] = res
			if res.Success {
				completed[res.SubtaskID] = true
			}
		case <-ctx.Done():
			terminal = e.drainCancelled(task, pending, inProgress, results, resultCh, rowIDs)
			break loop
		}
	}

	agg := buildAggregate(decomp, results)
	if terminal != nil {
		return agg, terminal
	}
	if agg.SubtasksFailed > 0 {
		log.Info("Task execution finished with failures",
			"failed", agg.SubtasksFailed, "total", agg.SubtasksTotal)
	}
	return agg, nil
}

// readySubtasks lists pending subtasks whose dependencies all completed,
// in decomposition order.
func readySubtasks(specs []models.SubtaskSpec, pending, completed map[string]bool) []string {
	var ready []string
	for _, s := range specs {
		if !pending[s.ID] {
			continue
		}
		ok := true
		for _, dep := range s.Dependencies {
			if !completed[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, s.ID)
		}
	}
	return ready
}

// runSubtask executes one subtask and reports its result on resultCh. It
// always sends exactly one result.
func (e *Executor) runSubtask(ctx context.Context, task *ent.Task, spec models.SubtaskSpec, rowID, agentID string, resultCh chan<- *models.SubtaskResult) {
	start := time.Now()
	e.markStarted(rowID, agentID)
	e.registry.AddLoad(agentID)
	_, _ = e.registry.SetStatus(context.Background(), agentID, agent.StatusProcessing)

	execCtx, cancel := context.WithTimeout(ctx, e.subtaskTimeout)
	output, err := e.invoker.Invoke(execCtx, agentID, InvokeRequest{
		TaskID:      task.ID,
		SubtaskID:   spec.ID,
		Description: spec.Description,
		Parameters:  task.Parameters,
	})
	cancel()

	elapsed := time.Since(start)
	res := &models.SubtaskResult{
		SubtaskID:       spec.ID,
		AgentID:         agentID,
		ExecutionTimeMS: elapsed.Milliseconds(),
	}
	switch {
	case err == nil:
		res.Success = true
		res.Result = output
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		res.Error = "subtask timeout exhausted"
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		res.Error = services.ErrCancelled.Error()
	default:
		res.Error = err.Error()
	}

	e.persistResult(rowID, res)
	e.registry.ReleaseLoad(agentID)
	if e.registry.CurrentLoad(agentID) == 0 {
		_, _ = e.registry.SetStatus(context.Background(), agentID, agent.StatusIdle)
	}
	e.registry.RecordExecution(agentID, res.Success, float64(res.ExecutionTimeMS), 0)
	e.monitor.RecordAgentExecution(context.Background(), agentID, res.Success, float64(res.ExecutionTimeMS), 0)

	resultCh <- res
}

// failDeadlocked marks every remaining pending subtask failed, records the
// fault in error_logs, and returns the deadlock error.
func (e *Executor) failDeadlocked(ctx context.Context, task *ent.Task, pending map[string]bool, results map[string]*models.SubtaskResult, rowIDs map[string]string) error {
	slog.Error("Dependency deadlock detected", "task_id", task.ID, "stuck_subtasks", len(pending))

	for localID := range pending {
		res := &models.SubtaskResult{
			SubtaskID: localID,
			Error:     services.ErrDependencyDeadlock.Error(),
		}
		results[localID] = res
		e.persistResult(rowIDs[localID], res)
	}

	err := e.client.ErrorLog.Create().
		SetID(uuid.New().String()).
		SetSource("orchestrator").
		SetMessage("dependency deadlock: frontier and in-flight sets both empty with subtasks pending").
		SetTaskID(task.ID).
		SetDetails(map[string]any{"stuck_subtasks": len(pending)}).
		Exec(context.WithoutCancel(ctx))
	if err != nil {
		slog.Error("Failed to record deadlock in error_logs", "task_id", task.ID, "error", err)
	}

	return services.ErrDependencyDeadlock
}

// drainCancelled handles a task-level cancel: in-flight subtasks get the
// grace period to abort (their contexts are already cancelled), everything
// still unfinished afterwards is marked failed as cancelled.
func (e *Executor) drainCancelled(task *ent.Task, pending, inProgress map[string]bool, results map[string]*models.SubtaskResult, resultCh <-chan *models.SubtaskResult, rowIDs map[string]string) error {
	slog.Info("Task cancelled, draining in-flight subtasks",
		"task_id", task.ID, "in_flight", len(inProgress), "grace", e.cancelGrace)

	grace := time.NewTimer(e.cancelGrace)
	defer grace.Stop()
	for len(inProgress) > 0 {
		select {
		case res := <-resultCh:
			delete(inProgress, res.SubtaskID)
			results[res.SubtaskID] = res
		case <-grace.C:
			for localID := range inProgress {
				res := &models.SubtaskResult{SubtaskID: localID, Error: services.ErrCancelled.Error()}
				results[localID] = res
				e.persistResult(rowIDs[localID], res)
			}
			inProgress = map[string]bool{}
		}
	}

	for localID := range pending {
		res := &models.SubtaskResult{SubtaskID: localID, Error: services.ErrCancelled.Error()}
		results[localID] = res
		e.persistResult(rowIDs[localID], res)
	}

	return services.ErrCancelled
}

// subtaskRowIDs maps decomposition-local IDs to subtask row IDs.
func (e *Executor) subtaskRowIDs(ctx context.Context, taskID string) (map[string]string, error) {
	rows, err := e.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtasks for task %s: %w", taskID, err)
	}
	ids := make(map[string]string, len(rows))
	for _, row := range rows {
		ids[row.LocalID] = row.ID
	}
	return ids, nil
}

// markStarted transitions a subtask row to in_progress. Best effort: a
// store hiccup here must not block execution.
func (e *Executor) markStarted(rowID, agentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := e.client.Subtask.UpdateOneID(rowID).
		SetStatus(subtask.StatusInProgress).
		SetAgentID(agentID).
		SetStartedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to mark subtask in_progress", "subtask_row", rowID, "error", err)
	}
}

// persistResult writes a terminal subtask state. Best effort, logged. The
// status predicate makes the first terminal write win: a goroutine
// abandoned by the cancellation grace timer may report long after the row
// was already closed out, and that late report must not reopen it.
func (e *Executor) persistResult(rowID string, res *models.SubtaskResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := e.client.Subtask.Update().
		Where(
			subtask.IDEQ(rowID),
			subtask.StatusNotIn(subtask.StatusCompleted, subtask.StatusFailed),
		).
		SetCompletedAt(time.Now().UTC()).
		SetExecutionTimeMs(res.ExecutionTimeMS)
	if res.Success {
		update.SetStatus(subtask.StatusCompleted)
		if res.Result != nil {
			update.SetResult(res.Result)
		}
	} else {
		update.SetStatus(subtask.StatusFailed).
			SetErrorMessage(res.Error)
	}
	if res.AgentID != "" {
		update.SetAgentID(res.AgentID)
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Failed to persist subtask result", "subtask_row", rowID, "error", err)
	}
}
