package distributed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
)

const (
	// maxSubtaskRetries bounds how many times a failing subtask is requeued
	// before it is marked failed for good.
	maxSubtaskRetries = 3

	defaultHeartbeatInterval = 15 * time.Second
	defaultPollWait          = 5 * time.Second
	defaultWorkerTimeout     = 25 * time.Minute
)

// TaskProcessor runs a whole queued task on this node. Satisfied by
// *orchestrator.Orchestrator.
type TaskProcessor interface {
	ProcessQueued(ctx context.Context, taskID string) error
}

// RunnerConfig contains worker runner tuning knobs.
type RunnerConfig struct {
	WorkerID          string
	Queues            []string
	MaxTasks          int
	HeartbeatInterval time.Duration
	PollWait          time.Duration
	SubtaskTimeout    time.Duration
}

// Runner is one distributed worker process: it registers itself, heartbeats,
// polls the broker, and executes dequeued tasks and subtasks.
type Runner struct {
	client    *ent.Client
	broker    *broker.Client
	service   *Service
	registry  *registry.Registry
	monitor   *monitor.Monitor
	invoker   orchestrator.AgentInvoker
	processor TaskProcessor
	config    RunnerConfig

	active   atomic.Int64
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner creates a worker runner. processor may be nil for workers that
// only serve subtask queues.
func NewRunner(client *ent.Client, brokerClient *broker.Client, svc *Service, reg *registry.Registry, mon *monitor.Monitor, invoker orchestrator.AgentInvoker, processor TaskProcessor, cfg RunnerConfig) *Runner {
	if cfg.WorkerID == "" {
		cfg.WorkerID = NewWorkerID()
	}
	if len(cfg.Queues) == 0 {
		cfg.Queues = []string{broker.QueueDefault, broker.QueueAgentTasks}
	}
	if cfg.MaxTasks <= 0 {
		cfg.MaxTasks = 5
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = defaultHeartbeatInterval
	}
	if cfg.PollWait <= 0 {
		cfg.PollWait = defaultPollWait
	}
	if cfg.SubtaskTimeout <= 0 {
		cfg.SubtaskTimeout = defaultWorkerTimeout
	}
	return &Runner{
		client:    client,
		broker:    brokerClient,
		service:   svc,
		registry:  reg,
		monitor:   mon,
		invoker:   invoker,
		processor: processor,
		config:    cfg,
		stopCh:    make(chan struct{}),
	}
}

// WorkerID returns this runner's worker identifier.
func (r *Runner) WorkerID() string {
	return r.config.WorkerID
}

// Start registers the worker and launches the heartbeat and poll loops.
func (r *Runner) Start(ctx context.Context) error {
	hostname, _ := os.Hostname()
	if _, err := r.service.RegisterWorker(ctx, models.RegisterWorkerInput{
		WorkerID: r.config.WorkerID,
		Hostname: hostname,
		PID:      os.Getpid(),
		MaxTasks: r.config.MaxTasks,
		Queues:   r.config.Queues,
	}); err != nil {
		return fmt.Errorf("failed to register worker: %w", err)
	}

	r.wg.Add(2)
	go r.heartbeatLoop(ctx)
	go r.pollLoop(ctx)
	slog.Info("Worker runner started", "worker_id", r.config.WorkerID, "queues", r.config.Queues)
	return nil
}

// Stop drains the loops and unregisters the worker.
func (r *Runner) Stop(ctx context.Context) {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
	if err := r.service.Unregister(ctx, r.config.WorkerID); err != nil {
		slog.Error("Failed to unregister worker", "worker_id", r.config.WorkerID, "error", err)
	}
	slog.Info("Worker runner stopped", "worker_id", r.config.WorkerID)
}

func (r *Runner) heartbeatLoop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.service.Heartbeat(ctx, r.config.WorkerID, int(r.active.Load())); err != nil {
				slog.Error("Heartbeat failed", "worker_id", r.config.WorkerID, "error", err)
			}
		}
	}
}

func (r *Runner) pollLoop(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if int(r.active.Load()) >= r.config.MaxTasks {
			time.Sleep(r.config.PollWait)
			continue
		}

		queue, msg, err := r.broker.Dequeue(ctx, r.config.PollWait, r.config.Queues...)
		if errors.Is(err, broker.ErrQueueEmpty) {
			continue
		}
		if err != nil {
			if ctx.Err() == nil {
				slog.Error("Dequeue failed", "worker_id", r.config.WorkerID, "error", err)
				time.Sleep(r.config.PollWait)
			}
			continue
		}

		r.active.Add(1)
		r.wg.Add(1)
		go func(queue string, msg *broker.TaskMessage) {
			defer r.wg.Done()
			defer r.active.Add(-1)
			r.handleMessage(ctx, queue, msg)
		}(queue, msg)
	}
}

// handleMessage routes one dequeued message: whole-task messages go through
// the task processor, subtask messages run inline.
func (r *Runner) handleMessage(ctx context.Context, queue string, msg *broker.TaskMessage) {
	log := slog.With("worker_id", r.config.WorkerID, "queue", queue, "task_id", msg.TaskID)

	if msg.SubtaskID == "" {
		if r.processor == nil {
			log.Warn("No task processor configured, requeueing whole-task message")
			if err := r.broker.Enqueue(ctx, queue, msg); err != nil {
				log.Error("Requeue failed", "error", err)
			}
			return
		}
		if err := r.processor.ProcessQueued(ctx, msg.TaskID); err != nil {
			log.Error("Queued task processing failed", "error", err)
		}
		return
	}

	r.runSubtask(ctx, queue, msg, log)
}

// runSubtask executes one dequeued subtask: gate on dependencies, claim the
// row, select an agent, invoke, and persist the outcome. Failures requeue
// the message up to maxSubtaskRetries times.
func (r *Runner) runSubtask(ctx context.Context, queue string, msg *broker.TaskMessage, log *slog.Logger) {
	row, err := r.client.Subtask.Query().
		Where(subtask.TaskIDEQ(msg.TaskID), subtask.LocalIDEQ(msg.SubtaskID)).
		Only(ctx)
	if err != nil {
		log.Error("Failed to load subtask row", "subtask", msg.SubtaskID, "error", err)
		return
	}
	if row.Status != subtask.StatusPending && row.Status != subtask.StatusAssigned {
		// Another worker already picked it up.
		return
	}

	ready, failedDep, err := r.dependenciesReady(ctx, msg)
	if err != nil {
		log.Error("Dependency check failed", "subtask", msg.SubtaskID, "error", err)
		r.requeue(ctx, queue, msg, log)
		return
	}
	if failedDep != "" {
		log.Warn("Subtask dropped, dependency failed", "subtask", msg.SubtaskID, "dependency", failedDep)
		r.persistFailure(ctx, row, fmt.Sprintf("dependency %s failed", failedDep))
		r.maybeFinalizeTask(ctx, msg.TaskID, log)
		return
	}
	if !ready {
		r.requeue(ctx, queue, msg, log)
		return
	}

	agentRow, _, err := r.registry.SelectForTask(msg.RequiredCapabilities, models.DelegationCapabilityMatch, registry.SelectionOptions{})
	if err != nil {
		log.Warn("No agent for subtask", "subtask", msg.SubtaskID, "error", err)
		r.retryOrFail(ctx, queue, msg, row, err.Error(), log)
		return
	}

	// Claim the row; losing the compare-and-set means another worker won.
	now := time.Now()
	n, err := r.client.Subtask.Update().
		Where(
			subtask.IDEQ(row.ID),
			subtask.StatusIn(subtask.StatusPending, subtask.StatusAssigned),
		).
		SetStatus(subtask.StatusInProgress).
		SetAgentID(agentRow.ID).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		log.Error("Failed to claim subtask", "subtask", msg.SubtaskID, "error", err)
		return
	}
	if n == 0 {
		return
	}

	parent, err := r.client.Task.Get(ctx, msg.TaskID)
	if err != nil {
		log.Error("Failed to load parent task", "error", err)
		r.persistFailure(ctx, row, "parent task not found")
		return
	}

	r.registry.AddLoad(agentRow.ID)
	execCtx, cancel := context.WithTimeout(ctx, r.config.SubtaskTimeout)
	output, invokeErr := r.invoker.Invoke(execCtx, agentRow.ID, orchestrator.InvokeRequest{
		TaskID:      msg.TaskID,
		SubtaskID:   msg.SubtaskID,
		Description: msg.Description,
		Parameters:  parent.Parameters,
	})
	cancel()
	r.registry.ReleaseLoad(agentRow.ID)

	elapsed := time.Since(now)
	r.registry.RecordExecution(agentRow.ID, invokeErr == nil, float64(elapsed.Milliseconds()), 0)
	r.monitor.RecordAgentExecution(context.WithoutCancel(ctx), agentRow.ID, invokeErr == nil, float64(elapsed.Milliseconds()), 0)

	if invokeErr != nil {
		log.Warn("Subtask execution failed", "subtask", msg.SubtaskID, "agent_id", agentRow.ID, "error", invokeErr)
		r.retryOrFail(ctx, queue, msg, row, invokeErr.Error(), log)
		return
	}

	if err := r.client.Subtask.UpdateOneID(row.ID).
		SetStatus(subtask.StatusCompleted).
		SetResult(output).
		SetCompletedAt(time.Now()).
		SetExecutionTimeMs(elapsed.Milliseconds()).
		Exec(ctx); err != nil {
		log.Error("Failed to persist subtask result", "subtask", msg.SubtaskID, "error", err)
	}
	log.Info("Subtask completed", "subtask", msg.SubtaskID, "agent_id", agentRow.ID, "duration_ms", elapsed.Milliseconds())
	r.maybeFinalizeTask(ctx, msg.TaskID, log)
}

// dependenciesReady reports whether every dependency of the message has
// completed. The second return names a failed dependency, if any.
func (r *Runner) dependenciesReady(ctx context.Context, msg *broker.TaskMessage) (bool, string, error) {
	if len(msg.Dependencies) == 0 {
		return true, "", nil
	}
	deps, err := r.client.Subtask.Query().
		Where(subtask.TaskIDEQ(msg.TaskID), subtask.LocalIDIn(msg.Dependencies...)).
		All(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to query dependencies: %w", err)
	}
	done := make(map[string]bool, len(deps))
	for _, d := range deps {
		if d.Status == subtask.StatusFailed {
			return false, d.LocalID, nil
		}
		done[d.LocalID] = d.Status == subtask.StatusCompleted
	}
	for _, dep := range msg.Dependencies {
		if !done[dep] {
			return false, "", nil
		}
	}
	return true, "", nil
}

// retryOrFail requeues a failed subtask with a bumped retry count, or marks
// it failed once the retry budget is exhausted.
func (r *Runner) retryOrFail(ctx context.Context, queue string, msg *broker.TaskMessage, row *ent.Subtask, reason string, log *slog.Logger) {
	if msg.RetryCount >= maxSubtaskRetries {
		r.persistFailure(ctx, row, reason)
		r.maybeFinalizeTask(ctx, msg.TaskID, log)
		return
	}

	retry := *msg
	retry.RetryCount++
	if err := r.client.Subtask.UpdateOneID(row.ID).
		SetStatus(subtask.StatusPending).
		ClearAgentID().
		SetRetryCount(retry.RetryCount).
		Exec(ctx); err != nil {
		log.Error("Failed to reset subtask for retry", "subtask", msg.SubtaskID, "error", err)
	}
	if err := r.broker.Enqueue(ctx, queue, &retry); err != nil {
		log.Error("Requeue failed", "subtask", msg.SubtaskID, "error", err)
		r.persistFailure(ctx, row, reason)
		r.maybeFinalizeTask(ctx, msg.TaskID, log)
		return
	}
	log.Info("Subtask requeued", "subtask", msg.SubtaskID, "retry", retry.RetryCount)
}

// requeue puts a not-yet-runnable message back on its queue unchanged,
// after one poll interval. Without the delay a message blocked on a slow
// dependency would bounce between dequeue and requeue as fast as the
// broker round-trips. Shutdown cuts the wait short; the message is still
// requeued so it is not lost.
func (r *Runner) requeue(ctx context.Context, queue string, msg *broker.TaskMessage, log *slog.Logger) {
	timer := time.NewTimer(r.config.PollWait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-r.stopCh:
	case <-ctx.Done():
	}
	if err := r.broker.Enqueue(context.WithoutCancel(ctx), queue, msg); err != nil {
		log.Error("Requeue failed", "subtask", msg.SubtaskID, "error", err)
	}
}

func (r *Runner) persistFailure(ctx context.Context, row *ent.Subtask, reason string) {
	if err := r.client.Subtask.UpdateOneID(row.ID).
		SetStatus(subtask.StatusFailed).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		slog.Error("Failed to persist subtask failure", "subtask", row.LocalID, "error", err)
	}
}

// maybeFinalizeTask completes the parent task once every subtask has reached
// a terminal state. In hybrid and distributed modes no orchestrator waits on
// the task, so the worker finishing the last subtask closes it out.
func (r *Runner) maybeFinalizeTask(ctx context.Context, taskID string, log *slog.Logger) {
	// The status predicate below is the correctness guard; the lock only
	// keeps concurrent finishers from recomputing the same aggregate, so
	// failing to take it never skips finalization.
	if r.broker != nil {
		if lock, ok, err := r.broker.AcquireLock(ctx, "finalize:"+taskID, 30*time.Second); err == nil && ok {
			defer func() { _ = lock.Release(ctx) }()
		}
	}

	rows, err := r.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		log.Error("Failed to query subtasks for finalization", "error", err)
		return
	}
	completed, failed := 0, 0
	var failedIDs []string
	for _, row := range rows {
		switch row.Status {
		case subtask.StatusCompleted:
			completed++
		case subtask.StatusFailed:
			failed++
			failedIDs = append(failedIDs, row.LocalID)
		default:
			return
		}
	}
	sort.Strings(failedIDs)

	result := map[string]any{
		"subtasks_total":     len(rows),
		"subtasks_completed": completed,
		"subtasks_failed":    failed,
		"success_rate":       float64(completed) / float64(len(rows)),
	}
	if failed == 0 {
		if combined, ok := combinedResults(rows); ok {
			result["combined_results"] = combined
		}
	} else {
		result["failed_subtasks"] = failedIDs
	}

	status := task.StatusCompleted
	errMsg := ""
	if failed > 0 {
		status = task.StatusFailed
		errMsg = fmt.Sprintf("%d of %d subtasks failed", failed, len(rows))
	}

	// Only the worker finishing the last subtask flips the task; the
	// status predicate keeps a concurrent finalizer from double-writing.
	update := r.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusIn(task.StatusQueued, task.StatusProcessing)).
		SetStatus(status).
		SetResult(result).
		SetCompletedAt(time.Now())
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	n, err := update.Save(ctx)
	if err != nil {
		log.Error("Failed to finalize task", "error", err)
		return
	}
	if n > 0 {
		log.Info("Task finalized by worker", "status", status, "subtasks", len(rows))
	}
}

// combinedResults orders the per-subtask "result" values by dependency
// topology. It reports false when any subtask lacks a "result" key.
func combinedResults(rows []*ent.Subtask) ([]any, bool) {
	byLocal := make(map[string]*ent.Subtask, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		byLocal[row.LocalID] = row
		order = append(order, row.LocalID)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return byLocal[order[i]].CreatedAt.Before(byLocal[order[j]].CreatedAt)
	})

	indegree := make(map[string]int, len(rows))
	for _, row := range rows {
		indegree[row.LocalID] = len(row.DependsOn)
	}

	combined := make([]any, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for len(combined) < len(rows) {
		progressed := false
		for _, localID := range order {
			if seen[localID] || indegree[localID] > 0 {
				continue
			}
			row := byLocal[localID]
			value, ok := row.Result["result"]
			if !ok {
				return nil, false
			}
			combined = append(combined, value)
			seen[localID] = true
			progressed = true
			for _, other := range rows {
				for _, dep := range other.DependsOn {
					if dep == localID {
						indegree[other.LocalID]--
					}
				}
			}
		}
		if !progressed {
			return nil, false
		}
	}
	return combined, true
}
