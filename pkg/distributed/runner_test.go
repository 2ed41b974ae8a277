package distributed

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/test/database"
)

type stubInvoker struct {
	fn func(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error)
}

func (s *stubInvoker) Invoke(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error) {
	return s.fn(ctx, agentID, req)
}

type runnerFixture struct {
	client  *ent.Client
	broker  *broker.Client
	service *Service
	runner  *Runner
	invoker *stubInvoker
}

func newRunnerFixture(t *testing.T) *runnerFixture {
	t.Helper()
	client := database.NewTestClient(t).Client
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := broker.NewClientFromRedis(rdb)

	svc := New(client, b, Config{NodeID: "node-runner"})
	reg := registry.New(client, nil)
	mon := monitor.New(client, monitor.DefaultConfig())
	inv := &stubInvoker{fn: func(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error) {
		return map[string]any{"result": "done:" + req.SubtaskID}, nil
	}}

	_, err := reg.Create(context.Background(), models.AgentDefinition{
		Name:         "worker-agent",
		Kind:         "domain",
		Capabilities: []string{"general"},
	})
	require.NoError(t, err)

	runner := NewRunner(client, b, svc, reg, mon, inv, nil, RunnerConfig{
		WorkerID: "runner-1",
		Queues:   []string{broker.QueueAgentTasks},
		PollWait: 30 * time.Millisecond,
	})
	return &runnerFixture{client: client, broker: b, service: svc, runner: runner, invoker: inv}
}

func (f *runnerFixture) seedTask(t *testing.T, specs []models.SubtaskSpec) *ent.Task {
	t.Helper()
	ctx := context.Background()
	row, err := f.client.Task.Create().
		SetID("22222222-2222-2222-2222-222222222222").
		SetDescription("hybrid pipeline").
		SetDistributionMode(task.DistributionModeHybrid).
		SetStatus(task.StatusQueued).
		Save(ctx)
	require.NoError(t, err)

	for i, spec := range specs {
		_, err := f.client.Subtask.Create().
			SetID(row.ID + "-" + spec.ID).
			SetTaskID(row.ID).
			SetLocalID(spec.ID).
			SetDescription(spec.Description).
			SetRequiredCapabilities(spec.RequiredCapabilities).
			SetDependsOn(spec.Dependencies).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Millisecond)).
			Save(ctx)
		require.NoError(t, err)
	}
	return row
}

func subtaskMsg(taskID string, spec models.SubtaskSpec) *broker.TaskMessage {
	return &broker.TaskMessage{
		TaskID:               taskID,
		ParentTaskID:         taskID,
		SubtaskID:            spec.ID,
		Description:          spec.Description,
		RequiredCapabilities: spec.RequiredCapabilities,
		Dependencies:         spec.Dependencies,
	}
}

func TestRunner_SubtaskPipeline(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	log := slog.Default()

	s1 := models.SubtaskSpec{ID: "s1", Description: "extract", RequiredCapabilities: []string{"general"}}
	s2 := models.SubtaskSpec{ID: "s2", Description: "report", RequiredCapabilities: []string{"general"}, Dependencies: []string{"s1"}}
	taskRow := f.seedTask(t, []models.SubtaskSpec{s1, s2})

	t.Run("unready dependency requeues after a poll interval", func(t *testing.T) {
		start := time.Now()
		f.runner.runSubtask(ctx, broker.QueueAgentTasks, subtaskMsg(taskRow.ID, s2), log)

		// The deferral keeps a blocked message from spinning through
		// dequeue and requeue at broker round-trip speed.
		assert.GreaterOrEqual(t, time.Since(start), f.runner.config.PollWait)

		depth, err := f.broker.QueueDepth(ctx, broker.QueueAgentTasks)
		require.NoError(t, err)
		assert.Equal(t, 1, depth)

		row, err := f.client.Subtask.Query().
			Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s2")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusPending, row.Status)
	})

	t.Run("ready subtask executes and persists its result", func(t *testing.T) {
		f.runner.runSubtask(ctx, broker.QueueAgentTasks, subtaskMsg(taskRow.ID, s1), log)

		row, err := f.client.Subtask.Query().
			Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusCompleted, row.Status)
		assert.Equal(t, "done:s1", row.Result["result"])
		require.NotNil(t, row.AgentID)
	})

	t.Run("last subtask finalizes the parent task", func(t *testing.T) {
		f.runner.runSubtask(ctx, broker.QueueAgentTasks, subtaskMsg(taskRow.ID, s2), log)

		got, err := f.client.Task.Get(ctx, taskRow.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
		assert.Equal(t, []any{"done:s1", "done:s2"}, got.Result["combined_results"])
		require.NotNil(t, got.CompletedAt)
	})
}

func TestRunner_RetryBudget(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	log := slog.Default()

	s1 := models.SubtaskSpec{ID: "s1", Description: "flaky step", RequiredCapabilities: []string{"general"}}
	taskRow := f.seedTask(t, []models.SubtaskSpec{s1})
	f.invoker.fn = func(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error) {
		return nil, errors.New("model overloaded")
	}

	t.Run("failure under budget requeues with bumped retry count", func(t *testing.T) {
		f.runner.runSubtask(ctx, broker.QueueAgentTasks, subtaskMsg(taskRow.ID, s1), log)

		_, msg, err := f.broker.Dequeue(ctx, 100*time.Millisecond, broker.QueueAgentTasks)
		require.NoError(t, err)
		assert.Equal(t, 1, msg.RetryCount)

		row, err := f.client.Subtask.Query().
			Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusPending, row.Status)
		assert.Equal(t, 1, row.RetryCount)
	})

	t.Run("exhausted budget fails the subtask and the task", func(t *testing.T) {
		msg := subtaskMsg(taskRow.ID, s1)
		msg.RetryCount = maxSubtaskRetries
		f.runner.runSubtask(ctx, broker.QueueAgentTasks, msg, log)

		row, err := f.client.Subtask.Query().
			Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Equal(t, "model overloaded", *row.ErrorMessage)

		got, err := f.client.Task.Get(ctx, taskRow.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, got.Status)
		assert.Equal(t, []any{"s1"}, got.Result["failed_subtasks"])
	})
}

func TestRunner_FailedDependencyDropsDependent(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	log := slog.Default()

	s1 := models.SubtaskSpec{ID: "s1", Description: "extract", RequiredCapabilities: []string{"general"}}
	s2 := models.SubtaskSpec{ID: "s2", Description: "report", RequiredCapabilities: []string{"general"}, Dependencies: []string{"s1"}}
	taskRow := f.seedTask(t, []models.SubtaskSpec{s1, s2})

	require.NoError(t, f.client.Subtask.Update().
		Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s1")).
		SetStatus(subtask.StatusFailed).
		SetErrorMessage("model overloaded").
		Exec(ctx))

	f.runner.runSubtask(ctx, broker.QueueAgentTasks, subtaskMsg(taskRow.ID, s2), log)

	row, err := f.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskRow.ID), subtask.LocalIDEQ("s2")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subtask.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "dependency s1 failed")

	got, err := f.client.Task.Get(ctx, taskRow.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
}
