package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/manualtask"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/test/database"
)

type stubOrchestrator struct {
	submitted []models.SubmitTaskInput
	cancelled []string
}

func (s *stubOrchestrator) Submit(_ context.Context, input models.SubmitTaskInput) (*ent.Task, error) {
	s.submitted = append(s.submitted, input)
	return &ent.Task{ID: "stub-task"}, nil
}

func (s *stubOrchestrator) Cancel(_ context.Context, taskID string) error {
	s.cancelled = append(s.cancelled, taskID)
	return nil
}

func seedTaskWithSubtasks(t *testing.T, client *ent.Client, status task.Status, subtaskStatuses []subtask.Status) *ent.Task {
	t.Helper()
	ctx := context.Background()
	row, err := client.Task.Create().
		SetID("33333333-3333-3333-3333-333333333333").
		SetDescription("summarize then email").
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)

	for i, st := range subtaskStatuses {
		localID := string(rune('a' + i))
		create := client.Subtask.Create().
			SetID(row.ID + "-" + localID).
			SetTaskID(row.ID).
			SetLocalID("subtask_" + localID).
			SetDescription("step " + localID).
			SetStatus(st).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Millisecond))
		if st == subtask.StatusCompleted {
			create.SetResult(map[string]any{"result": "ok"}).SetAgentID("agent-" + localID)
		}
		if st == subtask.StatusFailed {
			create.SetErrorMessage("boom")
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}
	return row
}

func TestTaskService_GetStatus(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewTaskService(client, &stubOrchestrator{})
	ctx := context.Background()

	t.Run("unknown task returns ErrNotFound", func(t *testing.T) {
		_, err := svc.GetStatus(ctx, "99999999-9999-9999-9999-999999999999")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("progress counts terminal subtasks", func(t *testing.T) {
		row := seedTaskWithSubtasks(t, client, task.StatusProcessing,
			[]subtask.Status{subtask.StatusCompleted, subtask.StatusFailed, subtask.StatusPending, subtask.StatusInProgress})

		status, err := svc.GetStatus(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "processing", status.Status)
		assert.InDelta(t, 50.0, status.ProgressPercent, 1e-9)
		require.Len(t, status.Subtasks, 4)
		assert.Equal(t, "subtask_a", status.Subtasks[0].LocalID)
		assert.Equal(t, "agent-a", status.Subtasks[0].AgentID)
		assert.Equal(t, "boom", status.Subtasks[1].Error)
	})

	t.Run("terminal task reads one hundred percent", func(t *testing.T) {
		require.NoError(t, client.Task.UpdateOneID("33333333-3333-3333-3333-333333333333").
			SetStatus(task.StatusCancelled).
			Exec(ctx))
		status, err := svc.GetStatus(ctx, "33333333-3333-3333-3333-333333333333")
		require.NoError(t, err)
		assert.InDelta(t, 100.0, status.ProgressPercent, 1e-9)
	})
}

func TestTaskService_SubmitAndCancelDelegate(t *testing.T) {
	client := database.NewTestClient(t).Client
	stub := &stubOrchestrator{}
	svc := NewTaskService(client, stub)
	ctx := context.Background()

	_, err := svc.Submit(ctx, models.SubmitTaskInput{Description: "do it"})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, "some-task"))

	assert.Len(t, stub.submitted, 1)
	assert.Equal(t, []string{"some-task"}, stub.cancelled)
}

func TestTaskService_List(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewTaskService(client, &stubOrchestrator{})
	ctx := context.Background()

	for i, status := range []task.Status{task.StatusCompleted, task.StatusFailed, task.StatusCompleted} {
		_, err := client.Task.Create().
			SetID("44444444-4444-4444-4444-44444444444" + string(rune('0'+i))).
			SetDescription("t").
			SetStatus(status).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Millisecond)).
			Save(ctx)
		require.NoError(t, err)
	}

	completed, err := svc.List(ctx, models.TaskFilters{Status: "completed"})
	require.NoError(t, err)
	assert.Len(t, completed, 2)

	limited, err := svc.List(ctx, models.TaskFilters{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, task.StatusCompleted, limited[0].Status)
}

func TestManualTaskService_IdempotentRaise(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewManualTaskService(client)
	ctx := context.Background()

	input := RaiseManualTaskInput{
		Category:     "orphaned_task",
		Title:        "Task references deleted agent",
		Description:  "task t-1 assigned to missing agent a-9",
		SourceSystem: "orchestrator",
		SourceID:     "t-1",
	}

	first, err := svc.Raise(ctx, input)
	var mie *ManualInterventionError
	require.ErrorAs(t, err, &mie)
	assert.Equal(t, first.ID, mie.ManualTaskID)
	assert.Equal(t, "orphaned_task", mie.Category)

	t.Run("repeat trigger collapses to the open record", func(t *testing.T) {
		second, err := svc.Raise(ctx, input)
		require.ErrorAs(t, err, &mie)
		assert.Equal(t, first.ID, second.ID)

		n, err := client.ManualTask.Query().
			Where(manualtask.SourceSystemEQ("orchestrator"), manualtask.SourceIDEQ("t-1")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("resolve is idempotent", func(t *testing.T) {
		resolved, err := svc.Resolve(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, manualtask.StatusResolved, resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)

		again, err := svc.Resolve(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, manualtask.StatusResolved, again.Status)
	})

	t.Run("resolved condition can reopen", func(t *testing.T) {
		reopened, err := svc.Raise(ctx, input)
		require.ErrorAs(t, err, &mie)
		assert.NotEqual(t, first.ID, reopened.ID)

		open, err := svc.ListOpen(ctx)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, reopened.ID, open[0].ID)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := svc.Raise(ctx, RaiseManualTaskInput{Category: "x"})
		require.Error(t, err)
		assert.False(t, errors.As(err, &mie))
	})
}

func TestManualTaskService_ListOpenOrdersUrgentFirst(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewManualTaskService(client)
	ctx := context.Background()

	var mie *ManualInterventionError
	raise := func(sourceID string, priority int) {
		_, err := svc.Raise(ctx, RaiseManualTaskInput{
			Category:     "orphaned_task",
			Title:        "needs an operator",
			Description:  "condition on " + sourceID,
			SourceSystem: "orchestrator",
			SourceID:     sourceID,
			Priority:     priority,
		})
		require.ErrorAs(t, err, &mie)
	}
	raise("t-low", 1)
	raise("t-high", 5)
	raise("t-mid", 3)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 3)
	got := []int{open[0].Priority, open[1].Priority, open[2].Priority}
	assert.Equal(t, []int{5, 3, 1}, got)
}

func TestErrorLogService(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewErrorLogService(client)
	ctx := context.Background()

	_, err := svc.Record(ctx, "orchestrator", "dependency deadlock", "t-1", map[string]any{"stuck": 2})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "cleanup", "retention sweep failed", "", nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	orch, err := svc.List(ctx, "orchestrator", 10)
	require.NoError(t, err)
	require.Len(t, orch, 1)
	require.NotNil(t, orch[0].TaskID)
	assert.Equal(t, "t-1", *orch[0].TaskID)
	assert.Equal(t, float64(2), orch[0].Details["stuck"])
}
