package orchestrator

import (
	"context"
	"testing"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecoveryTask(t *testing.T, client *ent.Client, id string, status task.Status, mode task.DistributionMode, podID string) *ent.Task {
	t.Helper()
	row, err := client.Task.Create().
		SetID(id).
		SetDescription("recovery case " + id).
		SetStatus(status).
		SetDistributionMode(mode).
		SetPodID(podID).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func seedRecoverySubtask(t *testing.T, client *ent.Client, taskID, localID string, status subtask.Status) *ent.Subtask {
	t.Helper()
	row, err := client.Subtask.Create().
		SetID(taskID + "-" + localID).
		SetTaskID(taskID).
		SetLocalID(localID).
		SetDescription("step " + localID).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	errLogs := services.NewErrorLogService(client)
	ctx := context.Background()

	local := seedRecoveryTask(t, client, "t-local", task.StatusProcessing, task.DistributionModeLocal, "pod-a")
	seedRecoverySubtask(t, client, local.ID, "s1", subtask.StatusCompleted)
	seedRecoverySubtask(t, client, local.ID, "s2", subtask.StatusInProgress)

	// Fleet-owned: subtasks run and finalize on workers, so a restart of
	// the submitting pod must not touch it.
	fleet := seedRecoveryTask(t, client, "t-fleet", task.StatusQueued, task.DistributionModeHybrid, "pod-a")
	seedRecoverySubtask(t, client, fleet.ID, "s1", subtask.StatusInProgress)

	otherPod := seedRecoveryTask(t, client, "t-other", task.StatusDecomposing, task.DistributionModeLocal, "pod-b")
	finished := seedRecoveryTask(t, client, "t-done", task.StatusCompleted, task.DistributionModeLocal, "pod-a")

	require.NoError(t, CleanupStartupOrphans(ctx, client, errLogs, "pod-a"))

	t.Run("in-flight local task is failed with its subtasks", func(t *testing.T) {
		got, err := client.Task.Get(ctx, local.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Contains(t, *got.ErrorMessage, "Orphaned")
		require.NotNil(t, got.CompletedAt)

		s2, err := client.Subtask.Get(ctx, local.ID+"-s2")
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusFailed, s2.Status)

		// Finished work stays finished.
		s1, err := client.Subtask.Get(ctx, local.ID+"-s1")
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusCompleted, s1.Status)

		n, err := client.ErrorLog.Query().
			Where(errorlog.TaskIDEQ(local.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("queued fleet-owned task survives the restart", func(t *testing.T) {
		got, err := client.Task.Get(ctx, fleet.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, got.Status)
		assert.Nil(t, got.ErrorMessage)

		s1, err := client.Subtask.Get(ctx, fleet.ID+"-s1")
		require.NoError(t, err)
		assert.Equal(t, subtask.StatusInProgress, s1.Status)
	})

	t.Run("other pods and terminal tasks are untouched", func(t *testing.T) {
		got, err := client.Task.Get(ctx, otherPod.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusDecomposing, got.Status)

		got, err = client.Task.Get(ctx, finished.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
	})
}
