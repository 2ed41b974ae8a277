package orchestrator

import (
	"context"
	"testing"

	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_FirstTerminalWriteWins(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	reg := registry.New(client, nil)
	mon := monitor.New(client, monitor.DefaultConfig())
	e := NewExecutor(client, reg, mon, echoInvoker())
	ctx := context.Background()

	taskRow, err := client.Task.Create().
		SetID("t-grace").
		SetDescription("cancelled with a straggler").
		SetStatus(task.StatusCancelled).
		Save(ctx)
	require.NoError(t, err)

	// The cancellation grace timer already closed the row out as failed.
	row, err := client.Subtask.Create().
		SetID("t-grace-s1").
		SetTaskID(taskRow.ID).
		SetLocalID("s1").
		SetDescription("long step").
		SetStatus(subtask.StatusFailed).
		SetErrorMessage(services.ErrCancelled.Error()).
		Save(ctx)
	require.NoError(t, err)

	// The abandoned goroutine eventually returns and reports success; the
	// late write must not reopen the row.
	e.persistResult(row.ID, &models.SubtaskResult{
		SubtaskID:       "s1",
		AgentID:         "a-1",
		Success:         true,
		Result:          map[string]any{"result": "late"},
		ExecutionTimeMS: 90_000,
	})

	got, err := client.Subtask.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, subtask.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, services.ErrCancelled.Error(), *got.ErrorMessage)
	assert.Nil(t, got.Result)
	assert.Nil(t, got.AgentID)
}
