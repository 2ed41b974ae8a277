package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/services"
)

// CleanupStartupOrphans performs a one-time recovery of tasks owned by this
// pod that were still in flight when the pod previously crashed. In-memory
// queue state is gone, so the tasks can never finish; they are failed with
// an explanatory message and an error log entry.
// Called once during startup, before the orchestrator begins processing.
//
// Only locally-driven states are swept. Queued tasks belong to the worker
// fleet: their subtasks run and finalize on workers, so a restart of the
// submitting pod must leave them alone.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, errorLogs *services.ErrorLogService, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusIn(task.StatusDecomposing, task.StatusDecomposed,
				task.StatusProcessing),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, t := range orphans {
		errMsg := fmt.Sprintf("Orphaned: pod %s restarted while task was in progress", podID)
		err := t.Update().
			SetStatus(task.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(errMsg).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}

		// Fail any subtasks still waiting on the dead pipeline.
		_, _ = client.Subtask.Update().
			Where(
				subtask.TaskIDEQ(t.ID),
				subtask.StatusIn(subtask.StatusPending, subtask.StatusAssigned,
					subtask.StatusInProgress),
			).
			SetStatus(subtask.StatusFailed).
			SetErrorMessage(errMsg).
			SetCompletedAt(now).
			Save(ctx)

		if errorLogs != nil {
			_, _ = errorLogs.Record(ctx, "orchestrator", errMsg, t.ID,
				map[string]any{"pod_id": podID, "previous_status": string(t.Status)})
		}

		slog.Info("Startup orphan recovered", "task_id", t.ID)
	}

	return nil
}
