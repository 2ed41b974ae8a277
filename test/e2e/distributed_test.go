package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/pkg/models"
)

// HYBRID pipeline: the orchestrator decomposes and plans locally, the
// subtasks travel through the broker, and the in-process worker executes
// them and finalizes the parent task.
func TestE2E_HybridPipeline(t *testing.T) {
	app := NewTestApp(t, WithWorker())

	app.CreateAgent("fetcher", "domain", []string{"fetch"})
	app.CreateAgent("merger", "domain", []string{"merge"})

	app.LLM.ScriptDecomposition([]models.SubtaskSpec{
		{ID: "subtask_1", Description: "Fetch part A",
			RequiredCapabilities: []string{"fetch"}},
		{ID: "subtask_2", Description: "Fetch part B",
			RequiredCapabilities: []string{"fetch"}},
		{ID: "subtask_3", Description: "Merge the parts",
			RequiredCapabilities: []string{"merge"},
			Dependencies:         []string{"subtask_1", "subtask_2"}},
	})

	taskID := app.SubmitTask(map[string]any{
		"description":            "Assemble the dataset",
		"decomposition_strategy": "divide_conquer",
		"distribution_mode":      "hybrid",
	})

	status := app.WaitForTaskStatus(taskID, "completed", 20*time.Second)

	result := status["result"].(map[string]any)
	combined, ok := result["combined_results"].([]any)
	require.True(t, ok, "hybrid task result: %v", result)
	require.Len(t, combined, 3)
	assert.Equal(t, "done: Merge the parts", combined[2])
	assert.ElementsMatch(t, []any{"done: Fetch part A", "done: Fetch part B"}, combined[:2])
}

// DISTRIBUTED mode: the whole task is queued on the broker; the worker
// dequeues it and drives the full pipeline locally.
func TestE2E_DistributedWholeTask(t *testing.T) {
	app := NewTestApp(t, WithWorker())
	app.CreateAgent("generalist", "domain", []string{"general"})

	app.LLM.ScriptDecomposition([]models.SubtaskSpec{
		{ID: "subtask_1", Description: "Only step",
			RequiredCapabilities: []string{"general"}},
	})

	taskID := app.SubmitTask(map[string]any{
		"description":       "Run remotely",
		"distribution_mode": "distributed",
		"priority":          4,
	})

	status := app.WaitForTaskStatus(taskID, "completed", 20*time.Second)
	result := status["result"].(map[string]any)
	assert.Equal(t, []any{"done: Only step"}, result["combined_results"])
}

// The worker registers itself on start and shows up on the fleet endpoint.
func TestE2E_WorkerVisibleInFleet(t *testing.T) {
	app := NewTestApp(t, WithWorker())

	code, body := app.GetJSON("/workers")
	require.Equal(t, http.StatusOK, code)

	workers, ok := body["workers"].([]any)
	require.True(t, ok, "workers body: %v", body)
	require.Len(t, workers, 1)
	w := workers[0].(map[string]any)
	assert.Equal(t, "e2e-worker", w["id"])
	assert.Equal(t, "online", w["status"])
}
