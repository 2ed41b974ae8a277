package e2e

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/pkg/models"
)

// Full local pipeline: agents registered over HTTP, a scripted two-step
// decomposition, sequential execution, and a combined result on the task.
func TestE2E_LocalPipeline(t *testing.T) {
	app := NewTestApp(t)

	app.CreateAgent("analyst", "domain", []string{"analysis"})
	app.CreateAgent("writer", "domain", []string{"writing"})

	app.LLM.ScriptDecomposition([]models.SubtaskSpec{
		{ID: "subtask_1", Description: "Collect the quarterly numbers",
			RequiredCapabilities: []string{"analysis"}},
		{ID: "subtask_2", Description: "Write the executive summary",
			RequiredCapabilities: []string{"writing"},
			Dependencies:         []string{"subtask_1"}},
	})

	taskID := app.SubmitTask(map[string]any{
		"description":            "Summarize Q3 results",
		"priority":               2,
		"decomposition_strategy": "sequential",
	})

	status := app.WaitForTaskStatus(taskID, "completed", 15*time.Second)
	assert.Equal(t, float64(100), status["progress_percent"])

	result, ok := status["result"].(map[string]any)
	require.True(t, ok, "completed task carries a result: %v", status)
	assert.Equal(t, []any{
		"done: Collect the quarterly numbers",
		"done: Write the executive summary",
	}, result["combined_results"])

	subtasks, ok := status["subtasks"].([]any)
	require.True(t, ok)
	require.Len(t, subtasks, 2)
	for _, raw := range subtasks {
		row := raw.(map[string]any)
		assert.Equal(t, "completed", row["status"])
		assert.NotEmpty(t, row["agent_id"])
	}

	// The run left metric samples behind.
	code, perf := app.GetJSON("/system/performance")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, perf)
}

// A garbage decomposition response falls back to the deterministic
// analyze/execute plan instead of failing the task.
func TestE2E_DecompositionFallback(t *testing.T) {
	app := NewTestApp(t)
	app.CreateAgent("generalist", "domain", []string{"general"})

	taskID := app.SubmitTask(map[string]any{
		"description": "Do the thing",
	})

	status := app.WaitForTaskStatus(taskID, "completed", 15*time.Second)
	subtasks := status["subtasks"].([]any)
	assert.Len(t, subtasks, 2)
}

// One failing subtask fails the whole task and names the culprit.
func TestE2E_FailurePropagation(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.ExecuteFn = func(prompt string) (string, error) {
		if strings.Contains(prompt, "Flaky step") {
			return "", errors.New("model overloaded")
		}
		return "fine", nil
	}
	app := NewTestApp(t, WithLLM(llm))
	app.CreateAgent("generalist", "domain", []string{"general"})

	llm.ScriptDecomposition([]models.SubtaskSpec{
		{ID: "subtask_1", Description: "Solid step",
			RequiredCapabilities: []string{"general"}},
		{ID: "subtask_2", Description: "Flaky step",
			RequiredCapabilities: []string{"general"}},
	})

	taskID := app.SubmitTask(map[string]any{
		"description":            "Partly doomed",
		"decomposition_strategy": "parallel",
	})

	status := app.WaitForTaskStatus(taskID, "failed", 15*time.Second)
	assert.Contains(t, status["error"], "1 of 2 subtasks failed")

	result := status["result"].(map[string]any)
	assert.Equal(t, []any{"subtask_2"}, result["failed_subtasks"])
	assert.Nil(t, result["combined_results"])
}
