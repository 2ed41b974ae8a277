package e2e

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/pkg/models"
)

// Cancelling an in-flight task interrupts its subtasks and lands the task
// in cancelled, not completed.
func TestE2E_CancelInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.ExecuteFn = func(prompt string) (string, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		select {
		case <-release:
			return "late result", nil
		case <-time.After(15 * time.Second):
			return "", errors.New("test release never arrived")
		}
	}

	app := NewTestApp(t, WithLLM(llm))
	app.CreateAgent("generalist", "domain", []string{"general"})

	llm.ScriptDecomposition([]models.SubtaskSpec{
		{ID: "subtask_1", Description: "Long haul",
			RequiredCapabilities: []string{"general"}},
	})

	taskID := app.SubmitTask(map[string]any{"description": "Interrupt me"})

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("subtask never started executing")
	}

	code, body := app.PostJSON("/tasks/"+taskID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, code, "cancel: %v", body)
	assert.Equal(t, "cancelling", body["status"])

	close(release)

	status := app.WaitForTaskStatus(taskID, "cancelled", 15*time.Second)
	assert.NotEqual(t, "completed", status["status"])
}

// A finished task refuses cancellation.
func TestE2E_CancelFinishedTask(t *testing.T) {
	app := NewTestApp(t)
	app.CreateAgent("generalist", "domain", []string{"general"})

	taskID := app.SubmitTask(map[string]any{"description": "quick job"})
	app.WaitForTaskStatus(taskID, "completed", 15*time.Second)

	resp, err := http.Post(app.BaseURL+"/tasks/"+taskID+"/cancel", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
