package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/distributed"
	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
)

type stubLLM struct{}

func (s *stubLLM) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	specs := []models.SubtaskSpec{{ID: "subtask_1", Description: "do it", RequiredCapabilities: []string{"general"}}}
	raw, _ := json.Marshal(specs)
	return &llm.Response{Content: string(raw), Model: "stub"}, nil
}

type stubInvoker struct{}

func (s *stubInvoker) Invoke(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error) {
	return map[string]any{"result": "ok"}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := broker.NewClientFromRedis(rdb)

	reg := registry.New(db.Client, nil)
	mon := monitor.New(db.Client, monitor.DefaultConfig())
	dist := distributed.New(db.Client, b, distributed.Config{NodeID: "api-test"})
	orch := orchestrator.New(db.Client, reg, mon, &stubLLM{}, &stubInvoker{}, nil, orchestrator.DefaultConfig())
	tasks := services.NewTaskService(db.Client, orch)
	manual := services.NewManualTaskService(db.Client)
	errLogs := services.NewErrorLogService(db.Client)

	srv := NewServer(db, b, reg, tasks, mon, dist, manual, errLogs)
	return srv.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// decodeErrorEnvelope asserts the bit-exact envelope shape and returns the
// inner error object.
func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, w)
	require.Contains(t, body, "error")
	inner, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, inner["request_id"])
	assert.Greater(t, inner["timestamp"].(float64), 0.0)
	assert.EqualValues(t, w.Code, inner["code"])
	return inner
}

func TestAgentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	def := map[string]any{"name": "summarizer", "kind": "worker", "capabilities": []string{"summarization"}}
	var agentID string

	t.Run("create returns 201", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/agents", def)
		require.Equal(t, http.StatusCreated, w.Code)
		agentID = decodeBody(t, w)["id"].(string)
		assert.NotEmpty(t, agentID)
	})

	t.Run("duplicate name returns name_conflict envelope", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/agents", def)
		require.Equal(t, http.StatusConflict, w.Code)
		inner := decodeErrorEnvelope(t, w)
		assert.Equal(t, "name_conflict", inner["type"])
	})

	t.Run("get and list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/agents/"+agentID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "summarizer", decodeBody(t, w)["name"])

		w = doJSON(t, router, http.MethodGet, "/agents?capability=summar", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decodeBody(t, w)["count"])
	})

	t.Run("unknown agent returns 404 http_error", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/agents/00000000-0000-0000-0000-000000000000", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		inner := decodeErrorEnvelope(t, w)
		assert.Equal(t, "http_error", inner["type"])
	})

	t.Run("start and stop transition status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/agents/"+agentID+"/start", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "idle", decodeBody(t, w)["status"])

		w = doJSON(t, router, http.MethodPost, "/agents/"+agentID+"/stop", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "stopped", decodeBody(t, w)["status"])
	})

	t.Run("delete returns 204", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/agents/"+agentID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("empty description returns validation_error", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/tasks", map[string]any{"description": "  "})
		require.Equal(t, http.StatusBadRequest, w.Code)
		inner := decodeErrorEnvelope(t, w)
		assert.Equal(t, "validation_error", inner["type"])
	})

	var taskID string
	t.Run("submit returns 202 with task id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/tasks", map[string]any{
			"description": "summarize the report",
			"priority":    2,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
		body := decodeBody(t, w)
		taskID = body["task_id"].(string)
		assert.NotEmpty(t, taskID)
		assert.Equal(t, "submitted", body["status"])
	})

	t.Run("status view includes progress", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/tasks/"+taskID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "submitted", body["status"])
		assert.Contains(t, body, "progress_percent")
		assert.Contains(t, body, "subtasks")
	})

	t.Run("list filters by status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/tasks?status=submitted", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decodeBody(t, w)["count"])
	})

	t.Run("cancel a waiting task", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/tasks/"+taskID+"/cancel", nil)
		require.Equal(t, http.StatusAccepted, w.Code)

		w = doJSON(t, router, http.MethodGet, "/tasks/"+taskID, nil)
		assert.Equal(t, "cancelled", decodeBody(t, w)["status"])
	})

	t.Run("unknown task returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/tasks/00000000-0000-0000-0000-000000000000", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWorkerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("register returns 201", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/workers/register", map[string]any{
			"worker_id": "w-api-1",
			"hostname":  "host-1",
			"pid":       999,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "online", decodeBody(t, w)["status"])
	})

	t.Run("heartbeat and list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/workers/heartbeat", map[string]any{
			"worker_id": "w-api-1", "active_tasks": 2,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/workers", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decodeBody(t, w)["count"])
	})

	t.Run("heartbeat for unknown worker returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/workers/heartbeat", map[string]any{"worker_id": "ghost"})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unregister", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/workers/unregister", map[string]any{"worker_id": "w-api-1"})
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSystemEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health reports database and broker", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "up", body["broker"])
	})

	t.Run("system performance responds", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/system/performance", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("acknowledging a missing alert is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/system/alerts/nope/acknowledge", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, router, http.MethodPost, "/system/alerts/nope/resolve", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("alerts list validates resolved flag", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/system/alerts?resolved=maybe", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, router, http.MethodGet, "/system/alerts?resolved=false", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["count"])
	})

	t.Run("request id header is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}
