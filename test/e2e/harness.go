// Package e2e boots a complete Maestro instance against a real database and
// an in-memory broker, and exercises it through the HTTP API.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/pkg/agent"
	"github.com/maestro-run/maestro/pkg/api"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/database"
	"github.com/maestro-run/maestro/pkg/distributed"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
)

// TestApp is a complete Maestro instance for e2e testing.
type TestApp struct {
	DB        *database.Client
	EntClient *ent.Client
	Broker    *broker.Client
	LLM       *ScriptedLLMClient

	Registry     *registry.Registry
	Monitor      *monitor.Monitor
	Distributed  *distributed.Service
	Orchestrator *orchestrator.Orchestrator
	Runner       *distributed.Runner

	BaseURL string

	t *testing.T
}

type testAppConfig struct {
	withWorker bool
	llm        *ScriptedLLMClient
}

// TestAppOption customizes the booted instance.
type TestAppOption func(*testAppConfig)

// WithWorker runs an in-process distributed worker consuming broker queues.
func WithWorker() TestAppOption {
	return func(c *testAppConfig) { c.withWorker = true }
}

// WithLLM injects a pre-scripted LLM client.
func WithLLM(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llm = client }
}

// NewTestApp boots the full stack: database, miniredis broker, registry,
// monitor, distributed service, orchestrator, optional worker, and the HTTP
// server. Everything is torn down via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := testAppConfig{llm: NewScriptedLLMClient()}
	for _, opt := range opts {
		opt(&cfg)
	}

	db := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := broker.NewClientFromRedis(rdb)

	ctx := context.Background()

	reg := registry.New(db.Client, nil)
	require.NoError(t, reg.Load(ctx))

	mon := monitor.New(db.Client, monitor.DefaultConfig())
	mon.Start(ctx)
	t.Cleanup(mon.Stop)

	dist := distributed.New(db.Client, b, distributed.Config{NodeID: "e2e-node"})

	invoker := agent.NewInvoker(reg, cfg.llm, mon)
	orch := orchestrator.New(db.Client, reg, mon, cfg.llm, invoker, dist,
		orchestrator.Config{PodID: "e2e-node"})
	orch.Start(ctx)
	t.Cleanup(orch.Stop)

	var runner *distributed.Runner
	if cfg.withWorker {
		runner = distributed.NewRunner(db.Client, b, dist, reg, mon, invoker, orch,
			distributed.RunnerConfig{
				WorkerID:          "e2e-worker",
				HeartbeatInterval: 200 * time.Millisecond,
				PollWait:          50 * time.Millisecond,
			})
		require.NoError(t, runner.Start(ctx))
		t.Cleanup(func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			runner.Stop(stopCtx)
		})
	}

	tasks := services.NewTaskService(db.Client, orch)
	manual := services.NewManualTaskService(db.Client)
	errLogs := services.NewErrorLogService(db.Client)
	server := api.NewServer(db, b, reg, tasks, mon, dist, manual, errLogs)

	httpSrv := httptest.NewServer(server.Router())
	t.Cleanup(httpSrv.Close)

	return &TestApp{
		DB:           db,
		EntClient:    db.Client,
		Broker:       b,
		LLM:          cfg.llm,
		Registry:     reg,
		Monitor:      mon,
		Distributed:  dist,
		Orchestrator: orch,
		Runner:       runner,
		BaseURL:      httpSrv.URL,
		t:            t,
	}
}

// PostJSON issues a POST and decodes the JSON response body.
func (app *TestApp) PostJSON(path string, body any) (int, map[string]any) {
	app.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(app.t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(app.BaseURL+path, "application/json", &buf)
	require.NoError(app.t, err)
	return decodeResponse(app.t, resp)
}

// GetJSON issues a GET and decodes the JSON response body.
func (app *TestApp) GetJSON(path string) (int, map[string]any) {
	app.t.Helper()
	resp, err := http.Get(app.BaseURL + path)
	require.NoError(app.t, err)
	return decodeResponse(app.t, resp)
}

func decodeResponse(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// CreateAgent registers an agent over HTTP and returns its id.
func (app *TestApp) CreateAgent(name, kind string, capabilities []string) string {
	app.t.Helper()
	code, body := app.PostJSON("/agents", map[string]any{
		"name":         name,
		"kind":         kind,
		"capabilities": capabilities,
	})
	require.Equal(app.t, http.StatusCreated, code, "create agent %s: %v", name, body)
	return body["id"].(string)
}

// SubmitTask submits a task over HTTP and returns its id.
func (app *TestApp) SubmitTask(input map[string]any) string {
	app.t.Helper()
	code, body := app.PostJSON("/tasks", input)
	require.Equal(app.t, http.StatusAccepted, code, "submit task: %v", body)
	return body["task_id"].(string)
}

// WaitForTaskStatus polls the status endpoint until the task reaches the
// wanted status or the timeout expires, and returns the final status body.
func (app *TestApp) WaitForTaskStatus(taskID, want string, timeout time.Duration) map[string]any {
	app.t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		code, body := app.GetJSON("/tasks/" + taskID)
		require.Equal(app.t, http.StatusOK, code)
		last = body
		if body["status"] == want {
			return body
		}
		time.Sleep(25 * time.Millisecond)
	}
	require.FailNow(app.t, "task did not reach status",
		fmt.Sprintf("task %s: want %q, last %v", taskID, want, last))
	return nil
}
