package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	chat func(ctx context.Context, prompt string) (*llm.Response, error)
}

func (s *stubLLM) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	return s.chat(ctx, prompt)
}

func llmReturning(specs []models.SubtaskSpec) *stubLLM {
	return &stubLLM{chat: func(ctx context.Context, prompt string) (*llm.Response, error) {
		raw, _ := json.Marshal(specs)
		return &llm.Response{Content: string(raw), Model: "stub"}, nil
	}}
}

type stubInvoker struct {
	fn func(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error)
}

func (s *stubInvoker) Invoke(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error) {
	return s.fn(ctx, agentID, req)
}

type orchFixture struct {
	client   *ent.Client
	registry *registry.Registry
	monitor  *monitor.Monitor
	orch     *Orchestrator
}

func newFixture(t *testing.T, llmClient llm.Client, invoker AgentInvoker, cfg Config) *orchFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	reg := registry.New(db.Client, nil)
	mon := monitor.New(db.Client, monitor.DefaultConfig())
	orch := New(db.Client, reg, mon, llmClient, invoker, nil, cfg)
	return &orchFixture{client: db.Client, registry: reg, monitor: mon, orch: orch}
}

func addAgent(t *testing.T, reg *registry.Registry, name string, capabilities ...string) *ent.Agent {
	t.Helper()
	a, err := reg.Create(context.Background(), models.AgentDefinition{
		Name: name, Kind: "worker", Capabilities: capabilities,
	})
	require.NoError(t, err)
	return a
}

func echoInvoker() AgentInvoker {
	return &stubInvoker{fn: func(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error) {
		return map[string]any{"result": "done:" + req.SubtaskID}, nil
	}}
}

func waitTaskStatus(t *testing.T, client *ent.Client, taskID string, want task.Status) *ent.Task {
	t.Helper()
	var current *ent.Task
	require.Eventually(t, func() bool {
		loaded, err := client.Task.Get(context.Background(), taskID)
		if err != nil {
			return false
		}
		current = loaded
		return loaded.Status == want
	}, 10*time.Second, 25*time.Millisecond, "task never reached %s", want)
	return current
}

func TestOrchestrator_HappyPath(t *testing.T) {
	twoStep := []models.SubtaskSpec{
		{ID: "s1", Description: "summarize", RequiredCapabilities: []string{"summarization"},
			EstimatedComplexity: models.ComplexityLow},
		{ID: "s2", Description: "email", RequiredCapabilities: []string{"email_send"},
			EstimatedComplexity: models.ComplexityLow, Dependencies: []string{"s1"}},
	}
	f := newFixture(t, llmReturning(twoStep), echoInvoker(), Config{})
	addAgent(t, f.registry, "A1", "summarization")
	addAgent(t, f.registry, "A2", "email_send")

	f.orch.Start(context.Background())
	defer f.orch.Stop()

	created, err := f.orch.Submit(context.Background(), models.SubmitTaskInput{
		Description: "T1: summarize then email",
	})
	require.NoError(t, err)

	done := waitTaskStatus(t, f.client, created.ID, task.StatusCompleted)
	require.NotNil(t, done.Result)
	assert.EqualValues(t, 2, done.Result["subtasks_successful"])
	assert.EqualValues(t, 1.0, done.Result["success_rate"])
	combined, ok := done.Result["combined_results"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"done:s1", "done:s2"}, combined)

	// Decomposition record and subtask rows round-tripped.
	rows, err := f.client.Subtask.Query().Where(subtask.TaskIDEQ(created.ID)).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, subtask.StatusCompleted, row.Status)
		require.NotNil(t, row.AgentID)
	}
}

func TestOrchestrator_DeadlockDetection(t *testing.T) {
	// Corrupted cyclic decomposition injected past the validator.
	cyclic := []models.SubtaskSpec{
		{ID: "s1", Description: "first", EstimatedComplexity: models.ComplexityLow, Dependencies: []string{"s2"}},
		{ID: "s2", Description: "second", EstimatedComplexity: models.ComplexityLow, Dependencies: []string{"s1"}},
	}
	f := newFixture(t, llmReturning(nil), echoInvoker(), Config{})
	ctx := context.Background()

	created, err := f.client.Task.Create().
		SetID("11111111-1111-1111-1111-111111111111").
		SetDescription("corrupted").
		Save(ctx)
	require.NoError(t, err)

	decomp := buildDecomposition(created.ID, created.Description, models.DecompositionHierarchical, cyclic)
	assert.Empty(t, decomp.CriticalPath)
	require.NoError(t, f.orch.persistDecomposition(ctx, decomp))

	_, execErr := f.orch.executor.Execute(ctx, created, decomp, &models.DelegationPlan{
		Assignments: map[string]string{},
	})
	assert.ErrorIs(t, execErr, services.ErrDependencyDeadlock)

	rows, err := f.client.Subtask.Query().Where(subtask.TaskIDEQ(created.ID)).All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, subtask.StatusFailed, row.Status)
		require.NotNil(t, row.ErrorMessage)
		assert.Equal(t, services.ErrDependencyDeadlock.Error(), *row.ErrorMessage)
	}

	logged, err := f.client.ErrorLog.Query().
		Where(errorlog.TaskIDEQ(created.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logged)
}

func TestOrchestrator_NoAgentAvailable(t *testing.T) {
	exotic := []models.SubtaskSpec{
		{ID: "s1", Description: "simulate", RequiredCapabilities: []string{"quantum_sim"},
			EstimatedComplexity: models.ComplexityHigh},
	}
	f := newFixture(t, llmReturning(exotic), echoInvoker(), Config{})
	addAgent(t, f.registry, "mundane", "summarization")

	f.orch.Start(context.Background())
	defer f.orch.Stop()

	created, err := f.orch.Submit(context.Background(), models.SubmitTaskInput{
		Description: "needs a quantum simulator",
	})
	require.NoError(t, err)

	failed := waitTaskStatus(t, f.client, created.ID, task.StatusFailed)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, services.ErrNoAgentAvailable.Error())
}

func TestOrchestrator_SubmitValidationAndBackpressure(t *testing.T) {
	f := newFixture(t, llmReturning(nil), echoInvoker(), Config{QueueSize: 1})
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		_, err := f.orch.Submit(ctx, models.SubmitTaskInput{Description: "  "})
		assert.True(t, services.IsValidationError(err))

		_, err = f.orch.Submit(ctx, models.SubmitTaskInput{Description: "x", Priority: 9})
		assert.True(t, services.IsValidationError(err))

		_, err = f.orch.Submit(ctx, models.SubmitTaskInput{
			Description: "x", DecompositionStrategy: "psychic",
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("backpressure leaves no record", func(t *testing.T) {
		// Processor not started: the first submission fills the queue.
		_, err := f.orch.Submit(ctx, models.SubmitTaskInput{Description: "first"})
		require.NoError(t, err)

		_, err = f.orch.Submit(ctx, models.SubmitTaskInput{Description: "second"})
		assert.ErrorIs(t, err, services.ErrBackpressureExceeded)

		count, err := f.client.Task.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same description twice yields two records", func(t *testing.T) {
		g := newFixture(t, llmReturning(nil), echoInvoker(), Config{QueueSize: 10})
		a, err := g.orch.Submit(ctx, models.SubmitTaskInput{Description: "dup"})
		require.NoError(t, err)
		b, err := g.orch.Submit(ctx, models.SubmitTaskInput{Description: "dup"})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestOrchestrator_Cancellation(t *testing.T) {
	slowSpec := []models.SubtaskSpec{
		{ID: "s1", Description: "long haul", RequiredCapabilities: []string{"general"},
			EstimatedComplexity: models.ComplexityHigh},
	}
	started := make(chan struct{})
	blocking := &stubInvoker{fn: func(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	f := newFixture(t, llmReturning(slowSpec), blocking, Config{})
	addAgent(t, f.registry, "worker-1")

	f.orch.Start(context.Background())
	defer f.orch.Stop()

	created, err := f.orch.Submit(context.Background(), models.SubmitTaskInput{
		Description: "cancellable work",
	})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("subtask never started")
	}
	require.NoError(t, f.orch.Cancel(context.Background(), created.ID))

	cancelled := waitTaskStatus(t, f.client, created.ID, task.StatusCancelled)
	require.NotNil(t, cancelled.ErrorMessage)
	assert.Equal(t, services.ErrCancelled.Error(), *cancelled.ErrorMessage)

	t.Run("terminal tasks are not cancellable", func(t *testing.T) {
		err := f.orch.Cancel(context.Background(), created.ID)
		assert.ErrorIs(t, err, services.ErrNotCancellable)
	})
}

func TestExecutor_ParallelismLimit(t *testing.T) {
	// Ten independent subtasks with a forced limit of one: the observed
	// in-flight count must never exceed it.
	var specs []models.SubtaskSpec
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		specs = append(specs, models.SubtaskSpec{
			ID: id, Description: id, EstimatedComplexity: models.ComplexityLow,
		})
	}

	var inFlight, maxSeen atomic.Int32
	counting := &stubInvoker{fn: func(ctx context.Context, agentID string, req InvokeRequest) (map[string]any, error) {
		n := inFlight.Add(1)
		for {
			seen := maxSeen.Load()
			if n <= seen || maxSeen.CompareAndSwap(seen, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return map[string]any{"result": req.SubtaskID}, nil
	}}

	f := newFixture(t, llmReturning(nil), counting, Config{})
	a := addAgent(t, f.registry, "solo")
	ctx := context.Background()

	created, err := f.client.Task.Create().
		SetID("22222222-2222-2222-2222-222222222222").
		SetDescription("serialized").
		Save(ctx)
	require.NoError(t, err)

	decomp := buildDecomposition(created.ID, created.Description, models.DecompositionParallel, specs)
	decomp.MaxParallelism = 1
	require.NoError(t, f.orch.persistDecomposition(ctx, decomp))

	assignments := make(map[string]string, len(specs))
	for _, s := range specs {
		assignments[s.ID] = a.ID
	}
	agg, execErr := f.orch.executor.Execute(ctx, created, decomp, &models.DelegationPlan{Assignments: assignments})
	require.NoError(t, execErr)
	assert.Equal(t, 10, agg.SubtasksSuccessful)
	assert.LessOrEqual(t, maxSeen.Load(), int32(1))
}

func TestDecomposer_Fallback(t *testing.T) {
	t.Run("llm error falls back", func(t *testing.T) {
		d := NewDecomposer(&stubLLM{chat: func(ctx context.Context, prompt string) (*llm.Response, error) {
			return nil, errors.New("provider down")
		}})
		decomp := d.Decompose(context.Background(), "t-1", "do the thing", models.DecompositionSequential)
		require.Len(t, decomp.Subtasks, 2)
		assert.Equal(t, []string{"subtask_1"}, decomp.Subtasks[1].Dependencies)
		assert.Equal(t, []string{"subtask_1", "subtask_2"}, decomp.CriticalPath)
		assert.Equal(t, 1, decomp.MaxParallelism)
	})

	t.Run("unparseable content falls back", func(t *testing.T) {
		d := NewDecomposer(&stubLLM{chat: func(ctx context.Context, prompt string) (*llm.Response, error) {
			return &llm.Response{Content: "I cannot answer in JSON, sorry"}, nil
		}})
		decomp := d.Decompose(context.Background(), "t-2", "thing", models.DecompositionParallel)
		assert.Len(t, decomp.Subtasks, 2)
	})

	t.Run("fenced JSON accepted", func(t *testing.T) {
		fenced := "```json\n[{\"id\":\"s1\",\"description\":\"only step\"," +
			"\"required_capabilities\":[\"general\"],\"estimated_complexity\":\"low\",\"dependencies\":[]}]\n```"
		d := NewDecomposer(&stubLLM{chat: func(ctx context.Context, prompt string) (*llm.Response, error) {
			return &llm.Response{Content: fenced}, nil
		}})
		decomp := d.Decompose(context.Background(), "t-3", "thing", models.DecompositionHierarchical)
		require.Len(t, decomp.Subtasks, 1)
		assert.Equal(t, "s1", decomp.Subtasks[0].ID)
	})

	t.Run("cyclic llm output falls back", func(t *testing.T) {
		cyclic := []models.SubtaskSpec{
			{ID: "s1", Description: "a", Dependencies: []string{"s2"}},
			{ID: "s2", Description: "b", Dependencies: []string{"s1"}},
		}
		d := NewDecomposer(llmReturning(cyclic))
		decomp := d.Decompose(context.Background(), "t-4", "thing", models.DecompositionHierarchical)
		assert.Len(t, decomp.Subtasks, 2)
		assert.Equal(t, "subtask_1", decomp.Subtasks[0].ID)
	})
}

func TestPlanner_BuildPlan(t *testing.T) {
	db := testdb.NewTestClient(t)
	reg := registry.New(db.Client, nil)
	planner := NewPlanner(reg)

	addAgent(t, reg, "alpha", "extract")
	addAgent(t, reg, "beta", "extract", "transform")

	decomp := buildDecomposition("t-1", "pipeline", models.DecompositionSequential, []models.SubtaskSpec{
		{ID: "s1", Description: "pull", RequiredCapabilities: []string{"extract"}, EstimatedComplexity: models.ComplexityLow},
		{ID: "s2", Description: "shape", RequiredCapabilities: []string{"transform"}, EstimatedComplexity: models.ComplexityHigh, Dependencies: []string{"s1"}},
	})

	t.Run("assigns every subtask with estimates", func(t *testing.T) {
		plan, err := planner.BuildPlan(decomp, models.DelegationCapabilityMatch, "")
		require.NoError(t, err)
		assert.Len(t, plan.Assignments, 2)
		assert.InDelta(t, 0.021, plan.EstimatedCost, 1e-9)
		assert.Equal(t, time.Duration(float64(15000*time.Millisecond)*1.2), plan.EstimatedDuration)

		total := 0
		for _, n := range plan.LoadDistribution {
			total += n
		}
		assert.Equal(t, 2, total)
	})

	t.Run("load_balanced spreads across agents", func(t *testing.T) {
		spread := buildDecomposition("t-2", "fanout", models.DecompositionParallel, []models.SubtaskSpec{
			{ID: "p1", RequiredCapabilities: []string{"extract"}, EstimatedComplexity: models.ComplexityLow},
			{ID: "p2", RequiredCapabilities: []string{"extract"}, EstimatedComplexity: models.ComplexityLow},
		})
		plan, err := planner.BuildPlan(spread, models.DelegationLoadBalanced, "")
		require.NoError(t, err)
		assert.Len(t, plan.LoadDistribution, 2, "two agents should each get one subtask")
	})

	t.Run("missing capability fails the plan", func(t *testing.T) {
		impossible := buildDecomposition("t-3", "nope", models.DecompositionParallel, []models.SubtaskSpec{
			{ID: "s1", RequiredCapabilities: []string{"quantum_sim"}, EstimatedComplexity: models.ComplexityLow},
		})
		_, err := planner.BuildPlan(impossible, models.DelegationCapabilityMatch, "")
		assert.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := planner.BuildPlan(decomp, models.DelegationStrategy("psychic"), "")
		assert.ErrorIs(t, err, services.ErrBadStrategy)
	})
}
