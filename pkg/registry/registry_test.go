package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	client := testdb.NewTestClient(t)
	return New(client.Client, nil)
}

func mustCreate(t *testing.T, r *Registry, def models.AgentDefinition) *ent.Agent {
	t.Helper()
	a, err := r.Create(context.Background(), def)
	require.NoError(t, err)
	return a
}

func TestRegistry_Create(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		a, err := r.Create(ctx, models.AgentDefinition{Name: "researcher", Kind: "domain"})
		require.NoError(t, err)
		assert.Equal(t, agent.StatusInitializing, a.Status)
		assert.Equal(t, []string{"general"}, a.Capabilities)
		assert.Equal(t, 10, a.MaxIterations)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := r.Create(ctx, models.AgentDefinition{Name: "researcher", Kind: "worker"})
		assert.ErrorIs(t, err, services.ErrNameConflict)
	})

	t.Run("rejects unknown supervisor", func(t *testing.T) {
		missing := "00000000-0000-0000-0000-000000000000"
		_, err := r.Create(ctx, models.AgentDefinition{
			Name: "underling", Kind: "worker", SupervisorID: &missing,
		})
		assert.ErrorIs(t, err, services.ErrInvalidSupervisor)
	})

	t.Run("rejects empty name and unknown kind", func(t *testing.T) {
		_, err := r.Create(ctx, models.AgentDefinition{Name: "  ", Kind: "domain"})
		assert.True(t, services.IsValidationError(err))

		_, err = r.Create(ctx, models.AgentDefinition{Name: "x", Kind: "wizard"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("deduplicates capabilities", func(t *testing.T) {
		a, err := r.Create(ctx, models.AgentDefinition{
			Name: "dedup", Kind: "tool",
			Capabilities: []string{"search", "search", " ", "summarize"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"search", "summarize"}, a.Capabilities)
	})
}

func TestRegistry_GetAndList(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	a1 := mustCreate(t, r, models.AgentDefinition{
		Name: "summarizer", Kind: "domain", Domain: "text",
		Capabilities: []string{"summarization"},
	})
	mustCreate(t, r, models.AgentDefinition{
		Name: "mailer", Kind: "tool",
		Capabilities: []string{"email_send"},
	})

	t.Run("get by id and name", func(t *testing.T) {
		got, err := r.Get(ctx, a1.ID)
		require.NoError(t, err)
		assert.Equal(t, "summarizer", got.Name)

		got, err = r.GetByName(ctx, "mailer")
		require.NoError(t, err)
		assert.Equal(t, agent.KindTool, got.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.Get(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, services.ErrNotFound)
		_, err = r.GetByName(ctx, "ghost")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("list with filters", func(t *testing.T) {
		all, err := r.List(ctx, models.AgentFilters{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		tools, err := r.List(ctx, models.AgentFilters{Kind: "tool"})
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "mailer", tools[0].Name)

		// Capability filter is a substring match.
		summ, err := r.List(ctx, models.AgentFilters{Capability: "summar"})
		require.NoError(t, err)
		require.Len(t, summ, 1)
		assert.Equal(t, "summarizer", summ[0].Name)

		text, err := r.List(ctx, models.AgentFilters{Domain: "text"})
		require.NoError(t, err)
		assert.Len(t, text, 1)
	})
}

func TestRegistry_Update(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	a := mustCreate(t, r, models.AgentDefinition{
		Name: "shape-shifter", Kind: "domain",
		Capabilities: []string{"alpha"},
	})

	t.Run("capability change re-indexes", func(t *testing.T) {
		_, err := r.Update(ctx, a.ID, models.AgentPatch{Capabilities: []string{"beta"}})
		require.NoError(t, err)

		assert.Empty(t, r.FindByCapability("alpha"))
		found := r.FindByCapability("beta")
		require.Len(t, found, 1)
		assert.Equal(t, a.ID, found[0].ID)
	})

	t.Run("self supervision rejected", func(t *testing.T) {
		_, err := r.Update(ctx, a.ID, models.AgentPatch{SupervisorID: &a.ID})
		assert.ErrorIs(t, err, services.ErrInvalidSupervisor)
	})

	t.Run("supervisor cycle rejected", func(t *testing.T) {
		b := mustCreate(t, r, models.AgentDefinition{
			Name: "underling", Kind: "worker", SupervisorID: &a.ID,
		})
		_, err := r.Update(ctx, a.ID, models.AgentPatch{SupervisorID: &b.ID})
		assert.ErrorIs(t, err, services.ErrInvalidSupervisor)
	})
}

func TestRegistry_Delete(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	boss := mustCreate(t, r, models.AgentDefinition{
		Name: "boss", Kind: "supervisor", Capabilities: []string{"oversight"},
	})
	minion := mustCreate(t, r, models.AgentDefinition{
		Name: "minion", Kind: "worker", SupervisorID: &boss.ID,
	})

	t.Run("refuses while supervising", func(t *testing.T) {
		err := r.Delete(ctx, boss.ID)
		assert.ErrorIs(t, err, services.ErrAgentInUse)
	})

	t.Run("delete then recreate same name", func(t *testing.T) {
		require.NoError(t, r.Delete(ctx, minion.ID))
		require.NoError(t, r.Delete(ctx, boss.ID))

		assert.Empty(t, r.FindByCapability("oversight"))

		again, err := r.Create(ctx, models.AgentDefinition{
			Name: "boss", Kind: "supervisor", Capabilities: []string{"oversight"},
		})
		require.NoError(t, err)
		assert.NotEqual(t, boss.ID, again.ID)
	})

	t.Run("delete unknown agent", func(t *testing.T) {
		err := r.Delete(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestRegistry_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	initCalls := 0
	r := New(client.Client, func(ctx context.Context, a *ent.Agent) error {
		initCalls++
		return nil
	})

	a := mustCreate(t, r, models.AgentDefinition{Name: "lifer", Kind: "domain"})

	t.Run("start runs the init hook once", func(t *testing.T) {
		started, err := r.Start(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusIdle, started.Status)
		assert.Equal(t, 1, initCalls)

		_, err = r.Stop(ctx, a.ID)
		require.NoError(t, err)
		restarted, err := r.Start(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusIdle, restarted.Status)
		assert.Equal(t, 1, initCalls, "init hook must not run again")
	})

	t.Run("busy agent cannot be started", func(t *testing.T) {
		_, err := r.SetStatus(ctx, a.ID, agent.StatusProcessing)
		require.NoError(t, err)
		_, err = r.Start(ctx, a.ID)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("failing init hook marks the agent errored", func(t *testing.T) {
		failing := New(client.Client, func(ctx context.Context, a *ent.Agent) error {
			return errors.New("tool registration failed")
		})
		b, err := failing.Create(ctx, models.AgentDefinition{Name: "doomed", Kind: "tool"})
		require.NoError(t, err)

		_, err = failing.Start(ctx, b.ID)
		require.Error(t, err)
		got, err := failing.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusError, got.Status)
	})
}

func TestRegistry_Load(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	first := New(client.Client, nil)
	mustCreate(t, first, models.AgentDefinition{
		Name: "survivor", Kind: "domain", Capabilities: []string{"archive"},
	})

	// A fresh registry over the same store rebuilds cache and index.
	second := New(client.Client, nil)
	require.NoError(t, second.Load(ctx))

	found := second.FindByCapability("archive")
	require.Len(t, found, 1)
	assert.Equal(t, "survivor", found[0].Name)

	_, err := second.GetByName(ctx, "survivor")
	assert.NoError(t, err)
}
