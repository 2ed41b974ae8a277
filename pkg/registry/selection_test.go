package registry

import (
	"context"
	"testing"

	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SelectForTask(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	specialist := mustCreate(t, r, models.AgentDefinition{
		Name: "specialist", Kind: "domain", Domain: "finance",
		Capabilities: []string{"summarization", "extraction"},
	})
	generalist := mustCreate(t, r, models.AgentDefinition{
		Name: "generalist", Kind: "worker",
		Capabilities: []string{"summarization"},
	})

	t.Run("capability_match favors broader overlap", func(t *testing.T) {
		best, score, err := r.SelectForTask(
			[]string{"summarization", "extraction"},
			models.DelegationCapabilityMatch, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, specialist.ID, best.ID)
		assert.InDelta(t, 2.0, score, 1e-9) // 2 matches × 0.5 + 1
	})

	t.Run("ties break by name", func(t *testing.T) {
		best, score, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationDomainExpert, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, generalist.ID, best.ID, "generalist sorts before specialist")
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("domain_expert boosts a matching domain tag", func(t *testing.T) {
		best, score, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationDomainExpert, SelectionOptions{Domain: "finance"})
		require.NoError(t, err)
		assert.Equal(t, specialist.ID, best.ID)
		assert.InDelta(t, 1.3, score, 1e-9)
	})

	t.Run("load_balanced prefers the idle agent", func(t *testing.T) {
		r.AddLoad(generalist.ID)
		r.AddLoad(generalist.ID)
		defer func() {
			r.ReleaseLoad(generalist.ID)
			r.ReleaseLoad(generalist.ID)
		}()

		best, score, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationLoadBalanced, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, specialist.ID, best.ID)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("load_balanced counts planner-local assignments", func(t *testing.T) {
		best, _, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationLoadBalanced,
			SelectionOptions{ExtraLoad: map[string]int{generalist.ID: 3}})
		require.NoError(t, err)
		assert.Equal(t, specialist.ID, best.ID)
	})

	t.Run("cost_optimized prefers the cheaper history", func(t *testing.T) {
		r.RecordExecution(specialist.ID, true, 100, 0.10)
		r.RecordExecution(generalist.ID, true, 100, 0.001)

		best, _, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationCostOptimized, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, generalist.ID, best.ID)
	})

	t.Run("performance_optimized prefers fast reliable agents", func(t *testing.T) {
		fast := mustCreate(t, r, models.AgentDefinition{
			Name: "fast", Kind: "domain", Capabilities: []string{"ranking"},
		})
		slow := mustCreate(t, r, models.AgentDefinition{
			Name: "slow", Kind: "domain", Capabilities: []string{"ranking"},
		})
		r.RecordExecution(fast.ID, true, 50, 0)
		r.RecordExecution(slow.ID, false, 4000, 0)
		r.RecordExecution(slow.ID, true, 4000, 0)

		best, _, err := r.SelectForTask(
			[]string{"ranking"},
			models.DelegationPerformanceOptimized, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, fast.ID, best.ID)
	})

	t.Run("error status penalty and floor", func(t *testing.T) {
		errored := mustCreate(t, r, models.AgentDefinition{
			Name: "flaky", Kind: "worker", Capabilities: []string{"telemetry"},
		})
		_, err := r.SetStatus(ctx, errored.ID, agent.StatusError)
		require.NoError(t, err)

		// Sole candidate: still selectable, score penalized from 1.0.
		best, score, err := r.SelectForTask(
			[]string{"telemetry"},
			models.DelegationDomainExpert, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, errored.ID, best.ID)
		assert.InDelta(t, 0.5, score, 1e-9)

		// load_balanced base for a loaded errored agent would go below the
		// floor; it is clamped.
		r.AddLoad(errored.ID)
		r.AddLoad(errored.ID)
		_, score, err = r.SelectForTask(
			[]string{"telemetry"},
			models.DelegationLoadBalanced, SelectionOptions{})
		require.NoError(t, err)
		assert.InDelta(t, minScore, score, 1e-9)
	})

	t.Run("empty requirements default to general", func(t *testing.T) {
		fallback := mustCreate(t, r, models.AgentDefinition{Name: "utility", Kind: "worker"})

		best, _, err := r.SelectForTask(nil, models.DelegationCapabilityMatch, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, fallback.ID, best.ID)
	})

	t.Run("exclude busy", func(t *testing.T) {
		busyOnly := mustCreate(t, r, models.AgentDefinition{
			Name: "occupied", Kind: "domain", Capabilities: []string{"payments"},
		})
		_, err := r.SetStatus(ctx, busyOnly.ID, agent.StatusProcessing)
		require.NoError(t, err)

		_, _, err = r.SelectForTask(
			[]string{"payments"},
			models.DelegationCapabilityMatch, SelectionOptions{ExcludeBusy: true})
		assert.ErrorIs(t, err, services.ErrNoAgentAvailable)

		best, _, err := r.SelectForTask(
			[]string{"payments"},
			models.DelegationCapabilityMatch, SelectionOptions{})
		require.NoError(t, err)
		assert.Equal(t, busyOnly.ID, best.ID)
	})

	t.Run("stopped agents never qualify", func(t *testing.T) {
		stopped := mustCreate(t, r, models.AgentDefinition{
			Name: "retired", Kind: "domain", Capabilities: []string{"archival"},
		})
		_, err := r.Stop(ctx, stopped.ID)
		require.NoError(t, err)

		_, _, err = r.SelectForTask(
			[]string{"archival"},
			models.DelegationCapabilityMatch, SelectionOptions{})
		assert.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, _, err := r.SelectForTask(
			[]string{"summarization"},
			models.DelegationStrategy("psychic"), SelectionOptions{})
		assert.ErrorIs(t, err, services.ErrBadStrategy)
	})

	t.Run("no candidate at all", func(t *testing.T) {
		_, _, err := r.SelectForTask(
			[]string{"quantum_sim"},
			models.DelegationCapabilityMatch, SelectionOptions{})
		assert.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("selection is deterministic", func(t *testing.T) {
		firstBest, firstScore, err := r.SelectForTask(
			[]string{"summarization", "extraction"},
			models.DelegationCapabilityMatch, SelectionOptions{})
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			best, score, err := r.SelectForTask(
				[]string{"summarization", "extraction"},
				models.DelegationCapabilityMatch, SelectionOptions{})
			require.NoError(t, err)
			assert.Equal(t, firstBest.ID, best.ID)
			assert.Equal(t, firstScore, score)
		}
	})
}
