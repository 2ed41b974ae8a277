package orchestrator

import (
	"testing"

	"github.com/maestro-run/maestro/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specs(rows ...models.SubtaskSpec) []models.SubtaskSpec { return rows }

func node(id string, deps ...string) models.SubtaskSpec {
	return models.SubtaskSpec{
		ID:                  id,
		Description:         "work on " + id,
		EstimatedComplexity: models.ComplexityMedium,
		Dependencies:        deps,
	}
}

func TestValidateSpecs(t *testing.T) {
	t.Run("accepts a valid DAG", func(t *testing.T) {
		assert.NoError(t, validateSpecs(specs(node("a"), node("b", "a"), node("c", "a"))))
	})

	t.Run("rejects empty decomposition", func(t *testing.T) {
		assert.Error(t, validateSpecs(nil))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		assert.Error(t, validateSpecs(specs(node("a"), node("a"))))
	})

	t.Run("rejects unresolved dependency", func(t *testing.T) {
		assert.Error(t, validateSpecs(specs(node("a", "ghost"))))
	})

	t.Run("rejects self dependency", func(t *testing.T) {
		assert.Error(t, validateSpecs(specs(node("a", "a"))))
	})

	t.Run("rejects cycles", func(t *testing.T) {
		assert.Error(t, validateSpecs(specs(node("a", "b"), node("b", "a"))))
	})
}

func TestTopologicalOrder(t *testing.T) {
	t.Run("respects dependencies and decomposition order", func(t *testing.T) {
		order, ok := topologicalOrder(specs(
			node("fetch"),
			node("parse", "fetch"),
			node("lint"),
			node("report", "parse", "lint"),
		))
		require.True(t, ok)
		assert.Equal(t, []string{"fetch", "parse", "lint", "report"}, order)
	})

	t.Run("stable across runs", func(t *testing.T) {
		input := specs(node("a"), node("b"), node("c", "a", "b"), node("d", "c"))
		first, ok := topologicalOrder(input)
		require.True(t, ok)
		for i := 0; i < 20; i++ {
			again, ok := topologicalOrder(input)
			require.True(t, ok)
			assert.Equal(t, first, again)
		}
	})

	t.Run("detects cycles", func(t *testing.T) {
		_, ok := topologicalOrder(specs(node("a", "c"), node("b", "a"), node("c", "b")))
		assert.False(t, ok)
	})
}

func TestCriticalPath(t *testing.T) {
	t.Run("longest chain wins", func(t *testing.T) {
		path := criticalPath(specs(
			node("a"),
			node("b", "a"),
			node("c", "b"),
			node("x"),
			node("y", "x"),
		))
		assert.Equal(t, []string{"a", "b", "c"}, path)
	})

	t.Run("single node", func(t *testing.T) {
		assert.Equal(t, []string{"only"}, criticalPath(specs(node("only"))))
	})

	t.Run("cycle yields empty path", func(t *testing.T) {
		assert.Empty(t, criticalPath(specs(node("a", "b"), node("b", "a"))))
	})
}

func TestMaxParallelismAndComplexity(t *testing.T) {
	roots := specs(node("a"), node("b"), node("c", "a"))
	assert.Equal(t, 2, maxParallelism(roots))

	// Degenerate graphs still allow one slot.
	assert.Equal(t, 1, maxParallelism(specs(node("a", "b"), node("b", "a"))))

	mixed := []models.SubtaskSpec{
		{ID: "l", EstimatedComplexity: models.ComplexityLow},
		{ID: "m", EstimatedComplexity: models.ComplexityMedium},
		{ID: "h", EstimatedComplexity: models.ComplexityHigh},
	}
	assert.Equal(t, 14, totalComplexity(mixed))
}

func TestBuildAggregate(t *testing.T) {
	decomp := &models.Decomposition{
		Subtasks: specs(node("s1"), node("s2", "s1")),
	}

	t.Run("combined results in topological order on full success", func(t *testing.T) {
		agg := buildAggregate(decomp, map[string]*models.SubtaskResult{
			"s2": {SubtaskID: "s2", Success: true, Result: map[string]any{"result": "r2"}},
			"s1": {SubtaskID: "s1", Success: true, Result: map[string]any{"result": "r1"}},
		})
		assert.Equal(t, 2, agg.SubtasksSuccessful)
		assert.InDelta(t, 1.0, agg.SuccessRate, 1e-9)
		assert.Equal(t, []any{"r1", "r2"}, agg.CombinedResults)
	})

	t.Run("no combined results when a result key is missing", func(t *testing.T) {
		agg := buildAggregate(decomp, map[string]*models.SubtaskResult{
			"s1": {SubtaskID: "s1", Success: true, Result: map[string]any{"result": "r1"}},
			"s2": {SubtaskID: "s2", Success: true, Result: map[string]any{"answer": "r2"}},
		})
		assert.Nil(t, agg.CombinedResults)
	})

	t.Run("failures tracked", func(t *testing.T) {
		agg := buildAggregate(decomp, map[string]*models.SubtaskResult{
			"s1": {SubtaskID: "s1", Success: true, Result: map[string]any{"result": "r1"}},
			"s2": {SubtaskID: "s2", Error: "boom"},
		})
		assert.Equal(t, 1, agg.SubtasksFailed)
		assert.Equal(t, []string{"s2"}, agg.FailedSubtasks)
		assert.InDelta(t, 0.5, agg.SuccessRate, 1e-9)
		assert.Nil(t, agg.CombinedResults)
		assert.LessOrEqual(t, agg.SubtasksSuccessful+agg.SubtasksFailed, agg.SubtasksTotal)
	})
}
