package orchestrator

import (
	"sort"

	"github.com/maestro-run/maestro/pkg/models"
)

// buildAggregate compiles the task-level summary after DAG execution
// terminates. combined_results is emitted only when every subtask succeeded
// and every result carries a "result" key, ordered topologically.
func buildAggregate(decomp *models.Decomposition, results map[string]*models.SubtaskResult) *models.TaskAggregate {
	agg := &models.TaskAggregate{
		SubtasksTotal:    len(decomp.Subtasks),
		ResultsBySubtask: results,
	}

	for _, res := range results {
		if res.Success {
			agg.SubtasksSuccessful++
		} else {
			agg.SubtasksFailed++
			agg.FailedSubtasks = append(agg.FailedSubtasks, res.SubtaskID)
		}
	}
	sort.Strings(agg.FailedSubtasks)

	if agg.SubtasksTotal > 0 {
		agg.SuccessRate = float64(agg.SubtasksSuccessful) / float64(agg.SubtasksTotal)
	}

	if agg.SubtasksSuccessful != agg.SubtasksTotal || agg.SubtasksTotal == 0 {
		return agg
	}
	order, ok := topologicalOrder(decomp.Subtasks)
	if !ok {
		return agg
	}
	combined := make([]any, 0, len(order))
	for _, localID := range order {
		res := results[localID]
		if res == nil || res.Result == nil {
			return agg
		}
		value, ok := res.Result["result"]
		if !ok {
			return agg
		}
		combined = append(combined, value)
	}
	agg.CombinedResults = combined
	return agg
}
