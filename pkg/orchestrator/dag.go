package orchestrator

import (
	"fmt"

	"github.com/maestro-run/maestro/pkg/models"
)

// validateSpecs checks the structural invariants of a decomposition: at
// least one subtask, unique local IDs, every dependency resolving within
// the set, and an acyclic dependency graph.
func validateSpecs(specs []models.SubtaskSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("decomposition produced no subtasks")
	}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.ID == "" {
			return fmt.Errorf("subtask with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate subtask id %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, s := range specs {
		for _, dep := range s.Dependencies {
			if !seen[dep] {
				return fmt.Errorf("subtask %q depends on unknown id %q", s.ID, dep)
			}
			if dep == s.ID {
				return fmt.Errorf("subtask %q depends on itself", s.ID)
			}
		}
	}
	if _, ok := topologicalOrder(specs); !ok {
		return fmt.Errorf("dependency graph contains a cycle")
	}
	return nil
}

// topologicalOrder returns the subtask IDs in dependency order using
// Kahn's algorithm. The frontier is consumed in decomposition order, so
// the result is stable for identical inputs. Returns ok=false when the
// graph has a cycle.
func topologicalOrder(specs []models.SubtaskSpec) ([]string, bool) {
	indegree := make(map[string]int, len(specs))
	dependents := make(map[string][]string, len(specs))
	position := make(map[string]int, len(specs))

	for i, s := range specs {
		position[s.ID] = i
		indegree[s.ID] += 0
		for _, dep := range s.Dependencies {
			indegree[s.ID]++
			dependents[dep] = append(dependents[dep], s.ID)
		}
	}

	// Ready queue ordered by decomposition position.
	var ready []string
	for _, s := range specs {
		if indegree[s.ID] == 0 {
			ready = append(ready, s.ID)
		}
	}

	order := make([]string, 0, len(specs))
	for len(ready) > 0 {
		// Pick the earliest-positioned ready node.
		best := 0
		for i := 1; i < len(ready); i++ {
			if position[ready[i]] < position[ready[best]] {
				best = i
			}
		}
		id := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, id)

		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) != len(specs) {
		return nil, false
	}
	return order, true
}

// criticalPath computes the longest path through the DAG by node count:
// topological sort followed by longest-path DP. A cycle yields an empty
// path; the caller logs the warning.
func criticalPath(specs []models.SubtaskSpec) []string {
	order, ok := topologicalOrder(specs)
	if !ok {
		return nil
	}

	deps := make(map[string][]string, len(specs))
	for _, s := range specs {
		deps[s.ID] = s.Dependencies
	}

	// length[id] = node count of the longest path ending at id;
	// prev[id] = predecessor on that path.
	length := make(map[string]int, len(specs))
	prev := make(map[string]string, len(specs))
	for _, id := range order {
		length[id] = 1
		for _, dep := range deps[id] {
			if length[dep]+1 > length[id] {
				length[id] = length[dep] + 1
				prev[id] = dep
			}
		}
	}

	end := ""
	for _, id := range order {
		if end == "" || length[id] > length[end] {
			end = id
		}
	}

	path := make([]string, 0, length[end])
	for id := end; id != ""; id = prev[id] {
		path = append(path, id)
	}
	// Reverse into root-to-leaf order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// maxParallelism counts the subtasks with no dependencies; at least 1.
func maxParallelism(specs []models.SubtaskSpec) int {
	roots := 0
	for _, s := range specs {
		if len(s.Dependencies) == 0 {
			roots++
		}
	}
	if roots < 1 {
		roots = 1
	}
	return roots
}

// totalComplexity sums the complexity scores of all subtasks.
func totalComplexity(specs []models.SubtaskSpec) int {
	total := 0
	for _, s := range specs {
		total += s.EstimatedComplexity.Score()
	}
	return total
}
