package orchestrator

import (
	"fmt"
	"time"

	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
)

// Per-subtask cost estimates by complexity, in the target currency unit.
var complexityCost = map[models.Complexity]float64{
	models.ComplexityLow:    0.001,
	models.ComplexityMedium: 0.005,
	models.ComplexityHigh:   0.02,
}

// Per-subtask duration estimates by complexity.
var complexityDuration = map[models.Complexity]time.Duration{
	models.ComplexityLow:    1000 * time.Millisecond,
	models.ComplexityMedium: 5000 * time.Millisecond,
	models.ComplexityHigh:   15000 * time.Millisecond,
}

// durationPadding widens the duration estimate to absorb scheduling slack.
const durationPadding = 1.2

// Planner assigns agents to the subtasks of a decomposition.
type Planner struct {
	registry *registry.Registry
}

// NewPlanner creates a planner over the given registry.
func NewPlanner(reg *registry.Registry) *Planner {
	return &Planner{registry: reg}
}

// BuildPlan walks the decomposition in topological order and picks the
// highest-scoring agent for each subtask. Tentative assignments feed back
// into load_balanced scoring through the running load map. A subtask with
// no eligible agent fails the whole plan.
func (p *Planner) BuildPlan(decomp *models.Decomposition, strategy models.DelegationStrategy, domain string) (*models.DelegationPlan, error) {
	if err := strategy.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err, services.ErrBadStrategy)
	}

	order, ok := topologicalOrder(decomp.Subtasks)
	if !ok {
		return nil, fmt.Errorf("decomposition for task %s: %w", decomp.TaskID, services.ErrDependencyDeadlock)
	}
	byID := make(map[string]models.SubtaskSpec, len(decomp.Subtasks))
	for _, s := range decomp.Subtasks {
		byID[s.ID] = s
	}

	plan := &models.DelegationPlan{
		TaskID:           decomp.TaskID,
		Strategy:         strategy,
		Assignments:      make(map[string]string, len(order)),
		LoadDistribution: make(map[string]int),
	}

	var maxDuration time.Duration
	for _, localID := range order {
		spec := byID[localID]

		a, _, err := p.registry.SelectForTask(spec.RequiredCapabilities, strategy, registry.SelectionOptions{
			Domain:    domain,
			ExtraLoad: plan.LoadDistribution,
		})
		if err != nil {
			return nil, fmt.Errorf("subtask %s: %w", localID, err)
		}

		plan.Assignments[localID] = a.ID
		plan.LoadDistribution[a.ID]++
		plan.EstimatedCost += complexityCost[spec.EstimatedComplexity]
		if d := complexityDuration[spec.EstimatedComplexity]; d > maxDuration {
			maxDuration = d
		}
	}

	plan.EstimatedDuration = time.Duration(float64(maxDuration) * durationPadding)
	return plan, nil
}
