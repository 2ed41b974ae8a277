package registry

import (
	"fmt"
	"sort"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/services"
)

// minScore is the floor applied after all scoring adjustments.
const minScore = 0.1

// errStatusPenalty is subtracted from agents currently in error state.
const errStatusPenalty = 0.5

// SelectionOptions tune SelectForTask beyond the strategy choice.
type SelectionOptions struct {
	// Domain is matched against agent domain tags by the domain_expert
	// strategy.
	Domain string
	// ExcludeBusy drops agents in processing or waiting state.
	ExcludeBusy bool
	// ExtraLoad adds planner-local assignment counts on top of the
	// registry's live load, so a delegation pass scoring several subtasks
	// in sequence sees its own tentative assignments.
	ExtraLoad map[string]int
}

// SelectForTask scores every agent offering at least one required
// capability and returns the best one. An empty requirement list defaults
// to the "general" capability. Deterministic: equal scores break ties by
// name.
func (r *Registry) SelectForTask(required []string, strategy models.DelegationStrategy, opts SelectionOptions) (*ent.Agent, float64, error) {
	if err := strategy.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", err, services.ErrBadStrategy)
	}
	required = normalizeCapabilities(required)

	candidates := r.candidates(required, opts.ExcludeBusy)
	if len(candidates) == 0 {
		return nil, 0, fmt.Errorf("no agent offers any of %v: %w", required, services.ErrNoAgentAvailable)
	}

	var best *ent.Agent
	var bestScore float64
	for _, c := range candidates {
		score := r.score(c, required, strategy, opts)
		if best == nil || score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore, nil
}

// candidates returns agents offering at least one required capability,
// sorted by name so scoring iterates in a stable order. Stopped agents
// never qualify.
func (r *Registry) candidates(required []string, excludeBusy bool) []*ent.Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []*ent.Agent
	for _, c := range required {
		for id := range r.capIndex[c] {
			if seen[id] {
				continue
			}
			seen[id] = true
			a, ok := r.byID[id]
			if !ok || a.Status == agent.StatusStopped {
				continue
			}
			if excludeBusy && (a.Status == agent.StatusProcessing || a.Status == agent.StatusWaiting) {
				continue
			}
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// score computes the strategy score for one candidate, then applies the
// error-status penalty and the floor.
func (r *Registry) score(a *ent.Agent, required []string, strategy models.DelegationStrategy, opts SelectionOptions) float64 {
	var score float64
	switch strategy {
	case models.DelegationCapabilityMatch:
		score = float64(capabilityOverlap(a.Capabilities, required))*0.5 + 1

	case models.DelegationDomainExpert:
		score = 1
		if opts.Domain != "" && a.Domain == opts.Domain {
			score += 0.3
		}

	case models.DelegationLoadBalanced:
		load := r.CurrentLoad(a.ID) + opts.ExtraLoad[a.ID]
		score = 1 / float64(load+1)

	case models.DelegationCostOptimized:
		r.mu.RLock()
		cost := 0.0
		if s, ok := r.stats[a.ID]; ok {
			cost = s.costPerRequest()
		}
		r.mu.RUnlock()
		score = 1 / (cost + 0.001)

	case models.DelegationPerformanceOptimized:
		r.mu.RLock()
		successRate, avgLatency := 1.0, 0.0
		if s, ok := r.stats[a.ID]; ok {
			successRate = s.successRate()
			avgLatency = s.avgLatencyMS()
		}
		r.mu.RUnlock()
		score = successRate*0.5 + 1000/(avgLatency+1)*0.2
	}

	if a.Status == agent.StatusError {
		score -= errStatusPenalty
	}
	if score < minScore {
		score = minScore
	}
	return score
}

func capabilityOverlap(offered, required []string) int {
	set := make(map[string]bool, len(offered))
	for _, c := range offered {
		set[c] = true
	}
	overlap := 0
	for _, c := range required {
		if set[c] {
			overlap++
		}
	}
	return overlap
}
