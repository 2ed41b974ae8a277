package models

import "fmt"

// DecompositionStrategy selects the prompt shape used to break a task into
// subtasks.
type DecompositionStrategy string

// Decomposition strategies.
const (
	DecompositionHierarchical  DecompositionStrategy = "hierarchical"
	DecompositionSequential    DecompositionStrategy = "sequential"
	DecompositionParallel      DecompositionStrategy = "parallel"
	DecompositionDivideConquer DecompositionStrategy = "divide_conquer"
)

// Validate returns an error for unknown decomposition strategies.
func (s DecompositionStrategy) Validate() error {
	switch s {
	case DecompositionHierarchical, DecompositionSequential,
		DecompositionParallel, DecompositionDivideConquer:
		return nil
	}
	return fmt.Errorf("unknown decomposition strategy: %q", string(s))
}

// DelegationStrategy selects the agent-scoring policy used when assigning
// subtasks to agents.
type DelegationStrategy string

// Delegation strategies.
const (
	DelegationCapabilityMatch      DelegationStrategy = "capability_match"
	DelegationDomainExpert         DelegationStrategy = "domain_expert"
	DelegationLoadBalanced         DelegationStrategy = "load_balanced"
	DelegationCostOptimized        DelegationStrategy = "cost_optimized"
	DelegationPerformanceOptimized DelegationStrategy = "performance_optimized"
)

// Validate returns an error for unknown delegation strategies.
func (s DelegationStrategy) Validate() error {
	switch s {
	case DelegationCapabilityMatch, DelegationDomainExpert,
		DelegationLoadBalanced, DelegationCostOptimized,
		DelegationPerformanceOptimized:
		return nil
	}
	return fmt.Errorf("unknown delegation strategy: %q", string(s))
}

// DistributionMode controls where subtasks execute.
type DistributionMode string

// Distribution modes.
const (
	// DistributionLocal executes subtasks in-process.
	DistributionLocal DistributionMode = "local"
	// DistributionDistributed pushes the whole task onto a broker queue.
	DistributionDistributed DistributionMode = "distributed"
	// DistributionHybrid decomposes locally and distributes the leaves.
	DistributionHybrid DistributionMode = "hybrid"
)

// Validate returns an error for unknown distribution modes.
func (m DistributionMode) Validate() error {
	switch m {
	case DistributionLocal, DistributionDistributed, DistributionHybrid:
		return nil
	}
	return fmt.Errorf("unknown distribution mode: %q", string(m))
}

// Complexity is the LLM's effort estimate for a single subtask.
type Complexity string

// Complexity levels.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Score maps a complexity level to its contribution to total task
// complexity. Unknown levels count as medium.
func (c Complexity) Score() int {
	switch c {
	case ComplexityLow:
		return 1
	case ComplexityHigh:
		return 10
	default:
		return 3
	}
}
