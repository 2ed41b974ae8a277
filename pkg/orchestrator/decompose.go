package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/models"
)

// decompositionTimeout bounds the LLM call for a single decomposition.
const decompositionTimeout = 30 * time.Second

// Decomposer turns a task description into a validated subtask DAG via the
// LLM primitive, with a deterministic fallback when the model misbehaves.
type Decomposer struct {
	llm llm.Client
}

// NewDecomposer creates a decomposer backed by the given LLM client.
func NewDecomposer(client llm.Client) *Decomposer {
	return &Decomposer{llm: client}
}

// strategyInstructions shape the prompt per decomposition strategy.
var strategyInstructions = map[models.DecompositionStrategy]string{
	models.DecompositionHierarchical: "Break the task into a hierarchy: " +
		"high-level subtasks first, each depending on the subtasks that must complete before it.",
	models.DecompositionSequential: "Break the task into a strict sequence of steps: " +
		"each subtask depends on exactly the previous one.",
	models.DecompositionParallel: "Break the task into independent subtasks " +
		"that can all run concurrently; use dependencies only where strictly unavoidable.",
	models.DecompositionDivideConquer: "Divide the task into independent partitions, " +
		"process each partition as its own subtask, and add a final merge subtask depending on all partitions.",
}

// Decompose calls the LLM with a strategy-specific prompt and validates the
// returned subtask array. Any LLM or validation failure falls back to a
// two-node analyze → execute decomposition.
func (d *Decomposer) Decompose(ctx context.Context, taskID, description string, strategy models.DecompositionStrategy) *models.Decomposition {
	specs, err := d.requestSubtasks(ctx, description, strategy)
	if err != nil {
		slog.Warn("Decomposition fell back to analyze/execute",
			"task_id", taskID, "strategy", strategy, "error", err)
		specs = fallbackSpecs(description)
	}
	return buildDecomposition(taskID, description, strategy, specs)
}

// buildDecomposition computes the derived DAG properties for validated
// specs. A cycle (possible when specs bypass validation) yields an empty
// critical path and a logged warning.
func buildDecomposition(taskID, description string, strategy models.DecompositionStrategy, specs []models.SubtaskSpec) *models.Decomposition {
	path := criticalPath(specs)
	if len(path) == 0 {
		slog.Warn("Cycle detected in decomposition, critical path left empty", "task_id", taskID)
	}
	return &models.Decomposition{
		TaskID:          taskID,
		Description:     description,
		Strategy:        strategy,
		Subtasks:        specs,
		TotalComplexity: totalComplexity(specs),
		MaxParallelism:  maxParallelism(specs),
		CriticalPath:    path,
	}
}

func (d *Decomposer) requestSubtasks(ctx context.Context, description string, strategy models.DecompositionStrategy) ([]models.SubtaskSpec, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, decompositionTimeout)
	defer cancel()

	resp, err := d.llm.Chat(ctx, decompositionPrompt(description, strategy))
	if err != nil {
		return nil, fmt.Errorf("llm decomposition call failed: %w", err)
	}

	var specs []models.SubtaskSpec
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Content)), &specs); err != nil {
		return nil, fmt.Errorf("llm returned unparseable decomposition: %w", err)
	}
	for i := range specs {
		if specs[i].EstimatedComplexity == "" {
			specs[i].EstimatedComplexity = models.ComplexityMedium
		}
	}
	if err := validateSpecs(specs); err != nil {
		return nil, fmt.Errorf("invalid decomposition: %w", err)
	}
	return specs, nil
}

func decompositionPrompt(description string, strategy models.DecompositionStrategy) string {
	var b strings.Builder
	b.WriteString("You are a task decomposition engine.\n\n")
	b.WriteString("Task: ")
	b.WriteString(description)
	b.WriteString("\n\nStrategy: ")
	b.WriteString(strategyInstructions[strategy])
	b.WriteString("\n\nRespond with ONLY a JSON array of subtasks. Each element:\n")
	b.WriteString(`{"id": "subtask_1", "description": "...", "required_capabilities": ["..."], ` +
		`"estimated_complexity": "low|medium|high", "dependencies": ["subtask_ids"]}` + "\n")
	b.WriteString("Dependency ids must reference other elements of the array, and the graph must be acyclic.")
	return b.String()
}

// fallbackSpecs is the deterministic two-node decomposition used whenever
// the LLM path fails.
func fallbackSpecs(description string) []models.SubtaskSpec {
	return []models.SubtaskSpec{
		{
			ID:                   "subtask_1",
			Description:          "Analyze the task: " + description,
			RequiredCapabilities: []string{"general"},
			EstimatedComplexity:  models.ComplexityMedium,
		},
		{
			ID:                   "subtask_2",
			Description:          "Execute the task: " + description,
			RequiredCapabilities: []string{"general"},
			EstimatedComplexity:  models.ComplexityMedium,
			Dependencies:         []string{"subtask_1"},
		},
	}
}

// stripCodeFence unwraps a markdown-fenced block if the model added one.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
