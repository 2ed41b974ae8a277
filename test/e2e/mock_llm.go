package e2e

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/models"
)

// decompositionMarker is the first line of every decomposition prompt; it
// lets the scripted client tell planning calls apart from subtask execution.
const decompositionMarker = "You are a task decomposition engine."

// ScriptedLLMClient implements llm.Client with pre-scripted responses.
// Decomposition calls pop from a FIFO of subtask plans; execution calls are
// answered by ExecuteFn (default: echo "done: <first prompt line>").
type ScriptedLLMClient struct {
	mu             sync.Mutex
	decompositions [][]models.SubtaskSpec

	// ExecuteFn answers subtask execution prompts. Optional.
	ExecuteFn func(prompt string) (string, error)

	calls int
}

// NewScriptedLLMClient creates an empty scripted client. Decomposition calls
// with nothing scripted return invalid JSON, forcing the orchestrator's
// analyze/execute fallback.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// ScriptDecomposition appends one decomposition plan to the FIFO.
func (c *ScriptedLLMClient) ScriptDecomposition(specs []models.SubtaskSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decompositions = append(c.decompositions, specs)
}

// Calls reports the total number of Chat invocations.
func (c *ScriptedLLMClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Chat implements llm.Client.
func (c *ScriptedLLMClient) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	c.mu.Lock()
	c.calls++
	var specs []models.SubtaskSpec
	isDecomposition := strings.HasPrefix(prompt, decompositionMarker)
	if isDecomposition && len(c.decompositions) > 0 {
		specs = c.decompositions[0]
		c.decompositions = c.decompositions[1:]
	}
	executeFn := c.ExecuteFn
	c.mu.Unlock()

	if isDecomposition {
		if specs == nil {
			return &llm.Response{Content: "no plan scripted", Model: "scripted"}, nil
		}
		raw, err := json.Marshal(specs)
		if err != nil {
			return nil, err
		}
		return &llm.Response{
			Content:      string(raw),
			Model:        "scripted",
			Provider:     "test",
			InputTokens:  10,
			OutputTokens: 20,
		}, nil
	}

	content := "done: " + subtaskDescription(prompt)
	if executeFn != nil {
		var err error
		content, err = executeFn(prompt)
		if err != nil {
			return nil, err
		}
	}
	return &llm.Response{
		Content:      content,
		Model:        "scripted",
		Provider:     "test",
		InputTokens:  5,
		OutputTokens: 5,
	}, nil
}

// subtaskDescription pulls the description out of an execution prompt.
func subtaskDescription(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if rest, ok := strings.CutPrefix(line, "Subtask: "); ok {
			return rest
		}
	}
	if i := strings.IndexByte(prompt, '\n'); i >= 0 {
		return prompt[:i]
	}
	return prompt
}
