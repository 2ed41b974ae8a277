// Package agent implements the local execution path: it turns an assigned
// subtask into an LLM exchange shaped by the agent's declared prompt and
// capabilities.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
)

// Invoker executes subtasks in-process against the LLM primitive.
type Invoker struct {
	registry *registry.Registry
	llm      llm.Client
	monitor  *monitor.Monitor
}

// NewInvoker creates the local invoker.
func NewInvoker(reg *registry.Registry, llmClient llm.Client, mon *monitor.Monitor) *Invoker {
	return &Invoker{registry: reg, llm: llmClient, monitor: mon}
}

// Invoke runs one subtask on the assigned agent and returns the structured
// result. The "result" key carries the agent's answer; the remaining keys
// describe the exchange.
func (i *Invoker) Invoke(ctx context.Context, agentID string, req orchestrator.InvokeRequest) (map[string]any, error) {
	a, err := i.registry.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}

	resp, err := i.llm.Chat(ctx, buildPrompt(a.SystemPrompt, req))
	if err != nil {
		return nil, fmt.Errorf("agent %s execution failed: %w", a.Name, err)
	}

	if i.monitor != nil {
		i.monitor.Record(agentID, monitor.MetricTokenUsage,
			float64(resp.InputTokens+resp.OutputTokens),
			map[string]string{"task_id": req.TaskID, "subtask_id": req.SubtaskID})
		if resp.Cost > 0 {
			i.monitor.Record(agentID, monitor.MetricCost, resp.Cost,
				map[string]string{"task_id": req.TaskID})
		}
	}

	return map[string]any{
		"result":        resp.Content,
		"model":         resp.Model,
		"provider":      resp.Provider,
		"input_tokens":  resp.InputTokens,
		"output_tokens": resp.OutputTokens,
		"cost":          resp.Cost,
	}, nil
}

func buildPrompt(systemPrompt string, req orchestrator.InvokeRequest) string {
	var b strings.Builder
	if systemPrompt != "" {
		b.WriteString(systemPrompt)
		b.WriteString("\n\n")
	}
	b.WriteString("Subtask: ")
	b.WriteString(req.Description)
	if len(req.Parameters) > 0 {
		if params, err := json.Marshal(req.Parameters); err == nil {
			b.WriteString("\n\nTask parameters:\n")
			b.Write(params)
		}
	}
	b.WriteString("\n\nComplete the subtask and reply with the outcome.")
	return b.String()
}
