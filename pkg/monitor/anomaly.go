package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agentperformance"
)

const (
	// highLatencyThresholdMS flags a single slow execution.
	highLatencyThresholdMS = 10_000
	// failureRateThreshold flags an agent whose recent executions mostly fail.
	failureRateThreshold = 0.5
	// failureRateMinSamples is the minimum recent outcomes before the
	// failure-rate estimator speaks up.
	failureRateMinSamples = 6
	// outcomeWindowSize caps how many recent outcomes are kept per agent.
	outcomeWindowSize = 10
	// outcomeWindowAge drops outcomes older than this from the estimator.
	outcomeWindowAge = 24 * time.Hour
)

// executionOutcome is one entry in the per-agent recent-execution window.
type executionOutcome struct {
	success    bool
	recordedAt time.Time
}

// RecordAgentExecution ingests one completed agent execution: it buffers
// latency/cost/error-rate samples, updates the daily rollup, and runs the
// anomaly checks. Persistence problems are logged, never returned; metric
// recording must not fail the execution path.
func (m *Monitor) RecordAgentExecution(ctx context.Context, agentID string, success bool, executionTimeMS float64, cost float64) {
	agentID = EnsureUUID(agentID)

	m.Record(agentID, MetricLatency, executionTimeMS, nil)
	if cost > 0 {
		m.Record(agentID, MetricCost, cost, nil)
	}
	errVal := 0.0
	if !success {
		errVal = 1.0
	}
	m.Record(agentID, MetricErrorRate, errVal, nil)

	if err := m.upsertDailyRollup(ctx, agentID, success, executionTimeMS, cost); err != nil {
		slog.Error("Failed to update daily performance rollup", "agent_id", agentID, "error", err)
	}

	m.checkHighLatency(ctx, agentID, executionTimeMS)
	m.checkFailureRate(ctx, agentID, success)
}

// upsertDailyRollup folds one execution into the agent's rollup row for the
// current UTC day. The running latency mean is recomputed from the stored
// average and the new count.
func (m *Monitor) upsertDailyRollup(ctx context.Context, agentID string, success bool, executionTimeMS, cost float64) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)

	row, err := m.client.AgentPerformance.Query().
		Where(
			agentperformance.AgentIDEQ(agentID),
			agentperformance.DayEQ(day),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load rollup row: %w", err)
		}
		succ, fail := int64(0), int64(0)
		if success {
			succ = 1
		} else {
			fail = 1
		}
		return m.client.AgentPerformance.Create().
			SetID(uuid.New().String()).
			SetAgentID(agentID).
			SetDay(day).
			SetTotalExecutions(1).
			SetSuccessfulExecutions(succ).
			SetFailedExecutions(fail).
			SetAvgLatencyMs(executionTimeMS).
			SetTotalCost(cost).
			OnConflictColumns(agentperformance.FieldAgentID, agentperformance.FieldDay).
			UpdateNewValues().
			Exec(ctx)
	}

	total := row.TotalExecutions + 1
	newAvg := (row.AvgLatencyMs*float64(row.TotalExecutions) + executionTimeMS) / float64(total)

	update := row.Update().
		SetTotalExecutions(total).
		SetAvgLatencyMs(newAvg).
		SetTotalCost(row.TotalCost + cost)
	if success {
		update.SetSuccessfulExecutions(row.SuccessfulExecutions + 1)
	} else {
		update.SetFailedExecutions(row.FailedExecutions + 1)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update rollup row: %w", err)
	}
	return nil
}

// checkHighLatency raises a warning when a single execution crosses the
// latency threshold.
func (m *Monitor) checkHighLatency(ctx context.Context, agentID string, executionTimeMS float64) {
	if executionTimeMS <= highLatencyThresholdMS {
		return
	}
	m.CreateAlert(ctx,
		"Agent execution exceeded latency threshold",
		fmt.Sprintf("Agent %s took %.0fms to complete an execution (threshold %dms)",
			agentID, executionTimeMS, highLatencyThresholdMS),
		SeverityWarning,
		"performance_monitor",
		agentID,
		map[string]any{
			"kind":              "high_latency",
			"execution_time_ms": executionTimeMS,
			"threshold_ms":      highLatencyThresholdMS,
		})
}

// checkFailureRate maintains the per-agent outcome window and raises an
// error alert when the recent failure rate crosses the threshold. Only the
// last outcomeWindowSize executions within outcomeWindowAge count, and the
// estimator stays silent until failureRateMinSamples have accumulated.
func (m *Monitor) checkFailureRate(ctx context.Context, agentID string, success bool) {
	now := time.Now().UTC()

	m.outcomesMu.Lock()
	window := append(m.outcomes[agentID], executionOutcome{success: success, recordedAt: now})
	cutoff := now.Add(-outcomeWindowAge)
	trimmed := window[:0]
	for _, o := range window {
		if o.recordedAt.After(cutoff) {
			trimmed = append(trimmed, o)
		}
	}
	if len(trimmed) > outcomeWindowSize {
		trimmed = trimmed[len(trimmed)-outcomeWindowSize:]
	}
	m.outcomes[agentID] = trimmed

	failures := 0
	for _, o := range trimmed {
		if !o.success {
			failures++
		}
	}
	total := len(trimmed)
	m.outcomesMu.Unlock()

	if total < failureRateMinSamples {
		return
	}
	rate := float64(failures) / float64(total)
	if rate <= failureRateThreshold {
		return
	}
	if m.hasActiveAlert(agentID, "high_failure_rate") {
		return
	}
	m.CreateAlert(ctx,
		"Agent failure rate exceeded threshold",
		fmt.Sprintf("Agent %s failed %d of its last %d executions (%.0f%%)",
			agentID, failures, total, rate*100),
		SeverityError,
		"performance_monitor",
		agentID,
		map[string]any{
			"kind":         "high_failure_rate",
			"failure_rate": rate,
			"window":       total,
		})
}

// hasActiveAlert reports whether an unresolved cached alert of the given
// kind already exists for the source. Keeps repeated anomaly evaluations
// from stacking duplicate alerts.
func (m *Monitor) hasActiveAlert(sourceID, kind string) bool {
	m.alertsMu.Lock()
	defer m.alertsMu.Unlock()
	for _, alert := range m.alerts {
		if alert.Resolved || alert.SourceID == nil || *alert.SourceID != sourceID {
			continue
		}
		if alert.Metadata != nil && alert.Metadata["kind"] == kind {
			return true
		}
	}
	return false
}
