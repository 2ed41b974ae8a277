package monitor

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/systemalert"
)

// MetricStats summarizes one metric kind over a window.
type MetricStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// AgentPerformanceReport is the per-agent aggregate view.
type AgentPerformanceReport struct {
	AgentID     string                     `json:"agent_id"`
	Window      string                     `json:"window"`
	Metrics     map[MetricType]MetricStats `json:"metrics"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// SystemPerformanceReport is the system-wide aggregate view.
type SystemPerformanceReport struct {
	MetricAverages    map[MetricType]float64 `json:"metric_averages"`
	TotalCost         float64                `json:"total_cost"`
	AgentStatusCounts map[string]int         `json:"agent_status_counts"`
	ActiveAlerts      int                    `json:"active_alerts"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// GetAgentPerformance computes per-metric statistics for one agent over the
// window. Buffered samples are flushed first so the report reflects
// everything recorded to this point.
func (m *Monitor) GetAgentPerformance(ctx context.Context, agentID string, window time.Duration) (*AgentPerformanceReport, error) {
	agentID = EnsureUUID(agentID)
	m.Flush(ctx)

	since := time.Now().UTC().Add(-window)
	rows, err := m.client.AgentPerformanceMetric.Query().
		Where(
			agentperformancemetric.AgentIDEQ(agentID),
			agentperformancemetric.RecordedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics for agent %s: %w", agentID, err)
	}

	byKind := make(map[MetricType][]float64)
	for _, row := range rows {
		byKind[row.MetricType] = append(byKind[row.MetricType], row.Value)
	}

	report := &AgentPerformanceReport{
		AgentID:     agentID,
		Window:      window.String(),
		Metrics:     make(map[MetricType]MetricStats, len(byKind)),
		GeneratedAt: time.Now().UTC(),
	}
	for kind, values := range byKind {
		report.Metrics[kind] = computeStats(values)
	}
	return report, nil
}

// GetSystemPerformance computes averages across all agents plus agent
// status distribution and the active alert count.
func (m *Monitor) GetSystemPerformance(ctx context.Context) (*SystemPerformanceReport, error) {
	m.Flush(ctx)

	report := &SystemPerformanceReport{
		MetricAverages:    make(map[MetricType]float64),
		AgentStatusCounts: make(map[string]int),
		GeneratedAt:       time.Now().UTC(),
	}

	var metricRows []struct {
		MetricType MetricType `json:"metric_type"`
		Avg        float64    `json:"avg"`
		Sum        float64    `json:"sum"`
	}
	err := m.client.AgentPerformanceMetric.Query().
		GroupBy(agentperformancemetric.FieldMetricType).
		Aggregate(
			ent.As(ent.Mean(agentperformancemetric.FieldValue), "avg"),
			ent.As(ent.Sum(agentperformancemetric.FieldValue), "sum"),
		).
		Scan(ctx, &metricRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate system metrics: %w", err)
	}
	for _, row := range metricRows {
		report.MetricAverages[row.MetricType] = row.Avg
		if row.MetricType == MetricCost {
			report.TotalCost = row.Sum
		}
	}

	var statusRows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = m.client.Agent.Query().
		GroupBy(agent.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &statusRows)
	if err != nil {
		return nil, fmt.Errorf("failed to count agent statuses: %w", err)
	}
	for _, row := range statusRows {
		report.AgentStatusCounts[row.Status] = row.Count
	}

	active, err := m.client.SystemAlert.Query().
		Where(systemalert.ResolvedEQ(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active alerts: %w", err)
	}
	report.ActiveAlerts = active

	return report, nil
}

// computeStats derives summary statistics from raw samples. Standard
// deviation is the population form.
func computeStats(values []float64) MetricStats {
	if len(values) == 0 {
		return MetricStats{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(sorted))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return MetricStats{
		Count:  len(sorted),
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: math.Sqrt(variance),
	}
}
