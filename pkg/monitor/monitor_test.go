package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent/agent"
	"github.com/maestro-run/maestro/ent/agentperformance"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/pkg/services"
	testdb "github.com/maestro-run/maestro/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()
	client := testdb.NewTestClient(t)
	return New(client.Client, DefaultConfig())
}

func TestEnsureUUID(t *testing.T) {
	t.Run("valid UUID passes through", func(t *testing.T) {
		id := uuid.New().String()
		assert.Equal(t, id, EnsureUUID(id))
	})

	t.Run("system sentinel maps to the fixed system UUID", func(t *testing.T) {
		assert.Equal(t, SystemAgentID(), EnsureUUID("system"))
	})

	t.Run("free-form names map deterministically", func(t *testing.T) {
		first := EnsureUUID("data-analyst")
		second := EnsureUUID("data-analyst")
		assert.Equal(t, first, second)
		_, err := uuid.Parse(first)
		require.NoError(t, err)
		assert.NotEqual(t, first, EnsureUUID("report-writer"))
	})
}

func TestComputeStats(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, MetricStats{}, computeStats(nil))
	})

	t.Run("odd count", func(t *testing.T) {
		stats := computeStats([]float64{3, 1, 2})
		assert.Equal(t, 3, stats.Count)
		assert.InDelta(t, 2.0, stats.Mean, 1e-9)
		assert.InDelta(t, 2.0, stats.Median, 1e-9)
		assert.InDelta(t, 1.0, stats.Min, 1e-9)
		assert.InDelta(t, 3.0, stats.Max, 1e-9)
	})

	t.Run("even count uses midpoint median", func(t *testing.T) {
		stats := computeStats([]float64{10, 20, 30, 40})
		assert.InDelta(t, 25.0, stats.Median, 1e-9)
		assert.InDelta(t, 25.0, stats.Mean, 1e-9)
	})

	t.Run("std dev", func(t *testing.T) {
		stats := computeStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.InDelta(t, 2.0, stats.StdDev, 1e-9)
	})
}

func TestMonitor_RecordAndFlush(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()
	agentID := uuid.New().String()

	m.Record(agentID, MetricLatency, 120, map[string]string{"task": "t-1"})
	m.Record(agentID, MetricCost, 0.004, nil)
	m.Record("named-agent", MetricTokenUsage, 512, nil)
	assert.Equal(t, 3, m.BufferedCount())

	m.Flush(ctx)
	assert.Equal(t, 0, m.BufferedCount())

	rows, err := m.client.AgentPerformanceMetric.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Free-form agent names never reach storage raw.
	named, err := m.client.AgentPerformanceMetric.Query().
		Where(agentperformancemetric.MetricTypeEQ(MetricTokenUsage)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, EnsureUUID("named-agent"), named.AgentID)
	_, err = uuid.Parse(named.AgentID)
	assert.NoError(t, err)
}

func TestMonitor_BufferFullTriggersFlush(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := DefaultConfig()
	cfg.BufferSize = 5
	m := New(client.Client, cfg)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		m.Record("system", MetricQueueSize, float64(i), nil)
	}

	// The async flush kicked off by the sixth Record plus a manual flush
	// must drain everything.
	require.Eventually(t, func() bool {
		m.Flush(ctx)
		count, err := m.client.AgentPerformanceMetric.Query().Count(ctx)
		return err == nil && count == 6
	}, 2*time.Second, 20*time.Millisecond)
}

func TestMonitor_Alerts(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()

	alert := m.CreateAlert(ctx, "Queue backlog", "default queue depth is 120",
		SeverityWarning, "task_distributor", "", map[string]any{"queue": "default"})
	require.NotNil(t, alert)
	assert.Len(t, alert.ID, 12)
	assert.False(t, alert.Resolved)
	assert.Equal(t, 1, m.CachedAlertCount())

	t.Run("acknowledge is idempotent", func(t *testing.T) {
		acked, err := m.AcknowledgeAlert(ctx, alert.ID)
		require.NoError(t, err)
		assert.True(t, acked.Acknowledged)
		require.NotNil(t, acked.AcknowledgedAt)
		firstAt := *acked.AcknowledgedAt

		again, err := m.AcknowledgeAlert(ctx, alert.ID)
		require.NoError(t, err)
		assert.Equal(t, firstAt, *again.AcknowledgedAt)
	})

	t.Run("resolve is idempotent", func(t *testing.T) {
		resolved, err := m.ResolveAlert(ctx, alert.ID)
		require.NoError(t, err)
		assert.True(t, resolved.Resolved)

		again, err := m.ResolveAlert(ctx, alert.ID)
		require.NoError(t, err)
		assert.True(t, again.Resolved)
	})

	t.Run("unknown alert id", func(t *testing.T) {
		_, err := m.AcknowledgeAlert(ctx, "missing000000")
		assert.ErrorIs(t, err, services.ErrNotFound)
		_, err = m.ResolveAlert(ctx, "missing000000")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("list filters by severity and resolved", func(t *testing.T) {
		m.CreateAlert(ctx, "Agent down", "worker stale", SeverityError, "task_distributor", "", nil)

		all, err := m.ListAlerts(ctx, AlertFilters{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		errors, err := m.ListAlerts(ctx, AlertFilters{Severity: "error"})
		require.NoError(t, err)
		require.Len(t, errors, 1)
		assert.Equal(t, "Agent down", errors[0].Title)

		unresolved := false
		open, err := m.ListAlerts(ctx, AlertFilters{Resolved: &unresolved})
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, "Agent down", open[0].Title)
	})
}

func TestMonitor_SweepResolvedAlerts(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := DefaultConfig()
	cfg.ResolvedRetention = time.Millisecond
	m := New(client.Client, cfg)
	ctx := context.Background()

	kept := m.CreateAlert(ctx, "Still open", "ongoing", SeverityInfo, "performance_monitor", "", nil)
	require.NotNil(t, kept)
	gone := m.CreateAlert(ctx, "Old news", "resolved long ago", SeverityInfo, "performance_monitor", "", nil)
	require.NotNil(t, gone)

	_, err := m.ResolveAlert(ctx, gone.ID)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	m.sweepResolvedAlerts()

	assert.Equal(t, 1, m.CachedAlertCount())

	// Storage keeps the row; only the cache is pruned.
	count, err := m.client.SystemAlert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMonitor_RecordAgentExecution(t *testing.T) {
	t.Run("repeated failures raise a failure-rate alert once", func(t *testing.T) {
		m := newTestMonitor(t)
		ctx := context.Background()
		agentID := uuid.New().String()

		for i := 0; i < 5; i++ {
			m.RecordAgentExecution(ctx, agentID, false, 100, 0)
			assert.Equal(t, 0, m.CachedAlertCount(), "no alert before enough samples")
		}

		m.RecordAgentExecution(ctx, agentID, false, 100, 0)
		require.Equal(t, 1, m.CachedAlertCount())

		alerts, err := m.ListAlerts(ctx, AlertFilters{Severity: "error"})
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "high_failure_rate", alerts[0].Metadata["kind"])
		require.NotNil(t, alerts[0].SourceID)
		assert.Equal(t, agentID, *alerts[0].SourceID)

		// Further failures must not stack duplicates.
		m.RecordAgentExecution(ctx, agentID, false, 100, 0)
		assert.Equal(t, 1, m.CachedAlertCount())
	})

	t.Run("half failures stay under the threshold", func(t *testing.T) {
		m := newTestMonitor(t)
		ctx := context.Background()
		agentID := uuid.New().String()

		for i := 0; i < 4; i++ {
			m.RecordAgentExecution(ctx, agentID, i%2 == 0, 100, 0)
		}
		m.RecordAgentExecution(ctx, agentID, true, 100, 0)
		m.RecordAgentExecution(ctx, agentID, false, 100, 0)

		assert.Equal(t, 0, m.CachedAlertCount())
	})

	t.Run("slow execution raises a latency warning", func(t *testing.T) {
		m := newTestMonitor(t)
		ctx := context.Background()

		m.RecordAgentExecution(ctx, uuid.New().String(), true, 15_000, 0.01)

		alerts, err := m.ListAlerts(ctx, AlertFilters{Severity: "warning"})
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "high_latency", alerts[0].Metadata["kind"])
	})

	t.Run("daily rollup accumulates", func(t *testing.T) {
		m := newTestMonitor(t)
		ctx := context.Background()
		agentID := uuid.New().String()

		m.RecordAgentExecution(ctx, agentID, true, 100, 0.5)
		m.RecordAgentExecution(ctx, agentID, false, 300, 0.25)

		row, err := m.client.AgentPerformance.Query().
			Where(agentperformance.AgentIDEQ(agentID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), row.TotalExecutions)
		assert.Equal(t, int64(1), row.SuccessfulExecutions)
		assert.Equal(t, int64(1), row.FailedExecutions)
		assert.InDelta(t, 200.0, row.AvgLatencyMs, 1e-9)
		assert.InDelta(t, 0.75, row.TotalCost, 1e-9)
	})
}

func TestMonitor_GetAgentPerformance(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()
	agentID := uuid.New().String()

	for _, v := range []float64{100, 200, 300} {
		m.Record(agentID, MetricLatency, v, nil)
	}
	m.Record(agentID, MetricCost, 0.02, nil)
	m.Record(uuid.New().String(), MetricLatency, 9999, nil)

	report, err := m.GetAgentPerformance(ctx, agentID, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, agentID, report.AgentID)

	latency, ok := report.Metrics[MetricLatency]
	require.True(t, ok)
	assert.Equal(t, 3, latency.Count)
	assert.InDelta(t, 200.0, latency.Mean, 1e-9)
	assert.InDelta(t, 200.0, latency.Median, 1e-9)
	assert.InDelta(t, 100.0, latency.Min, 1e-9)
	assert.InDelta(t, 300.0, latency.Max, 1e-9)

	cost, ok := report.Metrics[MetricCost]
	require.True(t, ok)
	assert.Equal(t, 1, cost.Count)

	// Buffered samples are flushed before reporting.
	assert.Equal(t, 0, m.BufferedCount())
}

func TestMonitor_GetSystemPerformance(t *testing.T) {
	m := newTestMonitor(t)
	ctx := context.Background()

	_, err := m.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName("coordinator").
		SetKind(agent.KindOrchestrator).
		SetStatus(agent.StatusIdle).
		Save(ctx)
	require.NoError(t, err)
	_, err = m.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName("crawler").
		SetKind(agent.KindWorker).
		SetStatus(agent.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	m.Record("system", MetricLatency, 100, nil)
	m.Record("system", MetricLatency, 300, nil)
	m.Record("system", MetricCost, 0.5, nil)
	m.Record("system", MetricCost, 0.25, nil)
	m.CreateAlert(ctx, "open", "open alert", SeverityInfo, "performance_monitor", "", nil)

	report, err := m.GetSystemPerformance(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, report.MetricAverages[MetricLatency], 1e-9)
	assert.InDelta(t, 0.375, report.MetricAverages[MetricCost], 1e-9)
	assert.InDelta(t, 0.75, report.TotalCost, 1e-9)
	assert.Equal(t, 1, report.AgentStatusCounts["idle"])
	assert.Equal(t, 1, report.AgentStatusCounts["processing"])
	assert.Equal(t, 1, report.ActiveAlerts)
}

func TestMonitor_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := DefaultConfig()
	cfg.FlushInterval = 20 * time.Millisecond
	cfg.SweepInterval = 20 * time.Millisecond
	m := New(client.Client, cfg)

	m.Start(context.Background())
	m.Record("system", MetricMemoryUsage, 42, nil)

	require.Eventually(t, func() bool {
		count, err := m.client.AgentPerformanceMetric.Query().Count(context.Background())
		return err == nil && count == 1
	}, 2*time.Second, 20*time.Millisecond)

	m.Stop()
	// Stop is safe to call twice.
	m.Stop()
}
