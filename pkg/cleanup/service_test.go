package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/pkg/config"
	"github.com/maestro-run/maestro/test/database"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		OperationalTTL:   24 * time.Hour,
		ResolvedAlertTTL: 7 * 24 * time.Hour,
		MetricTTL:        30 * 24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

func TestRunAll(t *testing.T) {
	client := database.NewTestClient(t).Client
	svc := NewService(client, retentionConfig())
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	agentID := uuid.NewString()

	// One stale and one fresh row per table.
	require.NoError(t, client.WorkerEvent.Create().
		SetID(uuid.NewString()).SetWorkerID("w-1").SetEventType("registered").
		SetCreatedAt(old).Exec(ctx))
	require.NoError(t, client.WorkerEvent.Create().
		SetID(uuid.NewString()).SetWorkerID("w-1").SetEventType("registered").Exec(ctx))

	require.NoError(t, client.TaskQueueStat.Create().
		SetID(uuid.NewString()).SetQueueName("default").
		SetWorkerCount(1).SetQueuedCount(0).SetActiveCount(0).SetUtilization(0).
		SetSampledAt(old).Exec(ctx))
	require.NoError(t, client.TaskQueueStat.Create().
		SetID(uuid.NewString()).SetQueueName("default").
		SetWorkerCount(1).SetQueuedCount(0).SetActiveCount(0).SetUtilization(0).Exec(ctx))

	require.NoError(t, client.SystemAlert.Create().
		SetID("alert-old").SetTitle("t").SetMessage("m").
		SetSeverity(systemalert.SeverityWarning).SetSource("monitor").SetSourceID(agentID).
		SetResolved(true).SetResolvedAt(time.Now().Add(-8*24*time.Hour)).Exec(ctx))
	require.NoError(t, client.SystemAlert.Create().
		SetID("alert-recent").SetTitle("t").SetMessage("m").
		SetSeverity(systemalert.SeverityWarning).SetSource("monitor").SetSourceID(agentID).
		SetResolved(true).SetResolvedAt(time.Now().Add(-time.Hour)).Exec(ctx))
	require.NoError(t, client.SystemAlert.Create().
		SetID("alert-open").SetTitle("t").SetMessage("m").
		SetSeverity(systemalert.SeverityError).SetSource("monitor").SetSourceID(agentID).Exec(ctx))

	require.NoError(t, client.AgentPerformanceMetric.Create().
		SetID(uuid.NewString()).SetAgentID(agentID).
		SetMetricType(agentperformancemetric.MetricTypeLatency).SetValue(1).
		SetRecordedAt(time.Now().Add(-31*24*time.Hour)).Exec(ctx))
	require.NoError(t, client.AgentPerformanceMetric.Create().
		SetID(uuid.NewString()).SetAgentID(agentID).
		SetMetricType(agentperformancemetric.MetricTypeLatency).SetValue(1).Exec(ctx))

	svc.RunAll(ctx)

	assertCount := func(n int, count func() (int, error)) {
		t.Helper()
		got, err := count()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	assertCount(1, func() (int, error) { return client.WorkerEvent.Query().Count(ctx) })
	assertCount(1, func() (int, error) { return client.TaskQueueStat.Query().Count(ctx) })
	assertCount(2, func() (int, error) { return client.SystemAlert.Query().Count(ctx) })
	assertCount(1, func() (int, error) { return client.AgentPerformanceMetric.Query().Count(ctx) })

	remaining, err := client.SystemAlert.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alert-recent", "alert-open"}, remaining)
}

func TestStartStop(t *testing.T) {
	client := database.NewTestClient(t).Client
	cfg := retentionConfig()
	cfg.CleanupInterval = 50 * time.Millisecond
	svc := NewService(client, cfg)

	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	// Stop twice is safe.
	svc.Stop()
}
