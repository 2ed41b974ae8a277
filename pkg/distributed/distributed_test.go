package distributed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/leaderelection"
	"github.com/maestro-run/maestro/ent/leaderhistory"
	"github.com/maestro-run/maestro/ent/scalingdecision"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/ent/workerevent"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/test/database"
)

func newTestService(t *testing.T) (*Service, *ent.Client, *broker.Client) {
	t.Helper()
	client := database.NewTestClient(t).Client
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := broker.NewClientFromRedis(rdb)
	svc := New(client, b, Config{NodeID: "node-test"})
	return svc, client, b
}

func registerWorker(t *testing.T, svc *Service, id string, queues []string, maxTasks int) *ent.TaskWorker {
	t.Helper()
	w, err := svc.RegisterWorker(context.Background(), models.RegisterWorkerInput{
		WorkerID: id,
		Hostname: "host-1",
		PID:      4242,
		MaxTasks: maxTasks,
		Queues:   queues,
	})
	require.NoError(t, err)
	return w
}

func TestNewWorkerID(t *testing.T) {
	a := NewWorkerID()
	b := NewWorkerID()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^.+_\d+_[0-9a-f]{8}$`, a)
}

func TestWorkerLifecycle(t *testing.T) {
	svc, client, b := newTestService(t)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, WorkerEventsChannel)
	require.NoError(t, err)
	defer sub.Close()

	t.Run("register creates an online worker and an event", func(t *testing.T) {
		w := registerWorker(t, svc, "w-1", []string{broker.QueueDefault}, 3)
		assert.Equal(t, taskworker.StatusOnline, w.Status)
		assert.Equal(t, 3, w.MaxTasks)

		events, err := client.WorkerEvent.Query().
			Where(workerevent.WorkerIDEQ("w-1"), workerevent.EventTypeEQ("registered")).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 1)

		select {
		case env := <-sub.Envelopes():
			assert.Equal(t, "registered", env.Type)
			assert.Equal(t, "w-1", env.Content)
			assert.Equal(t, "node-test", env.SenderID)
		case <-time.After(2 * time.Second):
			t.Fatal("no live worker event published")
		}
	})

	t.Run("re-register refreshes instead of failing", func(t *testing.T) {
		w, err := svc.RegisterWorker(ctx, models.RegisterWorkerInput{
			WorkerID: "w-1",
			Hostname: "host-2",
			PID:      5151,
			MaxTasks: 8,
		})
		require.NoError(t, err)
		assert.Equal(t, "host-2", w.Hostname)
		assert.Equal(t, 8, w.MaxTasks)
	})

	t.Run("heartbeat updates active tasks", func(t *testing.T) {
		require.NoError(t, svc.Heartbeat(ctx, "w-1", 2))
		w, err := client.TaskWorker.Get(ctx, "w-1")
		require.NoError(t, err)
		assert.Equal(t, 2, w.ActiveTasks)
		assert.Equal(t, taskworker.StatusOnline, w.Status)
	})

	t.Run("heartbeat for unknown worker fails", func(t *testing.T) {
		require.Error(t, svc.Heartbeat(ctx, "missing", 0))
	})

	t.Run("unregister marks offline and records event", func(t *testing.T) {
		require.NoError(t, svc.Unregister(ctx, "w-1"))
		w, err := client.TaskWorker.Get(ctx, "w-1")
		require.NoError(t, err)
		assert.Equal(t, taskworker.StatusOffline, w.Status)

		n, err := client.WorkerEvent.Query().
			Where(workerevent.WorkerIDEQ("w-1"), workerevent.EventTypeEQ("unregistered")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("list returns every known worker", func(t *testing.T) {
		registerWorker(t, svc, "w-2", nil, 0)
		workers, err := svc.ListWorkers(ctx)
		require.NoError(t, err)
		assert.Len(t, workers, 2)
	})
}

func TestSweepStaleWorkers(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	registerWorker(t, svc, "w-fresh", nil, 0)
	registerWorker(t, svc, "w-stale", nil, 0)
	require.NoError(t, client.TaskWorker.UpdateOneID("w-stale").
		SetLastHeartbeat(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	require.NoError(t, svc.sweepStaleWorkers(ctx))

	stale, err := client.TaskWorker.Get(ctx, "w-stale")
	require.NoError(t, err)
	assert.Equal(t, taskworker.StatusStale, stale.Status)

	fresh, err := client.TaskWorker.Get(ctx, "w-fresh")
	require.NoError(t, err)
	assert.Equal(t, taskworker.StatusOnline, fresh.Status)

	n, err := client.WorkerEvent.Query().
		Where(workerevent.WorkerIDEQ("w-stale"), workerevent.EventTypeEQ("marked_stale")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatch(t *testing.T) {
	svc, client, b := newTestService(t)
	ctx := context.Background()

	taskRow, err := client.Task.Create().
		SetID("11111111-1111-1111-1111-111111111111").
		SetDescription("analyze sales data").
		SetPriority(4).
		SetDecompositionStrategy("hierarchical").
		SetDelegationStrategy("capability_match").
		SetDistributionMode(task.DistributionModeDistributed).
		Save(ctx)
	require.NoError(t, err)

	t.Run("whole task lands on the default queue", func(t *testing.T) {
		require.NoError(t, svc.DispatchTask(ctx, taskRow))

		queue, msg, err := b.Dequeue(ctx, 100*time.Millisecond, broker.QueueDefault)
		require.NoError(t, err)
		assert.Equal(t, broker.QueueDefault, queue)
		assert.Equal(t, taskRow.ID, msg.TaskID)
		assert.Empty(t, msg.SubtaskID)
		assert.Equal(t, 8, msg.Priority)
	})

	t.Run("subtasks land on the agent queue with dependencies", func(t *testing.T) {
		decomp := &models.Decomposition{
			TaskID: taskRow.ID,
			Subtasks: []models.SubtaskSpec{
				{ID: "s1", Description: "extract", RequiredCapabilities: []string{"general"}},
				{ID: "s2", Description: "report", RequiredCapabilities: []string{"general"}, Dependencies: []string{"s1"}},
			},
		}
		require.NoError(t, svc.DispatchSubtasks(ctx, taskRow, decomp, &models.DelegationPlan{}))

		_, first, err := b.Dequeue(ctx, 100*time.Millisecond, broker.QueueAgentTasks)
		require.NoError(t, err)
		_, second, err := b.Dequeue(ctx, 100*time.Millisecond, broker.QueueAgentTasks)
		require.NoError(t, err)

		got := map[string][]string{first.SubtaskID: first.Dependencies, second.SubtaskID: second.Dependencies}
		assert.Empty(t, got["s1"])
		assert.Equal(t, []string{"s1"}, got["s2"])
		assert.Equal(t, taskRow.ID, first.ParentTaskID)
	})

	t.Run("broker unavailable surfaces as an error", func(t *testing.T) {
		offline := New(client, nil, Config{NodeID: "node-offline"})
		require.Error(t, offline.DispatchTask(ctx, taskRow))
	})
}

func TestQueueStatsAndScaling(t *testing.T) {
	svc, client, b := newTestService(t)
	ctx := context.Background()

	t.Run("snapshot computes utilization per queue", func(t *testing.T) {
		registerWorker(t, svc, "w-1", []string{broker.QueueDefault}, 5)
		require.NoError(t, svc.Heartbeat(ctx, "w-1", 3))

		require.NoError(t, b.Enqueue(ctx, broker.QueueDefault, &broker.TaskMessage{TaskID: "t1"}))
		require.NoError(t, b.Enqueue(ctx, broker.QueueDefault, &broker.TaskMessage{TaskID: "t2"}))

		snapshots, err := svc.SnapshotQueues(ctx)
		require.NoError(t, err)

		var def models.QueueSnapshot
		for _, s := range snapshots {
			if s.QueueName == broker.QueueDefault {
				def = s
			}
		}
		assert.Equal(t, 2, def.Depth)
		assert.Equal(t, 1, def.WorkerCount)
		assert.Equal(t, 3, def.ActiveCount)
		assert.InDelta(t, 3.0, def.Utilization, 1e-9)
	})

	t.Run("high depth and utilization proposes scale_up", func(t *testing.T) {
		// depth=60, worker_count=10, utilization=0.9
		snap := models.QueueSnapshot{
			QueueName:   broker.QueueDefault,
			Depth:       60,
			WorkerCount: 10,
			ActiveCount: 9,
			Utilization: 0.9,
		}
		require.NoError(t, svc.evaluateScaling(ctx, snap))

		decisions, err := client.ScalingDecision.Query().
			Where(scalingdecision.DecisionEQ(scalingdecision.DecisionScaleUp)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, decisions, 1)
		d := decisions[0]
		assert.Equal(t, 10, d.CurrentWorkers)
		assert.Equal(t, 11, d.TargetWorkers)
		assert.False(t, d.Applied)
		assert.Contains(t, d.Reason, "High queue depth")
	})

	t.Run("idle fleet proposes scale_down with a floor of one", func(t *testing.T) {
		snap := models.QueueSnapshot{
			QueueName:   broker.QueueAgentTasks,
			Depth:       0,
			WorkerCount: 2,
			ActiveCount: 0,
			Utilization: 0,
		}
		require.NoError(t, svc.evaluateScaling(ctx, snap))

		decisions, err := client.ScalingDecision.Query().
			Where(scalingdecision.QueueNameEQ(broker.QueueAgentTasks)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, decisions, 1)
		assert.Equal(t, scalingdecision.DecisionScaleDown, decisions[0].Decision)
		assert.Equal(t, 1, decisions[0].TargetWorkers)

		// A single worker never scales below the floor.
		snap.WorkerCount = 1
		require.NoError(t, svc.evaluateScaling(ctx, snap))
		n, err := client.ScalingDecision.Query().
			Where(scalingdecision.QueueNameEQ(broker.QueueAgentTasks)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("pending decisions are listed oldest first", func(t *testing.T) {
		decisions, err := svc.PendingScalingDecisions(ctx)
		require.NoError(t, err)
		require.Len(t, decisions, 2)
		assert.False(t, decisions[0].CreatedAt.After(decisions[1].CreatedAt))
	})

	t.Run("sampler persists a stat row per known queue", func(t *testing.T) {
		require.NoError(t, svc.sampleQueueStats(ctx))
		stats, err := svc.RecentQueueStats(ctx, time.Minute)
		require.NoError(t, err)
		assert.Len(t, stats, len(broker.KnownQueues))
	})
}

func TestLeaderElection(t *testing.T) {
	// Two replicas with independent connection pools against one schema,
	// the way two pods would contend for a lease.
	shared := database.NewSharedTestDB(t)
	client := shared.NewClient(t).Client
	otherClient := shared.NewClient(t).Client
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	b := broker.NewClientFromRedis(rdb)

	svc := New(client, b, Config{NodeID: "node-test"})
	other := New(otherClient, b, Config{NodeID: "node-other"})
	ctx := context.Background()

	t.Run("first claim creates the lease", func(t *testing.T) {
		won, err := svc.TryClaim(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.True(t, won)
		assert.True(t, svc.IsLeader(ctx, RoleBeatScheduler))

		row, err := svc.CurrentLeader(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.Equal(t, "node-test", row.NodeID)
		assert.Equal(t, int64(1), row.Term)

		histories, err := client.LeaderHistory.Query().
			Where(leaderhistory.RoleEQ(RoleBeatScheduler)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, histories, 1)
		assert.Equal(t, "initial", histories[0].Reason)
	})

	t.Run("held lease blocks other claimants", func(t *testing.T) {
		won, err := other.TryClaim(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.False(t, won)
		assert.False(t, other.IsLeader(ctx, RoleBeatScheduler))
	})

	t.Run("holder renewal bumps term without a history row", func(t *testing.T) {
		won, err := svc.TryClaim(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.True(t, won)

		row, err := svc.CurrentLeader(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.Equal(t, int64(2), row.Term)

		// Self-renewals happen every election tick; recording each one
		// would grow leader_history without bound.
		n, err := client.LeaderHistory.Query().
			Where(leaderhistory.RoleEQ(RoleBeatScheduler)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("expired lease is taken over with term bump and history", func(t *testing.T) {
		// Expire the holder's lease: node N1 at term 2, lease in the past.
		require.NoError(t, client.LeaderElection.Update().
			Where(leaderelection.IDEQ(RoleBeatScheduler)).
			SetLeaseExpiresAt(time.Now().Add(-time.Second)).
			Exec(ctx))

		won, err := other.TryClaim(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.True(t, won)
		assert.True(t, other.IsLeader(ctx, RoleBeatScheduler))
		assert.False(t, svc.IsLeader(ctx, RoleBeatScheduler))

		row, err := other.CurrentLeader(ctx, RoleBeatScheduler)
		require.NoError(t, err)
		assert.Equal(t, "node-other", row.NodeID)
		assert.Equal(t, int64(3), row.Term)
		assert.True(t, row.LeaseExpiresAt.After(time.Now()))

		histories, err := client.LeaderHistory.Query().
			Where(leaderhistory.RoleEQ(RoleBeatScheduler), leaderhistory.ReasonEQ("lease_expired")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, histories, 1)
		require.NotNil(t, histories[0].OldNodeID)
		assert.Equal(t, "node-test", *histories[0].OldNodeID)
		assert.Equal(t, "node-other", histories[0].NewNodeID)
		assert.Equal(t, int64(3), histories[0].Term)
	})

	t.Run("roles are independent leases", func(t *testing.T) {
		won, err := svc.TryClaim(ctx, RoleCleanupCoordinator)
		require.NoError(t, err)
		assert.True(t, won)
		assert.True(t, svc.IsLeader(ctx, RoleCleanupCoordinator))
		assert.False(t, svc.IsLeader(ctx, RoleBeatScheduler))
	})
}
