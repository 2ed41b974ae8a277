package broker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBroker(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewClientFromRedis(rdb), mr
}

func TestEnqueueDequeue_PriorityOrder(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestBroker(t)

	// Low priority enqueued first, high priority second.
	require.NoError(t, client.Enqueue(ctx, QueueDefault, &TaskMessage{
		TaskID: "low", Priority: 1,
	}))
	require.NoError(t, client.Enqueue(ctx, QueueDefault, &TaskMessage{
		TaskID: "high", Priority: 9,
	}))
	require.NoError(t, client.Enqueue(ctx, QueueDefault, &TaskMessage{
		TaskID: "mid", Priority: 5,
	}))

	depth, err := client.QueueDepth(ctx, QueueDefault)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	var got []string
	for i := 0; i < 3; i++ {
		queue, msg, err := client.Dequeue(ctx, 100*time.Millisecond, QueueDefault)
		require.NoError(t, err)
		assert.Equal(t, QueueDefault, queue)
		got = append(got, msg.TaskID)
	}
	assert.Equal(t, []string{"high", "mid", "low"}, got)
}

func TestEnqueueDequeue_FIFOWithinPriority(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestBroker(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, client.Enqueue(ctx, QueueAgentTasks, &TaskMessage{
			TaskID: id, Priority: 5,
		}))
	}

	var got []string
	for i := 0; i < 3; i++ {
		_, msg, err := client.Dequeue(ctx, 100*time.Millisecond, QueueAgentTasks)
		require.NoError(t, err)
		got = append(got, msg.TaskID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEnqueue_ClampsPriority(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestBroker(t)

	require.NoError(t, client.Enqueue(ctx, QueueDefault, &TaskMessage{TaskID: "over", Priority: 99}))
	require.NoError(t, client.Enqueue(ctx, QueueDefault, &TaskMessage{TaskID: "under", Priority: -4}))

	_, msg, err := client.Dequeue(ctx, 100*time.Millisecond, QueueDefault)
	require.NoError(t, err)
	assert.Equal(t, "over", msg.TaskID)
	assert.Equal(t, 10, msg.Priority)

	_, msg, err = client.Dequeue(ctx, 100*time.Millisecond, QueueDefault)
	require.NoError(t, err)
	assert.Equal(t, 0, msg.Priority)
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestBroker(t)

	v, err := client.Counter(ctx, "dispatched")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	for i := 1; i <= 3; i++ {
		v, err = client.Incr(ctx, "dispatched")
		require.NoError(t, err)
		assert.Equal(t, int64(i), v)
	}
}

func TestAcquireLock_Exclusive(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestBroker(t)

	lock, ok, err := client.AcquireLock(ctx, "rebalance", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = client.AcquireLock(ctx, "rebalance", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	require.NoError(t, lock.Release(ctx))

	_, ok, err = client.AcquireLock(ctx, "rebalance", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "lock must be acquirable after release")

	// TTL expiry also frees the lock.
	mr.FastForward(2 * time.Minute)
	_, ok, err = client.AcquireLock(ctx, "rebalance", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "lock must be acquirable after TTL expiry")
}

func TestPublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, _ := setupTestBroker(t)

	sub, err := client.Subscribe(ctx, SwarmChannel("s1"))
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, client.Publish(ctx, SwarmChannel("s1"), &Envelope{
		Type:     "status",
		SenderID: "node-1",
		Content:  map[string]any{"state": "ready"},
	}))

	select {
	case env := <-sub.Envelopes():
		require.NotNil(t, env)
		assert.Equal(t, "status", env.Type)
		assert.Equal(t, "node-1", env.SenderID)
		assert.NotZero(t, env.TS)
	case <-ctx.Done():
		t.Fatal("timed out waiting for envelope")
	}
}

func TestDequeue_Empty(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestBroker(t)

	_, _, err := client.Dequeue(ctx, 50*time.Millisecond, QueueDefault)
	assert.ErrorIs(t, err, ErrQueueEmpty)
}
