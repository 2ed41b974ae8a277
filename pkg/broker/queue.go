package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrQueueEmpty is returned by Dequeue when no message arrived within the
// poll window.
var ErrQueueEmpty = errors.New("queue is empty")

// maxPriority bounds the enqueue-time priority attribute.
const maxPriority = 10

// TaskMessage is the JSON payload carried on a durable queue. For HYBRID
// dispatch the parent task ID and dependency list gate execution on the
// worker side.
type TaskMessage struct {
	TaskID               string    `json:"task_id"`
	ParentTaskID         string    `json:"parent_task_id,omitempty"`
	SubtaskID            string    `json:"subtask_id,omitempty"`
	Description          string    `json:"description"`
	RequiredCapabilities []string  `json:"required_capabilities,omitempty"`
	Dependencies         []string  `json:"dependencies,omitempty"`
	Priority             int       `json:"priority"`
	EnqueuedAt           time.Time `json:"enqueued_at"`
	RetryCount           int       `json:"retry_count,omitempty"`
}

// Enqueue pushes a message onto a durable queue. Priority is clamped to
// [0, 10]; higher priorities drain first, FIFO within a priority level.
//
// The queue is a sorted set scored by (maxPriority - priority) * 2^40 + seq,
// where seq is a global monotonic counter. ZPOPMIN therefore yields the
// highest-priority, oldest message.
func (c *Client) Enqueue(ctx context.Context, queue string, msg *TaskMessage) error {
	if msg.Priority < 0 {
		msg.Priority = 0
	}
	if msg.Priority > maxPriority {
		msg.Priority = maxPriority
	}
	if msg.EnqueuedAt.IsZero() {
		msg.EnqueuedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}

	seq, err := c.rdb.Incr(ctx, "queue:"+queue+":seq").Result()
	if err != nil {
		return fmt.Errorf("failed to allocate queue sequence: %w", err)
	}

	score := float64(maxPriority-msg.Priority)*float64(1<<40) + float64(seq)
	if err := c.rdb.ZAdd(ctx, queueKey(queue), redis.Z{
		Score:  score,
		Member: payload,
	}).Err(); err != nil {
		return fmt.Errorf("failed to enqueue on %s: %w", queue, err)
	}
	return nil
}

// Dequeue blocks up to wait for the next message on any of the given queues.
// Returns ErrQueueEmpty on timeout.
func (c *Client) Dequeue(ctx context.Context, wait time.Duration, queues ...string) (string, *TaskMessage, error) {
	keys := make([]string, len(queues))
	for i, q := range queues {
		keys[i] = queueKey(q)
	}

	z, err := c.rdb.BZPopMin(ctx, wait, keys...).Result()
	if err == redis.Nil {
		return "", nil, ErrQueueEmpty
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to dequeue: %w", err)
	}

	raw, ok := z.Member.(string)
	if !ok {
		return "", nil, fmt.Errorf("unexpected queue member type %T", z.Member)
	}

	var msg TaskMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal queue message: %w", err)
	}

	return queueName(z.Key), &msg, nil
}

// QueueDepth returns the number of messages waiting on a queue.
func (c *Client) QueueDepth(ctx context.Context, queue string) (int, error) {
	n, err := c.rdb.ZCard(ctx, queueKey(queue)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read depth of %s: %w", queue, err)
	}
	return int(n), nil
}

func queueKey(queue string) string {
	return "queue:" + queue
}

func queueName(key string) string {
	if len(key) > len("queue:") && key[:len("queue:")] == "queue:" {
		return key[len("queue:"):]
	}
	return key
}
