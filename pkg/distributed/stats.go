package distributed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/scalingdecision"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
)

// Autoscaling thresholds. Decisions are proposals only: an external
// actuator is expected to apply them and flip the applied flag.
const (
	scaleUpDepthPerWorker = 5
	scaleUpUtilization    = 0.8
	scaleDownDepth        = 3
	scaleDownUtilization  = 0.3
	minWorkers            = 1
)

// sampleQueueStats records a snapshot of every known queue and evaluates
// the autoscaler against each snapshot.
func (s *Service) sampleQueueStats(ctx context.Context) error {
	snapshots, err := s.SnapshotQueues(ctx)
	if err != nil {
		return err
	}

	for _, snap := range snapshots {
		if err := s.client.TaskQueueStat.Create().
			SetID(uuid.NewString()).
			SetQueueName(snap.QueueName).
			SetWorkerCount(snap.WorkerCount).
			SetQueuedCount(snap.Depth).
			SetActiveCount(snap.ActiveCount).
			SetUtilization(snap.Utilization).
			Exec(ctx); err != nil {
			slog.Error("Failed to persist queue stat", "queue", snap.QueueName, "error", err)
			continue
		}
		if err := s.evaluateScaling(ctx, snap); err != nil {
			slog.Error("Autoscaler evaluation failed", "queue", snap.QueueName, "error", err)
		}
	}
	return nil
}

// SnapshotQueues measures depth, worker count, and activity for every
// known queue. Utilization is active tasks over worker count, clamped to
// at least one worker so an empty fleet reads as fully idle, not NaN.
func (s *Service) SnapshotQueues(ctx context.Context) ([]models.QueueSnapshot, error) {
	if s.broker == nil || !s.broker.Available(ctx) {
		return nil, fmt.Errorf("broker unavailable")
	}

	workers, err := s.client.TaskWorker.Query().
		Where(taskworker.StatusIn(taskworker.StatusOnline, taskworker.StatusBusy, taskworker.StatusIdle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}

	snapshots := make([]models.QueueSnapshot, 0, len(broker.KnownQueues))
	for _, queue := range broker.KnownQueues {
		depth, err := s.broker.QueueDepth(ctx, queue)
		if err != nil {
			return nil, fmt.Errorf("failed to read depth of queue %s: %w", queue, err)
		}

		workerCount, activeCount := 0, 0
		for _, w := range workers {
			if !workerServesQueue(w, queue) {
				continue
			}
			workerCount++
			activeCount += w.ActiveTasks
		}

		denom := workerCount
		if denom < 1 {
			denom = 1
		}
		snapshots = append(snapshots, models.QueueSnapshot{
			QueueName:   queue,
			Depth:       int(depth),
			WorkerCount: workerCount,
			ActiveCount: activeCount,
			Utilization: float64(activeCount) / float64(denom),
		})
	}
	return snapshots, nil
}

// evaluateScaling proposes a scale_up or scale_down decision for one queue
// snapshot when its thresholds are crossed.
func (s *Service) evaluateScaling(ctx context.Context, snap models.QueueSnapshot) error {
	var (
		decision scalingdecision.Decision
		target   int
		reason   string
	)

	switch {
	case snap.Depth > snap.WorkerCount*scaleUpDepthPerWorker && snap.Utilization > scaleUpUtilization:
		decision = scalingdecision.DecisionScaleUp
		target = snap.WorkerCount + 1
		reason = fmt.Sprintf("High queue depth (%d) with utilization %.2f on %s",
			snap.Depth, snap.Utilization, snap.QueueName)
	case snap.Depth < scaleDownDepth && snap.WorkerCount > minWorkers && snap.Utilization < scaleDownUtilization:
		decision = scalingdecision.DecisionScaleDown
		target = snap.WorkerCount - 1
		if target < minWorkers {
			target = minWorkers
		}
		reason = fmt.Sprintf("Low queue depth (%d) with utilization %.2f on %s",
			snap.Depth, snap.Utilization, snap.QueueName)
	default:
		return nil
	}

	if target == snap.WorkerCount {
		return nil
	}

	if err := s.client.ScalingDecision.Create().
		SetID(uuid.NewString()).
		SetDecision(decision).
		SetQueueName(snap.QueueName).
		SetCurrentWorkers(snap.WorkerCount).
		SetTargetWorkers(target).
		SetReason(reason).
		SetMetrics(map[string]any{
			"depth":       snap.Depth,
			"active":      snap.ActiveCount,
			"utilization": snap.Utilization,
		}).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist scaling decision: %w", err)
	}
	slog.Info("Scaling decision proposed",
		"queue", snap.QueueName, "decision", decision, "current", snap.WorkerCount, "target", target)
	return nil
}

// RecentQueueStats returns queue samples newer than the given window,
// newest first.
func (s *Service) RecentQueueStats(ctx context.Context, window time.Duration) ([]*ent.TaskQueueStat, error) {
	stats, err := s.client.TaskQueueStat.Query().
		Where(taskqueuestat.SampledAtGTE(time.Now().Add(-window))).
		Order(ent.Desc(taskqueuestat.FieldSampledAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue stats: %w", err)
	}
	return stats, nil
}

// PendingScalingDecisions returns unapplied decisions, oldest first, for
// an external actuator to consume.
func (s *Service) PendingScalingDecisions(ctx context.Context) ([]*ent.ScalingDecision, error) {
	decisions, err := s.client.ScalingDecision.Query().
		Where(scalingdecision.AppliedEQ(false)).
		Order(ent.Asc(scalingdecision.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query scaling decisions: %w", err)
	}
	return decisions, nil
}

// workerServesQueue reports whether a worker has subscribed to the queue.
func workerServesQueue(w *ent.TaskWorker, queue string) bool {
	for _, q := range w.Queues {
		if q == queue {
			return true
		}
	}
	return false
}
