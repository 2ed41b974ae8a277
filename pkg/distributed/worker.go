package distributed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/taskworker"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
	"github.com/maestro-run/maestro/pkg/services"
)

// WorkerEventsChannel carries live worker lifecycle envelopes; the
// worker_events table is the durable record.
const WorkerEventsChannel = "events:workers"

// NewWorkerID builds a worker identifier of the form
// "hostname_pid_randomsuffix".
func NewWorkerID() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", hostname, os.Getpid(), suffix)
}

// RegisterWorker upserts a worker record and marks it online. Re-registering
// an existing worker refreshes its metadata and heartbeat instead of failing.
func (s *Service) RegisterWorker(ctx context.Context, input models.RegisterWorkerInput) (*ent.TaskWorker, error) {
	if strings.TrimSpace(input.WorkerID) == "" {
		return nil, fmt.Errorf("worker_id is required")
	}
	kind := input.Kind
	if kind == "" {
		kind = "general"
	}
	maxTasks := input.MaxTasks
	if maxTasks <= 0 {
		maxTasks = 5
	}
	queues := input.Queues
	if len(queues) == 0 {
		queues = []string{broker.QueueDefault}
	}

	now := time.Now()
	existing, err := s.client.TaskWorker.Get(ctx, input.WorkerID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up worker %s: %w", input.WorkerID, err)
	}

	var w *ent.TaskWorker
	if existing != nil {
		w, err = existing.Update().
			SetKind(kind).
			SetHostname(input.Hostname).
			SetPid(input.PID).
			SetStatus(taskworker.StatusOnline).
			SetMaxTasks(maxTasks).
			SetActiveTasks(0).
			SetQueues(queues).
			SetCapabilities(input.Capabilities).
			SetMetadata(input.Metadata).
			SetLastHeartbeat(now).
			Save(ctx)
	} else {
		w, err = s.client.TaskWorker.Create().
			SetID(input.WorkerID).
			SetKind(kind).
			SetHostname(input.Hostname).
			SetPid(input.PID).
			SetStatus(taskworker.StatusOnline).
			SetMaxTasks(maxTasks).
			SetQueues(queues).
			SetCapabilities(input.Capabilities).
			SetMetadata(input.Metadata).
			SetLastHeartbeat(now).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register worker %s: %w", input.WorkerID, err)
	}

	s.recordWorkerEvent(ctx, w.ID, "registered", map[string]any{
		"hostname": input.Hostname,
		"pid":      input.PID,
		"queues":   queues,
	})
	slog.Info("Worker registered", "worker_id", w.ID, "hostname", input.Hostname, "queues", queues)
	return w, nil
}

// Heartbeat refreshes a worker's liveness timestamp and active-task count.
// A stale worker that heartbeats again is brought back online.
func (s *Service) Heartbeat(ctx context.Context, workerID string, activeTasks int) error {
	if activeTasks < 0 {
		activeTasks = 0
	}
	n, err := s.client.TaskWorker.Update().
		Where(taskworker.IDEQ(workerID)).
		SetLastHeartbeat(time.Now()).
		SetActiveTasks(activeTasks).
		SetStatus(taskworker.StatusOnline).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat worker %s: %w", workerID, err)
	}
	if n == 0 {
		return fmt.Errorf("worker %s: %w", workerID, services.ErrNotFound)
	}
	return nil
}

// Unregister marks a worker offline and records the lifecycle event. The
// row is kept for history and cleaned up by retention.
func (s *Service) Unregister(ctx context.Context, workerID string) error {
	n, err := s.client.TaskWorker.Update().
		Where(taskworker.IDEQ(workerID)).
		SetStatus(taskworker.StatusOffline).
		SetActiveTasks(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to unregister worker %s: %w", workerID, err)
	}
	if n == 0 {
		return fmt.Errorf("worker %s: %w", workerID, services.ErrNotFound)
	}
	s.recordWorkerEvent(ctx, workerID, "unregistered", nil)
	slog.Info("Worker unregistered", "worker_id", workerID)
	return nil
}

// ListWorkers returns every known worker ordered by registration time.
func (s *Service) ListWorkers(ctx context.Context) ([]*ent.TaskWorker, error) {
	workers, err := s.client.TaskWorker.Query().
		Order(ent.Asc(taskworker.FieldRegisteredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// sweepStaleWorkers marks workers whose heartbeat is older than the
// configured threshold as stale and records a marked_stale event for each.
func (s *Service) sweepStaleWorkers(ctx context.Context) error {
	cutoff := time.Now().Add(-s.config.StaleAfter)
	stale, err := s.client.TaskWorker.Query().
		Where(
			taskworker.StatusIn(taskworker.StatusOnline, taskworker.StatusBusy, taskworker.StatusIdle),
			taskworker.LastHeartbeatLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale workers: %w", err)
	}

	for _, w := range stale {
		if err := s.client.TaskWorker.UpdateOneID(w.ID).
			SetStatus(taskworker.StatusStale).
			Exec(ctx); err != nil {
			slog.Error("Failed to mark worker stale", "worker_id", w.ID, "error", err)
			continue
		}
		s.recordWorkerEvent(ctx, w.ID, "marked_stale", map[string]any{
			"last_heartbeat": w.LastHeartbeat.Format(time.RFC3339),
		})
		slog.Warn("Worker marked stale", "worker_id", w.ID, "last_heartbeat", w.LastHeartbeat)
	}
	return nil
}

// recordWorkerEvent persists a lifecycle event. Failures are logged, not
// propagated: the lifecycle transition itself already succeeded.
func (s *Service) recordWorkerEvent(ctx context.Context, workerID, eventType string, details map[string]any) {
	create := s.client.WorkerEvent.Create().
		SetID(uuid.NewString()).
		SetWorkerID(workerID).
		SetEventType(eventType)
	if details != nil {
		create.SetDetails(details)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("Failed to record worker event", "worker_id", workerID, "event_type", eventType, "error", err)
	}

	// Live notification for dashboards; the row above is the durable record.
	if s.broker != nil {
		err := s.broker.Publish(ctx, WorkerEventsChannel, &broker.Envelope{
			Type:     eventType,
			SenderID: s.config.NodeID,
			Content:  workerID,
			Metadata: details,
		})
		if err != nil {
			slog.Debug("Worker event publish skipped", "worker_id", workerID, "error", err)
		}
	}
}
