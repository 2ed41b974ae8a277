// Package distributed bridges the orchestrator to an out-of-process worker
// fleet: broker dispatch, worker lifecycle, queue accounting, autoscaling
// proposals, and leader election for singleton background jobs.
package distributed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/models"
)

// Config contains distributed task service tuning knobs.
type Config struct {
	// NodeID identifies this process in leader election.
	NodeID string
	// StatsInterval is the queue-stats sampling cadence.
	StatsInterval time.Duration
	// StaleSweepInterval is the stale-worker check cadence.
	StaleSweepInterval time.Duration
	// StaleAfter is the heartbeat age past which a worker counts as stale.
	StaleAfter time.Duration
	// ElectionInterval is the leader-election check cadence.
	ElectionInterval time.Duration
	// LeaseDuration is the leader lease length.
	LeaseDuration time.Duration
}

// DefaultConfig returns the built-in distributed service defaults.
func DefaultConfig() Config {
	return Config{
		StatsInterval:      time.Minute,
		StaleSweepInterval: 5 * time.Minute,
		StaleAfter:         5 * time.Minute,
		ElectionInterval:   10 * time.Second,
		LeaseDuration:      30 * time.Second,
	}
}

// Service is the distributed task service. Background loops run only while
// this node holds the relevant leader role.
type Service struct {
	client *ent.Client
	broker *broker.Client
	config Config

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates the distributed task service. broker may be nil, in which
// case every dispatch degrades to local execution.
func New(client *ent.Client, brokerClient *broker.Client, cfg Config) *Service {
	def := DefaultConfig()
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = def.StatsInterval
	}
	if cfg.StaleSweepInterval <= 0 {
		cfg.StaleSweepInterval = def.StaleSweepInterval
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = def.StaleAfter
	}
	if cfg.ElectionInterval <= 0 {
		cfg.ElectionInterval = def.ElectionInterval
	}
	if cfg.LeaseDuration <= 0 {
		cfg.LeaseDuration = def.LeaseDuration
	}
	if cfg.NodeID == "" {
		cfg.NodeID = NewWorkerID()
	}
	return &Service{
		client: client,
		broker: brokerClient,
		config: cfg,
		stopCh: make(chan struct{}),
	}
}

// Start launches the background loops: queue-stats sampler, stale-worker
// sweep, and leader-election check.
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(3)
	go s.loop(ctx, s.config.StatsInterval, RoleBeatScheduler, s.sampleQueueStats)
	go s.loop(ctx, s.config.StaleSweepInterval, RoleCleanupCoordinator, s.sweepStaleWorkers)
	go s.electionLoop(ctx)
	slog.Info("Distributed task service started", "node_id", s.config.NodeID)
}

// Stop terminates the background loops. Safe to call multiple times.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Distributed task service stopped")
}

// loop runs fn on a ticker while this node leads the given role.
// Background errors are logged and retried next tick, never fatal.
func (s *Service) loop(ctx context.Context, interval time.Duration, role string, fn func(context.Context) error) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.IsLeader(ctx, role) {
				continue
			}
			if err := fn(ctx); err != nil {
				slog.Error("Background job failed", "role", role, "error", err)
			}
		}
	}
}

// DispatchTask pushes a whole task onto the default broker queue
// (DISTRIBUTED mode). Broker unavailability is returned to the caller,
// which may degrade to local execution.
func (s *Service) DispatchTask(ctx context.Context, t *ent.Task) error {
	if s.broker == nil || !s.broker.Available(ctx) {
		return fmt.Errorf("broker unavailable for task %s", t.ID)
	}

	msg := &broker.TaskMessage{
		TaskID:      t.ID,
		Description: t.Description,
		Priority:    taskPriorityToQueue(t.Priority),
	}
	if err := s.broker.Enqueue(ctx, broker.QueueDefault, msg); err != nil {
		return fmt.Errorf("failed to enqueue task %s: %w", t.ID, err)
	}
	slog.Info("Task enqueued for distributed execution", "task_id", t.ID, "queue", broker.QueueDefault)
	return nil
}

// DispatchSubtasks pushes each subtask of a local decomposition onto the
// agent-tasks queue with its dependency metadata (HYBRID mode). Workers
// gate on dependencies through the store before starting.
func (s *Service) DispatchSubtasks(ctx context.Context, t *ent.Task, decomp *models.Decomposition, plan *models.DelegationPlan) error {
	if s.broker == nil || !s.broker.Available(ctx) {
		return fmt.Errorf("broker unavailable for task %s", t.ID)
	}

	priority := taskPriorityToQueue(t.Priority)
	for _, spec := range decomp.Subtasks {
		msg := &broker.TaskMessage{
			TaskID:               t.ID,
			ParentTaskID:         t.ID,
			SubtaskID:            spec.ID,
			Description:          spec.Description,
			RequiredCapabilities: spec.RequiredCapabilities,
			Dependencies:         spec.Dependencies,
			Priority:             priority,
		}
		if err := s.broker.Enqueue(ctx, broker.QueueAgentTasks, msg); err != nil {
			return fmt.Errorf("failed to enqueue subtask %s of task %s: %w", spec.ID, t.ID, err)
		}
	}
	slog.Info("Subtasks enqueued for distributed execution",
		"task_id", t.ID, "subtasks", len(decomp.Subtasks), "queue", broker.QueueAgentTasks)
	return nil
}

// taskPriorityToQueue maps the task priority range (1–5) onto the broker's
// 0–10 scale.
func taskPriorityToQueue(priority int) int {
	return priority * 2
}
