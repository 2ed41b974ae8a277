// Package cleanup provides data retention for operational tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
	"github.com/maestro-run/maestro/ent/workerevent"
	"github.com/maestro-run/maestro/pkg/config"
)

// Service periodically prunes operational rows past their retention TTL:
// worker events and queue stats after 24h, resolved alerts after 7 days,
// performance metric samples after 30 days (all configurable).
//
// All operations are idempotent and safe to run from multiple pods;
// callers typically gate Start on leader election.
type Service struct {
	client *ent.Client
	config config.RetentionConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(client *ent.Client, cfg config.RetentionConfig) *Service {
	return &Service{client: client, config: cfg}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"operational_ttl", s.config.OperationalTTL,
		"resolved_alert_ttl", s.config.ResolvedAlertTTL,
		"metric_ttl", s.config.MetricTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every retention sweep once.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneWorkerEvents(ctx)
	s.pruneQueueStats(ctx)
	s.pruneResolvedAlerts(ctx)
	s.pruneMetricSamples(ctx)
}

func (s *Service) pruneWorkerEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.OperationalTTL)
	count, err := s.client.WorkerEvent.Delete().
		Where(workerevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: worker event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned worker events", "count", count)
	}
}

func (s *Service) pruneQueueStats(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.OperationalTTL)
	count, err := s.client.TaskQueueStat.Delete().
		Where(taskqueuestat.SampledAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: queue stat cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned queue stats", "count", count)
	}
}

func (s *Service) pruneResolvedAlerts(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.ResolvedAlertTTL)
	count, err := s.client.SystemAlert.Delete().
		Where(
			systemalert.ResolvedEQ(true),
			systemalert.ResolvedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: resolved alert cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned resolved alerts", "count", count)
	}
}

func (s *Service) pruneMetricSamples(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.MetricTTL)
	count, err := s.client.AgentPerformanceMetric.Delete().
		Where(agentperformancemetric.RecordedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: metric sample cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned metric samples", "count", count)
	}
}
