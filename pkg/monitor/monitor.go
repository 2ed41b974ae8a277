// Package monitor implements the performance monitor: metric ingestion with
// buffered flushing, rolling aggregates, anomaly detection, and alert
// management.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
)

// MetricType identifies the kind of a metric sample.
type MetricType = agentperformancemetric.MetricType

// Metric kinds.
const (
	MetricLatency     = agentperformancemetric.MetricTypeLatency
	MetricCost        = agentperformancemetric.MetricTypeCost
	MetricSuccessRate = agentperformancemetric.MetricTypeSuccessRate
	MetricTokenUsage  = agentperformancemetric.MetricTypeTokenUsage
	MetricToolUsage   = agentperformancemetric.MetricTypeToolUsage
	MetricErrorRate   = agentperformancemetric.MetricTypeErrorRate
	MetricQueueSize   = agentperformancemetric.MetricTypeQueueSize
	MetricMemoryUsage = agentperformancemetric.MetricTypeMemoryUsage
)

// Config contains performance monitor tuning knobs.
type Config struct {
	// BufferSize is the in-memory sample cap; reaching it triggers a flush.
	BufferSize int
	// FlushInterval is the background flush cadence.
	FlushInterval time.Duration
	// SweepInterval is the resolved-alert cache sweep cadence.
	SweepInterval time.Duration
	// ResolvedRetention is how long resolved alerts stay in the cache.
	ResolvedRetention time.Duration
}

// DefaultConfig returns the built-in monitor defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:        100,
		FlushInterval:     time.Minute,
		SweepInterval:     30 * time.Second,
		ResolvedRetention: 7 * 24 * time.Hour,
	}
}

// sample is one buffered metric record.
type sample struct {
	agentID    string
	metricType MetricType
	value      float64
	tags       map[string]string
	recordedAt time.Time
}

// Monitor ingests metric samples and manages alerts. Record never fails
// from the caller's perspective; persistence problems are absorbed and
// retried on the next flush cycle.
type Monitor struct {
	client *ent.Client
	config Config

	mu     sync.Mutex
	buffer []sample

	// alertsMu guards the alert cache map only; individual alert rows are
	// mutated through the store once identity is resolved.
	alertsMu sync.Mutex
	alerts   map[string]*ent.SystemAlert

	// outcomesMu guards the per-agent recent execution outcomes used by the
	// failure-rate estimator.
	outcomesMu sync.Mutex
	outcomes   map[string][]executionOutcome

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a performance monitor.
func New(client *ent.Client, cfg Config) *Monitor {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	return &Monitor{
		client:   client,
		config:   cfg,
		buffer:   make([]sample, 0, cfg.BufferSize),
		alerts:   make(map[string]*ent.SystemAlert),
		outcomes: make(map[string][]executionOutcome),
	}
}

// Start launches the flush and sweep background loops.
func (m *Monitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx)

	slog.Info("Performance monitor started",
		"buffer_size", m.config.BufferSize,
		"flush_interval", m.config.FlushInterval,
		"sweep_interval", m.config.SweepInterval)
}

// Stop terminates the background loops and flushes remaining samples.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done

	// Final flush with a bounded budget.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m.Flush(ctx)

	slog.Info("Performance monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	flushTicker := time.NewTicker(m.config.FlushInterval)
	defer flushTicker.Stop()
	sweepTicker := time.NewTicker(m.config.SweepInterval)
	defer sweepTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-flushTicker.C:
			m.Flush(context.Background())
		case <-sweepTicker.C:
			m.sweepResolvedAlerts()
		}
	}
}

// Record appends a metric sample to the buffer. Non-blocking: the critical
// section only swaps slices, and persistence errors never reach the caller.
// When the buffer is full and a previous flush failed, the oldest sample is
// dropped (bounded loss, logged).
func (m *Monitor) Record(agentID string, metricType MetricType, value float64, tags map[string]string) {
	s := sample{
		agentID:    EnsureUUID(agentID),
		metricType: metricType,
		value:      value,
		tags:       tags,
		recordedAt: time.Now().UTC(),
	}

	var toFlush []sample
	m.mu.Lock()
	if len(m.buffer) >= m.config.BufferSize {
		toFlush = m.buffer
		m.buffer = make([]sample, 0, m.config.BufferSize)
	}
	m.buffer = append(m.buffer, s)
	m.mu.Unlock()

	if toFlush != nil {
		go m.flushSamples(context.Background(), toFlush)
	}
}

// Flush persists all buffered samples synchronously.
func (m *Monitor) Flush(ctx context.Context) {
	m.mu.Lock()
	toFlush := m.buffer
	m.buffer = make([]sample, 0, m.config.BufferSize)
	m.mu.Unlock()

	if len(toFlush) > 0 {
		m.flushSamples(ctx, toFlush)
	}
}

// flushSamples writes a batch to the store. On failure the batch is
// restored to the front of the buffer for the next cycle; if that would
// overflow the buffer, the oldest restored samples are dropped.
func (m *Monitor) flushSamples(ctx context.Context, batch []sample) {
	builders := make([]*ent.AgentPerformanceMetricCreate, len(batch))
	for i, s := range batch {
		b := m.client.AgentPerformanceMetric.Create().
			SetID(uuid.New().String()).
			SetAgentID(s.agentID).
			SetMetricType(s.metricType).
			SetValue(s.value).
			SetRecordedAt(s.recordedAt)
		if s.tags != nil {
			b.SetTags(s.tags)
		}
		builders[i] = b
	}

	if _, err := m.client.AgentPerformanceMetric.CreateBulk(builders...).Save(ctx); err != nil {
		slog.Error("Metric flush failed, restoring buffer", "count", len(batch), "error", err)
		m.restoreBuffer(batch)
		return
	}
}

func (m *Monitor) restoreBuffer(batch []sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	restored := append(batch, m.buffer...)
	if overflow := len(restored) - m.config.BufferSize; overflow > 0 {
		slog.Warn("Metric buffer overflow after failed flush, dropping oldest samples",
			"dropped", overflow)
		restored = restored[overflow:]
	}
	m.buffer = restored
}

// BufferedCount returns how many samples are waiting to be flushed.
func (m *Monitor) BufferedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buffer)
}
