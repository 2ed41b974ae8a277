package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/systemalert"
	"github.com/maestro-run/maestro/pkg/services"
)

// Severity levels re-exported from the store layer.
type Severity = systemalert.Severity

// Alert severities.
const (
	SeverityInfo     = systemalert.SeverityInfo
	SeverityWarning  = systemalert.SeverityWarning
	SeverityError    = systemalert.SeverityError
	SeverityCritical = systemalert.SeverityCritical
)

// AlertFilters narrows ListAlerts results.
type AlertFilters struct {
	Severity string
	Resolved *bool
}

// newAlertID generates the short alert identifier.
func newAlertID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// CreateAlert persists a new alert and caches it. Write failures are
// logged, never propagated: alert creation must not fail a metric caller.
func (m *Monitor) CreateAlert(ctx context.Context, title, message string, severity Severity, source, sourceID string, metadata map[string]any) *ent.SystemAlert {
	builder := m.client.SystemAlert.Create().
		SetID(newAlertID()).
		SetTitle(title).
		SetMessage(message).
		SetSeverity(severity).
		SetSource(source)
	if sourceID != "" {
		builder.SetSourceID(sourceID)
	}
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	alert, err := builder.Save(ctx)
	if err != nil {
		slog.Error("Failed to persist alert", "title", title, "severity", severity, "error", err)
		return nil
	}

	m.alertsMu.Lock()
	m.alerts[alert.ID] = alert
	m.alertsMu.Unlock()

	slog.Warn("Alert raised",
		"alert_id", alert.ID,
		"severity", severity,
		"title", title,
		"source", source)
	return alert
}

// AcknowledgeAlert marks an alert acknowledged. Acknowledging an already
// acknowledged alert is a no-op and returns the current record.
func (m *Monitor) AcknowledgeAlert(ctx context.Context, id string) (*ent.SystemAlert, error) {
	alert, err := m.client.SystemAlert.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("alert %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load alert %s: %w", id, err)
	}
	if alert.Acknowledged {
		return alert, nil
	}

	alert, err = alert.Update().
		SetAcknowledged(true).
		SetAcknowledgedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acknowledge alert %s: %w", id, err)
	}

	m.alertsMu.Lock()
	m.alerts[alert.ID] = alert
	m.alertsMu.Unlock()
	return alert, nil
}

// ResolveAlert marks an alert resolved. Idempotent.
func (m *Monitor) ResolveAlert(ctx context.Context, id string) (*ent.SystemAlert, error) {
	alert, err := m.client.SystemAlert.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("alert %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load alert %s: %w", id, err)
	}
	if alert.Resolved {
		return alert, nil
	}

	alert, err = alert.Update().
		SetResolved(true).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert %s: %w", id, err)
	}

	m.alertsMu.Lock()
	m.alerts[alert.ID] = alert
	m.alertsMu.Unlock()
	return alert, nil
}

// ListAlerts returns alerts matching the filters, newest first.
func (m *Monitor) ListAlerts(ctx context.Context, filters AlertFilters) ([]*ent.SystemAlert, error) {
	q := m.client.SystemAlert.Query()
	if filters.Severity != "" {
		q = q.Where(systemalert.SeverityEQ(systemalert.Severity(filters.Severity)))
	}
	if filters.Resolved != nil {
		q = q.Where(systemalert.ResolvedEQ(*filters.Resolved))
	}
	alerts, err := q.Order(ent.Desc(systemalert.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// sweepResolvedAlerts drops long-resolved alerts from the in-memory cache.
// Storage rows are kept; only the cache shrinks.
func (m *Monitor) sweepResolvedAlerts() {
	cutoff := time.Now().UTC().Add(-m.config.ResolvedRetention)

	m.alertsMu.Lock()
	defer m.alertsMu.Unlock()

	removed := 0
	for id, alert := range m.alerts {
		if alert.Resolved && alert.ResolvedAt != nil && alert.ResolvedAt.Before(cutoff) {
			delete(m.alerts, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Debug("Swept resolved alerts from cache", "count", removed)
	}
}

// CachedAlertCount returns the size of the in-memory alert cache.
func (m *Monitor) CachedAlertCount() int {
	m.alertsMu.Lock()
	defer m.alertsMu.Unlock()
	return len(m.alerts)
}
