package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/errorlog"
)

// ErrorLogService records fatal task faults and background failures into
// the error_logs table.
type ErrorLogService struct {
	client *ent.Client
}

// NewErrorLogService creates the error log service.
func NewErrorLogService(client *ent.Client) *ErrorLogService {
	return &ErrorLogService{client: client}
}

// Record persists one error record. taskID may be empty for faults not
// tied to a task.
func (s *ErrorLogService) Record(ctx context.Context, source, message, taskID string, details map[string]any) (*ent.ErrorLog, error) {
	create := s.client.ErrorLog.Create().
		SetID(uuid.NewString()).
		SetSource(source).
		SetMessage(message)
	if taskID != "" {
		create.SetTaskID(taskID)
	}
	if details != nil {
		create.SetDetails(details)
	}
	row, err := create.Save(ctx)
	if err != nil {
		slog.Error("Failed to persist error log", "source", source, "error", err)
		return nil, fmt.Errorf("failed to persist error log: %w", err)
	}
	return row, nil
}

// List returns error records newest first, optionally filtered by source.
func (s *ErrorLogService) List(ctx context.Context, source string, limit int) ([]*ent.ErrorLog, error) {
	q := s.client.ErrorLog.Query().Order(ent.Desc(errorlog.FieldCreatedAt))
	if source != "" {
		q = q.Where(errorlog.SourceEQ(source))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list error logs: %w", err)
	}
	return rows, nil
}
