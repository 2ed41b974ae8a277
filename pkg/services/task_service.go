// Package services holds the thin application services between the HTTP
// API and the core runtime, plus the shared error taxonomy.
package services

import (
	"context"
	"fmt"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/pkg/models"
)

// TaskOrchestrator is the slice of the orchestrator the task service
// needs. Satisfied by *orchestrator.Orchestrator.
type TaskOrchestrator interface {
	Submit(ctx context.Context, input models.SubmitTaskInput) (*ent.Task, error)
	Cancel(ctx context.Context, taskID string) error
}

// TaskService exposes task submission, status, and cancellation on top of
// the orchestrator.
type TaskService struct {
	client *ent.Client
	orch   TaskOrchestrator
}

// NewTaskService creates the task service.
func NewTaskService(client *ent.Client, orch TaskOrchestrator) *TaskService {
	return &TaskService{client: client, orch: orch}
}

// Submit validates and enqueues a new task.
func (s *TaskService) Submit(ctx context.Context, input models.SubmitTaskInput) (*ent.Task, error) {
	return s.orch.Submit(ctx, input)
}

// Cancel requests cancellation of a task.
func (s *TaskService) Cancel(ctx context.Context, taskID string) error {
	return s.orch.Cancel(ctx, taskID)
}

// GetStatus returns the full status view of a task, including the
// per-subtask table and a progress percentage.
func (s *TaskService) GetStatus(ctx context.Context, taskID string) (*models.TaskStatus, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	rows, err := s.client.Subtask.Query().
		Where(subtask.TaskIDEQ(taskID)).
		Order(ent.Asc(subtask.FieldCreatedAt), ent.Asc(subtask.FieldLocalID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subtasks of task %s: %w", taskID, err)
	}

	status := &models.TaskStatus{
		TaskID:          t.ID,
		Description:     t.Description,
		Status:          string(t.Status),
		Priority:        t.Priority,
		CreatedAt:       t.CreatedAt,
		StartedAt:       t.StartedAt,
		CompletedAt:     t.CompletedAt,
		Subtasks:        make([]models.SubtaskStatusRow, 0, len(rows)),
		ProgressPercent: progressPercent(t, rows),
		Result:          t.Result,
	}
	if t.ErrorMessage != nil {
		status.Error = *t.ErrorMessage
	}
	for _, row := range rows {
		sr := models.SubtaskStatusRow{
			LocalID:     row.LocalID,
			Description: row.Description,
			Status:      string(row.Status),
			Result:      row.Result,
		}
		if row.AgentID != nil {
			sr.AgentID = *row.AgentID
		}
		if row.ErrorMessage != nil {
			sr.Error = *row.ErrorMessage
		}
		status.Subtasks = append(status.Subtasks, sr)
	}
	return status, nil
}

// List returns tasks matching the filters, newest first.
func (s *TaskService) List(ctx context.Context, filters models.TaskFilters) ([]*ent.Task, error) {
	q := s.client.Task.Query().Order(ent.Desc(task.FieldCreatedAt))
	if filters.Status != "" {
		q = q.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		q = q.Offset(filters.Offset)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// progressPercent is the share of subtasks in a terminal state. Terminal
// tasks always read 100 so the bar closes even when no subtasks exist.
func progressPercent(t *ent.Task, rows []*ent.Subtask) float64 {
	switch t.Status {
	case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
		return 100
	}
	if len(rows) == 0 {
		return 0
	}
	terminal := 0
	for _, row := range rows {
		if row.Status == subtask.StatusCompleted || row.Status == subtask.StatusFailed {
			terminal++
		}
	}
	return float64(terminal) / float64(len(rows)) * 100
}
