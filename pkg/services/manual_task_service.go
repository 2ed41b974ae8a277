package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/manualtask"
)

// RaiseManualTaskInput describes a condition a human must resolve.
type RaiseManualTaskInput struct {
	Category     string
	Title        string
	Description  string
	Priority     int
	SourceSystem string
	SourceID     string
	Metadata     map[string]any
}

// ManualTaskService persists manual-intervention records. Repeated triggers
// for the same (source_system, source_id) collapse to one open record; the
// partial unique index in pkg/database enforces this under concurrency.
type ManualTaskService struct {
	client *ent.Client
}

// NewManualTaskService creates the manual task service.
func NewManualTaskService(client *ent.Client) *ManualTaskService {
	return &ManualTaskService{client: client}
}

// Raise records a manual-intervention condition and returns the error to
// surface to the caller. Raising the same condition again while its record
// is still open returns the existing record.
func (s *ManualTaskService) Raise(ctx context.Context, input RaiseManualTaskInput) (*ent.ManualTask, error) {
	if input.Category == "" || input.SourceSystem == "" || input.SourceID == "" {
		return nil, fmt.Errorf("category, source_system, and source_id are required")
	}
	if input.Priority <= 0 {
		input.Priority = 3
	}

	existing, err := s.openRecord(ctx, input.SourceSystem, input.SourceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, s.interventionError(existing)
	}

	create := s.client.ManualTask.Create().
		SetID(uuid.NewString()).
		SetCategory(input.Category).
		SetTitle(input.Title).
		SetDescription(input.Description).
		SetPriority(input.Priority).
		SetSourceSystem(input.SourceSystem).
		SetSourceID(input.SourceID)
	if input.Metadata != nil {
		create.SetMetadata(input.Metadata)
	}
	created, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		// Lost a race with a concurrent trigger of the same condition.
		existing, lookupErr := s.openRecord(ctx, input.SourceSystem, input.SourceID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing != nil {
			return existing, s.interventionError(existing)
		}
		return nil, fmt.Errorf("failed to create manual task: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create manual task: %w", err)
	}

	slog.Warn("Manual intervention required",
		"manual_task_id", created.ID, "category", created.Category, "source",
		fmt.Sprintf("%s/%s", input.SourceSystem, input.SourceID))
	return created, s.interventionError(created)
}

// Resolve closes an open manual task. Resolving an already-resolved task is
// a no-op.
func (s *ManualTaskService) Resolve(ctx context.Context, manualTaskID string) (*ent.ManualTask, error) {
	mt, err := s.client.ManualTask.Get(ctx, manualTaskID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load manual task %s: %w", manualTaskID, err)
	}
	if mt.Status == manualtask.StatusResolved {
		return mt, nil
	}
	mt, err = mt.Update().
		SetStatus(manualtask.StatusResolved).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manual task %s: %w", manualTaskID, err)
	}
	return mt, nil
}

// ListOpen returns open manual tasks, highest priority first.
func (s *ManualTaskService) ListOpen(ctx context.Context) ([]*ent.ManualTask, error) {
	tasks, err := s.client.ManualTask.Query().
		Where(manualtask.StatusEQ(manualtask.StatusOpen)).
		Order(ent.Desc(manualtask.FieldPriority), ent.Asc(manualtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual tasks: %w", err)
	}
	return tasks, nil
}

func (s *ManualTaskService) openRecord(ctx context.Context, sourceSystem, sourceID string) (*ent.ManualTask, error) {
	mt, err := s.client.ManualTask.Query().
		Where(
			manualtask.SourceSystemEQ(sourceSystem),
			manualtask.SourceIDEQ(sourceID),
			manualtask.StatusEQ(manualtask.StatusOpen),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query manual task for %s/%s: %w", sourceSystem, sourceID, err)
	}
	return mt, nil
}

func (s *ManualTaskService) interventionError(mt *ent.ManualTask) error {
	return &ManualInterventionError{
		ManualTaskID: mt.ID,
		Category:     mt.Category,
		Message:      mt.Description,
	}
}
