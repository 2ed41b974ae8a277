package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrNameConflict is returned when an agent name already exists
	ErrNameConflict = errors.New("agent name already exists")

	// ErrInvalidSupervisor is returned when a supervisor UUID does not resolve
	ErrInvalidSupervisor = errors.New("supervisor does not exist")

	// ErrBadStrategy is returned for unknown selection/delegation strategies
	ErrBadStrategy = errors.New("unknown strategy")

	// ErrNoAgentAvailable is returned when no agent can serve a subtask
	ErrNoAgentAvailable = errors.New("no agent available")

	// ErrDependencyDeadlock is returned when DAG execution stalls with
	// pending subtasks and an empty frontier
	ErrDependencyDeadlock = errors.New("dependency deadlock")

	// ErrBackpressureExceeded is returned when the submission queue is full
	ErrBackpressureExceeded = errors.New("backpressure exceeded")

	// ErrCancelled is returned when a task or subtask was cancelled
	ErrCancelled = errors.New("cancelled")

	// ErrNotCancellable is returned when a task is not in a cancellable state
	ErrNotCancellable = errors.New("task is not in a cancellable state")

	// ErrAgentInUse is returned when deleting an agent that other agents
	// reference as supervisor
	ErrAgentInUse = errors.New("agent is referenced as supervisor")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ManualInterventionError signals a condition a human must resolve. It is
// persisted as a manual task before being surfaced to the caller.
type ManualInterventionError struct {
	ManualTaskID string
	Category     string
	Message      string
}

func (e *ManualInterventionError) Error() string {
	return fmt.Sprintf("manual intervention required (%s): %s", e.Category, e.Message)
}
