package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/services"
)

// errorBody is the wire shape of one error. The envelope is a stable
// contract: `{"error": {code, type, message, timestamp, request_id?,
// details?}}` with a unix-seconds float timestamp.
type errorBody struct {
	Code      int            `json:"code"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Timestamp float64        `json:"timestamp"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// writeError maps a service-layer error onto the HTTP error envelope.
// Internal errors never leak their message to the caller; the request id
// correlates the response to the structured logs.
func writeError(c *gin.Context, err error) {
	code, errType, message, details := classifyError(err)

	if code == http.StatusInternalServerError {
		slog.Error("Unexpected service error", "request_id", requestID(c), "error", err)
		message = "internal server error"
	}

	c.AbortWithStatusJSON(code, errorEnvelope{Error: errorBody{
		Code:      code,
		Type:      errType,
		Message:   message,
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		RequestID: requestID(c),
		Details:   details,
	}})
}

// writeBadRequest reports a malformed request body or query parameter.
func writeBadRequest(c *gin.Context, message string) {
	writeError(c, services.NewValidationError("request", message))
}

func classifyError(err error) (int, string, string, map[string]any) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, "validation_error", validErr.Error(), nil
	}
	var manualErr *services.ManualInterventionError
	if errors.As(err, &manualErr) {
		return http.StatusConflict, "manual_intervention_required", manualErr.Error(), map[string]any{
			"manual_task_id": manualErr.ManualTaskID,
			"category":       manualErr.Category,
		}
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "http_error", "resource not found", nil
	case errors.Is(err, services.ErrNameConflict):
		return http.StatusConflict, "name_conflict", err.Error(), nil
	case errors.Is(err, services.ErrBadStrategy), errors.Is(err, services.ErrInvalidSupervisor):
		return http.StatusBadRequest, "validation_error", err.Error(), nil
	case errors.Is(err, services.ErrNoAgentAvailable):
		return http.StatusConflict, "no_agent_available", err.Error(), nil
	case errors.Is(err, services.ErrDependencyDeadlock):
		return http.StatusConflict, "dependency_deadlock", err.Error(), nil
	case errors.Is(err, services.ErrBackpressureExceeded):
		return http.StatusTooManyRequests, "backpressure_exceeded", err.Error(), nil
	case errors.Is(err, services.ErrNotCancellable), errors.Is(err, services.ErrAgentInUse):
		return http.StatusConflict, "http_error", err.Error(), nil
	}
	return http.StatusInternalServerError, "internal_error", err.Error(), nil
}
