package response

import (
	"errors"
	"net/http"

	"github.com/careeradvance/jobboard-gateway/internal/domain/employment"
	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/validator"
)

// HandleError maps domain and upstream errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream-reported failures keep their message; a 4xx from upstream is
	// the caller's fault and passes through, anything else is a gateway
	// problem.
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			NotFound(w, apiErr.Message)
		case apiErr.StatusCode == http.StatusConflict:
			Conflict(w, apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			BadRequest(w, apiErr.Message, nil)
		default:
			BadGateway(w, apiErr.Message)
		}
		return
	}

	switch {
	// Employment domain errors
	case errors.Is(err, employment.ErrNoEmployeeMapping):
		NotFound(w, "No employee mapping found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrDecisionInFlight):
		Conflict(w, "A decision for this leave request is already in flight")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
