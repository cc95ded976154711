package response

import (
	"errors"
	"net/http"

	"github.com/leavehub/leavehub-backend-go/internal/domain/auth"
	"github.com/leavehub/leavehub-backend-go/internal/domain/calendar"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/domain/notification"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee code or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrEmailNotRegistered):
		Forbidden(w, "Email is not registered to any employee")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCodeExists):
		Conflict(w, "Employee code already exists")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, request.ErrRejectionReasonRequired):
		ValidationError(w, map[string]string{"reason": "reason is required"})
	case errors.Is(err, request.ErrApproverRoleInvalid):
		Forbidden(w, "Role is not allowed to decide requests")
	case errors.Is(err, request.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)
	case errors.Is(err, request.ErrInvalidTimeRange):
		BadRequest(w, "End time is before start time", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrInvalidMonth):
		BadRequest(w, "Month is out of range", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrUnknownCategory):
		BadRequest(w, "Unknown notification category", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
