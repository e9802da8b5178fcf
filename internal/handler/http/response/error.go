package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/domain/auth"
	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/domain/client"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coverage"
	"github.com/shiftwise/workforce-backend-go/internal/domain/employee"
	"github.com/shiftwise/workforce-backend-go/internal/domain/infraction"
	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed date or clock strings from path and query parameters
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(w, err.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotLinked):
		Forbidden(w, "No employee account linked to this email")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, employee.ErrEmployeeBlocked):
		Forbidden(w, "Employee account is blocked")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Role must be admin or employee", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarkedPresent):
		Conflict(w, "Attendance already recorded for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyApproved):
		Conflict(w, "Attendance record already approved")

	// Break domain errors
	case errors.Is(err, breaks.ErrInvalidBreakType):
		BadRequest(w, "Invalid break type", nil)
	case errors.Is(err, breaks.ErrBreakInProgress):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, breaks.ErrNoOpenBreak):
		NotFound(w, "No break in progress")
	case errors.Is(err, breaks.ErrBreakNotFound):
		NotFound(w, "Break entry not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No schedule configured for employee")
	case errors.Is(err, schedule.ErrInvalidDayName):
		BadRequest(w, "Invalid day name", nil)
	case errors.Is(err, schedule.ErrInvalidShift):
		BadRequest(w, "Shift start and end must be HH:MM with end after start", nil)

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientExists):
		Conflict(w, "Client name already exists")
	case errors.Is(err, client.ErrAlreadyAssigned):
		Conflict(w, "Employee already assigned to client")
	case errors.Is(err, client.ErrNotAssigned):
		NotFound(w, "Employee not assigned to client")

	// Coverage domain errors
	case errors.Is(err, coverage.ErrNoBusinessHours):
		BadRequest(w, "Client has no business hours for that day", nil)

	// Coaching domain errors
	case errors.Is(err, coaching.ErrPendingNotFound):
		NotFound(w, "Pending coaching item not found")
	case errors.Is(err, coaching.ErrLogNotFound):
		NotFound(w, "Coaching log not found")
	case errors.Is(err, coaching.ErrAlreadyAcknowledged):
		Conflict(w, "Coaching log already acknowledged")
	case errors.Is(err, coaching.ErrSignatureRequired):
		BadRequest(w, "Signature is required", nil)

	// Violation domain errors
	case errors.Is(err, violation.ErrUnknownCategory):
		BadRequest(w, "Unknown violation category", nil)

	// Infraction domain errors
	case errors.Is(err, infraction.ErrInvalidRule):
		BadRequest(w, "Unknown infraction rule code", nil)
	case errors.Is(err, infraction.ErrInfractionNotFound):
		NotFound(w, "Infraction not found")
	case errors.Is(err, infraction.ErrAlreadyAcknowledged):
		Conflict(w, "Infraction already acknowledged")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
