package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/attendance"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkPresent(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// MarkPresent implements AttendanceHandler. The employee is taken from the
// access token; nobody can clock in on someone else's behalf.
func (h *AttendanceHandlerImpl) MarkPresent(w http.ResponseWriter, r *http.Request) {
	req := attendance.MarkPresentRequest{
		EmployeeID: middleware.EmployeeID(r),
		Username:   middleware.EmployeeName(r),
	}

	resp, err := h.attendanceService.MarkPresent(r.Context(), req)
	if err != nil {
		slog.Error("MarkPresent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "employee_id", req.EmployeeID, "date", resp.Date)
	response.Created(w, "Attendance marked successfully", resp)
}

// Approve implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	employeeID := chi.URLParam(r, "employeeID")

	resp, err := h.attendanceService.Approve(r.Context(), date, employeeID)
	if err != nil {
		slog.Error("Approve attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance approved", "employee_id", employeeID, "date", date)
	response.SuccessWithMessage(w, "Attendance approved successfully", resp)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	resp, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
