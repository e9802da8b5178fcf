package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Get implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	week, err := h.scheduleService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// Save implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var week schedule.WeekSchedule
	if err := json.NewDecoder(r.Body).Decode(&week); err != nil {
		slog.Error("Save schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.scheduleService.Save(r.Context(), employeeID, week)
	if err != nil {
		slog.Error("Save schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule saved", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Schedule saved successfully", saved)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.scheduleService.Delete(r.Context(), employeeID); err != nil {
		slog.Error("Delete schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule deleted", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}
