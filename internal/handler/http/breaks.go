package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/breaks"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type BreakHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type BreakHandlerImpl struct {
	breakService breaks.Service
}

func NewBreakHandler(breakService breaks.Service) BreakHandler {
	return &BreakHandlerImpl{breakService: breakService}
}

// Start implements BreakHandler.
func (h *BreakHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Start break decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := breaks.StartRequest{
		EmployeeID: middleware.EmployeeID(r),
		Type:       body.Type,
	}

	resp, err := h.breakService.Start(r.Context(), req)
	if err != nil {
		slog.Error("Start break service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break started", "employee_id", req.EmployeeID, "type", req.Type)
	response.Created(w, "Break started successfully", resp)
}

// End implements BreakHandler.
func (h *BreakHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	resp, err := h.breakService.End(r.Context(), employeeID)
	if err != nil {
		slog.Error("End break service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break ended", "employee_id", employeeID, "type", resp.Type)
	response.SuccessWithMessage(w, "Break ended successfully", resp)
}

// Approve implements BreakHandler.
func (h *BreakHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	employeeID := chi.URLParam(r, "employeeID")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "Break index must be a number", nil)
		return
	}

	resp, err := h.breakService.Approve(r.Context(), date, employeeID, index)
	if err != nil {
		slog.Error("Approve break service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break approved", "employee_id", employeeID, "date", date, "index", index)
	response.SuccessWithMessage(w, "Break approved successfully", resp)
}

// ListByDate implements BreakHandler.
func (h *BreakHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	resp, err := h.breakService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
