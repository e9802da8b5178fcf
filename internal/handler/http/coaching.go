package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/coaching"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type CoachingHandler interface {
	ListLogs(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	DeleteForever(w http.ResponseWriter, r *http.Request)
	ClearIgnored(w http.ResponseWriter, r *http.Request)
}

type CoachingHandlerImpl struct {
	coachingService coaching.Service
}

func NewCoachingHandler(coachingService coaching.Service) CoachingHandler {
	return &CoachingHandlerImpl{coachingService: coachingService}
}

// ListLogs implements CoachingHandler. Non-admins only see their own logs
// regardless of the query parameter.
func (h *CoachingHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if !middleware.IsAdmin(r) {
		employeeID = middleware.EmployeeID(r)
	}

	resp, err := h.coachingService.ListLogs(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Acknowledge implements CoachingHandler.
func (h *CoachingHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	logID := chi.URLParam(r, "logID")

	var ackReq coaching.AcknowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&ackReq); err != nil {
		slog.Error("Acknowledge decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.coachingService.Acknowledge(r.Context(), logID, ackReq)
	if err != nil {
		slog.Error("Acknowledge service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Coaching log acknowledged", "log_id", logID, "employee_id", log.EmployeeID)
	response.SuccessWithMessage(w, "Coaching log acknowledged", log)
}

// ListPending implements CoachingHandler.
func (h *CoachingHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.coachingService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements CoachingHandler.
func (h *CoachingHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	pendingID := chi.URLParam(r, "pendingID")

	log, err := h.coachingService.Approve(r.Context(), pendingID, middleware.EmployeeID(r))
	if err != nil {
		slog.Error("Approve pending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Pending coaching approved", "pending_id", pendingID, "log_id", log.ID)
	response.Created(w, "Coaching log created", log)
}

// Reject implements CoachingHandler.
func (h *CoachingHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	pendingID := chi.URLParam(r, "pendingID")

	if err := h.coachingService.Reject(r.Context(), pendingID); err != nil {
		slog.Error("Reject pending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Pending coaching rejected", "pending_id", pendingID)
	response.SuccessWithMessage(w, "Pending coaching rejected", nil)
}

// DeleteForever implements CoachingHandler.
func (h *CoachingHandlerImpl) DeleteForever(w http.ResponseWriter, r *http.Request) {
	logID := chi.URLParam(r, "logID")

	if err := h.coachingService.DeleteForever(r.Context(), logID, middleware.EmployeeID(r)); err != nil {
		slog.Error("DeleteForever service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Coaching log permanently deleted", "log_id", logID)
	response.SuccessWithMessage(w, "Coaching log deleted and incidents suppressed", nil)
}

// ClearIgnored implements CoachingHandler.
func (h *CoachingHandlerImpl) ClearIgnored(w http.ResponseWriter, r *http.Request) {
	if err := h.coachingService.ClearIgnored(r.Context()); err != nil {
		slog.Error("ClearIgnored service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ignored incidents cleared")
	response.SuccessWithMessage(w, "Ignored incidents cleared", nil)
}
