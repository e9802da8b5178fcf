package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/infraction"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type InfractionHandler interface {
	Post(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	Rules(w http.ResponseWriter, r *http.Request)
}

type InfractionHandlerImpl struct {
	infractionService infraction.Service
}

func NewInfractionHandler(infractionService infraction.Service) InfractionHandler {
	return &InfractionHandlerImpl{infractionService: infractionService}
}

// Post implements InfractionHandler.
func (h *InfractionHandlerImpl) Post(w http.ResponseWriter, r *http.Request) {
	var postReq infraction.PostRequest

	if err := json.NewDecoder(r.Body).Decode(&postReq); err != nil {
		slog.Error("Post infraction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.infractionService.Post(r.Context(), postReq)
	if err != nil {
		slog.Error("Post infraction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Infraction posted",
		"infraction_id", record.ID,
		"employee_id", record.EmployeeID,
		"rule_code", record.RuleCode,
		"occurrence", record.OccurrenceCount,
	)
	response.Created(w, "Infraction posted successfully", record)
}

// List implements InfractionHandler. Non-admins only see their own records.
func (h *InfractionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if !middleware.IsAdmin(r) {
		employeeID = middleware.EmployeeID(r)
	}

	resp, err := h.infractionService.List(r.Context(), employeeID)
	if err != nil {
		slog.Error("List infractions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Acknowledge implements InfractionHandler.
func (h *InfractionHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	infractionID := chi.URLParam(r, "infractionID")

	var ackReq infraction.AcknowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&ackReq); err != nil {
		slog.Error("Acknowledge infraction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.infractionService.Acknowledge(r.Context(), infractionID, ackReq)
	if err != nil {
		slog.Error("Acknowledge infraction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Infraction acknowledged", "infraction_id", infractionID)
	response.SuccessWithMessage(w, "Infraction acknowledged", record)
}

// Rules implements InfractionHandler. The rule table is static so the
// response never varies.
func (h *InfractionHandlerImpl) Rules(w http.ResponseWriter, r *http.Request) {
	response.Success(w, infraction.Rules)
}
