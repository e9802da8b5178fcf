package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/workforce-backend-go/internal/domain/client"
	"github.com/shiftwise/workforce-backend-go/internal/domain/coverage"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	Assigned(w http.ResponseWriter, r *http.Request)
	Coverage(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService   client.Service
	coverageService coverage.Service
}

func NewClientHandler(clientService client.Service, coverageService coverage.Service) ClientHandler {
	return &ClientHandlerImpl{
		clientService:   clientService,
		coverageService: coverageService,
	}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client created", "client_id", created.ID)
	response.Created(w, "Client created successfully", created)
}

// Get implements ClientHandler.
func (h *ClientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	c, err := h.clientService.Get(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.List(r.Context())
	if err != nil {
		slog.Error("List clients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	var updateReq client.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.clientService.Update(r.Context(), clientID, updateReq)
	if err != nil {
		slog.Error("Update client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client updated", "client_id", clientID)
	response.SuccessWithMessage(w, "Client updated successfully", updated)
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	if err := h.clientService.Delete(r.Context(), clientID); err != nil {
		slog.Error("Delete client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client deleted", "client_id", clientID)
	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// Assign implements ClientHandler.
func (h *ClientHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	var assignReq client.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.clientService.Assign(r.Context(), clientID, assignReq.EmployeeID); err != nil {
		slog.Error("Assign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee assigned to client", "client_id", clientID, "employee_id", assignReq.EmployeeID)
	response.SuccessWithMessage(w, "Employee assigned successfully", nil)
}

// Unassign implements ClientHandler.
func (h *ClientHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.clientService.Unassign(r.Context(), clientID, employeeID); err != nil {
		slog.Error("Unassign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee unassigned from client", "client_id", clientID, "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee unassigned successfully", nil)
}

// Assigned implements ClientHandler.
func (h *ClientHandlerImpl) Assigned(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	assigned, err := h.clientService.Assigned(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assigned)
}

// Coverage implements ClientHandler.
func (h *ClientHandlerImpl) Coverage(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter date is required (YYYY-MM-DD)", nil)
		return
	}

	report, err := h.coverageService.ComputeCoverage(r.Context(), clientID, date)
	if err != nil {
		slog.Error("Coverage service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
