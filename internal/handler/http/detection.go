package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftwise/workforce-backend-go/internal/domain/settings"
	"github.com/shiftwise/workforce-backend-go/internal/domain/violation"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/handler/http/response"
)

type DetectionHandler interface {
	Detect(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	GetAutoCoaching(w http.ResponseWriter, r *http.Request)
	SetAutoCoaching(w http.ResponseWriter, r *http.Request)
}

type DetectionHandlerImpl struct {
	detectorService violation.DetectorService
	settingsRepo    settings.Repository
}

func NewDetectionHandler(detectorService violation.DetectorService, settingsRepo settings.Repository) DetectionHandler {
	return &DetectionHandlerImpl{
		detectorService: detectorService,
		settingsRepo:    settingsRepo,
	}
}

// Detect implements DetectionHandler. A nil violation is a successful result
// meaning the thresholds were not met.
func (h *DetectionHandlerImpl) Detect(w http.ResponseWriter, r *http.Request) {
	category := violation.Category(r.URL.Query().Get("category"))
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter employeeId is required", nil)
		return
	}

	v, err := h.detectorService.Detect(r.Context(), category, employeeID)
	if err != nil {
		slog.Error("Detect service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, v)
}

// Scan implements DetectionHandler. It triggers the full sweep on demand
// regardless of the auto-coaching toggle.
func (h *DetectionHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	summary, err := h.detectorService.ScanAll(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		slog.Error("Scan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Detection sweep completed",
		"employees_scanned", summary.EmployeesScanned,
		"violations_found", summary.ViolationsFound,
		"proposals_created", summary.ProposalsCreated,
	)
	response.SuccessWithMessage(w, "Detection sweep completed", summary)
}

// GetAutoCoaching implements DetectionHandler.
func (h *DetectionHandlerImpl) GetAutoCoaching(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settingsRepo.AutoCoachingEnabled(r.Context())
	if err != nil {
		slog.Error("GetAutoCoaching error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"enabled": enabled})
}

// SetAutoCoaching implements DetectionHandler.
func (h *DetectionHandlerImpl) SetAutoCoaching(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("SetAutoCoaching decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsRepo.SetAutoCoachingEnabled(r.Context(), body.Enabled); err != nil {
		slog.Error("SetAutoCoaching error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Auto-coaching toggle changed", "enabled", body.Enabled)
	response.SuccessWithMessage(w, "Auto-coaching setting updated", map[string]bool{"enabled": body.Enabled})
}
