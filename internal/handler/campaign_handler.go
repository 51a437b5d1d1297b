// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/middleware"
	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service *service.CampaignService
	Preview *service.PreviewService
	Logger  *zap.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service failures onto the uniform {"error": msg} payload.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case appErrors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case appErrors.IsNotDraft(err):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, appErrors.ErrPastSchedule):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// ListCampaigns returns the caller's campaign plans.
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns(middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// CreateCampaign creates a new DRAFT plan from a resolved payload.
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in service.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	campaign, err := h.Service.CreateCampaign(middleware.UserID(r.Context()), &in)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// UpdateCampaign replaces a DRAFT plan's attributes.
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in service.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	campaign, err := h.Service.UpdateCampaign(chi.URLParam(r, "id"), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// GetCampaign returns full detail including linked content assets.
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.GetCampaignDetails(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// DeleteCampaign removes a DRAFT plan.
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCampaign(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PatchStatus updates the status and/or saves edited content. The route is
// shared between the two on purpose, for compatibility with existing
// clients.
func (h *CampaignHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status  *model.Status `json:"status"`
		Content *string       `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.Status == nil && body.Content == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "nothing to update"})
		return
	}

	campaign, err := h.Service.PatchStatus(chi.URLParam(r, "id"), body.Status, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// GeneratePreview returns AI-generated draft content for a resolved
// payload. The campaign does not need to exist yet.
func (h *CampaignHandler) GeneratePreview(w http.ResponseWriter, r *http.Request) {
	var in service.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	text, err := h.Preview.GeneratePreview(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"preview": text})
}

// LaunchCampaign starts a plan now ({}) or at a future time
// ({"scheduledAt": ...}).
func (h *CampaignHandler) LaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ScheduledAt *string `json:"scheduledAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var scheduledAt *time.Time
	if body.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *body.ScheduledAt)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "scheduledAt must be RFC 3339"})
			return
		}
		scheduledAt = &t
	}

	campaign, err := h.Service.LaunchCampaign(chi.URLParam(r, "id"), scheduledAt)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Logger.Info("campaign launched",
		zap.String("campaign_id", campaign.ID),
		zap.String("status", string(campaign.Status)))
	writeJSON(w, http.StatusOK, campaign)
}
