package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passform/passform-go/internal/middleware"
	"github.com/passform/passform-go/internal/model"
	"github.com/passform/passform-go/internal/service"
)

// PresetHandler handles HTTP requests for saved generation presets.
type PresetHandler struct {
	service *service.PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(svc *service.PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// HandleCreatePreset handles POST /api/v1/presets requests.
func (h *PresetHandler) HandleCreatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreatePreset(r.Context(), userID, req)
	if err != nil {
		writePresetError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// HandleListPresets handles GET /api/v1/presets requests.
func (h *PresetHandler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	presets, err := h.service.ListPresets(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

// HandleUpdatePreset handles PUT /api/v1/presets/{preset_id} requests.
func (h *PresetHandler) HandleUpdatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdatePreset(r.Context(), userID, chi.URLParam(r, "preset_id"), req)
	if err != nil {
		writePresetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDeletePreset handles DELETE /api/v1/presets/{preset_id} requests.
func (h *PresetHandler) HandleDeletePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := h.service.DeletePreset(r.Context(), userID, chi.URLParam(r, "preset_id")); err != nil {
		writePresetError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerateFromPreset handles POST /api/v1/presets/{preset_id}/generate requests.
func (h *PresetHandler) HandleGenerateFromPreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GenerateFromPreset(r.Context(), userID, chi.URLParam(r, "preset_id"))
	if err != nil {
		writePresetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePresetError(w http.ResponseWriter, err error) {
	switch {
	case service.IsPresetValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPresetExists):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
