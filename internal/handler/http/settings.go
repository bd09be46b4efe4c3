package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mawared/mawared-backend/internal/domain/settings"
	"github.com/mawared/mawared-backend/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingsService.GetSetting(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, setting)
}

// List implements SettingsHandler.
func (h *SettingsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.settingsService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Upsert implements SettingsHandler.
func (h *SettingsHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq settings.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert setting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	setting, err := h.settingsService.UpsertSetting(r.Context(), upsertReq, userIDFromRequest(r))
	if err != nil {
		slog.Error("Upsert setting service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting saved successfully", setting)
}
