package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Organization(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	if !app.IsAdmin() {
		respondWithError(w, http.StatusForbidden, domain.ErrAdminOnly.Error())
		return
	}
	var input service.OrganizationSettingsInput
	if !decodeJSON(w, r, &input) {
		return
	}
	fresh, err := h.settings.UpdateOrganization(r.Context(), app, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update organization", err)
		return
	}
	respondWithJSON(w, http.StatusOK, fresh)
}

func (h *SettingsHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input model.NotificationSettings
	if !decodeJSON(w, r, &input) {
		return
	}
	fresh, err := h.settings.UpdateNotifications(r.Context(), app, input)
	if err != nil {
		respondWithServiceError(w, r, "Failed to update notifications", err)
		return
	}
	respondWithJSON(w, http.StatusOK, fresh)
}

func (h *SettingsHandler) Password(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.PasswordInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if err := h.settings.ChangePassword(r.Context(), app, input); err != nil {
		respondWithServiceError(w, r, "Failed to change password", err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
