package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Analytics reports the organization's financials, with the site leaderboard
// limited to ?group= when given.
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	group := model.SiteGroup(r.URL.Query().Get("group"))
	report, err := h.analytics.Analytics(r.Context(), app.OrgID(), group)
	if err != nil {
		respondWithServiceError(w, r, "Failed to build analytics", err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	dash, err := h.analytics.Dashboard(r.Context(), app.OrgID())
	if err != nil {
		respondWithServiceError(w, r, "Failed to build dashboard", err)
		return
	}
	respondWithJSON(w, http.StatusOK, dash)
}
