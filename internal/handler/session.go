package handler

import (
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/service"
)

type SessionHandler struct {
	subscriptions *service.SubscriptionService
}

func NewSessionHandler(subscriptions *service.SubscriptionService) *SessionHandler {
	return &SessionHandler{subscriptions: subscriptions}
}

// Current returns the caller's application context.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, app)
}

func (h *SessionHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.subscriptions.Status(app))
}

// Activate switches the organization to the paid plan and returns the
// reloaded context.
func (h *SessionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	fresh, err := h.subscriptions.Activate(r.Context(), app)
	if err != nil {
		respondWithServiceError(w, r, "Subscription activation error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, fresh)
}
