// internal/handler/auth.go
package handler

import (
	"net/http"
	"time"

	"github.com/dangerclosesec/sitebook/internal/middleware"
	"github.com/dangerclosesec/sitebook/internal/service"
)

type AuthHandler struct {
	tenants *service.TenantService
}

func NewAuthHandler(tenants *service.TenantService) *AuthHandler {
	return &AuthHandler{tenants: tenants}
}

type AuthResponse struct {
	BaseResponse
	Token   string              `json:"token"`
	Session *service.AppContext `json:"session"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.tenants.Signup(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, "User registration error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Token:        output.Token,
		Session:      output.Session,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.tenants.Login(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, "User login error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Token:        output.Token,
		Session:      output.Session,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	h.tenants.Logout(r.Context(), userID)

	http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Expires: time.Now().Add(-time.Hour)})
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User logged out successfully"})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := h.tenants.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
		respondWithServiceError(w, r, "User verification error", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User verified successfully"})
}

// InviteLink returns the registration link new members use to join.
func (h *AuthHandler) InviteLink(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"link": h.tenants.InviteLink(app)})
}

func (h *AuthHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
	app, ok := session(w, r)
	if !ok {
		return
	}
	var input service.InviteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	if err := h.tenants.SendInvite(r.Context(), app, input); err != nil {
		respondWithServiceError(w, r, "Invite error", err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, BaseResponse{Ok: true})
}
