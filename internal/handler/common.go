package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/middleware"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// statusFor maps a service error onto the HTTP status the client sees.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrSiteNotFound),
		errors.Is(err, domain.ErrQuoteNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrMaterialNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrSignupTarget),
		errors.Is(err, domain.ErrTaskRange),
		errors.Is(err, domain.ErrPasswordTooWeak),
		errors.Is(err, domain.ErrPasswordsDoNotMatch),
		errors.Is(err, domain.ErrInvalidVerificationCode),
		errors.Is(err, domain.ErrVerificationExpired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyVerified),
		errors.Is(err, domain.ErrProfileActive),
		errors.Is(err, domain.ErrSiteInactive),
		errors.Is(err, domain.ErrNothingOwed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrAdminOnly),
		errors.Is(err, domain.ErrProfileInactive):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEntitlementLapsed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError logs err and answers with its mapped status.
// Internal failures are not echoed to the client.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(ctx, msg, "error", err, "requestID", chmw.GetReqID(ctx))
		respondWithError(w, code, "Internal server error")
		return
	}
	slog.WarnContext(ctx, msg, "error", err, "status", code, "requestID", chmw.GetReqID(ctx))
	respondWithError(w, code, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// pathID parses the named uuid route parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func session(w http.ResponseWriter, r *http.Request) (*service.AppContext, bool) {
	app, ok := middleware.Session(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return app, true
}

// queryYear reads ?year=, defaulting to the current year.
func queryYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1900 || year > 9999 {
		respondWithError(w, http.StatusBadRequest, "Invalid year")
		return 0, false
	}
	return year, true
}

// queryLocation reads ?tz= as an IANA zone name or a UTC offset such as
// +02:00, defaulting to the server's zone.
func queryLocation(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	raw := r.URL.Query().Get("tz")
	if raw == "" {
		return time.Local, true
	}
	if loc, err := time.LoadLocation(raw); err == nil {
		return loc, true
	}
	if off, err := time.Parse("-07:00", raw); err == nil {
		_, seconds := off.Zone()
		return time.FixedZone(raw, seconds), true
	}
	respondWithError(w, http.StatusBadRequest, "Invalid tz")
	return nil, false
}

// queryDate reads a YYYY-MM-DD query parameter in loc, defaulting to now.
func queryDate(w http.ResponseWriter, r *http.Request, name string, loc *time.Location) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now().In(loc), true
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return time.Time{}, false
	}
	return d, true
}
