package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// SessionMiddleware resolves the application context of the authenticated
// identity. It must run after AuthMiddleware.
func SessionMiddleware(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, ok := UserID(ctx)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			app, err := sessions.Load(ctx, userID)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnauthorized):
					respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				case errors.Is(err, domain.ErrProfileInactive):
					respondWithError(w, http.StatusForbidden, err.Error())
				default:
					slog.ErrorContext(ctx, "Failed to load session", "error", err, "userID", userID, "requestID", chmw.GetReqID(ctx))
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, app)))
		})
	}
}

func WithSession(ctx context.Context, app *service.AppContext) context.Context {
	return context.WithValue(ctx, sessionKey, app)
}

// Session returns the application context stored by SessionMiddleware.
func Session(ctx context.Context) (*service.AppContext, bool) {
	app, ok := ctx.Value(sessionKey).(*service.AppContext)
	return app, ok && app != nil
}

// EntitlementGate answers 402 while the organization's trial has lapsed and
// no subscription is active.
func EntitlementGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app, ok := Session(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !app.Entitlement.Allowed {
			respondWithError(w, http.StatusPaymentRequired, domain.ErrEntitlementLapsed.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin limits a route group to administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app, ok := Session(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !app.IsAdmin() {
			respondWithError(w, http.StatusForbidden, domain.ErrAdminOnly.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
