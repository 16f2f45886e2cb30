package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/service/auth"
	"github.com/mealmasterhq/meal-master-api/internal/store"
)

// AuthMiddleware provides cookie-JWT authentication and the admin gate
// for routes. Both dependencies are injected; the middleware holds no
// ambient state.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
		cookieName: cookieName,
	}
}

// Authenticate validates the session cookie and adds the verified email
// to the request context. Missing or invalid tokens short-circuit with
// 401 and never reach the downstream handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			// Distinct from an invalid token, but the response is the same.
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			logger.FromContext(r.Context()).Debug("token rejected", "error", err)
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserEmailContextKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin runs after Authenticate: it resolves the caller's user
// record by the verified email and requires the Admin role. Callers
// with no user record are denied the same way as non-admins.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.GetUserEmail(r.Context())
		if !ok {
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithMessage(w, r, http.StatusForbidden, "forbidden access")
				return
			}
			logger.FromContext(r.Context()).Error("admin gate lookup failed",
				"error", err, "email", email)
			shared.RespondWithInternalError(w, r, err)
			return
		}

		if !user.IsAdmin() {
			shared.RespondWithMessage(w, r, http.StatusForbidden, "forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserEmail extracts the authenticated email from the request context.
// Returns the email and a boolean indicating if it was found.
func GetUserEmail(r *http.Request) (string, bool) {
	return shared.GetUserEmail(r.Context())
}
