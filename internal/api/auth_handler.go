package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/config"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/service/auth"
	"github.com/mealmasterhq/meal-master-api/internal/store"
)

// AuthHandler handles token issuance, user registration and the
// user-administration endpoints.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	authCfg    *config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, jwtService auth.JWTService, authCfg *config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		authCfg:    authCfg,
	}
}

// AccessToken handles POST /auth/access-token: it signs a session token
// for the submitted claims and sets it as an http-only, secure,
// cross-site cookie.
func (h *AuthHandler) AccessToken(w http.ResponseWriter, r *http.Request) {
	var req AccessTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate session token",
			"error", err, "email", req.Email)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.authCfg.TokenLifetimeMinutes*60))
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// AccessCancel handles POST /auth/access-cancel: it clears the session
// cookie client-side. Issued tokens stay valid until natural expiry;
// there is no server-side blacklist.
func (h *AuthHandler) AccessCancel(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// RegisterUser handles POST /auth/users: create-if-absent keyed on
// email. A second registration with the same email is a no-op that
// returns the sentinel "already exists" body.
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	_, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, UserExistsResponse{
			Message:    "user already exists",
			InsertedID: nil,
		})
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	id, err := h.userStore.Create(r.Context(), user)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create user",
			"error", err, "email", req.Email)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: id.Hex()})
}

// GetUserAccess handles GET /auth/user/{email}: the role and badge
// projection, self-scoped to the authenticated email.
func (h *AuthHandler) GetUserAccess(w http.ResponseWriter, r *http.Request) {
	email, ok := requireSelf(w, r, chi.URLParam(r, "email"))
	if !ok {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserAccessResponse{
		Email: user.Email,
		Role:  user.Role,
		Badge: user.Badge,
	})
}

// ListUsers handles GET /auth/users: paginated and searchable across
// name and email. Admin-gated by the router.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, "pages", "limit")
	q := store.NewListQuery().WithPage(page, limit)
	q.NameEmailSearch = r.URL.Query().Get("searchQuery")

	users, total, err := h.userStore.List(r.Context(), q)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Result:          users,
		TotalPagesCount: store.TotalPages(total, q.Limit),
	})
}

// MakeAdmin handles PATCH /auth/make-admin/{id}: promotes the matched
// user to the Admin role. Admin-gated by the router.
func (h *AuthHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.userStore.SetRole(r.Context(), id, domain.RoleAdmin); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}

// UpdateBadge handles POST /auth/user/{email}: sets the badge tier of
// the addressed user.
func (h *AuthHandler) UpdateBadge(w http.ResponseWriter, r *http.Request) {
	var req BadgeUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.userStore.SetBadge(r.Context(), chi.URLParam(r, "email"), req.Badge); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}
