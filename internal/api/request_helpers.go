package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// getPathObjectID extracts and parses a document ID from the URL path.
// Returns store.ErrInvalidID when the parameter is missing or not a
// valid ObjectID hex string.
func getPathObjectID(r *http.Request, paramName string) (bson.ObjectID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return bson.ObjectID{}, store.ErrInvalidID
	}

	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, store.ErrInvalidID
	}
	return id, nil
}

// parsePagination reads page/limit query parameters by name, falling
// back to the documented defaults when absent or malformed.
func parsePagination(r *http.Request, pageParam, limitParam string) (int64, int64) {
	page := parseInt64Param(r, pageParam, store.DefaultPage)
	limit := parseInt64Param(r, limitParam, store.DefaultLimit)
	if page < 1 {
		page = store.DefaultPage
	}
	if limit < 1 {
		limit = store.DefaultLimit
	}
	return page, limit
}

func parseInt64Param(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

// requireAuthenticatedEmail pulls the verified email from the context,
// responding with 401 if the middleware did not set it.
func requireAuthenticatedEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := shared.GetUserEmail(r.Context())
	if !ok {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, "unauthorized access")
		return "", false
	}
	return email, true
}

// requireSelf enforces the ownership rule: the supplied email must
// exactly equal the authenticated identity. Responds with 403 and
// returns false on mismatch.
func requireSelf(w http.ResponseWriter, r *http.Request, suppliedEmail string) (string, bool) {
	email, ok := requireAuthenticatedEmail(w, r)
	if !ok {
		return "", false
	}
	if suppliedEmail != email {
		shared.RespondWithMessage(w, r, http.StatusForbidden, "forbidden access")
		return "", false
	}
	return email, true
}
