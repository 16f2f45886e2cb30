package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/service/mealrequest"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequestHandler handles the requested-meal endpoints, including the
// aggregated listing.
type RequestHandler struct {
	aggregator *mealrequest.Service
	requests   store.RequestedMealStore
	userStore  store.UserStore
}

// NewRequestHandler creates a new RequestHandler with the given
// dependencies.
func NewRequestHandler(aggregator *mealrequest.Service, requests store.RequestedMealStore, userStore store.UserStore) *RequestHandler {
	return &RequestHandler{
		aggregator: aggregator,
		requests:   requests,
		userStore:  userStore,
	}
}

// CreateRequest handles POST /requested-meal. The requester identity is
// the verified token email; requests start Pending.
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	email, ok := requireAuthenticatedEmail(w, r)
	if !ok {
		return
	}

	var req CreateRequestedMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	mealID, err := bson.ObjectIDFromHex(req.MealID)
	if err != nil {
		HandleAPIError(w, r, store.ErrInvalidID)
		return
	}

	request := &domain.RequestedMeal{
		MealID:      mealID,
		MealTitle:   req.MealTitle,
		UserName:    req.UserName,
		UserEmail:   email,
		Status:      domain.StatusPending,
		RequestedAt: time.Now().UTC(),
	}

	id, err := h.requests.Create(r.Context(), request)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create meal request",
			"error", err, "meal_id", req.MealID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: id.Hex()})
}

// ListRequested handles GET /auth/requested-meal: the aggregated,
// status-ordered, paginated listing. A caller asking for their own
// email gets self scope; any other scope (all requests, or another
// email) requires the Admin role.
func (h *RequestHandler) ListRequested(w http.ResponseWriter, r *http.Request) {
	authEmail, ok := requireAuthenticatedEmail(w, r)
	if !ok {
		return
	}

	scopeEmail := r.URL.Query().Get("email")
	search := r.URL.Query().Get("searchQuery")
	page, perPage := parsePagination(r, "page", "perPage")

	if scopeEmail != authEmail {
		user, err := h.userStore.GetByEmail(r.Context(), authEmail)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithMessage(w, r, http.StatusForbidden, "forbidden access")
				return
			}
			shared.RespondWithInternalError(w, r, err)
			return
		}
		if !user.IsAdmin() {
			shared.RespondWithMessage(w, r, http.StatusForbidden, "forbidden access")
			return
		}
	}

	result, err := h.aggregator.ListRequested(r.Context(), scopeEmail, search, page, perPage)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// DeleteRequest handles DELETE /auth/requested-meal/{id}: self-only,
// the owning email arrives as a query parameter and must match the
// token identity.
func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSelf(w, r, r.URL.Query().Get("email")); !ok {
		return
	}

	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.requests.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// ServeMeal handles POST /meal-serve/{id}: marks the request Delivered.
// Admin-gated by the router.
func (h *RequestHandler) ServeMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.requests.SetStatus(r.Context(), id, domain.StatusDelivered); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}
