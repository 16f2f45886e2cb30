package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MealHandler handles the meal and upcoming-meal endpoints.
type MealHandler struct {
	meals    store.MealStore
	upcoming store.UpcomingMealStore
}

// NewMealHandler creates a new MealHandler with the given stores.
func NewMealHandler(meals store.MealStore, upcoming store.UpcomingMealStore) *MealHandler {
	return &MealHandler{
		meals:    meals,
		upcoming: upcoming,
	}
}

// mealListQuery builds the shared meal list query: mealType equality
// filter, mealTitle substring search, direction-token sort on the given
// field, pages/limit pagination.
func mealListQuery(r *http.Request, sortField string) store.ListQuery {
	page, limit := parsePagination(r, "pages", "limit")
	q := store.NewListQuery().WithPage(page, limit)

	if mealType := r.URL.Query().Get("mealType"); mealType != "" {
		q.Eq["mealType"] = mealType
	}
	if mealTitle := r.URL.Query().Get("mealTitle"); mealTitle != "" {
		q.SearchField = "mealTitle"
		q.SearchText = mealTitle
	}
	if dir := store.ParseSortDir(r.URL.Query().Get("sort")); dir != store.SortNone {
		q.SortField = sortField
		q.SortDir = dir
	}

	return q
}

// ListMeals handles GET /meals: public, filterable by mealType,
// searchable by mealTitle, sortable by price.
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	q := mealListQuery(r, "price")

	meals, total, err := h.meals.List(r.Context(), q)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Result:          meals,
		TotalPagesCount: store.TotalPages(total, q.Limit),
	})
}

// ListUpcomingMeals handles GET /upcoming-meals: same shape as the meal
// list but sorted by likes.
func (h *MealHandler) ListUpcomingMeals(w http.ResponseWriter, r *http.Request) {
	q := mealListQuery(r, "likes")

	meals, total, err := h.upcoming.List(r.Context(), q)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Result:          meals,
		TotalPagesCount: store.TotalPages(total, q.Limit),
	})
}

// GetMeal handles GET /meal/{id}.
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	meal, err := h.meals.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meal)
}

// CreateMeal handles POST /meal. Admin-gated by the router.
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	h.createMeal(w, r, h.meals.Create)
}

// CreateUpcomingMeal handles POST /upcoming-meal. Admin-gated by the
// router.
func (h *MealHandler) CreateUpcomingMeal(w http.ResponseWriter, r *http.Request) {
	h.createMeal(w, r, h.upcoming.Create)
}

// createMeal is the shared create path for both meal collections.
func (h *MealHandler) createMeal(w http.ResponseWriter, r *http.Request, insert func(ctx context.Context, meal *domain.Meal) (bson.ObjectID, error)) {
	var req CreateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	meal := &domain.Meal{
		Title:       req.Title,
		Type:        req.Type,
		Image:       req.Image,
		Ingredients: req.Ingredients,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		PostTime:    time.Now().UTC(),
		AdminName:   req.AdminName,
		AdminEmail:  req.AdminEmail,
	}
	if err := meal.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid meal data: "+err.Error())
		return
	}

	id, err := insert(r.Context(), meal)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to insert meal", "error", err)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: id.Hex()})
}

// UpdateMeal handles PATCH /update-meal/{id}: partial update of the
// provided fields only. Admin-gated by the router.
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.meals.Update(r.Context(), id, fields); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}

// DeleteMeal handles DELETE /meal/{id}. Admin-gated by the router.
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.meals.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// LikeMeal handles POST /meal/like-update/{id}: atomic +1 on the like
// counter. Each call increments exactly once; double-submission control
// is the client's concern.
func (h *MealHandler) LikeMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.meals.IncrementLikes(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}

// BumpMealReviewCount handles POST /meal/meal-review-update/{id}:
// atomic +1 on the review counter.
func (h *MealHandler) BumpMealReviewCount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.meals.IncrementReviews(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}

// PublishUpcomingMeal handles POST /upcoming-meal-publish/{id}: copies
// the upcoming meal into the meal collection, then removes the
// original. The two steps are not transactional; the delete only runs
// after a successful insert, so a failure can leave the meal in both
// collections but never in neither.
func (h *MealHandler) PublishUpcomingMeal(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	meal, err := h.upcoming.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	insertedID, err := h.meals.Create(r.Context(), meal)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to publish upcoming meal",
			"error", err, "upcoming_id", id.Hex())
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.upcoming.Delete(r.Context(), id); err != nil {
		// The meal now exists in both collections. Surface the error;
		// the admin can retry the publish, which will fail on delete
		// again, or clean up by hand.
		logger.FromContext(r.Context()).Error("published meal but failed to remove upcoming copy",
			"error", err, "upcoming_id", id.Hex(), "meal_id", insertedID.Hex())
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{InsertedID: insertedID.Hex()})
}
