package api

import (
	"net/http"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReviewHandler handles the meal-review endpoints.
type ReviewHandler struct {
	reviews store.ReviewStore
}

// NewReviewHandler creates a new ReviewHandler with the given store.
func NewReviewHandler(reviews store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ListReviews handles GET /reviews: public, filterable by reviewer
// email, sortable by rating or likes via direction-token parameters.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r, "pages", "limit")
	q := store.NewListQuery().WithPage(page, limit)

	if email := r.URL.Query().Get("email"); email != "" {
		q.Eq["userEmail"] = email
	}

	// Rating takes precedence when both sort parameters are supplied.
	if dir := store.ParseSortDir(r.URL.Query().Get("rating")); dir != store.SortNone {
		q.SortField = "rating"
		q.SortDir = dir
	} else if dir := store.ParseSortDir(r.URL.Query().Get("likes")); dir != store.SortNone {
		q.SortField = "likes"
		q.SortDir = dir
	}

	reviews, total, err := h.reviews.List(r.Context(), q)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Result:          reviews,
		TotalPagesCount: store.TotalPages(total, q.Limit),
	})
}

// CreateReview handles POST /reviews. The reviewer identity is the
// verified token email.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	email, ok := requireAuthenticatedEmail(w, r)
	if !ok {
		return
	}

	var req CreateReviewRequest
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

	review := &domain.Review{
		MealID:    mealID,
		MealTitle: req.MealTitle,
		UserName:  req.UserName,
		UserEmail: email,
		Rating:    req.Rating,
		Details:   req.Details,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.reviews.Create(r.Context(), review)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to create review",
			"error", err, "meal_id", req.MealID)
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: id.Hex()})
}

// UpdateReview handles PATCH /updated-review/{id}: replaces the details
// text and rating.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.reviews.Update(r.Context(), id, req.Details, req.Rating); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}

// DeleteReview handles DELETE /auth/review-delete/{id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.reviews.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// LikeReview handles POST /review-like-update/{id}: public atomic +1 on
// the review's like counter.
func (h *ReviewHandler) LikeReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.reviews.IncrementLikes(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{ModifiedCount: 1})
}
