package store

import (
	"context"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MealStore defines the interface for published-meal persistence.
type MealStore interface {
	// List returns the meals matching the query plus the total count of
	// matching documents (before pagination).
	List(ctx context.Context, q ListQuery) ([]domain.Meal, int64, error)

	// GetByID retrieves a meal by its identifier.
	// Returns ErrMealNotFound if the meal does not exist.
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Meal, error)

	// Create inserts a new meal and returns its generated identifier.
	Create(ctx context.Context, meal *domain.Meal) (bson.ObjectID, error)

	// Update applies a partial update ($set) of the given fields to the
	// single matched meal. Returns ErrMealNotFound if nothing matched.
	Update(ctx context.Context, id bson.ObjectID, fields map[string]any) error

	// Delete removes the meal. Returns ErrMealNotFound if nothing matched.
	Delete(ctx context.Context, id bson.ObjectID) error

	// IncrementLikes atomically bumps the like counter by one.
	IncrementLikes(ctx context.Context, id bson.ObjectID) error

	// IncrementReviews atomically bumps the review counter by one.
	IncrementReviews(ctx context.Context, id bson.ObjectID) error

	// Summaries fetches the id/title/likes/reviews projection for the
	// given meal identifiers, in store-returned order.
	Summaries(ctx context.Context, ids []bson.ObjectID) ([]domain.MealSummary, error)
}

// UpcomingMealStore defines the interface for upcoming-meal persistence.
// Upcoming meals share the Meal shape and are moved to the meal
// collection when published.
type UpcomingMealStore interface {
	List(ctx context.Context, q ListQuery) ([]domain.Meal, int64, error)

	// GetByID retrieves an upcoming meal by its identifier.
	// Returns ErrMealNotFound if it does not exist.
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.Meal, error)

	Create(ctx context.Context, meal *domain.Meal) (bson.ObjectID, error)

	// Delete removes the upcoming meal after a successful publish.
	Delete(ctx context.Context, id bson.ObjectID) error
}
