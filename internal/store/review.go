package store

import (
	"context"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReviewStore defines the interface for meal-review persistence.
type ReviewStore interface {
	// List returns reviews matching the query plus the total matching
	// count. Supports the userEmail equality filter and rating/likes
	// sorts.
	List(ctx context.Context, q ListQuery) ([]domain.Review, int64, error)

	// Create inserts a new review and returns its identifier.
	Create(ctx context.Context, review *domain.Review) (bson.ObjectID, error)

	// Update replaces the details text and rating of the single matched
	// review. Returns ErrReviewNotFound if nothing matched.
	Update(ctx context.Context, id bson.ObjectID, details string, rating float64) error

	// Delete removes the review. Returns ErrReviewNotFound if nothing
	// matched.
	Delete(ctx context.Context, id bson.ObjectID) error

	// IncrementLikes atomically bumps the review's like counter by one.
	IncrementLikes(ctx context.Context, id bson.ObjectID) error
}
