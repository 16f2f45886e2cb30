package store

import (
	"context"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequestedMealStore defines the interface for meal-request persistence.
type RequestedMealStore interface {
	// Create inserts a new meal request and returns its identifier.
	Create(ctx context.Context, req *domain.RequestedMeal) (bson.ObjectID, error)

	// ListScoped returns the requests visible to the caller. A non-empty
	// email restricts to that requester; a non-empty search applies the
	// case-insensitive name/email disjunctive match. The aggregation
	// paginates in memory, so this returns the full matching set.
	ListScoped(ctx context.Context, email, search string) ([]domain.RequestedMeal, error)

	// SetStatus updates the delivery status of the single matched
	// request. Returns ErrRequestNotFound if nothing matched.
	SetStatus(ctx context.Context, id bson.ObjectID, status domain.RequestStatus) error

	// Delete removes the request. Returns ErrRequestNotFound if nothing
	// matched.
	Delete(ctx context.Context, id bson.ObjectID) error
}
