package mongodb

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const requestCollection = "requestedMeals"

// RequestedMealStore implements store.RequestedMealStore backed by the
// requestedMeals collection.
type RequestedMealStore struct {
	coll *mongo.Collection
}

var _ store.RequestedMealStore = (*RequestedMealStore)(nil)

// NewRequestedMealStore creates a RequestedMealStore using the given
// database handle.
func NewRequestedMealStore(db *DB) *RequestedMealStore {
	return &RequestedMealStore{coll: db.Collection(requestCollection)}
}

// Create inserts the meal request and returns its identifier.
func (s *RequestedMealStore) Create(ctx context.Context, req *domain.RequestedMeal) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, req)
}

// ListScoped returns requests limited to a requester email and/or a
// name-or-email search. The full matching set is returned; pagination
// of the aggregated output happens in memory downstream.
func (s *RequestedMealStore) ListScoped(ctx context.Context, email, search string) ([]domain.RequestedMeal, error) {
	filter := bson.M{}
	if email != "" {
		filter["userEmail"] = email
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"userName": ciRegex(search)},
			bson.M{"userEmail": ciRegex(search)},
		}
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list requested meals: %w", err)
	}

	var requests []domain.RequestedMeal
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requested meals: %w", err)
	}
	return requests, nil
}

// SetStatus updates the delivery status of the matched request.
func (s *RequestedMealStore) SetStatus(ctx context.Context, id bson.ObjectID, status domain.RequestStatus) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to set request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrRequestNotFound
	}
	return nil
}

// Delete removes the matched request.
func (s *RequestedMealStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete requested meal: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrRequestNotFound
	}
	return nil
}
