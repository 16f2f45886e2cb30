package mongodb

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const reviewCollection = "reviews"

// ReviewStore implements store.ReviewStore backed by the reviews
// collection.
type ReviewStore struct {
	coll *mongo.Collection
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore creates a ReviewStore using the given database handle.
func NewReviewStore(db *DB) *ReviewStore {
	return &ReviewStore{coll: db.Collection(reviewCollection)}
}

// List returns reviews matching the query and the total matching count.
func (s *ReviewStore) List(ctx context.Context, q store.ListQuery) ([]domain.Review, int64, error) {
	filter := buildFilter(q, "userName", "userEmail")

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	cursor, err := s.coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, total, nil
}

// Create inserts the review and returns the generated identifier.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, review)
}

// Update replaces the details text and rating of the matched review.
func (s *ReviewStore) Update(ctx context.Context, id bson.ObjectID, details string, rating float64) error {
	update := bson.M{"$set": bson.M{"details": details, "rating": rating}}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrReviewNotFound
	}
	return nil
}

// Delete removes the matched review.
func (s *ReviewStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrReviewNotFound
	}
	return nil
}

// IncrementLikes bumps the review's like counter atomically.
func (s *ReviewStore) IncrementLikes(ctx context.Context, id bson.ObjectID) error {
	return incrementField(ctx, s.coll, id, "likes", store.ErrReviewNotFound)
}
