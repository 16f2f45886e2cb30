package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	mealCollection     = "meals"
	upcomingCollection = "upcomingMeals"
)

// MealStore implements store.MealStore backed by the meals collection.
type MealStore struct {
	coll *mongo.Collection
}

var _ store.MealStore = (*MealStore)(nil)

// NewMealStore creates a MealStore using the given database handle.
func NewMealStore(db *DB) *MealStore {
	return &MealStore{coll: db.Collection(mealCollection)}
}

// List returns meals matching the query and the total matching count.
func (s *MealStore) List(ctx context.Context, q store.ListQuery) ([]domain.Meal, int64, error) {
	return listMeals(ctx, s.coll, q)
}

// GetByID retrieves a single meal.
func (s *MealStore) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Meal, error) {
	var meal domain.Meal
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &meal, nil
}

// Create inserts the meal and returns the generated identifier.
func (s *MealStore) Create(ctx context.Context, meal *domain.Meal) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, meal)
}

// Update applies a $set of the given fields to the matched meal only.
func (s *MealStore) Update(ctx context.Context, id bson.ObjectID, fields map[string]any) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrMealNotFound
	}
	return nil
}

// Delete removes the matched meal.
func (s *MealStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrMealNotFound
	}
	return nil
}

// IncrementLikes bumps the like counter atomically.
func (s *MealStore) IncrementLikes(ctx context.Context, id bson.ObjectID) error {
	return incrementField(ctx, s.coll, id, "likes", store.ErrMealNotFound)
}

// IncrementReviews bumps the review counter atomically.
func (s *MealStore) IncrementReviews(ctx context.Context, id bson.ObjectID) error {
	return incrementField(ctx, s.coll, id, "reviews", store.ErrMealNotFound)
}

// Summaries fetches the join projection for the given meal IDs.
func (s *MealStore) Summaries(ctx context.Context, ids []bson.ObjectID) ([]domain.MealSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	projection := bson.M{"mealTitle": 1, "likes": 1, "reviews": 1}
	cursor, err := s.coll.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal summaries: %w", err)
	}

	var summaries []domain.MealSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode meal summaries: %w", err)
	}
	return summaries, nil
}

// UpcomingMealStore implements store.UpcomingMealStore backed by the
// upcomingMeals collection.
type UpcomingMealStore struct {
	coll *mongo.Collection
}

var _ store.UpcomingMealStore = (*UpcomingMealStore)(nil)

// NewUpcomingMealStore creates an UpcomingMealStore using the given
// database handle.
func NewUpcomingMealStore(db *DB) *UpcomingMealStore {
	return &UpcomingMealStore{coll: db.Collection(upcomingCollection)}
}

// List returns upcoming meals matching the query and the total count.
func (s *UpcomingMealStore) List(ctx context.Context, q store.ListQuery) ([]domain.Meal, int64, error) {
	return listMeals(ctx, s.coll, q)
}

// GetByID retrieves a single upcoming meal.
func (s *UpcomingMealStore) GetByID(ctx context.Context, id bson.ObjectID) (*domain.Meal, error) {
	var meal domain.Meal
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get upcoming meal: %w", err)
	}
	return &meal, nil
}

// Create inserts the upcoming meal and returns its identifier.
func (s *UpcomingMealStore) Create(ctx context.Context, meal *domain.Meal) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, meal)
}

// Delete removes the matched upcoming meal.
func (s *UpcomingMealStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete upcoming meal: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrMealNotFound
	}
	return nil
}

// listMeals runs the shared count+find sequence for both meal
// collections.
func listMeals(ctx context.Context, coll *mongo.Collection, q store.ListQuery) ([]domain.Meal, int64, error) {
	filter := buildFilter(q, "adminName", "adminEmail")

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count meals: %w", err)
	}

	cursor, err := coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meals: %w", err)
	}

	var meals []domain.Meal
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, 0, fmt.Errorf("failed to decode meals: %w", err)
	}
	return meals, total, nil
}

// insertOne inserts a document and extracts its generated ObjectID.
func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (bson.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("failed to insert document: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return id, nil
}

// incrementField performs an atomic $inc by one on a numeric field.
func incrementField(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, field string, notFound error) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}
