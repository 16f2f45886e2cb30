package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const userCollection = "users"

// UserStore implements store.UserStore backed by the users collection.
type UserStore struct {
	coll *mongo.Collection
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore using the given database handle.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{coll: db.Collection(userCollection)}
}

// Create inserts the user and returns the generated identifier.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, user)
}

// GetByEmail looks up a user by their unique email key.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// List returns users matching the query and the total matching count.
func (s *UserStore) List(ctx context.Context, q store.ListQuery) ([]domain.User, int64, error) {
	filter := buildFilter(q, "name", "email")

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	cursor, err := s.coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, total, nil
}

// SetRole updates the matched user's role.
func (s *UserStore) SetRole(ctx context.Context, id bson.ObjectID, role domain.Role) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"userRole": role}})
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// SetBadge updates the badge of the user with the given email.
func (s *UserStore) SetBadge(ctx context.Context, email string, badge domain.Badge) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"userBadge": badge}})
	if err != nil {
		return fmt.Errorf("failed to set user badge: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}
