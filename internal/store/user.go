package store

import (
	"context"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and returns its identifier.
	// Callers are expected to check for an existing email first; the
	// registration endpoint's create-if-absent semantics live in the
	// handler, not here.
	Create(ctx context.Context, user *domain.User) (bson.ObjectID, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns users matching the query plus the total matching
	// count. NameEmailSearch drives the admin search box.
	List(ctx context.Context, q ListQuery) ([]domain.User, int64, error)

	// SetRole updates the single matched user's role.
	// Returns ErrUserNotFound if nothing matched.
	SetRole(ctx context.Context, id bson.ObjectID, role domain.Role) error

	// SetBadge updates the badge of the user with the given email.
	// Returns ErrUserNotFound if nothing matched.
	SetBadge(ctx context.Context, email string, badge domain.Badge) error
}
