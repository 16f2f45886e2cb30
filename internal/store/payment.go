package store

import (
	"context"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PaymentStore defines the interface for payment-record persistence.
// Records are append-only; there are no update or delete operations.
type PaymentStore interface {
	// Create inserts a payment record and returns its identifier.
	Create(ctx context.Context, payment *domain.Payment) (bson.ObjectID, error)

	// ListByEmail returns the payment history for the given payer.
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

// MembershipStore provides read-only access to membership tiers.
type MembershipStore interface {
	// List returns all membership tiers.
	List(ctx context.Context) ([]domain.MembershipTier, error)
}
