package mongodb

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	paymentCollection    = "payments"
	membershipCollection = "memberships"
)

// PaymentStore implements store.PaymentStore backed by the payments
// collection. Payment records are append-only.
type PaymentStore struct {
	coll *mongo.Collection
}

var _ store.PaymentStore = (*PaymentStore)(nil)

// NewPaymentStore creates a PaymentStore using the given database handle.
func NewPaymentStore(db *DB) *PaymentStore {
	return &PaymentStore{coll: db.Collection(paymentCollection)}
}

// Create inserts the payment record and returns its identifier.
func (s *PaymentStore) Create(ctx context.Context, payment *domain.Payment) (bson.ObjectID, error) {
	return insertOne(ctx, s.coll, payment)
}

// ListByEmail returns the payer's history, newest first.
func (s *PaymentStore) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// MembershipStore implements store.MembershipStore backed by the
// memberships collection. Tiers are read-only reference data.
type MembershipStore struct {
	coll *mongo.Collection
}

var _ store.MembershipStore = (*MembershipStore)(nil)

// NewMembershipStore creates a MembershipStore using the given database
// handle.
func NewMembershipStore(db *DB) *MembershipStore {
	return &MembershipStore{coll: db.Collection(membershipCollection)}
}

// List returns all membership tiers.
func (s *MembershipStore) List(ctx context.Context) ([]domain.MembershipTier, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list membership tiers: %w", err)
	}

	var tiers []domain.MembershipTier
	if err := cursor.All(ctx, &tiers); err != nil {
		return nil, fmt.Errorf("failed to decode membership tiers: %w", err)
	}
	return tiers, nil
}
