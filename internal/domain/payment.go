package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment is a record of a confirmed payment. Records are immutable
// once inserted; history queries are scoped to the payer's email.
type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName      string        `bson:"userName"      json:"userName,omitempty"`
	UserEmail     string        `bson:"userEmail"     json:"userEmail"`
	Amount        float64       `bson:"amount"        json:"amount"`
	Badge         Badge         `bson:"badge"         json:"badge,omitempty"`
	TransactionID string        `bson:"transactionId" json:"transactionId,omitempty"`
	PaidAt        time.Time     `bson:"paidAt"        json:"paidAt"`
}

// MembershipTier is read-only reference data describing a purchasable
// badge tier.
type MembershipTier struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string        `bson:"name"          json:"name"`
	Badge Badge         `bson:"badge"         json:"badge"`
	Price float64       `bson:"price"         json:"price"`
	Perks []string      `bson:"perks"         json:"perks,omitempty"`
}
