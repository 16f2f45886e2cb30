package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequestStatus is the delivery state of a requested meal.
type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusDelivered RequestStatus = "Delivered"
)

// Rank returns the fixed ordering used when sorting requests by status:
// Pending sorts before Delivered. Unknown statuses sort last.
func (s RequestStatus) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusDelivered:
		return 1
	default:
		return 2
	}
}

// RequestedMeal is a member's request for a meal to be served. Status
// moves from Pending to Delivered when an admin serves it.
type RequestedMeal struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID      bson.ObjectID `bson:"mealId"        json:"mealId"`
	MealTitle   string        `bson:"mealTitle"     json:"mealTitle,omitempty"`
	UserName    string        `bson:"userName"      json:"userName"`
	UserEmail   string        `bson:"userEmail"     json:"userEmail"`
	Status      RequestStatus `bson:"status"        json:"status"`
	RequestedAt time.Time     `bson:"requestedAt"   json:"requestedAt"`
}
