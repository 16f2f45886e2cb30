package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review is a member's review of a meal. Likes are bumped through an
// atomic counter update, never read-modify-write.
type Review struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID    bson.ObjectID `bson:"mealId"        json:"mealId"`
	MealTitle string        `bson:"mealTitle"     json:"mealTitle,omitempty"`
	UserName  string        `bson:"userName"      json:"userName,omitempty"`
	UserEmail string        `bson:"userEmail"     json:"userEmail"`
	Rating    float64       `bson:"rating"        json:"rating"`
	Likes     int64         `bson:"likes"         json:"likes"`
	Details   string        `bson:"details"       json:"details"`
	CreatedAt time.Time     `bson:"createdAt"     json:"createdAt"`
}
