package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Meal validation errors
var (
	ErrEmptyMealTitle    = errors.New("meal title cannot be empty")
	ErrEmptyMealType     = errors.New("meal type cannot be empty")
	ErrNegativeMealPrice = errors.New("meal price cannot be negative")
)

// Meal is a published meal on the hostel menu. The same shape is stored
// in the upcoming-meals collection before an admin publishes it.
type Meal struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string        `bson:"mealTitle"     json:"mealTitle"`
	Type        string        `bson:"mealType"      json:"mealType"`
	Image       string        `bson:"mealImage"     json:"mealImage,omitempty"`
	Ingredients []string      `bson:"ingredients"   json:"ingredients,omitempty"`
	Description string        `bson:"description"   json:"description,omitempty"`
	Price       float64       `bson:"price"         json:"price"`
	Rating      float64       `bson:"rating"        json:"rating"`
	PostTime    time.Time     `bson:"postTime"      json:"postTime"`
	Likes       int64         `bson:"likes"         json:"likes"`
	Reviews     int64         `bson:"reviews"       json:"reviews"`
	AdminName   string        `bson:"adminName"     json:"adminName,omitempty"`
	AdminEmail  string        `bson:"adminEmail"    json:"adminEmail,omitempty"`
}

// Validate checks the required meal fields.
func (m *Meal) Validate() error {
	if m.Title == "" {
		return ErrEmptyMealTitle
	}
	if m.Type == "" {
		return ErrEmptyMealType
	}
	if m.Price < 0 {
		return ErrNegativeMealPrice
	}
	return nil
}

// MealSummary is the projection of a meal used when joining requested
// meals to their parent records: identifier, title and the counters.
type MealSummary struct {
	ID      bson.ObjectID `bson:"_id"       json:"_id"`
	Title   string        `bson:"mealTitle" json:"mealTitle"`
	Likes   int64         `bson:"likes"     json:"likes"`
	Reviews int64         `bson:"reviews"   json:"reviews"`
}
