package api

import "github.com/mealmasterhq/meal-master-api/internal/domain"

// Request models. Every body is validated at the boundary before a
// handler touches the stores.

// AccessTokenRequest is the body for POST /auth/access-token.
type AccessTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateUserRequest is the body for POST /auth/users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// BadgeUpdateRequest is the body for POST /auth/user/{email}.
type BadgeUpdateRequest struct {
	Badge domain.Badge `json:"badge" validate:"required,oneof=Bronze Silver Gold Platinum"`
}

// CreateMealRequest is the body for POST /meal and POST /upcoming-meal.
type CreateMealRequest struct {
	Title       string   `json:"mealTitle" validate:"required"`
	Type        string   `json:"mealType" validate:"required"`
	Image       string   `json:"mealImage"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	AdminName   string   `json:"adminName"`
	AdminEmail  string   `json:"adminEmail" validate:"omitempty,email"`
}

// UpdateMealRequest is the body for PATCH /update-meal/{id}. All fields
// are optional; only the provided ones are written.
type UpdateMealRequest struct {
	Title       *string   `json:"mealTitle"`
	Type        *string   `json:"mealType"`
	Image       *string   `json:"mealImage"`
	Ingredients *[]string `json:"ingredients"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Fields returns the partial-update document for the provided values.
func (r *UpdateMealRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Title != nil {
		fields["mealTitle"] = *r.Title
	}
	if r.Type != nil {
		fields["mealType"] = *r.Type
	}
	if r.Image != nil {
		fields["mealImage"] = *r.Image
	}
	if r.Ingredients != nil {
		fields["ingredients"] = *r.Ingredients
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Rating != nil {
		fields["rating"] = *r.Rating
	}
	return fields
}

// CreateReviewRequest is the body for POST /reviews. The reviewer email
// comes from the verified token, never from the body.
type CreateReviewRequest struct {
	MealID    string  `json:"mealId" validate:"required"`
	MealTitle string  `json:"mealTitle"`
	UserName  string  `json:"userName"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	Details   string  `json:"details" validate:"required"`
}

// UpdateReviewRequest is the body for PATCH /updated-review/{id}.
type UpdateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"gte=0,lte=5"`
	Details string  `json:"details" validate:"required"`
}

// CreateRequestedMealRequest is the body for POST /requested-meal. The
// requester email comes from the verified token.
type CreateRequestedMealRequest struct {
	MealID    string `json:"mealId" validate:"required"`
	MealTitle string `json:"mealTitle"`
	UserName  string `json:"userName" validate:"required"`
}

// PaymentIntentRequest is the body for POST /auth/create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentRequest is the body for POST /auth/payments-history.
type CreatePaymentRequest struct {
	UserName      string       `json:"userName"`
	Amount        float64      `json:"amount" validate:"required,gt=0"`
	Badge         domain.Badge `json:"badge" validate:"omitempty,oneof=Bronze Silver Gold Platinum"`
	TransactionID string       `json:"transactionId"`
}

// Response models.

// ListResponse wraps paginated list results.
type ListResponse struct {
	Result          any   `json:"result"`
	TotalPagesCount int64 `json:"totalPagesCount"`
}

// InsertResponse reports a successful insert.
type InsertResponse struct {
	InsertedID any `json:"insertedId"`
}

// UpdateResponse reports a successful single-document update.
type UpdateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse reports a successful single-document delete.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserExistsResponse is the sentinel result for an idempotent
// registration hitting an existing email.
type UserExistsResponse struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}

// UserAccessResponse is the role/badge projection for GET /auth/user/{email}.
type UserAccessResponse struct {
	Email string       `json:"email"`
	Role  domain.Role  `json:"userRole"`
	Badge domain.Badge `json:"userBadge"`
}

// PaymentIntentResponse carries the Stripe client confirmation secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
