package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Common validation errors
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("name cannot be empty")
)

// Role identifies the authorization level of a user.
type Role string

const (
	// RoleAdmin grants access to the admin-gated endpoints.
	RoleAdmin Role = "Admin"

	// RoleMember is the default role assigned on registration.
	RoleMember Role = "Member"
)

// Badge is the membership badge tier shown on a user's profile.
// New users start at Bronze; paid upgrades move them to a higher tier.
type Badge string

const (
	BadgeBronze   Badge = "Bronze"
	BadgeSilver   Badge = "Silver"
	BadgeGold     Badge = "Gold"
	BadgePlatinum Badge = "Platinum"
)

// User represents a registered member of the hostel meal service.
// Email is the unique lookup key; registration is idempotent on it.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name"          json:"name"`
	Email     string        `bson:"email"         json:"email"`
	Role      Role          `bson:"userRole"      json:"userRole"`
	Badge     Badge         `bson:"userBadge"     json:"userBadge"`
	CreatedAt time.Time     `bson:"createdAt"     json:"createdAt"`
}

// NewUser creates a member-role user with the default Bronze badge.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		Role:      RoleMember,
		Badge:     BadgeBronze,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User has usable identity fields.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// IsAdmin reports whether the user passes the admin gate.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
