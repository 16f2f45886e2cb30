// Package domain defines the core entities of the meal-management
// system: users, meals, reviews, meal requests, payments and membership
// tiers. Entities carry bson tags matching the collection documents and
// json tags matching the API wire format.
package domain
