package mealrequest

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service composes the request and meal stores into the aggregated
// requested-meal listing.
type Service struct {
	requests store.RequestedMealStore
	meals    store.MealStore
}

// NewService creates a Service with the given store dependencies.
func NewService(requests store.RequestedMealStore, meals store.MealStore) *Service {
	return &Service{
		requests: requests,
		meals:    meals,
	}
}

// ListRequested fetches the caller-visible request records, joins them
// to their parent meals and returns one status-ordered page. An empty
// email means admin scope (all requests); search applies the
// name-or-email match.
func (s *Service) ListRequested(ctx context.Context, email, search string, page, perPage int64) (*Page, error) {
	requests, err := s.requests.ListScoped(ctx, email, search)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requested meals: %w", err)
	}

	ids := distinctMealIDs(requests)
	meals, err := s.meals.Summaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal summaries: %w", err)
	}

	result := Aggregate(requests, meals, page, perPage)
	return &result, nil
}

// distinctMealIDs collects referenced meal IDs, first occurrence wins.
func distinctMealIDs(requests []domain.RequestedMeal) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{}, len(requests))
	ids := make([]bson.ObjectID, 0, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.MealID]; ok {
			continue
		}
		seen[req.MealID] = struct{}{}
		ids = append(ids, req.MealID)
	}
	return ids
}
