// Package mealrequest joins requested-meal records with their parent
// meal documents and produces the status-ordered, paginated view used
// by the requested-meal listing.
package mealrequest

import (
	"sort"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Row is one flattened output entry: the joined meal projection plus a
// single requested-meal record.
type Row struct {
	MealID      bson.ObjectID        `json:"mealId"`
	MealTitle   string               `json:"mealTitle"`
	Likes       int64                `json:"likes"`
	Reviews     int64                `json:"reviews"`
	RequestID   bson.ObjectID        `json:"requestId"`
	UserName    string               `json:"userName"`
	UserEmail   string               `json:"userEmail"`
	Status      domain.RequestStatus `json:"status"`
	RequestedAt time.Time            `json:"requestedAt"`
}

// Page is the paginated aggregation output.
type Page struct {
	Items      []Row `json:"result"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPagesCount"`
	Page       int64 `json:"page"`
	PerPage    int64 `json:"perPage"`
}

// Aggregate runs the fixed join-group-sort-flatten pipeline:
//
//  1. group the request records by their referenced meal ID,
//  2. stable-sort each group by status (Pending before Delivered),
//  3. flatten one row per request, following the order meals were
//     fetched in,
//  4. stable re-sort the flattened list globally by the same ranking,
//  5. paginate the result in memory.
//
// The two-stage sort is observable in the output ordering and must not
// be collapsed into a single pass: within a status bucket, rows keep
// the relative meal order from the flatten step.
func Aggregate(requests []domain.RequestedMeal, meals []domain.MealSummary, page, perPage int64) Page {
	groups := make(map[bson.ObjectID][]domain.RequestedMeal, len(meals))
	for _, req := range requests {
		groups[req.MealID] = append(groups[req.MealID], req)
	}

	// Per-group stable sort by status rank; ties keep insertion order.
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Status.Rank() < group[j].Status.Rank()
		})
	}

	// Flatten in meal fetch order.
	rows := make([]Row, 0, len(requests))
	for _, meal := range meals {
		for _, req := range groups[meal.ID] {
			rows = append(rows, Row{
				MealID:      meal.ID,
				MealTitle:   meal.Title,
				Likes:       meal.Likes,
				Reviews:     meal.Reviews,
				RequestID:   req.ID,
				UserName:    req.UserName,
				UserEmail:   req.UserEmail,
				Status:      req.Status,
				RequestedAt: req.RequestedAt,
			})
		}
	}

	// Global stable re-sort by the same ranking.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Status.Rank() < rows[j].Status.Rank()
	})

	return paginate(rows, page, perPage)
}

// paginate slices the flattened rows in memory.
func paginate(rows []Row, page, perPage int64) Page {
	if page < 1 {
		page = store.DefaultPage
	}
	if perPage < 1 {
		perPage = store.DefaultLimit
	}

	total := int64(len(rows))
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      rows[start:end],
		TotalItems: total,
		TotalPages: store.TotalPages(total, perPage),
		Page:       page,
		PerPage:    perPage,
	}
}
