package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mealmasterhq/meal-master-api/internal/api/shared"
	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Test fakes for the store interfaces. Each records the calls the
// handlers make so tests can assert on ordering and arguments.

type fakeUserStore struct {
	users     map[string]*domain.User
	createErr error
	created   []*domain.User
	roles     map[bson.ObjectID]domain.Role
	badges    map[string]domain.Badge
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{
		users:  make(map[string]*domain.User),
		roles:  make(map[bson.ObjectID]domain.Role),
		badges: make(map[string]domain.Badge),
	}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) (bson.ObjectID, error) {
	if s.createErr != nil {
		return bson.ObjectID{}, s.createErr
	}
	id := bson.NewObjectID()
	user.ID = id
	s.users[user.Email] = user
	s.created = append(s.created, user)
	return id, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) List(_ context.Context, _ store.ListQuery) ([]domain.User, int64, error) {
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

func (s *fakeUserStore) SetRole(_ context.Context, id bson.ObjectID, role domain.Role) error {
	s.roles[id] = role
	return nil
}

func (s *fakeUserStore) SetBadge(_ context.Context, email string, badge domain.Badge) error {
	if _, ok := s.users[email]; !ok {
		return store.ErrUserNotFound
	}
	s.badges[email] = badge
	return nil
}

type fakeMealStore struct {
	meals     map[bson.ObjectID]*domain.Meal
	createErr error
	likes     map[bson.ObjectID]int
	reviews   map[bson.ObjectID]int
	updated   map[bson.ObjectID]map[string]any
	deleted   []bson.ObjectID
	inserted  []*domain.Meal
	summaries []domain.MealSummary
}

func newFakeMealStore(meals ...*domain.Meal) *fakeMealStore {
	s := &fakeMealStore{
		meals:   make(map[bson.ObjectID]*domain.Meal),
		likes:   make(map[bson.ObjectID]int),
		reviews: make(map[bson.ObjectID]int),
		updated: make(map[bson.ObjectID]map[string]any),
	}
	for _, m := range meals {
		s.meals[m.ID] = m
	}
	return s
}

func (s *fakeMealStore) List(_ context.Context, _ store.ListQuery) ([]domain.Meal, int64, error) {
	meals := make([]domain.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		meals = append(meals, *m)
	}
	return meals, int64(len(meals)), nil
}

func (s *fakeMealStore) GetByID(_ context.Context, id bson.ObjectID) (*domain.Meal, error) {
	meal, ok := s.meals[id]
	if !ok {
		return nil, store.ErrMealNotFound
	}
	return meal, nil
}

func (s *fakeMealStore) Create(_ context.Context, meal *domain.Meal) (bson.ObjectID, error) {
	if s.createErr != nil {
		return bson.ObjectID{}, s.createErr
	}
	if meal.ID.IsZero() {
		meal.ID = bson.NewObjectID()
	}
	s.meals[meal.ID] = meal
	s.inserted = append(s.inserted, meal)
	return meal.ID, nil
}

func (s *fakeMealStore) Update(_ context.Context, id bson.ObjectID, fields map[string]any) error {
	if _, ok := s.meals[id]; !ok {
		return store.ErrMealNotFound
	}
	s.updated[id] = fields
	return nil
}

func (s *fakeMealStore) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.meals[id]; !ok {
		return store.ErrMealNotFound
	}
	delete(s.meals, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeMealStore) IncrementLikes(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.meals[id]; !ok {
		return store.ErrMealNotFound
	}
	s.likes[id]++
	return nil
}

func (s *fakeMealStore) IncrementReviews(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.meals[id]; !ok {
		return store.ErrMealNotFound
	}
	s.reviews[id]++
	return nil
}

func (s *fakeMealStore) Summaries(_ context.Context, ids []bson.ObjectID) ([]domain.MealSummary, error) {
	if s.summaries != nil {
		return s.summaries, nil
	}
	result := make([]domain.MealSummary, 0, len(ids))
	for _, id := range ids {
		if meal, ok := s.meals[id]; ok {
			result = append(result, domain.MealSummary{
				ID:      meal.ID,
				Title:   meal.Title,
				Likes:   meal.Likes,
				Reviews: meal.Reviews,
			})
		}
	}
	return result, nil
}

type fakeUpcomingStore struct {
	meals     map[bson.ObjectID]*domain.Meal
	deleteErr error
	deleted   []bson.ObjectID
}

func newFakeUpcomingStore(meals ...*domain.Meal) *fakeUpcomingStore {
	s := &fakeUpcomingStore{meals: make(map[bson.ObjectID]*domain.Meal)}
	for _, m := range meals {
		s.meals[m.ID] = m
	}
	return s
}

func (s *fakeUpcomingStore) List(_ context.Context, _ store.ListQuery) ([]domain.Meal, int64, error) {
	meals := make([]domain.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		meals = append(meals, *m)
	}
	return meals, int64(len(meals)), nil
}

func (s *fakeUpcomingStore) GetByID(_ context.Context, id bson.ObjectID) (*domain.Meal, error) {
	meal, ok := s.meals[id]
	if !ok {
		return nil, store.ErrMealNotFound
	}
	return meal, nil
}

func (s *fakeUpcomingStore) Create(_ context.Context, meal *domain.Meal) (bson.ObjectID, error) {
	if meal.ID.IsZero() {
		meal.ID = bson.NewObjectID()
	}
	s.meals[meal.ID] = meal
	return meal.ID, nil
}

func (s *fakeUpcomingStore) Delete(_ context.Context, id bson.ObjectID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.meals[id]; !ok {
		return store.ErrMealNotFound
	}
	delete(s.meals, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakeRequestStore struct {
	requests map[bson.ObjectID]*domain.RequestedMeal
	scoped   []domain.RequestedMeal
	statuses map[bson.ObjectID]domain.RequestStatus

	lastScopeEmail  string
	lastScopeSearch string
}

func newFakeRequestStore(requests ...domain.RequestedMeal) *fakeRequestStore {
	s := &fakeRequestStore{
		requests: make(map[bson.ObjectID]*domain.RequestedMeal),
		scoped:   requests,
		statuses: make(map[bson.ObjectID]domain.RequestStatus),
	}
	for i := range requests {
		s.requests[requests[i].ID] = &requests[i]
	}
	return s
}

func (s *fakeRequestStore) Create(_ context.Context, req *domain.RequestedMeal) (bson.ObjectID, error) {
	req.ID = bson.NewObjectID()
	s.requests[req.ID] = req
	return req.ID, nil
}

func (s *fakeRequestStore) ListScoped(_ context.Context, email, search string) ([]domain.RequestedMeal, error) {
	s.lastScopeEmail = email
	s.lastScopeSearch = search
	if email == "" {
		return s.scoped, nil
	}
	var result []domain.RequestedMeal
	for _, req := range s.scoped {
		if req.UserEmail == email {
			result = append(result, req)
		}
	}
	return result, nil
}

func (s *fakeRequestStore) SetStatus(_ context.Context, id bson.ObjectID, status domain.RequestStatus) error {
	if _, ok := s.requests[id]; !ok {
		return store.ErrRequestNotFound
	}
	s.statuses[id] = status
	return nil
}

func (s *fakeRequestStore) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.requests[id]; !ok {
		return store.ErrRequestNotFound
	}
	delete(s.requests, id)
	return nil
}

// Request construction helpers.

// authedRequest builds a request carrying the authenticated email the
// way the middleware would set it.
func authedRequest(t *testing.T, method, target, body, email string) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		r = r.WithContext(context.WithValue(r.Context(), shared.UserEmailContextKey, email))
	}
	return r
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
