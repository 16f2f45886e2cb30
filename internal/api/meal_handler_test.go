package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMealListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		wantQuery store.ListQuery
	}{
		{
			name:   "defaults with no parameters",
			target: "/api/v1/meals",
			wantQuery: store.ListQuery{
				Eq:    map[string]string{},
				Page:  1,
				Limit: 10,
			},
		},
		{
			name:   "filter search sort and pagination",
			target: "/api/v1/meals?mealType=Dinner&mealTitle=rice&sort=desc&pages=3&limit=5",
			wantQuery: store.ListQuery{
				Eq:          map[string]string{"mealType": "Dinner"},
				SearchField: "mealTitle",
				SearchText:  "rice",
				SortField:   "price",
				SortDir:     store.SortDesc,
				Page:        3,
				Limit:       5,
			},
		},
		{
			name:   "malformed pagination falls back to defaults",
			target: "/api/v1/meals?pages=abc&limit=-2",
			wantQuery: store.ListQuery{
				Eq:    map[string]string{},
				Page:  1,
				Limit: 10,
			},
		},
		{
			name:   "unknown sort token means no sort",
			target: "/api/v1/meals?sort=sideways",
			wantQuery: store.ListQuery{
				Eq:    map[string]string{},
				Page:  1,
				Limit: 10,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			got := mealListQuery(r, "price")
			assert.Equal(t, tc.wantQuery, got)
		})
	}
}

func TestCreateMeal(t *testing.T) {
	t.Parallel()

	t.Run("inserts validated meal and returns its id", func(t *testing.T) {
		t.Parallel()
		meals := newFakeMealStore()
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		body := `{"mealTitle":"Chicken Biryani","mealType":"Dinner","price":12.5,"rating":4.5}`
		r := authedRequest(t, http.MethodPost, "/api/v1/meal", body, "admin@example.com")
		w := httptest.NewRecorder()
		handler.CreateMeal(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, meals.inserted, 1)
		assert.Equal(t, "Chicken Biryani", meals.inserted[0].Title)
		assert.False(t, meals.inserted[0].PostTime.IsZero())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["insertedId"])
	})

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()
		meals := newFakeMealStore()
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		r := authedRequest(t, http.MethodPost, "/api/v1/meal",
			`{"mealType":"Dinner","price":10}`, "admin@example.com")
		w := httptest.NewRecorder()
		handler.CreateMeal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, meals.inserted)
	})
}

func TestUpdateMeal(t *testing.T) {
	t.Parallel()

	t.Run("writes only the provided fields", func(t *testing.T) {
		t.Parallel()
		meal := &domain.Meal{ID: bson.NewObjectID(), Title: "Old", Type: "Lunch", Price: 8}
		meals := newFakeMealStore(meal)
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		r := authedRequest(t, http.MethodPatch, "/api/v1/update-meal/"+meal.ID.Hex(),
			`{"price":9.5}`, "admin@example.com")
		r = withURLParam(r, "id", meal.ID.Hex())
		w := httptest.NewRecorder()
		handler.UpdateMeal(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"price": 9.5}, meals.updated[meal.ID])
	})

	t.Run("rejects empty update", func(t *testing.T) {
		t.Parallel()
		meal := &domain.Meal{ID: bson.NewObjectID(), Title: "Old", Type: "Lunch"}
		meals := newFakeMealStore(meal)
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		r := authedRequest(t, http.MethodPatch, "/api/v1/update-meal/"+meal.ID.Hex(),
			`{}`, "admin@example.com")
		r = withURLParam(r, "id", meal.ID.Hex())
		w := httptest.NewRecorder()
		handler.UpdateMeal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, meals.updated)
	})

	t.Run("maps unknown id to 404", func(t *testing.T) {
		t.Parallel()
		meals := newFakeMealStore()
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		id := bson.NewObjectID()
		r := authedRequest(t, http.MethodPatch, "/api/v1/update-meal/"+id.Hex(),
			`{"price":1}`, "admin@example.com")
		r = withURLParam(r, "id", id.Hex())
		w := httptest.NewRecorder()
		handler.UpdateMeal(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLikeMeal(t *testing.T) {
	t.Parallel()

	t.Run("each call increments exactly once", func(t *testing.T) {
		t.Parallel()
		meal := &domain.Meal{ID: bson.NewObjectID(), Title: "Pasta", Type: "Dinner"}
		meals := newFakeMealStore(meal)
		handler := NewMealHandler(meals, newFakeUpcomingStore())

		for i := 0; i < 3; i++ {
			r := authedRequest(t, http.MethodPost, "/api/v1/meal/like-update/"+meal.ID.Hex(), "", "member@example.com")
			r = withURLParam(r, "id", meal.ID.Hex())
			w := httptest.NewRecorder()
			handler.LikeMeal(w, r)
			require.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, 3, meals.likes[meal.ID])
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		t.Parallel()
		handler := NewMealHandler(newFakeMealStore(), newFakeUpcomingStore())

		r := authedRequest(t, http.MethodPost, "/api/v1/meal/like-update/nothex", "", "member@example.com")
		r = withURLParam(r, "id", "nothex")
		w := httptest.NewRecorder()
		handler.LikeMeal(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPublishUpcomingMeal(t *testing.T) {
	t.Parallel()

	t.Run("copies the meal then removes the upcoming original", func(t *testing.T) {
		t.Parallel()
		upcomingMeal := &domain.Meal{ID: bson.NewObjectID(), Title: "Preview", Type: "Dinner", Likes: 12}
		meals := newFakeMealStore()
		upcoming := newFakeUpcomingStore(upcomingMeal)
		handler := NewMealHandler(meals, upcoming)

		r := authedRequest(t, http.MethodPost, "/api/v1/upcoming-meal-publish/"+upcomingMeal.ID.Hex(), "", "admin@example.com")
		r = withURLParam(r, "id", upcomingMeal.ID.Hex())
		w := httptest.NewRecorder()
		handler.PublishUpcomingMeal(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, meals.inserted, 1)
		assert.Equal(t, upcomingMeal.ID, meals.inserted[0].ID, "published meal keeps its identifier")
		assert.Equal(t, []bson.ObjectID{upcomingMeal.ID}, upcoming.deleted)
	})

	t.Run("insert failure leaves the upcoming meal untouched", func(t *testing.T) {
		t.Parallel()
		upcomingMeal := &domain.Meal{ID: bson.NewObjectID(), Title: "Preview", Type: "Dinner"}
		meals := newFakeMealStore()
		meals.createErr = errors.New("write failed")
		upcoming := newFakeUpcomingStore(upcomingMeal)
		handler := NewMealHandler(meals, upcoming)

		r := authedRequest(t, http.MethodPost, "/api/v1/upcoming-meal-publish/"+upcomingMeal.ID.Hex(), "", "admin@example.com")
		r = withURLParam(r, "id", upcomingMeal.ID.Hex())
		w := httptest.NewRecorder()
		handler.PublishUpcomingMeal(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, upcoming.deleted, "delete must not run after a failed insert")
		assert.Contains(t, upcoming.meals, upcomingMeal.ID)
	})

	t.Run("delete failure after insert surfaces the error", func(t *testing.T) {
		t.Parallel()
		upcomingMeal := &domain.Meal{ID: bson.NewObjectID(), Title: "Preview", Type: "Dinner"}
		meals := newFakeMealStore()
		upcoming := newFakeUpcomingStore(upcomingMeal)
		upcoming.deleteErr = errors.New("delete failed")
		handler := NewMealHandler(meals, upcoming)

		r := authedRequest(t, http.MethodPost, "/api/v1/upcoming-meal-publish/"+upcomingMeal.ID.Hex(), "", "admin@example.com")
		r = withURLParam(r, "id", upcomingMeal.ID.Hex())
		w := httptest.NewRecorder()
		handler.PublishUpcomingMeal(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// The meal was still published; only the cleanup failed.
		require.Len(t, meals.inserted, 1)
	})

	t.Run("unknown upcoming meal maps to 404", func(t *testing.T) {
		t.Parallel()
		handler := NewMealHandler(newFakeMealStore(), newFakeUpcomingStore())

		id := bson.NewObjectID()
		r := authedRequest(t, http.MethodPost, "/api/v1/upcoming-meal-publish/"+id.Hex(), "", "admin@example.com")
		r = withURLParam(r, "id", id.Hex())
		w := httptest.NewRecorder()
		handler.PublishUpcomingMeal(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
