package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mealmasterhq/meal-master-api/internal/domain"
	"github.com/mealmasterhq/meal-master-api/internal/service/auth"
	"github.com/mealmasterhq/meal-master-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testCookieName = "token"

// fakeUserStore is an in-memory store.UserStore for middleware tests.
type fakeUserStore struct {
	users map[string]*domain.User
}

var _ store.UserStore = (*fakeUserStore)(nil)

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*domain.User)}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	user.ID = id
	s.users[user.Email] = user
	return id, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) List(ctx context.Context, q store.ListQuery) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (s *fakeUserStore) SetRole(ctx context.Context, id bson.ObjectID, role domain.Role) error {
	return store.ErrUserNotFound
}

func (s *fakeUserStore) SetBadge(ctx context.Context, email string, badge domain.Badge) error {
	return store.ErrUserNotFound
}

func testJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	return auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		24*time.Hour,
		time.Now,
	)
}

func tokenCookie(t *testing.T, svc auth.JWTService, email string) *http.Cookie {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), email)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: token}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc := testJWTService(t)
	m := NewAuthMiddleware(svc, newFakeUserStore(), testCookieName)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmail(r)
		require.True(t, ok)
		assert.Equal(t, "member@example.com", email)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing cookie short-circuits with 401", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meal/abc", nil)

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"unauthorized access"}`, rec.Body.String())
	})

	t.Run("invalid token short-circuits with 401", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meal/abc", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not.a.token"})

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token short-circuits with 401", func(t *testing.T) {
		t.Parallel()
		past := auth.NewTestJWTService(
			"test-secret-that-is-long-enough-for-testing",
			time.Minute,
			func() time.Time { return time.Now().Add(-2 * time.Hour) },
		)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meal/abc", nil)
		req.AddCookie(tokenCookie(t, past, "member@example.com"))

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler with email in context", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/meal/abc", nil)
		req.AddCookie(tokenCookie(t, svc, "member@example.com"))

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	svc := testJWTService(t)

	admin, err := domain.NewUser("Admin User", "admin@example.com")
	require.NoError(t, err)
	admin.Role = domain.RoleAdmin

	member, err := domain.NewUser("Plain Member", "member@example.com")
	require.NoError(t, err)

	m := NewAuthMiddleware(svc, newFakeUserStore(admin, member), testCookieName)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := m.Authenticate(m.RequireAdmin(next))

	tests := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{"admin passes the gate", "admin@example.com", http.StatusOK},
		{"member is denied", "member@example.com", http.StatusForbidden},
		{"caller with no user record is denied", "ghost@example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/meal", nil)
			req.AddCookie(tokenCookie(t, svc, tt.email))

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"forbidden access"}`, rec.Body.String())
			}
		})
	}
}
