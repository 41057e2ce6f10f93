package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target string, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, userID))
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleAdmin}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.adminOnly(next).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleUser, Approved: true}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.adminOnly(next).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users", 7))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

// a demoted-then-deleted account keeps a formally valid token, but the gate
// re-reads the database and refuses access
func TestAdminOnly_DeletedSubjectForbidden(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, auth, nil)

	rec := httptest.NewRecorder()
	h.adminOnly(http.NotFoundHandler()).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users", 7))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_StorageUnavailable(t *testing.T) {
	auth := &mockAuthService{
		userByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrStorageUnavailable
		},
	}
	h := newTestHandler(t, auth, nil)

	rec := httptest.NewRecorder()
	h.adminOnly(http.NotFoundHandler()).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users", 7))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminOnly_MissingIdentity(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	h.adminOnly(http.NotFoundHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
