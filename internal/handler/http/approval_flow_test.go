package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/models"
)

// ─────────────────────────────────────────────
// in-memory repository
// ─────────────────────────────────────────────

// memUserRepository is an in-memory store.UserRepository used to drive the
// real router and the real auth service through full account lifecycles.
// It honours the repository contract: unique emails, newest-first listing,
// sentinel errors for missing rows.
type memUserRepository struct {
	nextID int64
	users  []models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{nextID: 1}
}

func (r *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	user.ID = r.nextID
	user.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	r.nextID++
	r.users = append(r.users, user)
	return user, nil
}

func (r *memUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepository) ListUsers(_ context.Context) ([]models.User, error) {
	listed := make([]models.User, len(r.users))
	copy(listed, r.users)
	for i := range listed {
		listed[i].PasswordHash = ""
	}
	// newest first
	for i, j := 0, len(listed)-1; i < j; i, j = i+1, j-1 {
		listed[i], listed[j] = listed[j], listed[i]
	}
	return listed, nil
}

func (r *memUserRepository) SetApproval(_ context.Context, id int64, approved bool) (models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Approved = approved
			return r.users[i], nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (r *memUserRepository) DeleteUser(_ context.Context, id int64) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNoUserWasFound
}

// seedAdmin inserts a pre-provisioned administrator account, the way admin
// accounts are created out-of-band in the real database.
func (r *memUserRepository) seedAdmin(t *testing.T, email, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin, err := r.CreateUser(context.Background(), models.User{
		Username:     "root",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)
	return admin
}

// ─────────────────────────────────────────────
// full-stack fixture: real router, real services, real bcrypt/JWT
// ─────────────────────────────────────────────

func lifecycleFixture(t *testing.T) (http.Handler, *memUserRepository) {
	t.Helper()

	repo := newMemUserRepository()
	cfg := testConfig()
	cfg.App.BcryptCost = bcrypt.MinCost

	storages := &store.Storages{UserRepository: repo}
	services := service.NewServices(storages, cfg, logger.Nop())
	router := NewHandler(services, cfg, nil, logger.Nop()).Init()

	return router, repo
}

func do(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeLogin(t *testing.T, rec *httptest.ResponseRecorder) models.LoginResponse {
	t.Helper()

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

// ─────────────────────────────────────────────
// account lifecycle
// ─────────────────────────────────────────────

// TestAccountLifecycle drives one account from registration through approval
// to an authenticated session over the real router: registration leaves the
// account locked out, an administrator approves it, the user logs in, and the
// issued token opens exactly the surfaces the user's role allows.
func TestAccountLifecycle(t *testing.T) {
	router, repo := lifecycleFixture(t)
	admin := repo.seedAdmin(t, "root@greenjets.com", "admin-pw")

	// Register a new account.
	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"deckard","email":"deckard@greenjets.com","password":"unicorn"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))
	assert.Equal(t, models.RoleUser, registered.Role)
	assert.False(t, registered.Approved)
	assert.NotContains(t, rec.Body.String(), "unicorn")

	// Correct credentials are not enough before approval.
	rec = do(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"deckard@greenjets.com","password":"unicorn"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "account pending approval", decodeMessage(t, rec))

	// The admin signs in through the dedicated endpoint.
	rec = do(t, router, http.MethodPost, "/api/auth/admin/login", "",
		`{"email":"root@greenjets.com","password":"admin-pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	adminToken := decodeLogin(t, rec).Token

	// The pending account shows up in the admin listing.
	rec = do(t, router, http.MethodGet, "/api/users", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "deckard@greenjets.com", listed[0].Email) // newest first
	assert.False(t, listed[0].Approved)
	assert.Equal(t, admin.Email, listed[1].Email)

	// Approve it.
	rec = do(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/approve", registered.ID),
		adminToken, `{"approved":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var approved models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&approved))
	assert.True(t, approved.Approved)

	// The same credentials now win a session token.
	rec = do(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"deckard@greenjets.com","password":"unicorn"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	userLogin := decodeLogin(t, rec)
	assert.Equal(t, models.RoleUser, userLogin.User.Role)

	// The user token passes the auth gate…
	rec = do(t, router, http.MethodGet, "/api/auth/verify", userLogin.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// …but not the admin gate.
	rec = do(t, router, http.MethodGet, "/api/users", userLogin.Token, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "access denied", decodeMessage(t, rec))

	// The admin token still does.
	rec = do(t, router, http.MethodGet, "/api/users", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountLifecycle_DeletedUserCannotLogInAgain(t *testing.T) {
	router, repo := lifecycleFixture(t)
	repo.seedAdmin(t, "root@greenjets.com", "admin-pw")

	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"rachael","email":"rachael@greenjets.com","password":"memory"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))

	rec = do(t, router, http.MethodPost, "/api/auth/admin/login", "",
		`{"email":"root@greenjets.com","password":"admin-pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	adminToken := decodeLogin(t, rec).Token

	rec = do(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/approve", registered.ID),
		adminToken, `{"approved":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, fmt.Sprintf("/api/users/%d", registered.ID),
		adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user deleted successfully", decodeMessage(t, rec))

	// The credentials are gone with the record.
	rec = do(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"rachael@greenjets.com","password":"memory"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeMessage(t, rec))
}

func TestAccountLifecycle_DuplicateRegistration(t *testing.T) {
	router, _ := lifecycleFixture(t)

	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"leon","email":"leon@greenjets.com","password":"tortoise"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"leon2","email":"leon@greenjets.com","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user already exists", decodeMessage(t, rec))
}

func TestAccountLifecycle_NonAdminRejectedAtAdminLogin(t *testing.T) {
	router, repo := lifecycleFixture(t)
	repo.seedAdmin(t, "root@greenjets.com", "admin-pw")

	rec := do(t, router, http.MethodPost, "/api/auth/register", "",
		`{"username":"deckard","email":"deckard@greenjets.com","password":"unicorn"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))

	rec = do(t, router, http.MethodPost, "/api/auth/admin/login", "",
		`{"email":"root@greenjets.com","password":"admin-pw"}`)
	adminToken := decodeLogin(t, rec).Token

	rec = do(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d/approve", registered.ID),
		adminToken, `{"approved":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Approval grants login, not admin standing.
	rec = do(t, router, http.MethodPost, "/api/auth/admin/login", "",
		`{"email":"deckard@greenjets.com","password":"unicorn"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "access denied", decodeMessage(t, rec))
}
