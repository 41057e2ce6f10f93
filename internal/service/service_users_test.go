package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserAdminService(repo *mockUserRepository) UserAdminService {
	return NewUserAdminService(repo, logger.Nop())
}

func TestUserAdminService_ListUsers(t *testing.T) {
	now := time.Now()
	repo := &mockUserRepository{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 2, Username: "late", CreatedAt: now},
				{ID: 1, Username: "early", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := newTestUserAdminService(repo)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID)
}

func TestUserAdminService_ListUsers_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		listFn: func(_ context.Context) ([]models.User, error) {
			return nil, store.ErrStorageUnavailable
		},
	}
	svc := newTestUserAdminService(repo)

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestUserAdminService_SetApproval(t *testing.T) {
	repo := &mockUserRepository{
		setApprovalFn: func(_ context.Context, id int64, approved bool) (models.User, error) {
			return models.User{ID: id, Approved: approved}, nil
		},
	}
	svc := newTestUserAdminService(repo)

	updated, err := svc.SetApproval(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, updated.Approved)

	revoked, err := svc.SetApproval(context.Background(), 5, false)
	require.NoError(t, err)
	assert.False(t, revoked.Approved)
}

func TestUserAdminService_SetApproval_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		setApprovalFn: func(_ context.Context, _ int64, _ bool) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestUserAdminService(repo)

	_, err := svc.SetApproval(context.Background(), 99, true)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

func TestUserAdminService_DeleteUser(t *testing.T) {
	var deletedID int64
	repo := &mockUserRepository{
		deleteFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := newTestUserAdminService(repo)

	require.NoError(t, svc.DeleteUser(context.Background(), 5))
	assert.Equal(t, int64(5), deletedID)
}

func TestUserAdminService_DeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		deleteFn: func(_ context.Context, _ int64) error {
			return store.ErrNoUserWasFound
		},
	}
	svc := newTestUserAdminService(repo)

	err := svc.DeleteUser(context.Background(), 99)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}
