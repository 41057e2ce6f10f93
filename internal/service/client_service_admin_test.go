package service

import (
	"context"
	"errors"
	"testing"

	"github.com/greenjets/bladerunner-portal/internal/adapter"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/mock"
	"github.com/greenjets/bladerunner-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConsoleFixture(t *testing.T) (*mock.MockPortalGateway, ConsoleAdminService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockPortalGateway(ctrl)
	return gateway, NewConsoleAdminService(gateway, logger.Nop())
}

func TestConsoleAdminService_Login_Success(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		AdminLogin(gomock.Any(), models.LoginRequest{Email: "admin@x.com", Password: "pw"}).
		Return(models.User{ID: 1, Role: models.RoleAdmin}, nil)

	user, err := svc.Login(context.Background(), "admin@x.com", "pw")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestConsoleAdminService_Login_EmptyCredentials(t *testing.T) {
	_, svc := newConsoleFixture(t)

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "admin@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestConsoleAdminService_Login_ForbiddenPropagates(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		AdminLogin(gomock.Any(), gomock.Any()).
		Return(models.User{}, adapter.ErrForbidden)

	_, err := svc.Login(context.Background(), "user@x.com", "pw")
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestConsoleAdminService_ListUsers(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		ListUsers(gomock.Any()).
		Return([]models.User{{ID: 2}, {ID: 1}}, nil)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestConsoleAdminService_SetApproval(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		SetApproval(gomock.Any(), int64(5), true).
		Return(models.User{ID: 5, Approved: true}, nil)

	updated, err := svc.SetApproval(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestConsoleAdminService_DeleteUser_NotFound(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		DeleteUser(gomock.Any(), int64(99)).
		Return(adapter.ErrNotFound)

	err := svc.DeleteUser(context.Background(), 99)
	assert.True(t, errors.Is(err, adapter.ErrNotFound))
}

func TestConsoleAdminService_Verify_SessionExpired(t *testing.T) {
	gateway, svc := newConsoleFixture(t)

	gateway.EXPECT().
		Verify(gomock.Any()).
		Return(models.User{}, adapter.ErrUnauthorized)

	_, err := svc.Verify(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
