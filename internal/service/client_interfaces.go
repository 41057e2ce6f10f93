package service

import (
	"context"

	"github.com/greenjets/bladerunner-portal/models"
)

// ConsoleAdminService defines the console-side contract for the admin
// workflows: logging in as an administrator and managing user accounts
// through the portal's REST API.
type ConsoleAdminService interface {
	// Login authenticates against the portal's admin login endpoint. On
	// success the session token is held by the underlying gateway and used
	// for all subsequent calls.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Verify re-validates the current session and returns the account record
	// behind it.
	Verify(ctx context.Context) (models.User, error)

	// ListUsers fetches all accounts, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetApproval approves or revokes the given account and returns the
	// updated record.
	SetApproval(ctx context.Context, id int64, approved bool) (models.User, error)

	// DeleteUser permanently removes the given account.
	DeleteUser(ctx context.Context, id int64) error
}
