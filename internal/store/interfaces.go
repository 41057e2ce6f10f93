package store

import (
	"context"

	"github.com/greenjets/bladerunner-portal/models"
)

// UserRepository is the persistence contract for user accounts. Every call
// hits durable storage; there is no caching layer, so each read observes the
// current database state.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (ID, CreatedAt). Returns ErrEmailAlreadyExists when the email
	// uniqueness constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its authentication key.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by id.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all accounts ordered by creation time descending.
	// Password hashes are not selected.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetApproval flips the approval flag of the account with the given id
	// and returns the updated record. Approving an already-approved account
	// is a no-op returning current state. Returns ErrNoUserWasFound when the
	// id does not exist.
	SetApproval(ctx context.Context, id int64, approved bool) (models.User, error)

	// DeleteUser removes the account with the given id. Irreversible; there
	// is no soft delete. Returns ErrNoUserWasFound when the id does not
	// exist.
	DeleteUser(ctx context.Context, id int64) error
}
