package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, listing, approval, and deletion
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Connection-class failures → wrapped [ErrStorageUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.Role, user.Approved)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash, &created.Role, &created.Approved, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.wrapUnavailable(fmt.Errorf("unexpected DB error: %w", err))
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// lookup key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Connection-class failures → wrapped [ErrStorageUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given id. Error handling
// matches [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &foundUser.Approved, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: user lookup failed")
		return models.User{}, r.db.wrapUnavailable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return foundUser, nil
}

// ListUsers returns all user accounts ordered by creation time descending.
// Only public fields are selected; the password hash never leaves the
// database through this path.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: user listing failed")
		return nil, r.db.wrapUnavailable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Approved, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable(fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return users, nil
}

// SetApproval flips the approval flag of the account with the given id and
// returns the updated public record. Approving an already-approved account
// simply returns the current state — the UPDATE is idempotent.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Connection-class failures → wrapped [ErrStorageUnavailable].
func (r *userRepository) SetApproval(ctx context.Context, id int64, approved bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetApprovalQuery(id, approved)
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Username, &updated.Email, &updated.Role, &updated.Approved, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.SetApproval").Msg("error: approval update failed")
		return models.User{}, r.db.wrapUnavailable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return updated, nil
}

// DeleteUser removes the account with the given id.
//
// Error handling:
//   - Zero rows affected → [ErrNoUserWasFound]; store state is untouched.
//   - Connection-class failures → wrapped [ErrStorageUnavailable].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: user delete failed")
		return r.db.wrapUnavailable(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
