package service

import (
	"context"
	"fmt"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/models"
)

// userAdminService implements UserAdminService: the admin-only CRUD surface
// over user accounts. Authorization happens upstream in the HTTP layer; this
// service assumes the caller has already been established as an admin.
type userAdminService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserAdminService(userRepository store.UserRepository, logger *logger.Logger) UserAdminService {
	return &userAdminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account, newest first, public fields only.
func (s *userAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// SetApproval flips the approval flag on the given account and returns the
// updated record. Approving an already-approved account is a no-op returning
// current state. Propagates store.ErrNoUserWasFound for absent ids.
func (s *userAdminService) SetApproval(ctx context.Context, id int64, approved bool) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := s.userRepository.SetApproval(ctx, id, approved)
	if err != nil {
		log.Err(err).Int64("id", id).Bool("approved", approved).Msg("approval update failed")
		return models.User{}, fmt.Errorf("approval update failed: %w", err)
	}

	log.Info().Int64("id", id).Bool("approved", approved).Msg("approval flag updated")
	return updated, nil
}

// DeleteUser removes the given account permanently. Already-issued tokens for
// the account stay valid until expiry; there is no revocation list.
func (s *userAdminService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user delete failed")
		return fmt.Errorf("user delete failed: %w", err)
	}

	log.Info().Int64("id", id).Msg("user deleted")
	return nil
}
