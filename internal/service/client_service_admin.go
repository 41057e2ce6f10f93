package service

import (
	"context"
	"fmt"

	"github.com/greenjets/bladerunner-portal/internal/adapter"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/models"
)

type consoleAdminService struct {
	gateway adapter.PortalGateway
	logger  *logger.Logger
}

func NewConsoleAdminService(gateway adapter.PortalGateway, logger *logger.Logger) ConsoleAdminService {
	return &consoleAdminService{gateway: gateway, logger: logger}
}

func (c *consoleAdminService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := c.gateway.AdminLogin(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.logger.Err(err).Msg("admin login against portal failed")
		return models.User{}, fmt.Errorf("admin login: %w", err)
	}

	return user, nil
}

func (c *consoleAdminService) Verify(ctx context.Context) (models.User, error) {
	user, err := c.gateway.Verify(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("verify session: %w", err)
	}

	return user, nil
}

func (c *consoleAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := c.gateway.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (c *consoleAdminService) SetApproval(ctx context.Context, id int64, approved bool) (models.User, error) {
	updated, err := c.gateway.SetApproval(ctx, id, approved)
	if err != nil {
		return models.User{}, fmt.Errorf("set approval: %w", err)
	}

	c.logger.Info().Int64("id", id).Bool("approved", approved).Msg("approval updated via portal")
	return updated, nil
}

func (c *consoleAdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := c.gateway.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	c.logger.Info().Int64("id", id).Msg("user deleted via portal")
	return nil
}
