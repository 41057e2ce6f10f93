package service

import (
	"context"

	"github.com/greenjets/bladerunner-portal/models"
)

type AuthService interface {
	// RegisterUser creates an ordinary user account. The role is always
	// RoleUser and the approval flag is always false regardless of what the
	// caller supplies.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an ordinary user. Unapproved non-admin accounts
	// are rejected after password verification with ErrAccountNotApproved.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// AdminLogin authenticates an administrator. Performs the same credential
	// check as Login but additionally requires RoleAdmin; the approval flag
	// is not consulted.
	AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error)

	// UserByID re-fetches the current account record behind a verified token.
	UserByID(ctx context.Context, id int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserAdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetApproval(ctx context.Context, id int64, approved bool) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
