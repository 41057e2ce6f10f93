// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

// Package adapter provides transport-layer abstractions for communicating
// with the portal server from the admin console.
//
// The primary abstraction is [PortalGateway], which decouples the console's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPortalGateway]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/greenjets/bladerunner-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_gateway_mock.go -package=mock

// PortalGateway defines transport-agnostic communication with the portal
// server. Implementations are responsible for serialisation, token header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type PortalGateway interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful AdminLogin.
	SetToken(token string)

	// Token returns the session token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// AdminLogin authenticates against the admin login endpoint. On success
	// it stores the returned token via SetToken and returns the logged-in
	// administrator record.
	AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Verify re-validates the stored token and returns the current account
	// record behind it.
	Verify(ctx context.Context) (models.User, error)

	// ListUsers fetches all user accounts, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetApproval flips the approval flag of the given account and returns
	// the updated record. Returns [ErrNotFound] (wrapped) for absent ids.
	SetApproval(ctx context.Context, id int64, approved bool) (models.User, error)

	// DeleteUser permanently removes the given account. Returns [ErrNotFound]
	// (wrapped) for absent ids.
	DeleteUser(ctx context.Context, id int64) error
}
