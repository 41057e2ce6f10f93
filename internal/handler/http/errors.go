// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// token header. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned by the auth middleware when the
	// incoming request does not carry the token header at all.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidUserID is returned when a route parameter expected to be a
	// numeric user id cannot be parsed.
	ErrInvalidUserID = errors.New("invalid user id")
)
