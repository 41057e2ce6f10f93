// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenIdentity is the application claim embedded in every issued JWT under
// the "user" key. It binds the token to a user id and the role that was
// stored on the account at issuance time.
//
// The role inside a token is a snapshot: validity is entirely a function of
// signature and expiry, and the record is not re-read by the verifier.
// Admin-only routes re-fetch the account before acting on the role.
type TokenIdentity struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}

// TokenClaims is the full claim set carried by a session token: the standard
// registered claims (iss, sub, iat, exp) plus the "user" identity object.
type TokenClaims struct {
	// User is the identity snapshot this token asserts.
	User TokenIdentity `json:"user"`

	jwt.RegisteredClaims
}

// Token wraps a parsed or freshly issued JWT with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the x-auth-token
// header or stored on the client side.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// UserID returns the user identifier asserted by the token.
func (t *Token) UserID() int64 {
	return t.Claims.User.ID
}

// Role returns the role snapshot asserted by the token.
func (t *Token) Role() Role {
	return t.Claims.User.Role
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
