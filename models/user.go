// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package models

import "time"

// Role is the authorization level stored on a user account.
// It is assigned at creation time and is never derived from client input
// during authentication: login reads the role from the stored record.
type Role string

const (
	// RoleUser is the default role for self-registered accounts.
	RoleUser Role = "user"

	// RoleAdmin marks accounts that may manage other users. Admin accounts
	// are provisioned out-of-band and bypass the approval gate implicitly.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned at creation
	// and immutable afterwards.
	ID int64 `json:"id"`

	// Username is the display name. It is not used as an authentication
	// lookup key; Email is.
	Username string `json:"username"`

	// Email is unique across all users and is the lookup key at login.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext is never persisted. Hidden from JSON.
	PasswordHash string `json:"-"`

	// Role is the account's authorization level.
	Role Role `json:"role"`

	// Approved reports whether an admin has cleared this account for login.
	// False at creation for ordinary signups; admin accounts ignore it.
	Approved bool `json:"approved"`

	// CreatedAt is set once at creation and is used only for listing order.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAuthenticate reports whether the account may obtain a session token:
// admins always, ordinary users only once approved.
func (u User) CanAuthenticate() bool {
	return u.IsAdmin() || u.Approved
}
