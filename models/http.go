// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login and
// POST /api/auth/admin/login. Note the absence of a role field: the role is
// always read from the stored record, never from the request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of both login endpoints.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ApprovalRequest is the body of PUT /api/users/{id}/approve.
type ApprovalRequest struct {
	Approved bool `json:"approved"`
}

// MessageResponse carries a human-readable status or error message.
// All JSON error bodies use this shape.
type MessageResponse struct {
	Message string `json:"message"`
}
