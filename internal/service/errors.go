package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "email not found" and "wrong
	// password" so the two cases stay indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotApproved is returned at login time when a non-admin
	// account has not yet been approved by an administrator.
	ErrAccountNotApproved = errors.New("account not approved")

	// ErrNotAdmin is returned by the admin login flow when the credentials
	// check out but the account does not hold the admin role.
	ErrNotAdmin = errors.New("account is not an administrator")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
