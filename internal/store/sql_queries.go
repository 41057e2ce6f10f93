// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, role, approved)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, email, password_hash, role, approved, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, role, approved, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, role, approved, created_at
    FROM users
    WHERE id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the admin listing query: public fields only
// (no password hash), newest accounts first.
func buildListUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select("id", "username", "email", "role", "approved", "created_at").
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetApprovalQuery builds the approval-flip UPDATE returning the
// updated record.
func buildSetApprovalQuery(id int64, approved bool) (string, []any, error) {
	query, args, err := psql.
		Update("users").
		Set("approved", approved).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, email, role, approved, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteUserQuery builds the single-row DELETE.
func buildDeleteUserQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
