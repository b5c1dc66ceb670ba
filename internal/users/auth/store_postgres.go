// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/dberr"
	"github.com/jved/forum/internal/platform/postgres"
)

// # User Repository

// PostgresUserRepository implements the [UserRepository] interface using pgx.
//
// # Error Mapping
//
// Every database error goes through [dberr.Wrap]: absent rows become NotFound,
// unique-constraint violations become Conflict (a duplicate email that raced
// past the availability pre-check), and everything else stays an
// infrastructure failure.
type PostgresUserRepository struct {
	db postgres.DB
}

// NewUserRepository creates a new PostgreSQL implementation of the [UserRepository].
func NewUserRepository(db postgres.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new user record into the users.account table.

Parameters:
  - ctx: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict when the email is already registered, or
    connectivity errors
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, pseudo, email, passwordhash, role, template, isverified, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.db.Exec(ctx, query,
		user.ID,
		user.Pseudo,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Template,
		user.IsVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return dberr.Wrap(err, "create_user")
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, pseudo, email, passwordhash, role, template, isverified, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	return repository.queryOne(ctx, query, email)
}

/*
FindByID retrieves a user record by its primary key.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const query = `
		SELECT id, pseudo, email, passwordhash, role, template, isverified, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	return repository.queryOne(ctx, query, id)
}

/*
UpdatePassword replaces only the user's password hash.

Parameters:
  - ctx: context.Context
  - userID: string
  - newHash: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresUserRepository) UpdatePassword(ctx context.Context, userID, newHash string) error {
	const query = `
		UPDATE users.account
		SET passwordhash = $2, updatedat = NOW()
		WHERE id = $1`

	tag, err := repository.db.Exec(ctx, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
MarkVerified flips the account's verified flag after token redemption.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresUserRepository) MarkVerified(ctx context.Context, userID string) error {
	const query = `
		UPDATE users.account
		SET isverified = TRUE, updatedat = NOW()
		WHERE id = $1`

	tag, err := repository.db.Exec(ctx, query, userID)
	if err != nil {
		return dberr.Wrap(err, "mark_verified")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
List returns a page of accounts plus the total count, newest first.

Description: Uses a window function to fetch the total alongside the page in
one round trip.

Parameters:
  - ctx: context.Context
  - limit: int
  - offset: int

Returns:
  - []User: Page of accounts
  - int: Total account count
  - error: Database retrieval failures
*/
func (repository *PostgresUserRepository) List(ctx context.Context, limit, offset int) ([]User, int, error) {
	const query = `
		SELECT id, pseudo, email, passwordhash, role, template, isverified, createdat, updatedat,
			COUNT(*) OVER() AS total_count
		FROM users.account
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []User
	var totalCount int
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID,
			&user.Pseudo,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Template,
			&user.IsVerified,
			&user.CreatedAt,
			&user.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}

	return users, totalCount, nil
}

// queryOne runs a single-row account lookup and maps absence to NotFound.
func (repository *PostgresUserRepository) queryOne(ctx context.Context, query, argument string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, query, argument).Scan(
		&user.ID,
		&user.Pseudo,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Template,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "lookup_user")
	}

	return user, nil
}
