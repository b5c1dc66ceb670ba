// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/sec"
	"github.com/jved/forum/internal/users/auth"
)

var accountColumns = []string{
	"id", "pseudo", "email", "passwordhash", "role", "template", "isverified", "createdat", "updatedat",
}

func accountRow(id string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(accountColumns).
		AddRow(id, "jean", "jean@jved.fr", "$2a$10$hash", sec.RoleOrdinary, "default", true, now, now)
}

/*
TestPostgresUserRepository_FindByEmail maps the three storage outcomes: row
found, no row, connectivity failure.
*/
func TestPostgresUserRepository_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users.account\s+WHERE email = \$1`).
			WithArgs("jean@jved.fr").
			WillReturnRows(accountRow("user-1"))

		repo := auth.NewUserRepository(mock)
		user, err := repo.FindByEmail(context.Background(), "jean@jved.fr")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, sec.RoleOrdinary, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent_row_maps_to_not_found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users.account\s+WHERE email = \$1`).
			WithArgs("ghost@jved.fr").
			WillReturnRows(pgxmock.NewRows(accountColumns))

		repo := auth.NewUserRepository(mock)
		_, err = repo.FindByEmail(context.Background(), "ghost@jved.fr")

		assert.True(t, apperr.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connectivity_failure_stays_infrastructure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		cause := errors.New("connection refused")
		mock.ExpectQuery(`SELECT (.+) FROM users.account\s+WHERE email = \$1`).
			WithArgs("jean@jved.fr").
			WillReturnError(cause)

		repo := auth.NewUserRepository(mock)
		_, err = repo.FindByEmail(context.Background(), "jean@jved.fr")

		require.Error(t, err)
		assert.False(t, apperr.IsNotFound(err))
		assert.True(t, apperr.IsInfrastructure(err))
		// The cause stays reachable for logging but never leaks to the client.
		assert.ErrorIs(t, err, cause)
		assert.NotContains(t, err.Error(), "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresUserRepository_Create verifies the insert carries every column
and stamps timestamps, and that a unique-constraint violation on the email
column surfaces as a Conflict rather than a server fault.
*/
func TestPostgresUserRepository_Create(t *testing.T) {
	newUser := func() *auth.User {
		return &auth.User{
			ID:           "user-1",
			Pseudo:       "jean",
			Email:        "jean@jved.fr",
			PasswordHash: "hash",
			Role:         sec.RoleOrdinary,
			Template:     "default",
		}
	}

	t.Run("inserted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`INSERT INTO users.account`).
			WithArgs("user-1", "jean", "jean@jved.fr", "hash", sec.RoleOrdinary, "default", false,
				pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := auth.NewUserRepository(mock)
		user := newUser()

		require.NoError(t, repo.Create(context.Background(), user))
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_email_maps_to_conflict", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`INSERT INTO users.account`).
			WithArgs("user-1", "jean", "jean@jved.fr", "hash", sec.RoleOrdinary, "default", false,
				pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"})

		repo := auth.NewUserRepository(mock)
		err = repo.Create(context.Background(), newUser())

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
		assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
		assert.False(t, apperr.IsInfrastructure(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresUserRepository_MarkVerified verifies zero affected rows maps to
NotFound.
*/
func TestPostgresUserRepository_MarkVerified(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users.account\s+SET isverified = TRUE`).
			WithArgs("user-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := auth.NewUserRepository(mock)
		assert.NoError(t, repo.MarkVerified(context.Background(), "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users.account\s+SET isverified = TRUE`).
			WithArgs("ghost").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := auth.NewUserRepository(mock)
		err = repo.MarkVerified(context.Background(), "ghost")
		assert.True(t, apperr.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresUserRepository_List verifies the window-function total travels
with the page.
*/
func TestPostgresUserRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows(append(accountColumns, "total_count")).
		AddRow("user-1", "jean", "jean@jved.fr", "h1", sec.RoleOrdinary, "default", true, now, now, 42).
		AddRow("user-2", "zoe", "zoe@jved.fr", "h2", sec.RoleModerator, "dark", true, now, now, 42)

	mock.ExpectQuery(`SELECT (.+) COUNT\(\*\) OVER\(\) AS total_count\s+FROM users.account`).
		WithArgs(2, 0).
		WillReturnRows(rows)

	repo := auth.NewUserRepository(mock)
	users, total, err := repo.List(context.Background(), 2, 0)

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 42, total)
	assert.Equal(t, "zoe", users[1].Pseudo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
