// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/dberr"
)

/*
TestWrap verifies the three-way classification of database errors: absent
rows, unique-constraint conflicts, and infrastructure failures.
*/
func TestWrap(t *testing.T) {
	t.Run("nil_passes_through", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "noop"))
	})

	t.Run("no_rows_becomes_not_found", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "lookup_user")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("unique_violation_becomes_conflict", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"}
		err := dberr.Wrap(cause, "create_user")

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "CONFLICT", appError.Code)
		assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
	})

	t.Run("other_errors_become_internal", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := dberr.Wrap(cause, "list_users")

		assert.True(t, apperr.IsInfrastructure(err))
		// The action tag and cause stay reachable for logs, the client
		// message hides both.
		assert.ErrorIs(t, err, cause)
		assert.NotContains(t, err.Error(), "connection refused")
		assert.NotContains(t, err.Error(), "list_users")
	})

	t.Run("foreign_key_violation_is_not_a_conflict", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
		err := dberr.Wrap(cause, "create_post")

		assert.True(t, apperr.IsInfrastructure(err))
	})
}
