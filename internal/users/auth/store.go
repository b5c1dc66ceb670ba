// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - ctx: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(ctx context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - ctx: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(ctx context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - ctx: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(ctx context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's password hash.

		Parameters:
		  - ctx: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(ctx context.Context, userID, newHash string) error

	/*
		MarkVerified updates the user's status to isverified = true.

		Parameters:
		  - ctx: context.Context
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	MarkVerified(ctx context.Context, userID string) error

	/*
		List returns a page of accounts plus the total count, newest first.

		Parameters:
		  - ctx: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []User: Page of accounts
		  - int: Total account count
		  - error: Database retrieval failures
	*/
	List(ctx context.Context, limit, offset int) ([]User, int, error)
}

// # Volatile Token Access

// TokenRepository defines the contract for storing volatile bearer tokens
// (email verification and password reset). The purpose of a token is carried
// by which repository instance holds it, not by the stored value.
type TokenRepository interface {

	/*
		Set stores a token associated with a userID for a limited duration.

		Parameters:
		  - ctx: context.Context
		  - token: string
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(ctx context.Context, token string, userID string, ttl time.Duration) error

	/*
		Get retrieves the userID associated with a given token.

		Parameters:
		  - ctx: context.Context
		  - token: string

		Returns:
		  - string: UserID
		  - error: apperr.NotFound when absent/expired, or retrieval failures
	*/
	Get(ctx context.Context, token string) (string, error)

	/*
		Delete removes a token after successful use.

		Parameters:
		  - ctx: context.Context
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(ctx context.Context, token string) error
}
