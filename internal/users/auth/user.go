// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

/*
Package auth implements the identity and credential-lifecycle core of JVED.

It handles registration input checking, email uniqueness, the time-bounded
verification/reset token workflow, and the out-of-band confirmation emails.

# Architecture

  - Service: Orchestrates business logic (Register, Login, Verify, Reset).
  - Repository: Abstracted interfaces for Postgres (users) and Redis (tokens).
  - TokenIssuer: Cryptographically random, time-bounded bearer tokens.
  - Notifier: Composes confirmation emails and hands them to the transport.

The package ensures that identity data remains consistent and secure
throughout the platform's lifecycle.
*/
package auth

import (
	"time"

	"github.com/jved/forum/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the JVED forum.
type User struct {
	ID           string    `json:"id"`
	Pseudo       string    `json:"pseudo"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	Template     string    `json:"template"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for identity mapping in the authentication domain.
const (
	FieldPseudo   = "pseudo"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldUser     = "user"
	FieldMessage  = "message"
)
