// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/sec"
	"github.com/jved/forum/internal/platform/validate"
	"github.com/jved/forum/pkg/uuid"
)

// # Service

// Service implements the credential-lifecycle use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or token logic must be reviewed before merging.
type Service struct {
	users        UserRepository
	resetTokens  TokenRepository
	verifyTokens TokenRepository
	issuer       *TokenIssuer
	notifier     *Notifier
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	users UserRepository,
	resetTokens TokenRepository,
	verifyTokens TokenRepository,
	issuer *TokenIssuer,
	notifier *Notifier,
) *Service {
	return &Service{
		users:        users,
		resetTokens:  resetTokens,
		verifyTokens: verifyTokens,
		issuer:       issuer,
		notifier:     notifier,
	}
}

// ErrDispatchFailed signals that the mail transport refused the message.
var ErrDispatchFailed = apperr.ServiceUnavailable("Could not send the confirmation email")

// # Uniqueness

/*
CheckEmailTaken checks whether the email already belongs to an existing account.

Description: A taken email is a normal validation rejection; an unreachable
repository is an infrastructure error. The two never share a return shape,
so a transient outage can never masquerade as "available" or "taken".

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - validate.Result: One "already used" error, or empty when free
  - error: Infrastructure failures only
*/
func (service *Service) CheckEmailTaken(ctx context.Context, email string) (validate.Result, error) {
	_, err := service.users.FindByEmail(ctx, email)

	switch {
	case err == nil:
		v := &validate.Validator{}
		v.Custom(FieldEmail, true, "Email address is already used by another user")
		return v.Result(), nil
	case apperr.IsNotFound(err):
		return nil, nil
	default:
		return nil, apperr.Internal(err)
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Pseudo          string
	Email           string
	Password        string
	ConfirmPassword string
}

/*
Register validates, hashes, and persists a brand new user account, then
starts the email verification flow.

Description: Runs every field validation plus the uniqueness check and
collects ALL failures before rejecting, so the user sees the complete error
list in one round trip. On success, a verification token is generated,
persisted with its 24h TTL, and dispatched by email. A failed dispatch does
not roll back the account — the user can request a re-send.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (nil when rejected)
  - validate.Result: Field errors (empty on success)
  - error: apperr.Conflict when the insert loses a duplicate-email race, or
    infrastructure failures
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, validate.Result, error) {
	var result validate.Result
	result = append(result, validate.Pseudo(input.Pseudo)...)
	result = append(result, validate.EmailAddress(input.Email)...)
	result = append(result, validate.Password(input.Password, input.ConfirmPassword)...)

	taken, err := service.CheckEmailTaken(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	result = append(result, taken...)

	if !result.Valid() {
		return nil, result, nil
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Pseudo:       input.Pseudo,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleOrdinary,
		Template:     "default",
		IsVerified:   false,
	}

	// A duplicate email that raced past the availability pre-check comes back
	// from the store as a Conflict; pass it through instead of folding it
	// into a server fault.
	if err := service.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	// A failed dispatch does not roll back the account; the user can ask for
	// a re-send. Token storage failures still surface.
	if err := service.startVerification(ctx, user, FlowEmailVerification); err != nil && !errors.Is(err, ErrDispatchFailed) {
		return nil, nil, err
	}

	return user, nil, nil
}

// # Authentication Flow

/*
Login verifies credentials and returns the matching account.

Description: Uses a generic rejection for both unknown emails and wrong
passwords to prevent account enumeration. The caller (HTTP layer) stores
the resulting identity in the session wholesale.

Parameters:
  - ctx: context.Context
  - email: string
  - password: string

Returns:
  - *User: Authenticated account
  - error: apperr.Unauthorized or infrastructure failures
*/
func (service *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, apperr.Internal(err)
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !user.IsVerified {
		return nil, apperr.Unauthorized("Email address has not been verified yet")
	}

	return user, nil
}

// # Email Verification

/*
ResendVerification re-issues the verification email for an unverified account.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - error: Conflict when already verified, dispatch or infrastructure failures.
    Unknown emails return nil to prevent enumeration.
*/
func (service *Service) ResendVerification(ctx context.Context, email string) error {
	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return apperr.Internal(err)
	}

	if user.IsVerified {
		return apperr.Conflict("Email address is already verified")
	}

	return service.startVerification(ctx, user, FlowEmailVerification)
}

/*
VerifyEmail confirms a user's email address using a previously issued token.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - error: apperr.NotFound for invalid/expired tokens, or storage failures
*/
func (service *Service) VerifyEmail(ctx context.Context, token string) error {
	userID, err := service.verifyTokens.Get(ctx, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("Verification token")
		}
		return apperr.Internal(err)
	}

	if err := service.users.MarkVerified(ctx, userID); err != nil {
		return fmt.Errorf("auth_service_verify_email_failed: %w", err)
	}

	// Single-use: the token is gone after a successful redemption.
	_ = service.verifyTokens.Delete(ctx, token)

	return nil
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Generates a secure token, saves it under the reset purpose with
its 24h TTL, and dispatches the reset email.

NOTE: Unknown emails return nil to prevent user enumeration.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - error: Dispatch or infrastructure failures
*/
func (service *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return apperr.Internal(err)
	}

	return service.startVerification(ctx, user, FlowPasswordReset)
}

/*
ResetPassword completes the forgot-password flow.

Description: Validates the new password, redeems the token, hashes and
stores the new credential, and deletes the used token.

Parameters:
  - ctx: context.Context
  - token: string
  - password: string
  - confirmPassword: string

Returns:
  - validate.Result: Field errors for the new password (empty on success)
  - error: apperr.NotFound for invalid/expired tokens, or storage failures
*/
func (service *Service) ResetPassword(ctx context.Context, token, password, confirmPassword string) (validate.Result, error) {
	result := validate.Password(password, confirmPassword)
	if !result.Valid() {
		return result, nil
	}

	userID, err := service.resetTokens.Get(ctx, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Reset token")
		}
		return nil, apperr.Internal(err)
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.users.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return nil, fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	_ = service.resetTokens.Delete(ctx, token)

	return nil, nil
}

// # User Administration

/*
ListUsers returns a page of accounts plus the total count.

Parameters:
  - ctx: context.Context
  - limit: int
  - offset: int

Returns:
  - []User: Page of accounts
  - int: Total account count
  - error: Database retrieval failures
*/
func (service *Service) ListUsers(ctx context.Context, limit, offset int) ([]User, int, error) {
	users, total, err := service.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}

// startVerification issues a token for the flow, persists it under the
// matching purpose, and dispatches the email.
func (service *Service) startVerification(ctx context.Context, user *User, kind FlowKind) error {
	token, err := service.issuer.Generate()
	if err != nil {
		return apperr.Internal(err)
	}

	repository := service.verifyTokens
	if kind == FlowPasswordReset {
		repository = service.resetTokens
	}

	if err := repository.Set(ctx, token.Value, user.ID, TokenTTL); err != nil {
		return apperr.Internal(err)
	}

	if sent := service.notifier.SendVerification(ctx, user.Pseudo, user.Email, token.Value, kind); !sent {
		return ErrDispatchFailed
	}

	return nil
}
