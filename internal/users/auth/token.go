// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jved/forum/internal/platform/constants"
	"github.com/jved/forum/internal/platform/sec"
)

// # Token-Driven Flows

// FlowKind discriminates which of the two token-driven workflows is in
// progress: confirming an email address or resetting a password.
type FlowKind string

const (
	// FlowEmailVerification confirms control of an email address after registration.
	FlowEmailVerification FlowKind = "emailVerification"

	// FlowPasswordReset authorizes an out-of-band password reset.
	FlowPasswordReset FlowKind = "passwordReset"
)

// # Verification Tokens

// VerificationToken is a random, time-bounded bearer credential proving
// control of an email address.
type VerificationToken struct {
	// Value is 64 hex characters derived from 32 bytes of CSPRNG output.
	Value string
	// ExpiresAt is always creation time + 24h, in the Europe/Paris zone.
	ExpiresAt time.Time
}

// TokenIssuer generates verification/reset tokens.
//
// The clock is injectable so expiry arithmetic is testable; production code
// uses [NewTokenIssuer] which wires the real clock.
type TokenIssuer struct {
	now      func() time.Time
	location *time.Location
}

// NewTokenIssuer constructs a [TokenIssuer] anchored to the reference zone.
func NewTokenIssuer() (*TokenIssuer, error) {
	location, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to load reference timezone %s: %w", ReferenceTimezone, err)
	}
	return &TokenIssuer{now: time.Now, location: location}, nil
}

// NewTokenIssuerAt constructs a [TokenIssuer] with a fixed clock. Test use only.
func NewTokenIssuerAt(now func() time.Time) (*TokenIssuer, error) {
	issuer, err := NewTokenIssuer()
	if err != nil {
		return nil, err
	}
	issuer.now = now
	return issuer, nil
}

/*
Generate produces a fresh [VerificationToken].

Description: Draws 32 bytes from the cryptographically secure randomness
source — the token is a bearer credential for account-sensitive actions, so
a predictable generator would be a security defect. Each call produces an
independent token; values are never cached or reused.

Returns:
  - VerificationToken: Value + expiry (creation time + 24h, Europe/Paris)
  - error: Entropy source failures
*/
func (issuer *TokenIssuer) Generate() (VerificationToken, error) {
	value, err := sec.GenerateSecureToken(TokenByteLength)
	if err != nil {
		return VerificationToken{}, err
	}

	expiresAt := issuer.now().In(issuer.location).Add(TokenTTL)

	return VerificationToken{Value: value, ExpiresAt: expiresAt}, nil
}

// # Confirmation URLs

// VerificationURL builds the public confirmation link for a token.
//
// The password-reset flow maps to the reset path; every other kind falls
// back to the email-verification path. The fallback mirrors long-standing
// caller expectations — new flow kinds must be added here explicitly rather
// than relying on it.
func VerificationURL(baseURL string, token string, kind FlowKind) string {
	path := constants.VerificationPath
	if kind == FlowPasswordReset {
		path = constants.ResetPasswordPath
	}

	query := url.Values{}
	query.Set(FieldToken, token)

	return baseURL + path + "?" + query.Encode()
}
