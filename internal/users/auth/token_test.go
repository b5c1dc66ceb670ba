// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/users/auth"
)

/*
TestTokenIssuer_Generate verifies token shape: 64 lowercase hex characters,
distinct across calls.
*/
func TestTokenIssuer_Generate(t *testing.T) {
	issuer, err := auth.NewTokenIssuer()
	require.NoError(t, err)

	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := issuer.Generate()
		require.NoError(t, err)

		assert.Regexp(t, hexPattern, token.Value)
		assert.False(t, seen[token.Value], "token value repeated")
		seen[token.Value] = true
	}
}

/*
TestTokenIssuer_Expiry verifies the expiry is exactly 24 hours after the
creation instant, expressed in the Europe/Paris zone.
*/
func TestTokenIssuer_Expiry(t *testing.T) {
	fixedNow := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	issuer, err := auth.NewTokenIssuerAt(func() time.Time { return fixedNow })
	require.NoError(t, err)

	token, err := issuer.Generate()
	require.NoError(t, err)

	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	assert.True(t, token.ExpiresAt.Equal(fixedNow.Add(24*time.Hour)))
	assert.Equal(t, paris.String(), token.ExpiresAt.Location().String())
}

/*
TestTokenIssuer_Expiry_AcrossDSTBoundary verifies the 24h arithmetic is
absolute duration, not calendar-day, when the Paris zone shifts to summer
time during the window.
*/
func TestTokenIssuer_Expiry_AcrossDSTBoundary(t *testing.T) {
	// 2026-03-29 02:00 CET -> 03:00 CEST in Europe/Paris.
	fixedNow := time.Date(2026, time.March, 28, 22, 0, 0, 0, time.UTC)

	issuer, err := auth.NewTokenIssuerAt(func() time.Time { return fixedNow })
	require.NoError(t, err)

	token, err := issuer.Generate()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, token.ExpiresAt.Sub(fixedNow))
}

/*
TestVerificationURL verifies the path selection per flow kind, including the
fallback for unrecognized kinds.
*/
func TestVerificationURL(t *testing.T) {
	tests := []struct {
		name string
		kind auth.FlowKind
		want string
	}{
		{
			"email_verification",
			auth.FlowEmailVerification,
			"https://jved.fr/verification?token=abc123",
		},
		{
			"password_reset",
			auth.FlowPasswordReset,
			"https://jved.fr/reset-password?token=abc123",
		},
		{
			"unrecognized_kind_falls_back_to_verification",
			auth.FlowKind("somethingElse"),
			"https://jved.fr/verification?token=abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auth.VerificationURL("https://jved.fr", "abc123", tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestVerificationURL_EscapesToken verifies token values are query-escaped.
*/
func TestVerificationURL_EscapesToken(t *testing.T) {
	got := auth.VerificationURL("https://jved.fr", "a b&c", auth.FlowEmailVerification)
	assert.Equal(t, "https://jved.fr/verification?token=a+b%26c", got)
}
