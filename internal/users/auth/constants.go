// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import "time"

// # Credential Lifecycle Constraints

const (
	// TokenByteLength is the byte length of verification/reset token
	// randomness. 32 bytes hex-encode to the canonical 64-character value.
	TokenByteLength = 32

	// TokenTTL is the duration a verification or reset token remains valid.
	// Always exactly 24 hours from generation time.
	TokenTTL = 24 * time.Hour

	// ReferenceTimezone is the fixed zone expiry timestamps are computed in,
	// so expiry evaluation is deterministic regardless of server locale.
	ReferenceTimezone = "Europe/Paris"
)
