// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

// Package sec provides cryptographic primitives for the platform.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, random
// token generation, role semantics) from the domain logic. Domain packages
// consume it as an infrastructure service.
package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSecureToken returns byteLength bytes of cryptographically secure
// randomness, hex-encoded (the resulting string is 2*byteLength characters).
//
// Tokens produced here act as bearer credentials for account-sensitive
// actions, so a general-purpose PRNG is never acceptable as a source.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Stores persist only this digest so that a leaked datastore never yields
// usable bearer tokens.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
