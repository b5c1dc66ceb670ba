// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package session

import (
	"github.com/jved/forum/internal/platform/constants"
)

// # Access Gate

// Decision is the outcome of a guard predicate.
//
// Guards never terminate the request themselves; the web layer acts on the
// decision (redirect on deny). This keeps the gate free of framework side
// effects and testable with a constructed identity.
type Decision struct {
	// Allowed reports whether the request may proceed to its handler.
	Allowed bool
	// RedirectTo is the target for denied requests. Empty when Allowed.
	RedirectTo string
}

// Allow is the proceed decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// DenyToHome is the uniform denial: abort the request, redirect to home.
func DenyToHome() Decision {
	return Decision{RedirectTo: constants.HomePath}
}

// RequireAuthenticated allows only requests whose session holds an identity.
func RequireAuthenticated(identity *Identity) Decision {
	if identity == nil {
		return DenyToHome()
	}
	return Allow()
}

// RequireAnonymous allows only requests with NO identity. It keeps
// already-logged-in users away from the login and registration pages.
func RequireAnonymous(identity *Identity) Decision {
	if identity != nil {
		return DenyToHome()
	}
	return Allow()
}

// RequireElevated allows moderators and superAdmins.
func RequireElevated(identity *Identity) Decision {
	if identity == nil || !identity.Role.Elevated() {
		return DenyToHome()
	}
	return Allow()
}

// RequireSuperAdmin allows superAdmins only.
func RequireSuperAdmin(identity *Identity) Decision {
	if identity == nil || !identity.Role.SuperAdmin() {
		return DenyToHome()
	}
	return Allow()
}
