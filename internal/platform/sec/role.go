// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// The model is deliberately a fixed two-tier privileged set (moderator and
// superAdmin) above ordinary members — there is no general policy engine.
// Using a dedicated type instead of raw string comparison removes the
// typo-class bugs that plague literal role checks.
type Role string

const (
	// RoleSuperAdmin has unrestricted access, including user administration.
	RoleSuperAdmin Role = "superAdmin"

	// RoleModerator can manage community content (topics, posts, categories).
	RoleModerator Role = "moderator"

	// RoleOrdinary is the default role for standard registered users.
	RoleOrdinary Role = "ordinary"
)

// # Authorization Predicates

// Known reports whether the role is one of the declared values.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleModerator, RoleOrdinary:
		return true
	default:
		return false
	}
}

// Elevated reports whether the role belongs to the privileged set
// (moderator or superAdmin).
func (r Role) Elevated() bool {
	switch r {
	case RoleSuperAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// SuperAdmin reports whether the role is exactly superAdmin.
func (r Role) SuperAdmin() bool {
	return r == RoleSuperAdmin
}
