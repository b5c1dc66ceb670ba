// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package session

import (
	"net/http"

	"github.com/jved/forum/internal/platform/respond"
)

// # HTTP Adapters

// Middleware resolves the request's session and injects the [*Session]
// handle into the request context.
//
// # Flow
//  1. Read the session cookie (absent for first-time visitors).
//  2. Load the identity from the store; store failure aborts with 500.
//  3. Refresh the cookie and hand the session to downstream handlers.
//
// Must run before any [Guard] middleware.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			s, err := m.Load(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// The session manager is the only producer of Set-Cookie on this
			// chain, so a rotation may drop the header queued below and
			// re-issue it with the fresh ID.
			s.refresh = func(current *Session) {
				writer.Header().Del("Set-Cookie")
				m.WriteCookie(writer, current)
			}

			m.WriteCookie(writer, s)

			ctx := WithContext(request.Context(), s)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// Guard converts a guard predicate into middleware.
//
// On a deny decision the request is terminated with a redirect to the
// decision's target and the handler never runs. This is the single point
// where access denial becomes control flow.
//
// # Usage
//
//	router.With(session.Guard(session.RequireElevated)).Get("/dashboard", ...)
func Guard(check func(*Identity) Decision) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var identity *Identity
			if s := FromContext(request.Context()); s != nil {
				identity = s.Identity()
			}

			decision := check(identity)
			if !decision.Allowed {
				respond.Redirect(writer, request, decision.RedirectTo)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
