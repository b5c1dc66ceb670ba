// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

/*
Package session implements server-side browser sessions and the access gate
built on top of them.

A session exists in the store if and only if the user has successfully
authenticated; an absent identity means "anonymous". The identity is always
written wholesale — partial or additive writes are disallowed so the session
can never hold stale or contradictory claims.

Architecture:

  - Identity: the five authenticated claims copied from a user record.
  - Store: abstracted persistence (Redis) keyed by an opaque session ID.
  - Manager: cookie handling and per-request [Session] construction.
  - Guard: pure predicates returning a [Decision] the web layer acts upon.
*/
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/constants"
	"github.com/jved/forum/internal/platform/ctxkey"
	"github.com/jved/forum/internal/platform/sec"
)

// # Domain Entities

// Identity holds the authenticated user's claims for the duration of a
// browser session.
type Identity struct {
	ID       string   `json:"id"`
	Pseudo   string   `json:"pseudo"`
	Email    string   `json:"email"`
	Role     sec.Role `json:"role"`
	Template string   `json:"template"`
}

// # Persistence Contract

// ErrNoSession is returned by a [Store] when no identity exists for the
// given session ID (anonymous visitor or expired session).
var ErrNoSession = errors.New("session: no identity stored")

// Store defines the persistence contract for session identities.
type Store interface {
	// Get returns the identity stored under the session ID, or [ErrNoSession].
	Get(ctx context.Context, sessionID string) (*Identity, error)

	// Put replaces the identity stored under the session ID, with a TTL.
	Put(ctx context.Context, sessionID string, identity *Identity, ttl time.Duration) error

	// Delete removes the identity stored under the session ID.
	Delete(ctx context.Context, sessionID string) error
}

// # Per-Request Session Handle

// Session is the explicit, per-request session context object.
//
// It is constructed by the [Manager] middleware and passed to guards and
// handlers through the request context — never through hidden global state.
//
// # Concurrency
//
// A Session is request-scoped and is not safe for concurrent use.
type Session struct {
	id       string
	identity *Identity
	store    Store
	ttl      time.Duration

	// refresh re-issues the session cookie after the ID changes. Set by the
	// manager middleware; nil when the session was built outside a request.
	refresh func(*Session)
}

// ID returns the opaque session identifier.
func (s *Session) ID() string { return s.id }

// Identity returns the authenticated identity, or nil for anonymous visitors.
func (s *Session) Identity() *Identity { return s.identity }

// Authenticated reports whether the session holds an identity.
func (s *Session) Authenticated() bool { return s.identity != nil }

// SetIdentity replaces the session identity wholesale and persists it under
// a freshly issued session ID.
//
// Exactly the five declared claims are copied from the given identity; the
// previous identity, if any, is overwritten in full. The ID rotation on
// privilege change means a cookie value captured before login can never name
// an authenticated session.
func (s *Session) SetIdentity(ctx context.Context, identity Identity) error {
	stored := Identity{
		ID:       identity.ID,
		Pseudo:   identity.Pseudo,
		Email:    identity.Email,
		Role:     identity.Role,
		Template: identity.Template,
	}

	freshID, err := sec.GenerateSecureToken(sessionIDByteLength)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := s.store.Put(ctx, freshID, &stored, s.ttl); err != nil {
		return apperr.Internal(err)
	}
	if err := s.store.Delete(ctx, s.id); err != nil {
		return apperr.Internal(err)
	}

	s.id = freshID
	s.identity = &stored
	if s.refresh != nil {
		s.refresh(s)
	}
	return nil
}

// Clear destroys the session identity (logout).
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.id); err != nil {
		return apperr.Internal(err)
	}
	s.identity = nil
	return nil
}

// # Session Manager

// sessionIDByteLength gives 256 bits of entropy per session ID.
const sessionIDByteLength = 32

// Manager loads and persists sessions around the HTTP request lifecycle.
type Manager struct {
	store         Store
	ttl           time.Duration
	secureCookies bool
}

// NewManager constructs a [Manager].
//
// # Parameters
//   - store: The backing identity store.
//   - ttl: How long an idle identity survives.
//   - secureCookies: Whether the session cookie requires HTTPS (production).
func NewManager(store Store, ttl time.Duration, secureCookies bool) *Manager {
	return &Manager{store: store, ttl: ttl, secureCookies: secureCookies}
}

// Load resolves the request's session from its cookie.
//
// A missing cookie or an unknown/expired session ID yields an anonymous
// session with a freshly issued ID. A store failure is surfaced as an
// infrastructure error, never silently treated as anonymous.
func (m *Manager) Load(request *http.Request) (*Session, error) {
	sessionID := ""
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	if sessionID != "" {
		identity, err := m.store.Get(request.Context(), sessionID)
		switch {
		case err == nil:
			return &Session{id: sessionID, identity: identity, store: m.store, ttl: m.ttl}, nil
		case errors.Is(err, ErrNoSession):
			// Stale cookie: fall through and issue a fresh anonymous session.
		default:
			return nil, apperr.Internal(err)
		}
	}

	freshID, err := sec.GenerateSecureToken(sessionIDByteLength)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Session{id: freshID, store: m.store, ttl: m.ttl}, nil
}

// WriteCookie sets the session cookie on the response.
func (m *Manager) WriteCookie(writer http.ResponseWriter, s *Session) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    s.ID(),
		Path:     constants.SessionCookiePath,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// # Context Plumbing

// WithContext returns a new context carrying the session handle.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxkey.KeySession, s)
}

// FromContext retrieves the session handle placed by the manager middleware.
// Returns nil when no session middleware ran for this request.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxkey.KeySession).(*Session)
	return s
}
