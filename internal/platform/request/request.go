// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jved/forum/internal/platform/apperr"
	"github.com/jved/forum/internal/platform/validate"
	"github.com/jved/forum/internal/users/session"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Identity extracts the authenticated session identity from the request.

Returns nil if the request is anonymous.
*/
func Identity(request *http.Request) *session.Identity {
	s := session.FromContext(request.Context())
	if s == nil {
		return nil
	}
	return s.Identity()
}

/*
RequiredIdentity ensures the request is authenticated and returns the identity.

Returns:
  - *session.Identity: The authenticated claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredIdentity(request *http.Request) (*session.Identity, error) {
	identity := Identity(request)
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return identity, nil
}
