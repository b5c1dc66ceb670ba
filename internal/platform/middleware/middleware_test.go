// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jved/forum/internal/platform/constants"
	"github.com/jved/forum/internal/platform/middleware"
)

// corsConfig is a stub [middleware.AppConfig].
type corsConfig struct {
	development  bool
	extraOrigins []string
}

func (c corsConfig) IsDevelopment() bool           { return c.development }
func (c corsConfig) AllowedExtraOrigins() []string { return c.extraOrigins }

/*
TestCORS verifies the origin allowlist: open in development, first-party
suffix plus configured extra origins in production.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		cfg       corsConfig
		origin    string
		wantAllow bool
	}{
		{
			name:      "development_allows_any_origin",
			cfg:       corsConfig{development: true},
			origin:    "http://localhost:5173",
			wantAllow: true,
		},
		{
			name:      "production_allows_first_party_suffix",
			cfg:       corsConfig{},
			origin:    "https://www.jved.fr",
			wantAllow: true,
		},
		{
			name:      "production_allows_configured_extra_origin",
			cfg:       corsConfig{extraOrigins: []string{"https://staging.example.com"}},
			origin:    "https://staging.example.com",
			wantAllow: true,
		},
		{
			name:      "production_blocks_unknown_origin",
			cfg:       corsConfig{extraOrigins: []string{"https://staging.example.com"}},
			origin:    "https://evil.example.com",
			wantAllow: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := middleware.CORS(tc.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set(constants.HeaderOrigin, tc.origin)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			allowed := recorder.Header().Get("Access-Control-Allow-Origin")
			if tc.wantAllow {
				assert.Equal(t, tc.origin, allowed)
			} else {
				assert.Empty(t, allowed)
			}
		})
	}
}

/*
TestCORS_Preflight verifies OPTIONS requests terminate with 204 and never
reach the handler.
*/
func TestCORS_Preflight(t *testing.T) {
	handlerRan := false
	handler := middleware.CORS(corsConfig{development: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	request := httptest.NewRequest(http.MethodOptions, "/", nil)
	request.Header.Set(constants.HeaderOrigin, "http://localhost:5173")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
