// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jved/forum/internal/platform/config"
)

/*
TestAllowedExtraOrigins verifies parsing of the comma-separated origin list.
*/
func TestAllowedExtraOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "https://staging.example.com", want: []string{"https://staging.example.com"}},
		{
			name: "multiple_with_whitespace",
			raw:  " https://a.example.com , https://b.example.com ",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{name: "trailing_comma", raw: "https://a.example.com,", want: []string{"https://a.example.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{ExtraOrigins: tc.raw}
			assert.Equal(t, tc.want, cfg.AllowedExtraOrigins())
		})
	}
}
