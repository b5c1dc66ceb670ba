// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

// Package validate provides a chainable Validator that collects field-level
// errors, plus the canonical field validators for every form the forum accepts.
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
//
// # Contract
//
// Every validator returns a [Result]: an ordered list of field errors where an
// empty list means "valid". Expected invalid input never surfaces as a Go
// error; only genuine infrastructure failures do, and those belong to the
// repository-backed checkers in the domain packages, not here.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jved/forum/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// # Validation Result

// Result is the uniform return contract for input checking: an ordered
// sequence of field-level errors. An empty Result means the input is valid.
type Result []apperr.FieldError

// Valid reports whether the result carries no errors.
func (r Result) Valid() bool { return len(r) == 0 }

// Messages flattens the result into its human-readable error strings.
func (r Result) Messages() []string {
	if len(r) == 0 {
		return nil
	}
	messages := make([]string, 0, len(r))
	for _, fieldError := range r {
		messages = append(messages, fieldError.Message)
	}
	return messages
}

// Err converts a non-empty Result into a VALIDATION_ERROR [apperr.AppError].
// A valid Result converts to nil.
func (r Result) Err() error {
	if len(r) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", r...)
}

// # Chainable Validator

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs Result
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// LenBetween fails with a single error if the Unicode character count falls
// outside the [min, max] range (inclusive).
//
// Character count — not byte count — so multi-byte text is not penalized.
func (v *Validator) LenBetween(field, value string, min, max int) *Validator {
	length := utf8.RuneCountInString(value)
	if length < min || length > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d characters", min, max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// PasswordComposition fails with a single error unless the value is 8 to 24
// characters long and contains at least one lowercase letter, one uppercase
// letter, one digit, and one special (non-alphanumeric) character.
func (v *Validator) PasswordComposition(field, value string) *Validator {
	if !passwordWellComposed(value) {
		v.add(field, "Must be 8 to 24 characters and contain at least one lowercase letter, one uppercase letter, one digit and one special character")
	}
	return v
}

// Match fails with the given message if the two values differ.
func (v *Validator) Match(field, value, other, message string) *Validator {
	if value != other {
		v.add(field, message)
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("page", page < 1, "Must be positive")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Result returns the accumulated [Result]. Empty means all rules passed.
func (v *Validator) Result() Result {
	return v.errs
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	return v.errs.Err()
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// passwordWellComposed checks length and the four required character classes
// in a single pass. A special character is any rune that is neither a letter
// nor a digit (underscore included).
func passwordWellComposed(value string) bool {
	length := utf8.RuneCountInString(value)
	if length < PasswordMinLen || length > PasswordMaxLen {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '_' || !unicode.IsLetter(r):
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
