// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package validate

// # Field Constraints
//
// Authoritative length bounds for every user-submitted field the forum
// accepts. Handlers and services must go through the field validators below
// instead of re-encoding these numbers.

const (
	PseudoMinLen = 3
	PseudoMaxLen = 15

	PasswordMinLen = 8
	PasswordMaxLen = 24

	CommentMinLen = 3
	CommentMaxLen = 400

	SubjectMinLen = 3
	SubjectMaxLen = 40

	TopicNameMinLen = 3
	TopicNameMaxLen = 40
)

// Canonical form field names, shared by validators and handlers.
const (
	FieldPseudo          = "pseudo"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldComment         = "comment"
	FieldSubject         = "subject"
	FieldTopicName       = "topic_name"
)

// # Field Validators
//
// Each validator is pure and deterministic: one or two raw field values in,
// a [Result] out. No I/O ever happens here.

// Pseudo checks the display-name length bounds.
func Pseudo(value string) Result {
	v := &Validator{}
	v.LenBetween(FieldPseudo, value, PseudoMinLen, PseudoMaxLen)
	return v.Result()
}

// EmailAddress checks the value against the RFC 5322 address grammar.
// Malformed input yields exactly one error, never a panic or Go error.
func EmailAddress(value string) Result {
	v := &Validator{}
	v.Email(FieldEmail, value)
	return v.Result()
}

// Password applies the two independent password checks: composition/length,
// and confirmation match. Both can fail at once, yielding two errors.
func Password(password, confirmPassword string) Result {
	v := &Validator{}
	v.PasswordComposition(FieldPassword, password)
	v.Match(FieldConfirmPassword, password, confirmPassword, "Passwords do not match")
	return v.Result()
}

// Comment checks the post body length bounds.
func Comment(value string) Result {
	v := &Validator{}
	v.LenBetween(FieldComment, value, CommentMinLen, CommentMaxLen)
	return v.Result()
}

// Subject checks the topic subject length bounds.
func Subject(value string) Result {
	v := &Validator{}
	v.LenBetween(FieldSubject, value, SubjectMinLen, SubjectMaxLen)
	return v.Result()
}

// TopicName checks the topic name length bounds.
func TopicName(value string) Result {
	v := &Validator{}
	v.LenBetween(FieldTopicName, value, TopicNameMinLen, TopicNameMaxLen)
	return v.Result()
}
