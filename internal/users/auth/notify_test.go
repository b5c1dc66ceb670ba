// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jved/forum/internal/users/auth"
)

// fakeMailer records outbound messages and can simulate transport failure.
type fakeMailer struct {
	failWith error
	to       string
	subject  string
	body     string
	sent     int
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.to, m.subject, m.body = to, subject, body
	m.sent++
	return nil
}

/*
TestNotifier_SendVerification_EmailFlow verifies the verification template:
subject, greeting, and a link pointing at the verification path.
*/
func TestNotifier_SendVerification_EmailFlow(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := auth.NewNotifier(mailer, "https://jved.fr")

	sent := notifier.SendVerification(context.Background(), "jean", "jean@jved.fr", "tok-123", auth.FlowEmailVerification)

	require.True(t, sent)
	assert.Equal(t, "jean@jved.fr", mailer.to)
	assert.Equal(t, "Verify your email address on JVED", mailer.subject)
	assert.Contains(t, mailer.body, "Hello jean,")
	assert.Contains(t, mailer.body, "https://jved.fr/verification?token=tok-123")
}

/*
TestNotifier_SendVerification_ResetFlow verifies the reset template selects
the reset path and subject.
*/
func TestNotifier_SendVerification_ResetFlow(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := auth.NewNotifier(mailer, "https://jved.fr")

	sent := notifier.SendVerification(context.Background(), "zoe", "zoe@jved.fr", "tok-456", auth.FlowPasswordReset)

	require.True(t, sent)
	assert.Equal(t, "Reset your JVED password", mailer.subject)
	assert.Contains(t, mailer.body, "https://jved.fr/reset-password?token=tok-456")
}

/*
TestNotifier_SendVerification_TransportFailure verifies a transport error is
reported as false, never as a panic or swallowed success.
*/
func TestNotifier_SendVerification_TransportFailure(t *testing.T) {
	mailer := &fakeMailer{failWith: errors.New("smtp: connection refused")}
	notifier := auth.NewNotifier(mailer, "https://jved.fr")

	sent := notifier.SendVerification(context.Background(), "jean", "jean@jved.fr", "tok-789", auth.FlowEmailVerification)

	assert.False(t, sent)
	assert.Zero(t, mailer.sent)
}
