// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jved/forum/internal/platform/ctxutil"
	"github.com/jved/forum/internal/platform/mail"
)

// # Notification Dispatch

// Notifier composes verification/reset emails and hands them to the mail
// transport.
type Notifier struct {
	mailer  mail.Mailer
	baseURL string
}

// NewNotifier constructs a [Notifier].
//
// # Parameters
//   - mailer: The outbound transport.
//   - baseURL: Public origin used to build confirmation links.
func NewNotifier(mailer mail.Mailer, baseURL string) *Notifier {
	return &Notifier{mailer: mailer, baseURL: baseURL}
}

/*
SendVerification composes and dispatches the confirmation email for a flow.

Description: Builds the confirmation URL, selects one of the two fixed
subject/body templates keyed by the flow kind, and hands the message to the
transport. A transport failure is reported as false — never as an error —
so the caller explicitly decides on retry and user messaging.

Parameters:
  - ctx: context.Context
  - pseudo: string (recipient display name)
  - email: string (recipient address)
  - token: string (previously generated token value)
  - kind: FlowKind

Returns:
  - bool: true if the transport accepted the message
*/
func (notifier *Notifier) SendVerification(ctx context.Context, pseudo, email, token string, kind FlowKind) bool {
	verificationURL := VerificationURL(notifier.baseURL, token, kind)

	var subject, body string
	if kind == FlowPasswordReset {
		subject = "Reset your JVED password"
		body = fmt.Sprintf(
			"Hello %s,\n\nPlease click the following link to reset your password on JVED:\n%s\n\nThis link expires in 24 hours.\n\nRegards,\nThe JVED team",
			pseudo, verificationURL,
		)
	} else {
		subject = "Verify your email address on JVED"
		body = fmt.Sprintf(
			"Hello %s,\n\nPlease click the following link to verify your email address on JVED:\n%s\n\nThis link expires in 24 hours.\n\nRegards,\nThe JVED team",
			pseudo, verificationURL,
		)
	}

	if err := notifier.mailer.Send(ctx, email, subject, body); err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "notification_dispatch_failed",
			slog.String("flow", string(kind)),
			slog.Any("error", err),
		)
		return false
	}

	return true
}
