// Copyright (c) 2026 JVED. All rights reserved.
// Author: jved@contact.fr

/*
Package mail provides the outbound mail transport for the platform.

It exposes a minimal [Mailer] contract consumed by the notification layer and
a plain SMTP implementation suitable for a local relay (MailDev in development,
a real relay in production).

Architecture:

  - Transport only: no message composition happens here. Callers hand over a
    fully built recipient/subject/body triple.
  - Deployment config: SMTP host and port come from configuration, they are
    never computed by the application.
*/
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer is the contract for handing a composed message to a transport.
type Mailer interface {
	// Send delivers a single plain-text message. A transport failure is
	// returned as an error; the caller decides on retry/user-messaging policy.
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers messages through a plain SMTP relay.
type SMTPMailer struct {
	host string
	port int
	from string
}

// NewSMTPMailer constructs an [SMTPMailer] bound to a relay endpoint.
func NewSMTPMailer(host string, port int, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from}
}

// Send implements [Mailer] over net/smtp without authentication.
//
// The local relay model (MailDev container) does not require AUTH; a
// production deployment fronts this with an authenticated relay host.
func (mailer *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail: send aborted: %w", err)
	}

	message := buildMessage(mailer.from, to, subject, body)
	address := fmt.Sprintf("%s:%d", mailer.host, mailer.port)

	if err := smtp.SendMail(address, nil, mailer.from, []string{to}, message); err != nil {
		return fmt.Errorf("mail: smtp delivery to %s failed: %w", address, err)
	}

	return nil
}

// buildMessage assembles the RFC 5322 header/body byte stream.
func buildMessage(from, to, subject, body string) []byte {
	var builder strings.Builder
	builder.WriteString("From: " + from + "\r\n")
	builder.WriteString("To: " + to + "\r\n")
	builder.WriteString("Subject: " + subject + "\r\n")
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(body)
	return []byte(builder.String())
}
