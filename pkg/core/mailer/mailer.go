// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mailer exports the expected interface for the outbound
// transactional email relay. For the corresponding implementation,
// check the pkg/adapter/mail/smtp2go package.
package mailer

import "context"

// Email is one outbound message. The bodies are prepared by the
// caller; the relay only transports them.
type Email struct {
	Subject  string
	HTMLBody string
	TextBody string
	// ReplyTo carries the visitor's address, so the dealership can
	// answer a contact-form message directly from its mailbox.
	ReplyTo string
}

// Mailer represents the expectations from a transactional email relay
// adapter. Send performs exactly one delivery attempt; it never
// retries and a failure is terminal for that attempt.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}
