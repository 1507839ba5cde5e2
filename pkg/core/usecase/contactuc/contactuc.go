// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package contactuc contains the contact UseCase which validates
// contact-form submissions and relays them to the dealership mailbox
// through the mailer port. Validation failures carry the site-locale
// messages and never reach the relay; a relay failure is terminal for
// that attempt and callers are expected to keep the submitted values,
// so the visitor can retry explicitly.
package contactuc

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/log"
	"github.com/momeni/dealer-web/pkg/core/mailer"
)

// These are the site-locale (Slovak) messages surfaced to visitors.
const (
	msgMissingFields = "Meno, email a správa sú povinné polia"
	msgBadEmail      = "Neplatný formát emailu"
	msgRelayFailed   = "Nepodarilo sa odoslať email. Skúste to prosím neskôr."
)

// Message is one contact-form submission. Name, Email, and Message
// are required; Phone and Subject are optional.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// UseCase represents the contact use case. It holds the mail relay
// port and the site identity rendered into the outbound emails.
type UseCase struct {
	mailer   mailer.Mailer
	siteName string // email subject prefix, e.g. "MT Autos"
	domain   string // site domain mentioned in the email footer
	validate *validator.Validate
}

// New instantiates a contact use case. The siteName prefixes outbound
// email subjects and the domain is named in the email footer.
func New(m mailer.Mailer, siteName, domain string) *UseCase {
	return &UseCase{
		mailer:   m,
		siteName: siteName,
		domain:   domain,
		validate: validator.New(),
	}
}

// Submit validates the `msg` submission and relays it as one email.
// Missing required fields or a malformed email address are reported
// as cerr.BadRequest without any relay call, so no partial submission
// occurs. A relay failure is reported as cerr.Unavailable with the
// generic site-locale message.
func (contact *UseCase) Submit(ctx context.Context, msg Message) error {
	switch {
	case msg.Name == "" || msg.Email == "" || msg.Message == "":
		return cerr.BadRequest(errors.New(msgMissingFields))
	case contact.validate.Var(msg.Email, "email") != nil:
		return cerr.BadRequest(errors.New(msgBadEmail))
	}
	e := mailer.Email{
		Subject:  contact.subject(msg),
		HTMLBody: contact.htmlBody(msg),
		TextBody: contact.textBody(msg),
		ReplyTo:  msg.Email,
	}
	if err := contact.mailer.Send(ctx, e); err != nil {
		log.Warn(ctx, "contact email relay failed", log.Err("err", err))
		return cerr.Unavailable(
			fmt.Errorf("%s: %w", msgRelayFailed, err),
		)
	}
	return nil
}

func (contact *UseCase) subject(msg Message) string {
	if msg.Subject == "" {
		return fmt.Sprintf(
			"%s - Nová správa z kontaktného formulára",
			contact.siteName,
		)
	}
	return fmt.Sprintf(
		"%s - Kontaktný formulár: %s", contact.siteName, msg.Subject,
	)
}

func orNeuvedene(s string) string {
	if s == "" {
		return "Neuvedené"
	}
	return s
}

var htmlTmpl = template.Must(template.New("contact").Parse(`
<h2>Nová správa z kontaktného formulára</h2>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr><td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Meno:</td><td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td></tr>
  <tr><td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Email:</td><td style="padding: 10px; border: 1px solid #ddd;"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
  <tr><td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Telefón:</td><td style="padding: 10px; border: 1px solid #ddd;">{{.Phone}}</td></tr>
  <tr><td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Predmet:</td><td style="padding: 10px; border: 1px solid #ddd;">{{.Subject}}</td></tr>
  <tr><td style="padding: 10px; border: 1px solid #ddd; font-weight: bold;">Správa:</td><td style="padding: 10px; border: 1px solid #ddd;">{{.Message}}</td></tr>
</table>
<p style="margin-top: 20px; color: #666; font-size: 12px;">
  Táto správa bola odoslaná z kontaktného formulára na {{.Domain}}
</p>`))

func (contact *UseCase) htmlBody(msg Message) string {
	var b strings.Builder
	// template.HTML lets the validated newlines render as <br>;
	// everything else is escaped by the template engine
	escaped := template.HTMLEscapeString(msg.Message)
	_ = htmlTmpl.Execute(&b, struct {
		Name, Email, Phone, Subject string
		Message                     template.HTML
		Domain                      string
	}{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   orNeuvedene(msg.Phone),
		Subject: orNeuvedene(msg.Subject),
		Message: template.HTML(
			strings.ReplaceAll(escaped, "\n", "<br>"),
		),
		Domain: contact.domain,
	})
	return b.String()
}

func (contact *UseCase) textBody(msg Message) string {
	return fmt.Sprintf(`Nová správa z kontaktného formulára

Meno: %s
Email: %s
Telefón: %s
Predmet: %s

Správa:
%s

---
Táto správa bola odoslaná z kontaktného formulára na %s
`,
		msg.Name, msg.Email,
		orNeuvedene(msg.Phone), orNeuvedene(msg.Subject),
		msg.Message, contact.domain,
	)
}
