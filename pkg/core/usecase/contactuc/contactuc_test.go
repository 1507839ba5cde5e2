// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package contactuc_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/mailer"
	"github.com/momeni/dealer-web/pkg/core/usecase/contactuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []mailer.Email
	err  error
}

func (fm *fakeMailer) Send(_ context.Context, e mailer.Email) error {
	if fm.err != nil {
		return fm.err
	}
	fm.sent = append(fm.sent, e)
	return nil
}

func validMessage() contactuc.Message {
	return contactuc.Message{
		Name:    "Ján Novák",
		Email:   "jan.novak@example.sk",
		Phone:   "+421 900 000 000",
		Subject: "Obhliadka",
		Message: "Dobrý deň,\nmám záujem o obhliadku.",
	}
}

func TestSubmitRelaysEmail(t *testing.T) {
	fm := &fakeMailer{}
	uc := contactuc.New(fm, "MT Autos", "mtautos.sk")
	err := uc.Submit(context.Background(), validMessage())
	require.NoError(t, err)
	require.Len(t, fm.sent, 1)

	e := fm.sent[0]
	assert.Equal(t, "MT Autos - Kontaktný formulár: Obhliadka", e.Subject)
	assert.Equal(t, "jan.novak@example.sk", e.ReplyTo)
	assert.Contains(t, e.HTMLBody, "Ján Novák")
	assert.Contains(t, e.HTMLBody, "mailto:jan.novak@example.sk")
	assert.Contains(t, e.HTMLBody, "mám záujem o obhliadku.")
	assert.Contains(t, e.HTMLBody, "<br>")
	assert.Contains(t, e.HTMLBody, "mtautos.sk")
	assert.Contains(t, e.TextBody, "Ján Novák")
	assert.Contains(t, e.TextBody, "mám záujem o obhliadku.")
}

func TestSubmitDefaultSubject(t *testing.T) {
	fm := &fakeMailer{}
	uc := contactuc.New(fm, "MT Autos", "mtautos.sk")
	msg := validMessage()
	msg.Subject = ""
	msg.Phone = ""
	require.NoError(t, uc.Submit(context.Background(), msg))
	require.Len(t, fm.sent, 1)
	e := fm.sent[0]
	assert.Equal(
		t, "MT Autos - Nová správa z kontaktného formulára", e.Subject,
	)
	// optional empty fields render as a placeholder, not as blanks
	assert.Contains(t, e.HTMLBody, "Neuvedené")
	assert.Contains(t, e.TextBody, "Neuvedené")
}

func TestSubmitEscapesHTML(t *testing.T) {
	fm := &fakeMailer{}
	uc := contactuc.New(fm, "MT Autos", "mtautos.sk")
	msg := validMessage()
	msg.Name = "<script>alert(1)</script>"
	msg.Message = "a < b & b > c"
	require.NoError(t, uc.Submit(context.Background(), msg))
	require.Len(t, fm.sent, 1)
	assert.NotContains(t, fm.sent[0].HTMLBody, "<script>")
	assert.Contains(t, fm.sent[0].HTMLBody, "a &lt; b &amp; b &gt; c")
}

func TestSubmitValidation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(msg *contactuc.Message)
	}{
		{"missing-name", func(m *contactuc.Message) { m.Name = "" }},
		{"missing-email", func(m *contactuc.Message) { m.Email = "" }},
		{"missing-message", func(m *contactuc.Message) { m.Message = "" }},
		{"bad-email", func(m *contactuc.Message) { m.Email = "not-an-email" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fm := &fakeMailer{}
			uc := contactuc.New(fm, "MT Autos", "mtautos.sk")
			msg := validMessage()
			tc.mutate(&msg)
			err := uc.Submit(context.Background(), msg)
			var ce *cerr.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, http.StatusBadRequest, ce.HTTPStatusCode)
			assert.Empty(t, fm.sent, "no relay on validation failure")
		})
	}
}

func TestSubmitRelayFailure(t *testing.T) {
	fm := &fakeMailer{err: errors.New("relay down")}
	uc := contactuc.New(fm, "MT Autos", "mtautos.sk")
	err := uc.Submit(context.Background(), validMessage())
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusServiceUnavailable, ce.HTTPStatusCode)
	assert.True(
		t, strings.Contains(err.Error(), "Nepodarilo sa odoslať email"),
	)
}
