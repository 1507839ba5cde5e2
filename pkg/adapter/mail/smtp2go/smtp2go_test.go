// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package smtp2go_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/dealer-web/pkg/adapter/mail/smtp2go"
	"github.com/momeni/dealer-web/pkg/core/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmail() mailer.Email {
	return mailer.Email{
		Subject:  "Nová správa",
		HTMLBody: "<p>Ahoj</p>",
		TextBody: "Ahoj",
		ReplyTo:  "visitor@example.sk",
	}
}

func TestSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/email/send", r.URL.Path)
			assert.Equal(
				t, "application/json", r.Header.Get("Content-Type"),
			)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &got))
			_, _ = w.Write(
				[]byte(`{"data":{"succeeded":1,"failed":0}}`),
			)
		},
	))
	defer srv.Close()

	c := smtp2go.New(
		srv.URL, "api-key-1", "web@example.sk", "info@example.sk",
	)
	err := c.Send(context.Background(), sampleEmail())
	require.NoError(t, err)

	assert.Equal(t, "api-key-1", got["api_key"])
	assert.Equal(t, []any{"info@example.sk"}, got["to"])
	assert.Equal(t, "web@example.sk", got["sender"])
	assert.Equal(t, "Nová správa", got["subject"])
	assert.Equal(t, "<p>Ahoj</p>", got["html_body"])
	assert.Equal(t, "Ahoj", got["text_body"])
	require.Len(t, got["custom_headers"], 1)
	hdr := got["custom_headers"].([]any)[0].(map[string]any)
	assert.Equal(t, "Reply-To", hdr["header"])
	assert.Equal(t, "visitor@example.sk", hdr["value"])
}

func TestSendWithoutReplyTo(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &got))
			_, _ = w.Write([]byte(`{"data":{"succeeded":1}}`))
		},
	))
	defer srv.Close()

	c := smtp2go.New(srv.URL, "k", "web@example.sk", "info@example.sk")
	e := sampleEmail()
	e.ReplyTo = ""
	require.NoError(t, c.Send(context.Background(), e))
	_, found := got["custom_headers"]
	assert.False(t, found, "no custom headers expected")
}

func TestSendFailures(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{"http-error", http.StatusUnauthorized, `{"data":{"error":"denied","error_code":"E"}}`},
		{"api-error", http.StatusOK, `{"data":{"error":"bad sender","error_code":"E"}}`},
		{"zero-succeeded", http.StatusOK, `{"data":{"succeeded":0,"failed":1}}`},
		{"malformed-body", http.StatusOK, `{]`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = w.Write([]byte(tc.body))
				},
			))
			defer srv.Close()

			c := smtp2go.New(
				srv.URL, "k", "web@example.sk", "info@example.sk",
			)
			err := c.Send(context.Background(), sampleEmail())
			assert.Error(t, err)
		})
	}
}
