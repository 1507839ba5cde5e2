// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package smtp2go adapts the SMTP2GO HTTP API as an implementation of
// the core mailer.Mailer interface. Relayed emails are always sent to
// a single fixed recipient address (the dealership inbox) from a
// fixed verified sender address, while an optional Reply-To header
// carries the address of the actual message author.
package smtp2go

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/dealer-web/pkg/core/mailer"
)

// Client relays emails through the SMTP2GO /v3/email/send endpoint.
// It implements the mailer.Mailer interface.
type Client struct {
	apiURL string // base API URL without a trailing slash
	apiKey string
	sender string // verified sender email address
	to     string // fixed recipient email address
	hc     *http.Client
}

// New instantiates a Client relaying emails from the sender address to
// the fixed to address, authenticating with the given apiKey against
// the SMTP2GO API deployment at apiURL.
func New(apiURL, apiKey, sender, to string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		sender: sender,
		to:     to,
		hc:     &http.Client{Timeout: 15 * time.Second},
	}
}

type header struct {
	Header string `json:"header"`
	Value  string `json:"value"`
}

type sendReq struct {
	APIKey   string   `json:"api_key"`
	To       []string `json:"to"`
	Sender   string   `json:"sender"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
	TextBody string   `json:"text_body"`
	Headers  []header `json:"custom_headers,omitempty"`
}

type sendResp struct {
	Data struct {
		Succeeded int    `json:"succeeded"`
		Failed    int    `json:"failed"`
		Error     string `json:"error"`
	} `json:"data"`
}

// Send relays the given email through the SMTP2GO API, returning an
// error if the API rejects the message or reports zero succeeded
// deliveries.
func (c *Client) Send(ctx context.Context, e mailer.Email) error {
	sr := sendReq{
		APIKey:   c.apiKey,
		To:       []string{c.to},
		Sender:   c.sender,
		Subject:  e.Subject,
		HTMLBody: e.HTMLBody,
		TextBody: e.TextBody,
	}
	if e.ReplyTo != "" {
		sr.Headers = []header{
			{Header: "Reply-To", Value: e.ReplyTo},
		}
	}
	body, err := json.Marshal(sr)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.apiURL+"/v3/email/send",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("posting request: %w", err)
	}
	defer resp.Body.Close()
	rb, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"unexpected status %d: %s", resp.StatusCode, rb,
		)
	}
	var sres sendResp
	if err := json.Unmarshal(rb, &sres); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}
	if sres.Data.Error != "" {
		return fmt.Errorf("relay error: %s", sres.Data.Error)
	}
	if sres.Data.Succeeded == 0 {
		return fmt.Errorf(
			"relay delivered to %d recipients", sres.Data.Succeeded,
		)
	}
	return nil
}
