// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package contactrs realizes the contact resource, accepting contact
// form submission REST APIs and delegating them to the contact use
// case. The endpoint is called cross-origin by the statically hosted
// frontend, so it answers CORS preflights too.
package contactrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/core/usecase/contactuc"
)

type resource struct {
	contact *contactuc.UseCase
}

// Register instantiates a resource adapting the contact use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dealerweb/v1/contact
//     in order to relay one contact form submission by email.
//  2. OPTIONS request to /api/dealerweb/v1/contact
//     in order to answer the browser CORS preflight.
func Register(r *gin.RouterGroup, contact *contactuc.UseCase) {
	rs := &resource{contact: contact}
	r.POST("contact", cors, rs.SubmitMessage)
	r.OPTIONS("contact", cors, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func cors(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

type rawMessageReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (rs *resource) SubmitMessage(c *gin.Context) {
	req := &rawMessageReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	err := rs.contact.Submit(c, contactuc.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
