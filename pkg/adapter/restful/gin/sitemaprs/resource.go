// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sitemaprs realizes the sitemap resource, serving the
// crawler-facing sitemap XML document built by the sitemap use case.
package sitemaprs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/core/usecase/sitemapuc"
)

type resource struct {
	sitemap *sitemapuc.UseCase
}

// Register instantiates a resource adapting the sitemap use case
// instance with the GET /sitemap.xml API. Unlike the JSON resources,
// the sitemap is registered at the engine root because crawlers
// expect to find it right next to robots.txt.
func Register(e *gin.Engine, sitemap *sitemapuc.UseCase) {
	rs := &resource{sitemap: sitemap}
	e.GET("/sitemap.xml", rs.GetSitemap)
}

func (rs *resource) GetSitemap(c *gin.Context) {
	doc, err := rs.sitemap.Build(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
}
