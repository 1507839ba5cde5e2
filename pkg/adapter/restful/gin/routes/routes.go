// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/dealer-web/pkg/adapter/config"
	"github.com/momeni/dealer-web/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/momeni/dealer-web/pkg/adapter/mail/smtp2go"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/adminrs"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/contactrs"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/sitemaprs"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/momeni/dealer-web/pkg/core/repo"
	"github.com/momeni/dealer-web/pkg/core/usecase/adminuc"
	"github.com/momeni/dealer-web/pkg/core/usecase/contactuc"
	"github.com/momeni/dealer-web/pkg/core/usecase/sitemapuc"
	"github.com/momeni/dealer-web/pkg/core/usecase/vehiclesuc"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries
// on them and accomplish those use cases. Each use case package is
// named like vehiclesuc and each repository package is named like
// vehiclesrp. Register instantiates a series of "resource" structs,
// from packages which are named like vehiclesrs, in order to adapt
// the use cases interfaces with the REST APIs. These resources are
// registered as request handlers using the e gin-gonic engine
// instance. Possible errors will be returned after possible wrapping.
func Register(
	ctx context.Context, e *gin.Engine, p repo.Pool, c *config.Config,
) error {
	vehiclesRepo := vehiclesrp.New(c.Site.ImageResolver())

	vehiclesUseCase, err := vehiclesuc.New(
		p, vehiclesRepo, c.Site.ID, c.Usecases.VehiclesOptions()...,
	)
	if err != nil {
		return fmt.Errorf("creating vehicles use case: %w", err)
	}
	relay := smtp2go.New(
		c.Mail.APIURL, c.Mail.APIKey(), c.Mail.Sender, c.Mail.To,
	)
	contactUseCase := contactuc.New(relay, c.Site.Name, c.Site.Domain)
	sitemapUseCase := sitemapuc.New(
		p, vehiclesRepo, c.Site.ID, c.Site.BaseURL,
	)
	adminUseCase := adminuc.New(p, vehiclesRepo, c.Site.ID)

	r := e.Group("/api/dealerweb/v1")
	vehiclesrs.Register(r, vehiclesUseCase)
	contactrs.Register(r, contactUseCase)
	adminrs.Register(r, adminUseCase, c.Usecases.AdminToken())
	sitemaprs.Register(e, sitemapUseCase)
	return nil
}
