// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the public vehicles resource, allowing
// the catalog listing, detail, and homepage REST APIs to be accepted
// and delegated to the vehicles use case respectively.
package vehiclesrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/core/usecase/vehiclesuc"
)

type resource struct {
	vehicles *vehiclesuc.UseCase
}

// Register instantiates a resource adapting the vehicles use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/dealerweb/v1/vehicles
//     in order to obtain the filtered catalog listing together with
//     the filter domains of the complete listing.
//  2. GET request to /api/dealerweb/v1/vehicles/:slug
//     in order to obtain one vehicle detail page payload.
//  3. GET request to /api/dealerweb/v1/homepage-vehicles
//     in order to obtain the landing page featured vehicles.
func Register(r *gin.RouterGroup, vehicles *vehiclesuc.UseCase) {
	rs := &resource{vehicles: vehicles}
	r.GET("vehicles", rs.ListVehicles)
	r.GET("vehicles/:slug", rs.GetVehicle)
	r.GET("homepage-vehicles", rs.HomepageVehicles)
}

func (rs *resource) ListVehicles(c *gin.Context) {
	adjust, ok := rs.DserListingReq(c)
	if !ok {
		return
	}
	l, err := rs.vehicles.Listing(c, adjust)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerListing(l, time.Now()))
}

func (rs *resource) GetVehicle(c *gin.Context) {
	v, err := rs.vehicles.GetBySlug(c, c.Param("slug"))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehicle(v, time.Now()))
}

func (rs *resource) HomepageVehicles(c *gin.Context) {
	list, err := rs.vehicles.Homepage(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehicles(list, time.Now()))
}
