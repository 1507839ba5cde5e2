// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminrs realizes the admin vehicles resource, allowing the
// inventory manipulation REST APIs to be accepted and delegated to
// the admin use case. All routes are guarded by a static bearer
// token; an empty configured token keeps the routes unregistered.
package adminrs

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/momeni/dealer-web/pkg/core/usecase/adminuc"
)

type resource struct {
	admin *adminuc.UseCase
}

// Register instantiates a resource adapting the admin use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/dealerweb/v1/admin/vehicles
//     in order to create a vehicle.
//  2. PUT request to /api/dealerweb/v1/admin/vehicles/:vid
//     in order to overwrite the attributes of a vehicle.
//  3. DELETE request to /api/dealerweb/v1/admin/vehicles/:vid
//     in order to soft-delete a vehicle.
//
// The token is the shared bearer token which all admin requests must
// present; if it is empty, no route is registered at all.
func Register(r *gin.RouterGroup, admin *adminuc.UseCase, token string) {
	if token == "" {
		return
	}
	rs := &resource{admin: admin}
	g := r.Group("admin", requireToken(token))
	g.POST("vehicles", rs.CreateVehicle)
	g.PUT("vehicles/:vid", rs.UpdateVehicle)
	g.DELETE("vehicles/:vid", rs.DeleteVehicle)
}

func requireToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		got, found := strings.CutPrefix(auth, "Bearer ")
		if !found || subtle.ConstantTimeCompare(
			[]byte(got), []byte(token),
		) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "invalid or missing bearer token",
			})
			return
		}
		c.Next()
	}
}

func (rs *resource) CreateVehicle(c *gin.Context) {
	v := rs.DserVehicleReq(c, "")
	if v == nil {
		return
	}
	created, err := rs.admin.Create(c, v)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehiclesrs.SerVehicle(created, time.Now()))
}

func (rs *resource) UpdateVehicle(c *gin.Context) {
	v := rs.DserVehicleReq(c, c.Param("vid"))
	if v == nil {
		return
	}
	updated, err := rs.admin.Update(c, v)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vehiclesrs.SerVehicle(updated, time.Now()))
}

func (rs *resource) DeleteVehicle(c *gin.Context) {
	id, ok := rs.DserVehicleID(c, c.Param("vid"))
	if !ok {
		return
	}
	if err := rs.admin.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
