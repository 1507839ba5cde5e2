// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/core/model"
)

type rawVehicleReq struct {
	Brand           string     `json:"brand" binding:"required"`
	Model           string     `json:"model" binding:"required"`
	Year            int        `json:"year" binding:"required,min=1900"`
	Price           int        `json:"price" binding:"required,min=0"`
	Mileage         int        `json:"mileage" binding:"min=0"`
	Fuel            string     `json:"fuel" binding:"required"`
	Transmission    string     `json:"transmission" binding:"required"`
	Power           string     `json:"power"`
	Engine          string     `json:"engine"`
	BodyType        string     `json:"body_type"`
	Drivetrain      string     `json:"drivetrain"`
	Color           string     `json:"color"`
	Doors           int        `json:"doors" binding:"omitempty,min=2,max=7"`
	VIN             string     `json:"vin"`
	Description     string     `json:"description"`
	Features        []string   `json:"features"`
	Image           string     `json:"image"`
	Images          []string   `json:"images"`
	ShowOnHomepage  bool       `json:"show_on_homepage"`
	Reserved        bool       `json:"reserved"`
	ReservedUntil   *time.Time `json:"reserved_until"`
	VATDeductible   bool       `json:"vat_deductible"`
	PriceWithoutVAT *int       `json:"price_without_vat" binding:"omitempty,min=0"`
}

// DserVehicleID validates the vid path param as a UUID, serializing a
// bad request error response if it is malformed.
func (rs *resource) DserVehicleID(
	c *gin.Context, vid string,
) (string, bool) {
	if _, err := uuid.Parse(vid); err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "vid", "Path param vid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return "", false
	}
	return vid, true
}

// DserVehicleReq deserializes one vehicle manipulation request body.
// For update requests, vid is the path param identifying the target
// vehicle; for creation requests it must be empty. A nil result means
// an error response is already serialized.
func (rs *resource) DserVehicleReq(
	c *gin.Context, vid string,
) *model.Vehicle {
	if vid != "" {
		var ok bool
		if vid, ok = rs.DserVehicleID(c, vid); !ok {
			return nil
		}
	}
	req := &rawVehicleReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Vehicle{
		ID:              vid,
		Brand:           req.Brand,
		Model:           req.Model,
		Year:            req.Year,
		Price:           req.Price,
		Mileage:         req.Mileage,
		Fuel:            req.Fuel,
		Transmission:    req.Transmission,
		Power:           req.Power,
		Engine:          req.Engine,
		BodyType:        req.BodyType,
		Drivetrain:      req.Drivetrain,
		Color:           req.Color,
		Doors:           req.Doors,
		VIN:             req.VIN,
		Description:     req.Description,
		Features:        req.Features,
		Image:           req.Image,
		Images:          req.Images,
		ShowOnHomepage:  req.ShowOnHomepage,
		Reserved:        req.Reserved,
		ReservedUntil:   req.ReservedUntil,
		VATDeductible:   req.VATDeductible,
		PriceWithoutVAT: req.PriceWithoutVAT,
	}
}
