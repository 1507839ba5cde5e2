// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/dealer-web/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/usecase/vehiclesuc"
)

type rawListingReq struct {
	PriceMin      *int     `form:"price-min" binding:"omitempty,min=0"`
	PriceMax      *int     `form:"price-max" binding:"omitempty,min=0"`
	YearMin       *int     `form:"year-min" binding:"omitempty,min=1900"`
	YearMax       *int     `form:"year-max" binding:"omitempty,min=1900"`
	Brands        []string `form:"brand"`
	Fuels         []string `form:"fuel"`
	Transmissions []string `form:"transmission"`
}

// DserListingReq deserializes the optional filter query params of a
// listing request into a filter adjusting function. When no filter
// param is given, a nil function is returned, keeping the identity
// filter. The ok result reports whether binding succeeded; a false
// value means an error response is already serialized.
func (rs *resource) DserListingReq(
	c *gin.Context,
) (adjust func(f *model.Filter), ok bool) {
	req := &rawListingReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil, false
	}
	if req.PriceMin == nil && req.PriceMax == nil &&
		req.YearMin == nil && req.YearMax == nil &&
		len(req.Brands) == 0 && len(req.Fuels) == 0 &&
		len(req.Transmissions) == 0 {
		return nil, true
	}
	return func(f *model.Filter) {
		if req.PriceMin != nil {
			f.SetPriceMin(*req.PriceMin)
		}
		if req.PriceMax != nil {
			f.SetPriceMax(*req.PriceMax)
		}
		if req.YearMin != nil {
			f.SetYearMin(*req.YearMin)
		}
		if req.YearMax != nil {
			f.SetYearMax(*req.YearMax)
		}
		f.Brands = req.Brands
		f.Fuels = req.Fuels
		f.Transmissions = req.Transmissions
	}, true
}

type vehicleView struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Brand            string     `json:"brand"`
	Model            string     `json:"model"`
	Year             int        `json:"year"`
	Price            int        `json:"price"`
	PriceLabel       string     `json:"price_label"`
	PriceWithoutVAT  *int       `json:"price_without_vat,omitempty"`
	VATDeductible    bool       `json:"vat_deductible"`
	Mileage          int        `json:"mileage"`
	MileageLabel     string     `json:"mileage_label"`
	Fuel             string     `json:"fuel"`
	Transmission     string     `json:"transmission"`
	Power            string     `json:"power,omitempty"`
	Engine           string     `json:"engine,omitempty"`
	BodyType         string     `json:"body_type,omitempty"`
	Drivetrain       string     `json:"drivetrain,omitempty"`
	Color            string     `json:"color,omitempty"`
	Doors            int        `json:"doors,omitempty"`
	VIN              string     `json:"vin,omitempty"`
	Description      string     `json:"description,omitempty"`
	Features         []string   `json:"features"`
	Image            string     `json:"image,omitempty"`
	Images           []string   `json:"images"`
	ShowOnHomepage   bool       `json:"show_on_homepage"`
	Reserved         bool       `json:"reserved"`
	ReservedUntil    *time.Time `json:"reserved_until,omitempty"`
	ReservationLabel string     `json:"reservation_label,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SerVehicle serializes one vehicle for the public APIs, computing
// the derived presentation fields (slug, formatted price and mileage
// labels, and the effective reservation badge at the `now` instant).
func SerVehicle(v *model.Vehicle, now time.Time) *vehicleView {
	st := v.Reservation(now)
	return &vehicleView{
		ID:               v.ID,
		Slug:             v.Slug(),
		Brand:            v.Brand,
		Model:            v.Model,
		Year:             v.Year,
		Price:            v.Price,
		PriceLabel:       model.FormatPrice(v.Price),
		PriceWithoutVAT:  v.PriceWithoutVAT,
		VATDeductible:    v.VATDeductible,
		Mileage:          v.Mileage,
		MileageLabel:     model.FormatMileage(v.Mileage),
		Fuel:             v.Fuel,
		Transmission:     v.Transmission,
		Power:            v.Power,
		Engine:           v.Engine,
		BodyType:         v.BodyType,
		Drivetrain:       v.Drivetrain,
		Color:            v.Color,
		Doors:            v.Doors,
		VIN:              v.VIN,
		Description:      v.Description,
		Features:         v.Features,
		Image:            v.Image,
		Images:           v.Images,
		ShowOnHomepage:   v.ShowOnHomepage,
		Reserved:         st.Reserved,
		ReservedUntil:    st.Until,
		ReservationLabel: st.Label(),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// SerVehicles serializes a vehicles list, preserving its order.
func SerVehicles(list []model.Vehicle, now time.Time) []*vehicleView {
	views := make([]*vehicleView, len(list))
	for i := range list {
		views[i] = SerVehicle(&list[i], now)
	}
	return views
}

// SerListing serializes one listing page payload.
func SerListing(l *vehiclesuc.Listing, now time.Time) gin.H {
	return gin.H{
		"vehicles": SerVehicles(l.Vehicles, now),
		"domains":  l.Domains,
		"total":    l.Total,
	}
}
