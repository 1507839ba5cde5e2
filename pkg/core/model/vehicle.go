// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by ORM
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import "time"

// Vehicle models a single car offered for sale by a dealership site.
// Each vehicle belongs to exactly one site (see the SiteID scoping key)
// and may be soft-deleted by the admin flow, in which case it must not
// appear in any public listing. The Image and Images fields hold the
// resolved, publicly fetchable URLs (not raw storage paths); resolution
// is the responsibility of the repository layer with help of the
// ImageResolver type.
type Vehicle struct {
	ID     string // opaque unique identifier (a UUID string)
	SiteID string // tenant-scoping key of the owning deployment

	Brand        string
	Model        string
	Year         int
	Price        int // in whole currency units (EUR)
	Mileage      int // distance traveled, in km
	Fuel         string
	Transmission string
	Power        string // free-text, e.g. "110 kW"
	Engine       string
	BodyType     string
	Drivetrain   string
	Color        string
	Doors        int
	VIN          string
	Description  string
	Features     []string

	Image  string   // primary image URL
	Images []string // ordered gallery image URLs

	ShowOnHomepage  bool
	Reserved        bool
	ReservedUntil   *time.Time // soft reservation expiry, if any
	VATDeductible   bool
	PriceWithoutVAT *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastModified returns the freshness signal of this vehicle as used by
// the sitemap: the update timestamp when present, falling back to the
// creation timestamp.
func (v *Vehicle) LastModified() time.Time {
	if !v.UpdatedAt.IsZero() {
		return v.UpdatedAt
	}
	return v.CreatedAt
}
