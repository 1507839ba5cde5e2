// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminuc contains the admin UseCase which manages the
// vehicle inventory of one site: creating listings, updating their
// attributes, and retiring them with a soft delete, so they vanish
// from public listings while their rows survive.
package adminuc

import (
	"context"
	"fmt"

	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
)

// UseCase represents the admin vehicles use case. It holds a database
// connection pool, the vehicles repository instance, and the site
// scoping identifier which every operation is forced into.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	siteID     string
}

// New instantiates an admin use case.
func New(p repo.Pool, v repo.Vehicles, siteID string) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v, siteID: siteID}
}

// Create persists a new vehicle listing. The site identifier of the
// `v` vehicle is overwritten with the configured site, so an admin
// cannot write into another tenant's inventory. A duplicate VIN within
// the site is reported as cerr.Conflict.
func (admin *UseCase) Create(
	ctx context.Context, v *model.Vehicle,
) (created *model.Vehicle, err error) {
	v.SiteID = admin.siteID
	err = admin.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := admin.vehiclesrp.Conn(c)
		created, err = q.Create(ctx, v)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating vehicle: %w", err)
	}
	return created, nil
}

// Update overwrites the descriptive attributes of one vehicle,
// identified by the id of the `v` vehicle. A missing (or deleted) row
// is reported as cerr.NotFound.
func (admin *UseCase) Update(
	ctx context.Context, v *model.Vehicle,
) (updated *model.Vehicle, err error) {
	v.SiteID = admin.siteID
	err = admin.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := admin.vehiclesrp.Conn(c)
		updated, err = q.Update(ctx, v)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete soft-deletes one vehicle by id: the row is stamped with a
// deletion time and excluded from public listings from then on.
func (admin *UseCase) Delete(ctx context.Context, id string) error {
	return admin.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := admin.vehiclesrp.Conn(c)
		return q.SoftDelete(ctx, admin.siteID, id)
	})
}
