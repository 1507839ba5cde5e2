// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesuc contains the vehicles UseCase which supports the
// public catalog use cases:
//  1. Listing the active vehicles of a site with derived filter
//     domains and an optional server-evaluated filter state,
//  2. Resolving one vehicle by its id or detail-page slug,
//  3. Selecting the vehicles surfacing on the landing page.
package vehiclesuc

import (
	"context"
	"fmt"

	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
)

// UseCase represents a vehicles use case. It holds a database
// connection pool, the vehicles repository instance (to be guided
// with the DB pool), the site scoping identifier, and the vehicles
// use case specific settings.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	siteID     string

	homepageLimit int
}

// New instantiates a vehicles use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool, v repo.Vehicles, siteID string, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, vehiclesrp: v, siteID: siteID}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.homepageLimit == 0 {
		uc.homepageLimit = 4
	}
	return uc, nil
}

// List use case returns all non-deleted vehicles of the site, newest
// first, with image references already resolved to fetchable URLs.
// A failure surfaces to the caller without retrying; the caller is
// expected to render a loading-failed or empty state instead of
// crashing.
func (vehicles *UseCase) List(
	ctx context.Context,
) (list []model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		list, err = q.List(ctx, vehicles.siteID)
		return err
	})
	if err != nil {
		list = nil
	}
	return
}

// Listing is one listing-page payload: the (possibly filtered) vehicle
// subset, the filter domains derived from the complete listing, and
// the complete listing size.
type Listing struct {
	Vehicles []model.Vehicle
	Domains  model.FilterDomains
	Total    int
}

// Listing use case loads the active vehicle set, derives the filter
// domains from it, and evaluates a filter against every vehicle.
// The filter starts in its identity state, spanning the derived
// domains completely, and the adjust function may then narrow it
// (set bounds, pick brands) before it is applied. A nil adjust
// function keeps the identity filter and so the whole listing.
func (vehicles *UseCase) Listing(
	ctx context.Context, adjust func(f *model.Filter),
) (*Listing, error) {
	list, err := vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	l := &Listing{
		Domains: model.DeriveFilterDomains(list),
		Total:   len(list),
	}
	if adjust == nil {
		l.Vehicles = list
		return l, nil
	}
	f := model.NewFilter(l.Domains)
	adjust(f)
	l.Vehicles = f.Apply(list)
	return l, nil
}

// GetByID use case returns the full attribute set of one vehicle.
// A missing row is reported as cerr.NotFound, distinguishable from
// transport or query errors.
func (vehicles *UseCase) GetByID(
	ctx context.Context, id string,
) (v *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		v, err = q.FetchByID(ctx, vehicles.siteID, id)
		return err
	})
	if err != nil {
		v = nil
	}
	return
}

// GetBySlug use case resolves a detail-page slug with the
// suffix-extraction strategy: the trailing fixed-width id is taken
// from the slug and fetched directly, ignoring the human-readable
// prefix. A slug which does not end in a syntactically valid id is
// rejected as cerr.NotFound rather than silently mis-sliced.
func (vehicles *UseCase) GetBySlug(
	ctx context.Context, slug string,
) (*model.Vehicle, error) {
	id, err := model.VehicleIDFromSlug(slug)
	if err != nil {
		return nil, cerr.NotFound(err)
	}
	return vehicles.GetByID(ctx, id)
}

// Homepage use case picks the vehicles surfacing on the landing page;
// see SelectHomepage for the selection policy.
func (vehicles *UseCase) Homepage(
	ctx context.Context,
) ([]model.Vehicle, error) {
	list, err := vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	return SelectHomepage(list, vehicles.homepageLimit), nil
}

// SelectHomepage returns up to `limit` vehicles for the landing page
// featured section. If any vehicle is flagged for the homepage, the
// first `limit` flagged ones are taken (in the listing order, which is
// newest first); if none is flagged, the first `limit` vehicles of the
// whole listing are taken instead. It is a pure, total function which
// never errors and returns fewer vehicles when fewer exist.
func SelectHomepage(list []model.Vehicle, limit int) []model.Vehicle {
	flagged := make([]model.Vehicle, 0, limit)
	for _, v := range list {
		if v.ShowOnHomepage {
			flagged = append(flagged, v)
			if len(flagged) == limit {
				return flagged
			}
		}
	}
	if len(flagged) > 0 {
		return flagged
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}
