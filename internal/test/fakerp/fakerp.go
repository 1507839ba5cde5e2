// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakerp is an internal helper for the test packages.
// It provides in-memory realizations of the repo.Pool and the
// repo.Vehicles interfaces, so use case packages may be unit tested
// without a real DBMS server.
package fakerp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/dealer-web/pkg/core/cerr"
	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
)

// Pool is an in-memory repo.Pool. Every Conn call runs its handler
// with a no-op connection, or fails with Err when it is set.
type Pool struct {
	Err error
}

// Conn runs the handler with a no-op connection.
func (p *Pool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	if p.Err != nil {
		return p.Err
	}
	return handler(ctx, conn{})
}

// Close is a no-op, keeping a fake pool usable after it.
func (p *Pool) Close() error {
	return nil
}

type conn struct{}

func (conn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("fake connection cannot run statements")
}

func (conn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errors.New("fake connection cannot run queries")
}

func (c conn) Tx(ctx context.Context, handler repo.TxHandler) error {
	return handler(ctx, tx{})
}

func (conn) IsConn() {}

type tx struct{}

func (tx) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("fake transaction cannot run statements")
}

func (tx) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errors.New("fake transaction cannot run queries")
}

func (tx) IsTx() {}

// Vehicles is an in-memory repo.Vehicles realization, keeping its
// rows in the exported Rows slice in the listing order (newest
// first). When Err is set, every operation fails with it.
type Vehicles struct {
	Rows []model.Vehicle
	Err  error
}

// Conn adapts a connection to the in-memory queryer.
func (v *Vehicles) Conn(repo.Conn) repo.VehiclesConnQueryer {
	return queryer{v}
}

// Tx adapts a transaction to the in-memory queryer.
func (v *Vehicles) Tx(repo.Tx) repo.VehiclesTxQueryer {
	return queryer{v}
}

type queryer struct {
	f *Vehicles
}

func (q queryer) List(
	_ context.Context, siteID string,
) ([]model.Vehicle, error) {
	if q.f.Err != nil {
		return nil, q.f.Err
	}
	var list []model.Vehicle
	for _, r := range q.f.Rows {
		if r.SiteID == siteID {
			list = append(list, r)
		}
	}
	return list, nil
}

func (q queryer) FetchByID(
	_ context.Context, siteID, id string,
) (*model.Vehicle, error) {
	if q.f.Err != nil {
		return nil, q.f.Err
	}
	for _, r := range q.f.Rows {
		if r.SiteID == siteID && r.ID == id {
			v := r
			return &v, nil
		}
	}
	return nil, cerr.NotFound(errors.New("no such vehicle: " + id))
}

func (q queryer) Create(
	_ context.Context, v *model.Vehicle,
) (*model.Vehicle, error) {
	if q.f.Err != nil {
		return nil, q.f.Err
	}
	if v.VIN != "" {
		for _, r := range q.f.Rows {
			if r.SiteID == v.SiteID && r.VIN == v.VIN {
				return nil, cerr.Conflict(
					errors.New("duplicate vin: " + v.VIN),
				)
			}
		}
	}
	row := *v
	row.ID = uuid.New().String()
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	q.f.Rows = append([]model.Vehicle{row}, q.f.Rows...)
	return &row, nil
}

func (q queryer) Update(
	_ context.Context, v *model.Vehicle,
) (*model.Vehicle, error) {
	if q.f.Err != nil {
		return nil, q.f.Err
	}
	for i, r := range q.f.Rows {
		if r.SiteID == v.SiteID && r.ID == v.ID {
			row := *v
			row.CreatedAt = r.CreatedAt
			row.UpdatedAt = time.Now()
			q.f.Rows[i] = row
			return &row, nil
		}
	}
	return nil, cerr.NotFound(errors.New("no such vehicle: " + v.ID))
}

func (q queryer) SoftDelete(
	_ context.Context, siteID, id string,
) error {
	if q.f.Err != nil {
		return q.f.Err
	}
	for i, r := range q.f.Rows {
		if r.SiteID == siteID && r.ID == id {
			q.f.Rows = append(q.f.Rows[:i], q.f.Rows[i+1:]...)
			return nil
		}
	}
	return cerr.NotFound(errors.New("no such vehicle: " + id))
}
