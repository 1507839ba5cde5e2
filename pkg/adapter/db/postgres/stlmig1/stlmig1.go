// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stlmig1 provides the Settler type for database schema major
// version 1. It can be used to initialize a database with the major
// version 1 schema, having development or production suitable sample
// data. Each schema major version is supposed to be backed by one
// stlmigN package, so the current schema version constants can be
// taken from the latest of them.
package stlmig1

import (
	"context"
	"fmt"

	"github.com/momeni/dealer-web/pkg/core/repo"
)

// These constants indicate the major, minor, and patch components of
// the database schema version which is created by this package.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Settler struct provides the schema initialization logic for the
// major version 1. It creates the cars table in the dealerweb1 schema
// and optionally fills it with development suitable sample rows.
//
// Each instance of Settler wraps and uses a single transaction of the
// target database, but the caller is responsible to commit that
// transaction in order to finalize the initialization results.
type Settler struct {
	tx repo.Tx // target database transaction
}

// New creates a new Settler instance, wrapping the given `tx` database
// transaction. The settler object expects the database schema to exist
// and only tries to create relevant tables in that schema.
func New(tx repo.Tx) *Settler {
	return &Settler{tx: tx}
}

// InitProdSchema creates the major version 1 tables in the dealerweb1
// schema, leaving them empty: production vehicle rows are entered by
// the admin flow, not seeded.
func (sm1 *Settler) InitProdSchema(ctx context.Context) error {
	if _, err := sm1.tx.Exec(ctx, createCarsTable); err != nil {
		return fmt.Errorf("creating cars table: %w", err)
	}
	return nil
}

// InitDevSchema creates the major version 1 tables in the dealerweb1
// schema and fills them with development suitable sample vehicles.
func (sm1 *Settler) InitDevSchema(ctx context.Context) error {
	if err := sm1.InitProdSchema(ctx); err != nil {
		return err
	}
	if _, err := sm1.tx.Exec(ctx, seedDevCars); err != nil {
		return fmt.Errorf("seeding dev cars: %w", err)
	}
	return nil
}

// MajorVersion returns the major semantic version of this Settler
// instance. This value matches with the Major constant which is
// defined in this package.
func (sm1 *Settler) MajorVersion() uint {
	return Major
}

const createCarsTable = `
CREATE TABLE cars (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    site_id text NOT NULL,
    brand text NOT NULL,
    model text NOT NULL,
    year integer NOT NULL,
    price integer NOT NULL,
    mileage integer NOT NULL DEFAULT 0,
    fuel text NOT NULL DEFAULT '',
    transmission text NOT NULL DEFAULT '',
    power text NOT NULL DEFAULT '',
    engine text NOT NULL DEFAULT '',
    body_type text NOT NULL DEFAULT '',
    drivetrain text NOT NULL DEFAULT '',
    color text NOT NULL DEFAULT '',
    doors integer NOT NULL DEFAULT 0,
    vin text NOT NULL DEFAULT '',
    description text NOT NULL DEFAULT '',
    features jsonb NOT NULL DEFAULT '[]',
    image text NOT NULL DEFAULT '',
    images jsonb NOT NULL DEFAULT '[]',
    show_on_homepage boolean NOT NULL DEFAULT false,
    reserved boolean NOT NULL DEFAULT false,
    reserved_until timestamptz,
    vat_deductible boolean NOT NULL DEFAULT false,
    price_without_vat integer,
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now(),
    deleted_at timestamptz
);
CREATE INDEX cars_site_listing_idx
    ON cars (site_id, created_at DESC)
    WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX cars_site_vin_key
    ON cars (site_id, vin)
    WHERE deleted_at IS NULL AND vin <> '';
`

const seedDevCars = `
INSERT INTO cars
    (site_id, brand, model, year, price, mileage, fuel, transmission,
     power, image, show_on_homepage, vat_deductible, price_without_vat)
VALUES
    ('dev', 'BMW', '320d', 2020, 24900, 89000, 'Diesel',
     'Automat', '140 kW', 'cars/bmw-320d.jpg', true, true, 20750),
    ('dev', 'Škoda', 'Octavia', 2019, 15900, 120000, 'Diesel',
     'Manuál', '85 kW', 'cars/skoda-octavia.jpg', true, false, NULL),
    ('dev', 'Volkswagen', 'Golf', 2021, 18500, 45000, 'Benzín',
     'Manuál', '81 kW', 'cars/vw-golf.jpg', false, false, NULL),
    ('dev', 'Audi', 'A4 Avant', 2018, 21900, 134000, 'Diesel',
     'Automat', '140 kW', 'cars/audi-a4.jpg', true, true, 18250);
`
