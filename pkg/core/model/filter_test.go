// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing() []model.Vehicle {
	return []model.Vehicle{
		{
			ID: "v1", Brand: "BMW", Model: "320d", Year: 2020,
			Price: 30000, Fuel: "Diesel", Transmission: "Automat",
		},
		{
			ID: "v2", Brand: "Audi", Model: "A4", Year: 2018,
			Price: 20000, Fuel: "Benzín", Transmission: "Manuál",
		},
		{
			ID: "v3", Brand: "Škoda", Model: "Octavia", Year: 2016,
			Price: 10000, Fuel: "Diesel", Transmission: "Manuál",
		},
	}
}

func ids(vehicles []model.Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestDeriveFilterDomains(t *testing.T) {
	d := model.DeriveFilterDomains(listing())
	assert.Equal(t, model.Range{Min: 10000, Max: 30000}, d.Price)
	assert.Equal(t, model.Range{Min: 2016, Max: 2020}, d.Year)
	assert.Equal(t, []string{"Audi", "BMW", "Škoda"}, d.Brands)
	assert.Equal(t, []string{"Benzín", "Diesel"}, d.Fuels)
	assert.Equal(t, []string{"Automat", "Manuál"}, d.Transmissions)
}

func TestDeriveFilterDomainsEmpty(t *testing.T) {
	d := model.DeriveFilterDomains(nil)
	assert.Empty(t, d.Brands)
	assert.Empty(t, d.Fuels)
	assert.Empty(t, d.Transmissions)
	assert.Equal(t, model.Range{}, d.Price)
	assert.Equal(t, model.Range{}, d.Year)
}

func TestFilterIdentity(t *testing.T) {
	vehicles := listing()
	f := model.NewFilter(model.DeriveFilterDomains(vehicles))
	assert.Equal(t, ids(vehicles), ids(f.Apply(vehicles)))
}

func TestFilterPriceRange(t *testing.T) {
	vehicles := listing()
	f := model.NewFilter(model.DeriveFilterDomains(vehicles))
	f.SetPriceMin(15000)
	assert.Equal(t, []string{"v1", "v2"}, ids(f.Apply(vehicles)))
	f.SetPriceMax(25000)
	assert.Equal(t, []string{"v2"}, ids(f.Apply(vehicles)))
}

func TestFilterYearRange(t *testing.T) {
	vehicles := listing()
	f := model.NewFilter(model.DeriveFilterDomains(vehicles))
	f.SetYearMax(2018)
	assert.Equal(t, []string{"v2", "v3"}, ids(f.Apply(vehicles)))
}

func TestFilterSelectionSets(t *testing.T) {
	vehicles := listing()
	f := model.NewFilter(model.DeriveFilterDomains(vehicles))
	f.Fuels = []string{"Diesel"}
	assert.Equal(t, []string{"v1", "v3"}, ids(f.Apply(vehicles)))
	// predicates of distinct dimensions are conjunctive
	f.Transmissions = []string{"Manuál"}
	assert.Equal(t, []string{"v3"}, ids(f.Apply(vehicles)))
	// an empty set places no restriction again
	f.Fuels = nil
	f.Transmissions = nil
	f.Brands = []string{"BMW", "Audi"}
	assert.Equal(t, []string{"v1", "v2"}, ids(f.Apply(vehicles)))
}

func TestFilterReset(t *testing.T) {
	vehicles := listing()
	d := model.DeriveFilterDomains(vehicles)
	f := model.NewFilter(d)
	f.SetPriceMin(25000)
	f.Brands = []string{"BMW"}
	require.Len(t, f.Apply(vehicles), 1)
	f.Reset(d)
	assert.Equal(t, ids(vehicles), ids(f.Apply(vehicles)))
}

func TestFilterClampingSetters(t *testing.T) {
	f := model.NewFilter(model.FilterDomains{
		Price: model.Range{Min: 10000, Max: 30000},
		Year:  model.Range{Min: 2016, Max: 2020},
	})
	f.SetPriceMin(35000)
	assert.Equal(t, model.Range{Min: 35000, Max: 35000}, f.Price)
	f.SetPriceMax(5000)
	assert.Equal(t, model.Range{Min: 5000, Max: 5000}, f.Price)
	f.SetYearMax(2010)
	assert.Equal(t, model.Range{Min: 2010, Max: 2010}, f.Year)
	f.SetYearMin(2021)
	assert.Equal(t, model.Range{Min: 2021, Max: 2021}, f.Year)
}

func TestRangeWidth(t *testing.T) {
	assert.Equal(t, 20000, model.Range{Min: 10000, Max: 30000}.Width())
	assert.Equal(t, 1, model.Range{Min: 7, Max: 7}.Width())
	// a degenerate range still reports a usable positive width
	assert.Equal(t, 1, model.Range{Min: 9, Max: 3}.Width())
}
