// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"slices"
	"sort"
)

// Range is an inclusive [Min, Max] interval over integer vehicle
// attributes such as prices or model years.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Width returns the length of this range, guarding against a zero
// denominator when the range is empty or single-valued (e.g., when a
// listing contains one vehicle and UI proportions are computed over
// the range width).
func (r Range) Width() int {
	if w := r.Max - r.Min; w > 0 {
		return w
	}
	return 1
}

// Contains reports whether x falls into this inclusive range.
func (r Range) Contains(x int) bool {
	return r.Min <= x && x <= r.Max
}

// FilterDomains describes the selectable domain of each filter
// dimension, derived from a concrete vehicle listing. Brand, fuel, and
// transmission domains are the sorted distinct values present in the
// listing; price and year domains are the observed [min, max] bounds.
type FilterDomains struct {
	Brands        []string `json:"brands"`
	Fuels         []string `json:"fuels"`
	Transmissions []string `json:"transmissions"`
	Price         Range    `json:"price"`
	Year          Range    `json:"year"`
}

// DeriveFilterDomains computes the filter domains of the given vehicle
// listing. For an empty listing, the string domains are empty and the
// numeric domains are zero ranges (their Width stays positive).
func DeriveFilterDomains(vehicles []Vehicle) FilterDomains {
	d := FilterDomains{}
	brands := map[string]struct{}{}
	fuels := map[string]struct{}{}
	transmissions := map[string]struct{}{}
	for i, v := range vehicles {
		brands[v.Brand] = struct{}{}
		fuels[v.Fuel] = struct{}{}
		transmissions[v.Transmission] = struct{}{}
		if i == 0 {
			d.Price = Range{v.Price, v.Price}
			d.Year = Range{v.Year, v.Year}
			continue
		}
		d.Price.Min = min(d.Price.Min, v.Price)
		d.Price.Max = max(d.Price.Max, v.Price)
		d.Year.Min = min(d.Year.Min, v.Year)
		d.Year.Max = max(d.Year.Max, v.Year)
	}
	d.Brands = sortedKeys(brands)
	d.Fuels = sortedKeys(fuels)
	d.Transmissions = sortedKeys(transmissions)
	return d
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Filter is the ephemeral per-listing filter state. An empty selection
// set places no restriction on its dimension, while the price and year
// ranges always restrict (they are initialized to the full observed
// bounds by Reset, which makes them no-ops until narrowed).
// The Min <= Max invariant of both ranges is maintained by the
// SetPrice* and SetYear* clamping setters.
type Filter struct {
	Price         Range
	Year          Range
	Brands        []string
	Fuels         []string
	Transmissions []string
}

// NewFilter creates a filter state matching every member of the
// listing the `d` domains were derived from.
func NewFilter(d FilterDomains) *Filter {
	f := &Filter{}
	f.Reset(d)
	return f
}

// Reset restores the price and year ranges to the full domain bounds
// and clears all selection sets. The resulting state is the identity
// filter: applying it returns the source listing unchanged.
func (f *Filter) Reset(d FilterDomains) {
	f.Price = d.Price
	f.Year = d.Year
	f.Brands = nil
	f.Fuels = nil
	f.Transmissions = nil
}

// SetPriceMin updates the lower price bound, pulling the upper bound
// up if it would otherwise fall below the new minimum.
func (f *Filter) SetPriceMin(p int) {
	f.Price.Min = p
	f.Price.Max = max(f.Price.Max, p)
}

// SetPriceMax updates the upper price bound, pulling the lower bound
// down if it would otherwise exceed the new maximum.
func (f *Filter) SetPriceMax(p int) {
	f.Price.Max = p
	f.Price.Min = min(f.Price.Min, p)
}

// SetYearMin updates the lower year bound, pulling the upper bound up
// if needed, like SetPriceMin.
func (f *Filter) SetYearMin(y int) {
	f.Year.Min = y
	f.Year.Max = max(f.Year.Max, y)
}

// SetYearMax updates the upper year bound, pulling the lower bound
// down if needed, like SetPriceMax.
func (f *Filter) SetYearMax(y int) {
	f.Year.Max = y
	f.Year.Min = min(f.Year.Min, y)
}

// Match reports whether the `v` vehicle passes all five predicates:
// the inclusive price and year ranges and the three selection sets,
// where an empty set means "all".
func (f *Filter) Match(v *Vehicle) bool {
	switch {
	case !f.Price.Contains(v.Price):
		return false
	case !f.Year.Contains(v.Year):
		return false
	case len(f.Brands) > 0 && !slices.Contains(f.Brands, v.Brand):
		return false
	case len(f.Fuels) > 0 && !slices.Contains(f.Fuels, v.Fuel):
		return false
	case len(f.Transmissions) > 0 &&
		!slices.Contains(f.Transmissions, v.Transmission):
		return false
	}
	return true
}

// Apply evaluates this filter against every member of the vehicles
// listing and returns the passing subset, preserving the input order.
// The scan is total; no incremental state is kept between calls since
// dealership-scale listings are small.
func (f *Filter) Apply(vehicles []Vehicle) []Vehicle {
	matched := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Match(&v) {
			matched = append(matched, v)
		}
	}
	return matched
}
