// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VehicleIDLength is the fixed width of a vehicle identifier as it
// appears at the end of a slug. Vehicle identifiers are UUID strings,
// hence, exactly 36 characters long. This width is a hard contract of
// the slug format: the suffix-extraction decoding strategy slices the
// trailing VehicleIDLength characters off a slug and would mis-slice
// if variable-width identifiers were ever introduced.
const VehicleIDLength = 36

// Slug returns the URL-safe path segment identifying this vehicle on
// detail pages, formed by joining brand, model, year, and id with
// hyphens, lower-casing the result, replacing every run of characters
// outside [a-z0-9] with a single hyphen, and trimming edge hyphens.
// Since the id is already a lowercase UUID, re-encoding a decoded
// vehicle yields the same slug again.
func (v *Vehicle) Slug() string {
	return Slugify(fmt.Sprintf(
		"%s-%s-%d-%s", v.Brand, v.Model, v.Year, v.ID,
	))
}

// Slugify normalizes an arbitrary string into the slug alphabet,
// collapsing every maximal run of characters outside [a-z0-9] into one
// hyphen and trimming leading and trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	hyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}

// VehicleIDFromSlug extracts the trailing vehicle identifier from a
// slug, ignoring the human-readable prefix entirely. The trailing
// VehicleIDLength characters must form a syntactically valid UUID,
// otherwise an error is returned instead of silently mis-slicing the
// slug. This strategy suits flows which fetch vehicles individually
// by id without listing the candidates in memory.
func VehicleIDFromSlug(slug string) (string, error) {
	if len(slug) < VehicleIDLength {
		return "", fmt.Errorf("slug %q is too short", slug)
	}
	id := slug[len(slug)-VehicleIDLength:]
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("slug %q has no id suffix: %w", slug, err)
	}
	return id, nil
}

// FindBySlug returns the first of the candidate vehicles whose
// re-encoded slug equals the given slug, or nil when none matches.
// This lookup strategy suits flows which already hold the full
// candidate listing in memory.
func FindBySlug(slug string, candidates []Vehicle) *Vehicle {
	for i := range candidates {
		if candidates[i].Slug() == slug {
			return &candidates[i]
		}
	}
	return nil
}
