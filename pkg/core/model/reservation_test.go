// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name     string
		vehicle  model.Vehicle
		reserved bool
		label    string
	}{
		{
			name:    "unreserved",
			vehicle: model.Vehicle{},
		},
		{
			name:     "flag-only",
			vehicle:  model.Vehicle{Reserved: true},
			reserved: true,
			label:    "Rezervované",
		},
		{
			name:     "future-expiry-only",
			vehicle:  model.Vehicle{ReservedUntil: &future},
			reserved: true,
			label:    "Rezervované do 2.6.2024",
		},
		{
			name:    "past-expiry-only",
			vehicle: model.Vehicle{ReservedUntil: &past},
		},
		{
			name: "flag-with-past-expiry",
			vehicle: model.Vehicle{
				Reserved: true, ReservedUntil: &past,
			},
			reserved: true,
			label:    "Rezervované",
		},
		{
			name: "flag-with-future-expiry",
			vehicle: model.Vehicle{
				Reserved: true, ReservedUntil: &future,
			},
			reserved: true,
			label:    "Rezervované do 2.6.2024",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.vehicle.Reservation(now)
			assert.Equal(t, tc.reserved, st.Reserved)
			assert.Equal(t, tc.label, st.Label())
		})
	}
}

func TestReservationExpiryBoundary(t *testing.T) {
	until := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	v := model.Vehicle{ReservedUntil: &until}
	// the expiry instant itself is already expired
	assert.False(t, v.Reservation(until).Reserved)
	assert.True(t, v.Reservation(until.Add(-time.Second)).Reserved)
}

func TestReservationCopiesExpiry(t *testing.T) {
	until := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	v := model.Vehicle{ReservedUntil: &until}
	st := v.Reservation(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, st.Until)
	assert.NotSame(t, v.ReservedUntil, st.Until)
	assert.True(t, st.Until.Equal(until))
}
