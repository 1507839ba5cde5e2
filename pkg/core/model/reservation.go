// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// ReservationStatus is the display state derived from the two
// independent reservation signals of a vehicle: the explicit Reserved
// flag and the soft ReservedUntil expiry date. The two signals are
// separate business concepts at the data layer and are only combined
// here, at display-decision time.
type ReservationStatus struct {
	// Reserved indicates whether a reservation badge is shown at all.
	Reserved bool
	// Until is the reservation expiry to display alongside the badge,
	// or nil when the badge carries no date. It is only set when the
	// expiry lies strictly in the future at evaluation time.
	Until *time.Time
}

// Reservation derives the reservation display status of this vehicle
// relative to the `now` evaluation time. The badge is shown iff the
// vehicle is explicitly flagged as reserved or its soft reservation
// expiry lies strictly in the future. A past expiry alone never
// produces a badge, so a vehicle which is unreserved at some instant
// stays unreserved at every later instant too (in absence of data
// changes).
func (v *Vehicle) Reservation(now time.Time) ReservationStatus {
	st := ReservationStatus{Reserved: v.Reserved}
	if v.ReservedUntil != nil && v.ReservedUntil.After(now) {
		st.Reserved = true
		until := *v.ReservedUntil
		st.Until = &until
	}
	return st
}

// Label renders the badge text in the site locale: "Rezervované" for a
// dateless reservation and "Rezervované do D.M.YYYY" when an expiry is
// shown. An empty string means no badge.
func (st ReservationStatus) Label() string {
	switch {
	case !st.Reserved:
		return ""
	case st.Until == nil:
		return "Rezervované"
	}
	return fmt.Sprintf("Rezervované do %s", st.Until.Format("2.1.2006"))
}
