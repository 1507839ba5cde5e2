// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a released semantic version with its three components.
// The major component changes for backward incompatible changes, the
// minor component for backward compatible additions visible at the
// versioned surface (a config file format or a database schema), and
// the patch component for invisible internal changes. The config and
// database schema versions of this project are expressed with it and
// checked against the compiled-in supported versions at load time.
// Pre-release suffixes are not represented; unreleased versions are
// not maintained and have nothing to check against.
type SemVer [3]uint

// UnmarshalText parses text as up to three dot-separated non-negative
// numbers, so yaml and similar text-based decoders can fill a SemVer
// directly. Missing trailing components default to zero. In case of
// errors, sv is left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) (err error) {
	p := strings.Split(string(text), ".")
	l := len(p)
	if l == 0 || l > 3 {
		return fmt.Errorf("the %q has wrong number of components", text)
	}
	var v [3]int
	for i := 0; i < l; i++ {
		v[i], err = strconv.Atoi(p[i])
		if err != nil {
			return fmt.Errorf("the %q component is not numeric", p[i])
		}
		if v[i] < 0 {
			return fmt.Errorf("the %q component is negative", p[i])
		}
	}
	(*sv)[0] = uint(v[0])
	(*sv)[1] = uint(v[1])
	(*sv)[2] = uint(v[2])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface,
// rendering sv in its dot-separated string representation.
func (sv *SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// String returns the sv semantic version as a dot-separated
// major.minor.patch string.
func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}
