// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the vehicles use case.
type Option func(uc *UseCase) error

// WithHomepageLimit option configures a vehicles UseCase instance in
// order to surface at most `limit` vehicles in the landing page
// featured section. This option may be passed to the New() function.
func WithHomepageLimit(limit int) Option {
	return func(uc *UseCase) error {
		if limit <= 0 {
			return fmt.Errorf("limit (%d) is not positive", limit)
		}
		if uc.homepageLimit != 0 {
			return errors.New("limit is already configured")
		}
		uc.homepageLimit = limit
		return nil
	}
}
