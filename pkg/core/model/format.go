// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// sitePrinter formats numbers for the Slovak site locale, matching the
// thousand grouping the storefront renders (e.g. "12 500").
var sitePrinter = message.NewPrinter(language.Slovak)

// FormatPrice renders a price in whole euros with locale-aware digit
// grouping and the currency sign, e.g. "12 500 €".
func FormatPrice(price int) string {
	return sitePrinter.Sprintf("%v €", number.Decimal(price))
}

// FormatMileage renders a traveled distance with locale-aware digit
// grouping and the km unit, e.g. "158 000 km".
func FormatMileage(km int) string {
	return sitePrinter.Sprintf("%v km", number.Decimal(km))
}
