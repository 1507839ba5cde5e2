// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"strings"
	"testing"

	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestImageResolverResolve(t *testing.T) {
	ir := model.ImageResolver{Base: "https://storage.example.sk"}
	for _, tc := range []struct {
		name, path, url string
	}{
		{"empty", "", ""},
		{
			"absolute-passthrough",
			"https://cdn.example.com/a.jpg",
			"https://cdn.example.com/a.jpg",
		},
		{
			"relative-path",
			"cars/bmw-320d/front.jpg",
			"https://storage.example.sk" +
				model.PublicObjectPrefix +
				"cars/bmw-320d/front.jpg",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.url, ir.Resolve(tc.path))
		})
	}
}

func TestImageResolverResolveAll(t *testing.T) {
	ir := model.ImageResolver{Base: "https://storage.example.sk"}
	assert.Nil(t, ir.ResolveAll(nil))
	assert.Equal(t, []string{}, ir.ResolveAll([]string{}))
	urls := ir.ResolveAll([]string{"a.jpg", "", "http://x/y.png"})
	assert.Len(t, urls, 3)
	assert.True(t, strings.HasSuffix(urls[0], "a.jpg"))
	assert.Equal(t, "", urls[1])
	assert.Equal(t, "http://x/y.png", urls[2])
}

func TestFormatPrice(t *testing.T) {
	s := model.FormatPrice(12500)
	assert.True(t, strings.HasSuffix(s, " €"), s)
	assert.Equal(t, "12500", digitsOf(s))
}

func TestFormatMileage(t *testing.T) {
	s := model.FormatMileage(158000)
	assert.True(t, strings.HasSuffix(s, " km"), s)
	assert.Equal(t, "158000", digitsOf(s))
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
