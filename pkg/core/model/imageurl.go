// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "net/url"

// PublicObjectPrefix is the fixed URL path under which the object
// storage exposes publicly readable site uploads.
const PublicObjectPrefix = "/storage/v1/object/public/site-uploads/"

// ImageResolver maps stored image paths to publicly fetchable URLs.
// It is a pure computation; no network access or caching is involved
// since resolution is cheap to recompute on every read.
type ImageResolver struct {
	// Base is the object storage base URL, without a trailing slash.
	Base string
}

// Resolve maps one stored image path to a fetchable URL. An absolute
// URL (one carrying a URI scheme) passes through unchanged, an empty
// path yields an empty URL, and anything else is concatenated after
// the storage base and the fixed public object prefix.
func (ir ImageResolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return ir.Base + PublicObjectPrefix + path
}

// ResolveAll maps a list of stored image paths with Resolve, keeping
// the order. A nil input yields a nil output.
func (ir ImageResolver) ResolveAll(paths []string) []string {
	if paths == nil {
		return nil
	}
	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = ir.Resolve(p)
	}
	return urls
}
