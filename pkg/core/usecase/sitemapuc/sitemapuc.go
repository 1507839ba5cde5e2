// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sitemapuc contains the sitemap UseCase which renders the
// sitemap XML document over the static site routes and one entry per
// non-deleted vehicle, keyed by the same slug format the detail pages
// resolve.
package sitemapuc

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/momeni/dealer-web/pkg/core/model"
	"github.com/momeni/dealer-web/pkg/core/repo"
)

// staticRoutes are the informational pages of the site, in the order
// they appear in the sitemap. The empty route is the landing page.
var staticRoutes = []string{
	"",
	"/ponuka",
	"/dovoz",
	"/leasing",
	"/vykup",
	"/pzp",
	"/kontakt",
	"/ochrana-osobnych-udajov",
}

// UseCase represents the sitemap use case. It holds a database
// connection pool, the vehicles repository instance, the site scoping
// identifier, and the public base URL of the site.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	siteID     string
	baseURL    string
}

// New instantiates a sitemap use case. The baseURL must carry the
// scheme and host of the public site, without a trailing slash.
func New(p repo.Pool, v repo.Vehicles, siteID, baseURL string) *UseCase {
	return &UseCase{
		pool:       p,
		vehiclesrp: v,
		siteID:     siteID,
		baseURL:    baseURL,
	}
}

type urlset struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Build loads the active vehicle set and renders the complete sitemap
// XML document, including the XML declaration. Static routes come
// first with the current time as their freshness signal; vehicle
// entries follow, keyed by their detail-page slug and stamped with
// their last modification time.
func (sitemap *UseCase) Build(ctx context.Context) ([]byte, error) {
	var list []model.Vehicle
	err := sitemap.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := sitemap.vehiclesrp.Conn(c)
		var err error
		list, err = q.List(ctx, sitemap.siteID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	us := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, route := range staticRoutes {
		priority := "0.8"
		if route == "" {
			priority = "1.0"
		}
		us.URLs = append(us.URLs, urlEntry{
			Loc:        sitemap.baseURL + route,
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   priority,
		})
	}
	for i := range list {
		v := &list[i]
		lastMod := now
		if lm := v.LastModified(); !lm.IsZero() {
			lastMod = lm.UTC().Format(time.RFC3339)
		}
		us.URLs = append(us.URLs, urlEntry{
			Loc: fmt.Sprintf(
				"%s/vozidlo/%s", sitemap.baseURL, v.Slug(),
			),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
	}
	body, err := xml.Marshal(us)
	if err != nil {
		return nil, fmt.Errorf("marshaling urlset: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
