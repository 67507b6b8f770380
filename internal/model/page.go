// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// HomeSlug is the slug of the home page. It maps to index.html on export.
const HomeSlug = "/"

// PageSEO holds optional per-page search and social metadata.
// Title should stay under 60 characters and Description under 160; the
// editor warns about longer values but the core does not enforce them.
type PageSEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	OGImage     string `json:"ogImage,omitempty"`
}

// IsZero returns true if no SEO field is set.
func (s PageSEO) IsZero() bool {
	return s == PageSEO{}
}

// Page is one page of a project: an ordered list of blocks plus naming and
// SEO metadata. Slugs are unique within a project; "/" denotes the home page.
type Page struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Content []Block  `json:"content"`
	SEO     *PageSEO `json:"seo,omitempty"`
}

// IsHome returns true for the project's home page.
func (p *Page) IsHome() bool {
	return p.Slug == HomeSlug
}
