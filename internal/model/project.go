// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"time"
)

// Analytics providers.
const (
	AnalyticsNone      = "none"
	AnalyticsPlausible = "plausible"
	AnalyticsUmami     = "umami"
	AnalyticsGoogle    = "google"
)

// Analytics holds the optional visitor-statistics settings of a project.
type Analytics struct {
	Provider  string `json:"provider"`
	SiteID    string `json:"siteId,omitempty"`
	ScriptURL string `json:"scriptUrl,omitempty"`
}

// Enabled returns true if a snippet should be emitted on export.
func (a *Analytics) Enabled() bool {
	return a != nil && a.Provider != "" && a.Provider != AnalyticsNone && a.SiteID != ""
}

// WhiteLabel holds the optional reseller branding settings of a project.
type WhiteLabel struct {
	Enabled       bool   `json:"enabled"`
	CustomBrand   string `json:"customBrand,omitempty"`
	HidePoweredBy bool   `json:"hidePoweredBy,omitempty"`
}

// ErrLastPage is returned when deleting the only remaining page of a project.
var ErrLastPage = errors.New("project must keep at least one page")

// ErrPageNotFound is returned when a page id does not exist in the project.
var ErrPageNotFound = errors.New("page not found")

// Project is a complete website: theme, pages, and project-level settings.
// The exporter always operates on a single consistent snapshot of this
// struct, captured at call time; nothing in the export path mutates it.
type Project struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Theme        Theme       `json:"theme"`
	Pages        []Page      `json:"pages"`
	ActivePageID string      `json:"activePageId"`
	Analytics    *Analytics  `json:"analytics,omitempty"`
	WhiteLabel   *WhiteLabel `json:"whiteLabel,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// PageByID returns the page with the given id, or nil.
func (p *Project) PageByID(id string) *Page {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return &p.Pages[i]
		}
	}
	return nil
}

// PageBySlug returns the page with the given slug, or nil.
func (p *Project) PageBySlug(slug string) *Page {
	for i := range p.Pages {
		if p.Pages[i].Slug == slug {
			return &p.Pages[i]
		}
	}
	return nil
}

// ActivePage returns the page ActivePageID points at, falling back to the
// first page when the pointer is stale.
func (p *Project) ActivePage() *Page {
	if page := p.PageByID(p.ActivePageID); page != nil {
		return page
	}
	if len(p.Pages) > 0 {
		return &p.Pages[0]
	}
	return nil
}

// Normalize repairs the active-page pointer after page mutations so the
// invariant "ActivePageID is always resolvable" holds.
func (p *Project) Normalize() {
	if len(p.Pages) == 0 {
		p.ActivePageID = ""
		return
	}
	if p.PageByID(p.ActivePageID) == nil {
		p.ActivePageID = p.Pages[0].ID
	}
}

// RemovePage deletes the page with the given id. Deleting the last remaining
// page is refused; deleting the active page reassigns the pointer to the
// first remaining page.
func (p *Project) RemovePage(id string) error {
	if len(p.Pages) <= 1 {
		return ErrLastPage
	}

	idx := -1
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPageNotFound
	}

	p.Pages = append(p.Pages[:idx], p.Pages[idx+1:]...)
	p.Normalize()
	return nil
}

// BrandName returns the branding to show in generated output: the white-label
// brand when configured, otherwise the product name.
func (p *Project) BrandName() string {
	if p.WhiteLabel != nil && p.WhiteLabel.Enabled && p.WhiteLabel.CustomBrand != "" {
		return p.WhiteLabel.CustomBrand
	}
	return "oSite"
}

// PoweredByHidden returns true when the white-label settings suppress the
// "powered by" marker in exports.
func (p *Project) PoweredByHidden() bool {
	return p.WhiteLabel != nil && p.WhiteLabel.Enabled && p.WhiteLabel.HidePoweredBy
}
