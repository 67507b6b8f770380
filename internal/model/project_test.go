// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"testing"
)

func threePageProject() *Project {
	return &Project{
		ID:   "p1",
		Name: "Test Site",
		Pages: []Page{
			{ID: "home", Name: "Startseite", Slug: "/"},
			{ID: "about", Name: "Über uns", Slug: "/about"},
			{ID: "contact", Name: "Kontakt", Slug: "/contact"},
		},
		ActivePageID: "about",
	}
}

func TestRemovePageReassignsActivePointer(t *testing.T) {
	p := threePageProject()

	if err := p.RemovePage("about"); err != nil {
		t.Fatalf("RemovePage() error = %v", err)
	}
	if len(p.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(p.Pages))
	}
	if p.ActivePageID != "home" {
		t.Errorf("ActivePageID = %q, want %q (first remaining page)", p.ActivePageID, "home")
	}
}

func TestRemovePageKeepsUnrelatedPointer(t *testing.T) {
	p := threePageProject()

	if err := p.RemovePage("contact"); err != nil {
		t.Fatalf("RemovePage() error = %v", err)
	}
	if p.ActivePageID != "about" {
		t.Errorf("ActivePageID = %q, want %q", p.ActivePageID, "about")
	}
}

func TestRemoveLastPageRefused(t *testing.T) {
	p := &Project{
		Pages:        []Page{{ID: "home", Slug: "/"}},
		ActivePageID: "home",
	}

	err := p.RemovePage("home")
	if !errors.Is(err, ErrLastPage) {
		t.Errorf("RemovePage() error = %v, want ErrLastPage", err)
	}
	if len(p.Pages) != 1 {
		t.Errorf("len(Pages) = %d, page must survive", len(p.Pages))
	}
}

func TestRemoveMissingPage(t *testing.T) {
	p := threePageProject()
	if err := p.RemovePage("nope"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("RemovePage() error = %v, want ErrPageNotFound", err)
	}
}

func TestActivePageFallback(t *testing.T) {
	p := threePageProject()
	p.ActivePageID = "stale"

	page := p.ActivePage()
	if page == nil || page.ID != "home" {
		t.Errorf("ActivePage() = %+v, want first page", page)
	}

	p.Normalize()
	if p.ActivePageID != "home" {
		t.Errorf("Normalize() left ActivePageID = %q", p.ActivePageID)
	}
}

func TestBrandName(t *testing.T) {
	p := threePageProject()
	if got := p.BrandName(); got != "oSite" {
		t.Errorf("BrandName() = %q, want default", got)
	}

	p.WhiteLabel = &WhiteLabel{Enabled: true, CustomBrand: "Webdesign Müller"}
	if got := p.BrandName(); got != "Webdesign Müller" {
		t.Errorf("BrandName() = %q, want custom brand", got)
	}

	p.WhiteLabel.Enabled = false
	if got := p.BrandName(); got != "oSite" {
		t.Errorf("BrandName() = %q, disabled white-label must fall back", got)
	}
}

func TestAnalyticsEnabled(t *testing.T) {
	var a *Analytics
	if a.Enabled() {
		t.Error("nil analytics must be disabled")
	}
	if (&Analytics{Provider: AnalyticsNone, SiteID: "x"}).Enabled() {
		t.Error(`provider "none" must be disabled`)
	}
	if (&Analytics{Provider: AnalyticsPlausible}).Enabled() {
		t.Error("missing site id must be disabled")
	}
	if !(&Analytics{Provider: AnalyticsPlausible, SiteID: "example.ch"}).Enabled() {
		t.Error("configured plausible must be enabled")
	}
}
