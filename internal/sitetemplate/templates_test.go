// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package sitetemplate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/olegiv/osite-go/internal/export"
	"github.com/olegiv/osite-go/internal/model"
)

func TestAll_Wellformed(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range All() {
		if tpl.ID == "" || tpl.Name == "" {
			t.Errorf("template %q missing id or name", tpl.ID)
		}
		if seen[tpl.ID] {
			t.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true

		if len(tpl.Pages) == 0 {
			t.Errorf("template %q has no pages", tpl.ID)
		}
		if tpl.Pages[0].Slug != model.HomeSlug {
			t.Errorf("template %q first page slug = %q, want %q", tpl.ID, tpl.Pages[0].Slug, model.HomeSlug)
		}
		if tpl.Theme.PrimaryColor == "" || tpl.Theme.FontFamily == "" {
			t.Errorf("template %q theme incomplete", tpl.ID)
		}
	}
}

func TestByID(t *testing.T) {
	if _, ok := ByID("restaurant"); !ok {
		t.Error("restaurant template missing")
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID returned a template for unknown id")
	}
}

func TestInstantiate_FreshIDs(t *testing.T) {
	tpl, _ := ByID("portfolio")

	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("page-%d", n)
	}

	pages := tpl.Instantiate(newID)
	if len(pages) != len(tpl.Pages) {
		t.Fatalf("Instantiate returned %d pages, want %d", len(pages), len(tpl.Pages))
	}
	for i, p := range pages {
		if p.ID == tpl.Pages[i].ID {
			t.Errorf("page %d kept the template id", i)
		}
		if p.ID == "" {
			t.Errorf("page %d has no id", i)
		}
	}

	// Appending to an instantiated page must not leak into the template.
	before := len(tpl.Pages[0].Content)
	pages[0].Content = append(pages[0].Content, model.Block{
		Type:  model.BlockSpacer,
		Props: model.SpacerProps{ID: "extra", Height: 10},
	})
	if len(tpl.Pages[0].Content) != before {
		t.Error("template content mutated through instantiated copy")
	}
}

// Every template must render every one of its blocks without falling back to
// the unknown-block comment.
func TestTemplates_AllBlocksRender(t *testing.T) {
	for _, tpl := range All() {
		for _, page := range tpl.Pages {
			for i, block := range page.Content {
				html := export.RenderBlock(block, tpl.Theme, export.Context{Year: 2026})
				if html == "" {
					t.Errorf("%s/%s block %d rendered empty", tpl.ID, page.Slug, i)
				}
				if strings.Contains(html, "unknown block") {
					t.Errorf("%s/%s block %d (%s) hit the unknown fallback", tpl.ID, page.Slug, i, block.Type)
				}
			}
		}
	}
}
