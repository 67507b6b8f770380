// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/olegiv/osite-go/internal/model"
)

const (
	navActiveColor   = "#818cf8"
	navInactiveColor = "#999"
)

// PageFilename returns the output filename for the page at the given index.
// The first page always becomes index.html regardless of its slug; every
// other page maps to its slug without the leading slash, plus ".html".
func PageFilename(page *model.Page, index int) string {
	if index == 0 {
		return "index.html"
	}
	return strings.TrimPrefix(page.Slug, "/") + ".html"
}

// ComposePage renders the body of one page: the cross-page navigation bar
// (multi-page projects only) followed by the page's block fragments joined by
// newlines. The index must be in range; callers resolve pages first.
func ComposePage(project *model.Project, pageIndex int) string {
	page := &project.Pages[pageIndex]
	ctx := Context{
		PageIndex: pageIndex,
		Year:      project.UpdatedAt.UTC().Year(),
	}

	fragments := make([]string, 0, len(page.Content)+1)
	if nav := crossPageNav(project, pageIndex); nav != "" {
		fragments = append(fragments, nav)
	}
	for _, b := range page.Content {
		fragments = append(fragments, RenderBlock(b, project.Theme, ctx))
	}
	return strings.Join(fragments, "\n")
}

// crossPageNav builds the generated navigation bar linking every page of a
// multi-page project, with the current page highlighted. Single-page projects
// get no bar.
func crossPageNav(project *model.Project, pageIndex int) string {
	if len(project.Pages) < 2 {
		return ""
	}

	links := make([]string, 0, len(project.Pages))
	for i := range project.Pages {
		p := &project.Pages[i]
		color := navInactiveColor
		if i == pageIndex {
			color = navActiveColor
		}
		links = append(links, fmt.Sprintf(`<a href="%s" style="color:%s;text-decoration:none;font-size:14px;">%s</a>`,
			escURL(PageFilename(p, i)), color, esc(p.Name)))
	}

	return `<nav style="background:#111;padding:12px 24px;display:flex;gap:12px;align-items:center;">
      <span style="font-weight:700;color:#fff;margin-right:auto;">` + esc(project.Name) + `</span>
      ` + strings.Join(links, "\n      ") + `
    </nav>`
}
