// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the meta tag data embedded into exported documents.
package seo

import (
	"strings"

	"github.com/olegiv/osite-go/internal/model"
)

// Meta holds the head metadata for one exported page.
type Meta struct {
	Title         string // <title> content, already suffixed with the project name
	Description   string // Meta description, empty when nothing sensible exists
	OGTitle       string
	OGDescription string
	OGImage       string
	OGSiteName    string
}

// descriptionMaxLen follows the common SERP snippet limit.
const descriptionMaxLen = 160

// ForPage builds the metadata for one page with fallbacks: the per-page SEO
// title wins over the page name, the SEO description over text extracted from
// the page's first content-bearing block. Everything derives from the project
// snapshot, so the result is stable across exports.
func ForPage(project *model.Project, page *model.Page) Meta {
	meta := Meta{OGSiteName: project.Name}

	title := page.Name
	if page.SEO != nil && page.SEO.Title != "" {
		title = page.SEO.Title
	}
	meta.OGTitle = title
	meta.Title = title + " — " + project.Name

	if page.SEO != nil && page.SEO.Description != "" {
		meta.Description = page.SEO.Description
	} else {
		meta.Description = truncateText(leadText(page), descriptionMaxLen)
	}
	meta.OGDescription = meta.Description

	if page.SEO != nil {
		meta.OGImage = page.SEO.OGImage
	}

	return meta
}

// leadText extracts a description candidate from the first block that carries
// body text. Hero subtitles and text-block content are the usual sources.
func leadText(page *model.Page) string {
	for _, b := range page.Content {
		switch p := b.Props.(type) {
		case model.HeroProps:
			if p.Subtitle != "" {
				return p.Subtitle
			}
		case model.TextBlockProps:
			if p.Content != "" {
				return stripHTML(p.Content)
			}
		}
	}
	return ""
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen characters at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	truncated := text[:maxLen]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}
