// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"strings"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/seo"
	"github.com/olegiv/osite-go/internal/theme"
)

// googleFontsHref loads every font family the theme presets offer, so a
// document keeps rendering after theme switches without re-export of assets.
const googleFontsHref = "https://fonts.googleapis.com/css2?family=DM+Sans:wght@400;500;600;700&family=Inter:wght@400;500;600;700&family=Lato:wght@400;700&family=Playfair+Display:wght@400;600;700&family=Roboto:wght@400;500;700&family=Poppins:wght@400;500;600;700&family=Montserrat:wght@400;500;600;700&family=Open+Sans:wght@400;600;700&display=swap"

// AssembleDocument renders the complete standalone HTML document for one page
// of the project. The output embeds everything except fonts and user images,
// so the file opens in a browser without build tooling. Output is a pure
// function of the project snapshot.
func AssembleDocument(project *model.Project, pageIndex int) string {
	page := &project.Pages[pageIndex]
	t := project.Theme
	meta := seo.ForPage(project, page)
	tokens := theme.Resolve(t)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"de\">\n<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("  <title>" + esc(meta.Title) + "</title>\n")
	if meta.Description != "" {
		sb.WriteString("  <meta name=\"description\" content=\"" + esc(meta.Description) + "\">\n")
	}
	sb.WriteString("  <meta property=\"og:title\" content=\"" + esc(meta.OGTitle) + "\">\n")
	if meta.OGDescription != "" {
		sb.WriteString("  <meta property=\"og:description\" content=\"" + esc(meta.OGDescription) + "\">\n")
	}
	if meta.OGImage != "" {
		sb.WriteString("  <meta property=\"og:image\" content=\"" + escURL(meta.OGImage) + "\">\n")
	}
	sb.WriteString("  <meta property=\"og:site_name\" content=\"" + esc(meta.OGSiteName) + "\">\n")
	sb.WriteString("  <meta property=\"og:type\" content=\"website\">\n")
	if snippet := AnalyticsSnippet(project.Analytics); snippet != "" {
		for _, line := range strings.Split(snippet, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("  <link rel=\"preconnect\" href=\"https://fonts.googleapis.com\">\n")
	sb.WriteString("  <link rel=\"preconnect\" href=\"https://fonts.gstatic.com\" crossorigin>\n")
	sb.WriteString("  <link href=\"" + googleFontsHref + "\" rel=\"stylesheet\">\n")
	sb.WriteString("  <style>\n")
	sb.WriteString(documentStyles(t, tokens))
	sb.WriteString("  </style>\n")
	if !project.PoweredByHidden() {
		sb.WriteString("  <!-- Erstellt mit " + esc(project.BrandName()) + " -->\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(ComposePage(project, pageIndex))
	sb.WriteString("\n</body>\n</html>")
	return sb.String()
}

// documentStyles renders the embedded stylesheet: theme custom properties,
// resets and the shared layout utilities the block renderers rely on.
func documentStyles(t model.Theme, tokens theme.TokenMap) string {
	var sb strings.Builder
	sb.WriteString("    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }\n")
	sb.WriteString("    :root {\n")
	sb.WriteString(tokens.CSSDeclarations())
	sb.WriteString("    }\n")
	sb.WriteString("    body {\n")
	sb.WriteString("      font-family: " + t.FontFamily + ";\n")
	sb.WriteString("      background-color: " + t.BackgroundColor + ";\n")
	sb.WriteString("      color: " + t.TextColor + ";\n")
	sb.WriteString("      line-height: 1.6;\n")
	sb.WriteString("      -webkit-font-smoothing: antialiased;\n")
	sb.WriteString("    }\n")
	sb.WriteString("    img { max-width: 100%; height: auto; }\n")
	sb.WriteString("    .container { max-width: 1200px; margin: 0 auto; padding: 0 24px; }\n")
	sb.WriteString("    .section { padding: 64px 24px; }\n")
	sb.WriteString("    .btn {\n")
	sb.WriteString("      display: inline-block;\n")
	sb.WriteString("      padding: 12px 32px;\n")
	sb.WriteString("      border-radius: " + t.BorderRadius + ";\n")
	sb.WriteString("      font-weight: 600;\n")
	sb.WriteString("      text-decoration: none;\n")
	sb.WriteString("      transition: opacity 0.2s;\n")
	sb.WriteString("    }\n")
	sb.WriteString("    .btn:hover { opacity: 0.9; }\n")
	sb.WriteString("    .grid-2 { display: grid; grid-template-columns: repeat(2, 1fr); gap: 24px; }\n")
	sb.WriteString("    .grid-3 { display: grid; grid-template-columns: repeat(3, 1fr); gap: 24px; }\n")
	sb.WriteString("    @media (max-width: 768px) {\n")
	sb.WriteString("      .grid-2, .grid-3 { grid-template-columns: 1fr; }\n")
	sb.WriteString("    }\n")
	sb.WriteString("    details { border: 1px solid #e5e7eb; border-radius: 12px; margin-bottom: 8px; }\n")
	sb.WriteString("    details summary { padding: 16px 20px; cursor: pointer; font-weight: 500; }\n")
	sb.WriteString("    details[open] summary { border-bottom: 1px solid #e5e7eb; }\n")
	sb.WriteString("    details .answer { padding: 16px 20px; font-size: 14px; opacity: 0.75; }\n")
	return sb.String()
}
