// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"bytes"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// markdown renders TextBlock content. Hard wraps keep the editor behavior of
// single newlines becoming line breaks.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// sanitizer strips anything outside the user-generated-content allowlist from
// rendered rich text before it is interpolated into a document.
var sanitizer = bluemonday.UGCPolicy()

// esc escapes a user-entered plain-text value for interpolation into HTML
// element content or a double-quoted attribute. Every plain-text prop goes
// through here; the only unescaped path is richText.
func esc(s string) string {
	return html.EscapeString(s)
}

// escURL escapes a user-entered URL for use in a double-quoted attribute.
// The value is not otherwise validated; a broken URL yields a broken link,
// not broken markup.
func escURL(s string) string {
	return html.EscapeString(s)
}

// queryEscape encodes a user-entered value for use inside a URL query
// component, as in the keyless maps embed.
func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// richText renders Markdown content to sanitized HTML. The result is safe to
// interpolate without further escaping.
func richText(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// Conversion of plain text never fails in practice; fall back to the
		// escaped source so the block still renders.
		return "<p>" + esc(src) + "</p>"
	}
	return strings.TrimSpace(sanitizer.Sanitize(buf.String()))
}
