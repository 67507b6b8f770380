// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package theme resolves a project theme into the design-token map used both
// for live preview (inline style variables) and for the generated stylesheet
// of exported sites.
package theme

import (
	"strings"

	"github.com/olegiv/osite-go/internal/model"
)

// Token names, also the suffix of the emitted CSS custom property
// (primary -> --theme-primary).
const (
	TokenPrimary     = "primary"
	TokenSecondary   = "secondary"
	TokenAccent      = "accent"
	TokenBackground  = "bg"
	TokenText        = "text"
	TokenFont        = "font"
	TokenHeadingFont = "heading-font"
	TokenRadius      = "radius"
	TokenSpacing     = "spacing"
)

// tokenOrder fixes the emission order of tokens. Map iteration order is
// random in Go; exported CSS must be byte-identical across runs.
var tokenOrder = []string{
	TokenPrimary,
	TokenSecondary,
	TokenAccent,
	TokenBackground,
	TokenText,
	TokenFont,
	TokenHeadingFont,
	TokenRadius,
	TokenSpacing,
}

// TokenMap is the resolved set of named design values derived from a theme.
type TokenMap map[string]string

// Resolve maps a theme record to its token map. Values are taken verbatim;
// no CSS syntax validation is performed, so invalid values pass through and
// degrade gracefully in the browser.
func Resolve(t model.Theme) TokenMap {
	return TokenMap{
		TokenPrimary:     t.PrimaryColor,
		TokenSecondary:   t.SecondaryColor,
		TokenAccent:      t.AccentColor,
		TokenBackground:  t.BackgroundColor,
		TokenText:        t.TextColor,
		TokenFont:        t.FontFamily,
		TokenHeadingFont: t.HeadingFont,
		TokenRadius:      t.BorderRadius,
		TokenSpacing:     t.Spacing,
	}
}

// Var returns the CSS custom property name for a token.
func Var(token string) string {
	return "--theme-" + token
}

// CSSDeclarations renders the token map as indented custom-property
// declarations for a :root block, in fixed token order.
func (m TokenMap) CSSDeclarations() string {
	var sb strings.Builder
	for _, token := range tokenOrder {
		sb.WriteString("  ")
		sb.WriteString(Var(token))
		sb.WriteString(": ")
		sb.WriteString(m[token])
		sb.WriteString(";\n")
	}
	return sb.String()
}

// InlineStyleVars renders the token map as a single style-attribute value for
// live preview, functionally identical to the export-time declarations.
func InlineStyleVars(t model.Theme) string {
	m := Resolve(t)
	parts := make([]string, 0, len(tokenOrder))
	for _, token := range tokenOrder {
		parts = append(parts, Var(token)+": "+m[token])
	}
	return strings.Join(parts, "; ")
}
