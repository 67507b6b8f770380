// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the core data types of the oSite project model:
// themes, blocks, pages, and projects. All types are JSON-serializable and
// mirror the wire format the editor frontend sends.
package model

// Theme holds the shared design tokens applied across all pages of a project.
// All fields are CSS literal values and are consumed read-only by renderers;
// a theme is only ever replaced as a whole, never partially mutated.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	HeadingFont     string `json:"headingFont"`
	BorderRadius    string `json:"borderRadius"`
	Spacing         string `json:"spacing"`
}

// IsZero returns true if no theme field is set.
func (t Theme) IsZero() bool {
	return t == Theme{}
}
