// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package theme

import "github.com/olegiv/osite-go/internal/model"

// Default is the theme assigned to projects created without a template.
var Default = model.Theme{
	PrimaryColor:    "#6366f1",
	SecondaryColor:  "#ec4899",
	AccentColor:     "#f59e0b",
	BackgroundColor: "#ffffff",
	TextColor:       "#0f172a",
	FontFamily:      "'Inter', system-ui, sans-serif",
	HeadingFont:     "'Inter', system-ui, sans-serif",
	BorderRadius:    "0.5rem",
	Spacing:         "1rem",
}

// Presets are the built-in theme palettes selectable in the editor.
var Presets = map[string]model.Theme{
	"default": Default,
	"restaurant": {
		PrimaryColor:    "#b45309",
		SecondaryColor:  "#d97706",
		AccentColor:     "#fbbf24",
		BackgroundColor: "#fffbf5",
		TextColor:       "#1c1917",
		FontFamily:      "'Lato', 'Helvetica Neue', sans-serif",
		HeadingFont:     "'Playfair Display', Georgia, serif",
		BorderRadius:    "0.25rem",
		Spacing:         "1rem",
	},
	"craftsman": {
		PrimaryColor:    "#1e40af",
		SecondaryColor:  "#3b82f6",
		AccentColor:     "#f59e0b",
		BackgroundColor: "#f8fafc",
		TextColor:       "#0f172a",
		FontFamily:      "'Roboto', system-ui, sans-serif",
		HeadingFont:     "'Roboto Slab', Georgia, serif",
		BorderRadius:    "0.375rem",
		Spacing:         "1rem",
	},
	"portfolio": {
		PrimaryColor:    "#7c3aed",
		SecondaryColor:  "#a78bfa",
		AccentColor:     "#34d399",
		BackgroundColor: "#0f0f1a",
		TextColor:       "#f1f5f9",
		FontFamily:      "'DM Sans', system-ui, sans-serif",
		HeadingFont:     "'DM Sans', system-ui, sans-serif",
		BorderRadius:    "0.75rem",
		Spacing:         "1.25rem",
	},
}

// Preset returns the named preset, falling back to Default.
func Preset(name string) model.Theme {
	if t, ok := Presets[name]; ok {
		return t
	}
	return Default
}
