// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A stored project must decode back into an identical structure, block props
// included. This is the contract the snapshot payloads depend on.
func TestProjectJSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)

	original := Project{
		ID:   "p1",
		Name: "Trattoria Roma",
		Theme: Theme{
			PrimaryColor:    "#b45309",
			BackgroundColor: "#fffbf5",
			TextColor:       "#1c1917",
			FontFamily:      "'Lato', sans-serif",
			HeadingFont:     "'Playfair Display', serif",
			BorderRadius:    "0.25rem",
			Spacing:         "1rem",
		},
		Pages: []Page{
			{
				ID:   "pg1",
				Name: "Startseite",
				Slug: HomeSlug,
				SEO:  &PageSEO{Title: "Trattoria Roma", Description: "Italienische Küche"},
				Content: []Block{
					{Type: BlockHero, Props: HeroProps{ID: "h1", Title: "Willkommen", Height: "large"}},
					{Type: BlockSpacer, Props: SpacerProps{ID: "s1", Height: 80}},
					{Type: BlockOpeningHours, Props: OpeningHoursProps{
						ID:   "oh1",
						Days: []DayHours{{Day: "Mo", Hours: "10:00 - 18:00"}},
					}},
				},
			},
		},
		ActivePageID: "pg1",
		Analytics:    &Analytics{Provider: AnalyticsPlausible, SiteID: "trattoria.example"},
		WhiteLabel:   &WhiteLabel{Enabled: true, CustomBrand: "Agentur Nord"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Project
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

// Blocks of a type this build does not know keep their payload byte-for-byte
// across a decode/encode cycle.
func TestUnknownBlockRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"countdown","props":{"until":"2027-01-01","style":"bold"}}`)

	var b Block
	require.NoError(t, json.Unmarshal(raw, &b))

	unknown, ok := b.Props.(UnknownProps)
	require.True(t, ok, "props decoded as %T", b.Props)
	assert.JSONEq(t, `{"until":"2027-01-01","style":"bold"}`, string(unknown.Raw))

	reencoded, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(reencoded))
}
