// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sitetemplate holds the built-in starter templates offered when a
// new project is created.
package sitetemplate

import (
	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/theme"
)

// Template is one selectable starter: a theme plus pre-filled pages.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`

	Theme model.Theme  `json:"-"`
	Pages []model.Page `json:"-"`
}

// All returns the built-in templates in display order.
func All() []Template {
	return []Template{restaurant, craftsman, portfolio}
}

// ByID returns the template with the given id.
func ByID(id string) (Template, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Instantiate returns deep-copied pages with fresh ids assigned by newID.
// Template content is shared state; callers must never mutate the originals.
func (t Template) Instantiate(newID func() string) []model.Page {
	pages := make([]model.Page, len(t.Pages))
	for i, p := range t.Pages {
		pages[i] = p
		pages[i].ID = newID()
		pages[i].Content = append([]model.Block(nil), p.Content...)
	}
	return pages
}

var restaurant = Template{
	ID:          "restaurant",
	Name:        "Restaurant",
	Description: "Perfekt für Gastronomie-Betriebe — Speisekarte, Öffnungszeiten, Kontakt",
	Thumbnail:   "🍽️",
	Theme:       theme.Preset("restaurant"),
	Pages: []model.Page{
		{
			Name: "Startseite",
			Slug: "/",
			Content: []model.Block{
				{Type: model.BlockHero, Props: model.HeroProps{
					ID:       "hero-1",
					Title:    "Willkommen im Bella Italia",
					Subtitle: "Authentische italienische Küche im Herzen der Stadt. Frische Zutaten, traditionelle Rezepte.",
					CTAText:  "Tisch reservieren",
					CTALink:  "#contact",
					BgColor:  "#1c1917", TextColor: "#ffffff", Height: "large",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s1", Height: 80}},
				{Type: model.BlockTextBlock, Props: model.TextBlockProps{
					ID:      "text-1",
					Heading: "Unsere Geschichte",
					Content: "Seit 1985 steht Bella Italia für authentische italienische Küche. Unser Familienrezept aus Neapel bringen wir jeden Tag auf Ihren Teller.",
					Align:   "center", Size: "wide",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s2", Height: 60}},
				{Type: model.BlockDivider, Props: model.DividerProps{ID: "d1", Style: "solid", Color: "#b45309"}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s3", Height: 60}},
				{Type: model.BlockOpeningHours, Props: model.OpeningHoursProps{
					ID:      "hours-1",
					Heading: "Öffnungszeiten",
					Days: []model.DayHours{
						{Day: "Mo–Fr", Hours: "11:30 – 14:30 & 18:00 – 22:00"},
						{Day: "Sa–So", Hours: "12:00 – 23:00"},
						{Day: "Feiertage", Hours: "12:00 – 22:00"},
					},
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s4", Height: 60}},
				{Type: model.BlockCTAButton, Props: model.CTAButtonProps{
					ID: "cta-1", Text: "Online reservieren", Link: "mailto:info@bella-italia.de",
					Variant: "primary", Size: "large",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s5", Height: 80}},
				{Type: model.BlockContactForm, Props: model.ContactFormProps{
					ID:         "contact-1",
					Heading:    "Kontakt & Reservierung",
					Subtitle:   "Fragen zu Reservierungen oder Gruppenevents? Wir freuen uns auf Ihre Nachricht.",
					ButtonText: "Anfrage senden",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s6", Height: 60}},
			},
		},
	},
}

var craftsman = Template{
	ID:          "craftsman",
	Name:        "Handwerker",
	Description: "Für Handwerksbetriebe — Leistungen, Referenzen, Kontaktformular",
	Thumbnail:   "🔨",
	Theme:       theme.Preset("craftsman"),
	Pages: []model.Page{
		{
			Name: "Startseite",
			Slug: "/",
			Content: []model.Block{
				{Type: model.BlockHero, Props: model.HeroProps{
					ID:       "hero-1",
					Title:    "Müller Elektrotechnik",
					Subtitle: "Ihr zuverlässiger Partner für Elektroinstallationen und Wartung. Über 20 Jahre Erfahrung.",
					CTAText:  "Jetzt anfragen",
					CTALink:  "#contact",
					BgColor:  "#1e3a5f", TextColor: "#ffffff",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s1", Height: 80}},
				{Type: model.BlockTextBlock, Props: model.TextBlockProps{
					ID:      "text-1",
					Heading: "Unsere Leistungen",
					Content: "- Elektroinstallation Neubau & Sanierung\n- Smart Home Systeme\n- Photovoltaik & Ladestationen\n- Wartung & Notdienst 24/7\n- Beleuchtungsplanung",
					Size:    "wide",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s2", Height: 60}},
				{Type: model.BlockDivider, Props: model.DividerProps{ID: "d1", Style: "solid", Color: "#1e40af"}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s3", Height: 60}},
				{Type: model.BlockTestimonials, Props: model.TestimonialsProps{
					ID: "test-1",
					Items: []model.Testimonial{
						{Name: "Familie Weber", Text: "Schnell, sauber und termingerecht. Absolute Empfehlung!"},
						{Name: "Bäckerei Krause", Role: "Gewerbekunde", Text: "Unsere komplette Ladenbeleuchtung wurde perfekt umgesetzt."},
					},
					Columns: "2", Style: "cards",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s4", Height: 60}},
				{Type: model.BlockCTAButton, Props: model.CTAButtonProps{
					ID: "cta-1", Text: "Kostenlos Angebot anfordern", Link: "#contact",
					Variant: "primary", Size: "large",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s5", Height: 80}},
				{Type: model.BlockContactForm, Props: model.ContactFormProps{
					ID:         "contact-1",
					Heading:    "Kontakt aufnehmen",
					Subtitle:   "Beschreiben Sie kurz Ihr Anliegen, wir melden uns innerhalb von 24 Stunden.",
					ButtonText: "Anfrage senden",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s6", Height: 60}},
			},
		},
	},
}

var portfolio = Template{
	ID:          "portfolio",
	Name:        "Portfolio",
	Description: "Für Kreative & Freelancer — Über mich, Projekte, Kontakt",
	Thumbnail:   "🎨",
	Theme:       theme.Preset("portfolio"),
	Pages: []model.Page{
		{
			Name: "Startseite",
			Slug: "/",
			Content: []model.Block{
				{Type: model.BlockHero, Props: model.HeroProps{
					ID:       "hero-1",
					Title:    "Hi, ich bin Sarah.",
					Subtitle: "UX Designerin & Creative Coder aus Berlin. Ich gestalte digitale Erlebnisse, die Menschen begeistern.",
					CTAText:  "Projekte ansehen",
					CTALink:  "#gallery",
					BgColor:  "#0f0f1a", TextColor: "#f1f5f9", Height: "fullscreen",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s1", Height: 80}},
				{Type: model.BlockTextBlock, Props: model.TextBlockProps{
					ID:      "text-1",
					Heading: "Über mich",
					Content: "5+ Jahre Erfahrung im UX & Product Design. Ich kombiniere ästhetisches Gespür mit technischem Know-how.",
					Align:   "center", Size: "wide",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s2", Height: 60}},
				{Type: model.BlockGallery, Props: model.GalleryProps{
					ID: "gallery-1",
					Images: []model.GalleryImage{
						{Src: "https://picsum.photos/seed/proj1/800/600", Alt: "E-Commerce Redesign"},
						{Src: "https://picsum.photos/seed/proj2/800/600", Alt: "Mobile App Design"},
						{Src: "https://picsum.photos/seed/proj3/800/600", Alt: "Brand Identity"},
						{Src: "https://picsum.photos/seed/proj4/800/600", Alt: "Dashboard UI"},
						{Src: "https://picsum.photos/seed/proj5/800/600", Alt: "Landing Page"},
						{Src: "https://picsum.photos/seed/proj6/800/600", Alt: "Design System"},
					},
					Columns: "3",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s3", Height: 80}},
				{Type: model.BlockSocialLinks, Props: model.SocialLinksProps{
					ID: "social-1",
					Links: []model.SocialLink{
						{Platform: "instagram", URL: "https://instagram.com/"},
						{Platform: "linkedin", URL: "https://linkedin.com/"},
						{Platform: "email", URL: "hallo@sarah.design"},
					},
					Style: "pills",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s4", Height: 80}},
				{Type: model.BlockCTAButton, Props: model.CTAButtonProps{
					ID: "cta-1", Text: "Lass uns zusammenarbeiten", Link: "#contact",
					Variant: "primary", Size: "large",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s5", Height: 60}},
				{Type: model.BlockContactForm, Props: model.ContactFormProps{
					ID:         "contact-1",
					Heading:    "Schreib mir",
					Subtitle:   "Ich freue mich auf spannende Projekte und Kooperationen.",
					ButtonText: "Nachricht senden",
				}},
				{Type: model.BlockSpacer, Props: model.SpacerProps{ID: "s6", Height: 60}},
			},
		},
	},
}
