// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
)

// BlockType identifies a content block variant.
type BlockType string

// Supported block types.
const (
	BlockHero         BlockType = "Hero"
	BlockTextBlock    BlockType = "TextBlock"
	BlockImage        BlockType = "ImageBlock"
	BlockGallery      BlockType = "Gallery"
	BlockCTAButton    BlockType = "CTAButton"
	BlockContactForm  BlockType = "ContactForm"
	BlockTestimonials BlockType = "Testimonials"
	BlockFAQ          BlockType = "FAQ"
	BlockVideo        BlockType = "Video"
	BlockNavigation   BlockType = "Navigation"
	BlockFooter       BlockType = "Footer"
	BlockSocialLinks  BlockType = "SocialLinks"
	BlockOpeningHours BlockType = "OpeningHours"
	BlockGoogleMap    BlockType = "GoogleMap"
	BlockSpacer       BlockType = "Spacer"
	BlockDivider      BlockType = "Divider"
)

// BlockProps is implemented by every per-type props record. Each block type
// carries its own field set; the renderer registry switches over the concrete
// types so that a block type without a renderer fails review, not runtime.
type BlockProps interface {
	blockProps()
}

// Block is one content unit on a page: a type tag plus the props record
// belonging to that type. Blocks are owned by exactly one page and rendered
// in list order.
type Block struct {
	Type  BlockType
	Props BlockProps
}

// blockEnvelope is the JSON wire form of a block.
type blockEnvelope struct {
	Type  BlockType       `json:"type"`
	Props json.RawMessage `json:"props"`
}

// UnmarshalJSON decodes a block envelope and dispatches the props payload to
// the record type matching the tag. Unknown types never fail: they decode
// into UnknownProps so a stale or third-party block degrades to a placeholder
// at render time instead of poisoning the whole project document.
func (b *Block) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding block envelope: %w", err)
	}

	props, err := decodeProps(env.Type, env.Props)
	if err != nil {
		return fmt.Errorf("decoding %s props: %w", env.Type, err)
	}

	b.Type = env.Type
	b.Props = props
	return nil
}

// MarshalJSON encodes the block back into its envelope form.
func (b Block) MarshalJSON() ([]byte, error) {
	if u, ok := b.Props.(UnknownProps); ok {
		// Round-trip the original payload untouched.
		raw := u.Raw
		if len(raw) == 0 {
			raw = json.RawMessage("{}")
		}
		return json.Marshal(blockEnvelope{Type: b.Type, Props: raw})
	}

	rawProps, err := json.Marshal(b.Props)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockEnvelope{Type: b.Type, Props: rawProps})
}

// decodeProps unmarshals raw props into the record type for the given tag.
func decodeProps(t BlockType, raw json.RawMessage) (BlockProps, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	unmarshal := func(v BlockProps) (BlockProps, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, err
		}
		return derefProps(v), nil
	}

	switch t {
	case BlockHero:
		return unmarshal(&HeroProps{})
	case BlockTextBlock:
		return unmarshal(&TextBlockProps{})
	case BlockImage:
		return unmarshal(&ImageBlockProps{})
	case BlockGallery:
		return unmarshal(&GalleryProps{})
	case BlockCTAButton:
		return unmarshal(&CTAButtonProps{})
	case BlockContactForm:
		return unmarshal(&ContactFormProps{})
	case BlockTestimonials:
		return unmarshal(&TestimonialsProps{})
	case BlockFAQ:
		return unmarshal(&FAQProps{})
	case BlockVideo:
		return unmarshal(&VideoProps{})
	case BlockNavigation:
		return unmarshal(&NavigationProps{})
	case BlockFooter:
		return unmarshal(&FooterProps{})
	case BlockSocialLinks:
		return unmarshal(&SocialLinksProps{})
	case BlockOpeningHours:
		return unmarshal(&OpeningHoursProps{})
	case BlockGoogleMap:
		return unmarshal(&GoogleMapProps{})
	case BlockSpacer:
		return unmarshal(&SpacerProps{})
	case BlockDivider:
		return unmarshal(&DividerProps{})
	default:
		return UnknownProps{Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

// derefProps converts the pointer used for unmarshaling back to a value.
func derefProps(v BlockProps) BlockProps {
	switch p := v.(type) {
	case *HeroProps:
		return *p
	case *TextBlockProps:
		return *p
	case *ImageBlockProps:
		return *p
	case *GalleryProps:
		return *p
	case *CTAButtonProps:
		return *p
	case *ContactFormProps:
		return *p
	case *TestimonialsProps:
		return *p
	case *FAQProps:
		return *p
	case *VideoProps:
		return *p
	case *NavigationProps:
		return *p
	case *FooterProps:
		return *p
	case *SocialLinksProps:
		return *p
	case *OpeningHoursProps:
		return *p
	case *GoogleMapProps:
		return *p
	case *SpacerProps:
		return *p
	case *DividerProps:
		return *p
	default:
		return v
	}
}

// HeroProps configures a full-width hero banner.
type HeroProps struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	CTAText   string `json:"ctaText,omitempty"`
	CTALink   string `json:"ctaLink,omitempty"`
	BgColor   string `json:"bgColor,omitempty"`
	BgImage   string `json:"bgImage,omitempty"`
	TextColor string `json:"textColor,omitempty"`
	// Height is one of "small", "large", "fullscreen". Missing renders large.
	Height string `json:"height,omitempty"`
}

func (HeroProps) blockProps() {}

// TextBlockProps configures a text section. Content is rich text: it is
// rendered as Markdown and sanitized on export.
type TextBlockProps struct {
	ID      string `json:"id,omitempty"`
	Heading string `json:"heading,omitempty"`
	Content string `json:"content"`
	// Align is one of "left", "center", "right". Missing renders left.
	Align string `json:"align,omitempty"`
	// Size is one of "narrow", "normal", "wide". Missing renders normal.
	Size string `json:"size,omitempty"`
}

func (TextBlockProps) blockProps() {}

// ImageBlockProps configures a single image with optional caption and link.
type ImageBlockProps struct {
	ID      string `json:"id,omitempty"`
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Link    string `json:"link,omitempty"`
	// Width is one of "small", "normal", "full". Missing renders normal.
	Width string `json:"width,omitempty"`
	// Align is one of "left", "center", "right". Missing renders center.
	Align   string `json:"align,omitempty"`
	Rounded bool   `json:"rounded,omitempty"`
}

func (ImageBlockProps) blockProps() {}

// GalleryImage is one image in a gallery grid.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// GalleryProps configures an image grid.
type GalleryProps struct {
	ID     string         `json:"id,omitempty"`
	Images []GalleryImage `json:"images"`
	// Columns is "2" or "3". Missing renders 3 columns.
	Columns string `json:"columns,omitempty"`
}

func (GalleryProps) blockProps() {}

// CTAButtonProps configures a standalone call-to-action button.
type CTAButtonProps struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	Link string `json:"link"`
	// Variant is one of "primary", "secondary", "outline". Missing renders primary.
	Variant string `json:"variant,omitempty"`
	// Size is one of "small", "normal", "large". Missing renders normal.
	Size string `json:"size,omitempty"`
}

func (CTAButtonProps) blockProps() {}

// ContactFormProps configures a static contact form.
type ContactFormProps struct {
	ID         string `json:"id,omitempty"`
	Heading    string `json:"heading,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	BgColor    string `json:"bgColor,omitempty"`
}

func (ContactFormProps) blockProps() {}

// Testimonial is one customer quote.
type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Text   string `json:"text"`
	Avatar string `json:"avatar,omitempty"`
}

// TestimonialsProps configures a testimonial grid.
type TestimonialsProps struct {
	ID    string        `json:"id,omitempty"`
	Items []Testimonial `json:"items"`
	// Columns is "2" or "3". Missing renders 3 columns.
	Columns string `json:"columns,omitempty"`
	// Style is "cards" or "quotes". Missing renders quotes.
	Style string `json:"style,omitempty"`
}

func (TestimonialsProps) blockProps() {}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQProps configures an accordion of questions and answers.
type FAQProps struct {
	ID      string    `json:"id,omitempty"`
	Heading string    `json:"heading,omitempty"`
	Items   []FAQItem `json:"items"`
}

func (FAQProps) blockProps() {}

// VideoProps configures an embedded video player.
type VideoProps struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	// AspectRatio is one of "16:9", "4:3", "1:1". Missing renders 16:9.
	AspectRatio string `json:"aspectRatio,omitempty"`
	// MaxWidth is one of "small", "normal", "full". Missing renders normal.
	MaxWidth string `json:"maxWidth,omitempty"`
}

func (VideoProps) blockProps() {}

// NavLink is a labeled hyperlink used by navigation and footer blocks.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// NavigationProps configures an in-page header block with its own link list,
// distinct from the cross-page navigation the compositor generates.
type NavigationProps struct {
	ID        string    `json:"id,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	Links     []NavLink `json:"links"`
	BgColor   string    `json:"bgColor,omitempty"`
	TextColor string    `json:"textColor,omitempty"`
	// Sticky defaults to true when absent.
	Sticky *bool `json:"sticky,omitempty"`
	// Style is "minimal" or "centered". Missing renders minimal.
	Style string `json:"style,omitempty"`
}

func (NavigationProps) blockProps() {}

// IsSticky resolves the sticky flag with its default.
func (p NavigationProps) IsSticky() bool {
	return p.Sticky == nil || *p.Sticky
}

// FooterProps configures a page footer.
type FooterProps struct {
	ID          string    `json:"id,omitempty"`
	CompanyName string    `json:"companyName"`
	Tagline     string    `json:"tagline,omitempty"`
	Links       []NavLink `json:"links,omitempty"`
	BgColor     string    `json:"bgColor,omitempty"`
	TextColor   string    `json:"textColor,omitempty"`
	// ShowCopyright defaults to true when absent.
	ShowCopyright *bool `json:"showCopyright,omitempty"`
}

func (FooterProps) blockProps() {}

// CopyrightShown resolves the copyright flag with its default.
func (p FooterProps) CopyrightShown() bool {
	return p.ShowCopyright == nil || *p.ShowCopyright
}

// SocialLink points at a social media profile.
type SocialLink struct {
	// Platform is a well-known identifier (facebook, instagram, twitter,
	// linkedin, youtube, tiktok, whatsapp, telegram, email, website).
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinksProps configures a row of social media links.
type SocialLinksProps struct {
	ID    string       `json:"id,omitempty"`
	Links []SocialLink `json:"links"`
	// Size is one of "small", "medium", "large". Missing renders medium.
	Size string `json:"size,omitempty"`
	// Align is one of "left", "center", "right". Missing renders center.
	Align string `json:"align,omitempty"`
	// Style is "icons" or "pills". Missing renders icons.
	Style string `json:"style,omitempty"`
}

func (SocialLinksProps) blockProps() {}

// DayHours is one row of an opening-hours table.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// OpeningHoursProps configures a weekly opening-hours listing.
type OpeningHoursProps struct {
	ID      string     `json:"id,omitempty"`
	Heading string     `json:"heading,omitempty"`
	Days    []DayHours `json:"days"`
	Note    string     `json:"note,omitempty"`
	// Style is "table" or "cards". Missing renders table.
	Style string `json:"style,omitempty"`
}

func (OpeningHoursProps) blockProps() {}

// GoogleMapProps configures an embedded map for a street address.
type GoogleMapProps struct {
	ID      string `json:"id,omitempty"`
	Address string `json:"address"`
	// Height is one of "small", "medium", "large". Missing renders medium.
	Height  string `json:"height,omitempty"`
	Caption string `json:"caption,omitempty"`
	// Rounded defaults to true when absent.
	Rounded *bool `json:"rounded,omitempty"`
}

func (GoogleMapProps) blockProps() {}

// IsRounded resolves the rounded flag with its default.
func (p GoogleMapProps) IsRounded() bool {
	return p.Rounded == nil || *p.Rounded
}

// SpacerProps configures vertical whitespace.
type SpacerProps struct {
	ID string `json:"id,omitempty"`
	// Height in pixels. Missing or zero renders 64.
	Height int `json:"height,omitempty"`
}

func (SpacerProps) blockProps() {}

// DividerProps configures a horizontal rule.
type DividerProps struct {
	ID string `json:"id,omitempty"`
	// Thickness in pixels. Missing or zero renders 1.
	Thickness int `json:"thickness,omitempty"`
	// Style is one of "solid", "dashed", "dotted". Missing renders solid.
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
	// Width is one of "small", "normal", "full". Missing renders normal.
	Width string `json:"width,omitempty"`
}

func (DividerProps) blockProps() {}

// UnknownProps carries the untouched payload of a block type this build does
// not know. It round-trips through storage and renders as a placeholder.
type UnknownProps struct {
	Raw json.RawMessage `json:"-"`
}

func (UnknownProps) blockProps() {}
