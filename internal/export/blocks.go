// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package export implements the static-site export engine: pure functions
// that turn a project snapshot into self-contained HTML documents and a
// downloadable archive. Nothing in this package performs I/O except the
// final zip packaging; two exports of an unchanged project are byte-identical.
package export

import (
	"fmt"
	"strings"

	"github.com/olegiv/osite-go/internal/model"
)

// Context carries page-independent data a few renderers need.
type Context struct {
	// PageIndex is the position of the page being rendered.
	PageIndex int
	// Year parameterizes copyright lines. It derives from the project
	// snapshot, never from the wall clock.
	Year int
}

// RenderBlock renders one block to an HTML fragment. Rendering never fails:
// unknown block types degrade to an inert comment marker so one bad block
// cannot break a page export.
func RenderBlock(b model.Block, t model.Theme, ctx Context) string {
	switch p := b.Props.(type) {
	case model.HeroProps:
		return renderHero(p, t)
	case model.TextBlockProps:
		return renderTextBlock(p, t)
	case model.ImageBlockProps:
		return renderImageBlock(p, t)
	case model.GalleryProps:
		return renderGallery(p, t)
	case model.CTAButtonProps:
		return renderCTAButton(p, t)
	case model.ContactFormProps:
		return renderContactForm(p, t)
	case model.TestimonialsProps:
		return renderTestimonials(p, t)
	case model.FAQProps:
		return renderFAQ(p, t)
	case model.VideoProps:
		return renderVideo(p)
	case model.NavigationProps:
		return renderNavigation(p, t)
	case model.FooterProps:
		return renderFooter(p, t, ctx)
	case model.SocialLinksProps:
		return renderSocialLinks(p)
	case model.OpeningHoursProps:
		return renderOpeningHours(p, t)
	case model.GoogleMapProps:
		return renderGoogleMap(p)
	case model.SpacerProps:
		return renderSpacer(p)
	case model.DividerProps:
		return renderDivider(p)
	default:
		return unknownBlockComment(b.Type)
	}
}

// unknownBlockComment emits the placeholder for unrecognized block types.
func unknownBlockComment(t model.BlockType) string {
	// "--" would terminate the comment early.
	name := strings.ReplaceAll(string(t), "--", "-")
	return "<!-- unknown block: " + name + " -->"
}

// Static layout tables. Every enumerated prop maps through one of these;
// there is no computed layout.

var heroHeights = map[string]string{
	"small":      "50vh",
	"large":      "75vh",
	"fullscreen": "100vh",
}

var textSizes = map[string]string{
	"narrow": "640px",
	"normal": "800px",
	"wide":   "1000px",
}

var imageWidths = map[string]string{
	"small":  "480px",
	"normal": "800px",
	"full":   "100%",
}

var buttonFontSizes = map[string]string{
	"small":  "0.8rem",
	"normal": "1rem",
	"large":  "1.125rem",
}

var buttonPaddings = map[string]string{
	"small":  "8px 20px",
	"normal": "12px 32px",
	"large":  "16px 40px",
}

var videoAspectPaddings = map[string]string{
	"16:9": "56.25%",
	"4:3":  "75%",
	"1:1":  "100%",
}

var videoMaxWidths = map[string]string{
	"small":  "576px",
	"normal": "768px",
	"full":   "1200px",
}

var dividerWidths = map[string]string{
	"small":  "200px",
	"normal": "600px",
	"full":   "100%",
}

var mapHeights = map[string]string{
	"small":  "250px",
	"medium": "400px",
	"large":  "550px",
}

var socialIconSizes = map[string]string{
	"small":  "1.25rem",
	"medium": "1.5rem",
	"large":  "1.875rem",
}

var socialPillPaddings = map[string]string{
	"small":  "6px 12px",
	"medium": "8px 16px",
	"large":  "10px 20px",
}

// socialPlatformIcons and socialPlatformLabels map well-known platform ids to
// their display form. Unknown platforms fall back to a generic link icon and
// the raw platform name.
var socialPlatformIcons = map[string]string{
	"facebook":  "📘",
	"instagram": "📸",
	"twitter":   "🐦",
	"linkedin":  "💼",
	"youtube":   "▶️",
	"tiktok":    "🎵",
	"email":     "📧",
	"website":   "🌐",
	"whatsapp":  "💬",
	"telegram":  "✈️",
}

var socialPlatformLabels = map[string]string{
	"facebook":  "Facebook",
	"instagram": "Instagram",
	"twitter":   "X / Twitter",
	"linkedin":  "LinkedIn",
	"youtube":   "YouTube",
	"tiktok":    "TikTok",
	"email":     "E-Mail",
	"website":   "Website",
	"whatsapp":  "WhatsApp",
	"telegram":  "Telegram",
}

// lookup returns table[key], falling back to table[def].
func lookup(table map[string]string, key, def string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[def]
}

func renderHero(p model.HeroProps, t model.Theme) string {
	height := lookup(heroHeights, p.Height, "large")
	bgColor := p.BgColor
	if bgColor == "" {
		bgColor = "#0f172a"
	}
	textColor := p.TextColor
	if textColor == "" {
		textColor = "#fff"
	}

	bgImage := ""
	if p.BgImage != "" {
		bgImage = "background-image:url(" + escURL(p.BgImage) + ");background-size:cover;background-position:center;"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<section style="min-height:%s;display:flex;align-items:center;justify-content:center;background-color:%s;%scolor:%s;text-align:center;padding:96px 24px;">`,
		height, esc(bgColor), bgImage, esc(textColor))
	sb.WriteString("\n  <div style=\"max-width:800px;\">\n")
	fmt.Fprintf(&sb, `    <h1 style="font-size:clamp(2rem,5vw,4rem);font-weight:700;font-family:%s;line-height:1.1;">%s</h1>`,
		esc(t.HeadingFont), esc(p.Title))
	sb.WriteString("\n")
	if p.Subtitle != "" {
		fmt.Fprintf(&sb, "    <p style=\"margin-top:24px;font-size:1.25rem;opacity:0.9;\">%s</p>\n", esc(p.Subtitle))
	}
	if p.CTAText != "" && p.CTALink != "" {
		fmt.Fprintf(&sb, `    <div style="margin-top:40px;"><a href="%s" class="btn" style="background:%s;color:#fff;">%s</a></div>`,
			escURL(p.CTALink), esc(t.PrimaryColor), esc(p.CTAText))
		sb.WriteString("\n")
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderTextBlock(p model.TextBlockProps, t model.Theme) string {
	align := p.Align
	if align == "" {
		align = "left"
	}
	maxWidth := lookup(textSizes, p.Size, "normal")

	var sb strings.Builder
	fmt.Fprintf(&sb, "<section class=\"section\" style=\"text-align:%s;\">\n", esc(align))
	fmt.Fprintf(&sb, "  <div class=\"container\" style=\"max-width:%s;\">\n", maxWidth)
	if p.Heading != "" {
		fmt.Fprintf(&sb, "    <h2 style=\"font-size:2rem;font-weight:700;margin-bottom:16px;font-family:%s;\">%s</h2>\n",
			esc(t.HeadingFont), esc(p.Heading))
	}
	fmt.Fprintf(&sb, "    <div style=\"font-size:1rem;line-height:1.8;opacity:0.8;\">%s</div>\n", richText(p.Content))
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderImageBlock(p model.ImageBlockProps, t model.Theme) string {
	align := p.Align
	if align == "" {
		align = "center"
	}
	maxWidth := lookup(imageWidths, p.Width, "normal")
	radius := "0"
	if p.Rounded {
		radius = t.BorderRadius
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<section class=\"section\" style=\"text-align:%s;\">\n", esc(align))
	fmt.Fprintf(&sb, "  <div class=\"container\" style=\"max-width:%s;\">\n", maxWidth)
	if p.Link != "" {
		fmt.Fprintf(&sb, "    <a href=\"%s\">\n", escURL(p.Link))
	}
	fmt.Fprintf(&sb, "    <img src=\"%s\" alt=\"%s\" style=\"border-radius:%s;width:100%%;\">\n",
		escURL(p.Src), esc(p.Alt), esc(radius))
	if p.Link != "" {
		sb.WriteString("    </a>\n")
	}
	if p.Caption != "" {
		fmt.Fprintf(&sb, "    <p style=\"margin-top:8px;font-size:0.875rem;opacity:0.6;\">%s</p>\n", esc(p.Caption))
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderGallery(p model.GalleryProps, t model.Theme) string {
	cols := "3"
	if p.Columns == "2" {
		cols = "2"
	}

	imgs := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		imgs = append(imgs, fmt.Sprintf(`<img src="%s" alt="%s" style="border-radius:%s;width:100%%;aspect-ratio:1;object-fit:cover;">`,
			escURL(img.Src), esc(img.Alt), esc(t.BorderRadius)))
	}

	return "<section class=\"section\">\n  <div class=\"container\">\n    <div class=\"grid-" + cols + "\">\n      " +
		strings.Join(imgs, "\n      ") +
		"\n    </div>\n  </div>\n</section>"
}

func renderCTAButton(p model.CTAButtonProps, t model.Theme) string {
	link := p.Link
	if link == "" {
		link = "#"
	}
	text := p.Text
	if text == "" {
		text = "Button"
	}

	var background, color, border string
	switch p.Variant {
	case "outline":
		background = "transparent"
		color = t.PrimaryColor
		border = "border:2px solid " + t.PrimaryColor + ";"
	case "secondary":
		background = t.SecondaryColor
		color = "#fff"
	default:
		background = t.PrimaryColor
		color = "#fff"
	}

	return fmt.Sprintf(`<section style="padding:48px 24px;text-align:center;">
  <a href="%s" class="btn" style="background:%s;color:%s;%sfont-size:%s;padding:%s;">%s</a>
</section>`,
		escURL(link), esc(background), esc(color), esc(border),
		lookup(buttonFontSizes, p.Size, "normal"), lookup(buttonPaddings, p.Size, "normal"), esc(text))
}

func renderContactForm(p model.ContactFormProps, t model.Theme) string {
	bgColor := p.BgColor
	if bgColor == "" {
		bgColor = "transparent"
	}
	buttonText := p.ButtonText
	if buttonText == "" {
		buttonText = "Senden"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<section class=\"section\" style=\"background:%s;\">\n", esc(bgColor))
	sb.WriteString("  <div class=\"container\" style=\"max-width:640px;\">\n")
	if p.Heading != "" {
		fmt.Fprintf(&sb, "    <h2 style=\"font-size:1.75rem;font-weight:700;text-align:center;margin-bottom:8px;font-family:%s;\">%s</h2>\n",
			esc(t.HeadingFont), esc(p.Heading))
	}
	if p.Subtitle != "" {
		fmt.Fprintf(&sb, "    <p style=\"text-align:center;opacity:0.7;margin-bottom:32px;\">%s</p>\n", esc(p.Subtitle))
	}
	sb.WriteString("    <form style=\"display:flex;flex-direction:column;gap:16px;\">\n")
	fmt.Fprintf(&sb, "      <input type=\"text\" placeholder=\"Name\" style=\"padding:12px 16px;border:1px solid #d1d5db;border-radius:%s;font-size:1rem;\">\n", esc(t.BorderRadius))
	fmt.Fprintf(&sb, "      <input type=\"email\" placeholder=\"E-Mail\" style=\"padding:12px 16px;border:1px solid #d1d5db;border-radius:%s;font-size:1rem;\">\n", esc(t.BorderRadius))
	fmt.Fprintf(&sb, "      <textarea rows=\"4\" placeholder=\"Nachricht\" style=\"padding:12px 16px;border:1px solid #d1d5db;border-radius:%s;font-size:1rem;resize:vertical;\"></textarea>\n", esc(t.BorderRadius))
	fmt.Fprintf(&sb, "      <button type=\"submit\" class=\"btn\" style=\"background:%s;color:#fff;border:none;cursor:pointer;font-size:1rem;\">%s</button>\n",
		esc(t.PrimaryColor), esc(buttonText))
	sb.WriteString("    </form>\n  </div>\n</section>")
	return sb.String()
}

func renderTestimonials(p model.TestimonialsProps, t model.Theme) string {
	colsClass := "grid-3"
	if p.Columns == "2" {
		colsClass = "grid-2"
	}

	items := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		var itemStyle string
		if p.Style == "cards" {
			itemStyle = "border:1px solid #e5e7eb;border-radius:16px;background:#fff;"
		} else {
			itemStyle = "border-left:4px solid " + esc(t.PrimaryColor) + ";padding-left:24px;"
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "<div style=\"padding:24px;%s\">\n", itemStyle)
		fmt.Fprintf(&sb, "        <p style=\"margin-bottom:16px;opacity:0.8;\">&ldquo;%s&rdquo;</p>\n", esc(item.Text))
		sb.WriteString("        <div style=\"display:flex;align-items:center;gap:12px;\">\n")
		if item.Avatar != "" {
			fmt.Fprintf(&sb, "          <img src=\"%s\" alt=\"%s\" style=\"width:40px;height:40px;border-radius:50%%;object-fit:cover;\">\n",
				escURL(item.Avatar), esc(item.Name))
		}
		sb.WriteString("          <div>\n")
		fmt.Fprintf(&sb, "            <p style=\"font-weight:600;font-size:0.875rem;\">%s</p>\n", esc(item.Name))
		if item.Role != "" {
			fmt.Fprintf(&sb, "            <p style=\"font-size:0.75rem;opacity:0.6;\">%s</p>\n", esc(item.Role))
		}
		sb.WriteString("          </div>\n        </div>\n      </div>")
		items = append(items, sb.String())
	}

	return "<section class=\"section\">\n  <div class=\"container\">\n    <div class=\"" + colsClass + "\">\n      " +
		strings.Join(items, "\n      ") +
		"\n    </div>\n  </div>\n</section>"
}

func renderFAQ(p model.FAQProps, t model.Theme) string {
	var sb strings.Builder
	sb.WriteString("<section class=\"section\">\n  <div class=\"container\" style=\"max-width:768px;\">\n")
	if p.Heading != "" {
		fmt.Fprintf(&sb, "    <h2 style=\"font-size:2rem;font-weight:700;text-align:center;margin-bottom:40px;font-family:%s;\">%s</h2>\n",
			esc(t.HeadingFont), esc(p.Heading))
	}
	for _, item := range p.Items {
		fmt.Fprintf(&sb, "    <details>\n      <summary>%s</summary>\n      <div class=\"answer\">%s</div>\n    </details>\n",
			esc(item.Question), esc(item.Answer))
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderVideo(p model.VideoProps) string {
	maxWidth := lookup(videoMaxWidths, p.MaxWidth, "normal")
	padding := lookup(videoAspectPaddings, p.AspectRatio, "16:9")

	var sb strings.Builder
	sb.WriteString("<section class=\"section\">\n")
	fmt.Fprintf(&sb, "  <div class=\"container\" style=\"max-width:%s;\">\n", maxWidth)

	if embedURL, ok := ResolveEmbedURL(p.URL); ok {
		fmt.Fprintf(&sb, `    <div style="position:relative;padding-bottom:%s;height:0;overflow:hidden;border-radius:12px;"><iframe src="%s" style="position:absolute;top:0;left:0;width:100%%;height:100%%;border:none;" allowfullscreen></iframe></div>`,
			padding, embedURL)
		sb.WriteString("\n")
	} else {
		sb.WriteString("    <div style=\"background:#f3f4f6;border-radius:12px;padding:48px;text-align:center;color:#9ca3af;\">Bitte eine gültige Video-URL eingeben</div>\n")
	}
	if p.Caption != "" {
		fmt.Fprintf(&sb, "    <p style=\"margin-top:12px;text-align:center;font-size:0.875rem;opacity:0.6;\">%s</p>\n", esc(p.Caption))
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderNavigation(p model.NavigationProps, t model.Theme) string {
	bgColor := p.BgColor
	if bgColor == "" {
		bgColor = "#ffffff"
	}
	textColor := p.TextColor
	if textColor == "" {
		textColor = "#0f172a"
	}
	position := "relative"
	if p.IsSticky() {
		position = "sticky;top:0"
	}

	var logo string
	if strings.HasPrefix(p.Logo, "http") || strings.HasPrefix(p.Logo, "data:") {
		logo = fmt.Sprintf(`<img src="%s" alt="Logo" style="height:32px;object-fit:contain;">`, escURL(p.Logo))
	} else {
		name := p.Logo
		if name == "" {
			name = "Logo"
		}
		logo = fmt.Sprintf(`<span style="font-size:1.125rem;font-weight:700;font-family:%s;">%s</span>`, esc(t.HeadingFont), esc(name))
	}

	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, fmt.Sprintf(`<a href="%s" style="color:%s;font-size:0.875rem;font-weight:500;text-decoration:none;">%s</a>`,
			escURL(l.Href), esc(textColor), esc(l.Label)))
	}

	layout := "justify-content:space-between"
	if p.Style == "centered" {
		layout = "flex-direction:column;gap:16px"
	}

	return fmt.Sprintf(`<header style="position:%s;z-index:50;background-color:%s;color:%s;">
  <div style="max-width:1152px;margin:0 auto;padding:16px 24px;display:flex;align-items:center;%s;">
    %s
    <nav style="display:flex;align-items:center;gap:24px;flex-wrap:wrap;">
      %s
    </nav>
  </div>
</header>`, position, esc(bgColor), esc(textColor), layout, logo, strings.Join(links, "\n      "))
}

func renderFooter(p model.FooterProps, t model.Theme, ctx Context) string {
	bgColor := p.BgColor
	if bgColor == "" {
		bgColor = "#0f172a"
	}
	textColor := p.TextColor
	if textColor == "" {
		textColor = "#e2e8f0"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<footer style=\"background-color:%s;color:%s;padding:48px 24px;\">\n", esc(bgColor), esc(textColor))
	sb.WriteString("  <div style=\"max-width:1152px;margin:0 auto;\">\n")
	sb.WriteString("    <div style=\"display:flex;flex-wrap:wrap;align-items:center;justify-content:space-between;gap:24px;\">\n")
	sb.WriteString("      <div>\n")
	fmt.Fprintf(&sb, "        <p style=\"font-size:1.125rem;font-weight:700;font-family:%s;\">%s</p>\n", esc(t.HeadingFont), esc(p.CompanyName))
	if p.Tagline != "" {
		fmt.Fprintf(&sb, "        <p style=\"font-size:0.875rem;margin-top:4px;opacity:0.6;\">%s</p>\n", esc(p.Tagline))
	}
	sb.WriteString("      </div>\n")
	if len(p.Links) > 0 {
		sb.WriteString("      <nav style=\"display:flex;flex-wrap:wrap;gap:24px;\">\n")
		for _, l := range p.Links {
			fmt.Fprintf(&sb, "        <a href=\"%s\" style=\"color:%s;font-size:0.875rem;text-decoration:none;\">%s</a>\n",
				escURL(l.Href), esc(textColor), esc(l.Label))
		}
		sb.WriteString("      </nav>\n")
	}
	sb.WriteString("    </div>\n")
	if p.CopyrightShown() {
		fmt.Fprintf(&sb, "    <div style=\"margin-top:32px;padding-top:24px;border-top:1px solid rgba(255,255,255,0.1);font-size:0.75rem;opacity:0.5;\">© %d %s. Alle Rechte vorbehalten.</div>\n",
			ctx.Year, esc(p.CompanyName))
	}
	sb.WriteString("  </div>\n</footer>")
	return sb.String()
}

func renderSocialLinks(p model.SocialLinksProps) string {
	align := p.Align
	if align == "" {
		align = "center"
	}

	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		icon, ok := socialPlatformIcons[l.Platform]
		if !ok {
			icon = "🔗"
		}
		label, ok := socialPlatformLabels[l.Platform]
		if !ok {
			label = l.Platform
		}
		href := l.URL
		target := ` target="_blank" rel="noopener noreferrer"`
		if l.Platform == "email" {
			href = "mailto:" + l.URL
			target = ""
		}

		if p.Style == "pills" {
			links = append(links, fmt.Sprintf(`<a href="%s"%s style="display:inline-flex;align-items:center;gap:8px;border-radius:9999px;border:1px solid #e5e7eb;padding:%s;font-weight:500;text-decoration:none;color:inherit;"><span>%s</span><span>%s</span></a>`,
				escURL(href), target, lookup(socialPillPaddings, p.Size, "medium"), icon, esc(label)))
		} else {
			links = append(links, fmt.Sprintf(`<a href="%s"%s title="%s" style="font-size:%s;text-decoration:none;">%s</a>`,
				escURL(href), target, esc(label), lookup(socialIconSizes, p.Size, "medium"), icon))
		}
	}

	return fmt.Sprintf(`<section style="padding:32px 24px;">
  <div style="max-width:896px;margin:0 auto;display:flex;flex-wrap:wrap;gap:16px;justify-content:%s;">
    %s
  </div>
</section>`, esc(align), strings.Join(links, "\n    "))
}

func renderOpeningHours(p model.OpeningHoursProps, t model.Theme) string {
	var sb strings.Builder
	sb.WriteString("<section class=\"section\">\n  <div class=\"container\" style=\"max-width:512px;\">\n")
	if p.Heading != "" {
		fmt.Fprintf(&sb, "    <h2 style=\"font-size:1.5rem;font-weight:700;text-align:center;margin-bottom:32px;font-family:%s;\">%s</h2>\n",
			esc(t.HeadingFont), esc(p.Heading))
	}

	if p.Style == "cards" {
		sb.WriteString("    <div class=\"grid-3\" style=\"gap:12px;\">\n")
		for _, d := range p.Days {
			closed := strings.EqualFold(d.Hours, "geschlossen")
			hoursStyle := ""
			if closed {
				hoursStyle = "opacity:0.4;"
			}
			fmt.Fprintf(&sb, "      <div style=\"border:1px solid #e5e7eb;border-radius:12px;padding:16px;text-align:center;\">\n")
			fmt.Fprintf(&sb, "        <p style=\"font-size:0.75rem;font-weight:500;text-transform:uppercase;letter-spacing:0.05em;opacity:0.6;\">%s</p>\n", esc(d.Day))
			fmt.Fprintf(&sb, "        <p style=\"margin-top:4px;font-size:0.875rem;font-weight:600;%s\">%s</p>\n", hoursStyle, esc(d.Hours))
			sb.WriteString("      </div>\n")
		}
		sb.WriteString("    </div>\n")
	} else {
		for _, d := range p.Days {
			closed := strings.EqualFold(d.Hours, "geschlossen")
			hoursStyle := ""
			if closed {
				hoursStyle = " style=\"opacity:0.5;\""
			}
			fmt.Fprintf(&sb, "    <div style=\"display:flex;justify-content:space-between;align-items:center;padding:12px 16px;border-radius:%s;\">\n", esc(t.BorderRadius))
			fmt.Fprintf(&sb, "      <span>%s</span>\n      <span%s>%s</span>\n    </div>\n", esc(d.Day), hoursStyle, esc(d.Hours))
		}
	}

	if p.Note != "" {
		fmt.Fprintf(&sb, "    <p style=\"margin-top:24px;text-align:center;font-size:0.875rem;opacity:0.6;\">%s</p>\n", esc(p.Note))
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderGoogleMap(p model.GoogleMapProps) string {
	height := lookup(mapHeights, p.Height, "medium")

	if p.Address == "" {
		return fmt.Sprintf(`<section style="padding:48px 24px;">
  <div style="max-width:896px;margin:0 auto;height:%s;border-radius:12px;background:#f3f4f6;display:flex;align-items:center;justify-content:center;color:#9ca3af;">Bitte eine Adresse eingeben</div>
</section>`, height)
	}

	radius := "0"
	if p.IsRounded() {
		radius = "16px"
	}

	var sb strings.Builder
	sb.WriteString("<section style=\"padding:48px 24px;\">\n  <div style=\"max-width:896px;margin:0 auto;\">\n")
	fmt.Fprintf(&sb, "    <div style=\"height:%s;overflow:hidden;border-radius:%s;\">\n", height, radius)
	// The keyless maps embed works without an API key, unlike the embed/v1 API.
	fmt.Fprintf(&sb, `      <iframe src="https://www.google.com/maps?q=%s&output=embed" width="100%%" height="100%%" style="border:0;" allowfullscreen loading="lazy" referrerpolicy="no-referrer-when-downgrade" title="Google Maps"></iframe>`,
		queryEscape(p.Address))
	sb.WriteString("\n    </div>\n")
	if p.Caption != "" {
		fmt.Fprintf(&sb, "    <p style=\"margin-top:12px;text-align:center;font-size:0.875rem;opacity:0.6;\">%s</p>\n", esc(p.Caption))
	}
	sb.WriteString("  </div>\n</section>")
	return sb.String()
}

func renderSpacer(p model.SpacerProps) string {
	height := p.Height
	if height <= 0 {
		height = 64
	}
	return fmt.Sprintf(`<div style="height:%dpx;"></div>`, height)
}

func renderDivider(p model.DividerProps) string {
	thickness := p.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	style := p.Style
	switch style {
	case "dashed", "dotted", "solid":
	default:
		style = "solid"
	}
	color := p.Color
	if color == "" {
		color = "#e5e7eb"
	}
	return fmt.Sprintf(`<hr style="border:none;border-top:%dpx %s %s;max-width:%s;margin:32px auto;">`,
		thickness, style, esc(color), lookup(dividerWidths, p.Width, "normal"))
}
