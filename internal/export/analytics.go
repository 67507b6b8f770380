// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"github.com/olegiv/osite-go/internal/model"
)

// defaultUmamiScript is used when a self-hosted Umami instance is not
// configured.
const defaultUmamiScript = "https://analytics.umami.is/script.js"

// AnalyticsSnippet returns the tracking script tag(s) for the configured
// provider, parameterized by site id and script URL. A nil settings object,
// the "none" provider, an unknown provider, or a missing site id all yield
// an empty string, which suppresses the <head> injection entirely.
func AnalyticsSnippet(a *model.Analytics) string {
	if !a.Enabled() {
		return ""
	}

	switch a.Provider {
	case model.AnalyticsPlausible:
		return `<script defer data-domain="` + esc(a.SiteID) + `" src="https://plausible.io/js/script.js"></script>`
	case model.AnalyticsUmami:
		src := a.ScriptURL
		if src == "" {
			src = defaultUmamiScript
		}
		return `<script defer src="` + escURL(src) + `" data-website-id="` + esc(a.SiteID) + `"></script>`
	case model.AnalyticsGoogle:
		id := esc(a.SiteID)
		return `<script async src="https://www.googletagmanager.com/gtag/js?id=` + id + `"></script>` + "\n" +
			`<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments)}gtag('js',new Date());gtag('config','` + id + `');</script>`
	default:
		return ""
	}
}
