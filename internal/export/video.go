// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import "regexp"

var (
	// youtubeRegex matches watch, embed, shorts and short-link URL shapes and
	// captures the 11-character video id.
	youtubeRegex = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

	// vimeoRegex captures the numeric video id.
	vimeoRegex = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// ResolveEmbedURL rewrites a recognized video URL to its privacy-respecting
// embed form. YouTube links map to the youtube-nocookie host, Vimeo links to
// the player host. The second return value is false for anything else; the
// caller renders a placeholder instead of an iframe.
func ResolveEmbedURL(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	if m := youtubeRegex.FindStringSubmatch(url); m != nil {
		return "https://www.youtube-nocookie.com/embed/" + m[1], true
	}
	if m := vimeoRegex.FindStringSubmatch(url); m != nil {
		return "https://player.vimeo.com/video/" + m[1], true
	}
	return "", false
}
