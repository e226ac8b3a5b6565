package seo

import (
	"net/url"
	"strings"
)

// Preview reports which platforms have enough metadata for a rich preview.
type Preview struct {
	Google   bool `json:"google"`
	Facebook bool `json:"facebook"`
	Twitter  bool `json:"twitter"`
}

// PreviewFlags derives Preview from meta.
func PreviewFlags(meta MetaTags) Preview {
	return Preview{
		Google:   meta.Title != nil && meta.Description != nil,
		Facebook: meta.OGTitle != nil || meta.Title != nil,
		Twitter:  meta.TwitterTitle != nil || meta.Title != nil,
	}
}

// Card is the resolved content of one preview mockup.
type Card struct {
	Site        string
	URL         string
	Title       string
	Description string
	Image       string
}

// Previews holds the mockup content for each platform.
type Previews struct {
	Google   Card
	Facebook Card
	Twitter  Card
}

// BuildPreviews resolves the fallback chain each platform applies when a
// tag is missing.
func BuildPreviews(pageURL string, meta MetaTags) Previews {
	host := Hostname(pageURL)
	return Previews{
		Google: Card{
			Site:  firstOf(host, meta.OGSiteName),
			URL:   pageURL,
			Title: firstOf("No Title Found", meta.Title),
			Description: firstOf("No description provided for this page. Google will generate a snippet from the page content.",
				meta.Description),
		},
		Facebook: Card{
			Site:        strings.ToUpper(host),
			URL:         pageURL,
			Title:       firstOf("No Title Available", meta.OGTitle, meta.Title),
			Description: firstOf("No description available", meta.OGDescription, meta.Description),
			Image:       value(meta.OGImage),
		},
		Twitter: Card{
			Site:        host,
			URL:         pageURL,
			Title:       firstOf("No Title", meta.TwitterTitle, meta.OGTitle, meta.Title),
			Description: firstOf("No description", meta.TwitterDescription, meta.OGDescription, meta.Description),
			Image:       firstOf("", meta.TwitterImage, meta.OGImage),
		},
	}
}

// Hostname returns the host of rawURL without port, or rawURL itself when
// it does not parse.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}
