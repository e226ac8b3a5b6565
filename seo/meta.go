// Package seo extracts SEO metadata from HTML documents and audits it
// against a fixed rule set. Nothing in this package performs I/O.
package seo

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MetaTags is the metadata extracted from a single page. Every field except
// Raw is either a trimmed, non-empty string or nil.
type MetaTags struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Canonical   *string `json:"canonical"`
	Robots      *string `json:"robots"`
	Keywords    *string `json:"keywords"`
	Author      *string `json:"author"`

	// Open Graph
	OGTitle       *string `json:"ogTitle"`
	OGDescription *string `json:"ogDescription"`
	OGImage       *string `json:"ogImage"`
	OGURL         *string `json:"ogUrl"`
	OGType        *string `json:"ogType"`
	OGSiteName    *string `json:"ogSiteName"`

	// Twitter
	TwitterCard        *string `json:"twitterCard"`
	TwitterTitle       *string `json:"twitterTitle"`
	TwitterDescription *string `json:"twitterDescription"`
	TwitterImage       *string `json:"twitterImage"`
	TwitterCreator     *string `json:"twitterCreator"`
	TwitterSite        *string `json:"twitterSite"`

	// Raw maps every <meta> identifier (name, else property) to its content.
	Raw map[string]string `json:"raw"`
}

// metaField binds a selector to the MetaTags field it fills. The first
// element matching selector wins, even if it lacks the attribute.
type metaField struct {
	selector string
	attr     string
	dst      func(*MetaTags) **string
}

var metaFields = []metaField{
	{`meta[name="description"]`, "content", func(m *MetaTags) **string { return &m.Description }},
	{`link[rel="canonical"]`, "href", func(m *MetaTags) **string { return &m.Canonical }},
	{`meta[name="robots"]`, "content", func(m *MetaTags) **string { return &m.Robots }},
	{`meta[name="keywords"]`, "content", func(m *MetaTags) **string { return &m.Keywords }},
	{`meta[name="author"]`, "content", func(m *MetaTags) **string { return &m.Author }},

	{`meta[property="og:title"]`, "content", func(m *MetaTags) **string { return &m.OGTitle }},
	{`meta[property="og:description"]`, "content", func(m *MetaTags) **string { return &m.OGDescription }},
	{`meta[property="og:image"]`, "content", func(m *MetaTags) **string { return &m.OGImage }},
	{`meta[property="og:url"]`, "content", func(m *MetaTags) **string { return &m.OGURL }},
	{`meta[property="og:type"]`, "content", func(m *MetaTags) **string { return &m.OGType }},
	{`meta[property="og:site_name"]`, "content", func(m *MetaTags) **string { return &m.OGSiteName }},

	{`meta[name="twitter:card"]`, "content", func(m *MetaTags) **string { return &m.TwitterCard }},
	{`meta[name="twitter:title"]`, "content", func(m *MetaTags) **string { return &m.TwitterTitle }},
	{`meta[name="twitter:description"]`, "content", func(m *MetaTags) **string { return &m.TwitterDescription }},
	{`meta[name="twitter:image"]`, "content", func(m *MetaTags) **string { return &m.TwitterImage }},
	{`meta[name="twitter:creator"]`, "content", func(m *MetaTags) **string { return &m.TwitterCreator }},
	{`meta[name="twitter:site"]`, "content", func(m *MetaTags) **string { return &m.TwitterSite }},
}

// Extract parses an HTML document and returns its metadata. It never fails:
// malformed or partial markup simply leaves fields nil.
func Extract(html string) MetaTags {
	meta := MetaTags{Raw: map[string]string{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	meta.Title = nonEmpty(doc.Find("title").First().Text())
	for _, f := range metaFields {
		if v, ok := doc.Find(f.selector).First().Attr(f.attr); ok {
			*f.dst(&meta) = nonEmpty(v)
		}
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key := s.AttrOr("name", "")
		if key == "" {
			key = s.AttrOr("property", "")
		}
		content := s.AttrOr("content", "")
		if key != "" && content != "" {
			meta.Raw[key] = content
		}
	})

	return meta
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// value dereferences an optional field, returning "" for nil.
func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// length counts characters, not bytes.
func length(s *string) int {
	return utf8.RuneCountInString(value(s))
}

// firstOf returns the first non-nil field, or fallback.
func firstOf(fallback string, fields ...*string) string {
	for _, f := range fields {
		if f != nil {
			return *f
		}
	}
	return fallback
}
