package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/seolens/history"
	"github.com/eringen/seolens/seo"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func ptr(s string) *string { return &s }

func TestHomeRendersFormAndRecent(t *testing.T) {
	out := render(t, Home(HomeData{
		Page:  Page{Title: "SEO Lens", Active: "home"},
		URL:   "example.com",
		Error: "Please enter a valid URL",
		Recent: []history.Item{
			{ID: 1, URL: "https://a.example/?q=1&x=2", Title: ptr("A <page>")},
		},
	}))

	for _, want := range []string{
		`action="/report"`,
		`value="example.com"`,
		`Please enter a valid URL`,
		`/report?url=https%3A%2F%2Fa.example%2F%3Fq%3D1%26x%3D2`,
		`A &lt;page&gt;`,
		`<a href="/" class="active">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "A <page>") {
		t.Error("title should be escaped")
	}
}

func TestHomeWithoutRecent(t *testing.T) {
	out := render(t, Home(HomeData{}))
	if strings.Contains(out, "Recent analyses") {
		t.Error("recent section should be hidden when empty")
	}
	if !strings.Contains(out, "<title>SEO Lens</title>") {
		t.Error("default title missing")
	}
}

func TestReportShowsSortedIssuesAndPreviews(t *testing.T) {
	html := `<html><head><title>Hi</title>
<meta property="og:image" content="https://cdn.example/og.png">
<meta name="generator" content="<script>">
</head></html>`
	d := NewReportData(Page{Title: "Report"}, "https://www.example.com/post", seo.Analyze(html))
	out := render(t, Report(d))

	crit := strings.Index(out, "Missing meta description.")
	warn := strings.Index(out, "Title is too short")
	if crit < 0 || warn < 0 {
		t.Fatalf("issues missing from output")
	}
	if crit > warn {
		t.Error("critical issues should render before warnings")
	}
	for _, want := range []string{
		"Based on",
		"WWW.EXAMPLE.COM",
		`src="https://cdn.example/og.png"`,
		"No description provided for this page.",
		"Improvement",
		"&lt;script&gt;",
		"Field: description",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `content="<script>"`) || strings.Contains(out, "<td class=\"mono\"><script>") {
		t.Error("raw meta content should be escaped")
	}
}

func TestReportPerfect(t *testing.T) {
	meta := seo.MetaTags{
		Title:         ptr(strings.Repeat("t", 50)),
		Description:   ptr(strings.Repeat("d", 150)),
		Canonical:     ptr("https://example.com/"),
		OGTitle:       ptr("Example"),
		OGDescription: ptr("Example"),
		OGImage:       ptr("https://example.com/og.png"),
		TwitterCard:   ptr("summary"),
	}
	out := render(t, Report(NewReportData(Page{}, "https://example.com/", seo.Audit(meta))))
	if !strings.Contains(out, "Perfect Score!") {
		t.Error("perfect state missing")
	}
	if !strings.Contains(out, "No raw meta tags captured") {
		t.Error("empty raw table message missing")
	}
}

func TestReportUnsafeImageURL(t *testing.T) {
	meta := seo.MetaTags{OGImage: ptr("javascript:alert(1)")}
	out := render(t, Report(NewReportData(Page{}, "https://example.com/", seo.Audit(meta))))
	if strings.Contains(out, `src="javascript:`) {
		t.Error("unsafe image URL should be sanitized")
	}
}

func TestNewReportDataSortsRaw(t *testing.T) {
	r := seo.Report{Meta: seo.MetaTags{Raw: map[string]string{"b": "2", "a": "1", "c": "3"}}}
	d := NewReportData(Page{}, "https://example.com", r)
	var names []string
	for _, tag := range d.Raw {
		names = append(names, tag.Name)
	}
	if got := strings.Join(names, ","); got != "a,b,c" {
		t.Errorf("raw order = %s, want a,b,c", got)
	}
}

func TestHistory(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	out := render(t, History(HistoryData{
		Page: Page{CSRF: "tok123", Flashes: []string{"History cleared"}},
		Items: []history.Item{
			{ID: 2, URL: "https://b.example", CreatedAt: when},
			{ID: 1, URL: "https://a.example", Title: ptr("A"), CreatedAt: when},
		},
	}))
	for _, want := range []string{
		`name="_csrf" value="tok123"`,
		"History cleared",
		"No title",
		"Mar 1, 2024 12:30",
		"https://b.example",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Index(out, "https://b.example") > strings.Index(out, "https://a.example") {
		t.Error("items should keep the given order")
	}
}

func TestHistoryEmpty(t *testing.T) {
	out := render(t, History(HistoryData{}))
	if !strings.Contains(out, "No history yet") {
		t.Error("empty state missing")
	}
	if strings.Contains(out, "/history/clear") {
		t.Error("clear form should be hidden when empty")
	}
}

func TestErrorPages(t *testing.T) {
	if out := render(t, NotFound()); !strings.Contains(out, "404") {
		t.Error("NotFound should mention 404")
	}
	if out := render(t, ServerError()); !strings.Contains(out, "Something went wrong") {
		t.Error("ServerError text missing")
	}
}
