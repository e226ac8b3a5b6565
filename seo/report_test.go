package seo

import (
	"strings"
	"testing"
)

func fullPage() string {
	return `<!DOCTYPE html><html><head>
<title>` + strings.Repeat("t", 50) + `</title>
<meta name="description" content="` + strings.Repeat("d", 150) + `">
<link rel="canonical" href="https://example.com/">
<meta property="og:title" content="Example title">
<meta property="og:description" content="Example description">
<meta property="og:image" content="https://example.com/og.png">
<meta name="twitter:card" content="summary_large_image">
</head><body><h1>Hello</h1></body></html>`
}

func TestAnalyzeShortPage(t *testing.T) {
	r := Analyze("<html><head><title>Short</title></head><body></body></html>")
	if r.Score != 65 {
		t.Errorf("Score = %d, want 65", r.Score)
	}
	if r.Rating != RatingNeedsImprovement {
		t.Errorf("Rating = %q, want %q", r.Rating, RatingNeedsImprovement)
	}
	if len(r.Issues) != 8 {
		t.Errorf("got %d issues, want 8", len(r.Issues))
	}
	if r.Preview != (Preview{Google: false, Facebook: true, Twitter: true}) {
		t.Errorf("Preview = %+v", r.Preview)
	}
}

func TestAnalyzeFullPage(t *testing.T) {
	r := Analyze(fullPage())
	if r.Score != 100 {
		t.Errorf("Score = %d, want 100", r.Score)
	}
	if r.Rating != RatingExcellent {
		t.Errorf("Rating = %q, want %q", r.Rating, RatingExcellent)
	}
	if !r.Advice.Perfect || len(r.Advice.Suggestions) != 0 {
		t.Errorf("Advice = %+v, want perfect", r.Advice)
	}
	for _, is := range r.Issues {
		if is.Level != LevelSuccess {
			t.Errorf("unexpected %s issue %q", is.Level, is.Message)
		}
	}
	if r.Preview != (Preview{Google: true, Facebook: true, Twitter: true}) {
		t.Errorf("Preview = %+v", r.Preview)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	r := Analyze("")
	// title, description critical; og:image, canonical warnings
	if r.Score != 100-30-10 {
		t.Errorf("Score = %d, want %d", r.Score, 60)
	}
	if r.Preview != (Preview{}) {
		t.Errorf("Preview = %+v, want all false", r.Preview)
	}
}
