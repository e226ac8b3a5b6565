package seo

import (
	"strings"
	"testing"
)

func issuesFor(issues []Issue, field string, level Level) []Issue {
	var out []Issue
	for _, is := range issues {
		if is.Field == field && is.Level == level {
			out = append(out, is)
		}
	}
	return out
}

func TestEvaluateMissingTitle(t *testing.T) {
	issues := Evaluate(Extract("<html><head></head></html>"))

	critical := issuesFor(issues, "title", LevelCritical)
	if len(critical) != 1 {
		t.Fatalf("got %d critical title issues, want 1", len(critical))
	}
	if critical[0].Message != "Missing <title> tag." {
		t.Errorf("message = %q", critical[0].Message)
	}
	if got := issuesFor(issues, "title", LevelSuccess); len(got) != 0 {
		t.Errorf("got %d success title issues, want 0", len(got))
	}
	if got := issuesFor(issues, "title", LevelWarning); len(got) != 0 {
		t.Errorf("got %d title warnings for a missing title, want 0", len(got))
	}
}

func TestEvaluateTitleLength(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		wantWarning string
	}{
		{"short", "Short", "Title is too short (< 10 chars). Good titles are descriptive."},
		{"nine", strings.Repeat("a", 9), "Title is too short (< 10 chars). Good titles are descriptive."},
		{"ten", strings.Repeat("a", 10), ""},
		{"sixty", strings.Repeat("a", 60), ""},
		{"long", strings.Repeat("a", 61), "Title is too long (61 chars). Google typically truncates after 60 chars."},
		{"multibyte counts characters", strings.Repeat("é", 60), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Evaluate(MetaTags{Title: ptr(tt.title)})
			warnings := issuesFor(issues, "title", LevelWarning)
			if tt.wantWarning == "" {
				if len(warnings) != 0 {
					t.Errorf("got warnings %v, want none", warnings)
				}
			} else {
				if len(warnings) != 1 {
					t.Fatalf("got %d warnings, want 1", len(warnings))
				}
				if warnings[0].Message != tt.wantWarning {
					t.Errorf("message = %q, want %q", warnings[0].Message, tt.wantWarning)
				}
			}
			if got := issuesFor(issues, "title", LevelSuccess); len(got) != 1 {
				t.Errorf("got %d success title issues, want 1", len(got))
			}
		})
	}
}

func TestEvaluateDescriptionLength(t *testing.T) {
	tests := []struct {
		length      int
		wantWarning string
	}{
		{49, "Meta description is too short. Aim for 150-160 chars."},
		{50, ""},
		{160, ""},
		{161, "Meta description is long (161 chars). It may be truncated."},
	}
	for _, tt := range tests {
		issues := Evaluate(MetaTags{Description: ptr(strings.Repeat("d", tt.length))})
		warnings := issuesFor(issues, "description", LevelWarning)
		switch {
		case tt.wantWarning == "" && len(warnings) != 0:
			t.Errorf("length %d: got warnings %v, want none", tt.length, warnings)
		case tt.wantWarning != "" && (len(warnings) != 1 || warnings[0].Message != tt.wantWarning):
			t.Errorf("length %d: got %v, want %q", tt.length, warnings, tt.wantWarning)
		}
		if got := issuesFor(issues, "description", LevelSuccess); len(got) != 1 {
			t.Errorf("length %d: got %d success issues, want 1", tt.length, len(got))
		}
		if got := issuesFor(issues, "description", LevelCritical); len(got) != 0 {
			t.Errorf("length %d: got critical issue for a present description", tt.length)
		}
	}
}

func TestEvaluateShortPage(t *testing.T) {
	issues := Evaluate(Extract("<html><head><title>Short</title></head><body></body></html>"))

	want := []struct {
		level Level
		field string
	}{
		{LevelWarning, "title"},
		{LevelSuccess, "title"},
		{LevelCritical, "description"},
		{LevelWarning, "ogImage"},
		{LevelInfo, "ogTitle"},
		{LevelInfo, "ogDescription"},
		{LevelInfo, "twitterCard"},
		{LevelWarning, "canonical"},
	}
	if len(issues) != len(want) {
		t.Fatalf("got %d issues, want %d: %v", len(issues), len(want), issues)
	}
	for i, w := range want {
		if issues[i].Level != w.level || issues[i].Field != w.field {
			t.Errorf("issue[%d] = %s/%s, want %s/%s", i, issues[i].Level, issues[i].Field, w.level, w.field)
		}
	}
}

func TestEvaluateFullPageOnlySuccess(t *testing.T) {
	issues := Evaluate(Extract(fullPage()))
	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3: %v", len(issues), issues)
	}
	for _, is := range issues {
		if is.Level != LevelSuccess {
			t.Errorf("unexpected %s issue: %s", is.Level, is.Message)
		}
	}
}

func TestSortIssuesIsStable(t *testing.T) {
	issues := []Issue{
		{Level: LevelSuccess, Message: "s1"},
		{Level: LevelInfo, Message: "i1"},
		{Level: LevelWarning, Message: "w1"},
		{Level: LevelCritical, Message: "c1"},
		{Level: LevelWarning, Message: "w2"},
		{Level: LevelSuccess, Message: "s2"},
		{Level: LevelCritical, Message: "c2"},
	}
	sorted := SortIssues(issues)

	want := []string{"c1", "c2", "w1", "w2", "i1", "s1", "s2"}
	for i, msg := range want {
		if sorted[i].Message != msg {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Message, msg)
		}
	}
	if issues[0].Message != "s1" {
		t.Error("SortIssues must not reorder its input")
	}
}

func TestCountLevels(t *testing.T) {
	counts := CountLevels(Evaluate(Extract("<title>Short</title>")))
	if counts[LevelCritical] != 1 || counts[LevelWarning] != 3 || counts[LevelInfo] != 3 || counts[LevelSuccess] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
