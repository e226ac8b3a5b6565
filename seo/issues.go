package seo

import (
	"cmp"
	"fmt"
	"slices"
)

// Level is the severity of an Issue.
type Level string

const (
	LevelCritical Level = "critical"
	LevelWarning  Level = "warning"
	LevelInfo     Level = "info"
	LevelSuccess  Level = "success"
)

// Priority orders levels for display: critical first, success last.
func (l Level) Priority() int {
	switch l {
	case LevelCritical:
		return 0
	case LevelWarning:
		return 1
	case LevelInfo:
		return 2
	case LevelSuccess:
		return 3
	}
	return 4
}

// Issue is a single finding produced by Evaluate.
type Issue struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type rule struct {
	field   string
	level   Level
	when    func(MetaTags) bool
	message func(MetaTags) string
}

func text(msg string) func(MetaTags) string {
	return func(MetaTags) string { return msg }
}

// Title and description length thresholds for issues. Suggestions use their
// own, stricter ranges.
const (
	minTitleLen       = 10
	maxTitleLen       = 60
	minDescriptionLen = 50
	maxDescriptionLen = 160
)

// rules are evaluated in order and all of them run; none short-circuits
// another, so a short title is reported both as too short and as present.
var rules = []rule{
	{
		field:   "title",
		level:   LevelCritical,
		when:    func(m MetaTags) bool { return m.Title == nil },
		message: text("Missing <title> tag."),
	},
	{
		field:   "title",
		level:   LevelWarning,
		when:    func(m MetaTags) bool { return m.Title != nil && length(m.Title) < minTitleLen },
		message: text("Title is too short (< 10 chars). Good titles are descriptive."),
	},
	{
		field: "title",
		level: LevelWarning,
		when:  func(m MetaTags) bool { return m.Title != nil && length(m.Title) > maxTitleLen },
		message: func(m MetaTags) string {
			return fmt.Sprintf("Title is too long (%d chars). Google typically truncates after 60 chars.", length(m.Title))
		},
	},
	{
		field:   "title",
		level:   LevelSuccess,
		when:    func(m MetaTags) bool { return m.Title != nil },
		message: text("Title tag is present."),
	},
	{
		field:   "description",
		level:   LevelCritical,
		when:    func(m MetaTags) bool { return m.Description == nil },
		message: text("Missing meta description."),
	},
	{
		field:   "description",
		level:   LevelWarning,
		when:    func(m MetaTags) bool { return m.Description != nil && length(m.Description) < minDescriptionLen },
		message: text("Meta description is too short. Aim for 150-160 chars."),
	},
	{
		field: "description",
		level: LevelWarning,
		when:  func(m MetaTags) bool { return m.Description != nil && length(m.Description) > maxDescriptionLen },
		message: func(m MetaTags) string {
			return fmt.Sprintf("Meta description is long (%d chars). It may be truncated.", length(m.Description))
		},
	},
	{
		field:   "description",
		level:   LevelSuccess,
		when:    func(m MetaTags) bool { return m.Description != nil },
		message: text("Meta description is present."),
	},
	{
		field:   "ogImage",
		level:   LevelWarning,
		when:    func(m MetaTags) bool { return m.OGImage == nil },
		message: text("Missing Open Graph Image (og:image). Link previews will lack a visual."),
	},
	{
		field:   "ogImage",
		level:   LevelSuccess,
		when:    func(m MetaTags) bool { return m.OGImage != nil },
		message: text("Open Graph image is present."),
	},
	{
		field:   "ogTitle",
		level:   LevelInfo,
		when:    func(m MetaTags) bool { return m.OGTitle == nil },
		message: text("Missing og:title. Facebook will try to use the page title."),
	},
	{
		field:   "ogDescription",
		level:   LevelInfo,
		when:    func(m MetaTags) bool { return m.OGDescription == nil },
		message: text("Missing og:description."),
	},
	{
		field:   "twitterCard",
		level:   LevelInfo,
		when:    func(m MetaTags) bool { return m.TwitterCard == nil },
		message: text(`Missing twitter:card meta tag. Defaults to "summary".`),
	},
	{
		field:   "canonical",
		level:   LevelWarning,
		when:    func(m MetaTags) bool { return m.Canonical == nil },
		message: text("Missing canonical link tag. This helps prevent duplicate content issues."),
	},
}

// Evaluate runs every rule against meta and returns the issues in rule order.
func Evaluate(meta MetaTags) []Issue {
	issues := make([]Issue, 0, len(rules))
	for _, r := range rules {
		if !r.when(meta) {
			continue
		}
		issues = append(issues, Issue{
			Level:   r.level,
			Message: r.message(meta),
			Field:   r.field,
		})
	}
	return issues
}

// SortIssues returns a copy of issues ordered by level priority. Issues of
// the same level keep their relative order.
func SortIssues(issues []Issue) []Issue {
	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, func(a, b Issue) int {
		return cmp.Compare(a.Level.Priority(), b.Level.Priority())
	})
	return sorted
}

// CountLevels tallies issues per level.
func CountLevels(issues []Issue) map[Level]int {
	counts := make(map[Level]int, 4)
	for _, is := range issues {
		counts[is.Level]++
	}
	return counts
}
