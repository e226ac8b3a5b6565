package seo

import "fmt"

// Impact ranks how much a Suggestion is expected to help.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Suggestion is an actionable improvement derived from MetaTags.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Category    string `json:"category"`
}

// Optimal ranges used by suggestions.
const (
	idealTitleMin       = 30
	idealTitleMax       = 60
	idealDescriptionMin = 120
	idealDescriptionMax = 160
)

// Suggest returns at most one suggestion per group (title, description,
// social, twitter, canonical), in that order.
func Suggest(meta MetaTags) []Suggestion {
	var out []Suggestion

	titleLen := length(meta.Title)
	switch {
	case titleLen == 0:
		out = append(out, Suggestion{
			Title:       "Add a page title",
			Description: "Every page needs a unique, descriptive title tag. Aim for 50-60 characters that clearly describe your page content.",
			Impact:      ImpactHigh,
			Category:    "Title",
		})
	case titleLen < idealTitleMin:
		out = append(out, Suggestion{
			Title:       "Expand your page title",
			Description: fmt.Sprintf("Your title is only %d characters. Add more descriptive keywords to reach the optimal 50-60 character range.", titleLen),
			Impact:      ImpactMedium,
			Category:    "Title",
		})
	case titleLen > idealTitleMax:
		out = append(out, Suggestion{
			Title:       "Shorten your page title",
			Description: fmt.Sprintf("Your title is %d characters. Google typically displays 50-60 characters. Consider trimming to avoid truncation in search results.", titleLen),
			Impact:      ImpactMedium,
			Category:    "Title",
		})
	}

	descLen := length(meta.Description)
	switch {
	case descLen == 0:
		out = append(out, Suggestion{
			Title:       "Add a meta description",
			Description: "Write a compelling 150-160 character description that summarizes your page and encourages clicks from search results.",
			Impact:      ImpactHigh,
			Category:    "Description",
		})
	case descLen < idealDescriptionMin:
		out = append(out, Suggestion{
			Title:       "Expand your meta description",
			Description: fmt.Sprintf("Your description is %d characters. Add more detail to reach 150-160 characters for maximum visibility in search results.", descLen),
			Impact:      ImpactMedium,
			Category:    "Description",
		})
	case descLen > idealDescriptionMax:
		out = append(out, Suggestion{
			Title:       "Trim your meta description",
			Description: fmt.Sprintf("Your description is %d characters. Google typically shows 150-160 characters. The excess may be cut off.", descLen),
			Impact:      ImpactLow,
			Category:    "Description",
		})
	}

	switch {
	case meta.OGTitle == nil && meta.OGDescription == nil:
		out = append(out, Suggestion{
			Title:       "Add Open Graph tags for social sharing",
			Description: "Add og:title, og:description, and og:image tags so your content looks great when shared on Facebook, LinkedIn, and other platforms.",
			Impact:      ImpactHigh,
			Category:    "Social",
		})
	case meta.OGImage == nil:
		out = append(out, Suggestion{
			Title:       "Add an Open Graph image",
			Description: "Pages with images get significantly more engagement when shared. Add a 1200x630px image using the og:image tag.",
			Impact:      ImpactHigh,
			Category:    "Social",
		})
	}

	if meta.TwitterCard == nil {
		out = append(out, Suggestion{
			Title:       "Add Twitter Card tags",
			Description: "Add twitter:card, twitter:title, and twitter:image tags for rich previews when your content is shared on Twitter/X.",
			Impact:      ImpactMedium,
			Category:    "Social",
		})
	}

	if meta.Canonical == nil {
		out = append(out, Suggestion{
			Title:       "Add a canonical URL",
			Description: "A canonical tag helps prevent duplicate content issues by telling search engines which version of a page is the primary one.",
			Impact:      ImpactMedium,
			Category:    "Technical",
		})
	}

	return out
}

// PotentialGain estimates how many points applying the suggestions could
// add. It is advisory and never feeds back into Score.
func PotentialGain(suggestions []Suggestion) int {
	gain := 0
	for _, s := range suggestions {
		switch s.Impact {
		case ImpactHigh:
			gain += criticalPenalty
		case ImpactMedium:
			gain += warningPenalty
		}
	}
	return gain
}

// Advice is the suggestion list together with its summary values.
type Advice struct {
	Suggestions []Suggestion `json:"suggestions"`
	// Perfect is set when there is nothing left to suggest.
	Perfect       bool `json:"perfect"`
	PotentialGain int  `json:"potentialGain"`
}

// Advise runs Suggest and summarises the result.
func Advise(meta MetaTags) Advice {
	s := Suggest(meta)
	if s == nil {
		s = []Suggestion{}
	}
	return Advice{
		Suggestions:   s,
		Perfect:       len(s) == 0,
		PotentialGain: PotentialGain(s),
	}
}

// ByImpact returns the suggestions with the given impact, in order.
func (a Advice) ByImpact(impact Impact) []Suggestion {
	var out []Suggestion
	for _, s := range a.Suggestions {
		if s.Impact == impact {
			out = append(out, s)
		}
	}
	return out
}
