package seo

// Report is the full audit of one page.
type Report struct {
	Meta    MetaTags
	Issues  []Issue
	Score   int
	Rating  Rating
	Preview Preview
	Advice  Advice
}

// Audit runs the rules, scoring and suggestions over already-extracted
// metadata.
func Audit(meta MetaTags) Report {
	issues := Evaluate(meta)
	score := Score(issues)
	return Report{
		Meta:    meta,
		Issues:  issues,
		Score:   score,
		Rating:  Rate(score),
		Preview: PreviewFlags(meta),
		Advice:  Advise(meta),
	}
}

// Analyze extracts metadata from html and audits it.
func Analyze(html string) Report {
	return Audit(Extract(html))
}
