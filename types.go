package seolens

import (
	"context"

	"github.com/eringen/seolens/history"
	"github.com/eringen/seolens/seo"
)

// Fetcher returns the raw HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HistoryStore persists past analyses.
type HistoryStore interface {
	Append(ctx context.Context, url string, title *string) (history.Item, error)
	List(ctx context.Context) ([]history.Item, error)
	Clear(ctx context.Context) error
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	URL string `json:"url" form:"url" query:"url" validate:"required,http_url"`
}

// AnalyzeResponse is the result of a successful analysis. The first four
// fields describe the page; the rest are the audit summary.
type AnalyzeResponse struct {
	URL     string       `json:"url"`
	Meta    seo.MetaTags `json:"meta"`
	Issues  []seo.Issue  `json:"issues"`
	Preview seo.Preview  `json:"preview"`

	Score         int              `json:"score"`
	Rating        seo.Rating       `json:"rating"`
	Suggestions   []seo.Suggestion `json:"suggestions"`
	Perfect       bool             `json:"perfect"`
	PotentialGain int              `json:"potentialGain"`
}

// NewAnalyzeResponse flattens a report into the API response shape.
func NewAnalyzeResponse(url string, r seo.Report) AnalyzeResponse {
	return AnalyzeResponse{
		URL:           url,
		Meta:          r.Meta,
		Issues:        r.Issues,
		Preview:       r.Preview,
		Score:         r.Score,
		Rating:        r.Rating,
		Suggestions:   r.Advice.Suggestions,
		Perfect:       r.Advice.Perfect,
		PotentialGain: r.Advice.PotentialGain,
	}
}

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
