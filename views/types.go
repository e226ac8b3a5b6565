package views

import (
	"slices"
	"strings"

	"github.com/eringen/seolens/history"
	"github.com/eringen/seolens/seo"
)

// Page carries the layout data every page needs.
type Page struct {
	Title   string
	Active  string // nav entry to highlight: "home", "report" or "history"
	CSRF    string
	Flashes []string
}

// HomeData is the analyze form plus the most recent history entries.
type HomeData struct {
	Page
	URL    string // value to refill the form with
	Error  string
	Recent []history.Item
}

// ReportData is everything the report page shows for one analysis.
type ReportData struct {
	Page
	URL      string
	Report   seo.Report
	Issues   []seo.Issue // display order
	Counts   map[seo.Level]int
	Previews seo.Previews
	Raw      []RawTag
}

// RawTag is one name/content pair from the page's meta elements.
type RawTag struct {
	Name    string
	Content string
}

// NewReportData prepares a report for display.
func NewReportData(p Page, url string, r seo.Report) ReportData {
	raw := make([]RawTag, 0, len(r.Meta.Raw))
	for name, content := range r.Meta.Raw {
		raw = append(raw, RawTag{Name: name, Content: content})
	}
	slices.SortFunc(raw, func(a, b RawTag) int { return strings.Compare(a.Name, b.Name) })

	return ReportData{
		Page:     p,
		URL:      url,
		Report:   r,
		Issues:   seo.SortIssues(r.Issues),
		Counts:   seo.CountLevels(r.Issues),
		Previews: seo.BuildPreviews(url, r.Meta),
		Raw:      raw,
	}
}

// HistoryData is the full history list.
type HistoryData struct {
	Page
	Items []history.Item
}
