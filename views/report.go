package views

import (
	"bytes"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/eringen/seolens/seo"
)

// Report renders the full audit of one page.
func Report(d ReportData) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, d.Page, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="card">`)
			analyzeForm(buf, d.URL)
			writef(buf, `<p class="muted">Results for <a href="%s" rel="noopener noreferrer" target="_blank">%s</a></p>`,
				safeURL(d.URL), esc(d.URL))
			buf.WriteString(`</section>`)

			buf.WriteString(`<div class="grid">`)
			scoreCard(buf, d.Report, len(d.Issues))
			statsCard(buf, d.Report.Meta)
			buf.WriteString(`</div>`)

			previewSection(buf, d.Previews)
			issueSection(buf, d.Issues, d.Counts)
			suggestionSection(buf, d.Report.Advice)
			rawSection(buf, d.Raw)
		})
	})
}

func scoreCard(buf *bytes.Buffer, r seo.Report, checks int) {
	writef(buf, `<section class="card %s">`, ratingClass(r.Rating))
	buf.WriteString(`<svg width="96" height="96" aria-hidden="true">`)
	buf.WriteString(`<circle cx="48" cy="48" r="40" fill="transparent" stroke="#f1f5f9" stroke-width="8"/>`)
	writef(buf, `<circle cx="48" cy="48" r="40" fill="transparent" stroke="currentColor" stroke-width="8" stroke-dasharray="251.2" stroke-dashoffset="%.1f"/>`,
		scoreDashOffset(r.Score))
	buf.WriteString(`</svg><div>`)
	buf.WriteString(`<div class="muted">SEO Health Score</div>`)
	writef(buf, `<div style="font-size:2rem;font-weight:800">%d</div>`, r.Score)
	writef(buf, `<div style="font-weight:700">%s</div>`, esc(string(r.Rating)))
	writef(buf, `<div class="muted">Based on %d checks performed</div>`, checks)
	buf.WriteString(`</div></section>`)
}

func statsCard(buf *bytes.Buffer, m seo.MetaTags) {
	buf.WriteString(`<section class="card"><table>`)
	writef(buf, `<tr><th>Title Length</th><td>%d chars</td></tr>`, utf8.RuneCountInString(deref(m.Title)))
	writef(buf, `<tr><th>Description</th><td>%d chars</td></tr>`, utf8.RuneCountInString(deref(m.Description)))
	if m.Canonical != nil {
		writef(buf, `<tr><th>Canonical</th><td class="mono">%s</td></tr>`, esc(*m.Canonical))
	}
	if m.Robots != nil {
		writef(buf, `<tr><th>Robots</th><td class="mono">%s</td></tr>`, esc(*m.Robots))
	}
	buf.WriteString(`</table></section>`)
}

func previewSection(buf *bytes.Buffer, p seo.Previews) {
	buf.WriteString(`<h2>Previews</h2><div class="grid">`)

	buf.WriteString(`<section class="card preview"><h3>Google</h3>`)
	writef(buf, `<div class="site">%s</div>`, esc(p.Google.Site))
	writef(buf, `<div class="site">%s</div>`, esc(p.Google.URL))
	writef(buf, `<div class="title" style="color:#1a0dab">%s</div>`, esc(p.Google.Title))
	writef(buf, `<p>%s</p></section>`, esc(p.Google.Description))

	socialCard(buf, "Facebook", p.Facebook)
	socialCard(buf, "X (Twitter)", p.Twitter)

	buf.WriteString(`</div>`)
}

func socialCard(buf *bytes.Buffer, platform string, c seo.Card) {
	writef(buf, `<section class="card preview"><h3>%s</h3>`, esc(platform))
	if c.Image != "" {
		writef(buf, `<img src="%s" alt="" loading="lazy" referrerpolicy="no-referrer">`, safeURL(c.Image))
	} else {
		buf.WriteString(`<div class="muted">No image</div>`)
	}
	writef(buf, `<div class="site">%s</div>`, esc(c.Site))
	writef(buf, `<div class="title">%s</div>`, esc(c.Title))
	writef(buf, `<p>%s</p></section>`, esc(c.Description))
}

func issueSection(buf *bytes.Buffer, issues []seo.Issue, counts map[seo.Level]int) {
	buf.WriteString(`<section class="card"><h2>SEO Audit Report</h2>`)
	writef(buf, `<p class="muted">%d critical, %d warnings, %d info, %d passed</p>`,
		counts[seo.LevelCritical], counts[seo.LevelWarning], counts[seo.LevelInfo], counts[seo.LevelSuccess])
	if len(issues) == 0 {
		buf.WriteString(`<p>No issues found!</p><p class="muted">This page looks perfectly optimized.</p>`)
	}
	for _, is := range issues {
		writef(buf, `<div class="%s"><strong>%s:</strong> %s`, levelClass(is.Level), levelLabel(is.Level), esc(is.Message))
		if is.Field != "" {
			writef(buf, `<small>Field: %s</small>`, esc(is.Field))
		}
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</section>`)
}

func suggestionSection(buf *bytes.Buffer, a seo.Advice) {
	buf.WriteString(`<section class="card"><h2>Suggestions</h2>`)
	if a.Perfect {
		buf.WriteString(`<h3>Perfect Score!</h3><p>Your page has all the essential SEO elements. Great job!</p></section>`)
		return
	}
	plural := "s"
	if len(a.Suggestions) == 1 {
		plural = ""
	}
	writef(buf, `<h3>%d Improvement%s Found</h3>`, len(a.Suggestions), plural)
	writef(buf, `<p>Implementing these suggestions could increase your score by up to <strong>+%d points</strong></p>`, a.PotentialGain)
	for _, s := range a.Suggestions {
		writef(buf, `<div class="card"><span class="%s">%s</span> <span class="muted">%s</span>`,
			impactClass(s.Impact), esc(impactLabel(s.Impact)), esc(s.Category))
		writef(buf, `<h4>%s</h4><p>%s</p></div>`, esc(s.Title), esc(s.Description))
	}
	buf.WriteString(`</section>`)
}

func impactLabel(i seo.Impact) string {
	switch i {
	case seo.ImpactHigh:
		return "High Impact"
	case seo.ImpactMedium:
		return "Medium Impact"
	}
	return "Low Impact"
}

func rawSection(buf *bytes.Buffer, raw []RawTag) {
	buf.WriteString(`<section class="card"><h2>Extracted Metadata</h2><table>`)
	buf.WriteString(`<thead><tr><th>Meta Tag</th><th>Value</th></tr></thead><tbody>`)
	if len(raw) == 0 {
		buf.WriteString(`<tr><td colspan="2" class="muted">No raw meta tags captured</td></tr>`)
	}
	for _, t := range raw {
		writef(buf, `<tr><td class="mono">%s</td><td class="mono">%s</td></tr>`, esc(t.Name), esc(t.Content))
	}
	buf.WriteString(`</tbody></table></section>`)
}
