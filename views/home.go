package views

import (
	"bytes"
	"net/url"

	"github.com/a-h/templ"
)

// Home renders the analyze form and recent analyses.
func Home(d HomeData) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, d.Page, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="card"><h1>Check your page's SEO metadata</h1>`)
			buf.WriteString(`<p class="muted">Enter a URL to see how it appears on Google, Facebook and X, and what to fix.</p>`)
			analyzeForm(buf, d.URL)
			if d.Error != "" {
				writef(buf, `<div class="error" role="alert">%s</div>`, esc(d.Error))
			}
			buf.WriteString(`</section>`)

			if len(d.Recent) > 0 {
				buf.WriteString(`<section class="card"><h2>Recent analyses</h2><ul>`)
				for _, it := range d.Recent {
					writef(buf, `<li><a href="%s">%s</a>`, esc(reportHref(it.URL)), esc(it.URL))
					if t := deref(it.Title); t != "" {
						writef(buf, ` <span class="muted">%s</span>`, esc(t))
					}
					buf.WriteString(`</li>`)
				}
				buf.WriteString(`</ul><a href="/history">View all</a></section>`)
			}
		})
	})
}

func analyzeForm(buf *bytes.Buffer, value string) {
	buf.WriteString(`<form class="analyze" method="get" action="/report">`)
	writef(buf, `<input type="text" name="url" placeholder="https://example.com" value="%s" required autofocus>`, esc(value))
	buf.WriteString(`<button type="submit">Analyze</button></form>`)
}

func reportHref(pageURL string) string {
	return "/report?url=" + url.QueryEscape(pageURL)
}
