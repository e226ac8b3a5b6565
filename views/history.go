package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// History renders the list of past analyses with a clear-all form.
func History(d HistoryData) templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, d.Page, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="card"><h1>Analysis History</h1><p class="muted">Review your past SEO checks.</p>`)
			if len(d.Items) == 0 {
				buf.WriteString(`<h3>No history yet</h3><p class="muted">Analyzed pages will show up here.</p>`)
				buf.WriteString(`<a href="/">Analyze a page</a></section>`)
				return
			}

			buf.WriteString(`<form method="post" action="/history/clear">`)
			writef(buf, `<input type="hidden" name="_csrf" value="%s">`, esc(d.CSRF))
			buf.WriteString(`<button type="submit" class="danger">Delete All</button></form>`)

			buf.WriteString(`<table><thead><tr><th>URL</th><th>Page Title</th><th>Analyzed At</th><th></th></tr></thead><tbody>`)
			for _, it := range d.Items {
				buf.WriteString(`<tr>`)
				writef(buf, `<td class="mono">%s</td>`, esc(it.URL))
				if t := deref(it.Title); t != "" {
					writef(buf, `<td>%s</td>`, esc(t))
				} else {
					buf.WriteString(`<td class="muted"><em>No title</em></td>`)
				}
				writef(buf, `<td>%s</td>`, esc(formatTime(it.CreatedAt)))
				writef(buf, `<td><a href="%s">Analyze again</a></td>`, esc(reportHref(it.URL)))
				buf.WriteString(`</tr>`)
			}
			buf.WriteString(`</tbody></table></section>`)
		})
	})
}
