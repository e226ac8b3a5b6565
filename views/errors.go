package views

import (
	"bytes"

	"github.com/a-h/templ"
)

func NotFound() templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, Page{Title: "Page not found"}, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="card"><h1>404</h1><p>That page does not exist.</p><a href="/">Analyze a page</a></section>`)
		})
	})
}

func ServerError() templ.Component {
	return component(func(buf *bytes.Buffer) {
		layout(buf, Page{Title: "Something went wrong"}, func(buf *bytes.Buffer) {
			buf.WriteString(`<section class="card"><h1>Something went wrong</h1><p>Please try again in a moment.</p></section>`)
		})
	})
}
