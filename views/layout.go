package views

import (
	"bytes"
)

const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",sans-serif;color:#0f172a;background:#f8fafc}
a{color:#2563eb}
header{background:#0f172a;color:#fff;padding:0 1.5rem;display:flex;gap:1.5rem;align-items:center;height:3.5rem}
header .brand{font-weight:800;color:#fff;text-decoration:none}
header nav a{color:#cbd5e1;text-decoration:none;margin-right:1rem}
header nav a.active{color:#fff;font-weight:600}
main{max-width:64rem;margin:0 auto;padding:2rem 1.5rem}
.flash{background:#ecfdf5;border:1px solid #6ee7b7;padding:.75rem 1rem;border-radius:.5rem;margin-bottom:1rem}
.error{background:#fef2f2;border:1px solid #fca5a5;color:#991b1b;padding:.75rem 1rem;border-radius:.5rem;margin:1rem 0}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:.75rem;padding:1.5rem;margin-bottom:1.5rem}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr));gap:1.5rem}
form.analyze{display:flex;gap:.5rem}
form.analyze input{flex:1;padding:.75rem;font-size:1rem;border:1px solid #cbd5e1;border-radius:.5rem}
button{padding:.75rem 1.5rem;border:0;border-radius:.5rem;background:#2563eb;color:#fff;font-weight:600;cursor:pointer}
button.danger{background:#dc2626}
.score{display:flex;align-items:center;gap:1.5rem}
.score svg{transform:rotate(-90deg)}
.score-good{color:#16a34a}.score-fair{color:#d97706}.score-poor{color:#dc2626}
.issue{padding:.75rem 1rem;border-radius:.5rem;margin-bottom:.5rem;border:1px solid}
.issue-critical{background:#fef2f2;border-color:#fecaca;color:#991b1b}
.issue-warning{background:#fffbeb;border-color:#fde68a;color:#92400e}
.issue-info{background:#eff6ff;border-color:#bfdbfe;color:#1e40af}
.issue-success{background:#f0fdf4;border-color:#bbf7d0;color:#166534}
.issue small{display:block;opacity:.7;font-family:monospace}
.impact{font-size:.75rem;font-weight:700;text-transform:uppercase;padding:.125rem .5rem;border-radius:999px}
.impact-high{background:#fee2e2;color:#b91c1c}.impact-medium{background:#fef3c7;color:#b45309}.impact-low{background:#e0f2fe;color:#0369a1}
.preview img{max-width:100%;display:block;border-radius:.5rem}
.preview .site{color:#64748b;font-size:.85rem}
.preview .title{font-size:1.1rem;font-weight:600;margin:.25rem 0}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e2e8f0;vertical-align:top}
td.mono{font-family:monospace;word-break:break-all}
.muted{color:#64748b}
`

type navItem struct {
	key, href, label string
}

var nav = []navItem{
	{"home", "/", "Analyze"},
	{"history", "/history", "History"},
}

// layout wraps body in the shared page chrome.
func layout(buf *bytes.Buffer, p Page, body func(buf *bytes.Buffer)) {
	title := p.Title
	if title == "" {
		title = "SEO Lens"
	}
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	writef(buf, `<title>%s</title>`, esc(title))
	buf.WriteString(`<meta name="description" content="Analyze a page's title, description and social tags.">`)
	writef(buf, `<style>%s</style></head><body>`, stylesheet)

	buf.WriteString(`<header><a class="brand" href="/">SEO Lens</a><nav>`)
	for _, n := range nav {
		class := ""
		if n.key == p.Active {
			class = ` class="active"`
		}
		writef(buf, `<a href="%s"%s>%s</a>`, n.href, class, esc(n.label))
	}
	buf.WriteString(`</nav></header><main>`)

	for _, f := range p.Flashes {
		writef(buf, `<div class="flash" role="status">%s</div>`, esc(f))
	}
	body(buf)

	buf.WriteString(`</main></body></html>`)
}
