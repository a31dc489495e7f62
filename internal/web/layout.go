package web

import (
	"github.com/a-h/templ"
)

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Notice string
	Error  string
}

var navItems = []struct {
	href, label string
}{
	{"/", "Dashboard"},
	{"/web/ships", "Ships"},
	{"/web/ports", "Ports"},
	{"/web/voyages", "Voyages"},
}

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:0;background:#f4f6f8;color:#1d2733}
header{background:#0b3d5c;color:#fff;padding:.75rem 1.5rem;display:flex;gap:1.5rem;align-items:center}
header a{color:#d7e9f5;text-decoration:none}header a.active{color:#fff;font-weight:600}
main{padding:1.5rem;max-width:1100px;margin:0 auto}
table{border-collapse:collapse;width:100%;background:#fff;margin-bottom:1rem}
th,td{border-bottom:1px solid #dde3e8;padding:.4rem .6rem;text-align:left}
.flash{padding:.6rem 1rem;margin-bottom:1rem;border-radius:4px}
.flash.error{background:#fde2e1;color:#8a1c14}.flash.notice{background:#dff3e4;color:#1c5a2c}
.cards{display:flex;gap:1rem;margin-bottom:1.5rem}.card{background:#fff;padding:1rem;flex:1;border-radius:4px}
.card strong{font-size:1.6rem;display:block}
.bar{background:#2e86c1;height:.8rem;display:inline-block;vertical-align:middle}
form.inline{display:inline}input,select{padding:.25rem}
`

// Layout is the document shell with navigation and flash. The page body
// arrives as templ children, see withBody.
func Layout(title, active string, flash Flash) templ.Component {
	return generated("Layout", func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(` | Maritime</title><style>` + stylesheet + `</style></head><body>`)

		h.raw(`<header><strong>Maritime</strong><nav>`)
		for _, item := range navItems {
			h.raw(` <a href="`)
			h.text(item.href)
			if item.href == active {
				h.raw(`" class="active">`)
			} else {
				h.raw(`">`)
			}
			h.text(item.label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header><main>`)

		if flash.Error != "" {
			h.raw(`<div class="flash error" role="alert">`)
			h.text(flash.Error)
			h.raw(`</div>`)
		}
		if flash.Notice != "" {
			h.raw(`<div class="flash notice">`)
			h.text(flash.Notice)
			h.raw(`</div>`)
		}

		h.raw(`<h1>`)
		h.text(title)
		h.raw(`</h1>`)
		h.children()
		h.raw(`</main></body></html>`)
	})
}

// NotFoundPage is shown for unknown routes.
func NotFoundPage(path string) templ.Component {
	body := generated("NotFoundPage", func(h *html) {
		h.raw(`<p>No page exists at <code>`)
		h.text(path)
		h.raw(`</code>.</p><p><a href="/">Back to the dashboard</a></p>`)
	})
	return withBody(Layout("Page not found", "", Flash{}), body)
}
