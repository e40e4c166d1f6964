package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/config"
	"github.com/kovacs-trading/site/nav"
)

// ---- Page Layout ----

func Page(title string, currentPath string, state nav.State, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title + " | " + config.SiteName,
		Language: "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href(config.FaviconURL), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Class("bg-gray-100 min-h-screen"),
			SiteHeader(currentPath, state),
			Main(
				Class("container mx-auto px-4 py-8"),
				g.Group(content),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8 text-gray-900"), g.Text(text))
}
