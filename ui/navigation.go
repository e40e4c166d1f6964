package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/nav"
)

const headerID = "site-header"

// panelLayout positions a group's desktop dropdown under its trigger
type panelLayout struct {
	panel string
	grid  string
}

var panelLayouts = map[nav.GroupID]panelLayout{
	nav.GroupLearnToTrade: {
		panel: "absolute -left-64 top-full z-10 mt-3 w-screen max-w-3xl overflow-hidden rounded-3xl bg-white shadow-md ring-1 ring-gray-900/5",
		grid:  "p-4 grid grid-cols-2 gap-2.5",
	},
	nav.GroupUtilities: {
		panel: "absolute -left-8 top-full z-10 mt-3 w-screen max-w-md overflow-hidden rounded-3xl bg-white shadow-md ring-1 ring-gray-900/5",
		grid:  "p-4",
	},
}

// Active and inactive styling are two fixed class sets per element kind.
func activeClass(active bool, on, off string) string {
	if active {
		return on
	}
	return off
}

func desktopLinkClass(active bool) string {
	return "text-sm font-semibold leading-6 hover:text-gray-50 " + activeClass(active, "text-gray-50", "text-gray-300")
}

func dropdownButtonClass(active bool) string {
	return "flex items-center gap-x-1 text-sm font-semibold leading-6 hover:text-gray-50 focus:outline-none " + activeClass(active, "text-gray-50", "text-gray-300")
}

func dropdownItemClass(item nav.Item, active bool) string {
	class := ""
	if item.ColSpan > 0 {
		class = "col-span-" + strconv.Itoa(item.ColSpan) + " "
	}
	return class + "group relative flex items-center gap-x-6 rounded-lg p-4 text-sm leading-6 " + activeClass(active, "bg-gray-50", "hover:bg-gray-50")
}

func mobileLinkClass(active bool) string {
	return "flex w-full rounded-lg py-2 pl-3 pr-3.5 text-base font-semibold leading-7 " + activeClass(active, "bg-gray-50", "hover:bg-gray-50")
}

func mobileGroupButtonClass(active bool) string {
	return "flex w-full items-center justify-between rounded-lg py-2 pl-3 pr-3.5 text-base font-semibold leading-7 " + activeClass(active, "bg-gray-50", "hover:bg-gray-50")
}

func mobileSubLinkClass(active bool) string {
	return "block rounded-lg ml-6 py-1 px-3 text-sm font-semibold leading-7 text-gray-900 " + activeClass(active, "bg-gray-50", "hover:bg-gray-50")
}

func dropdownToggleURL(id nav.GroupID) string {
	return "/nav/dropdown/" + string(id) + "/toggle"
}

func accordionToggleURL(id nav.GroupID) string {
	return "/nav/accordion/" + string(id) + "/toggle"
}

// SiteHeader renders the navigation bar for currentPath. Every control posts
// to a /nav endpoint which answers with a fresh header that replaces this one.
func SiteHeader(currentPath string, state nav.State) g.Node {
	return Header(
		ID(headerID),
		Class("bg-gray-900"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Nav(
			Class("mx-auto flex max-w-7xl items-center justify-between p-6 lg:px-8"),
			Aria("label", "Global"),
			Div(
				Class("lg:flex-1"),
				A(Href(nav.Home.Href), logo()),
			),
			Div(
				Class("flex lg:hidden"),
				Button(
					Type("button"),
					Class("-m-2.5 inline-flex items-center justify-center rounded-md p-2.5 text-white"),
					hx.Post("/nav/mobile/open"),
					Span(Class("sr-only"), g.Text("Open main menu")),
					icon("bars-3", "h-7 w-7"),
				),
			),
			desktopMenu(currentPath, state),
			Div(
				Class("hidden lg:flex lg:flex-1 lg:justify-end lg:items-center"),
				Div(
					Class("flex justify-center items-center gap-4 text-gray-300"),
					socialLink(nav.Instagram),
				),
			),
		),
		g.If(state.MobileMenuOpen, mobileMenu(currentPath, state)),
	)
}

func socialLink(item nav.Item) g.Node {
	return A(
		Href(item.Href),
		Target("_blank"),
		Rel("noopener"),
		Class("hover:text-gray-50"),
		Aria("label", item.Name),
		icon(item.Icon),
	)
}

func desktopMenu(currentPath string, state nav.State) g.Node {
	return Div(
		Class("hidden lg:flex lg:gap-x-6"),
		A(Href(nav.Home.Href), Class(desktopLinkClass(nav.Home.Active(currentPath))), g.Text(nav.Home.Name)),
		g.Map(nav.Groups, func(group nav.Group) g.Node {
			return dropdown(group, currentPath, state.DropdownOpen(group.ID))
		}),
		A(
			Href(nav.BestCryptoExchange.Href),
			Class(desktopLinkClass(nav.BestCryptoExchange.Active(currentPath))),
			g.Text(nav.BestCryptoExchange.Name),
		),
	)
}

func dropdown(group nav.Group, currentPath string, open bool) g.Node {
	layout := panelLayouts[group.ID]
	return Div(
		Class("relative"),
		Button(
			Type("button"),
			Class(dropdownButtonClass(group.Active(currentPath))),
			Aria("expanded", strconv.FormatBool(open)),
			hx.Post(dropdownToggleURL(group.ID)),
			g.Text(group.Label),
			chevron(false),
		),
		g.If(open,
			Div(
				ID("dropdown-"+string(group.ID)),
				Class(layout.panel+" transition ease-out duration-200"),
				Div(
					Class(layout.grid),
					g.Map(group.Items, func(item nav.Item) g.Node {
						return dropdownItem(item, currentPath)
					}),
				),
			),
		),
	)
}

func dropdownItem(item nav.Item, currentPath string) g.Node {
	return A(
		Href(item.Href),
		Class(dropdownItemClass(item, item.Active(currentPath))),
		Div(
			Class("flex h-11 w-11 flex-none items-center justify-center rounded-lg bg-yellow-400"),
			icon(item.Icon, "text-white"),
		),
		Div(
			Class("flex-auto"),
			Div(
				Class("block font-semibold text-gray-900"),
				Span(Class("text-gray-900"), g.Text(item.Name)),
				Span(Class("absolute inset-0")),
			),
			P(Class("mt-1 text-gray-500"), g.Text(item.Description)),
		),
	)
}

func mobileMenu(currentPath string, state nav.State) g.Node {
	return Div(
		ID("mobile-menu"),
		Class("lg:hidden"),
		Role("dialog"),
		Aria("modal", "true"),
		Div(Class("fixed inset-0 z-10")),
		Div(
			Class("fixed inset-y-0 right-0 z-10 w-full overflow-y-auto bg-white"),
			Div(
				Class("flex items-center justify-between px-6 py-6 bg-gray-900"),
				A(Href(nav.Home.Href), logo()),
				Button(
					Type("button"),
					Class("-m-2.5 rounded-md p-2.5 text-white"),
					hx.Post("/nav/mobile/close"),
					Span(Class("sr-only"), g.Text("Close menu")),
					icon("x-mark", "h-7 w-7"),
				),
			),
			Div(
				Class("my-6 flow-root px-6"),
				Div(
					Class("-my-6 divide-y divide-gray-500/10"),
					Div(
						Class("space-y-2 py-6"),
						Div(
							Class("-mx-3"),
							A(Href(nav.Home.Href), Class(mobileLinkClass(nav.Home.Active(currentPath))), g.Text(nav.Home.Name)),
						),
						g.Map(nav.Groups, func(group nav.Group) g.Node {
							return accordion(group, currentPath, state.AccordionOpen(group.ID))
						}),
						Div(
							Class("-mx-3"),
							A(
								Href(nav.BestCryptoExchange.Href),
								Class(mobileLinkClass(nav.BestCryptoExchange.Active(currentPath))),
								g.Text(nav.BestCryptoExchange.Name),
							),
						),
					),
					getInTouch(),
				),
			),
		),
	)
}

// getInTouch is the drawer's footer with the social buttons
func getInTouch() g.Node {
	return Div(
		Class("py-6"),
		P(Class("text-gray-900 text-base text-center font-bold pb-4"), g.Text("GET IN TOUCH")),
		Div(
			Class("w-full flex justify-center gap-4 text-white"),
			A(
				Href(nav.Instagram.Href),
				Target("_blank"),
				Rel("noopener"),
				Class("max-w-[100px] flex-1 flex justify-center rounded-lg py-2 bg-yellow-400 hover:bg-gray-900"),
				Aria("label", nav.Instagram.Name),
				icon(nav.Instagram.Icon),
			),
		),
	)
}

func accordion(group nav.Group, currentPath string, open bool) g.Node {
	return Div(
		Class("-mx-3"),
		Button(
			Type("button"),
			Class(mobileGroupButtonClass(group.Active(currentPath))),
			Aria("expanded", strconv.FormatBool(open)),
			hx.Post(accordionToggleURL(group.ID)),
			g.Text(group.Label),
			chevron(open),
		),
		g.If(open,
			Div(
				ID("accordion-"+string(group.ID)),
				Class("mt-2 space-y-2"),
				g.Map(group.Items, func(item nav.Item) g.Node {
					return A(
						Href(item.Href),
						Class(mobileSubLinkClass(item.Active(currentPath))),
						g.Text(item.Name),
					)
				}),
			),
		),
	)
}
