package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/kovacs-trading/site/nav"
)

type tip struct {
	title string
	body  string
}

var gettingStartedTips = []tip{
	{"Start small", "Trade with position sizes you can afford to lose while you learn how markets move."},
	{"Use a stop-loss", "Decide where you are wrong before you enter, and let the stop close the trade for you."},
	{"Keep a journal", "Write down why you took every trade. Patterns in your mistakes show up quickly."},
	{"Manage risk", "Risking a small, fixed percentage of your account per trade keeps a losing streak survivable."},
}

type term struct {
	name       string
	definition string
}

var terminology = []term{
	{"Ask", "The lowest price a seller is willing to accept."},
	{"Bid", "The highest price a buyer is willing to pay."},
	{"Leverage", "Borrowed capital that increases both potential gains and losses."},
	{"Long", "A position that profits when the price rises."},
	{"Short", "A position that profits when the price falls."},
	{"Spread", "The difference between the bid and the ask."},
	{"Stop-loss", "An order that closes a position once the price reaches a chosen level."},
	{"Volatility", "How far and how fast a price moves over a period of time."},
}

func HomePage(path string, state nav.State) g.Node {
	return Page(
		"Home",
		path,
		state,
		[]g.Node{
			pageHeader("Learn to trade with confidence"),
			contentContainer(
				P(Class("text-lg text-gray-700 mb-8"), g.Text("Free guides, creators worth following, and tools that help you size every trade.")),
				cardGrid(
					g.Map(nav.Groups, func(group nav.Group) g.Node {
						return g.Map(group.Items, func(item nav.Item) g.Node {
							return A(Href(item.Href), TradingTipCard(item.Name, g.Text(item.Description)))
						})
					}),
				),
				Div(
					Class("mt-8 text-center"),
					A(Href("/getting-started"), Class("px-4 py-2 rounded inline-block bg-yellow-400 text-gray-900 font-semibold hover:bg-yellow-300"), g.Text("Get started")),
				),
			),
		},
	)
}

func GettingStartedPage(path string, state nav.State) g.Node {
	return Page(
		"Getting Started",
		path,
		state,
		[]g.Node{
			pageHeader("Getting Started"),
			cardGrid(
				g.Map(gettingStartedTips, func(t tip) g.Node {
					return TradingTipCard(t.title, g.Text(t.body))
				}),
			),
		},
	)
}

func PDFGuidesPage(path string, state nav.State) g.Node {
	return Page(
		"PDF Guides",
		path,
		state,
		[]g.Node{
			pageHeader("PDF Guides"),
			contentContainer(
				P(Class("text-gray-700"), g.Text("The best PDF guides created by experienced traders. New guides are added regularly.")),
			),
		},
	)
}

func BestTradingCreatorsPage(path string, state nav.State) g.Node {
	return Page(
		"Best Trading Creators",
		path,
		state,
		[]g.Node{
			pageHeader("Best Trading Creators"),
			contentContainer(
				P(Class("text-gray-700"), g.Text("Learn more about trading from these creators who post daily about their trading experiences.")),
			),
		},
	)
}

func TradingTerminologyPage(path string, state nav.State) g.Node {
	return Page(
		"Trading Terminology",
		path,
		state,
		[]g.Node{
			pageHeader("Trading Terminology"),
			contentContainer(
				Dl(
					Class("divide-y divide-gray-200 bg-white rounded-lg shadow"),
					g.Map(terminology, func(t term) g.Node {
						return Div(
							Class("p-4"),
							Dt(Class("font-semibold text-gray-900"), g.Text(t.name)),
							Dd(Class("mt-1 text-gray-600"), g.Text(t.definition)),
						)
					}),
				),
			),
		},
	)
}

func BestCryptoExchangePage(path string, state nav.State) g.Node {
	return Page(
		"Best Crypto Exchange",
		path,
		state,
		[]g.Node{
			pageHeader("Best Crypto Exchange"),
			contentContainer(
				section("What to look for",
					Ul(
						Class("list-disc ml-6 space-y-2 text-gray-700"),
						Li(g.Text("Low trading fees and transparent pricing")),
						Li(g.Text("Deep liquidity on the pairs you trade")),
						Li(g.Text("Strong security record and two-factor authentication")),
					),
				),
			),
		},
	)
}
